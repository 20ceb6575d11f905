package llm

import (
	"fmt"
	"strings"
)

// KnowledgeBase is the read-only grounding bundle fed to the provider.
type KnowledgeBase struct {
	CompanyName        string
	CompanyDescription string
	Services           []string
	FAQs               []FAQ
	BusinessHours      string
	ContactEmail       string
	ContactPhone       string
	Tone               string
}

type FAQ struct {
	Question string
	Answer   string
}

// Defaults used when an agent configuration carries an incomplete
// knowledge base. Missing fields degrade instead of failing.
var defaultKnowledgeBase = KnowledgeBase{
	CompanyName:        "AIDevelo.AI",
	CompanyDescription: "AIDevelo.AI builds modular AI agents that automate customer communication for small and medium businesses.",
	Services:           []string{"AI Phone Agent", "AI Chat Agent", "AI Social Media Agent"},
	FAQs: []FAQ{
		{Question: "How fast can I get started?", Answer: "Most customers are live within 48 hours of onboarding."},
		{Question: "Do the agents speak my language?", Answer: "Yes, all agents support multiple languages out of the box."},
		{Question: "Can I cancel anytime?", Answer: "Yes, plans are monthly and can be cancelled at any time."},
	},
	BusinessHours: "Monday to Friday, 9:00-18:00 CET",
	ContactEmail:  "hello@aidevelo.ai",
	ContactPhone:  "+49 30 1234 5678",
	Tone:          "friendly and professional",
}

// withDefaults fills empty fields from the documented defaults.
func (kb KnowledgeBase) withDefaults() KnowledgeBase {
	d := defaultKnowledgeBase
	if kb.CompanyName == "" {
		kb.CompanyName = d.CompanyName
	}
	if kb.CompanyDescription == "" {
		kb.CompanyDescription = d.CompanyDescription
	}
	if len(kb.Services) == 0 {
		kb.Services = d.Services
	}
	if len(kb.FAQs) == 0 {
		kb.FAQs = d.FAQs
	}
	if kb.BusinessHours == "" {
		kb.BusinessHours = d.BusinessHours
	}
	if kb.ContactEmail == "" {
		kb.ContactEmail = d.ContactEmail
	}
	if kb.ContactPhone == "" {
		kb.ContactPhone = d.ContactPhone
	}
	if kb.Tone == "" {
		kb.Tone = d.Tone
	}
	return kb
}

// BuildSystemPrompt renders the grounding prompt for one conversation:
// company facts, services, hours, contact, FAQ pairs, and the
// instruction to answer as a JSON object with an optional action.
func BuildSystemPrompt(kb KnowledgeBase) string {
	kb = kb.withDefaults()

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("You are the virtual assistant for %s.\n", kb.CompanyName))
	sb.WriteString(fmt.Sprintf("About the company: %s\n", kb.CompanyDescription))
	sb.WriteString(fmt.Sprintf("Communication tone: %s.\n\n", kb.Tone))

	sb.WriteString("=== SERVICES ===\n")
	for _, svc := range kb.Services {
		sb.WriteString(fmt.Sprintf("- %s\n", svc))
	}
	sb.WriteString("\n")

	if len(kb.FAQs) > 0 {
		sb.WriteString("=== FREQUENTLY ASKED QUESTIONS ===\n")
		for _, faq := range kb.FAQs {
			sb.WriteString(fmt.Sprintf("Q: %s\nA: %s\n\n", faq.Question, faq.Answer))
		}
	}

	sb.WriteString(fmt.Sprintf("Business hours: %s\n", kb.BusinessHours))
	sb.WriteString(fmt.Sprintf("Contact: %s / %s\n\n", kb.ContactEmail, kb.ContactPhone))

	sb.WriteString("Instructions:\n")
	sb.WriteString("- Answer helpfully using only the information above\n")
	sb.WriteString("- If you do not know the answer, say so honestly\n")
	sb.WriteString("- Never invent information that is not listed\n\n")

	sb.WriteString("Always respond with a single JSON object of this exact shape:\n")
	sb.WriteString(`{"message": "<your reply>", "isActionRequired": <true|false>, "actionType": "<book_appointment|capture_lead|escalate_human>", "actionData": {}}` + "\n")
	sb.WriteString("Set actionType only when the visitor wants to book an appointment, leave contact details, or needs a human. Otherwise omit actionType and set isActionRequired to false.\n")

	return sb.String()
}
