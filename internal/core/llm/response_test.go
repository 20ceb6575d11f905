package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReply_PlainReplyNoAction(t *testing.T) {
	reply := ParseReply(`{"message": "Hello there!", "isActionRequired": false}`)

	assert.Equal(t, "Hello there!", reply.Message)
	assert.False(t, reply.IsActionRequired)
	assert.Equal(t, ActionNone, reply.Action.Type)
}

func TestParseReply_CaptureLeadAction(t *testing.T) {
	raw := `{"message": "Great, I noted your details.", "isActionRequired": true, "actionType": "capture_lead", "actionData": {"name": "Ada", "email": "ada@example.com"}}`
	reply := ParseReply(raw)

	assert.True(t, reply.IsActionRequired)
	assert.Equal(t, ActionCaptureLead, reply.Action.Type)
	require.NotNil(t, reply.Action.CaptureLead)
	assert.Equal(t, "Ada", reply.Action.CaptureLead.Name)
	assert.Equal(t, "ada@example.com", reply.Action.CaptureLead.Email)
	assert.Nil(t, reply.Action.BookAppointment)
	assert.Nil(t, reply.Action.EscalateHuman)
}

func TestParseReply_BookAppointmentAction(t *testing.T) {
	raw := `{"message": "Let's find a slot.", "isActionRequired": true, "actionType": "book_appointment", "actionData": {"preferredTime": "tomorrow 10am"}}`
	reply := ParseReply(raw)

	assert.Equal(t, ActionBookAppointment, reply.Action.Type)
	require.NotNil(t, reply.Action.BookAppointment)
	assert.Equal(t, "tomorrow 10am", reply.Action.BookAppointment.PreferredTime)
}

func TestParseReply_EscalateWithoutPayload(t *testing.T) {
	raw := `{"message": "Connecting you to a colleague.", "isActionRequired": true, "actionType": "escalate_human"}`
	reply := ParseReply(raw)

	assert.Equal(t, ActionEscalateHuman, reply.Action.Type)
	require.NotNil(t, reply.Action.EscalateHuman)
	assert.Empty(t, reply.Action.EscalateHuman.Reason)
}

func TestParseReply_MarkdownFencedJSON(t *testing.T) {
	raw := "```json\n{\"message\": \"Fenced reply\", \"isActionRequired\": false}\n```"
	reply := ParseReply(raw)

	assert.Equal(t, "Fenced reply", reply.Message)
}

func TestParseReply_UnknownActionTypeIgnored(t *testing.T) {
	raw := `{"message": "Hi", "isActionRequired": true, "actionType": "launch_rocket"}`
	reply := ParseReply(raw)

	assert.Equal(t, "Hi", reply.Message)
	assert.False(t, reply.IsActionRequired)
	assert.Equal(t, ActionNone, reply.Action.Type)
}

func TestParseReply_MalformedFallsBackToDefault(t *testing.T) {
	for _, raw := range []string{
		"",
		"not json at all",
		`{"message": ""}`,
		`{"broken": `,
	} {
		reply := ParseReply(raw)
		assert.Equal(t, DefaultReplyText, reply.Message, "raw=%q", raw)
		assert.False(t, reply.IsActionRequired, "raw=%q", raw)
	}
}

func TestParseReply_MalformedActionDataStillReplies(t *testing.T) {
	raw := `{"message": "Hi", "isActionRequired": true, "actionType": "capture_lead", "actionData": "oops"}`
	reply := ParseReply(raw)

	assert.Equal(t, "Hi", reply.Message)
	assert.Equal(t, ActionCaptureLead, reply.Action.Type)
	require.NotNil(t, reply.Action.CaptureLead)
	assert.Empty(t, reply.Action.CaptureLead.Email)
}

func TestBuildSystemPrompt_UsesDefaultsWhenEmpty(t *testing.T) {
	prompt := BuildSystemPrompt(KnowledgeBase{})

	assert.Contains(t, prompt, "AIDevelo.AI")
	assert.Contains(t, prompt, "AI Phone Agent")
	assert.Contains(t, prompt, "How fast can I get started?")
	assert.Contains(t, prompt, "hello@aidevelo.ai")
	assert.Contains(t, prompt, "book_appointment|capture_lead|escalate_human")
}

func TestBuildSystemPrompt_KeepsProvidedFields(t *testing.T) {
	prompt := BuildSystemPrompt(KnowledgeBase{
		CompanyName:   "Acme GmbH",
		BusinessHours: "24/7",
	})

	assert.Contains(t, prompt, "Acme GmbH")
	assert.Contains(t, prompt, "24/7")
	// Missing fields still degrade to defaults
	assert.Contains(t, prompt, "AI Chat Agent")
}
