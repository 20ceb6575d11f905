package llm

import (
	"encoding/json"
	"strings"
)

// ActionType tags the UI-level follow-up an agent reply may request.
type ActionType string

const (
	ActionNone            ActionType = ""
	ActionBookAppointment ActionType = "book_appointment"
	ActionCaptureLead     ActionType = "capture_lead"
	ActionEscalateHuman   ActionType = "escalate_human"
)

// CaptureLeadData carries whatever contact details the visitor already
// shared in the conversation.
type CaptureLeadData struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type BookAppointmentData struct {
	PreferredTime string `json:"preferredTime,omitempty"`
}

type EscalateHumanData struct {
	Reason string `json:"reason,omitempty"`
}

// Action is a tagged union over the three action kinds. Exactly the
// payload matching Type is non-nil; all are nil for ActionNone.
type Action struct {
	Type            ActionType           `json:"type"`
	BookAppointment *BookAppointmentData `json:"bookAppointment,omitempty"`
	CaptureLead     *CaptureLeadData     `json:"captureLead,omitempty"`
	EscalateHuman   *EscalateHumanData   `json:"escalateHuman,omitempty"`
}

// Reply is the structured result of one collaborator round-trip.
type Reply struct {
	Message          string `json:"message"`
	IsActionRequired bool   `json:"isActionRequired"`
	Action           Action `json:"action"`
}

// Safe texts used when the collaborator misbehaves. The conversation
// must never hard-fail from the visitor's perspective.
const (
	DefaultReplyText  = "I'm here to help! How can I assist you today?"
	FallbackReplyText = "I apologize, but I'm having trouble right now. Please try again in a moment."
)

// DefaultReply is substituted when the provider answer is not parseable
// into the expected shape.
func DefaultReply() Reply {
	return Reply{Message: DefaultReplyText}
}

// FallbackReply is substituted when the provider call itself fails.
func FallbackReply() Reply {
	return Reply{Message: FallbackReplyText}
}

// wireReply mirrors the JSON contract the providers are prompted to
// produce.
type wireReply struct {
	Message          string          `json:"message"`
	IsActionRequired bool            `json:"isActionRequired"`
	ActionType       string          `json:"actionType"`
	ActionData       json.RawMessage `json:"actionData"`
}

// ParseReply turns a raw provider answer into a Reply. The raw text may
// be wrapped in markdown code fences or surrounded by prose; the first
// JSON object found is used. Malformed or absent fields degrade to the
// default reply rather than failing.
func ParseReply(raw string) Reply {
	payload := extractJSONObject(raw)
	if payload == "" {
		return DefaultReply()
	}

	var wire wireReply
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return DefaultReply()
	}
	if strings.TrimSpace(wire.Message) == "" {
		return DefaultReply()
	}

	reply := Reply{Message: wire.Message}
	action := parseAction(wire.ActionType, wire.ActionData)
	if action.Type != ActionNone {
		reply.IsActionRequired = true
		reply.Action = action
	}
	return reply
}

func parseAction(actionType string, data json.RawMessage) Action {
	switch ActionType(actionType) {
	case ActionBookAppointment:
		payload := &BookAppointmentData{}
		if len(data) > 0 {
			_ = json.Unmarshal(data, payload)
		}
		return Action{Type: ActionBookAppointment, BookAppointment: payload}

	case ActionCaptureLead:
		payload := &CaptureLeadData{}
		if len(data) > 0 {
			_ = json.Unmarshal(data, payload)
		}
		return Action{Type: ActionCaptureLead, CaptureLead: payload}

	case ActionEscalateHuman:
		payload := &EscalateHumanData{}
		if len(data) > 0 {
			_ = json.Unmarshal(data, payload)
		}
		return Action{Type: ActionEscalateHuman, EscalateHuman: payload}

	default:
		// Unknown action types are ignored, not errors.
		return Action{}
	}
}

// extractJSONObject strips code fences and returns the outermost JSON
// object in raw, or "" when there is none.
func extractJSONObject(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}
