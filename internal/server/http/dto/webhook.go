package dto

import (
	"encoding/json"

	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/rasa"
)

// WebhookRequest is the invocation payload the conversation engine posts
// for every custom action run.
type WebhookRequest struct {
	NextAction string          `json:"next_action"`
	SenderID   string          `json:"sender_id"`
	Tracker    rasa.Tracker    `json:"tracker"`
	Domain     json.RawMessage `json:"domain"`
}

// WebhookResponse returns the action outcome: state events first, chat
// replies second. Both arrays are always present, possibly empty.
type WebhookResponse struct {
	Events    []rasa.Event    `json:"events"`
	Responses []rasa.Response `json:"responses"`
}

// WebhookError reports a rejected invocation.
type WebhookError struct {
	Error      string `json:"error"`
	ActionName string `json:"action_name,omitempty"`
}

// HealthResponse answers liveness probes.
type HealthResponse struct {
	Status string `json:"status"`
}

// ActionListResponse lists the registered action names.
type ActionListResponse struct {
	Actions []string `json:"actions"`
}
