package test

import "github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/rasa"

// NewTracker builds a tracker with the given slots; entities and metadata
// attach through the With helpers.
func NewTracker(slots map[string]any) *rasa.Tracker {
	if slots == nil {
		slots = map[string]any{}
	}
	return &rasa.Tracker{SenderID: "test-sender", Slots: slots}
}

// WithEntity appends an extracted entity to the latest message.
func WithEntity(t *rasa.Tracker, name string, value any) *rasa.Tracker {
	t.LatestMessage.Entities = append(t.LatestMessage.Entities, rasa.Entity{Name: name, Value: value})
	return t
}

// WithAuthToken attaches a bearer token to the latest message metadata.
func WithAuthToken(t *rasa.Tracker, token string) *rasa.Tracker {
	if t.LatestMessage.Metadata == nil {
		t.LatestMessage.Metadata = map[string]any{}
	}
	t.LatestMessage.Metadata["authToken"] = token
	return t
}
