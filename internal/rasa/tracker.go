package rasa

// Intent is the classified purpose of the latest user utterance.
type Intent struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Entity is a value extracted from the latest user utterance.
type Entity struct {
	Name  string `json:"entity"`
	Value any    `json:"value"`
}

// Message carries the latest user message with NLU annotations and the
// channel metadata forwarded by the chat frontend.
type Message struct {
	Text     string         `json:"text"`
	Intent   Intent         `json:"intent"`
	Entities []Entity       `json:"entities"`
	Metadata map[string]any `json:"metadata"`
}

// Tracker is the read-only slice of conversation state shipped with every
// webhook call. Actions read entities and slots from it; they never write.
type Tracker struct {
	SenderID      string         `json:"sender_id"`
	Slots         map[string]any `json:"slots"`
	LatestMessage Message        `json:"latest_message"`
}

// LatestEntityValue returns the first non-empty string value extracted for
// the named entity in the latest message.
func (t *Tracker) LatestEntityValue(name string) string {
	for _, entity := range t.LatestMessage.Entities {
		if entity.Name != name {
			continue
		}
		if s, ok := entity.Value.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// Slot returns the named slot as a string; unset or non-string slots read
// as empty.
func (t *Tracker) Slot(name string) string {
	if v, ok := t.Slots[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// AuthToken returns the bearer token the chat frontend attached to the
// latest message metadata, or empty when the user is not signed in.
func (t *Tracker) AuthToken() string {
	if v, ok := t.LatestMessage.Metadata["authToken"]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
