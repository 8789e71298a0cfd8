package rasa

// Event is a state-update signal returned to the conversation engine.
// Value intentionally has no omitempty: slot-clear events must serialize
// an explicit null.
type Event struct {
	Event string `json:"event"`
	Name  string `json:"name,omitempty"`
	Value any    `json:"value"`
}

// SlotSet builds a slot update event.
func SlotSet(name string, value any) Event {
	return Event{Event: "slot", Name: name, Value: value}
}

// ClearSlot builds a slot event that resets the slot to null.
func ClearSlot(name string) Event {
	return SlotSet(name, nil)
}
