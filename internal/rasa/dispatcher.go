package rasa

// Response is one outbound chat reply: either free text or the name of a
// canned response template resolved by the conversation engine.
type Response struct {
	Text     string `json:"text,omitempty"`
	Template string `json:"response,omitempty"`
}

// Dispatcher collects replies produced while an action runs. It mirrors the
// collecting dispatcher contract of the conversational framework: actions
// append, the webhook layer drains.
type Dispatcher struct {
	responses []Response
}

// Utter queues a plain text reply.
func (d *Dispatcher) Utter(text string) {
	d.responses = append(d.responses, Response{Text: text})
}

// UtterTemplate queues a canned template reply by name; the surrounding
// framework owns the template body.
func (d *Dispatcher) UtterTemplate(name string) {
	d.responses = append(d.responses, Response{Template: name})
}

// Responses returns everything queued so far, in utterance order.
func (d *Dispatcher) Responses() []Response {
	if d.responses == nil {
		return []Response{}
	}
	return d.responses
}
