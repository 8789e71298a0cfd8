package action

import (
	"context"

	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/rasa"
)

// DefaultFallback answers when no intent matched with enough confidence.
type DefaultFallback struct{}

// NewDefaultFallback constructs DefaultFallback.
func NewDefaultFallback() *DefaultFallback {
	return &DefaultFallback{}
}

func (a *DefaultFallback) Name() string { return "action_default_fallback" }

func (a *DefaultFallback) Run(ctx context.Context, tracker *rasa.Tracker, d *rasa.Dispatcher) []rasa.Event {
	d.UtterTemplate(templateCoreFallback)
	return nil
}
