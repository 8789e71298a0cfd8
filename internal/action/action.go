package action

import (
	"context"
	"log/slog"
	"sort"

	"go.uber.org/fx"

	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/adapter/commerce"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/rasa"
)

// Slot and entity names shared with the assistant domain definition.
const (
	entityProductName = "product_name"
	entityShopName    = "shop_name"
	slotProductName   = "product_name_slot"
	slotShopName      = "shop_name_slot"
)

// Canned reply templates resolved by the conversation engine.
const (
	templateAuthError          = "utter_auth_error"
	templateAPIError           = "utter_api_error"
	templateNoOrdersFound      = "utter_no_orders_found"
	templateOrdersFoundIntro   = "utter_orders_found_intro"
	templatePaymentStatusIntro = "utter_payment_status_intro"
	templateCoreFallback       = "utter_core_fallback"
)

// Action is one custom skill the conversation engine can invoke by name.
// Run never fails: every error is converted into a user-facing reply and
// the returned events only carry slot updates.
type Action interface {
	Name() string
	Run(ctx context.Context, tracker *rasa.Tracker, dispatcher *rasa.Dispatcher) []rasa.Event
}

// Registry routes webhook calls to registered actions.
type Registry struct {
	actions map[string]Action
}

// NewRegistry indexes actions by name. Later duplicates win; the domain
// definition is expected to keep names unique.
func NewRegistry(actions ...Action) *Registry {
	index := make(map[string]Action, len(actions))
	for _, a := range actions {
		index[a.Name()] = a
	}
	return &Registry{actions: index}
}

// Lookup resolves an action by its registered name.
func (r *Registry) Lookup(name string) (Action, bool) {
	a, ok := r.actions[name]
	return a, ok
}

// Names lists registered action names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Module exposes the fully populated action registry to the fx graph.
var Module = fx.Provide(newRegistry)

type registryParams struct {
	fx.In

	Client commerce.Client
	Logger *slog.Logger
}

func newRegistry(p registryParams) *Registry {
	return NewRegistry(
		NewSearchProducts(p.Client, p.Logger),
		NewSearchShops(p.Client, p.Logger),
		NewListProducts(p.Client, p.Logger),
		NewListShops(p.Client, p.Logger),
		NewRecommendProducts(p.Client, p.Logger),
		NewShowProductDetail(p.Client, p.Logger),
		NewCheckOrderStatus(p.Client, p.Logger),
		NewCheckPaymentStatus(p.Client, p.Logger),
		NewDefaultFallback(),
	)
}
