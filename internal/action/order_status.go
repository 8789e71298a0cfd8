package action

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/adapter/commerce"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/rasa"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/usecase"
)

// Most recent orders shown per status check.
const orderStatusDisplayLimit = 3

// CheckOrderStatus reports the status of the caller's recent orders.
// Requires the bearer token forwarded by the chat frontend; without it no
// backend call is made.
type CheckOrderStatus struct {
	client commerce.Client
	logger *slog.Logger
}

// NewCheckOrderStatus constructs CheckOrderStatus.
func NewCheckOrderStatus(client commerce.Client, logger *slog.Logger) *CheckOrderStatus {
	return &CheckOrderStatus{client: client, logger: logger}
}

func (a *CheckOrderStatus) Name() string { return "action_check_order_status" }

func (a *CheckOrderStatus) Run(ctx context.Context, tracker *rasa.Tracker, d *rasa.Dispatcher) []rasa.Event {
	token := tracker.AuthToken()
	if token == "" {
		a.logger.Warn("auth token missing", slog.String("action", a.Name()))
		d.UtterTemplate(templateAuthError)
		return nil
	}

	orders, err := a.client.Orders(ctx, token)
	if err != nil {
		reportOrderFailure(a.logger, a.Name(), err, d)
		return nil
	}

	if len(orders) == 0 {
		d.UtterTemplate(templateNoOrdersFound)
		return nil
	}

	d.UtterTemplate(templateOrdersFoundIntro)
	for _, order := range orders[:min(len(orders), orderStatusDisplayLimit)] {
		status := orDefault(usecase.TranslateOrderStatus(order.Status), "Status Tidak Diketahui")
		message := fmt.Sprintf(
			"- Pesanan **%s** di **%s**\n  Status: **%s**\n  Total: Rp %s\n  Item: %s\n  Dipesan pada: %s",
			orDefault(order.OrderID, "ID Tidak Diketahui"),
			orDefault(order.ShopName, "Toko tidak diketahui"),
			status,
			formatPrice(order.TotalPrice),
			strings.Join(order.ItemNames(), ", "),
			dateOnly(order.CreatedAt),
		)
		d.Utter(message)
	}

	return nil
}
