package action

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/adapter/commerce"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/domain/model"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/rasa"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/usecase"
)

const (
	// Most recent orders shown per payment check.
	paymentDisplayLimit = 5
	// Items listed per order before the "dll." ellipsis.
	paymentItemsShown = 2
)

// CheckPaymentStatus reports payment state per recent order, translating
// raw gateway codes into readable labels.
type CheckPaymentStatus struct {
	client commerce.Client
	logger *slog.Logger
}

// NewCheckPaymentStatus constructs CheckPaymentStatus.
func NewCheckPaymentStatus(client commerce.Client, logger *slog.Logger) *CheckPaymentStatus {
	return &CheckPaymentStatus{client: client, logger: logger}
}

func (a *CheckPaymentStatus) Name() string { return "action_check_payment_status" }

func (a *CheckPaymentStatus) Run(ctx context.Context, tracker *rasa.Tracker, d *rasa.Dispatcher) []rasa.Event {
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

	d.UtterTemplate(templatePaymentStatusIntro)
	for _, order := range orders[:min(len(orders), paymentDisplayLimit)] {
		d.Utter(a.renderOrder(order))
	}

	return nil
}

func (a *CheckPaymentStatus) renderOrder(order model.Order) string {
	items := order.ItemNames()
	shown := items[:min(len(items), paymentItemsShown)]
	itemsDesc := strings.Join(shown, ", ")
	if len(items) > paymentItemsShown {
		itemsDesc += " dll."
	}

	parts := []string{fmt.Sprintf(
		"- Pesanan **%s** di **%s** (%s):",
		orDefault(order.OrderID, "ID Tidak Diketahui"),
		orDefault(order.ShopName, "Toko tidak diketahui"),
		itemsDesc,
	)}

	payment := order.Payment
	if payment == nil {
		parts = append(parts, "  Detail pembayaran tidak tersedia.")
		return strings.Join(parts, "\n")
	}

	readable := usecase.TranslatePaymentStatus(payment.Status, payment.Method)
	parts = append(parts,
		fmt.Sprintf("  Status Pembayaran: **%s**", readable),
		fmt.Sprintf("  Metode: %s", titleCaseMethod(orDefault(payment.Method, "metode tidak diketahui"))),
	)

	if strings.EqualFold(payment.Status, "paid") {
		if payment.ConfirmedAt != "" {
			parts = append(parts, fmt.Sprintf("  Dikonfirmasi pada: %s", dateOnly(payment.ConfirmedAt)))
		}
		if payment.ConfirmationNotes != "" {
			parts = append(parts, fmt.Sprintf("  Catatan Konfirmasi: %s", payment.ConfirmationNotes))
		}
	}

	return strings.Join(parts, "\n")
}
