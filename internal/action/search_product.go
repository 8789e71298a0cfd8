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

// SearchProducts answers a keyword product search from the latest
// product_name entity or the stored slot.
type SearchProducts struct {
	client commerce.Client
	logger *slog.Logger
}

// NewSearchProducts constructs SearchProducts.
func NewSearchProducts(client commerce.Client, logger *slog.Logger) *SearchProducts {
	return &SearchProducts{client: client, logger: logger}
}

func (a *SearchProducts) Name() string { return "action_search_product_api" }

// Run searches by term, ranks results, and shows the top matches. The
// product slot is cleared on every exit path so a stale query never leaks
// into the next turn.
func (a *SearchProducts) Run(ctx context.Context, tracker *rasa.Tracker, d *rasa.Dispatcher) []rasa.Event {
	clearSlot := []rasa.Event{rasa.ClearSlot(slotProductName)}

	term := tracker.LatestEntityValue(entityProductName)
	if term == "" {
		term = tracker.Slot(slotProductName)
	}
	if term == "" {
		d.Utter("Produk apa yang ingin Anda cari?")
		return clearSlot
	}

	products, err := a.client.SearchProducts(ctx, term)
	if err != nil {
		reportCatalogFailure(a.logger, a.Name(), err, d, catalogMessages{
			connection: "Maaf, tidak dapat terhubung ke layanan produk. Periksa koneksi Anda.",
			format:     "Maaf, ada masalah dengan format data dari layanan produk.",
			status: func(code int) string {
				return fmt.Sprintf("Maaf, gagal mengambil data produk dari server (status: %d).", code)
			},
			upstream: func(message string) string { return "Info dari server: " + message },
			generic:  "Maaf, terjadi kesalahan yang tidak terduga saat memproses permintaan produk Anda.",
		})
		return clearSlot
	}

	if len(products) == 0 {
		d.Utter(fmt.Sprintf("Maaf, saya tidak menemukan produk dengan nama yang mirip '%s'.", term))
		return clearSlot
	}

	view := usecase.Rank(products, searchLimit)

	var b strings.Builder
	fmt.Fprintf(&b, "Berikut produk yang kami temukan untuk '%s':\n", term)
	for _, p := range view.Items {
		writeProduct(&b, p, true, "menu")
	}
	if view.Omitted > 0 {
		fmt.Fprintf(&b, "\nDan %d produk lainnya.", view.Omitted)
	}
	d.Utter(b.String())

	return clearSlot
}
