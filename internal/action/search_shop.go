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

// SearchShops answers a keyword shop search from the latest shop_name
// entity or the stored slot.
type SearchShops struct {
	client commerce.Client
	logger *slog.Logger
}

// NewSearchShops constructs SearchShops.
func NewSearchShops(client commerce.Client, logger *slog.Logger) *SearchShops {
	return &SearchShops{client: client, logger: logger}
}

func (a *SearchShops) Name() string { return "action_search_shop_api" }

func (a *SearchShops) Run(ctx context.Context, tracker *rasa.Tracker, d *rasa.Dispatcher) []rasa.Event {
	clearSlot := []rasa.Event{rasa.ClearSlot(slotShopName)}

	term := tracker.LatestEntityValue(entityShopName)
	if term == "" {
		term = tracker.Slot(slotShopName)
	}
	if term == "" {
		// Reaching here means the collect step upstream failed to fill
		// the slot; apologize rather than ask again.
		d.Utter("Maaf, terjadi kesalahan dalam memproses nama toko.")
		return clearSlot
	}

	shops, err := a.client.SearchShops(ctx, term)
	if err != nil {
		reportCatalogFailure(a.logger, a.Name(), err, d, catalogMessages{
			connection: "Maaf, tidak dapat terhubung ke layanan toko. Periksa koneksi Anda.",
			format:     "Maaf, ada masalah dengan format data dari layanan toko.",
			status: func(code int) string {
				return fmt.Sprintf("Maaf, gagal mengambil data pencarian toko dari server (status: %d).", code)
			},
			upstream: func(message string) string { return "Info dari server: " + message },
			generic:  "Maaf, terjadi kesalahan yang tidak terduga saat memproses permintaan pencarian toko Anda.",
		})
		return clearSlot
	}

	if len(shops) == 0 {
		d.Utter(fmt.Sprintf("Maaf, saya tidak menemukan toko dengan nama '%s'.", term))
		return clearSlot
	}

	view := usecase.Rank(shops, searchLimit)

	var b strings.Builder
	fmt.Fprintf(&b, "Berikut hasil pencarian toko dengan nama '%s':\n", term)
	for _, s := range view.Items {
		writeShop(&b, s, true)
	}
	if view.Omitted > 0 {
		fmt.Fprintf(&b, "\nDan %d toko lainnya yang cocok.", view.Omitted)
	}
	d.Utter(b.String())

	return clearSlot
}
