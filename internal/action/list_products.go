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

// ListProducts shows the full product catalog, highest rated first.
type ListProducts struct {
	client commerce.Client
	logger *slog.Logger
}

// NewListProducts constructs ListProducts.
func NewListProducts(client commerce.Client, logger *slog.Logger) *ListProducts {
	return &ListProducts{client: client, logger: logger}
}

func (a *ListProducts) Name() string { return "action_list_products_api" }

func (a *ListProducts) Run(ctx context.Context, tracker *rasa.Tracker, d *rasa.Dispatcher) []rasa.Event {
	d.Utter("Baik, saya carikan daftar semua produk yang tersedia...")

	products, err := a.client.ListProducts(ctx)
	if err != nil {
		reportCatalogFailure(a.logger, a.Name(), err, d, catalogMessages{
			connection: "Maaf, tidak dapat terhubung ke layanan produk. Periksa koneksi Anda.",
			format:     "Maaf, ada masalah dengan format data dari layanan produk.",
			status: func(code int) string {
				return fmt.Sprintf("Maaf, gagal mengambil daftar produk dari server (status: %d).", code)
			},
			upstream: func(message string) string { return "Info dari server: " + message },
			generic:  "Maaf, terjadi kesalahan yang tidak terduga saat memproses permintaan daftar produk Anda.",
		})
		return nil
	}

	if len(products) == 0 {
		d.Utter("Maaf, saat ini tidak ada produk yang tersedia.")
		return nil
	}

	view := usecase.Rank(products, listLimit)

	var b strings.Builder
	b.WriteString("Berikut adalah daftar produk yang tersedia:\n")
	for _, p := range view.Items {
		writeProduct(&b, p, false, "menu")
	}
	if view.Omitted > 0 {
		fmt.Fprintf(&b, "\n...dan %d produk lainnya.", view.Omitted)
	}
	d.Utter(b.String())

	return nil
}
