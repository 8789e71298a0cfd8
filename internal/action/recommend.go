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

// RecommendProducts shows the curated recommendation list. Unlike the
// search and listing actions it never truncates: the backend already
// limits the set.
type RecommendProducts struct {
	client commerce.Client
	logger *slog.Logger
}

// NewRecommendProducts constructs RecommendProducts.
func NewRecommendProducts(client commerce.Client, logger *slog.Logger) *RecommendProducts {
	return &RecommendProducts{client: client, logger: logger}
}

func (a *RecommendProducts) Name() string { return "action_recommend_products" }

func (a *RecommendProducts) Run(ctx context.Context, tracker *rasa.Tracker, d *rasa.Dispatcher) []rasa.Event {
	products, err := a.client.Recommendations(ctx)
	if err != nil {
		reportCatalogFailure(a.logger, a.Name(), err, d, catalogMessages{
			connection: "Maaf, tidak dapat terhubung ke layanan produk untuk rekomendasi. Periksa koneksi Anda.",
			format:     "Maaf, ada masalah dengan format data dari layanan rekomendasi produk.",
			status: func(code int) string {
				return fmt.Sprintf("Gagal mengambil data rekomendasi produk dari server (status: %d).", code)
			},
			upstream: func(message string) string {
				return "Info dari server saat mengambil rekomendasi: " + message
			},
			generic: "Maaf, terjadi kesalahan yang tidak terduga saat mencoba memberikan rekomendasi produk.",
		})
		return nil
	}

	if len(products) == 0 {
		d.Utter("Maaf, saya tidak menemukan produk yang bisa direkomendasikan saat ini.")
		return nil
	}

	view := usecase.Rank(products, 0)

	var b strings.Builder
	b.WriteString("Berikut semua produk rekomendasi terbaik dari kami:\n")
	for _, p := range view.Items {
		writeProduct(&b, p, false, "produk")
	}
	d.Utter(b.String())

	return nil
}
