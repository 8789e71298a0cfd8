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

// ListShops shows all registered shops, best reviewed first.
type ListShops struct {
	client commerce.Client
	logger *slog.Logger
}

// NewListShops constructs ListShops.
func NewListShops(client commerce.Client, logger *slog.Logger) *ListShops {
	return &ListShops{client: client, logger: logger}
}

func (a *ListShops) Name() string { return "action_list_shops_api" }

func (a *ListShops) Run(ctx context.Context, tracker *rasa.Tracker, d *rasa.Dispatcher) []rasa.Event {
	d.Utter("Baik, saya carikan daftar semua toko yang tersedia...")

	shops, err := a.client.ListShops(ctx)
	if err != nil {
		reportCatalogFailure(a.logger, a.Name(), err, d, catalogMessages{
			connection: "Maaf, tidak dapat terhubung ke layanan toko. Periksa koneksi Anda.",
			format:     "Maaf, ada masalah dengan format data dari layanan toko.",
			status: func(code int) string {
				return fmt.Sprintf("Maaf, gagal mengambil daftar semua toko dari server (status: %d).", code)
			},
			upstream: func(message string) string { return "Info dari server: " + message },
			generic:  "Maaf, terjadi kesalahan yang tidak terduga saat memproses permintaan daftar toko Anda.",
		})
		return nil
	}

	if len(shops) == 0 {
		d.Utter("Maaf, saat ini tidak ada toko yang terdaftar.")
		return nil
	}

	view := usecase.Rank(shops, listLimit)

	var b strings.Builder
	b.WriteString("Berikut adalah daftar toko yang tersedia:\n")
	for _, s := range view.Items {
		writeShop(&b, s, false)
	}
	if view.Omitted > 0 {
		fmt.Fprintf(&b, "\n...dan %d toko lainnya.", view.Omitted)
	}
	d.Utter(b.String())

	return nil
}
