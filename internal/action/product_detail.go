package action

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/adapter/commerce"
	domainErrors "github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/domain/errors"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/rasa"
)

// ShowProductDetail resolves a product name to its identifier via search,
// then fetches and renders the full detail record. The only action with
// two sequential backend calls.
type ShowProductDetail struct {
	client commerce.Client
	logger *slog.Logger
}

// NewShowProductDetail constructs ShowProductDetail.
func NewShowProductDetail(client commerce.Client, logger *slog.Logger) *ShowProductDetail {
	return &ShowProductDetail{client: client, logger: logger}
}

func (a *ShowProductDetail) Name() string { return "action_show_product_detail" }

func (a *ShowProductDetail) Run(ctx context.Context, tracker *rasa.Tracker, d *rasa.Dispatcher) []rasa.Event {
	clearSlot := []rasa.Event{rasa.ClearSlot(slotProductName)}

	name := tracker.LatestEntityValue(entityProductName)
	if name == "" {
		name = tracker.Slot(slotProductName)
	}
	if name == "" {
		d.Utter("Produk mana yang ingin Anda lihat detailnya? Mohon sebutkan namanya.")
		return nil
	}

	id, err := a.resolveProductID(ctx, name)
	if err != nil {
		logFailure(a.logger, a.Name(), err)
		var connErr commerce.ConnectionError
		var formatErr commerce.FormatError
		switch {
		case errors.As(err, &connErr):
			d.Utter("Maaf, tidak dapat terhubung ke layanan produk.")
		case errors.As(err, &formatErr):
			d.Utter("Maaf, ada masalah dengan format data dari layanan produk.")
		default:
			// A failed or empty search reads as "no such product" to the
			// user, whatever the backend said.
			d.Utter(fmt.Sprintf("Maaf, saya tidak bisa menemukan detail untuk produk '%s'. Mungkin nama produknya kurang spesifik atau tidak ada?", name))
		}
		return clearSlot
	}

	product, err := a.client.ProductDetail(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			logFailure(a.logger, a.Name(), err)
			d.Utter(fmt.Sprintf("Maaf, saya tidak bisa menemukan detail untuk produk '%s'. Mungkin nama produknya kurang spesifik atau tidak ada?", name))
			return clearSlot
		}
		reportCatalogFailure(a.logger, a.Name(), err, d, catalogMessages{
			connection: "Maaf, tidak dapat terhubung ke layanan produk.",
			format:     "Maaf, ada masalah dengan format data dari layanan produk.",
			status: func(code int) string {
				return fmt.Sprintf("Maaf, gagal mengambil detail produk dari server (status: %d).", code)
			},
			upstream: func(message string) string { return "Info dari server: " + message },
			generic:  "Maaf, terjadi kesalahan yang tidak terduga saat memproses permintaan Anda.",
		})
		return clearSlot
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Berikut detail untuk **%s**:\n", orDefault(product.Name, "Nama tidak tersedia"))
	if product.Description != "" {
		fmt.Fprintf(&b, "- Deskripsi: %s\n", product.Description)
	}
	fmt.Fprintf(&b, "- Harga: Rp %s\n", formatPrice(product.Price))
	fmt.Fprintf(&b, "- Kategori: %s\n", orDefault(product.Category, "Kategori tidak diketahui"))
	fmt.Fprintf(&b, "- Stok: %d\n", product.Stock)
	if product.RatingCount > 0 {
		fmt.Fprintf(&b, "- Rating: ⭐ %.1f/5 (%d ulasan)\n", product.AverageRating, product.RatingCount)
	} else {
		b.WriteString("- Rating: Belum ada ulasan\n")
	}
	if product.ImageURL != "" {
		fmt.Fprintf(&b, "- Foto: %s\n", product.ImageURL)
	}
	d.Utter(b.String())

	return clearSlot
}

// resolveProductID searches by name and picks the exact case-insensitive
// match, falling back to the first hit.
func (a *ShowProductDetail) resolveProductID(ctx context.Context, name string) (string, error) {
	products, err := a.client.SearchProducts(ctx, name)
	if err != nil {
		return "", err
	}
	if len(products) == 0 {
		return "", fmt.Errorf("no products match %q", name)
	}
	for _, p := range products {
		if strings.EqualFold(p.Name, name) && p.ID != "" {
			return p.ID, nil
		}
	}
	if products[0].ID == "" {
		return "", fmt.Errorf("search hit for %q has no identifier", name)
	}
	return products[0].ID, nil
}
