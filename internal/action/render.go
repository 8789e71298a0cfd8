package action

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/domain/model"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/usecase"
)

// Result window sizes: tight for keyword search, wider for full listings,
// unbounded for recommendations.
const (
	searchLimit = 5
	listLimit   = 10
)

// formatPrice renders a backend price number the way the storefront does:
// no thousand separators, no trailing zeros.
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// dateOnly cuts an ISO timestamp down to its date part.
func dateOnly(timestamp string) string {
	date, _, _ := strings.Cut(timestamp, "T")
	return date
}

// orDefault substitutes a placeholder for empty backend fields.
func orDefault(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// upperFirst capitalizes the first rune only.
func upperFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// titleCaseMethod turns a raw payment method code into display form:
// underscores become spaces, every word is capitalized.
func titleCaseMethod(method string) string {
	words := strings.Split(strings.ToLower(strings.ReplaceAll(method, "_", " ")), " ")
	for i, w := range words {
		words[i] = upperFirst(w)
	}
	return strings.Join(words, " ")
}

// writeProduct appends one product entry in the shared list layout.
// badgeNoun is the word used inside badge lines ("menu" or "produk").
func writeProduct(b *strings.Builder, p model.Product, withStock bool, badgeNoun string) {
	fmt.Fprintf(b, "\n- **%s**", orDefault(p.Name, "Nama tidak tersedia"))
	if p.RatingCount > 0 {
		fmt.Fprintf(b, " (⭐ %.1f/5 dari %d ulasan)", p.AverageRating, p.RatingCount)
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "  Harga: Rp %s\n", formatPrice(p.Price))
	fmt.Fprintf(b, "  Kategori: %s\n", orDefault(p.Category, "Tidak diketahui"))
	if withStock {
		fmt.Fprintf(b, "  Stok: %d\n", p.Stock)
	}
	if p.ImageURL != "" {
		fmt.Fprintf(b, "  Foto: %s\n", p.ImageURL)
	}
	switch usecase.ItemBadge(p) {
	case usecase.BadgeHighlyRecommended:
		fmt.Fprintf(b, "  ✨ *%s ini sangat direkomendasikan!*\n", upperFirst(badgeNoun))
	case usecase.BadgeGoodRating:
		fmt.Fprintf(b, "  👍 *Rating %s ini bagus!*\n", badgeNoun)
	}
}

// writeShop appends one shop entry; optional fields render only when the
// backend supplied them.
func writeShop(b *strings.Builder, s model.Shop, withDescription bool) {
	fmt.Fprintf(b, "\n- **%s**\n", orDefault(s.Name, "Nama toko tidak tersedia"))
	if s.Address != "" {
		fmt.Fprintf(b, "  Alamat: %s\n", s.Address)
	}
	if s.OwnerName != "" {
		fmt.Fprintf(b, "  Pemilik: %s\n", s.OwnerName)
	}
	if withDescription && s.Description != "" {
		fmt.Fprintf(b, "  Deskripsi: %s\n", s.Description)
	}
	if s.BannerImageURL != "" {
		fmt.Fprintf(b, "  Banner: %s\n", s.BannerImageURL)
	}
}
