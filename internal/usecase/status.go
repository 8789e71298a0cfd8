package usecase

import (
	"strings"
	"unicode"
)

var orderStatusLabels = map[string]string{
	"PENDING_CONFIRMATION": "Menunggu Konfirmasi Penjual",
	"AWAITING_PAYMENT":     "Menunggu Pembayaran",
	"PROCESSING":           "Sedang Diproses",
	"READY_FOR_PICKUP":     "Siap Diambil",
	"OUT_FOR_DELIVERY":     "Sedang Diantar",
	"COMPLETED":            "Selesai",
	"CANCELLED":            "Dibatalkan",
	"FAILED":               "Gagal",
}

// TranslateOrderStatus maps a raw order status code to its Indonesian
// display label. Unknown codes come back verbatim; the backend may grow
// statuses faster than this table.
func TranslateOrderStatus(code string) string {
	if label, ok := orderStatusLabels[strings.ToUpper(code)]; ok {
		return label
	}
	return code
}

const methodPayAtStore = "pay_at_store"

// TranslatePaymentStatus maps a raw payment status code to its Indonesian
// display label. The payment method acts as a secondary discriminant for
// in-store flows. Unknown codes degrade to a capitalized echo.
func TranslatePaymentStatus(code, method string) string {
	status := strings.ToLower(code)
	atStore := strings.Contains(strings.ToLower(method), methodPayAtStore)

	switch {
	case status == "paid":
		return "Lunas (Sudah Dibayar)"
	case status == "pay_on_pickup":
		if atStore {
			return "Bayar di Toko (saat pengambilan)"
		}
		return "Bayar di Tempat (saat pengambilan)"
	case status == "awaiting_gateway_interaction":
		return "Menunggu Pembayaran Online"
	case status == "pending_confirmation" && atStore:
		return "Menunggu Konfirmasi Pembayaran di Toko"
	case status == "cancelled_by_user":
		return "Dibatalkan oleh Pengguna"
	case status == "failed":
		return "Gagal"
	case status == "expired":
		return "Kedaluwarsa"
	}

	if code == "" {
		return "Status: Tidak Diketahui"
	}
	return "Status: " + capitalize(code)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
