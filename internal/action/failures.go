package action

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/adapter/commerce"
	domainErrors "github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/domain/errors"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/rasa"
)

// catalogMessages carries the per-action apology wording for catalog
// lookups (products, shops, recommendations).
type catalogMessages struct {
	connection string
	format     string
	status     func(code int) string
	upstream   func(message string) string
	generic    string
}

// reportCatalogFailure converts a commerce error into exactly one reply.
// The cause is logged for operators and never surfaced to the user.
func reportCatalogFailure(logger *slog.Logger, action string, err error, d *rasa.Dispatcher, m catalogMessages) {
	logFailure(logger, action, err)

	var (
		connErr     commerce.ConnectionError
		formatErr   commerce.FormatError
		statusErr   commerce.StatusError
		upstreamErr commerce.UpstreamError
	)
	switch {
	case errors.As(err, &connErr):
		d.Utter(m.connection)
	case errors.As(err, &formatErr):
		d.Utter(m.format)
	case errors.As(err, &statusErr):
		if statusErr.Auth() {
			d.UtterTemplate(templateAuthError)
			return
		}
		d.Utter(m.status(statusErr.Code))
	case errors.As(err, &upstreamErr):
		d.Utter(m.upstream(upstreamErr.Message))
	default:
		d.Utter(m.generic)
	}
}

// reportOrderFailure maps commerce errors for the order endpoints, where
// canned templates replace free-text apologies and backend access-denied
// messages count as authentication failures.
func reportOrderFailure(logger *slog.Logger, action string, err error, d *rasa.Dispatcher) {
	logFailure(logger, action, err)

	var (
		connErr     commerce.ConnectionError
		formatErr   commerce.FormatError
		statusErr   commerce.StatusError
		upstreamErr commerce.UpstreamError
	)
	switch {
	case errors.Is(err, domainErrors.ErrAuthRequired):
		d.UtterTemplate(templateAuthError)
	case errors.As(err, &connErr):
		d.Utter("Maaf, tidak dapat terhubung ke layanan pesanan.")
	case errors.As(err, &formatErr):
		d.Utter("Maaf, ada masalah dengan format data dari layanan pesanan.")
	case errors.As(err, &statusErr):
		if statusErr.Auth() {
			d.UtterTemplate(templateAuthError)
			return
		}
		d.UtterTemplate(templateAPIError)
	case errors.As(err, &upstreamErr):
		if deniedByBackend(upstreamErr.Message) {
			d.UtterTemplate(templateAuthError)
			return
		}
		d.Utter("Info dari server: " + upstreamErr.Message)
	default:
		d.Utter("Maaf, terjadi kesalahan yang tidak terduga saat memproses permintaan Anda.")
	}
}

// deniedByBackend sniffs the backend's own access-denied phrasing inside a
// success:false message.
func deniedByBackend(message string) bool {
	return strings.Contains(message, "Akses ditolak") || strings.Contains(message, "Token tidak disertakan")
}

func logFailure(logger *slog.Logger, action string, err error) {
	logger.Error("action failed",
		slog.String("action", action),
		slog.String("error", err.Error()),
	)
}
