package action

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/adapter/commerce"
	domainErrors "github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/domain/errors"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/domain/model"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/rasa"
	testhelpers "github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/test"
)

func TestCheckOrderStatusWithoutTokenStaysOffline(t *testing.T) {
	// No bearer token in the message metadata: the action answers with the
	// login prompt and never touches the backend.
	stub := &testhelpers.CommerceClientStub{}

	var d rasa.Dispatcher
	events := NewCheckOrderStatus(stub, testLogger()).Run(context.Background(), testhelpers.NewTracker(nil), &d)

	if len(events) != 0 {
		t.Fatalf("expected no events, got %+v", events)
	}
	if stub.Calls != 0 {
		t.Fatalf("expected no backend call, got %d", stub.Calls)
	}
	if !hasTemplate(&d, templateAuthError) {
		t.Fatalf("expected auth template, got %+v", d.Responses())
	}
}

func TestCheckOrderStatusRendersRecentOrders(t *testing.T) {
	orders := []model.Order{
		{
			OrderID:    "ORD-001",
			ShopName:   "Ayam Bakar Nusantara",
			Items:      []model.OrderItem{{Name: "Ayam Bakar"}, {Name: "Es Teh"}},
			TotalPrice: 55000,
			Status:     "PROCESSING",
			CreatedAt:  "2026-08-20T09:15:00Z",
		},
		{OrderID: "ORD-002", Status: "READY_FOR_PICKUP", CreatedAt: "2026-08-18T12:00:00Z"},
		{OrderID: "ORD-003", Status: "misteri"},
		{OrderID: "ORD-004", Status: "COMPLETED"},
	}
	stub := &testhelpers.CommerceClientStub{
		OrdersFn: func(ctx context.Context, token string) ([]model.Order, error) {
			if token != "tok-123" {
				t.Fatalf("expected forwarded token, got %q", token)
			}
			return orders, nil
		},
	}

	var d rasa.Dispatcher
	tracker := testhelpers.WithAuthToken(testhelpers.NewTracker(nil), "tok-123")
	NewCheckOrderStatus(stub, testLogger()).Run(context.Background(), tracker, &d)

	if !hasTemplate(&d, templateOrdersFoundIntro) {
		t.Fatalf("expected intro template, got %+v", d.Responses())
	}
	text := allText(&d)
	for _, want := range []string{
		"Pesanan **ORD-001** di **Ayam Bakar Nusantara**",
		"Status: **Sedang Diproses**",
		"Total: Rp 55000",
		"Item: Ayam Bakar, Es Teh",
		"Dipesan pada: 2026-08-20",
		"Status: **Siap Diambil**",
		// Unknown codes pass through verbatim.
		"Status: **misteri**",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in reply:\n%s", want, text)
		}
	}
	if strings.Contains(text, "ORD-004") {
		t.Fatalf("expected only the first three orders, got:\n%s", text)
	}
	if !strings.Contains(text, "Toko tidak diketahui") {
		t.Fatalf("expected shop placeholder for ORD-002:\n%s", text)
	}
}

func TestCheckOrderStatusNoOrders(t *testing.T) {
	stub := &testhelpers.CommerceClientStub{
		OrdersFn: func(ctx context.Context, token string) ([]model.Order, error) {
			return []model.Order{}, nil
		},
	}

	var d rasa.Dispatcher
	tracker := testhelpers.WithAuthToken(testhelpers.NewTracker(nil), "tok")
	NewCheckOrderStatus(stub, testLogger()).Run(context.Background(), tracker, &d)

	if !hasTemplate(&d, templateNoOrdersFound) {
		t.Fatalf("expected no-orders template, got %+v", d.Responses())
	}
}

func TestCheckOrderStatusFailureMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantText string
		wantTmpl string
	}{
		{name: "connection", err: commerce.ConnectionError{Cause: errors.New("refused")}, wantText: "tidak dapat terhubung ke layanan pesanan"},
		{name: "format", err: commerce.FormatError{Cause: errors.New("bad json")}, wantText: "format data dari layanan pesanan"},
		{name: "missing token sentinel", err: domainErrors.ErrAuthRequired, wantTmpl: templateAuthError},
		{name: "expired token", err: commerce.StatusError{Code: 401}, wantTmpl: templateAuthError},
		{name: "forbidden", err: commerce.StatusError{Code: 403}, wantTmpl: templateAuthError},
		{name: "server error", err: commerce.StatusError{Code: 503}, wantTmpl: templateAPIError},
		{name: "backend denial", err: commerce.UpstreamError{Message: "Akses ditolak. Token tidak valid."}, wantTmpl: templateAuthError},
		{name: "backend message", err: commerce.UpstreamError{Message: "Layanan sedang dalam pemeliharaan"}, wantText: "Info dari server: Layanan sedang dalam pemeliharaan"},
		{name: "unexpected", err: errors.New("boom"), wantText: "kesalahan yang tidak terduga"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &testhelpers.CommerceClientStub{
				OrdersFn: func(ctx context.Context, token string) ([]model.Order, error) {
					return nil, tc.err
				},
			}

			var d rasa.Dispatcher
			tracker := testhelpers.WithAuthToken(testhelpers.NewTracker(nil), "tok")
			NewCheckOrderStatus(stub, testLogger()).Run(context.Background(), tracker, &d)

			if tc.wantTmpl != "" {
				if !hasTemplate(&d, tc.wantTmpl) {
					t.Fatalf("expected template %q, got %+v", tc.wantTmpl, d.Responses())
				}
				return
			}
			if !strings.Contains(allText(&d), tc.wantText) {
				t.Fatalf("expected %q in reply, got:\n%s", tc.wantText, allText(&d))
			}
		})
	}
}

func TestCheckPaymentStatusWithoutToken(t *testing.T) {
	stub := &testhelpers.CommerceClientStub{}

	var d rasa.Dispatcher
	NewCheckPaymentStatus(stub, testLogger()).Run(context.Background(), testhelpers.NewTracker(nil), &d)

	if stub.Calls != 0 {
		t.Fatalf("expected no backend call, got %d", stub.Calls)
	}
	if !hasTemplate(&d, templateAuthError) {
		t.Fatalf("expected auth template, got %+v", d.Responses())
	}
}

func TestCheckPaymentStatusRendersPaidOrder(t *testing.T) {
	stub := &testhelpers.CommerceClientStub{
		OrdersFn: func(ctx context.Context, token string) ([]model.Order, error) {
			return []model.Order{{
				OrderID:  "ORD-010",
				ShopName: "Warung Bu Sri",
				Items:    []model.OrderItem{{Name: "Ayam Bakar"}, {Name: "Nasi"}, {Name: "Sambal"}, {Name: "Es Jeruk"}},
				Payment: &model.Payment{
					Method:            "pay_at_store",
					Status:            "PAID",
					ConfirmedAt:       "2026-08-21T10:30:00Z",
					ConfirmationNotes: "Diterima kasir",
				},
			}}, nil
		},
	}

	var d rasa.Dispatcher
	tracker := testhelpers.WithAuthToken(testhelpers.NewTracker(nil), "tok")
	NewCheckPaymentStatus(stub, testLogger()).Run(context.Background(), tracker, &d)

	if !hasTemplate(&d, templatePaymentStatusIntro) {
		t.Fatalf("expected payment intro template, got %+v", d.Responses())
	}
	text := allText(&d)
	for _, want := range []string{
		"- Pesanan **ORD-010** di **Warung Bu Sri** (Ayam Bakar, Nasi dll.):",
		"Status Pembayaran: **Lunas (Sudah Dibayar)**",
		"Metode: Pay At Store",
		"Dikonfirmasi pada: 2026-08-21",
		"Catatan Konfirmasi: Diterima kasir",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in reply:\n%s", want, text)
		}
	}
}

func TestCheckPaymentStatusPendingAndMissingDetails(t *testing.T) {
	stub := &testhelpers.CommerceClientStub{
		OrdersFn: func(ctx context.Context, token string) ([]model.Order, error) {
			return []model.Order{
				{
					OrderID: "ORD-020",
					Items:   []model.OrderItem{{Name: "Nasi Uduk"}},
					Payment: &model.Payment{Method: "pay_on_delivery", Status: "pay_on_pickup", ConfirmedAt: "2026-08-01T00:00:00Z"},
				},
				{OrderID: "ORD-021"},
			}, nil
		},
	}

	var d rasa.Dispatcher
	tracker := testhelpers.WithAuthToken(testhelpers.NewTracker(nil), "tok")
	NewCheckPaymentStatus(stub, testLogger()).Run(context.Background(), tracker, &d)

	text := allText(&d)
	if !strings.Contains(text, "Status Pembayaran: **Bayar di Tempat (saat pengambilan)**") {
		t.Fatalf("expected pickup translation for non-store method:\n%s", text)
	}
	// Confirmation lines only accompany settled payments.
	if strings.Contains(text, "Dikonfirmasi pada") {
		t.Fatalf("unsettled payment must not show confirmation date:\n%s", text)
	}
	if !strings.Contains(text, "Detail pembayaran tidak tersedia.") {
		t.Fatalf("expected missing-payment line for ORD-021:\n%s", text)
	}
}

func TestCheckPaymentStatusLimitsOrders(t *testing.T) {
	stub := &testhelpers.CommerceClientStub{
		OrdersFn: func(ctx context.Context, token string) ([]model.Order, error) {
			orders := make([]model.Order, 0, 7)
			for _, id := range []string{"A", "B", "C", "D", "E", "F", "G"} {
				orders = append(orders, model.Order{OrderID: "ORD-" + id})
			}
			return orders, nil
		},
	}

	var d rasa.Dispatcher
	tracker := testhelpers.WithAuthToken(testhelpers.NewTracker(nil), "tok")
	NewCheckPaymentStatus(stub, testLogger()).Run(context.Background(), tracker, &d)

	text := allText(&d)
	if !strings.Contains(text, "ORD-E") {
		t.Fatalf("expected fifth order present:\n%s", text)
	}
	if strings.Contains(text, "ORD-F") {
		t.Fatalf("expected at most five orders:\n%s", text)
	}
}

func TestDefaultFallback(t *testing.T) {
	var d rasa.Dispatcher
	events := NewDefaultFallback().Run(context.Background(), testhelpers.NewTracker(nil), &d)

	if len(events) != 0 {
		t.Fatalf("expected no events, got %+v", events)
	}
	if !hasTemplate(&d, templateCoreFallback) {
		t.Fatalf("expected fallback template, got %+v", d.Responses())
	}
}
