package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/action"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/rasa"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/server/http/dto"
	testhelpers "github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// actionStub is a minimal action for handler tests.
type actionStub struct {
	name string
	runF func(ctx context.Context, tracker *rasa.Tracker, d *rasa.Dispatcher) []rasa.Event
}

func (a actionStub) Name() string { return a.name }

func (a actionStub) Run(ctx context.Context, tracker *rasa.Tracker, d *rasa.Dispatcher) []rasa.Event {
	if a.runF != nil {
		return a.runF(ctx, tracker, d)
	}
	return nil
}

func performWebhook(t *testing.T, h *WebhookHandler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.POST("/webhook", h.Run)
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWebhookRunsAction(t *testing.T) {
	var gotSender, gotEntity string
	registry := action.NewRegistry(actionStub{
		name: "action_search_product_api",
		runF: func(ctx context.Context, tracker *rasa.Tracker, d *rasa.Dispatcher) []rasa.Event {
			gotSender = tracker.SenderID
			gotEntity = tracker.LatestEntityValue("product_name")
			d.Utter("Berikut hasilnya")
			return []rasa.Event{rasa.ClearSlot("product_name_slot")}
		},
	})
	handler := NewWebhookHandler(registry, time.Second, testLogger())

	body := []byte(`{
		"next_action": "action_search_product_api",
		"sender_id": "user-1",
		"tracker": {
			"sender_id": "user-1",
			"slots": {"product_name_slot": null},
			"latest_message": {
				"text": "cari nasi goreng",
				"intent": {"name": "search_product", "confidence": 0.97},
				"entities": [{"entity": "product_name", "value": "Nasi Goreng"}],
				"metadata": {"authToken": "tok"}
			}
		},
		"domain": {}
	}`)
	resp := performWebhook(t, handler, body)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if gotSender != "user-1" || gotEntity != "Nasi Goreng" {
		t.Fatalf("tracker not forwarded: sender=%q entity=%q", gotSender, gotEntity)
	}

	var out dto.WebhookResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(out.Events) != 1 || out.Events[0].Event != "slot" || out.Events[0].Name != "product_name_slot" {
		t.Fatalf("unexpected events %+v", out.Events)
	}
	if len(out.Responses) != 1 || out.Responses[0].Text != "Berikut hasilnya" {
		t.Fatalf("unexpected responses %+v", out.Responses)
	}
	// The wire body carries an explicit null for the cleared slot.
	if !strings.Contains(resp.Body.String(), `"value":null`) {
		t.Fatalf("expected explicit null slot value in %s", resp.Body.String())
	}
}

func TestWebhookEmptyOutcome(t *testing.T) {
	registry := action.NewRegistry(actionStub{name: "action_silent"})
	handler := NewWebhookHandler(registry, time.Second, testLogger())

	resp := performWebhook(t, handler, []byte(`{"next_action":"action_silent","tracker":{}}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	// Arrays are always present, never null.
	body := resp.Body.String()
	if !strings.Contains(body, `"events":[]`) || !strings.Contains(body, `"responses":[]`) {
		t.Fatalf("expected empty arrays, got %s", body)
	}
}

func TestWebhookSenderFallback(t *testing.T) {
	sender := testhelpers.RandomASCIIString(8, 16)
	var gotSender string
	registry := action.NewRegistry(actionStub{
		name: "action_default_fallback",
		runF: func(ctx context.Context, tracker *rasa.Tracker, d *rasa.Dispatcher) []rasa.Event {
			gotSender = tracker.SenderID
			return nil
		},
	})
	handler := NewWebhookHandler(registry, time.Second, testLogger())

	body, _ := json.Marshal(dto.WebhookRequest{NextAction: "action_default_fallback", SenderID: sender})
	resp := performWebhook(t, handler, body)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotSender != sender {
		t.Fatalf("expected top-level sender %q to backfill the tracker, got %q", sender, gotSender)
	}
}

func TestWebhookMalformedBody(t *testing.T) {
	handler := NewWebhookHandler(action.NewRegistry(), time.Second, testLogger())

	resp := performWebhook(t, handler, []byte(`{"next_action": `))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestWebhookMissingActionName(t *testing.T) {
	handler := NewWebhookHandler(action.NewRegistry(), time.Second, testLogger())

	resp := performWebhook(t, handler, []byte(`{"tracker":{}}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestWebhookUnknownAction(t *testing.T) {
	handler := NewWebhookHandler(action.NewRegistry(), time.Second, testLogger())

	resp := performWebhook(t, handler, []byte(`{"next_action":"action_missing","tracker":{}}`))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	var out dto.WebhookError
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	if out.ActionName != "action_missing" || out.Error == "" {
		t.Fatalf("unexpected error body %+v", out)
	}
}

func TestWebhookAppliesTimeout(t *testing.T) {
	var deadlineSet bool
	registry := action.NewRegistry(actionStub{
		name: "action_slow",
		runF: func(ctx context.Context, tracker *rasa.Tracker, d *rasa.Dispatcher) []rasa.Event {
			_, deadlineSet = ctx.Deadline()
			return nil
		},
	})
	handler := NewWebhookHandler(registry, 50*time.Millisecond, testLogger())

	performWebhook(t, handler, []byte(`{"next_action":"action_slow","tracker":{}}`))

	if !deadlineSet {
		t.Fatal("expected action context to carry a deadline")
	}
}

func TestHealthHandler(t *testing.T) {
	registry := action.NewRegistry(actionStub{name: "action_b"}, actionStub{name: "action_a"})
	handler := NewHealthHandler(registry)

	router := gin.New()
	router.GET("/health", handler.Status)
	router.GET("/actions", handler.Actions)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health reply %d %s", resp.Code, resp.Body.String())
	}

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/actions", nil))
	var out dto.ActionListResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal actions: %v", err)
	}
	if len(out.Actions) != 2 || out.Actions[0] != "action_a" {
		t.Fatalf("expected sorted action names, got %v", out.Actions)
	}
}
