package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/rl1809/warehouse-mesh/internal/core/domain"
	"github.com/rl1809/warehouse-mesh/internal/core/service"
	"github.com/rl1809/warehouse-mesh/internal/metrics"
	"github.com/rl1809/warehouse-mesh/internal/telemetry"
)

type stubLedger struct {
	mu    sync.Mutex
	stock map[string]int
	err   error
}

func newStubLedger() *stubLedger {
	return &stubLedger{stock: make(map[string]int)}
}

func (s *stubLedger) Deposit(ctx context.Context, items []domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for _, item := range items {
		s.stock[item.ArticleName] += item.Quantity
	}
	return nil
}

func (s *stubLedger) Reserve(ctx context.Context, items []domain.Item) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	fulfilled := make([]domain.Item, 0, len(items))
	for _, item := range items {
		take := min(item.Quantity, s.stock[item.ArticleName])
		s.stock[item.ArticleName] -= take
		fulfilled = append(fulfilled, domain.Item{ArticleName: item.ArticleName, Quantity: take})
	}
	return fulfilled, nil
}

func (s *stubLedger) Stock(ctx context.Context, articleName string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stock[articleName], nil
}

type stubPeer struct{}

func (stubPeer) AddStock(ctx context.Context, peerIndex int, items []domain.Item) error {
	return nil
}

func (stubPeer) GetItems(ctx context.Context, peerIndex int, items []domain.Item) ([]domain.Item, error) {
	return items, nil
}

func newTestWarehouse(t *testing.T, ledger *stubLedger) *service.WarehouseService {
	t.Helper()

	// Everything stays local and fault injection is off, so handler tests
	// see deterministic outcomes.
	router, err := service.NewRouter(0, 2, 0, 1)
	if err != nil {
		t.Fatalf("failed to build router: %v", err)
	}
	return service.NewWarehouseService(
		ledger,
		stubPeer{},
		router,
		domain.NewFailureFaker(1, 0, nil),
		telemetry.NewActivity(otel.Tracer("test"), telemetry.NewEntityTracker()),
		metrics.NewCollector(prometheus.NewRegistry()),
		zap.NewNop(),
	)
}

func newTestHTTPHandler(t *testing.T, ledger *stubLedger) *HTTPHandler {
	t.Helper()
	return NewHTTPHandler(newTestWarehouse(t, ledger), zap.NewNop())
}

func TestHTTPAddStock_Success(t *testing.T) {
	ledger := newStubLedger()
	h := newTestHTTPHandler(t, ledger)

	req := httptest.NewRequest(http.MethodPost, "/item/add-stock",
		strings.NewReader(`[{"article_name":"Widget","quantity":10}]`))
	rec := httptest.NewRecorder()
	h.AddStock(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := ledger.stock["Widget"]; got != 10 {
		t.Errorf("expected stock 10, got %d", got)
	}
}

func TestHTTPGetItems_ReturnsFulfillmentBag(t *testing.T) {
	ledger := newStubLedger()
	ledger.stock["Widget"] = 10
	h := newTestHTTPHandler(t, ledger)

	req := httptest.NewRequest(http.MethodPost, "/item/get-items",
		strings.NewReader(`[{"article_name":"Widget","quantity":15}]`))
	rec := httptest.NewRecorder()
	h.GetItems(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var fulfilled []domain.Item
	if err := json.NewDecoder(rec.Body).Decode(&fulfilled); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(fulfilled) != 1 || fulfilled[0].ArticleName != "Widget" || fulfilled[0].Quantity != 10 {
		t.Errorf("expected Widget fulfilled with 10, got %v", fulfilled)
	}
}

func TestHTTPGetItems_EmptyBagIsJSONArray(t *testing.T) {
	h := newTestHTTPHandler(t, newStubLedger())

	req := httptest.NewRequest(http.MethodPost, "/item/get-items",
		strings.NewReader(`[]`))
	rec := httptest.NewRecorder()
	h.GetItems(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestHTTPAddStock_RejectsInvalidBody(t *testing.T) {
	h := newTestHTTPHandler(t, newStubLedger())

	req := httptest.NewRequest(http.MethodPost, "/item/add-stock",
		strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	h.AddStock(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHTTPAddStock_RejectsInvalidItems(t *testing.T) {
	h := newTestHTTPHandler(t, newStubLedger())

	for name, body := range map[string]string{
		"empty article name": `[{"article_name":"","quantity":3}]`,
		"zero quantity":      `[{"article_name":"Widget","quantity":0}]`,
		"negative quantity":  `[{"article_name":"Widget","quantity":-1}]`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/item/add-stock", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.AddStock(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestHTTPAddStock_RejectsNonPost(t *testing.T) {
	h := newTestHTTPHandler(t, newStubLedger())

	req := httptest.NewRequest(http.MethodGet, "/item/add-stock", nil)
	rec := httptest.NewRecorder()
	h.AddStock(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestHTTPAddStock_LedgerErrorIsBadGateway(t *testing.T) {
	ledger := newStubLedger()
	ledger.err = errors.New("storage down")
	h := newTestHTTPHandler(t, ledger)

	req := httptest.NewRequest(http.MethodPost, "/item/add-stock",
		strings.NewReader(`[{"article_name":"Widget","quantity":10}]`))
	rec := httptest.NewRecorder()
	h.AddStock(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if resp.Message == "" {
		t.Error("expected an error message")
	}
}

func TestHTTPHealthCheck(t *testing.T) {
	h := newTestHTTPHandler(t, newStubLedger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.HealthCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
