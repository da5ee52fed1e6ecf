package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/rl1809/warehouse-mesh/internal/core/domain"
	"github.com/rl1809/warehouse-mesh/internal/core/service"
)

// HTTPHandler exposes the warehouse operations as JSON endpoints. The routes
// mirror the gRPC surface: a batch in, either nothing or a fulfillment bag out.
type HTTPHandler struct {
	warehouse *service.WarehouseService
	logger    *zap.Logger
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewHTTPHandler(warehouse *service.WarehouseService, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{warehouse: warehouse, logger: logger}
}

// AddStock handles POST /item/add-stock.
func (h *HTTPHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	items, ok := h.decodeBatch(w, r)
	if !ok {
		return
	}

	if err := h.warehouse.AddStock(r.Context(), items); err != nil {
		h.logger.Error("add stock failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Message: "batch failed"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetItems handles POST /item/get-items.
func (h *HTTPHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	items, ok := h.decodeBatch(w, r)
	if !ok {
		return
	}

	fulfilled, err := h.warehouse.GetItems(r.Context(), items)
	if err != nil {
		h.logger.Error("get items failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Message: "batch failed"})
		return
	}
	if fulfilled == nil {
		fulfilled = []domain.Item{}
	}
	writeJSON(w, http.StatusOK, fulfilled)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) decodeBatch(w http.ResponseWriter, r *http.Request) ([]domain.Item, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}

	var items []domain.Item
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return nil, false
	}
	for _, item := range items {
		if item.ArticleName == "" || item.Quantity <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "items need an article name and a positive quantity"})
			return nil, false
		}
	}
	return items, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
