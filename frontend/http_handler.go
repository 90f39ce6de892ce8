package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dlim2012/distributed-toy-store/common/api"
	"github.com/dlim2012/distributed-toy-store/common/metrics"
)

const (
	// queryTimeout is the deadline for one catalog Query.
	queryTimeout = 3 * time.Second
	// buyTimeout is the deadline for one Buy sent to the leader. Kept
	// short so a leader that died mid-request is noticed quickly.
	buyTimeout = time.Second
	// checkTimeout is the deadline for one Check sent to the leader.
	checkTimeout = 3 * time.Second
)

// Catalog result codes surfaced through Buy in place of an order
// number. Insufficient stock stays a 200 with the code in the payload;
// the other two map to HTTP errors.
const (
	buyInsufficientStock int32 = -1
	buyInvalidQuantity   int32 = -2
	buyUnknownProduct    int32 = -3
)

type handler struct {
	catalog api.CatalogServiceClient
	leader  *LeaderSelector
	cache   ProductCache
	fatal   func(error)
	logger  *slog.Logger
	metrics *metrics.FrontendMetrics
}

func NewHandler(catalog api.CatalogServiceClient, leader *LeaderSelector, cache ProductCache, fatal func(error), logger *slog.Logger, m *metrics.FrontendMetrics) *handler {
	return &handler{
		catalog: catalog,
		leader:  leader,
		cache:   cache,
		fatal:   fatal,
		logger:  logger,
		metrics: m,
	}
}

func (h *handler) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /products/{name}", h.handleQueryProduct)
	mux.HandleFunc("POST /orders", h.handleBuy)
	mux.HandleFunc("POST /orders/{number}", h.handleCheckOrder)
}

func (h *handler) handleQueryProduct(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if product, ok := h.cache.Get(r.Context(), name); ok {
		h.metrics.CacheHits.Inc()
		h.writeData(w, http.StatusOK, product)
		return
	}
	h.metrics.CacheMisses.Inc()

	qctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()
	reply, err := h.catalog.Query(qctx, &api.ProductRequest{ProductName: name})
	if err != nil {
		h.logger.Error("catalog query failed", "product", name, "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if reply.GetQuantity() == -1 {
		h.writeError(w, http.StatusNotFound, "product not found")
		return
	}

	product := CachedProduct{Name: name, Price: reply.GetPrice(), Quantity: reply.GetQuantity()}
	h.cache.Set(r.Context(), product)
	h.writeData(w, http.StatusOK, product)
}

func (h *handler) handleBuy(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		h.writeError(w, http.StatusBadRequest, `"Content-Type: application/json" header required`)
		return
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err != nil || mediaType != "application/json" {
		h.writeError(w, http.StatusUnsupportedMediaType, `"Content-Type: application/json" header required`)
		return
	}
	// net/http keeps an explicit Content-Length in the header map, so
	// an empty value means the client never sent one.
	if r.Header.Get("Content-Length") == "" {
		h.writeError(w, http.StatusLengthRequired, "Content-Length header required")
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Quantity *int32  `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Name == nil || req.Quantity == nil {
		h.writeError(w, http.StatusBadRequest, "invalid json body (required keys: name, quantity)")
		return
	}
	if *req.Quantity < 1 {
		h.writeError(w, http.StatusBadRequest, "invalid quantity")
		return
	}

	orderNumber, ok := h.buyFromLeader(r.Context(), w, *req.Name, *req.Quantity)
	if !ok {
		return
	}

	switch orderNumber {
	case buyUnknownProduct:
		h.writeError(w, http.StatusNotFound, "product not found")
	case buyInvalidQuantity:
		h.writeError(w, http.StatusBadRequest, "invalid quantity")
	default:
		// Success, or -1 for insufficient stock: the client reads the
		// verdict out of the order number either way.
		h.writeData(w, http.StatusOK, map[string]int32{"order_number": orderNumber})
	}
}

func (h *handler) handleCheckOrder(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.ParseInt(r.PathValue("number"), 10, 32)
	if err != nil {
		h.writeError(w, http.StatusNotFound, "order not found")
		return
	}

	for {
		id, client := h.leader.Leader()
		if client == nil {
			if !h.reElect(r.Context(), w) {
				return
			}
			continue
		}

		cctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		reply, err := client.Check(cctx, &api.CheckRequest{OrderNumber: int32(number)})
		cancel()
		if err == nil {
			if reply.GetQuantity() == -1 {
				h.writeError(w, http.StatusNotFound, "order not found")
				return
			}
			h.writeData(w, http.StatusOK, map[string]any{
				"number":   int32(number),
				"name":     reply.GetProductName(),
				"quantity": reply.GetQuantity(),
			})
			return
		}
		if !isUnreachable(err) {
			h.logger.Error("check failed", "leader_id", id, "order_number", number, "error", err)
			h.writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		h.logger.Warn("order leader unreachable, rerunning election", "leader_id", id, "error", err)
		if !h.reElect(r.Context(), w) {
			return
		}
	}
}

// buyFromLeader sends the purchase to the current leader, rerunning
// the election and retrying for as long as leaders keep dying under
// it. The bool is false when a response was already written.
func (h *handler) buyFromLeader(ctx context.Context, w http.ResponseWriter, name string, quantity int32) (int32, bool) {
	for {
		id, client := h.leader.Leader()
		if client == nil {
			if !h.reElect(ctx, w) {
				return 0, false
			}
			continue
		}

		bctx, cancel := context.WithTimeout(ctx, buyTimeout)
		reply, err := client.Buy(bctx, &api.BuyRequest{ProductName: name, Quantity: quantity})
		cancel()
		if err == nil {
			return reply.GetOrderNumber(), true
		}
		if !isUnreachable(err) {
			h.logger.Error("buy failed", "leader_id", id, "product", name, "error", err)
			h.writeError(w, http.StatusInternalServerError, "internal server error")
			return 0, false
		}

		h.logger.Warn("order leader unreachable, rerunning election", "leader_id", id, "error", err)
		if !h.reElect(ctx, w) {
			return 0, false
		}
	}
}

func (h *handler) reElect(ctx context.Context, w http.ResponseWriter) bool {
	if err := h.leader.Elect(ctx); err != nil {
		h.logger.Error("leader election failed", "error", err)
		h.fatal(err)
		h.writeError(w, http.StatusInternalServerError, "no order replica reachable")
		return false
	}
	return true
}

// isUnreachable reports whether an RPC failure means the replica is
// gone (connection refused or deadline passed) rather than a request
// the replica itself answered with an error.
func isUnreachable(err error) bool {
	s, ok := status.FromError(err)
	if !ok {
		return false
	}
	return s.Code() == codes.Unavailable || s.Code() == codes.DeadlineExceeded
}

func (h *handler) writeData(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]any{"data": data}); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *handler) writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	payload := map[string]any{
		"error": map[string]any{"code": code, "message": message},
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode error response", "error", err)
	}
}
