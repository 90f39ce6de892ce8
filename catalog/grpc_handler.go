package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dlim2012/distributed-toy-store/common/api"
	"github.com/dlim2012/distributed-toy-store/common/metrics"
)

type grpcHandler struct {
	api.UnimplementedCatalogServiceServer

	service *service
	logger  *slog.Logger
	metrics *metrics.GRPCMetrics
}

func NewGRPCHandler(grpcServer *grpc.Server, service *service, logger *slog.Logger, m *metrics.GRPCMetrics) {
	handler := &grpcHandler{
		service: service,
		logger:  logger,
		metrics: m,
	}
	api.RegisterCatalogServiceServer(grpcServer, handler)
}

func (h *grpcHandler) Query(ctx context.Context, req *api.ProductRequest) (*api.ProductReply, error) {
	start := time.Now()

	price, quantity, err := h.service.Query(ctx, req.GetProductName())
	if err != nil {
		h.logger.Error("query failed", "product", req.GetProductName(), "error", err)
		h.metrics.RecordGRPCRequest("Query", "error", time.Since(start))
		return nil, lockError(err)
	}

	h.metrics.RecordGRPCRequest("Query", "ok", time.Since(start))
	return &api.ProductReply{Price: price, Quantity: quantity}, nil
}

func (h *grpcHandler) Order(ctx context.Context, req *api.OrderRequest) (*api.OrderReply, error) {
	start := time.Now()

	result, err := h.service.Order(ctx, req.GetProductName(), req.GetQuantity())
	if err != nil {
		h.logger.Error("order failed", "product", req.GetProductName(), "error", err)
		h.metrics.RecordGRPCRequest("Order", "error", time.Since(start))
		return nil, lockError(err)
	}

	h.metrics.RecordGRPCRequest("Order", "ok", time.Since(start))
	return &api.OrderReply{OrderResult: result}, nil
}

// lockError converts a guard acquisition failure into a gRPC status.
func lockError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
