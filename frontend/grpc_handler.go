package main

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"

	"github.com/dlim2012/distributed-toy-store/common/api"
	"github.com/dlim2012/distributed-toy-store/common/metrics"
)

// grpcHandler receives cache invalidations from the catalog.
type grpcHandler struct {
	api.UnimplementedFrontendServiceServer

	cache       ProductCache
	logger      *slog.Logger
	metrics     *metrics.FrontendMetrics
	grpcMetrics *metrics.GRPCMetrics
}

func NewGRPCHandler(grpcServer *grpc.Server, cache ProductCache, logger *slog.Logger, m *metrics.FrontendMetrics, gm *metrics.GRPCMetrics) {
	handler := &grpcHandler{
		cache:       cache,
		logger:      logger,
		metrics:     m,
		grpcMetrics: gm,
	}
	api.RegisterFrontendServiceServer(grpcServer, handler)
}

func (h *grpcHandler) Invalidate(ctx context.Context, req *api.InvalidateRequest) (*api.InvalidateReply, error) {
	start := time.Now()

	h.cache.Invalidate(ctx, req.GetProductName())
	h.metrics.InvalidationsTotal.Inc()
	h.logger.Debug("cache entry invalidated", "product", req.GetProductName())

	h.grpcMetrics.RecordGRPCRequest("Invalidate", "ok", time.Since(start))
	return &api.InvalidateReply{Response: 0}, nil
}
