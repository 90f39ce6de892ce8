package main

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dlim2012/distributed-toy-store/common/api"
	"github.com/dlim2012/distributed-toy-store/common/metrics"
)

// invalidateTimeout is the deadline for one invalidation RPC.
const invalidateTimeout = time.Second

// Invalidator pushes cache invalidations to the front end through a
// bounded worker pool. Tasks that fail or find the pool saturated are
// logged and dropped; the order path always reads authoritative stock
// from the catalog, so a stale cache entry is tolerable.
type Invalidator struct {
	client  api.FrontendServiceClient
	pool    *errgroup.Group
	logger  *slog.Logger
	metrics *metrics.CatalogMetrics
}

func NewInvalidator(client api.FrontendServiceClient, maxWorkers int, logger *slog.Logger, m *metrics.CatalogMetrics) *Invalidator {
	pool := &errgroup.Group{}
	pool.SetLimit(maxWorkers)
	return &Invalidator{
		client:  client,
		pool:    pool,
		logger:  logger,
		metrics: m,
	}
}

// Submit enqueues one invalidation for the given product. It never
// blocks: when all workers are busy the notification is dropped.
func (i *Invalidator) Submit(productName string) {
	submitted := i.pool.TryGo(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), invalidateTimeout)
		defer cancel()

		_, err := i.client.Invalidate(ctx, &api.InvalidateRequest{ProductName: productName})
		if err != nil {
			i.logger.Warn("cache invalidation failed", "product", productName, "error", err)
			i.metrics.InvalidationsTotal.WithLabelValues("failed").Inc()
			return nil
		}
		i.metrics.InvalidationsTotal.WithLabelValues("sent").Inc()
		return nil
	})
	if !submitted {
		i.logger.Warn("cache invalidation dropped, worker pool saturated", "product", productName)
		i.metrics.InvalidationsTotal.WithLabelValues("dropped").Inc()
	}
}

// Wait blocks until all in-flight invalidations finished.
func (i *Invalidator) Wait() {
	i.pool.Wait()
}
