package main

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dlim2012/distributed-toy-store/common/api"
	"github.com/dlim2012/distributed-toy-store/common/metrics"
)

// propagateTimeout is the deadline for one replication RPC to a peer.
const propagateTimeout = 3 * time.Second

// Replicator pushes committed order records to the peer replicas
// through a bounded worker pool. Replication is best effort: pushes
// that fail or find the pool saturated are logged and dropped, and the
// peer closes the resulting gap itself through recovery.
type Replicator struct {
	peers   map[int32]api.OrderServiceClient
	pool    *errgroup.Group
	logger  *slog.Logger
	metrics *metrics.OrderMetrics
}

func NewReplicator(peers map[int32]api.OrderServiceClient, maxWorkers int, logger *slog.Logger, m *metrics.OrderMetrics) *Replicator {
	pool := &errgroup.Group{}
	pool.SetLimit(maxWorkers)
	return &Replicator{
		peers:   peers,
		pool:    pool,
		logger:  logger,
		metrics: m,
	}
}

// Propagate enqueues one replication task per peer and returns without
// waiting for any of them. The Buy path stays fast no matter how the
// peers are doing.
func (r *Replicator) Propagate(orderNumber int32, productName string, quantity int32) {
	for id, peer := range r.peers {
		// Per-iteration copies: the module's go directive predates the
		// Go 1.22 loop-variable scoping, so the closure below would
		// otherwise see whichever peer the loop reached last.
		id, peer := id, peer
		submitted := r.pool.TryGo(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), propagateTimeout)
			defer cancel()

			_, err := peer.Propagate(ctx, &api.OrderRecord{
				OrderNumber: orderNumber,
				ProductName: productName,
				Quantity:    quantity,
			})
			if err != nil {
				r.logger.Warn("propagation to peer failed", "peer_id", id, "order_number", orderNumber, "error", err)
				r.metrics.PropagationsTotal.WithLabelValues("failed").Inc()
				return nil
			}
			r.metrics.PropagationsTotal.WithLabelValues("sent").Inc()
			return nil
		})
		if !submitted {
			r.logger.Warn("propagation dropped, worker pool saturated", "peer_id", id, "order_number", orderNumber)
			r.metrics.PropagationsTotal.WithLabelValues("dropped").Inc()
		}
	}
}

// Wait blocks until all in-flight propagations finished.
func (r *Replicator) Wait() {
	r.pool.Wait()
}
