package main

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dlim2012/distributed-toy-store/common/api"
	"github.com/dlim2012/distributed-toy-store/common/metrics"
)

const (
	// pingTimeout is the deadline for one liveness probe.
	pingTimeout = time.Second
	// watchInterval is how often the watchdog re-probes the leader.
	watchInterval = time.Second
)

// ErrNoReplicas reports that an election found no live order replica.
var ErrNoReplicas = errors.New("no order replica reachable")

// replicaClient pairs a component id with its order endpoint.
type replicaClient struct {
	id     int32
	client api.OrderServiceClient
}

// LeaderSelector tracks which order replica the front end routes
// purchases to. Leadership is soft state held here: the lowest-id
// replica that answers a probe wins, every replica from the winner
// upward hears the announcement, and a leader that stops answering is
// replaced by the next election. The request path reads the leader id
// lock-free; the mutex only serializes elections.
type LeaderSelector struct {
	mu       sync.Mutex
	leaderID atomic.Int32
	replicas []replicaClient
	logger   *slog.Logger
	metrics  *metrics.FrontendMetrics
}

func NewLeaderSelector(replicas map[int32]api.OrderServiceClient, logger *slog.Logger, m *metrics.FrontendMetrics) *LeaderSelector {
	ordered := make([]replicaClient, 0, len(replicas))
	for id, client := range replicas {
		ordered = append(ordered, replicaClient{id: id, client: client})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].id < ordered[j].id })

	return &LeaderSelector{
		replicas: ordered,
		logger:   logger,
		metrics:  m,
	}
}

// Leader returns the current leader's id and client. The client is nil
// until the first election and after one that found nobody.
func (l *LeaderSelector) Leader() (int32, api.OrderServiceClient) {
	id := l.leaderID.Load()
	if r, ok := l.find(id); ok {
		return r.id, r.client
	}
	return 0, nil
}

// LeaderID returns the replica currently treated as leader, 0 if none.
func (l *LeaderSelector) LeaderID() int32 {
	return l.leaderID.Load()
}

// Elect probes the replicas in ascending id order and announces the
// first one that answers. The cached leader is re-probed before any
// scan: callers that lost the race to a concurrent election find its
// winner here and return without a second scan.
func (l *LeaderSelector) Elect(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if id := l.leaderID.Load(); id != 0 {
		if r, ok := l.find(id); ok && l.ping(ctx, r, id) == nil {
			return nil
		}
	}

	for i, r := range l.replicas {
		if err := l.ping(ctx, r, 0); err != nil {
			l.logger.Warn("order replica did not answer probe", "component_id", r.id, "error", err)
			continue
		}

		l.leaderID.Store(r.id)
		l.metrics.ElectionsTotal.Inc()
		l.metrics.LeaderID.Set(float64(r.id))
		l.logger.Info("order leader elected", "leader_id", r.id)

		// Announce from the winner upward; the winner itself learns its
		// role from the same ping, and everything below it is dead.
		for _, peer := range l.replicas[i:] {
			if err := l.ping(ctx, peer, r.id); err != nil {
				l.logger.Warn("leader announcement failed", "component_id", peer.id, "error", err)
			}
		}
		return nil
	}

	l.leaderID.Store(0)
	l.metrics.LeaderID.Set(0)
	return ErrNoReplicas
}

// Watch re-probes the leader once a second, electing a new one when it
// stops answering. It returns ErrNoReplicas as soon as an election
// comes up empty, and ctx.Err() on shutdown.
func (l *LeaderSelector) Watch(ctx context.Context) error {
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if id := l.leaderID.Load(); id != 0 {
				if r, ok := l.find(id); ok && l.ping(ctx, r, id) == nil {
					continue
				}
				l.logger.Warn("order leader stopped answering", "leader_id", id)
			}
			if err := l.Elect(ctx); err != nil {
				return err
			}
		}
	}
}

func (l *LeaderSelector) find(id int32) (replicaClient, bool) {
	for _, r := range l.replicas {
		if r.id == id {
			return r, true
		}
	}
	return replicaClient{}, false
}

func (l *LeaderSelector) ping(ctx context.Context, r replicaClient, pingNumber int32) error {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	_, err := r.client.Ping(pctx, &api.PingRequest{PingNumber: pingNumber})
	return err
}
