package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/dlim2012/distributed-toy-store/common/api"
	"github.com/dlim2012/distributed-toy-store/common/metrics"
)

// RecoveryClient fills gaps in the local order log from the peer
// replicas over the bidirectional recovery stream. Peers are tried in
// ascending component id order and the first one that serves a stream
// to completion wins; whatever it could not supply is re-detected by
// the flusher on its next pass.
type RecoveryClient struct {
	store   *Store
	peers   []recoveryPeer
	logger  *slog.Logger
	metrics *metrics.OrderMetrics
}

// recoveryPeer pairs a replica id with its recovery endpoint.
type recoveryPeer struct {
	id     int32
	client api.RecoveryServiceClient
}

func NewRecoveryClient(store *Store, peers map[int32]api.RecoveryServiceClient, logger *slog.Logger, m *metrics.OrderMetrics) *RecoveryClient {
	ordered := make([]recoveryPeer, 0, len(peers))
	for id, client := range peers {
		ordered = append(ordered, recoveryPeer{id: id, client: client})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].id < ordered[j].id })

	return &RecoveryClient{
		store:   store,
		peers:   ordered,
		logger:  logger,
		metrics: m,
	}
}

// CatchUp brings the local log up to date with the first reachable
// peer. A replica runs it once at startup, before serving: BackOnline
// tells it how far the peer's history reaches, and the stream returns
// every number below that bound this replica has not seen. No peer
// being reachable is not an error — the first replica of a fresh
// deployment has nobody to ask.
func (r *RecoveryClient) CatchUp(ctx context.Context) {
	for _, peer := range r.peers {
		reply, err := peer.client.BackOnline(ctx, &api.BackOnlineRequest{})
		if err != nil {
			r.logger.Warn("peer unreachable for startup recovery", "peer_id", peer.id, "error", err)
			continue
		}

		peerNext := reply.GetOrderNumber()
		own := r.store.NextOrderNumber()
		if peerNext <= own {
			r.logger.Info("order log already up to date", "peer_id", peer.id, "next_order_number", own)
			return
		}

		numbers := make([]int32, 0, peerNext-own)
		for n := own; n < peerNext; n++ {
			numbers = append(numbers, n)
		}
		if err := r.fetch(ctx, peer, numbers); err != nil {
			r.logger.Warn("startup recovery from peer failed", "peer_id", peer.id, "error", err)
			continue
		}

		r.logger.Info("startup recovery finished",
			"peer_id", peer.id,
			"requested", len(numbers),
			"next_order_number", r.store.NextOrderNumber())
		return
	}

	r.logger.Info("no peer served startup recovery, continuing with local log",
		"next_order_number", r.store.NextOrderNumber())
}

// FetchMissing asks the peers for an explicit list of order numbers,
// stopping at the first peer whose stream completes.
func (r *RecoveryClient) FetchMissing(ctx context.Context, numbers []int32) error {
	var lastErr error
	for _, peer := range r.peers {
		if err := r.fetch(ctx, peer, numbers); err != nil {
			r.logger.Warn("gap recovery from peer failed", "peer_id", peer.id, "error", err)
			lastErr = err
			continue
		}
		return nil
	}
	if lastErr == nil {
		lastErr = errors.New("no recovery peer configured")
	}
	return lastErr
}

// fetch streams the requested numbers to one peer and installs every
// record it answers with. The peer skips numbers it does not hold, so
// receiving fewer records than requested is normal.
func (r *RecoveryClient) fetch(ctx context.Context, peer recoveryPeer, numbers []int32) error {
	stream, err := peer.client.RequestMissingLogs(ctx)
	if err != nil {
		return fmt.Errorf("failed to open recovery stream: %w", err)
	}

	go func() {
		for _, n := range numbers {
			err := stream.Send(&api.MissingLogRequest{
				OrderNumber: n,
				ComponentId: r.store.ComponentID(),
			})
			if err != nil {
				// Recv below surfaces the stream failure.
				return
			}
		}
		if err := stream.CloseSend(); err != nil {
			r.logger.Debug("failed to close recovery stream send side", "peer_id", peer.id, "error", err)
		}
	}()

	received := 0
	for {
		record, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("recovery stream failed: %w", err)
		}

		r.store.Install(record.GetOrderNumber(), Record{
			ProductName: record.GetProductName(),
			Quantity:    record.GetQuantity(),
		})
		r.metrics.RecoveredRecords.Inc()
		received++
	}

	r.logger.Info("recovered order records from peer", "peer_id", peer.id, "requested", len(numbers), "received", received)
	return nil
}
