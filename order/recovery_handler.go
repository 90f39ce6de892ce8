package main

import (
	"context"
	"io"
	"log/slog"

	"google.golang.org/grpc"

	"github.com/dlim2012/distributed-toy-store/common/api"
)

// recoveryHandler serves the peer-facing side of recovery. It runs on
// its own gRPC server so a replica drowning in Buy traffic still
// answers the peers trying to catch up.
type recoveryHandler struct {
	api.UnimplementedRecoveryServiceServer

	store  *Store
	logger *slog.Logger
}

func NewRecoveryHandler(grpcServer *grpc.Server, store *Store, logger *slog.Logger) {
	handler := &recoveryHandler{
		store:  store,
		logger: logger,
	}
	api.RegisterRecoveryServiceServer(grpcServer, handler)
}

// BackOnline tells a restarting peer how far this replica's history
// reaches, as the exclusive upper bound of its known order numbers.
func (h *recoveryHandler) BackOnline(ctx context.Context, req *api.BackOnlineRequest) (*api.BackOnlineReply, error) {
	next := h.store.NextOrderNumber()
	h.logger.Info("peer requested catch-up bound", "next_order_number", next)
	return &api.BackOnlineReply{OrderNumber: next}, nil
}

// RequestMissingLogs answers each requested order number with its
// record. Numbers this replica does not hold are skipped rather than
// failed: the asking peer may be ahead of us in places, and its
// remaining gaps stay closable through another peer.
func (h *recoveryHandler) RequestMissingLogs(stream grpc.BidiStreamingServer[api.MissingLogRequest, api.OrderRecord]) error {
	served := 0
	for {
		req, err := stream.Recv()
		if err == io.EOF {
			h.logger.Debug("recovery stream finished", "served", served)
			return nil
		}
		if err != nil {
			return err
		}

		rec, ok := h.store.Lookup(req.GetOrderNumber())
		if !ok {
			h.logger.Debug("no record for requested order number",
				"order_number", req.GetOrderNumber(),
				"peer_id", req.GetComponentId())
			continue
		}

		err = stream.Send(&api.OrderRecord{
			OrderNumber: req.GetOrderNumber(),
			ProductName: rec.ProductName,
			Quantity:    rec.Quantity,
		})
		if err != nil {
			return err
		}
		served++
	}
}
