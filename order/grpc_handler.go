package main

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dlim2012/distributed-toy-store/common/api"
	"github.com/dlim2012/distributed-toy-store/common/metrics"
)

type grpcHandler struct {
	api.UnimplementedOrderServiceServer

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
	api.RegisterOrderServiceServer(grpcServer, handler)
}

func (h *grpcHandler) Buy(ctx context.Context, req *api.BuyRequest) (*api.BuyReply, error) {
	start := time.Now()

	orderNumber, err := h.service.Buy(ctx, req.GetProductName(), req.GetQuantity())
	if err != nil {
		h.logger.Error("buy failed", "product", req.GetProductName(), "error", err)
		h.metrics.RecordGRPCRequest("Buy", "error", time.Since(start))
		// Internal, not Unavailable: the front end must not read a
		// catalog outage as a dead leader and start an election.
		return nil, status.Error(codes.Internal, err.Error())
	}

	h.metrics.RecordGRPCRequest("Buy", "ok", time.Since(start))
	return &api.BuyReply{OrderNumber: orderNumber}, nil
}

func (h *grpcHandler) Check(ctx context.Context, req *api.CheckRequest) (*api.CheckReply, error) {
	start := time.Now()

	productName, quantity := h.service.Check(req.GetOrderNumber())

	h.metrics.RecordGRPCRequest("Check", "ok", time.Since(start))
	return &api.CheckReply{ProductName: productName, Quantity: quantity}, nil
}

func (h *grpcHandler) Ping(ctx context.Context, req *api.PingRequest) (*api.PingReply, error) {
	start := time.Now()

	response := h.service.Ping(req.GetPingNumber())

	h.metrics.RecordGRPCRequest("Ping", "ok", time.Since(start))
	return &api.PingReply{PingNumber: response}, nil
}

func (h *grpcHandler) Propagate(ctx context.Context, req *api.OrderRecord) (*api.PingReply, error) {
	start := time.Now()

	h.service.Propagate(req.GetOrderNumber(), req.GetProductName(), req.GetQuantity())

	h.metrics.RecordGRPCRequest("Propagate", "ok", time.Since(start))
	return &api.PingReply{PingNumber: 0}, nil
}
