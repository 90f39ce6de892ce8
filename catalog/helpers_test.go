package main

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"google.golang.org/grpc"

	"github.com/dlim2012/distributed-toy-store/common/api"
	"github.com/dlim2012/distributed-toy-store/common/metrics"
)

// Metrics register against the default Prometheus registry, so the test
// process creates them exactly once and shares them.
var (
	testMetrics     = metrics.NewCatalogMetrics("catalog_test")
	testGRPCMetrics = metrics.NewGRPCMetrics("catalog_test")
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type fakeFrontendClient struct {
	mu          sync.Mutex
	invalidated []string
	err         error
	block       chan struct{} // when set, Invalidate waits here first
}

func (f *fakeFrontendClient) Invalidate(ctx context.Context, in *api.InvalidateRequest, opts ...grpc.CallOption) (*api.InvalidateReply, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.invalidated = append(f.invalidated, in.GetProductName())
	return &api.InvalidateReply{Response: 0}, nil
}

func (f *fakeFrontendClient) Invalidated() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.invalidated))
	copy(out, f.invalidated)
	return out
}
