package main

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dlim2012/distributed-toy-store/common/api"
	"github.com/dlim2012/distributed-toy-store/common/metrics"
)

// Metrics register against the default Prometheus registry, so the test
// process creates them exactly once and shares them.
var (
	testMetrics     = metrics.NewFrontendMetrics("frontend_test")
	testGRPCMetrics = metrics.NewGRPCMetrics("frontend_test")
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// errUnreachable is what a dead replica looks like through gRPC.
var errUnreachable = status.Error(codes.Unavailable, "connection refused")

// fakeOrderClient is one order replica as seen by the front end. Its
// liveness and replies are adjustable mid-test, and it remembers the
// ping numbers and purchases sent to it.
type fakeOrderClient struct {
	mu         sync.Mutex
	pingErr    error
	buyReply   *api.BuyReply
	buyErr     error
	checkReply *api.CheckReply
	checkErr   error
	pings      []int32
	buys       []*api.BuyRequest
}

func (f *fakeOrderClient) Buy(ctx context.Context, in *api.BuyRequest, opts ...grpc.CallOption) (*api.BuyReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.buyErr != nil {
		return nil, f.buyErr
	}
	f.buys = append(f.buys, in)
	if f.buyReply != nil {
		return f.buyReply, nil
	}
	return &api.BuyReply{OrderNumber: 0}, nil
}

func (f *fakeOrderClient) Check(ctx context.Context, in *api.CheckRequest, opts ...grpc.CallOption) (*api.CheckReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.checkErr != nil {
		return nil, f.checkErr
	}
	if f.checkReply != nil {
		return f.checkReply, nil
	}
	return &api.CheckReply{ProductName: "", Quantity: -1}, nil
}

func (f *fakeOrderClient) Ping(ctx context.Context, in *api.PingRequest, opts ...grpc.CallOption) (*api.PingReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pingErr != nil {
		return nil, f.pingErr
	}
	f.pings = append(f.pings, in.GetPingNumber())
	return &api.PingReply{PingNumber: 0}, nil
}

func (f *fakeOrderClient) Propagate(ctx context.Context, in *api.OrderRecord, opts ...grpc.CallOption) (*api.PingReply, error) {
	return &api.PingReply{PingNumber: 0}, nil
}

func (f *fakeOrderClient) setPingErr(err error) {
	f.mu.Lock()
	f.pingErr = err
	f.mu.Unlock()
}

func (f *fakeOrderClient) setBuyErr(err error) {
	f.mu.Lock()
	f.buyErr = err
	f.mu.Unlock()
}

func (f *fakeOrderClient) setCheckErr(err error) {
	f.mu.Lock()
	f.checkErr = err
	f.mu.Unlock()
}

func (f *fakeOrderClient) Pings() []int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]int32, len(f.pings))
	copy(out, f.pings)
	return out
}

func (f *fakeOrderClient) Buys() []*api.BuyRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*api.BuyRequest, len(f.buys))
	copy(out, f.buys)
	return out
}

// fakeCatalogClient answers Query with a fixed reply and counts how
// often the front end had to reach past its cache.
type fakeCatalogClient struct {
	mu      sync.Mutex
	reply   *api.ProductReply
	err     error
	queries []*api.ProductRequest
}

func (f *fakeCatalogClient) Query(ctx context.Context, in *api.ProductRequest, opts ...grpc.CallOption) (*api.ProductReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, in)
	if f.err != nil {
		return nil, f.err
	}
	if f.reply != nil {
		return f.reply, nil
	}
	return &api.ProductReply{Price: "-1", Quantity: -1}, nil
}

func (f *fakeCatalogClient) Order(ctx context.Context, in *api.OrderRequest, opts ...grpc.CallOption) (*api.OrderReply, error) {
	return &api.OrderReply{OrderResult: -3}, nil
}

func (f *fakeCatalogClient) Queries() []*api.ProductRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*api.ProductRequest, len(f.queries))
	copy(out, f.queries)
	return out
}

// fatalRecorder stands in for the app's fatal-error channel.
type fatalRecorder struct {
	mu   sync.Mutex
	errs []error
}

func (f *fatalRecorder) record(err error) {
	f.mu.Lock()
	f.errs = append(f.errs, err)
	f.mu.Unlock()
}

func (f *fatalRecorder) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.errs)
}

func newTestSelector(replicas map[int32]*fakeOrderClient) *LeaderSelector {
	clients := make(map[int32]api.OrderServiceClient, len(replicas))
	for id, replica := range replicas {
		clients[id] = replica
	}
	return NewLeaderSelector(clients, testLogger(), testMetrics)
}

func newTestHandler(catalog *fakeCatalogClient, replicas map[int32]*fakeOrderClient) (*handler, *LeaderSelector, *fatalRecorder) {
	selector := newTestSelector(replicas)
	fatal := &fatalRecorder{}
	h := NewHandler(catalog, selector, NewMemoryCache(), fatal.record, testLogger(), testMetrics)
	return h, selector, fatal
}
