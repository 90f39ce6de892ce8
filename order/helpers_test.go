package main

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/grpc"

	"github.com/dlim2012/distributed-toy-store/common/api"
	"github.com/dlim2012/distributed-toy-store/common/metrics"
)

// Metrics register against the default Prometheus registry, so the test
// process creates them exactly once and shares them.
var testMetrics = metrics.NewOrderMetrics("order_test")

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// fakeCatalogClient answers Order with a fixed result and remembers
// what was asked of it.
type fakeCatalogClient struct {
	mu     sync.Mutex
	result int32
	err    error
	orders []*api.OrderRequest
}

func (f *fakeCatalogClient) Query(ctx context.Context, in *api.ProductRequest, opts ...grpc.CallOption) (*api.ProductReply, error) {
	return &api.ProductReply{Price: "-1", Quantity: -1}, nil
}

func (f *fakeCatalogClient) Order(ctx context.Context, in *api.OrderRequest, opts ...grpc.CallOption) (*api.OrderReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.orders = append(f.orders, in)
	return &api.OrderReply{OrderResult: f.result}, nil
}

func (f *fakeCatalogClient) Orders() []*api.OrderRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*api.OrderRequest, len(f.orders))
	copy(out, f.orders)
	return out
}

// fakeOrderPeer records the order records propagated to it.
type fakeOrderPeer struct {
	mu         sync.Mutex
	err        error
	propagated []*api.OrderRecord
}

func (f *fakeOrderPeer) Buy(ctx context.Context, in *api.BuyRequest, opts ...grpc.CallOption) (*api.BuyReply, error) {
	return &api.BuyReply{OrderNumber: 0}, nil
}

func (f *fakeOrderPeer) Check(ctx context.Context, in *api.CheckRequest, opts ...grpc.CallOption) (*api.CheckReply, error) {
	return &api.CheckReply{ProductName: "", Quantity: -1}, nil
}

func (f *fakeOrderPeer) Ping(ctx context.Context, in *api.PingRequest, opts ...grpc.CallOption) (*api.PingReply, error) {
	return &api.PingReply{PingNumber: 0}, nil
}

func (f *fakeOrderPeer) Propagate(ctx context.Context, in *api.OrderRecord, opts ...grpc.CallOption) (*api.PingReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.propagated = append(f.propagated, in)
	return &api.PingReply{PingNumber: 0}, nil
}

func (f *fakeOrderPeer) Propagated() []*api.OrderRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*api.OrderRecord, len(f.propagated))
	copy(out, f.propagated)
	return out
}

// fakeRecoveryPeer serves the recovery protocol from an in-memory
// record set, the way a live replica would.
type fakeRecoveryPeer struct {
	mu            sync.Mutex
	records       map[int32]Record
	next          int32
	backOnlineErr error
	streamErr     error
	streams       int
}

func (f *fakeRecoveryPeer) BackOnline(ctx context.Context, in *api.BackOnlineRequest, opts ...grpc.CallOption) (*api.BackOnlineReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.backOnlineErr != nil {
		return nil, f.backOnlineErr
	}
	return &api.BackOnlineReply{OrderNumber: f.next}, nil
}

func (f *fakeRecoveryPeer) RequestMissingLogs(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[api.MissingLogRequest, api.OrderRecord], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.streamErr != nil {
		return nil, f.streamErr
	}
	f.streams++
	return &fakeRecoveryStream{peer: f}, nil
}

func (f *fakeRecoveryPeer) Streams() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.streams
}

// fakeRecoveryStream answers each sent request immediately, skipping
// numbers the peer does not hold, and reports EOF once the send side
// is closed and the queued replies are drained.
type fakeRecoveryStream struct {
	grpc.ClientStream

	peer    *fakeRecoveryPeer
	mu      sync.Mutex
	replies []*api.OrderRecord
	closed  bool
}

func (s *fakeRecoveryStream) Send(req *api.MissingLogRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.peer.mu.Lock()
	rec, ok := s.peer.records[req.GetOrderNumber()]
	s.peer.mu.Unlock()
	if ok {
		s.replies = append(s.replies, &api.OrderRecord{
			OrderNumber: req.GetOrderNumber(),
			ProductName: rec.ProductName,
			Quantity:    rec.Quantity,
		})
	}
	return nil
}

func (s *fakeRecoveryStream) CloseSend() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

func (s *fakeRecoveryStream) Recv() (*api.OrderRecord, error) {
	for {
		s.mu.Lock()
		if len(s.replies) > 0 {
			reply := s.replies[0]
			s.replies = s.replies[1:]
			s.mu.Unlock()
			return reply, nil
		}
		if s.closed {
			s.mu.Unlock()
			return nil, io.EOF
		}
		s.mu.Unlock()
		time.Sleep(time.Millisecond)
	}
}
