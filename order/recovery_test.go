package main

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/dlim2012/distributed-toy-store/common/api"
)

func newTestRecoveryClient(store *Store, peers map[int32]*fakeRecoveryPeer) *RecoveryClient {
	clients := make(map[int32]api.RecoveryServiceClient, len(peers))
	for id, peer := range peers {
		clients[id] = peer
	}
	return NewRecoveryClient(store, clients, testLogger(), testMetrics)
}

func TestCatchUpFillsLogFromPeer(t *testing.T) {
	store := NewStore(2, nil, 0)
	peer := &fakeRecoveryPeer{
		next: 3,
		records: map[int32]Record{
			0: {ProductName: "Tux", Quantity: 1},
			1: {ProductName: "Whale", Quantity: 2},
			2: {ProductName: "Fox", Quantity: 1},
		},
	}
	client := newTestRecoveryClient(store, map[int32]*fakeRecoveryPeer{1: peer})

	client.CatchUp(context.Background())

	assert.Equal(t, int32(3), store.NextOrderNumber())
	rec, ok := store.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, Record{ProductName: "Whale", Quantity: 2}, rec)
}

func TestCatchUpStopsAtFirstReachablePeer(t *testing.T) {
	store := NewStore(3, nil, 0)
	first := &fakeRecoveryPeer{
		next:    1,
		records: map[int32]Record{0: {ProductName: "Tux", Quantity: 1}},
	}
	second := &fakeRecoveryPeer{
		next:    1,
		records: map[int32]Record{0: {ProductName: "Tux", Quantity: 1}},
	}
	client := newTestRecoveryClient(store, map[int32]*fakeRecoveryPeer{1: first, 2: second})

	client.CatchUp(context.Background())

	assert.Equal(t, 1, first.Streams())
	assert.Equal(t, 0, second.Streams())
}

func TestCatchUpTriesNextPeerOnError(t *testing.T) {
	store := NewStore(3, nil, 0)
	dead := &fakeRecoveryPeer{backOnlineErr: errors.New("connection refused")}
	alive := &fakeRecoveryPeer{
		next:    2,
		records: map[int32]Record{0: {ProductName: "Tux", Quantity: 1}, 1: {ProductName: "Fox", Quantity: 2}},
	}
	client := newTestRecoveryClient(store, map[int32]*fakeRecoveryPeer{1: dead, 2: alive})

	client.CatchUp(context.Background())

	assert.Equal(t, int32(2), store.NextOrderNumber())
	assert.Equal(t, 1, alive.Streams())
}

func TestCatchUpWithNoReachablePeerKeepsLocalLog(t *testing.T) {
	store := NewStore(1, map[int32]Record{0: {ProductName: "Tux", Quantity: 1}}, 1)
	dead := &fakeRecoveryPeer{backOnlineErr: errors.New("connection refused")}
	client := newTestRecoveryClient(store, map[int32]*fakeRecoveryPeer{2: dead})

	client.CatchUp(context.Background())

	assert.Equal(t, int32(1), store.NextOrderNumber())
	assert.Equal(t, 1, store.Len())
}

func TestCatchUpSkipsNumbersThePeerLacks(t *testing.T) {
	// The peer's history has a hole at 1; next still lands past its
	// highest record because Install tolerates out-of-order arrival.
	store := NewStore(2, nil, 0)
	peer := &fakeRecoveryPeer{
		next: 3,
		records: map[int32]Record{
			0: {ProductName: "Tux", Quantity: 1},
			2: {ProductName: "Fox", Quantity: 1},
		},
	}
	client := newTestRecoveryClient(store, map[int32]*fakeRecoveryPeer{1: peer})

	client.CatchUp(context.Background())

	assert.Equal(t, int32(3), store.NextOrderNumber())
	assert.Equal(t, 2, store.Len())
	_, ok := store.Lookup(1)
	assert.False(t, ok)
}

func TestFetchMissingInstallsRequestedRecords(t *testing.T) {
	store := NewStore(3, nil, 0)
	store.Install(0, Record{ProductName: "Tux", Quantity: 1})
	store.Install(3, Record{ProductName: "Bear", Quantity: 1})

	peer := &fakeRecoveryPeer{
		next: 4,
		records: map[int32]Record{
			1: {ProductName: "Whale", Quantity: 2},
			2: {ProductName: "Fox", Quantity: 1},
		},
	}
	client := newTestRecoveryClient(store, map[int32]*fakeRecoveryPeer{1: peer})

	err := client.FetchMissing(context.Background(), []int32{1, 2})
	require.NoError(t, err)

	assert.Equal(t, 4, store.Len())
	assert.Empty(t, store.Missing(0, 4))
}

func TestFetchMissingFallsBackToSecondPeer(t *testing.T) {
	store := NewStore(3, nil, 0)
	dead := &fakeRecoveryPeer{streamErr: errors.New("connection refused")}
	alive := &fakeRecoveryPeer{records: map[int32]Record{1: {ProductName: "Whale", Quantity: 2}}}
	client := newTestRecoveryClient(store, map[int32]*fakeRecoveryPeer{1: dead, 2: alive})

	err := client.FetchMissing(context.Background(), []int32{1})
	require.NoError(t, err)

	rec, ok := store.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "Whale", rec.ProductName)
}

func TestFetchMissingErrorsWhenNoPeerServes(t *testing.T) {
	store := NewStore(3, nil, 0)
	dead := &fakeRecoveryPeer{streamErr: errors.New("connection refused")}
	client := newTestRecoveryClient(store, map[int32]*fakeRecoveryPeer{1: dead, 2: dead})

	err := client.FetchMissing(context.Background(), []int32{1})
	assert.Error(t, err)
}

// fakeRecoveryServerStream feeds a fixed request list into the server
// handler and collects what it sends back.
type fakeRecoveryServerStream struct {
	grpc.ServerStream

	requests []*api.MissingLogRequest
	sent     []*api.OrderRecord
}

func (s *fakeRecoveryServerStream) Recv() (*api.MissingLogRequest, error) {
	if len(s.requests) == 0 {
		return nil, io.EOF
	}
	req := s.requests[0]
	s.requests = s.requests[1:]
	return req, nil
}

func (s *fakeRecoveryServerStream) Send(rec *api.OrderRecord) error {
	s.sent = append(s.sent, rec)
	return nil
}

func TestBackOnlineReturnsNextOrderNumber(t *testing.T) {
	store := NewStore(1, map[int32]Record{0: {ProductName: "Tux", Quantity: 1}}, 1)
	handler := &recoveryHandler{store: store, logger: testLogger()}

	reply, err := handler.BackOnline(context.Background(), &api.BackOnlineRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(1), reply.GetOrderNumber())
}

func TestRequestMissingLogsSkipsUnknownNumbers(t *testing.T) {
	store := NewStore(1, nil, 0)
	store.Install(0, Record{ProductName: "Tux", Quantity: 1})
	store.Install(2, Record{ProductName: "Fox", Quantity: 2})
	handler := &recoveryHandler{store: store, logger: testLogger()}

	stream := &fakeRecoveryServerStream{
		requests: []*api.MissingLogRequest{
			{OrderNumber: 0, ComponentId: 2},
			{OrderNumber: 1, ComponentId: 2},
			{OrderNumber: 2, ComponentId: 2},
		},
	}
	require.NoError(t, handler.RequestMissingLogs(stream))

	require.Len(t, stream.sent, 2)
	assert.Equal(t, int32(0), stream.sent[0].GetOrderNumber())
	assert.Equal(t, "Tux", stream.sent[0].GetProductName())
	assert.Equal(t, int32(2), stream.sent[1].GetOrderNumber())
	assert.Equal(t, "Fox", stream.sent[1].GetProductName())
}
