package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dlim2012/distributed-toy-store/common/api"
)

func serve(h *handler, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	h.registerRoutes(mux)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

// newBuyRequest builds a well-formed purchase. httptest.NewRequest only
// fills the ContentLength field, so the header the handler checks has
// to be set by hand, the way a real client would send it.
func newBuyRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Length", strconv.Itoa(len(body)))
	return req
}

func TestQueryProductReturnsCatalogData(t *testing.T) {
	catalog := &fakeCatalogClient{reply: &api.ProductReply{Price: "25.99", Quantity: 100}}
	h, _, _ := newTestHandler(catalog, map[int32]*fakeOrderClient{1: {}})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/products/Tux", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"name":"Tux","price":"25.99","quantity":100}}`, rec.Body.String())
}

func TestQueryProductServesSecondRequestFromCache(t *testing.T) {
	catalog := &fakeCatalogClient{reply: &api.ProductReply{Price: "25.99", Quantity: 100}}
	h, _, _ := newTestHandler(catalog, map[int32]*fakeOrderClient{1: {}})

	serve(h, httptest.NewRequest(http.MethodGet, "/products/Tux", nil))
	rec := serve(h, httptest.NewRequest(http.MethodGet, "/products/Tux", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, catalog.Queries(), 1)
}

func TestQueryProductUnknownIs404AndUncached(t *testing.T) {
	catalog := &fakeCatalogClient{reply: &api.ProductReply{Price: "-1", Quantity: -1}}
	h, _, _ := newTestHandler(catalog, map[int32]*fakeOrderClient{1: {}})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/products/Whale", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":404,"message":"product not found"}}`, rec.Body.String())

	// Not-found verdicts must not stick in the cache.
	serve(h, httptest.NewRequest(http.MethodGet, "/products/Whale", nil))
	assert.Len(t, catalog.Queries(), 2)
}

func TestQueryProductCatalogFailureIs500(t *testing.T) {
	catalog := &fakeCatalogClient{err: status.Error(codes.Unavailable, "connection refused")}
	h, _, _ := newTestHandler(catalog, map[int32]*fakeOrderClient{1: {}})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/products/Tux", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"code":500,"message":"internal server error"}}`, rec.Body.String())
}

func TestInvalidationForcesCatalogRefetch(t *testing.T) {
	catalog := &fakeCatalogClient{reply: &api.ProductReply{Price: "25.99", Quantity: 100}}
	h, _, _ := newTestHandler(catalog, map[int32]*fakeOrderClient{1: {}})

	serve(h, httptest.NewRequest(http.MethodGet, "/products/Tux", nil))
	require.Len(t, catalog.Queries(), 1)

	invalidations := &grpcHandler{cache: h.cache, logger: testLogger(), metrics: testMetrics, grpcMetrics: testGRPCMetrics}
	_, err := invalidations.Invalidate(context.Background(), &api.InvalidateRequest{ProductName: "Tux"})
	require.NoError(t, err)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/products/Tux", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, catalog.Queries(), 2)
}

func TestBuyRequiresContentType(t *testing.T) {
	h, _, _ := newTestHandler(&fakeCatalogClient{}, map[int32]*fakeOrderClient{1: {}})

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"name":"Tux","quantity":1}`))
	rec := serve(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"code":400,"message":"\"Content-Type: application/json\" header required"}}`, rec.Body.String())
}

func TestBuyRejectsWrongMediaType(t *testing.T) {
	h, _, _ := newTestHandler(&fakeCatalogClient{}, map[int32]*fakeOrderClient{1: {}})

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("name=Tux"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Content-Length", "8")
	rec := serve(h, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestBuyRequiresContentLength(t *testing.T) {
	h, _, _ := newTestHandler(&fakeCatalogClient{}, map[int32]*fakeOrderClient{1: {}})

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"name":"Tux","quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	rec := serve(h, req)

	assert.Equal(t, http.StatusLengthRequired, rec.Code)
	assert.JSONEq(t, `{"error":{"code":411,"message":"Content-Length header required"}}`, rec.Body.String())
}

func TestBuyRejectsMalformedJSON(t *testing.T) {
	h, _, _ := newTestHandler(&fakeCatalogClient{}, map[int32]*fakeOrderClient{1: {}})

	rec := serve(h, newBuyRequest(`{"name": "Tux", quantity}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"code":400,"message":"invalid json body"}}`, rec.Body.String())
}

func TestBuyRequiresNameAndQuantityKeys(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing quantity", body: `{"name":"Tux"}`},
		{name: "missing name", body: `{"quantity":2}`},
		{name: "empty object", body: `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newTestHandler(&fakeCatalogClient{}, map[int32]*fakeOrderClient{1: {}})

			rec := serve(h, newBuyRequest(tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":{"code":400,"message":"invalid json body (required keys: name, quantity)"}}`, rec.Body.String())
		})
	}
}

func TestBuyRejectsNonPositiveQuantity(t *testing.T) {
	replica := &fakeOrderClient{}
	h, _, _ := newTestHandler(&fakeCatalogClient{}, map[int32]*fakeOrderClient{1: replica})

	for _, body := range []string{`{"name":"Tux","quantity":0}`, `{"name":"Tux","quantity":-5}`} {
		rec := serve(h, newBuyRequest(body))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":{"code":400,"message":"invalid quantity"}}`, rec.Body.String())
	}
	assert.Empty(t, replica.Buys())
}

func TestBuyReturnsOrderNumber(t *testing.T) {
	replica := &fakeOrderClient{buyReply: &api.BuyReply{OrderNumber: 42}}
	h, _, _ := newTestHandler(&fakeCatalogClient{}, map[int32]*fakeOrderClient{1: replica})

	rec := serve(h, newBuyRequest(`{"name":"Tux","quantity":2}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"order_number":42}}`, rec.Body.String())

	buys := replica.Buys()
	require.Len(t, buys, 1)
	assert.Equal(t, "Tux", buys[0].GetProductName())
	assert.Equal(t, int32(2), buys[0].GetQuantity())
}

func TestBuyAcceptsContentTypeWithCharset(t *testing.T) {
	replica := &fakeOrderClient{buyReply: &api.BuyReply{OrderNumber: 3}}
	h, _, _ := newTestHandler(&fakeCatalogClient{}, map[int32]*fakeOrderClient{1: replica})

	body := `{"name":"Tux","quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Content-Length", strconv.Itoa(len(body)))
	rec := serve(h, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBuyInsufficientStockStaysHTTP200(t *testing.T) {
	replica := &fakeOrderClient{buyReply: &api.BuyReply{OrderNumber: -1}}
	h, _, _ := newTestHandler(&fakeCatalogClient{}, map[int32]*fakeOrderClient{1: replica})

	rec := serve(h, newBuyRequest(`{"name":"Tux","quantity":500}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"order_number":-1}}`, rec.Body.String())
}

func TestBuyUnknownProductIs404(t *testing.T) {
	replica := &fakeOrderClient{buyReply: &api.BuyReply{OrderNumber: -3}}
	h, _, _ := newTestHandler(&fakeCatalogClient{}, map[int32]*fakeOrderClient{1: replica})

	rec := serve(h, newBuyRequest(`{"name":"Whale","quantity":1}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":404,"message":"product not found"}}`, rec.Body.String())
}

func TestBuyInvalidQuantityVerdictIs400(t *testing.T) {
	replica := &fakeOrderClient{buyReply: &api.BuyReply{OrderNumber: -2}}
	h, _, _ := newTestHandler(&fakeCatalogClient{}, map[int32]*fakeOrderClient{1: replica})

	rec := serve(h, newBuyRequest(`{"name":"Tux","quantity":1}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"code":400,"message":"invalid quantity"}}`, rec.Body.String())
}

func TestBuyFailsOverWhenLeaderDies(t *testing.T) {
	replicas := map[int32]*fakeOrderClient{
		1: {},
		2: {buyReply: &api.BuyReply{OrderNumber: 7}},
	}
	h, selector, _ := newTestHandler(&fakeCatalogClient{}, replicas)
	require.NoError(t, selector.Elect(context.Background()))
	require.Equal(t, int32(1), selector.LeaderID())

	replicas[1].setPingErr(errUnreachable)
	replicas[1].setBuyErr(errUnreachable)

	rec := serve(h, newBuyRequest(`{"name":"Tux","quantity":1}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"order_number":7}}`, rec.Body.String())
	assert.Equal(t, int32(2), selector.LeaderID())
	assert.Len(t, replicas[2].Buys(), 1)
}

func TestBuyWithoutAnyReplicaIs500AndFatal(t *testing.T) {
	replicas := map[int32]*fakeOrderClient{
		1: {pingErr: errUnreachable},
		2: {pingErr: errUnreachable},
	}
	h, _, fatal := newTestHandler(&fakeCatalogClient{}, replicas)

	rec := serve(h, newBuyRequest(`{"name":"Tux","quantity":1}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"code":500,"message":"no order replica reachable"}}`, rec.Body.String())
	assert.Equal(t, 1, fatal.count())
}

func TestBuyNonTransportErrorIs500WithoutReelection(t *testing.T) {
	replicas := map[int32]*fakeOrderClient{
		1: {buyErr: status.Error(codes.Internal, "catalog order failed")},
		2: {},
	}
	h, selector, fatal := newTestHandler(&fakeCatalogClient{}, replicas)
	require.NoError(t, selector.Elect(context.Background()))

	rec := serve(h, newBuyRequest(`{"name":"Tux","quantity":1}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// A leader that answered with an error is still the leader.
	assert.Equal(t, []int32{0, 1}, replicas[1].Pings())
	assert.Equal(t, int32(1), selector.LeaderID())
	assert.Equal(t, 0, fatal.count())
}

func TestCheckOrderReturnsRecord(t *testing.T) {
	replica := &fakeOrderClient{checkReply: &api.CheckReply{ProductName: "Tux", Quantity: 5}}
	h, _, _ := newTestHandler(&fakeCatalogClient{}, map[int32]*fakeOrderClient{1: replica})

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/orders/3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"number":3,"name":"Tux","quantity":5}}`, rec.Body.String())
}

func TestCheckOrderUnknownNumberIs404(t *testing.T) {
	replica := &fakeOrderClient{checkReply: &api.CheckReply{ProductName: "", Quantity: -1}}
	h, _, _ := newTestHandler(&fakeCatalogClient{}, map[int32]*fakeOrderClient{1: replica})

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/orders/999", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":404,"message":"order not found"}}`, rec.Body.String())
}

func TestCheckOrderRejectsNonNumericNumber(t *testing.T) {
	replica := &fakeOrderClient{}
	h, _, _ := newTestHandler(&fakeCatalogClient{}, map[int32]*fakeOrderClient{1: replica})

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/orders/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, replica.Pings())
}

func TestCheckOrderFailsOverWhenLeaderDies(t *testing.T) {
	replicas := map[int32]*fakeOrderClient{
		1: {},
		2: {checkReply: &api.CheckReply{ProductName: "Tux", Quantity: 2}},
	}
	h, selector, _ := newTestHandler(&fakeCatalogClient{}, replicas)
	require.NoError(t, selector.Elect(context.Background()))

	replicas[1].setPingErr(errUnreachable)
	replicas[1].setCheckErr(errUnreachable)

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/orders/0", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"number":0,"name":"Tux","quantity":2}}`, rec.Body.String())
	assert.Equal(t, int32(2), selector.LeaderID())
}
