package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/net/netutil"
	"google.golang.org/grpc"

	"github.com/dlim2012/distributed-toy-store/common/api"
	"github.com/dlim2012/distributed-toy-store/common/metrics"
	"github.com/dlim2012/distributed-toy-store/discovery"
	"github.com/dlim2012/distributed-toy-store/discovery/consul"
)

type Config struct {
	ServiceName string
	InstanceID  string
	HTTPAddr    string
	GRPCAddr    string
	CatalogAddr string
	OrderAddrs  map[int32]string
	MaxWorkers  int
	RedisAddr   string
	ConsulAddr  string
}

type App struct {
	config Config
	logger *slog.Logger

	registry     discovery.Registry
	registration *discovery.ServiceRegistration
	httpServer   *http.Server
	grpcServer   *grpc.Server
	catalogConn  *grpc.ClientConn
	orderConns   []*grpc.ClientConn
	cache        ProductCache
	leader       *LeaderSelector
	httpMetrics  *metrics.HTTPMetrics

	watchCancel context.CancelFunc
	errCh       chan error
}

func NewApp(config Config, logger *slog.Logger) *App {
	return &App{
		config: config,
		logger: logger,
		errCh:  make(chan error, 4),
	}
}

// Start brings up the HTTP storefront, the invalidation listener and
// the leader watchdog, then blocks until one of them stops. A nil
// return means a clean shutdown; ErrNoReplicas means every order
// replica is gone and the front end cannot usefully keep running.
func (a *App) Start(ctx context.Context) error {
	registry, err := a.createRegistry()
	if err != nil {
		return fmt.Errorf("failed to create registry: %w", err)
	}
	a.registry = registry

	if registry != nil {
		registration, err := discovery.RegisterService(ctx, registry, a.config.InstanceID, a.config.ServiceName, a.config.HTTPAddr)
		if err != nil {
			return fmt.Errorf("failed to register service: %w", err)
		}
		a.registration = registration
		a.logger.Info("service registered", "instance_id", a.config.InstanceID)
	}

	a.cache = a.createCache()

	catalogConn, err := discovery.Dial(ctx, a.config.CatalogAddr)
	if err != nil {
		return fmt.Errorf("failed to dial catalog: %w", err)
	}
	a.catalogConn = catalogConn

	replicas := make(map[int32]api.OrderServiceClient, len(a.config.OrderAddrs))
	for id, addr := range a.config.OrderAddrs {
		conn, err := discovery.Dial(ctx, addr)
		if err != nil {
			return fmt.Errorf("failed to dial order replica %d: %w", id, err)
		}
		a.orderConns = append(a.orderConns, conn)
		replicas[id] = api.NewOrderServiceClient(conn)
	}

	frontendMetrics := metrics.NewFrontendMetrics(a.config.ServiceName)
	grpcMetrics := metrics.NewGRPCMetrics(a.config.ServiceName)
	a.httpMetrics = metrics.NewHTTPMetrics(a.config.ServiceName)
	a.leader = NewLeaderSelector(replicas, a.logger, frontendMetrics)

	handler := NewHandler(api.NewCatalogServiceClient(catalogConn), a.leader, a.cache, a.reportFatal, a.logger, frontendMetrics)
	mux := http.NewServeMux()
	handler.registerRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	a.httpServer = &http.Server{
		Addr:    a.config.HTTPAddr,
		Handler: a.loggingMiddleware(a.metricsMiddleware(mux)),
	}

	a.grpcServer = grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.MaxConcurrentStreams(uint32(a.config.MaxWorkers)),
	)
	NewGRPCHandler(a.grpcServer, a.cache, a.logger, frontendMetrics, grpcMetrics)

	// The front end is useless without an order leader, so the first
	// election failing is fatal at startup.
	if err := a.leader.Elect(ctx); err != nil {
		return fmt.Errorf("initial leader election failed: %w", err)
	}

	watchCtx, watchCancel := context.WithCancel(context.Background())
	a.watchCancel = watchCancel
	go func() {
		err := a.leader.Watch(watchCtx)
		if err != nil && !errors.Is(err, context.Canceled) {
			a.reportFatal(err)
		}
	}()

	grpcLis, err := net.Listen("tcp", a.config.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.config.GRPCAddr, err)
	}
	go func() {
		a.logger.Info("starting grpc server", "addr", a.config.GRPCAddr)
		if err := a.grpcServer.Serve(grpcLis); err != nil {
			a.reportFatal(fmt.Errorf("grpc server failed: %w", err))
			return
		}
		a.errCh <- nil
	}()

	httpLis, err := net.Listen("tcp", a.config.HTTPAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.config.HTTPAddr, err)
	}
	// Cap concurrent HTTP connections at the worker budget; excess
	// clients queue in the accept backlog instead of overwhelming us.
	limited := netutil.LimitListener(httpLis, a.config.MaxWorkers)
	go func() {
		a.logger.Info("starting http server", "addr", a.config.HTTPAddr)
		if err := a.httpServer.Serve(limited); err != nil && err != http.ErrServerClosed {
			a.reportFatal(fmt.Errorf("http server failed: %w", err))
			return
		}
		a.errCh <- nil
	}()

	return <-a.errCh
}

func (a *App) Shutdown(ctx context.Context) {
	a.logger.Info("shutting down front-end service")

	if a.watchCancel != nil {
		a.watchCancel()
	}
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.logger.Error("failed to shut down http server", "error", err)
		}
	}
	if a.grpcServer != nil {
		a.grpcServer.GracefulStop()
	}

	if a.catalogConn != nil {
		a.catalogConn.Close()
	}
	for _, conn := range a.orderConns {
		conn.Close()
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("failed to close cache", "error", err)
		}
	}
	if a.registration != nil {
		if err := a.registration.Deregister(ctx); err != nil {
			a.logger.Error("failed to deregister service", "error", err)
		}
	}
}

// reportFatal hands an error to Start. Only the first one matters;
// later reports fall through the full buffer and get dropped.
func (a *App) reportFatal(err error) {
	select {
	case a.errCh <- err:
	default:
	}
}

func (a *App) createRegistry() (discovery.Registry, error) {
	if a.config.ConsulAddr == "" {
		a.logger.Info("consul address not provided, service discovery disabled")
		return nil, nil
	}
	return consul.NewRegistry(a.config.ConsulAddr)
}

// createCache prefers Redis when configured and quietly falls back to
// the in-process map: a missing cache backend costs performance, not
// correctness.
func (a *App) createCache() ProductCache {
	if a.config.RedisAddr == "" {
		return NewMemoryCache()
	}
	cache, err := NewRedisCache(a.config.RedisAddr, a.logger)
	if err != nil {
		a.logger.Warn("failed to connect to redis, using in-memory cache", "error", err)
		return NewMemoryCache()
	}
	a.logger.Info("using redis product cache", "addr", a.config.RedisAddr)
	return cache
}

// metricsMiddleware records request counts and latencies per route.
func (a *App) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		recorder := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(recorder, r)

		duration := time.Since(start)
		a.httpMetrics.RecordHTTPRequest(r.Method, r.URL.Path, strconv.Itoa(recorder.statusCode), duration)
	})
}

// loggingMiddleware writes one access log line per request.
func (a *App) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		recorder := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(recorder, r)

		a.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", r.RemoteAddr)
	})
}

// responseRecorder wraps http.ResponseWriter to capture the status code.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}
