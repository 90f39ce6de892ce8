package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"github.com/dlim2012/distributed-toy-store/common/api"
	"github.com/dlim2012/distributed-toy-store/common/broker"
	"github.com/dlim2012/distributed-toy-store/common/metrics"
	"github.com/dlim2012/distributed-toy-store/discovery"
	"github.com/dlim2012/distributed-toy-store/discovery/consul"
)

type Config struct {
	ServiceName   string
	InstanceID    string
	ComponentID   int32
	GRPCAddr      string
	RecoveryAddr  string
	MetricsAddr   string
	CatalogAddr   string
	OrderPeers    map[int32]string
	RecoveryPeers map[int32]string
	LogFile       string
	MaxWorkers    int
	ConsulAddr    string
	AMQPHost      string
	AMQPPort      string
	AMQPUser      string
	AMQPPass      string
}

type App struct {
	config Config
	logger *slog.Logger

	registry       discovery.Registry
	registration   *discovery.ServiceRegistration
	grpcServer     *grpc.Server
	recoveryServer *grpc.Server
	metricsServer  *http.Server
	channel        *amqp.Channel
	closeRabbitMQ  func() error
	catalogConn    *grpc.ClientConn
	peerConns      []*grpc.ClientConn

	store      *Store
	replicator *Replicator

	workersCancel context.CancelFunc
	workersWG     sync.WaitGroup
}

func NewApp(config Config, logger *slog.Logger) *App {
	return &App{
		config: config,
		logger: logger,
	}
}

func (a *App) Start(ctx context.Context) error {
	registry, err := a.createRegistry()
	if err != nil {
		return fmt.Errorf("failed to create registry: %w", err)
	}
	a.registry = registry

	if registry != nil {
		registration, err := discovery.RegisterService(ctx, registry, a.config.InstanceID, a.config.ServiceName, a.config.GRPCAddr)
		if err != nil {
			return fmt.Errorf("failed to register service: %w", err)
		}
		a.registration = registration
		a.logger.Info("service registered", "instance_id", a.config.InstanceID)
	}

	if a.config.AMQPHost != "" {
		channel, closeRabbitMQ, err := broker.Connect(a.config.AMQPUser, a.config.AMQPPass, a.config.AMQPHost, a.config.AMQPPort)
		if err != nil {
			a.logger.Warn("failed to connect to rabbitmq, events disabled", "error", err)
		} else {
			a.channel = channel
			a.closeRabbitMQ = closeRabbitMQ
		}
	}

	records, next, err := LoadOrderLogFile(a.config.LogFile, a.logger)
	if err != nil {
		return fmt.Errorf("failed to load order log: %w", err)
	}
	a.store = NewStore(a.config.ComponentID, records, next)
	a.logger.Info("order log loaded", "path", a.config.LogFile, "records", len(records), "next_order_number", next)

	catalogConn, err := discovery.Dial(ctx, a.config.CatalogAddr)
	if err != nil {
		return fmt.Errorf("failed to dial catalog: %w", err)
	}
	a.catalogConn = catalogConn

	// Peer connections are lazy too: a peer that is down simply fails
	// each propagation until it comes back.
	orderPeers := make(map[int32]api.OrderServiceClient, len(a.config.OrderPeers))
	for id, addr := range a.config.OrderPeers {
		conn, err := discovery.Dial(ctx, addr)
		if err != nil {
			return fmt.Errorf("failed to dial peer %d: %w", id, err)
		}
		a.peerConns = append(a.peerConns, conn)
		orderPeers[id] = api.NewOrderServiceClient(conn)
	}
	recoveryPeers := make(map[int32]api.RecoveryServiceClient, len(a.config.RecoveryPeers))
	for id, addr := range a.config.RecoveryPeers {
		conn, err := discovery.Dial(ctx, addr)
		if err != nil {
			return fmt.Errorf("failed to dial recovery peer %d: %w", id, err)
		}
		a.peerConns = append(a.peerConns, conn)
		recoveryPeers[id] = api.NewRecoveryServiceClient(conn)
	}

	orderMetrics := metrics.NewOrderMetrics(a.config.ServiceName)
	grpcMetrics := metrics.NewGRPCMetrics(a.config.ServiceName)
	a.replicator = NewReplicator(orderPeers, a.config.MaxWorkers, a.logger, orderMetrics)
	recoveryClient := NewRecoveryClient(a.store, recoveryPeers, a.logger, orderMetrics)
	svc := newService(a.store, api.NewCatalogServiceClient(catalogConn), a.replicator, a.channel, a.logger, orderMetrics)

	a.grpcServer = grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.MaxConcurrentStreams(uint32(a.config.MaxWorkers)),
	)
	NewGRPCHandler(a.grpcServer, svc, a.logger, grpcMetrics)

	a.recoveryServer = grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.MaxConcurrentStreams(uint32(a.config.MaxWorkers)),
	)
	NewRecoveryHandler(a.recoveryServer, a.store, a.logger)

	// Catch up with the peers before taking any traffic, so a replica
	// that was down does not serve stale Checks or reuse numbers it
	// slept through.
	recoveryClient.CatchUp(ctx)

	workersCtx, workersCancel := context.WithCancel(context.Background())
	a.workersCancel = workersCancel
	flusher := newFlusher(a.store, a.config.LogFile, recoveryClient, a.logger, orderMetrics)
	a.workersWG.Add(1)
	go func() {
		defer a.workersWG.Done()
		flusher.Run(workersCtx)
	}()

	a.metricsServer = &http.Server{
		Addr:    a.config.MetricsAddr,
		Handler: promhttp.Handler(),
	}
	go func() {
		a.logger.Info("starting metrics server", "addr", a.config.MetricsAddr)
		if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("metrics server failed", "error", err)
		}
	}()

	recoveryLis, err := net.Listen("tcp", a.config.RecoveryAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.config.RecoveryAddr, err)
	}
	go func() {
		a.logger.Info("starting recovery server", "addr", a.config.RecoveryAddr)
		if err := a.recoveryServer.Serve(recoveryLis); err != nil {
			a.logger.Error("recovery server failed", "error", err)
		}
	}()

	lis, err := net.Listen("tcp", a.config.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.config.GRPCAddr, err)
	}

	a.logger.Info("starting grpc server", "addr", a.config.GRPCAddr, "component_id", a.config.ComponentID)
	return a.grpcServer.Serve(lis)
}

func (a *App) Shutdown(ctx context.Context) {
	a.logger.Info("shutting down order service")

	if a.grpcServer != nil {
		a.grpcServer.GracefulStop()
	}
	if a.recoveryServer != nil {
		a.recoveryServer.GracefulStop()
	}

	// Stopping the workers runs one final order log drain.
	if a.workersCancel != nil {
		a.workersCancel()
		a.workersWG.Wait()
	}
	if a.replicator != nil {
		a.replicator.Wait()
	}

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			a.logger.Error("failed to shut down metrics server", "error", err)
		}
	}
	if a.catalogConn != nil {
		a.catalogConn.Close()
	}
	for _, conn := range a.peerConns {
		conn.Close()
	}
	if a.closeRabbitMQ != nil {
		if err := a.closeRabbitMQ(); err != nil {
			a.logger.Error("failed to close rabbitmq connection", "error", err)
		}
	}
	if a.registration != nil {
		if err := a.registration.Deregister(ctx); err != nil {
			a.logger.Error("failed to deregister service", "error", err)
		}
	}
}

func (a *App) createRegistry() (discovery.Registry, error) {
	if a.config.ConsulAddr == "" {
		a.logger.Info("consul address not provided, service discovery disabled")
		return nil, nil
	}
	return consul.NewRegistry(a.config.ConsulAddr)
}
