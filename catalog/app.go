package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

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
	ServiceName     string
	InstanceID      string
	GRPCAddr        string
	MetricsAddr     string
	FrontendAddr    string
	CatalogFile     string
	RestockInterval time.Duration
	MaxWorkers      int
	ConsulAddr      string
	AMQPHost        string
	AMQPPort        string
	AMQPUser        string
	AMQPPass        string
}

type App struct {
	config Config
	logger *slog.Logger

	registry      discovery.Registry
	registration  *discovery.ServiceRegistration
	grpcServer    *grpc.Server
	metricsServer *http.Server
	channel       *amqp.Channel
	closeRabbitMQ func() error
	frontendConn  *grpc.ClientConn

	store       *Store
	invalidator *Invalidator

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

	products, err := EnsureCatalogFile(a.config.CatalogFile, a.logger)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	a.store = NewStore(products, a.config.MaxWorkers)
	a.logger.Info("catalog loaded", "path", a.config.CatalogFile, "products", len(products))

	// Lazy connection: invalidations simply fail and get dropped until
	// the front end comes up.
	frontendConn, err := discovery.Dial(ctx, a.config.FrontendAddr)
	if err != nil {
		return fmt.Errorf("failed to dial front end: %w", err)
	}
	a.frontendConn = frontendConn

	catalogMetrics := metrics.NewCatalogMetrics(a.config.ServiceName)
	grpcMetrics := metrics.NewGRPCMetrics(a.config.ServiceName)
	a.invalidator = NewInvalidator(api.NewFrontendServiceClient(frontendConn), a.config.MaxWorkers, a.logger, catalogMetrics)
	svc := newService(a.store, a.invalidator, a.logger, catalogMetrics)

	a.grpcServer = grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.MaxConcurrentStreams(uint32(a.config.MaxWorkers)),
	)
	NewGRPCHandler(a.grpcServer, svc, a.logger, grpcMetrics)

	workersCtx, workersCancel := context.WithCancel(context.Background())
	a.workersCancel = workersCancel
	writer := newCatalogWriter(a.store, a.config.CatalogFile, a.logger, catalogMetrics)
	restocker := newRestocker(a.store, a.invalidator, a.config.RestockInterval, a.channel, a.logger, catalogMetrics)
	a.workersWG.Add(2)
	go func() {
		defer a.workersWG.Done()
		writer.Run(workersCtx)
	}()
	go func() {
		defer a.workersWG.Done()
		restocker.Run(workersCtx)
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

	lis, err := net.Listen("tcp", a.config.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.config.GRPCAddr, err)
	}

	a.logger.Info("starting grpc server", "addr", a.config.GRPCAddr)
	return a.grpcServer.Serve(lis)
}

func (a *App) Shutdown(ctx context.Context) {
	a.logger.Info("shutting down catalog service")

	if a.grpcServer != nil {
		a.grpcServer.GracefulStop()
	}

	// Stopping the workers runs one final catalog flush.
	if a.workersCancel != nil {
		a.workersCancel()
		a.workersWG.Wait()
	}
	if a.invalidator != nil {
		a.invalidator.Wait()
	}

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			a.logger.Error("failed to shut down metrics server", "error", err)
		}
	}
	if a.frontendConn != nil {
		a.frontendConn.Close()
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
