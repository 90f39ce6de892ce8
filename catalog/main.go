package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/dlim2012/distributed-toy-store/common/config"
	"github.com/dlim2012/distributed-toy-store/common/logger"
	"github.com/dlim2012/distributed-toy-store/common/tracing"
	"github.com/dlim2012/distributed-toy-store/discovery"
)

func main() {
	cfg := Config{
		ServiceName:     config.GetEnv("SERVICE_NAME", "catalog"),
		InstanceID:      config.GetEnv("INSTANCE_ID", ""),
		GRPCAddr:        net.JoinHostPort(config.GetEnv("CATALOG_HOST", "127.0.0.1"), config.GetEnv("CATALOG_PORT", "1130")),
		MetricsAddr:     config.GetEnv("METRICS_ADDR", "localhost:2130"),
		FrontendAddr:    net.JoinHostPort(config.GetEnv("FRONT_HOST", "127.0.0.1"), config.GetEnv("FRONT_GRPC_PORT", "1111")),
		CatalogFile:     config.GetEnv("CATALOG_FILE", "data/catalog.csv"),
		RestockInterval: config.GetEnvDuration("RESTOCK_INTERVAL", 10*time.Second),
		MaxWorkers:      config.GetEnvInt("MAX_WORKERS", 100),
		ConsulAddr:      config.GetEnv("CONSUL_ADDR", ""),
		AMQPHost:        config.GetEnv("AMQP_HOST", ""),
		AMQPPort:        config.GetEnv("AMQP_PORT", "5672"),
		AMQPUser:        config.GetEnv("AMQP_USER", "guest"),
		AMQPPass:        config.GetEnv("AMQP_PASS", "guest"),
	}
	if cfg.InstanceID == "" {
		cfg.InstanceID = discovery.GenerateInstanceID(cfg.ServiceName)
	}

	log := logger.NewLogger(cfg.ServiceName)

	shutdownTracer, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		log.Error("failed to initialize tracer", "error", err)
		os.Exit(1)
	}
	defer shutdownTracer()

	app := NewApp(cfg, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("received shutdown signal")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		app.Shutdown(shutdownCtx)
		cancel()
	}()

	if err := app.Start(ctx); err != nil {
		log.Error("catalog service failed", "error", err)
		os.Exit(1)
	}
}
