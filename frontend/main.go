package main

import (
	"context"
	"fmt"
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

const replicaCount = 3

func main() {
	orderAddrs := make(map[int32]string, replicaCount)
	for id := int32(1); id <= replicaCount; id++ {
		host := config.GetEnv(fmt.Sprintf("ORDER_HOST_%d", id), "127.0.0.1")
		port := config.GetEnv(fmt.Sprintf("ORDER_PORT_%d", id), fmt.Sprintf("%d", 1120+id))
		orderAddrs[id] = net.JoinHostPort(host, port)
	}

	cfg := Config{
		ServiceName: config.GetEnv("SERVICE_NAME", "frontend"),
		InstanceID:  config.GetEnv("INSTANCE_ID", ""),
		HTTPAddr:    net.JoinHostPort(config.GetEnv("FRONT_HOST", "127.0.0.1"), config.GetEnv("FRONT_PORT", "1110")),
		GRPCAddr:    net.JoinHostPort(config.GetEnv("FRONT_HOST", "127.0.0.1"), config.GetEnv("FRONT_GRPC_PORT", "1111")),
		CatalogAddr: net.JoinHostPort(config.GetEnv("CATALOG_HOST", "127.0.0.1"), config.GetEnv("CATALOG_PORT", "1130")),
		OrderAddrs:  orderAddrs,
		MaxWorkers:  config.GetEnvInt("MAX_WORKERS", 100),
		RedisAddr:   config.GetEnv("REDIS_ADDR", ""),
		ConsulAddr:  config.GetEnv("CONSUL_ADDR", ""),
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
		log.Error("front-end service failed", "error", err)
		os.Exit(1)
	}
}
