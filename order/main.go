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

// replicaCount is fixed: the order service always runs as three
// replicas with component ids 1 to 3.
const replicaCount = 3

func main() {
	componentID := config.GetEnvInt("COMPONENT_ID", 1)
	if componentID < 1 || componentID > replicaCount {
		fmt.Fprintf(os.Stderr, "COMPONENT_ID must be between 1 and %d, got %d\n", replicaCount, componentID)
		os.Exit(1)
	}

	var hosts, orderPorts, recoveryPorts [replicaCount]string
	for i := 0; i < replicaCount; i++ {
		id := i + 1
		hosts[i] = config.GetEnv(fmt.Sprintf("ORDER_HOST_%d", id), "127.0.0.1")
		orderPorts[i] = config.GetEnv(fmt.Sprintf("ORDER_PORT_%d", id), fmt.Sprintf("%d", 1120+id))
		recoveryPorts[i] = config.GetEnv(fmt.Sprintf("RECOVERY_PORT_%d", id), fmt.Sprintf("%d", 1123+id))
	}

	orderPeers := make(map[int32]string, replicaCount-1)
	recoveryPeers := make(map[int32]string, replicaCount-1)
	for i := 0; i < replicaCount; i++ {
		id := int32(i + 1)
		if id == int32(componentID) {
			continue
		}
		orderPeers[id] = net.JoinHostPort(hosts[i], orderPorts[i])
		recoveryPeers[id] = net.JoinHostPort(hosts[i], recoveryPorts[i])
	}

	cfg := Config{
		ServiceName:   config.GetEnv("SERVICE_NAME", "order"),
		InstanceID:    config.GetEnv("INSTANCE_ID", ""),
		ComponentID:   int32(componentID),
		GRPCAddr:      net.JoinHostPort(hosts[componentID-1], orderPorts[componentID-1]),
		RecoveryAddr:  net.JoinHostPort(hosts[componentID-1], recoveryPorts[componentID-1]),
		MetricsAddr:   config.GetEnv("METRICS_ADDR", fmt.Sprintf("localhost:%d", 2120+componentID)),
		CatalogAddr:   net.JoinHostPort(config.GetEnv("CATALOG_HOST", "127.0.0.1"), config.GetEnv("CATALOG_PORT", "1130")),
		OrderPeers:    orderPeers,
		RecoveryPeers: recoveryPeers,
		LogFile:       config.GetEnv("ORDER_LOG_FILE", fmt.Sprintf("data/order_log%d.csv", componentID)),
		MaxWorkers:    config.GetEnvInt("MAX_WORKERS", 100),
		ConsulAddr:    config.GetEnv("CONSUL_ADDR", ""),
		AMQPHost:      config.GetEnv("AMQP_HOST", ""),
		AMQPPort:      config.GetEnv("AMQP_PORT", "5672"),
		AMQPUser:      config.GetEnv("AMQP_USER", "guest"),
		AMQPPass:      config.GetEnv("AMQP_PASS", "guest"),
	}
	if cfg.InstanceID == "" {
		cfg.InstanceID = discovery.GenerateInstanceID(fmt.Sprintf("%s-%d", cfg.ServiceName, componentID))
	}

	log := logger.NewReplicaLogger(cfg.ServiceName, componentID)

	shutdownTracer, err := tracing.InitTracer(fmt.Sprintf("%s-%d", cfg.ServiceName, componentID))
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
		log.Error("order service failed", "error", err)
		os.Exit(1)
	}
}
