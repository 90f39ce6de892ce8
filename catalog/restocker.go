package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/dlim2012/distributed-toy-store/common/broker"
	"github.com/dlim2012/distributed-toy-store/common/metrics"
)

// restocker refills depleted products on a fixed interval. Every refill
// triggers a cache invalidation, and a completed sweep that changed
// anything is announced on the message broker.
type restocker struct {
	store       *Store
	invalidator *Invalidator
	interval    time.Duration
	channel     *amqp.Channel
	logger      *slog.Logger
	metrics     *metrics.CatalogMetrics
}

func newRestocker(store *Store, invalidator *Invalidator, interval time.Duration, channel *amqp.Channel, logger *slog.Logger, m *metrics.CatalogMetrics) *restocker {
	return &restocker{
		store:       store,
		invalidator: invalidator,
		interval:    interval,
		channel:     channel,
		logger:      logger,
		metrics:     m,
	}
}

func (r *restocker) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *restocker) sweep(ctx context.Context) {
	restocked, err := r.store.RestockSweep(ctx, func(name string) {
		r.metrics.RestockedProducts.Inc()
		r.invalidator.Submit(name)
	})
	if err != nil {
		r.logger.Error("restock sweep failed", "error", err)
		return
	}

	r.metrics.RestocksTotal.Inc()
	if len(restocked) == 0 {
		return
	}

	r.logger.Info("restocked depleted products", "products", restocked, "quantity", restockQuantity)
	r.publishRestocked(ctx, restocked)
}

func (r *restocker) publishRestocked(ctx context.Context, products []string) {
	if r.channel == nil {
		r.logger.Debug("rabbitmq channel is nil, event not published")
		return
	}

	body, err := json.Marshal(map[string]any{
		"products": products,
		"quantity": restockQuantity,
	})
	if err != nil {
		r.logger.Error("failed to marshal restock event", "error", err)
		return
	}

	err = r.channel.PublishWithContext(ctx,
		broker.StockRestockedEvent, // exchange
		"",                         // routing key
		false,                      // mandatory
		false,                      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Headers:      broker.InjectTraceContext(ctx),
		})
	if err != nil {
		r.logger.Error("failed to publish restock event", "error", err)
	}
}
