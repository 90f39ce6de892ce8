package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/dlim2012/distributed-toy-store/common/api"
	"github.com/dlim2012/distributed-toy-store/common/broker"
	"github.com/dlim2012/distributed-toy-store/common/metrics"
)

// catalogOrderTimeout bounds the stock decrement call a Buy makes.
const catalogOrderTimeout = 3 * time.Second

// service implements the order operations on top of the replica state.
// Every replica carries the full surface; which one actually commits
// purchases is decided by the front end's leader announcements, not by
// anything in here.
type service struct {
	store      *Store
	catalog    api.CatalogServiceClient
	replicator *Replicator
	channel    *amqp.Channel
	logger     *slog.Logger
	metrics    *metrics.OrderMetrics
}

func newService(store *Store, catalog api.CatalogServiceClient, replicator *Replicator, channel *amqp.Channel, logger *slog.Logger, m *metrics.OrderMetrics) *service {
	return &service{
		store:      store,
		catalog:    catalog,
		replicator: replicator,
		channel:    channel,
		logger:     logger,
		metrics:    m,
	}
}

// Buy runs the leader commit path: validate, decrement the stock at
// the catalog, bind the next order number, replicate. The returned
// number is negative when the purchase was rejected; the error is
// non-nil only when the catalog could not be consulted at all.
func (s *service) Buy(ctx context.Context, productName string, quantity int32) (int32, error) {
	if quantity < 1 {
		s.metrics.OrdersRejected.WithLabelValues("invalid_quantity").Inc()
		return OrderInvalidQuantity, nil
	}

	octx, cancel := context.WithTimeout(ctx, catalogOrderTimeout)
	defer cancel()
	reply, err := s.catalog.Order(octx, &api.OrderRequest{
		ProductName: productName,
		Quantity:    quantity,
	})
	if err != nil {
		return 0, fmt.Errorf("catalog order failed: %w", err)
	}

	if result := reply.GetOrderResult(); result != OrderSuccess {
		switch result {
		case OrderInsufficientStock:
			s.metrics.OrdersRejected.WithLabelValues("insufficient_stock").Inc()
		case OrderInvalidQuantity:
			s.metrics.OrdersRejected.WithLabelValues("invalid_quantity").Inc()
		case OrderUnknownProduct:
			s.metrics.OrdersRejected.WithLabelValues("unknown_product").Inc()
		}
		return result, nil
	}

	// The catalog has already committed the decrement; a crash between
	// here and the next flush loses the order record but not the stock.
	n := s.store.AssignOrderNumber()
	s.store.Insert(n, Record{ProductName: productName, Quantity: quantity})
	s.replicator.Propagate(n, productName, quantity)

	s.metrics.OrdersPlaced.Inc()
	s.logger.Info("order committed", "order_number", n, "product", productName, "quantity", quantity)
	s.publishOrderPlaced(ctx, n, productName, quantity)

	return n, nil
}

// Check returns the record bound to an order number, or ("", -1) when
// this replica holds no binding for it.
func (s *service) Check(orderNumber int32) (string, int32) {
	rec, ok := s.store.Lookup(orderNumber)
	if !ok {
		return "", -1
	}
	return rec.ProductName, rec.Quantity
}

// Ping answers liveness probes and records leader announcements. A
// ping number of zero is a pure probe; anything else names the replica
// the front end has selected as leader.
func (s *service) Ping(pingNumber int32) int32 {
	if pingNumber != 0 && pingNumber != s.store.LeaderID() {
		s.store.RecordLeader(pingNumber)
		s.logger.Info("leader announced", "leader_id", pingNumber, "is_leader", s.store.IsLeader())
	}
	return 0
}

// Propagate installs a record replicated from the leader.
func (s *service) Propagate(orderNumber int32, productName string, quantity int32) {
	s.store.Install(orderNumber, Record{ProductName: productName, Quantity: quantity})
	s.logger.Debug("order record replicated", "order_number", orderNumber, "product", productName, "quantity", quantity)
}

func (s *service) publishOrderPlaced(ctx context.Context, orderNumber int32, productName string, quantity int32) {
	if s.channel == nil {
		s.logger.Debug("rabbitmq channel is nil, event not published")
		return
	}

	body, err := json.Marshal(map[string]any{
		"order_number": orderNumber,
		"product_name": productName,
		"quantity":     quantity,
		"component_id": s.store.ComponentID(),
	})
	if err != nil {
		s.logger.Error("failed to marshal order event", "error", err)
		return
	}

	err = s.channel.PublishWithContext(ctx,
		broker.OrderPlacedEvent, // exchange
		"",                      // routing key
		false,                   // mandatory
		false,                   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Headers:      broker.InjectTraceContext(ctx),
		})
	if err != nil {
		s.logger.Error("failed to publish order event", "error", err)
	}
}
