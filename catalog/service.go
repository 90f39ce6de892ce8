package main

import (
	"context"
	"log/slog"

	"github.com/dlim2012/distributed-toy-store/common/metrics"
)

// service wraps the store with the side effects of the public catalog
// operations: metrics and the invalidation fan-out after a successful
// stock decrement.
type service struct {
	store       *Store
	invalidator *Invalidator
	logger      *slog.Logger
	metrics     *metrics.CatalogMetrics
}

func newService(store *Store, invalidator *Invalidator, logger *slog.Logger, m *metrics.CatalogMetrics) *service {
	return &service{
		store:       store,
		invalidator: invalidator,
		logger:      logger,
		metrics:     m,
	}
}

func (s *service) Query(ctx context.Context, productName string) (string, int32, error) {
	price, quantity, err := s.store.Query(ctx, productName)
	if err != nil {
		s.metrics.QueriesTotal.WithLabelValues("error").Inc()
		return "", 0, err
	}
	if quantity == -1 {
		s.metrics.QueriesTotal.WithLabelValues("miss").Inc()
		return price, quantity, nil
	}
	s.metrics.QueriesTotal.WithLabelValues("hit").Inc()
	return price, quantity, nil
}

func (s *service) Order(ctx context.Context, productName string, quantity int32) (int32, error) {
	result, err := s.store.Order(ctx, productName, quantity)
	if err != nil {
		s.metrics.OrdersTotal.WithLabelValues("error").Inc()
		return 0, err
	}

	switch result {
	case OrderSuccess:
		s.metrics.OrdersTotal.WithLabelValues("success").Inc()
		s.logger.Debug("stock decremented", "product", productName, "quantity", quantity)
		s.invalidator.Submit(productName)
	case OrderInsufficientStock:
		s.metrics.OrdersTotal.WithLabelValues("insufficient_stock").Inc()
	case OrderInvalidQuantity:
		s.metrics.OrdersTotal.WithLabelValues("invalid_quantity").Inc()
	case OrderUnknownProduct:
		s.metrics.OrdersTotal.WithLabelValues("unknown_product").Inc()
	}

	return result, nil
}
