package broker

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Event names. Exchanges carry the same name as the event they transport,
// so publisher and consumer only have to agree on one constant.
const (
	OrderPlacedEvent    = "order.placed"    // order replica → publishes after committing a purchase
	StockRestockedEvent = "stock.restocked" // catalog → publishes after a restock sweep refilled products
)

// Connect opens a connection and channel to RabbitMQ and declares the
// exchanges every service publishes to. The returned close function shuts
// down channel and connection in that order.
func Connect(user, pass, host, port string) (*amqp.Channel, func() error, error) {
	address := fmt.Sprintf("amqp://%s:%s@%s:%s/", user, pass, host, port)

	conn, err := amqp.Dial(address)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// Exchanges must exist before anyone binds a queue to them.
	if err := createExchanges(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("failed to create exchanges: %w", err)
	}

	close := func() error {
		if err := ch.Close(); err != nil {
			return err
		}
		return conn.Close()
	}

	return ch, close, nil
}

func createExchanges(ch *amqp.Channel) error {
	exchanges := []string{
		OrderPlacedEvent,
		StockRestockedEvent,
	}

	for _, exchange := range exchanges {
		err := ch.ExchangeDeclare(
			exchange, // name
			"direct", // type
			true,     // durable
			false,    // auto-deleted
			false,    // internal
			false,    // no-wait
			nil,      // arguments
		)
		if err != nil {
			return fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
		}
	}

	return nil
}
