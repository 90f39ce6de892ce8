package broker

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
)

// InjectTraceContext injects the OpenTelemetry trace context into AMQP
// message headers. AMQP has no automatic propagation like gRPC, so a
// consumer can only continue the trace if the publisher copies it into
// the headers by hand.
func InjectTraceContext(ctx context.Context) amqp.Table {
	headers := make(amqp.Table)
	propagator := otel.GetTextMapPropagator()
	propagator.Inject(ctx, &AMQPHeadersCarrier{headers: headers})
	return headers
}

// ExtractTraceContext restores the trace context from AMQP message
// headers so a consumer span joins the publisher's trace.
func ExtractTraceContext(ctx context.Context, headers amqp.Table) context.Context {
	propagator := otel.GetTextMapPropagator()
	return propagator.Extract(ctx, &AMQPHeadersCarrier{headers: headers})
}

// AMQPHeadersCarrier adapts amqp.Table to the propagation.TextMapCarrier
// interface expected by OpenTelemetry propagators.
type AMQPHeadersCarrier struct {
	headers amqp.Table
}

func (c *AMQPHeadersCarrier) Get(key string) string {
	if val, ok := c.headers[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func (c *AMQPHeadersCarrier) Set(key, value string) {
	c.headers[key] = value
}

func (c *AMQPHeadersCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for k := range c.headers {
		keys = append(keys, k)
	}
	return keys
}
