package telemetry

import (
	"context"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BreakerListener records circuit breaker state transitions as spans, so an
// outage shows up on the trace timeline next to the calls it rejected.
type BreakerListener struct{}

// OnStateChange implements resilience.StateChangeListener.
func (BreakerListener) OnStateChange(name string, from, to gobreaker.State) {
	_, span := Tracer().Start(context.Background(), "breaker.transition",
		trace.WithAttributes(
			attribute.String("breaker.name", name),
			attribute.String("breaker.from", from.String()),
			attribute.String("breaker.to", to.String()),
		))
	span.End()
}
