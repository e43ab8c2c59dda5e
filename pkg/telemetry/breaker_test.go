package telemetry

import (
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestBreakerListener_RecordsTransitionSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })

	BreakerListener{}.OnStateChange("gemini", gobreaker.StateClosed, gobreaker.StateOpen)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "breaker.transition", spans[0].Name())
	attrs := spans[0].Attributes()
	assert.Contains(t, attrs, attribute.String("breaker.name", "gemini"))
	assert.Contains(t, attrs, attribute.String("breaker.from", "closed"))
	assert.Contains(t, attrs, attribute.String("breaker.to", "open"))
}
