package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNoopWithoutEndpoint(t *testing.T) {
	p, err := Init(context.Background(), Config{})
	require.NoError(t, err)
	_, end := p.Phase(context.Background(), "replay")
	end(nil)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestPhaseRecordsSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer tp.Shutdown(context.Background())
	p := FromProvider(tp)

	ctx, endOuter := p.Phase(context.Background(), "analyze", attribute.String("mode", "batch"))
	_, endInner := p.Phase(ctx, "replay")
	endInner(errors.New("boom"))
	endOuter(nil)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "replay", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())

	assert.Equal(t, "analyze", spans[1].Name())
	assert.Contains(t, spans[1].Attributes(), attribute.String("mode", "batch"))
}
