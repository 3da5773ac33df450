package otelexport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/callprof/callprof/pkg/profiler"
)

func TestReplay(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	reg := profiler.New()
	reg.Record(profiler.Key{Owner: "Svc", Name: "Run"},
		profiler.Interval{Start: base, End: base.Add(100 * time.Millisecond)})
	reg.Record(profiler.Key{Name: "helper"},
		profiler.Interval{Start: base.Add(10 * time.Millisecond), End: base.Add(20 * time.Millisecond)})
	reg.Record(profiler.Key{Name: "helper"},
		profiler.Interval{Start: base.Add(30 * time.Millisecond), End: base.Add(40 * time.Millisecond)})

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	Replay(context.Background(), tp, reg.Snapshot())

	spans := recorder.Ended()
	require.Len(t, spans, 3)

	first := spans[0]
	assert.Equal(t, "Svc.Run", first.Name())
	assert.Equal(t, base, first.StartTime())
	assert.Equal(t, base.Add(100*time.Millisecond), first.EndTime())
	assert.Contains(t, first.Attributes(),
		attribute.String("callprof.callable", "Run"))
	assert.Contains(t, first.Attributes(),
		attribute.String("callprof.owner", "Svc"))

	second := spans[1]
	assert.Equal(t, "helper", second.Name())
	assert.NotContains(t, second.Attributes(),
		attribute.String("callprof.owner", ""))
}

func TestReplay_EmptySnapshot(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	Replay(context.Background(), tp, profiler.Snapshot{})
	assert.Empty(t, recorder.Ended())
}
