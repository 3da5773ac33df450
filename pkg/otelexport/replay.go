// Package otelexport replays recorded profiler intervals as OpenTelemetry
// spans. Each interval becomes one span with its original start and end
// timestamps, so a trace backend renders the same timeline the profiler
// captured. The package only depends on the TracerProvider seam; exporter
// and transport choice stay with the caller.
package otelexport

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/callprof/callprof/pkg/profiler"
)

const scopeName = "github.com/callprof/callprof/pkg/otelexport"

// Replay emits one span per recorded interval in the snapshot through tp.
// Span names are owner-qualified callable names; the bare name and owner
// are attached as attributes.
func Replay(ctx context.Context, tp trace.TracerProvider, snap profiler.Snapshot) {
	tracer := tp.Tracer(scopeName)

	for _, p := range snap.Profiles {
		for _, iv := range p.Intervals {
			attrs := []attribute.KeyValue{
				attribute.String("callprof.callable", p.Key.Name),
			}
			if p.Key.Owner != "" {
				attrs = append(attrs, attribute.String("callprof.owner", p.Key.Owner))
			}

			_, span := tracer.Start(ctx, p.Key.Qualified(),
				trace.WithTimestamp(iv.Start),
				trace.WithAttributes(attrs...),
			)
			span.End(trace.WithTimestamp(iv.End))
		}
	}
}
