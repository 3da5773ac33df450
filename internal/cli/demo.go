package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/callprof/callprof/internal/logger"
	"github.com/callprof/callprof/internal/render"
	"github.com/callprof/callprof/internal/trace"
	"github.com/callprof/callprof/internal/workload"
	"github.com/callprof/callprof/pkg/profiler"
	"github.com/callprof/callprof/pkg/promexport"
)

// DemoParams contains parameters for the demo command. Boolean flags are
// OR-ed with the corresponding config values; OrderBy falls back to the
// configured column when empty.
type DemoParams struct {
	LogLevel   string
	ConfigPath string

	OrderBy  string
	Reverse  bool
	FullName bool
	Total    bool

	Plot   bool
	Merged bool

	Export      string
	Template    string
	MetricsAddr string

	Fanout int

	// Out defaults to stdout. Tests redirect it.
	Out io.Writer
}

// demoScale is one sleep unit of the example workload.
const demoScale = 2 * time.Millisecond

// Demo runs the example workload, then renders the summary table and,
// optionally, the timeline chart, a custom template report, a YAML/JSON
// export, or a Prometheus metrics endpoint.
func Demo(ctx context.Context, params DemoParams) error {
	out := params.Out
	if out == nil {
		out = os.Stdout
	}

	cfg, err := resolveConfig(params.ConfigPath)
	if err != nil {
		return err
	}
	log := newLogger(params.LogLevel, cfg)

	orderBy := params.OrderBy
	if orderBy == "" {
		orderBy = cfg.OrderBy
	}
	order, err := profiler.ParseOrderBy(orderBy)
	if err != nil {
		return err
	}
	reverse := params.Reverse || cfg.Reverse
	fullName := params.FullName || cfg.FullName

	fanout := params.Fanout
	if fanout <= 0 {
		fanout = 5
	}

	reg := profiler.New()
	w := workload.New(reg, demoScale, time.Now().UnixNano())

	log.Info().Int("fanout", fanout).Msg("running example workload")
	stop := trace.Region(ctx, "workload")
	start := time.Now()
	runErr := w.Run(ctx, fanout)
	stop()
	if runErr != nil {
		return fmt.Errorf("workload failed: %w", runErr)
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("workload finished")

	snap := reg.Snapshot()
	rows, err := profiler.Rows(snap, order, reverse)
	if err != nil {
		return err
	}

	if params.Template != "" {
		report, err := render.Template(rows, params.Template, fullName)
		if err != nil {
			return err
		}
		fmt.Fprint(out, report)
	} else {
		variant := render.VariantBottleneck
		if params.Total {
			variant = render.VariantTotal
		}
		fmt.Fprintln(out, render.SummaryTable(rows, render.TableOptions{
			FullName: fullName,
			Variant:  variant,
			Style:    cfg.Render,
		}))
	}

	if params.Plot {
		tl := profiler.TimelineOf(snap, reverse)
		if params.Merged {
			tl = profiler.MergedTimelineOf(snap, reverse)
		}
		fmt.Fprint(out, render.Gantt(tl, fullName, cfg.Render))
	}

	if params.Export != "" {
		if err := exportSnapshot(out, snap, rows, params.Export, fullName); err != nil {
			return err
		}
	}

	if params.MetricsAddr != "" {
		return serveMetrics(ctx, log, reg, params.MetricsAddr)
	}
	return nil
}

// serveMetrics exposes the registry on a Prometheus endpoint until the
// context is cancelled.
func serveMetrics(ctx context.Context, log *logger.Logger, reg *profiler.Registry, addr string) error {
	promReg := prometheus.NewRegistry()
	if err := promReg.Register(promexport.NewCollector(reg)); err != nil {
		return fmt.Errorf("failed to register metrics collector: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	log.Info().Str("addr", addr).Msg("serving metrics; interrupt to stop")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("metrics server failed: %w", err)
	}
}
