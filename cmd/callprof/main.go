// Package main is the entry point for the callprof CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	profcli "github.com/callprof/callprof/internal/cli"
	"github.com/callprof/callprof/internal/trace"
	"github.com/callprof/callprof/pkg/version"
)

func main() {
	cleanup := trace.Init()
	defer cleanup()

	app := &cli.Command{
		Name:                  "callprof",
		Usage:                 "Call-timing profiles as tables and terminal timelines",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("CALLPROF_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "config",
				Value:   "",
				Usage:   "Path to a callprof config file",
				Sources: cli.EnvVars("CALLPROF_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "Run the example workload and display its profiles",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "order-by",
						Usage: "Sort column (name, calls, average, longest, bottleneck, total)",
					},
					&cli.BoolFlag{
						Name:  "reverse",
						Usage: "Sort descending",
					},
					&cli.BoolFlag{
						Name:  "full-name",
						Usage: "Display owner-qualified callable names",
					},
					&cli.BoolFlag{
						Name:  "total",
						Usage: "Show total elapsed time instead of bottleneck time",
					},
					&cli.BoolFlag{
						Name:  "plot",
						Usage: "Also render the timeline chart",
					},
					&cli.BoolFlag{
						Name:  "merged",
						Usage: "Merge overlapping intervals in the timeline chart",
					},
					&cli.StringFlag{
						Name:  "export",
						Usage: "Also export profile data (yaml or json)",
					},
					&cli.StringFlag{
						Name:  "template",
						Usage: "Render the report through a custom template instead of a table",
					},
					&cli.StringFlag{
						Name:  "metrics-addr",
						Usage: "Serve profile statistics as Prometheus metrics on this address",
					},
					&cli.IntFlag{
						Name:  "fanout",
						Value: 5,
						Usage: "Number of concurrent example calls",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return profcli.Demo(ctx, profcli.DemoParams{
						LogLevel:    cmd.String("log-level"),
						ConfigPath:  cmd.String("config"),
						OrderBy:     cmd.String("order-by"),
						Reverse:     cmd.Bool("reverse"),
						FullName:    cmd.Bool("full-name"),
						Total:       cmd.Bool("total"),
						Plot:        cmd.Bool("plot"),
						Merged:      cmd.Bool("merged"),
						Export:      cmd.String("export"),
						Template:    cmd.String("template"),
						MetricsAddr: cmd.String("metrics-addr"),
						Fanout:      int(cmd.Int("fanout")),
					})
				},
			},
			{
				Name:  "init",
				Usage: "Create a sample config file in the current folder",
				Action: func(_ context.Context, _ *cli.Command) error {
					return profcli.Init(nil)
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a callprof configuration file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					path := ""
					if cmd.Args().Len() > 0 {
						path = cmd.Args().Get(0)
					}
					return profcli.Validate(path, nil)
				},
			},
			{
				Name:  "schema",
				Usage: "Print the configuration JSON Schema",
				Action: func(_ context.Context, _ *cli.Command) error {
					return profcli.Schema(nil)
				},
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cleanup()
		os.Exit(1)
	}
}
