//go:build dev

// Package trace provides runtime tracing for development builds.
// This is the dev version with actual tracing support via runtime/trace.
//
// Usage:
//
//	CALLPROF_TRACE=trace.out callprof demo
//	go tool trace trace.out
package trace

import (
	"context"
	"fmt"
	"os"
	"runtime/trace"
	"sync"
)

var (
	traceFile   *os.File
	traceMu     sync.Mutex
	traceActive bool
)

// Init initializes tracing if CALLPROF_TRACE is set to a file path.
// Returns a cleanup function that should be deferred.
func Init() func() {
	tracePath := os.Getenv("CALLPROF_TRACE")
	if tracePath == "" {
		return func() {}
	}

	traceMu.Lock()
	defer traceMu.Unlock()

	var err error
	traceFile, err = os.Create(tracePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "callprof: failed to create trace file %s: %v\n", tracePath, err)
		return func() {}
	}

	if err := trace.Start(traceFile); err != nil {
		fmt.Fprintf(os.Stderr, "callprof: failed to start trace: %v\n", err)
		traceFile.Close()
		traceFile = nil
		return func() {}
	}

	traceActive = true
	fmt.Fprintf(os.Stderr, "callprof: tracing to %s\n", tracePath)

	return func() {
		traceMu.Lock()
		defer traceMu.Unlock()

		if traceActive {
			trace.Stop()
			traceActive = false
		}
		if traceFile != nil {
			traceFile.Close()
			traceFile = nil
		}
	}
}

// Region creates a trace region. Returns a function to end the region.
func Region(ctx context.Context, regionType string) func() {
	if !traceActive {
		return func() {}
	}
	region := trace.StartRegion(ctx, regionType)
	return region.End
}

// Log logs a message to the trace.
func Log(ctx context.Context, category, message string) {
	if traceActive {
		trace.Log(ctx, category, message)
	}
}

// IsEnabled returns true if tracing is enabled.
func IsEnabled() bool {
	return traceActive
}
