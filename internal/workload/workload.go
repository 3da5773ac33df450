// Package workload runs a small concurrent example workload against a
// profiler registry. The CLI demo command uses it to produce data with
// visible overlap: one method fans out across goroutines while others run
// sequentially.
package workload

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/callprof/callprof/pkg/profiler"
)

// Owner is the qualifier under which the workload's methods are tracked.
const Owner = "Example"

// Workload is a set of tracked example methods.
type Workload struct {
	mu      sync.Mutex
	rng     *rand.Rand
	scale   time.Duration
	tracked map[string]func()
}

// New builds a workload tracked in reg. scale stretches or shrinks every
// sleep; time.Millisecond gives runs in the tens of milliseconds. seed
// fixes the random sleep sequence.
func New(reg *profiler.Registry, scale time.Duration, seed int64) *Workload {
	w := &Workload{
		rng:   rand.New(rand.NewSource(seed)),
		scale: scale,
	}
	w.tracked = reg.TrackedAll(Owner, map[string]func(){
		"MethodA": w.methodA,
		"MethodB": w.methodB,
		"MethodC": w.methodC,
		"MethodD": w.methodD,
		"MethodE": w.methodE,
	})
	return w
}

// Run executes the workload: MethodA once, then MethodB fanned out across
// fanout goroutines (each also calling MethodC), then MethodD and MethodE
// sequentially.
func (w *Workload) Run(ctx context.Context, fanout int) error {
	w.tracked["MethodA"]()

	g, _ := errgroup.WithContext(ctx)
	for i := 0; i < fanout; i++ {
		g.Go(func() error {
			w.tracked["MethodB"]()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w.tracked["MethodD"]()
	w.tracked["MethodE"]()
	return ctx.Err()
}

func (w *Workload) sleep(maxUnits int) {
	time.Sleep(time.Duration(w.randInt(maxUnits)) * w.scale)
}

// randInt returns a value in [1, max]. The rng is shared across the
// fanned-out goroutines, so draws are serialized.
func (w *Workload) randInt(max int) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rng.Intn(max) + 1
}

func (w *Workload) methodA() {
	w.sleep(5)
}

func (w *Workload) methodB() {
	w.sleep(10)
	w.tracked["MethodC"]()
}

func (w *Workload) methodC() {
	w.sleep(10)
}

func (w *Workload) methodD() {
	w.sleep(10)
}

func (w *Workload) methodE() {
	w.sleep(5)
}
