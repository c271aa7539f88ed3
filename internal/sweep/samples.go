package sweep

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/atcg/velvetTarget/config"
)

// Sample is one independent read set to sweep. Samples share no
// mutable state: each gets its own Run directory, so any number can
// be processed at once.
type Sample struct {
	Name  string
	Input Input
}

// SampleResult is one sample's outcome, delivered on SweepAll's
// result channel.
type SampleResult struct {
	Name  string
	Run   *Run
	Curve *Curve
	Err   error
}

// SweepAll sweeps every sample concurrently, one goroutine per
// sample, and joins them before returning. Results come back in the
// order the samples were given regardless of completion order.
func SweepAll(ctx context.Context, samples []Sample, outDir string, conf config.Config, tc Toolchain) []SampleResult {
	results := make([]SampleResult, len(samples))

	var wg sync.WaitGroup
	for i, s := range samples {
		wg.Add(1)
		go func(i int, s Sample) {
			defer wg.Done()
			results[i] = sweepSample(ctx, s, outDir, conf, tc)
		}(i, s)
	}
	wg.Wait()

	return results
}

func sweepSample(ctx context.Context, s Sample, outDir string, conf config.Config, tc Toolchain) SampleResult {
	dir := ""
	if outDir != "" {
		dir = filepath.Join(outDir, s.Name)
	}

	run, err := NewRun(s.Name, dir, conf)
	if err != nil {
		return SampleResult{Name: s.Name, Err: err}
	}

	curve, err := Sweep(ctx, run, tc, s.Input)
	return SampleResult{Name: s.Name, Run: run, Curve: curve, Err: err}
}
