package report

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/shape-metrics-mcp/internal/dataset"
	"github.com/ironsheep/shape-metrics-mcp/internal/descriptor"
	"github.com/ironsheep/shape-metrics-mcp/internal/logger"
)

// Runner scores samples concurrently with a bounded worker pool. The
// zero value runs every method on the default backend with a single
// worker.
type Runner struct {
	// Backend used for scoring; nil selects the default.
	Backend descriptor.Backend

	// Workers bounds concurrent scoring goroutines; values below 1
	// are treated as 1.
	Workers int

	// Methods to apply per sample; empty means all methods.
	Methods []descriptor.Method
}

// Run scores every sample with every configured method. Samples must
// have their masks loaded.
//
// The result order is deterministic regardless of scheduling: samples
// in input order, methods in configured order within each sample.
// Scoring failures are recorded on the score and logged, never fatal.
func (r *Runner) Run(samples []*dataset.Sample) []Score {
	methods := r.Methods
	if len(methods) == 0 {
		methods = descriptor.Methods()
	}
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(samples) && len(samples) > 0 {
		workers = len(samples)
	}
	backend := r.Backend
	if backend == nil {
		backend = descriptor.DefaultBackend()
	}

	scores := make([]Score, len(samples)*len(methods))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				s := samples[i]
				for j, method := range methods {
					slot := &scores[i*len(methods)+j]
					slot.Kind = s.Kind
					slot.Sample = s.Name
					slot.Index = s.Index
					slot.Method = method.Code()

					res, err := descriptor.ComputeWith(backend, s.Mask, method)
					if err != nil {
						slot.Err = err.Error()
						logger.WithFields(logrus.Fields{
							"sample": s.Name,
							"method": method.Code(),
						}).WithError(err).Warn("scoring failed")
						continue
					}
					slot.Value = res.Score
					slot.Components = res.Components
					if res.MultipleComponents {
						logger.WithFields(logrus.Fields{
							"sample":     s.Name,
							"method":     method.Code(),
							"components": res.Components,
						}).Debug("mask has multiple components")
					}
				}
			}
		}()
	}

	for i := range samples {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return scores
}
