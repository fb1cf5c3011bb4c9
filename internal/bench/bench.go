// Package bench drives algorithms headless over a shared input to compare
// their step counts.
package bench

import (
	"context"
	"sync"

	"github.com/san-kum/sortlab/internal/algo"
)

// Result summarizes one algorithm's complete run over a fixed input.
type Result struct {
	Name        string
	Class       algo.Class
	Comparisons int
	Swaps       int
	Steps       int
}

// Run drives every named algorithm over its own copy of base, all runs
// concurrent, and returns the results in name order. Each run drains at
// most maxSteps steps.
func Run(ctx context.Context, reg *algo.Registry, names []string, base []int, maxSteps int) ([]Result, error) {
	results := make([]Result, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(idx int, name string) {
			defer wg.Done()

			alg, err := reg.Get(name)
			if err != nil {
				errs[idx] = err
				return
			}

			arr := make([]int, len(base))
			copy(arr, base)

			res := Result{Name: alg.Name, Class: alg.Class}
			for step := range alg.Drive(arr, true) {
				res.Steps++
				res.Comparisons = step.Comparisons
				res.Swaps = step.Swaps
				if res.Steps >= maxSteps {
					break
				}
			}
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			results[idx] = res
		}(i, name)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
