package algo

import "iter"

// Step is one atomic unit of algorithmic progress: a comparison, a
// mutation, or a bare progress marker. Array is a full snapshot of the
// working array at the instant the step was produced.
type Step struct {
	Array   []int
	Compare []int
	Swapped []int

	Comparisons int
	Swaps       int
}

// Driver produces the lazy step sequence for one sorting pass. The input
// slice is mutated in place; the sequence is finite and its last step's
// Array equals the settled array. When yieldCompare is false,
// comparison-only steps are suppressed but mutation steps still flow.
type Driver func(arr []int, yieldCompare bool) iter.Seq[Step]

// Stats holds the running counters for one driver invocation. Exactly one
// invocation owns one Stats value; it is threaded by pointer through any
// recursive helpers rather than captured implicitly.
type Stats struct {
	Comparisons int
	Swaps       int
}

func (s *Stats) step(arr, compare, swapped []int) Step {
	return Step{
		Array:       snapshot(arr),
		Compare:     snapshot(compare),
		Swapped:     snapshot(swapped),
		Comparisons: s.Comparisons,
		Swaps:       s.Swaps,
	}
}

// settle is the terminal step: full array snapshot, no highlights.
func (s *Stats) settle(arr []int) Step {
	return s.step(arr, nil, nil)
}

func snapshot(v []int) []int {
	if v == nil {
		return nil
	}
	c := make([]int, len(v))
	copy(c, v)
	return c
}

// Sequence returns the ascending identity array 0..n-1 that every phase
// chain starts from.
func Sequence(n int) []int {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = i
	}
	return arr
}
