package algo

import (
	"iter"
	"math/rand"
)

// Shuffle returns a Fisher-Yates driver seeded by r. Every exchange is
// reported through Compare rather than Swapped: the shuffle phase paints
// its exchanges with the comparison tint, and downstream consumers rely on
// that field placement.
func Shuffle(r *rand.Rand) Driver {
	return func(arr []int, _ bool) iter.Seq[Step] {
		return func(yield func(Step) bool) {
			st := &Stats{}
			for i := len(arr) - 1; i > 0; i-- {
				j := r.Intn(i + 1)
				arr[i], arr[j] = arr[j], arr[i]
				st.Swaps++
				if !yield(st.step(arr, []int{i, j}, nil)) {
					return
				}
			}
			yield(st.settle(arr))
		}
	}
}

// Accent sweeps a single-index highlight across the array left to right,
// then emits one bare settle step. The array is never mutated; the sweep
// exists purely to mark a finished sort.
func Accent(arr []int, _ bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		st := &Stats{}
		for i := range arr {
			if !yield(st.step(arr, nil, []int{i})) {
				return
			}
		}
		yield(st.settle(arr))
	}
}
