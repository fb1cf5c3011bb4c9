package algo

import "iter"

// Selection scans for the minimum of the unsorted suffix. Comparison steps
// keep the previous exchange highlighted alongside the scan cursor so the
// strip shows what just moved while the next candidate is probed; the
// trailing step keeps the final exchange highlight rather than clearing it.
func Selection(arr []int, yieldCompare bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		st := &Stats{}
		n := len(arr)
		var lastSwap []int
		for i := 0; i < n-1; i++ {
			min := i
			for j := i + 1; j < n; j++ {
				st.Comparisons++
				if yieldCompare && !yield(st.step(arr, []int{j, min}, lastSwap)) {
					return
				}
				if arr[j] < arr[min] {
					min = j
				}
			}
			if min != i {
				arr[i], arr[min] = arr[min], arr[i]
				st.Swaps++
				lastSwap = []int{i, min}
				if !yield(st.step(arr, nil, lastSwap)) {
					return
				}
			}
		}
		yield(st.step(arr, nil, lastSwap))
	}
}
