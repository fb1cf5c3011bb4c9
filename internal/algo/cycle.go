package algo

import "iter"

// Cycle rotates each cycle of misplaced elements into position with the
// minimum number of writes. A comparison step is emitted per probe while
// computing an element's destination and a swap step per actual placement.
// The placement search advances past equal values, which is what keeps
// duplicate-heavy inputs from looping forever.
func Cycle(arr []int, yieldCompare bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		st := &Stats{}
		n := len(arr)
		for start := 0; start < n-1; start++ {
			item := arr[start]

			pos := start
			for i := start + 1; i < n; i++ {
				st.Comparisons++
				if yieldCompare && !yield(st.step(arr, []int{start, i}, nil)) {
					return
				}
				if arr[i] < item {
					pos++
				}
			}
			if pos == start {
				continue
			}
			for arr[pos] == item {
				pos++
			}
			arr[pos], item = item, arr[pos]
			st.Swaps++
			if !yield(st.step(arr, nil, []int{pos})) {
				return
			}

			for pos != start {
				pos = start
				for i := start + 1; i < n; i++ {
					st.Comparisons++
					if yieldCompare && !yield(st.step(arr, []int{start, i}, nil)) {
						return
					}
					if arr[i] < item {
						pos++
					}
				}
				for arr[pos] == item {
					pos++
				}
				arr[pos], item = item, arr[pos]
				st.Swaps++
				if !yield(st.step(arr, nil, []int{pos})) {
					return
				}
			}
		}
		yield(st.settle(arr))
	}
}
