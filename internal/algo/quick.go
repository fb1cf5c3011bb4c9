package algo

import "iter"

// Quick sorts with Lomuto partitioning against the range's last element.
// Every scan comparison, in-partition exchange and the pivot placement are
// separate steps, and each recursive frame signs off with a bare heartbeat
// step so playback reflects recursion boundaries.
func Quick(arr []int, yieldCompare bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		st := &Stats{}
		var sort func(lo, hi int) bool
		sort = func(lo, hi int) bool {
			if lo < hi {
				i := lo
				for j := lo; j < hi; j++ {
					st.Comparisons++
					if yieldCompare && !yield(st.step(arr, []int{j, hi}, nil)) {
						return false
					}
					if arr[j] < arr[hi] {
						if i != j {
							arr[i], arr[j] = arr[j], arr[i]
							st.Swaps++
							if !yield(st.step(arr, nil, []int{i, j})) {
								return false
							}
						}
						i++
					}
				}
				if i != hi {
					arr[i], arr[hi] = arr[hi], arr[i]
					st.Swaps++
					if !yield(st.step(arr, nil, []int{i, hi})) {
						return false
					}
				}
				if !sort(lo, i-1) || !sort(i+1, hi) {
					return false
				}
			}
			// heartbeat marking this frame's return
			return yield(st.settle(arr))
		}
		sort(0, len(arr)-1)
	}
}
