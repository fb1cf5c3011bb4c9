package algo

import "iter"

// Bitonic sorts by recursive halving into opposed runs followed by bitonic
// merges. The length is assumed compatible with repeated halving (a power
// of two); other lengths are not validated here. The direction flag flows
// through the recursion and decides each merge exchange via
// (arr[i] > arr[i+mid]) == ascending.
func Bitonic(arr []int, yieldCompare bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		st := &Stats{}
		var merge func(lo, n int, ascending bool) bool
		merge = func(lo, n int, ascending bool) bool {
			if n <= 1 {
				return true
			}
			mid := n / 2
			for i := lo; i < lo+mid; i++ {
				st.Comparisons++
				if yieldCompare && !yield(st.step(arr, []int{i, i + mid}, nil)) {
					return false
				}
				if (arr[i] > arr[i+mid]) == ascending {
					arr[i], arr[i+mid] = arr[i+mid], arr[i]
					st.Swaps++
					if !yield(st.step(arr, nil, []int{i, i + mid})) {
						return false
					}
				}
			}
			return merge(lo, mid, ascending) && merge(lo+mid, mid, ascending)
		}
		var sort func(lo, n int, ascending bool) bool
		sort = func(lo, n int, ascending bool) bool {
			if n <= 1 {
				return true
			}
			mid := n / 2
			return sort(lo, mid, true) &&
				sort(lo+mid, n-mid, false) &&
				merge(lo, n, ascending)
		}
		if !sort(0, len(arr), true) {
			return
		}
		yield(st.settle(arr))
	}
}
