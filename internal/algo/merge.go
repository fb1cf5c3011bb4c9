package algo

import "iter"

// Merge sorts by recursive halving. The merge phase emits one comparison
// step per pair examined, then, if the merge changed anything, a single
// consolidated step listing every position whose value differs from the
// range's pre-merge snapshot; the swap counter grows by the number of
// changed positions, not by element moves.
func Merge(arr []int, yieldCompare bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		st := &Stats{}
		var sort func(lo, hi int) bool
		sort = func(lo, hi int) bool {
			if hi-lo < 2 {
				return true
			}
			mid := (lo + hi) / 2
			if !sort(lo, mid) || !sort(mid, hi) {
				return false
			}

			before := snapshot(arr[lo:hi])
			merged := make([]int, 0, hi-lo)
			i, j := lo, mid
			for i < mid && j < hi {
				st.Comparisons++
				if yieldCompare && !yield(st.step(arr, []int{i, j}, nil)) {
					return false
				}
				if arr[i] <= arr[j] {
					merged = append(merged, arr[i])
					i++
				} else {
					merged = append(merged, arr[j])
					j++
				}
			}
			merged = append(merged, arr[i:mid]...)
			merged = append(merged, arr[j:hi]...)
			copy(arr[lo:hi], merged)

			var changed []int
			for k, v := range merged {
				if v != before[k] {
					changed = append(changed, lo+k)
				}
			}
			if len(changed) > 0 {
				st.Swaps += len(changed)
				return yield(st.step(arr, nil, changed))
			}
			return true
		}
		if !sort(0, len(arr)) {
			return
		}
		yield(st.settle(arr))
	}
}
