package algo

import "iter"

// Shell runs gapped insertion with halving gaps. Each gapped shift is a
// swap step; a placement step marks where an element came to rest, emitted
// only when it actually moved from its scan start.
func Shell(arr []int, yieldCompare bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		st := &Stats{}
		n := len(arr)
		for gap := n / 2; gap > 0; gap /= 2 {
			for i := gap; i < n; i++ {
				j := i
				for j >= gap {
					st.Comparisons++
					if yieldCompare && !yield(st.step(arr, []int{j - gap, j}, nil)) {
						return
					}
					if arr[j-gap] <= arr[j] {
						break
					}
					arr[j-gap], arr[j] = arr[j], arr[j-gap]
					st.Swaps++
					if !yield(st.step(arr, nil, []int{j - gap, j})) {
						return
					}
					j -= gap
				}
				if j != i {
					if !yield(st.step(arr, nil, []int{j})) {
						return
					}
				}
			}
		}
		yield(st.settle(arr))
	}
}
