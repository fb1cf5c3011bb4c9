package algo

import "iter"

// Insertion bubbles each element leftwards one slot at a time. Comparison
// steps carry the previous shift's pair as a lingering swap highlight;
// every right-shift counts as one swap.
func Insertion(arr []int, yieldCompare bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		st := &Stats{}
		var lastShift []int
		for i := 1; i < len(arr); i++ {
			for j := i; j > 0; j-- {
				st.Comparisons++
				if yieldCompare && !yield(st.step(arr, []int{j - 1, j}, lastShift)) {
					return
				}
				if arr[j-1] <= arr[j] {
					break
				}
				arr[j-1], arr[j] = arr[j], arr[j-1]
				st.Swaps++
				lastShift = []int{j - 1, j}
				if !yield(st.step(arr, nil, lastShift)) {
					return
				}
			}
		}
		yield(st.settle(arr))
	}
}

// BinaryInsertion locates each element's slot by binary search before
// shifting. Probe steps highlight the probe and the element being placed
// ([mid, i]), not the probe's neighbour.
func BinaryInsertion(arr []int, yieldCompare bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		st := &Stats{}
		var lastShift []int
		for i := 1; i < len(arr); i++ {
			lo, hi := 0, i
			for lo < hi {
				mid := (lo + hi) / 2
				st.Comparisons++
				if yieldCompare && !yield(st.step(arr, []int{mid, i}, lastShift)) {
					return
				}
				if arr[mid] <= arr[i] {
					lo = mid + 1
				} else {
					hi = mid
				}
			}
			for j := i; j > lo; j-- {
				arr[j-1], arr[j] = arr[j], arr[j-1]
				st.Swaps++
				lastShift = []int{j - 1, j}
				if !yield(st.step(arr, nil, lastShift)) {
					return
				}
			}
		}
		yield(st.settle(arr))
	}
}
