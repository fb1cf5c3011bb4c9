package algo

import "iter"

// Heap builds a max-heap then repeatedly swaps the root to the shrinking
// tail. Sifting compares both children before swapping with the parent and
// re-heapifies the affected subtree after every root extraction.
func Heap(arr []int, yieldCompare bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		st := &Stats{}
		var sift func(size, root int) bool
		sift = func(size, root int) bool {
			largest := root
			l, r := 2*root+1, 2*root+2
			if l < size {
				st.Comparisons++
				if yieldCompare && !yield(st.step(arr, []int{l, largest}, nil)) {
					return false
				}
				if arr[l] > arr[largest] {
					largest = l
				}
			}
			if r < size {
				st.Comparisons++
				if yieldCompare && !yield(st.step(arr, []int{r, largest}, nil)) {
					return false
				}
				if arr[r] > arr[largest] {
					largest = r
				}
			}
			if largest != root {
				arr[root], arr[largest] = arr[largest], arr[root]
				st.Swaps++
				if !yield(st.step(arr, nil, []int{root, largest})) {
					return false
				}
				return sift(size, largest)
			}
			return true
		}

		n := len(arr)
		for i := n/2 - 1; i >= 0; i-- {
			if !sift(n, i) {
				return
			}
		}
		for i := n - 1; i > 0; i-- {
			arr[0], arr[i] = arr[i], arr[0]
			st.Swaps++
			if !yield(st.step(arr, nil, []int{0, i})) {
				return
			}
			if !sift(i, 0) {
				return
			}
		}
		yield(st.settle(arr))
	}
}
