package algo

import "iter"

// Radix is an LSD radix sort over base-10 digits; it never compares
// elements, so the comparison counter stays at zero. Each pass emits a
// probe step per digit extraction, a bare progress step per
// cumulative-count update, a placement step per slot filled in the output
// buffer, and a swap-counted step per copy-back write. Only the copy-back
// writes touch the swap counter; bucket accounting does not.
func Radix(arr []int, yieldCompare bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		st := &Stats{}
		n := len(arr)
		max := 0
		for _, v := range arr {
			if v > max {
				max = v
			}
		}
		for exp := 1; max/exp > 0; exp *= 10 {
			var count [10]int
			for i := 0; i < n; i++ {
				digit := (arr[i] / exp) % 10
				count[digit]++
				if yieldCompare && !yield(st.step(arr, []int{i}, nil)) {
					return
				}
			}
			for d := 1; d < 10; d++ {
				count[d] += count[d-1]
				if yieldCompare && !yield(st.step(arr, nil, nil)) {
					return
				}
			}
			out := make([]int, n)
			for i := n - 1; i >= 0; i-- {
				digit := (arr[i] / exp) % 10
				count[digit]--
				out[count[digit]] = arr[i]
				if !yield(st.step(arr, nil, []int{count[digit]})) {
					return
				}
			}
			for i := 0; i < n; i++ {
				arr[i] = out[i]
				st.Swaps++
				if !yield(st.step(arr, nil, []int{i})) {
					return
				}
			}
		}
		yield(st.settle(arr))
	}
}
