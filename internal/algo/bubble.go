package algo

import "iter"

// Bubble emits one step per adjacent comparison and one per exchange, and
// stops early once a full pass performs no exchange.
func Bubble(arr []int, yieldCompare bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		st := &Stats{}
		n := len(arr)
		for pass := 0; pass < n; pass++ {
			swapped := false
			for i := 0; i < n-1-pass; i++ {
				st.Comparisons++
				if yieldCompare && !yield(st.step(arr, []int{i, i + 1}, nil)) {
					return
				}
				if arr[i] > arr[i+1] {
					arr[i], arr[i+1] = arr[i+1], arr[i]
					st.Swaps++
					swapped = true
					if !yield(st.step(arr, nil, []int{i, i + 1})) {
						return
					}
				}
			}
			if !swapped {
				break
			}
		}
		yield(st.settle(arr))
	}
}

// Cocktail alternates forward and backward bubble passes over a shrinking
// window, short-circuiting as soon as either direction runs clean.
func Cocktail(arr []int, yieldCompare bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		st := &Stats{}
		lo, hi := 0, len(arr)-1
		for lo < hi {
			swapped := false
			for i := lo; i < hi; i++ {
				st.Comparisons++
				if yieldCompare && !yield(st.step(arr, []int{i, i + 1}, nil)) {
					return
				}
				if arr[i] > arr[i+1] {
					arr[i], arr[i+1] = arr[i+1], arr[i]
					st.Swaps++
					swapped = true
					if !yield(st.step(arr, nil, []int{i, i + 1})) {
						return
					}
				}
			}
			hi--
			if !swapped {
				break
			}
			swapped = false
			for i := hi; i > lo; i-- {
				st.Comparisons++
				if yieldCompare && !yield(st.step(arr, []int{i - 1, i}, nil)) {
					return
				}
				if arr[i-1] > arr[i] {
					arr[i-1], arr[i] = arr[i], arr[i-1]
					st.Swaps++
					swapped = true
					if !yield(st.step(arr, nil, []int{i - 1, i})) {
						return
					}
				}
			}
			lo++
			if !swapped {
				break
			}
		}
		yield(st.settle(arr))
	}
}

// Gnome walks a single index forward, retreating one slot after every
// exchange so an element can be carried back as far as it needs to go.
func Gnome(arr []int, yieldCompare bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		st := &Stats{}
		i := 1
		for i < len(arr) {
			st.Comparisons++
			if yieldCompare && !yield(st.step(arr, []int{i - 1, i}, nil)) {
				return
			}
			if arr[i-1] <= arr[i] {
				i++
				continue
			}
			arr[i-1], arr[i] = arr[i], arr[i-1]
			st.Swaps++
			if !yield(st.step(arr, nil, []int{i - 1, i})) {
				return
			}
			if i > 1 {
				i--
			}
		}
		yield(st.settle(arr))
	}
}

// OddEven runs alternating odd/even brick passes until a full sweep makes
// no exchange.
func OddEven(arr []int, yieldCompare bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		st := &Stats{}
		n := len(arr)
		for sorted := false; !sorted; {
			sorted = true
			for _, phase := range []int{1, 0} {
				for i := phase; i+1 < n; i += 2 {
					st.Comparisons++
					if yieldCompare && !yield(st.step(arr, []int{i, i + 1}, nil)) {
						return
					}
					if arr[i] > arr[i+1] {
						arr[i], arr[i+1] = arr[i+1], arr[i]
						st.Swaps++
						sorted = false
						if !yield(st.step(arr, nil, []int{i, i + 1})) {
							return
						}
					}
				}
			}
		}
		yield(st.settle(arr))
	}
}

// Comb compares across a gap that shrinks by a factor of 1.3 per pass,
// finishing with gap-1 passes until clean.
func Comb(arr []int, yieldCompare bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		st := &Stats{}
		n := len(arr)
		gap := n
		for sorted := false; !sorted; {
			gap = int(float64(gap) / 1.3)
			if gap <= 1 {
				gap = 1
				sorted = true
			}
			for i := 0; i+gap < n; i++ {
				st.Comparisons++
				if yieldCompare && !yield(st.step(arr, []int{i, i + gap}, nil)) {
					return
				}
				if arr[i] > arr[i+gap] {
					arr[i], arr[i+gap] = arr[i+gap], arr[i]
					st.Swaps++
					sorted = false
					if !yield(st.step(arr, nil, []int{i, i + gap})) {
						return
					}
				}
			}
		}
		yield(st.settle(arr))
	}
}
