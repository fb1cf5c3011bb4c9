package algo_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortlab/internal/algo"
)

// shuffled returns a deterministic permutation of 0..n-1.
func shuffled(n int, seed int64) []int {
	arr := algo.Sequence(n)
	rng := rand.New(rand.NewSource(seed))
	for range algo.Shuffle(rng)(arr, false) {
	}
	return arr
}

func drain(steps func(yield func(algo.Step) bool)) []algo.Step {
	out := make([]algo.Step, 0, 256)
	for s := range steps {
		out = append(out, s)
	}
	return out
}

var _ = Describe("sorting drivers", func() {
	reg := algo.NewRegistry()

	// power-of-two sizes keep bitonic's halving assumption satisfied
	sizes := []int{1, 2, 16, 64}

	for _, name := range reg.List() {
		name := name

		Describe(name, func() {
			var drive algo.Driver

			BeforeEach(func() {
				alg, err := reg.Get(name)
				Expect(err).NotTo(HaveOccurred())
				drive = alg.Drive
			})

			It("sorts shuffled permutations of every size", func() {
				for _, n := range sizes {
					arr := shuffled(n, int64(n))
					drain(drive(arr, true))
					Expect(arr).To(Equal(algo.Sequence(n)), "n=%d", n)
				}
			})

			It("settles on a snapshot of the sorted array", func() {
				arr := shuffled(32, 7)
				steps := drain(drive(arr, true))
				Expect(steps).NotTo(BeEmpty())
				Expect(steps[len(steps)-1].Array).To(Equal(algo.Sequence(32)))
			})

			It("keeps counters non-decreasing across the sequence", func() {
				steps := drain(drive(shuffled(32, 3), true))
				prev := algo.Step{}
				for i, s := range steps {
					Expect(s.Comparisons).To(BeNumerically(">=", prev.Comparisons), "step %d", i)
					Expect(s.Swaps).To(BeNumerically(">=", prev.Swaps), "step %d", i)
					prev = s
				}
			})

			It("counts identically with comparison steps suppressed", func() {
				verbose := drain(drive(shuffled(32, 11), true))
				quiet := drain(drive(shuffled(32, 11), false))

				vl := verbose[len(verbose)-1]
				ql := quiet[len(quiet)-1]
				Expect(ql.Comparisons).To(Equal(vl.Comparisons))
				Expect(ql.Swaps).To(Equal(vl.Swaps))
			})
		})
	}
})
