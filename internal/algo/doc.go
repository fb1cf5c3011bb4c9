// Package algo provides step-emitting sorting drivers.
//
// Each driver implements the [Driver] contract: it mutates its input array
// in place while lazily yielding [Step] records, one per comparison or
// mutation, terminating with a settle step whose Array equals the resolved
// result. Drivers know nothing about timing, drawing or sound; replaying
// the sequence is the player package's job.
//
// A [Registry] maps algorithm names to drivers plus their pacing class:
//
//	reg := algo.NewRegistry()
//	alg, err := reg.Get("merge")
//	for step := range alg.Drive(arr, true) {
//	    ...
//	}
//
// [Shuffle] and [Accent] are the phase drivers that bracket a sort: the
// shuffle reports its exchanges through Compare (the shuffle phase paints
// red, deliberately), and the accent sweeps a highlight across a finished
// array without mutating it.
package algo
