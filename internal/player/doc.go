// Package player schedules playback of sorting step sequences.
//
// A [Player] drains one driver's lazy sequence into a queue (bounded by
// [MaxSteps]), coalesces consecutive steps into fixed-budget [Frame]s and
// presents them sequentially against a [Renderer] and a [Tone] at the
// configured pacing interval. One Play call is one phase; its return value
// is the settled array, which the caller chains into the next phase.
package player
