package algo

import (
	"iter"
	"math/rand"
	"reflect"
	"testing"
)

func collect(steps iter.Seq[Step]) []Step {
	out := make([]Step, 0, 64)
	for s := range steps {
		out = append(out, s)
	}
	return out
}

func TestAccentStepShape(t *testing.T) {
	steps := collect(Accent([]int{5, 1, 9}, true))

	if len(steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(steps))
	}
	for i := 0; i < 3; i++ {
		if !reflect.DeepEqual(steps[i].Swapped, []int{i}) {
			t.Errorf("step %d: expected swapped [%d], got %v", i, i, steps[i].Swapped)
		}
		if len(steps[i].Compare) != 0 {
			t.Errorf("step %d: expected no compare indexes, got %v", i, steps[i].Compare)
		}
	}
	last := steps[3]
	if len(last.Compare) != 0 || len(last.Swapped) != 0 {
		t.Errorf("final step should be bare, got compare=%v swapped=%v", last.Compare, last.Swapped)
	}
	if !reflect.DeepEqual(last.Array, []int{5, 1, 9}) {
		t.Errorf("accent must not mutate the array, got %v", last.Array)
	}
}

func TestShuffleReportsExchangesAsCompare(t *testing.T) {
	arr := Sequence(16)
	steps := collect(Shuffle(rand.New(rand.NewSource(1)))(arr, false))

	if len(steps) != 16 {
		t.Fatalf("expected 15 exchange steps plus settle, got %d", len(steps))
	}
	for i, s := range steps[:15] {
		if len(s.Compare) != 2 {
			t.Errorf("step %d: expected exchange in compare field, got %v", i, s.Compare)
		}
		if len(s.Swapped) != 0 {
			t.Errorf("step %d: swapped field must stay empty, got %v", i, s.Swapped)
		}
	}
	if steps[14].Swaps != 15 {
		t.Errorf("expected 15 swaps counted, got %d", steps[14].Swaps)
	}
}

func TestMergeConsolidatedSwapStep(t *testing.T) {
	// the final merge of [1,3 | 2,4] changes positions 1 and 2 only
	arr := []int{3, 1, 2, 4}
	steps := collect(Merge(arr, false))

	if !reflect.DeepEqual(arr, []int{1, 2, 3, 4}) {
		t.Fatalf("expected sorted array, got %v", arr)
	}

	var swapSteps []Step
	for _, s := range steps {
		if len(s.Swapped) > 0 {
			swapSteps = append(swapSteps, s)
		}
	}
	if len(swapSteps) != 2 {
		t.Fatalf("expected 2 consolidated swap steps, got %d", len(swapSteps))
	}
	// merge of [3 | 1] changes both positions
	if !reflect.DeepEqual(swapSteps[0].Swapped, []int{0, 1}) {
		t.Errorf("first merge: expected swapped [0 1], got %v", swapSteps[0].Swapped)
	}
	// merge of [2 | 4] changes nothing and emits no swap step;
	// the final merge changes positions 1 and 2
	if !reflect.DeepEqual(swapSteps[1].Swapped, []int{1, 2}) {
		t.Errorf("final merge: expected swapped [1 2], got %v", swapSteps[1].Swapped)
	}
	last := steps[len(steps)-1]
	if last.Swaps != 4 {
		t.Errorf("swap counter should grow by changed positions, expected 4, got %d", last.Swaps)
	}
}

func TestCycleHandlesDuplicates(t *testing.T) {
	arr := []int{3, 3, 1, 2}
	steps := collect(Cycle(arr, true))

	if !reflect.DeepEqual(arr, []int{1, 2, 3, 3}) {
		t.Errorf("expected [1 2 3 3], got %v", arr)
	}
	if len(steps) == 0 {
		t.Fatal("expected steps")
	}
	last := steps[len(steps)-1]
	if !reflect.DeepEqual(last.Array, []int{1, 2, 3, 3}) {
		t.Errorf("settle step should carry the sorted array, got %v", last.Array)
	}
}

func TestQuickEmitsHeartbeats(t *testing.T) {
	arr := []int{3, 0, 2, 1}
	steps := collect(Quick(arr, true))

	heartbeats := 0
	for _, s := range steps {
		if len(s.Compare) == 0 && len(s.Swapped) == 0 {
			heartbeats++
		}
	}
	if heartbeats == 0 {
		t.Error("expected bare heartbeat steps at recursion boundaries")
	}
	if !reflect.DeepEqual(steps[len(steps)-1].Array, []int{0, 1, 2, 3}) {
		t.Errorf("expected sorted final snapshot, got %v", steps[len(steps)-1].Array)
	}
}

func TestSelectionCarriesPreviousSwapHighlight(t *testing.T) {
	arr := []int{2, 0, 1}
	steps := collect(Selection(arr, true))

	// after the first exchange, scan comparisons must keep it highlighted
	sawCarry := false
	var lastSwap []int
	for _, s := range steps {
		if len(s.Compare) > 0 && len(s.Swapped) > 0 {
			if reflect.DeepEqual(s.Swapped, lastSwap) {
				sawCarry = true
			}
		}
		if len(s.Compare) == 0 && len(s.Swapped) > 0 {
			lastSwap = s.Swapped
		}
	}
	if !sawCarry {
		t.Error("comparison steps should carry the previous exchange highlight")
	}
	if !reflect.DeepEqual(arr, []int{0, 1, 2}) {
		t.Errorf("expected sorted array, got %v", arr)
	}
}

func TestBinaryInsertionProbeHighlight(t *testing.T) {
	arr := []int{4, 2, 3, 0, 1}
	steps := collect(BinaryInsertion(arr, true))

	for _, s := range steps {
		if len(s.Compare) == 2 && s.Compare[0] > s.Compare[1] {
			t.Fatalf("probe highlight should be [mid, i] with mid < i, got %v", s.Compare)
		}
	}
	if !reflect.DeepEqual(arr, []int{0, 1, 2, 3, 4}) {
		t.Errorf("expected sorted array, got %v", arr)
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	arr := []int{1, 0}
	steps := collect(Bubble(arr, true))

	first := steps[0]
	if !reflect.DeepEqual(first.Array, []int{1, 0}) {
		t.Errorf("first snapshot should predate the exchange, got %v", first.Array)
	}
	arr[0] = 99
	if first.Array[0] == 99 {
		t.Error("snapshot must be a copy, not an alias of the working array")
	}
}

func TestSuppressedComparisonSteps(t *testing.T) {
	quiet := collect(Bubble([]int{2, 1, 0}, false))
	verbose := collect(Bubble([]int{2, 1, 0}, true))

	if len(quiet) >= len(verbose) {
		t.Errorf("suppressing comparisons should shrink the sequence: %d vs %d", len(quiet), len(verbose))
	}
	for i, s := range quiet[:len(quiet)-1] {
		if len(s.Compare) > 0 {
			t.Errorf("step %d: comparison step leaked with yieldCompare=false: %v", i, s.Compare)
		}
	}
	ql, vl := quiet[len(quiet)-1], verbose[len(verbose)-1]
	if ql.Comparisons != vl.Comparisons || ql.Swaps != vl.Swaps {
		t.Errorf("counters must not depend on verbosity: %d/%d vs %d/%d",
			ql.Comparisons, ql.Swaps, vl.Comparisons, vl.Swaps)
	}
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()

	if _, err := reg.Get("merge"); err != nil {
		t.Errorf("expected merge to be registered: %v", err)
	}
	if _, err := reg.Get("bogo"); err == nil {
		t.Error("expected error for unknown algorithm")
	}
	names := reg.List()
	if len(names) != 15 {
		t.Errorf("expected 15 registered algorithms, got %d", len(names))
	}
}
