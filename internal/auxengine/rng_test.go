package auxengine

import "testing"

func TestNewWorkerRandsAreIndependent(t *testing.T) {
	var rands = newWorkerRands(1, 3)
	if len(rands) != 3 {
		t.Fatalf("len(rands) = %d, want 3", len(rands))
	}
	var seen = map[float64]bool{}
	for _, r := range rands {
		var v = r.Float64()
		if seen[v] {
			t.Errorf("two workers drew the same first value %v from what should be independent sources", v)
		}
		seen[v] = true
	}
}

func TestNewWorkerRandsDeterministicForSameSeed(t *testing.T) {
	var a = newWorkerRands(7, 2)
	var b = newWorkerRands(7, 2)
	for i := range a {
		if a[i].Float64() != b[i].Float64() {
			t.Errorf("worker %d drew different values for the same seed", i)
		}
	}
}

func TestShouldReinsertNeverAtZeroDepth(t *testing.T) {
	var rands = newWorkerRands(1, 1)
	if shouldReinsert(rands[0], 0) {
		t.Error("shouldReinsert(depth=0) = true, want false")
	}
	if shouldReinsert(rands[0], -1) {
		t.Error("shouldReinsert(depth=-1) = true, want false")
	}
}

func TestShouldReinsertNeverAtDepthOne(t *testing.T) {
	// 1 - 1/1 == 0: the reinsertion probability at depth 1 is exactly
	// zero, since Float64() never returns a value >= 1.0.
	var rands = newWorkerRands(3, 1)
	for i := 0; i < 100; i++ {
		if shouldReinsert(rands[0], 1) {
			t.Fatalf("shouldReinsert(depth=1) = true on draw %d, want false", i)
		}
	}
}

func TestShouldReinsertMostlyTrueAtHighDepth(t *testing.T) {
	// At depth 100 the reinsertion probability is 0.99; over many draws
	// the large majority should reinsert.
	var rands = newWorkerRands(3, 1)
	var reinserted = 0
	const trials = 1000
	for i := 0; i < trials; i++ {
		if shouldReinsert(rands[0], 100) {
			reinserted++
		}
	}
	if reinserted < trials/2 {
		t.Errorf("reinserted %d/%d draws at depth 100, want a clear majority", reinserted, trials)
	}
}
