package auxengine

import "math/rand"

// newWorkerRands builds one *rand.Rand per worker, each seeded from a
// single process-level source at startup. SPEC_FULL.md §9/§12: the
// original shares one generator across all workers and additionally
// constructs it as a malformed Uniform(1,0); both are corrected here per
// the spec's explicit resolution — a per-worker generator (the "more
// scalable" alternative the design notes sanction) drawing from a
// well-formed Uniform(0,1), so tests can inject a deterministic seed.
func newWorkerRands(seed int64, n int) []*rand.Rand {
	var seedSource = rand.New(rand.NewSource(seed))
	var rands = make([]*rand.Rand, n)
	for i := range rands {
		rands[i] = rand.New(rand.NewSource(seedSource.Int63()))
	}
	return rands
}

// shouldReinsert reports whether a node deeper than MaxDepth should be
// requeued instead of queried this round, per SPEC_FULL.md §4.5: reinsert
// with probability 1 - 1/depth.
func shouldReinsert(r *rand.Rand, depth int) bool {
	if depth <= 0 {
		return false
	}
	return r.Float64() > 1.0/float64(depth)
}
