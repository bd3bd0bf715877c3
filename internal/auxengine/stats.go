package auxengine

import (
	"sync"
	"time"
)

// Stats is the per-move snapshot C10 publishes on shutdown/join: queue
// size at selection, nodes added by helper, helper-call count, average
// query duration, and PV cache size (SPEC_FULL.md §12, restoring the
// per-move statistics the distilled spec names but does not shape).
type Stats struct {
	QueueSizeAtSelection int
	NodesAddedByHelper   int
	HelperCalls          int
	AverageDuration      time.Duration
	PVCacheSize          int
}

// pureStats (the spec's pure_stats_mutex_) guards the worker thread
// counter, the initial-purge handshake flag, and the running per-move
// counters that feed a Stats snapshot. Independent of every other lock in
// SPEC_FULL.md §5.
type pureStats struct {
	mu               sync.Mutex
	cond             *sync.Cond
	threadCounter    int
	initialPurgeRun  bool
	helperCalls      int
	totalDuration    time.Duration
	nodesAdded       int
}

func newPureStats() *pureStats {
	var s = &pureStats{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

func (s *pureStats) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialPurgeRun = false
	s.helperCalls = 0
	s.totalDuration = 0
	s.nodesAdded = 0
}

func (s *pureStats) incThread() {
	s.mu.Lock()
	s.threadCounter++
	s.mu.Unlock()
}

func (s *pureStats) decThread() {
	s.mu.Lock()
	s.threadCounter--
	s.cond.Broadcast()
	s.mu.Unlock()
}

func (s *pureStats) waitAllStopped() {
	s.mu.Lock()
	for s.threadCounter > 0 {
		s.cond.Wait()
	}
	s.mu.Unlock()
}

func (s *pureStats) setInitialPurgeRun() {
	s.mu.Lock()
	s.initialPurgeRun = true
	s.cond.Broadcast()
	s.mu.Unlock()
}

// wake broadcasts the condition variable without changing any state, so
// every waiter (waitAllStopped, waitInitialPurgeRun) re-checks its own
// exit condition. Called alongside the node queue's own broadcast on
// shutdown, so a worker blocked on the initial-purge handshake when stop
// is raised does not wait forever for a signal that only Enqueue/Purge
// would otherwise send.
func (s *pureStats) wake() {
	s.mu.Lock()
	s.cond.Broadcast()
	s.mu.Unlock()
}

func (s *pureStats) waitInitialPurgeRun(stop func() bool) {
	s.mu.Lock()
	for !s.initialPurgeRun && !stop() {
		s.cond.Wait()
	}
	s.mu.Unlock()
}

func (s *pureStats) recordQuery(d time.Duration, nodesAdded int) {
	s.mu.Lock()
	s.helperCalls++
	s.totalDuration += d
	s.nodesAdded += nodesAdded
	s.mu.Unlock()
}

func (s *pureStats) snapshot(queueSizeAtSelection, pvCacheSize int) Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	var avg time.Duration
	if s.helperCalls > 0 {
		avg = s.totalDuration / time.Duration(s.helperCalls)
	}
	return Stats{
		QueueSizeAtSelection: queueSizeAtSelection,
		NodesAddedByHelper:   s.nodesAdded,
		HelperCalls:          s.helperCalls,
		AverageDuration:      avg,
		PVCacheSize:          pvCacheSize,
	}
}
