package auxengine

import (
	"io"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/ChizhovVadim/AuxEngine/common"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Engine (SPEC_FULL.md §4) wires the PV cache and the two queues (C1-C3),
// the helper pool (C4), and the worker/query/purge/gate machinery
// (C5-C9) into the single object an MCTS driver holds. It owns nothing
// of the search tree itself, only the narrow Node contract.
type Engine struct {
	cfg  Config
	log  zerolog.Logger
	pool *Pool

	nodeQueue *NodeQueue
	pvQueue   *PVQueue
	cache     *PVCache
	pure      *pureStats
	rands     []*rand.Rand

	stop atomic.Bool

	rootMu  sync.RWMutex
	root    Node
	history *common.PositionHistory

	group *errgroup.Group
}

// NewEngine builds an Engine for cfg, or returns ErrDisabled if the
// subsystem is not configured (SPEC_FULL.md §6). seed drives every
// worker's private random source (SPEC_FULL.md §9/§12).
func NewEngine(cfg Config, seed int64, w io.Writer) (*Engine, error) {
	if !cfg.Enabled() {
		return nil, ErrDisabled
	}
	var e = &Engine{
		cfg:       cfg,
		log:       NewLogger(cfg.Verbosity, w),
		pool:      NewPool(cfg.File, cfg.Instances),
		nodeQueue: NewNodeQueue(),
		pvQueue:   NewPVQueue(),
		cache:     NewPVCache(),
		pure:      newPureStats(),
		rands:     newWorkerRands(seed, cfg.Instances),
	}
	return e, nil
}

// SetRoot installs the current search root and its game history, read by
// every worker under rootMu (SPEC_FULL.md §5: the tree-nodes lock's
// counterpart for the root pointer itself, since no MCTS tree lock exists
// in this package).
func (e *Engine) SetRoot(root Node, history *common.PositionHistory) {
	e.rootMu.Lock()
	defer e.rootMu.Unlock()
	e.root = root
	e.history = history
}

// Root returns the current root and history, safe for concurrent use with
// SetRoot.
func (e *Engine) Root() (Node, *common.PositionHistory) {
	e.rootMu.RLock()
	defer e.rootMu.RUnlock()
	return e.root, e.history
}

// Enqueue is C9, the single choke point MCTS backup uses to nominate a
// node.
func (e *Engine) Enqueue(target, root Node) bool {
	return Enqueue(e.nodeQueue, target, root, e.stop.Load)
}

// DrainPVs hands the MCTS grafting stage every PV accumulated so far.
func (e *Engine) DrainPVs() []PVRecord {
	return e.pvQueue.DrainAll()
}

// PurgeAtMoveStart is C8's start-of-move pass, run by worker 0 as the
// first thing it does in a fresh search: drop queue entries whose witness
// no longer matches the (already updated) current root.
func (e *Engine) PurgeAtMoveStart() (nodesDropped, pvsDropped int) {
	var root, _ = e.Root()
	return PurgeStart(e.nodeQueue, e.pvQueue, root, FromCommonMove(root.Move()))
}

// PurgeAtMoveEnd is C8's end-of-move pass, run by the MCTS driver right
// after it picks playedMove and before it calls SetRoot to the resulting
// child.
func (e *Engine) PurgeAtMoveEnd(playedMove common.Move) (nodesDropped, pvsDropped int) {
	return PurgeEnd(e.nodeQueue, e.pvQueue, playedMove)
}

// optionsFor returns the setoption pairs slot i's helper should receive.
// Only worker 0, when configured for root-infinite mode, gets the
// additional AuxEngineOptionsOnRoot pairs appended (SPEC_FULL.md §4.5/§6).
func (e *Engine) optionsFor(i int) []KV {
	if i == 0 && e.cfg.RootInfinite() {
		var opts = make([]KV, 0, len(e.cfg.Options)+len(e.cfg.OptionsRoot))
		opts = append(opts, e.cfg.Options...)
		opts = append(opts, e.cfg.OptionsRoot...)
		return opts
	}
	return e.cfg.Options
}

// Start launches one worker goroutine per configured instance under a
// fresh errgroup.Group (C10, SPEC_FULL.md §11: "spawn N goroutines under
// one context, collect first error, wait for all"). Called once at the
// beginning of each move's search; the underlying helper subprocesses are
// started lazily inside each worker and persist across calls.
func (e *Engine) Start() {
	e.stop.Store(false)
	e.pure.reset()
	e.group = &errgroup.Group{}
	for i := 0; i < e.cfg.Instances; i++ {
		var i = i
		e.pure.incThread()
		e.group.Go(func() error {
			return e.runWorker(i)
		})
	}
}

// Stop is C10's shutdown/join: raise the stop flag, wake every blocked
// worker, wait for the thread counter to reach zero, and publish the
// move's statistics. The PV cache is cleared here for the next move; the
// per-move counters are reset by the next Start. Helper subprocesses are
// left running.
func (e *Engine) Stop() (Stats, error) {
	e.stop.Store(true)
	e.nodeQueue.Broadcast()
	e.pure.wake()
	var err error
	if e.group != nil {
		err = e.group.Wait()
	}
	e.pure.waitAllStopped()
	var stats = e.pure.snapshot(e.nodeQueue.Len(), e.cache.Len())
	e.cache.Clear()
	return stats, err
}

// Close terminates every helper subprocess, at full engine shutdown only
// (SPEC_FULL.md §4.10).
func (e *Engine) Close() {
	e.pool.Close()
}
