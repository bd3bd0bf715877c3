package auxengine

// runWorker is the steady loop for slot i (C5, SPEC_FULL.md §4.5). It
// starts (or confirms already-started) helper i, has worker 0 perform
// between-move bookkeeping, then either drives the root in
// root-infinite mode or consumes targets from the node queue.
func (e *Engine) runWorker(i int) error {
	defer e.pure.decThread()

	if err := e.pool.Start(i, e.optionsFor(i), e.cfg.SyzygyPath); err != nil {
		e.log.Warn().Err(err).Int("slot", i).Msg("helper start failed")
		return err
	}

	if i == 0 {
		var dropped, pvDropped = e.PurgeAtMoveStart()
		e.log.Debug().Int("nodes", dropped).Int("pvs", pvDropped).Msg("start-of-move purge")
		e.pure.setInitialPurgeRun()
	} else {
		e.pure.waitInitialPurgeRun(e.stop.Load)
	}

	if e.stop.Load() {
		return nil
	}

	if i == 0 && e.cfg.RootInfinite() {
		return e.runRootInfinite(i)
	}

	if i == 0 {
		var root, _ = e.Root()
		if root.AuxState() == AuxUnset {
			e.Enqueue(root, root)
		}
	}

	return e.runConsumer(i)
}

// runRootInfinite is worker 0's alternative steady loop when configured
// with a non-empty root-options string: it never touches the node queue,
// instead repeatedly re-driving the root itself in `go infinite` mode
// (SPEC_FULL.md §4.5).
func (e *Engine) runRootInfinite(i int) error {
	for !e.stop.Load() {
		var root, _ = e.Root()
		e.nodeQueue.mu.Lock()
		root.SetAuxState(AuxPending)
		e.nodeQueue.mu.Unlock()
		if err := e.runQuery(i, root, true); err != nil {
			return err
		}
	}
	return nil
}

// runConsumer is the ordinary worker steady loop: block for a target,
// apply depth sampling, drive the query.
func (e *Engine) runConsumer(i int) error {
	var r = e.rands[i]
	for {
		if e.stop.Load() {
			return nil
		}
		entry, ok := e.nodeQueue.Pop(e.stop.Load)
		if !ok {
			return nil
		}
		var depth = Depth(entry.Target)
		if depth > e.cfg.MaxDepth && shouldReinsert(r, depth) {
			if !e.nodeQueue.Push(entry) {
				e.nodeQueue.mu.Lock()
				entry.Target.SetAuxState(AuxUnset)
				e.nodeQueue.mu.Unlock()
			}
			continue
		}
		if err := e.runQuery(i, entry.Target, false); err != nil {
			return err
		}
	}
}
