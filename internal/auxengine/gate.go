package auxengine

// Enqueue (C9) is the single choke point MCTS backup threads use to
// nominate a node for helper analysis, called while the caller still
// holds the tree-nodes lock (SPEC_FULL.md §4.9). It early-returns if stop
// is set; otherwise it marks target PENDING and attempts to push it onto
// nq with root as witness. The queue itself refuses the push if a final
// purge is in progress or the cap is exceeded, in which case the tag is
// rolled back to AuxUnset. Returns whether the node was actually queued.
func Enqueue(nq *NodeQueue, target Node, root Node, stop func() bool) bool {
	if stop() {
		return false
	}
	return nq.TryEnqueue(target, root)
}
