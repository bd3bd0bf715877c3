package auxengine

import "github.com/ChizhovVadim/AuxEngine/common"

// PurgeStart (C8) is the start-of-move purge, run by worker 0 before the
// steady loop. The node queue is filtered to entries whose witness is
// exactly the new root (SPEC_FULL.md §4.8); every survivor's witness is
// updated to root (a no-op here, since it was already root, but this is
// the one purge that can legitimately leave the witness unchanged). PV
// queue entries are checked against rootMove, the new root's own incoming
// edge: this is the move that turned the old root into the current one,
// so a PV computed before the root advanced is only still graftable if it
// begins with that same move.
func PurgeStart(nq *NodeQueue, pvq *PVQueue, root Node, rootMove Move) (nodesDropped, pvsDropped int) {
	nodesDropped = nq.Purge(func(target, witness Node) (Node, bool) {
		if witness != root {
			return nil, false
		}
		return root, true
	})
	pvsDropped = purgePVs(pvq, rootMove)
	return
}

// PurgeEnd (C8) is the end-of-move purge, run by the MCTS driver right
// after a move is selected. A node queue entry survives only if its
// witness (the root at the time it was pushed) has, on the path toward
// target, a child reached by exactly playedMove — i.e. the new root is
// that child, and target still lies in its subtree. PV entries are
// checked against playedMove directly, not the new root's edge, because
// this call happens at the moment the move is chosen, before the tree's
// root pointer is necessarily updated.
func PurgeEnd(nq *NodeQueue, pvq *PVQueue, playedMove common.Move) (nodesDropped, pvsDropped int) {
	nodesDropped = nq.Purge(func(target, witness Node) (Node, bool) {
		var newRoot, ok = childViaMove(witness, target, playedMove)
		if !ok {
			return nil, false
		}
		return newRoot, true
	})
	pvsDropped = purgePVs(pvq, FromCommonMove(playedMove))
	return
}

// childViaMove walks from target up toward witness and reports the
// witness's immediate child on that path, if the edge into it is move.
// That child is the new root that target's continued membership in the
// queue is being justified against.
func childViaMove(witness, target Node, move common.Move) (Node, bool) {
	var cur = target
	for cur != nil {
		var parent = cur.Parent()
		if parent == witness {
			if cur.Move() == move {
				return cur, true
			}
			return nil, false
		}
		cur = parent
	}
	return nil, false
}

// purgePVs drops the leading move from every queued PV that starts with
// compareMove, discarding the rest (SPEC_FULL.md §4.8). It reports how
// many PVs were dropped entirely.
func purgePVs(pvq *PVQueue, compareMove Move) int {
	var entries = pvq.DrainAll()
	var kept = make([]PVRecord, 0, len(entries))
	var dropped = 0
	for _, rec := range entries {
		if len(rec.Moves) > 0 && rec.Moves[0] == compareMove {
			rec.Moves = rec.Moves[1:]
			kept = append(kept, rec)
		} else {
			dropped++
		}
	}
	pvq.PushAll(kept)
	return dropped
}
