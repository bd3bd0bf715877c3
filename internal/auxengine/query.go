package auxengine

import (
	"time"

	"github.com/ChizhovVadim/AuxEngine/common"
)

// minPVSize is the shortest PV the encoder will graft (SPEC_FULL.md §4.6).
const minPVSize = 4

// maxPVLen is the absolute cap on a graftable PV's length, independent of
// whatever depth the helper reports.
const maxPVLen = 99

// buildLine walks target back to root, reverses the path, and replays it
// from the root position to get both the UCI move list to send over the
// wire and the board the helper's own PV should be decoded from. Unlike
// the original's internally mirrored NN-facing board, common.Position
// already tracks the real side to move at every ply, so no separate
// "rotated" replay is needed here: PathFromRoot's moves are already in
// absolute board coordinates, which is exactly what the wire protocol and
// ParseUCIMove both expect.
func buildLine(rootPos common.Position, target Node) (uciMoves []string, targetPos common.Position) {
	var path = PathFromRoot(target)
	uciMoves = make([]string, len(path))
	var pos = rootPos
	for i, mv := range path {
		uciMoves[i] = mv.String()
		var next common.Position
		if !pos.MakeMove(mv, &next) {
			break
		}
		pos = next
	}
	return uciMoves, pos
}

// encodePV parses a helper's pv token list into the core's canonical
// white-perspective Move sequence, starting from startPos, per the PV
// encoder in SPEC_FULL.md §4.6: truncate at the helper's reported depth
// and at maxPVLen, and stop parsing at the first token that is not a
// legal move from the position reached so far.
func encodePV(startPos common.Position, info infoLine) []Move {
	if len(info.PV) == 0 {
		return nil
	}
	var limit = info.Depth
	if limit <= 0 || limit > maxPVLen {
		limit = maxPVLen
	}
	if len(info.PV) < limit {
		limit = len(info.PV)
	}
	var moves = make([]Move, 0, limit)
	var pos = startPos
	for i := 0; i < limit; i++ {
		mv, ok := ParseUCIMove(&pos, info.PV[i])
		if !ok {
			break
		}
		moves = append(moves, FromCommonMove(mv))
		var next common.Position
		if !pos.MakeMove(mv, &next) {
			break
		}
		pos = next
	}
	return moves
}

// tryPushPV runs the full PV-encoder gate for one info line: the
// depth/nodes gate, the minimum-length check, and the C1 dedup probe
// before pushing onto C3. requireDepth is true only for the intermediate
// info lines seen during root-infinite mode; the final PV at bestmove is
// always accepted regardless of depth or node count (mirroring the
// original, which passes require_some_depth=false only for that last
// line). Returns the node-support count if the PV was pushed, else 0.
func (e *Engine) tryPushPV(target Node, targetDepth int, startPos common.Position, info infoLine, requireDepth bool) int {
	if requireDepth && !(info.Nodes >= 1000 || info.Depth > 10) {
		return 0
	}
	var moves = encodePV(startPos, info)
	if len(moves) < minPVSize {
		return 0
	}
	var key = Key(moves)
	if e.cache.SeenOrInsert(key) {
		return 0
	}
	if !e.pvQueue.Push(PVRecord{Moves: moves, StartDepth: targetDepth, Support: info.Nodes}) {
		return 0
	}
	return info.Nodes
}

// runQuery is the query driver (C6): it frames a position+go command for
// slot i, drives target's analysis, streams the helper's output through
// the PV encoder, and records per-move statistics. infinite selects
// root-infinite mode (worker 0 only): every info line is offered to the
// encoder as it arrives, instead of only the final one before bestmove.
func (e *Engine) runQuery(i int, target Node, infinite bool) error {
	var log = e.log.With().Int("slot", i).Logger()
	var _, history = e.Root()
	var rootPos = *history.Last()
	var uciMoves, targetPos = buildLine(rootPos, target)
	var targetDepth = Depth(target)

	if e.stop.Load() {
		e.nodeQueue.mu.Lock()
		target.SetAuxState(AuxUnset)
		e.nodeQueue.mu.Unlock()
		return nil
	}

	if err := e.pool.Submit(i, positionCommand(rootPos.String(), uciMoves)); err != nil {
		return err
	}
	var goCmd string
	if infinite {
		goCmd = goInfiniteCommand
	} else {
		goCmd = goMovetimeCommand(e.cfg.TimeMs)
	}
	if err := e.pool.Submit(i, goCmd); err != nil {
		return err
	}

	var start = time.Now()
	var stopping = false
	var stoppedSent = false
	var haveInfo = false
	var lastInfo infoLine
	var nodesAdded = 0

	for {
		line, ok := e.pool.ReadLine(i)
		if !ok {
			break
		}

		if mv, corrupted, isBest := bestmoveLine(line); isBest {
			if corrupted {
				log.Warn().Str("line", line).Msg("bestmove info resync")
				if err := e.pool.RequestStop(i); err != nil {
					return err
				}
				continue
			}
			_ = mv
			break
		}

		if !stopping {
			stopping = e.stop.Load()
			if stopping && !stoppedSent {
				if err := e.pool.RequestStop(i); err != nil {
					return err
				}
				stoppedSent = true
			}
			if !stopping {
				var info = parseInfoLine(line)
				if info.ok {
					haveInfo = true
					lastInfo = info
					if infinite {
						nodesAdded += e.tryPushPV(target, targetDepth, targetPos, info, true)
					}
				}
			}
		} else if !stoppedSent {
			if err := e.pool.RequestStop(i); err != nil {
				return err
			}
			stoppedSent = true
		}
	}

	e.pool.SetStopped(i, true)
	var elapsed = time.Since(start)

	if stopping {
		e.nodeQueue.mu.Lock()
		target.SetAuxState(AuxDone)
		e.nodeQueue.mu.Unlock()
		e.pure.recordQuery(elapsed, nodesAdded)
		return nil
	}

	if !infinite {
		if haveInfo {
			nodesAdded += e.tryPushPV(target, targetDepth, targetPos, lastInfo, false)
		} else {
			time.Sleep(100 * time.Millisecond)
		}
	}

	e.pure.recordQuery(elapsed, nodesAdded)
	e.nodeQueue.mu.Lock()
	target.SetAuxState(AuxDone)
	e.nodeQueue.mu.Unlock()
	return nil
}
