package auxengine

import "github.com/ChizhovVadim/AuxEngine/common"

// GameResult (C7) is the R-mobility-aware outcome of a position history, a
// refinement of plain win/draw/loss used when the 50-move counter or a
// repetition forces a terminal score. Values pack into a small integer per
// SPEC_FULL.md §3: 1 is black checkmating, 2 is black stalemated, 3..20 are
// black's 18 R-mobility variants, 21 is a plain draw, 22 is white
// stalemated, 23 is reserved and never assigned, 24..41 mirror black's
// R-mobility variants shifted by 21. White checkmating has no slot in that
// packed range, so it takes 42, just past the highest R-mobility code.
type GameResult uint8

const (
	Undecided      GameResult = 0
	BlackWon       GameResult = 1
	BlackStalemate GameResult = 2
	Draw           GameResult = 21
	WhiteStalemate GameResult = 22
	WhiteWon       GameResult = 42
)

const rMobilityShift GameResult = 21

// rMobilityVariant packs a mobility goal (legal-move count k in 1..9,
// whether the side on move was in check, and whether white owns the goal)
// into its GameResult code. Black's 18 variants occupy 3..20 (G1.0 at 3,
// G1.5 at 4, ..., G9.5 at 20); white's mirror them at +21 (24..41).
func rMobilityVariant(k int, inCheck bool, whiteSide bool) GameResult {
	var code = GameResult(2*k + 1)
	if !inCheck {
		code++
	}
	if whiteSide {
		code += rMobilityShift
	}
	return code
}

// Negate swaps a result to the other side's point of view. Draws and
// stalemates are fixed points, matching the original's operator- which
// only ever swapped WHITE_WON/BLACK_WON and passed everything else through
// unchanged; SPEC_FULL.md §3 extends that same pairwise swap to the
// R-mobility range so the trainer can score either side's perspective.
func (r GameResult) Negate() GameResult {
	switch {
	case r == BlackWon:
		return WhiteWon
	case r == WhiteWon:
		return BlackWon
	case r >= 3 && r <= 20:
		return r + rMobilityShift
	case r >= 24 && r <= 41:
		return r - rMobilityShift
	default:
		return r
	}
}

// rMobilityGoal tracks the best (lowest-mobility) position found so far
// while walking backward through the 50-move window.
type rMobilityGoal struct {
	legalMoves int
	inCheck    bool
	whiteSide  bool
	found      bool
}

// classifyRMobility implements the backward walk of SPEC_FULL.md §4.7: from
// the last position, step back through up to rule50_ply half-moves,
// toggling side-to-move at each step, and keep the lowest-mobility goal
// seen (ties broken in favour of the older position, matching the
// unconditional <= overwrite the original performs). If no position ever
// has fewer than 10 legal moves, the result is a plain draw.
func classifyRMobility(h *common.PositionHistory) GameResult {
	var last = h.Last()
	var isBlackToMove = !last.WhiteMove
	var goal rMobilityGoal
	goal.legalMoves = 10

	for i := 0; i <= last.Rule50; i++ {
		var idx = h.Len() - 1 - i
		if idx < 0 {
			break
		}
		var pos = h.At(idx)
		var legal = common.GenerateLegalMoves(pos)
		if len(legal) < 10 && len(legal) <= goal.legalMoves {
			goal.legalMoves = len(legal)
			goal.inCheck = pos.IsCheck()
			// The goal belongs to the side not to move at pos.
			goal.whiteSide = isBlackToMove
			goal.found = true
		}
		isBlackToMove = !isBlackToMove
	}

	if !goal.found {
		return Draw
	}
	return rMobilityVariant(goal.legalMoves, goal.inCheck, goal.whiteSide)
}

// ClassifyResult is the C7 result classifier: the MCTS code path that needs
// a terminal result when the current position has no legal moves, the
// 50-move counter reaches 100, or repetitions reach 2, calls this on the
// history up to that position.
func ClassifyResult(h *common.PositionHistory) GameResult {
	var last = h.Last()
	var legal = common.GenerateLegalMoves(last)
	if len(legal) == 0 {
		if last.IsCheck() {
			if last.WhiteMove {
				return BlackWon
			}
			return WhiteWon
		}
		if last.WhiteMove {
			return WhiteStalemate
		}
		return BlackStalemate
	}
	if last.Rule50 >= 100 || h.Repetitions() >= 2 {
		return classifyRMobility(h)
	}
	return Undecided
}
