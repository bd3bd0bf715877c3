package auxengine

import (
	"strconv"
	"strings"

	"github.com/ChizhovVadim/AuxEngine/common"
)

// Move is the core's own 16-bit move encoding, distinct from common.Move
// (which carries moving/captured piece for legality and is the board
// package's native representation). A Move carries only what a PV record
// needs: origin, destination, promotion piece, and whether it is stored in
// its rotated (side-to-move) orientation rather than its canonical
// white-perspective one.
type Move uint16

const (
	moveFromShift = 0
	moveToShift   = 6
	movePromoShift = 12
	moveFlipBit   = 15

	moveSquareMask = 0x3F
	movePromoMask  = 0x7
)

// Promotion piece codes carried inside a Move, independent of common's
// piece numbering.
const (
	PromoNone Move = 0
	PromoKnight Move = 1
	PromoBishop Move = 2
	PromoRook   Move = 3
	PromoQueen  Move = 4
)

// NewMove builds a canonical (unflipped) Move from absolute board squares.
func NewMove(from, to int, promotion Move) Move {
	return Move(from&moveSquareMask) |
		Move(to&moveSquareMask)<<moveToShift |
		(promotion&movePromoMask)<<movePromoShift
}

func (m Move) From() int {
	return int(m>>moveFromShift) & moveSquareMask
}

func (m Move) To() int {
	return int(m>>moveToShift) & moveSquareMask
}

func (m Move) Promotion() Move {
	return (m >> movePromoShift) & movePromoMask
}

func (m Move) Flipped() bool {
	return m&(1<<moveFlipBit) != 0
}

// Rotate flips the move into the side-to-move's own orientation, mirroring
// both squares and toggling the flip bit.
func (m Move) Rotate() Move {
	var from = common.FlipSquare(m.From())
	var to = common.FlipSquare(m.To())
	var flip = m & (1 << moveFlipBit)
	return NewMove(from, to, m.Promotion()) ^ flip ^ (1 << moveFlipBit)
}

// Canonical returns the move's white-perspective form, undoing Rotate if
// the flip bit is set.
func (m Move) Canonical() Move {
	if !m.Flipped() {
		return m
	}
	return m.Rotate()
}

func promotionFromCommon(cm common.Move) Move {
	switch cm.Promotion() {
	case common.Knight:
		return PromoKnight
	case common.Bishop:
		return PromoBishop
	case common.Rook:
		return PromoRook
	case common.Queen:
		return PromoQueen
	default:
		return PromoNone
	}
}

func promotionToCommonPiece(p Move) int {
	switch p {
	case PromoKnight:
		return common.Knight
	case PromoBishop:
		return common.Bishop
	case PromoRook:
		return common.Rook
	case PromoQueen:
		return common.Queen
	default:
		return common.Empty
	}
}

// FromCommonMove converts the board package's native move into the core's
// canonical white-perspective encoding.
func FromCommonMove(cm common.Move) Move {
	return NewMove(cm.From(), cm.To(), promotionFromCommon(cm))
}

// String renders the move in UCI long-algebraic form (e2e4, a7a8q), always
// from its canonical (unflipped) squares, matching what the wire protocol
// expects.
func (m Move) String() string {
	var c = m.Canonical()
	var s = common.SquareName(c.From()) + common.SquareName(c.To())
	if c.Promotion() != PromoNone {
		s += strings.ToLower(string("nbrq"[c.Promotion()-PromoKnight]))
	}
	return s
}

// ParseUCIMove finds the legal move on pos matching the UCI long-algebraic
// token s, returning ok=false if none matches. Promotion is read from the
// matched common.Move so piece-letter case in s is not load-bearing.
func ParseUCIMove(pos *common.Position, s string) (common.Move, bool) {
	var buffer [common.MaxMoves]common.Move
	var child common.Position
	for _, mv := range common.GenerateMoves(buffer[:], pos) {
		if strings.EqualFold(mv.String(), s) && pos.MakeMove(mv, &child) {
			return mv, true
		}
	}
	return common.MoveEmpty, false
}

// EncodePV converts a sequence of legal moves, applied successively from
// root, into the core's canonical Move sequence.
func EncodePV(root common.Position, moves []common.Move) []Move {
	var result = make([]Move, 0, len(moves))
	var pos = root
	for _, mv := range moves {
		result = append(result, FromCommonMove(mv))
		var next common.Position
		if !pos.MakeMove(mv, &next) {
			break
		}
		pos = next
	}
	return result
}

// Key renders a PV as the comma-separated integer string used by the PV
// cache (C1) to detect duplicates.
func Key(pv []Move) string {
	var b strings.Builder
	for i, m := range pv {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(m.Canonical())))
	}
	return b.String()
}
