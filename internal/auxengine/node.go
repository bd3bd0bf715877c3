package auxengine

import "github.com/ChizhovVadim/AuxEngine/common"

// AuxState is the per-node tag the core writes while a node is queued for
// helper analysis. It is always mutated under the node-queue lock.
type AuxState uint16

const (
	AuxUnset   AuxState = 0
	AuxPending AuxState = 0xFFFE
	AuxDone    AuxState = 0xFFFF
)

// Node is the narrow external contract the core needs from the MCTS tree.
// The tree itself, its edges, priors, and backups are out of scope; this
// interface is the only way the core touches a node.
type Node interface {
	Parent() Node
	Move() common.Move
	NumChildren() int
	AuxState() AuxState
	SetAuxState(AuxState)
}

// Depth walks parent pointers and counts the distance to the root (the
// node whose Parent is nil).
func Depth(n Node) int {
	var d = 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}

// PathFromRoot walks from n to the root and returns the moves in root-to-n
// order (reversed from the walk, which runs leaf-to-root).
func PathFromRoot(n Node) []common.Move {
	var moves []common.Move
	for cur := n; cur.Parent() != nil; cur = cur.Parent() {
		moves = append(moves, cur.Move())
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}

// IsAncestor reports whether a is an ancestor of (or equal to) b.
func IsAncestor(a, b Node) bool {
	for cur := b; cur != nil; cur = cur.Parent() {
		if cur == a {
			return true
		}
	}
	return false
}
