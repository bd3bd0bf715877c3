package auxengine

import "github.com/ChizhovVadim/AuxEngine/common"

// fakeNode is a minimal in-memory Node used by every test in this package
// to build small trees without depending on a real MCTS implementation,
// which SPEC_FULL.md §3 declares out of scope.
type fakeNode struct {
	parent   *fakeNode
	move     common.Move
	children []*fakeNode
	state    AuxState
}

func newFakeRoot() *fakeNode {
	return &fakeNode{}
}

func (n *fakeNode) child(move common.Move) *fakeNode {
	var c = &fakeNode{parent: n, move: move}
	n.children = append(n.children, c)
	return c
}

func (n *fakeNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *fakeNode) Move() common.Move          { return n.move }
func (n *fakeNode) NumChildren() int           { return len(n.children) }
func (n *fakeNode) AuxState() AuxState         { return n.state }
func (n *fakeNode) SetAuxState(s AuxState)     { n.state = s }
