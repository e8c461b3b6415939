package tree

import "github.com/matzehuels/layoutc/pkg/solver"

// Kind distinguishes layout-only nodes from nodes with visual content.
type Kind uint8

const (
	// Structural nodes only shape the layout.
	Structural Kind = iota
	// Renderable nodes contribute a rectangle to the result.
	Renderable
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	if k == Renderable {
		return "renderable"
	}
	return "structural"
}

// NodeType is the identity of a tree element: its kind plus the solver node
// id assigned by the most recent successful submission.
type NodeType struct {
	kind Kind
	id   solver.NodeID
	set  bool
}

// NewNodeType returns an unassigned identity of the given kind, for Content
// implementations outside this package.
func NewNodeType(kind Kind) NodeType {
	return NodeType{kind: kind}
}

// Kind returns the node kind.
func (n *NodeType) Kind() Kind { return n.kind }

// IsRenderable reports whether the node produces a rectangle.
func (n *NodeType) IsRenderable() bool { return n.kind == Renderable }

// NodeID returns the solver id stored by the last submission, if any.
func (n *NodeType) NodeID() (solver.NodeID, bool) {
	return n.id, n.set
}

func (n *NodeType) assign(id solver.NodeID) {
	n.id = id
	n.set = true
}

func (n *NodeType) clear() {
	n.id = 0
	n.set = false
}
