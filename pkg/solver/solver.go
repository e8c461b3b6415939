package solver

// NodeID identifies a node inside one Solver instance. IDs are only
// meaningful to the solver that issued them.
type NodeID uint64

// Solver performs flexbox-style constraint resolution over a tree of
// styled nodes.
//
// Nodes are created leaves first: NewNode attaches the given children to the
// new node, and a child may be attached to at most one parent. Every method
// reports malformed references with an error instead of panicking.
type Solver interface {
	// NewNode creates a node with the given style and children.
	NewNode(style Style, children []NodeID) (NodeID, error)

	// ComputeLayout resolves the tree rooted at root against the available
	// size. Undefined axes are sized intrinsically.
	ComputeLayout(root NodeID, available Size[Number]) error

	// Layout returns the solved box of a node, relative to its parent.
	Layout(id NodeID) (Layout, error)
}
