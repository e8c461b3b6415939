package flex

import (
	"github.com/matzehuels/layoutc/pkg/errors"
	"github.com/matzehuels/layoutc/pkg/solver"
)

// node is the arena record for a single solver node.
type node struct {
	style    solver.Style
	children []solver.NodeID
	parent   solver.NodeID // 0 when detached
	layout   solver.Layout
	solved   bool
}

// Engine is an arena of styled nodes plus the flex algorithm that resolves
// them. The zero value is ready to use. An Engine is not safe for
// concurrent use.
type Engine struct {
	nodes []node

	// per-ComputeLayout memo of hypothetical sizes, indexed like nodes
	measured  []solver.Size[float64]
	measureOK []bool
}

// New returns an empty Engine.
func New() *Engine {
	return &Engine{}
}

// Ensure Engine implements solver.Solver.
var _ solver.Solver = (*Engine)(nil)

// NewNode creates a node with the given style and attaches children to it.
// Every child must exist, must not already have a parent, and may appear
// only once.
func (e *Engine) NewNode(style solver.Style, children []solver.NodeID) (solver.NodeID, error) {
	seen := make(map[solver.NodeID]struct{}, len(children))
	for _, c := range children {
		n, err := e.lookup(c)
		if err != nil {
			return 0, err
		}
		if n.parent != 0 {
			return 0, errors.New(errors.ErrCodeInvalidTree, "node %d already attached to node %d", c, n.parent)
		}
		if _, dup := seen[c]; dup {
			return 0, errors.New(errors.ErrCodeInvalidTree, "node %d listed twice", c)
		}
		seen[c] = struct{}{}
	}

	id := solver.NodeID(len(e.nodes) + 1)
	e.nodes = append(e.nodes, node{
		style:    style,
		children: append([]solver.NodeID(nil), children...),
	})
	for _, c := range children {
		e.nodes[c-1].parent = id
	}
	return id, nil
}

// ComputeLayout resolves the subtree rooted at root. The root is placed at
// the origin.
func (e *Engine) ComputeLayout(root solver.NodeID, available solver.Size[solver.Number]) error {
	n, err := e.lookup(root)
	if err != nil {
		return err
	}

	e.measured = make([]solver.Size[float64], len(e.nodes))
	e.measureOK = make([]bool, len(e.nodes))
	defer func() {
		e.measured, e.measureOK = nil, nil
	}()

	content := e.measure(root)
	width := rootAxis(n.style.Size.Width, available.Width, content.Width)
	height := rootAxis(n.style.Size.Height, available.Height, content.Height)
	width = clampAxis(width, n.style.MinSize.Width, n.style.MaxSize.Width)
	height = clampAxis(height, n.style.MinSize.Height, n.style.MaxSize.Height)

	n.layout = solver.Layout{Size: solver.Size[float64]{Width: width, Height: height}}
	n.solved = true
	e.place(root, width, height)
	return nil
}

// Layout returns the solved box of id, relative to its parent.
func (e *Engine) Layout(id solver.NodeID) (solver.Layout, error) {
	n, err := e.lookup(id)
	if err != nil {
		return solver.Layout{}, err
	}
	if !n.solved {
		return solver.Layout{}, errors.New(errors.ErrCodeNotComputed, "node %d has not been laid out", id)
	}
	return n.layout, nil
}

// Children returns the children attached to id.
func (e *Engine) Children(id solver.NodeID) ([]solver.NodeID, error) {
	n, err := e.lookup(id)
	if err != nil {
		return nil, err
	}
	return append([]solver.NodeID(nil), n.children...), nil
}

// Style returns the style id was created with.
func (e *Engine) Style(id solver.NodeID) (solver.Style, error) {
	n, err := e.lookup(id)
	if err != nil {
		return solver.Style{}, err
	}
	return n.style, nil
}

// Len returns the number of nodes in the arena.
func (e *Engine) Len() int {
	return len(e.nodes)
}

// Reset drops every node. Previously issued ids become invalid.
func (e *Engine) Reset() {
	e.nodes = e.nodes[:0]
}

func (e *Engine) lookup(id solver.NodeID) (*node, error) {
	if id == 0 || int(id) > len(e.nodes) {
		return nil, errors.New(errors.ErrCodeInvalidNode, "node %d not found", id)
	}
	return &e.nodes[id-1], nil
}

// rootAxis sizes one root axis: explicit points win, otherwise the content
// size capped at the available space when that is defined.
func rootAxis(dim solver.Dimension, available solver.Number, content float64) float64 {
	if v, ok := dim.Value(); ok {
		return v
	}
	if avail, ok := available.Value(); ok && content > avail {
		return avail
	}
	return content
}

// clampAxis restricts v to the defined min/max bounds. If min > max, min wins
// (matches CSS behavior). The result is never negative.
func clampAxis(v float64, minDim, maxDim solver.Dimension) float64 {
	if hi, ok := maxDim.Value(); ok && v > hi {
		v = hi
	}
	if lo, ok := minDim.Value(); ok && v < lo {
		v = lo
	}
	return max(v, 0)
}
