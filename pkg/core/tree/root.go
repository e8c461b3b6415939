package tree

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/layoutc/pkg/errors"
	"github.com/matzehuels/layoutc/pkg/solver"
)

// Placement is the absolute rectangle of one renderable element.
type Placement struct {
	Content Content
	Layout  solver.Layout
}

// Result is the outcome of one layout pass.
type Result struct {
	// Placements holds one entry per renderable element that reached the
	// solved tree, in pre-order.
	Placements []Placement
	// Omitted lists the children dropped during submission.
	Omitted []Omission
}

// Layouts returns the absolute rectangles in placement order.
func (r *Result) Layouts() []solver.Layout {
	out := make([]solver.Layout, len(r.Placements))
	for i, p := range r.Placements {
		out[i] = p.Layout
	}
	return out
}

// RootView owns a tree and drives layout passes over it.
//
// On construction it flattens the tree into an arena: elements in pre-order
// with the arena index of each element's parent (-1 for the root). The
// coordinate walk reads parents from the arena, so it never consumes the
// elements' own back-references.
type RootView struct {
	root    Content
	nodes   []Content
	parents []int
	err     error

	cfg    config
	logger *log.Logger
}

// NewRoot wraps root and wires every parent back-reference.
func NewRoot(root Content, opts ...Option) *RootView {
	cfg := newConfig(opts)
	r := &RootView{root: root, cfg: cfg, logger: cfg.logger}
	r.init()
	return r
}

// init rebuilds the arena and sets each child's parent to the element that
// holds it. Calling it again yields the same wiring.
func (r *RootView) init() {
	r.nodes = r.nodes[:0]
	r.parents = r.parents[:0]
	r.err = nil
	if r.root == nil {
		r.err = errors.New(errors.ErrCodeInvalidTree, "root view has no content")
		return
	}

	type frame struct {
		c      Content
		parent int
	}
	seen := make(map[Content]struct{})
	work := []frame{{c: r.root, parent: -1}}
	r.root.SetParent(nil)
	for len(work) > 0 {
		f := work[len(work)-1]
		work = work[:len(work)-1]

		if _, dup := seen[f.c]; dup {
			r.err = errors.New(errors.ErrCodeInvalidTree, "%s appears more than once in the tree", Describe(f.c))
			return
		}
		seen[f.c] = struct{}{}

		idx := len(r.nodes)
		r.nodes = append(r.nodes, f.c)
		r.parents = append(r.parents, f.parent)

		children := f.c.Children()
		for _, child := range children {
			child.SetParent(f.c)
		}
		for i := len(children) - 1; i >= 0; i-- {
			work = append(work, frame{c: children[i], parent: idx})
		}
	}
}

// Root returns the root content.
func (r *RootView) Root() Content { return r.root }

// Len returns the number of elements in the tree.
func (r *RootView) Len() int { return len(r.nodes) }

// Err returns the wiring error found at construction, if any.
func (r *RootView) Err() error { return r.err }

// Elements returns the elements in pre-order.
func (r *RootView) Elements() []Content {
	return append([]Content(nil), r.nodes...)
}

// ParentIndex returns the arena index of the i-th element's parent, or -1
// for the root.
func (r *RootView) ParentIndex(i int) int { return r.parents[i] }

// ComputeLayout runs a pass and returns the absolute rectangle of every
// placed renderable element in pre-order.
func (r *RootView) ComputeLayout(s solver.Solver, available solver.Size[solver.Number]) ([]solver.Layout, error) {
	res, err := r.Compute(s, available)
	if err != nil {
		return nil, err
	}
	return res.Layouts(), nil
}

// Compute submits the tree to s, solves it against available and resolves
// absolute rectangles. A submission or solver failure fails the whole pass.
func (r *RootView) Compute(s solver.Solver, available solver.Size[solver.Number]) (*Result, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.nodes {
		c.Identity().clear()
	}

	pass := newPass(s, r.cfg)
	id, err := r.root.Submit(pass)
	if err != nil {
		return nil, fmt.Errorf("submit %s: %w", Describe(r.root), err)
	}
	if err := s.ComputeLayout(id, available); err != nil {
		return nil, fmt.Errorf("compute layout: %w", err)
	}

	res := &Result{Omitted: pass.Omitted()}
	locals := make([]*solver.Layout, len(r.nodes))
	local := func(i int) (solver.Layout, error) {
		if l := locals[i]; l != nil {
			return *l, nil
		}
		nid, _ := r.nodes[i].Identity().NodeID()
		l, err := s.Layout(nid)
		if err != nil {
			return solver.Layout{}, err
		}
		locals[i] = &l
		return l, nil
	}

	for i, c := range r.nodes {
		if !c.Identity().IsRenderable() || !r.attached(i) {
			continue
		}
		l, err := local(i)
		if err != nil {
			return nil, fmt.Errorf("layout of %s: %w", Describe(c), err)
		}

		// the root is the origin; its own offset is not added
		for p := r.parents[i]; p > 0; p = r.parents[p] {
			pl, err := local(p)
			if err != nil {
				return nil, fmt.Errorf("layout of %s: %w", Describe(r.nodes[p]), err)
			}
			l.Location = l.Location.Add(pl.Location)
		}
		res.Placements = append(res.Placements, Placement{Content: c, Layout: l})
	}

	r.logger.Debug("layout resolved",
		"elements", len(r.nodes),
		"placements", len(res.Placements),
		"omitted", len(res.Omitted))
	return res, nil
}

// attached reports whether the i-th element and all its ancestors hold a
// solver node from the current pass, which means the element is part of the
// solved tree.
func (r *RootView) attached(i int) bool {
	for ; i >= 0; i = r.parents[i] {
		if _, ok := r.nodes[i].Identity().NodeID(); !ok {
			return false
		}
	}
	return true
}
