package tree

import (
	"github.com/matzehuels/layoutc/pkg/errors"
	"github.com/matzehuels/layoutc/pkg/solver"
	"github.com/matzehuels/layoutc/pkg/solver/flex"
)

// newNodeCall is one recorded Solver.NewNode invocation.
type newNodeCall struct {
	style    solver.Style
	children []solver.NodeID
	id       solver.NodeID
}

// recorder wraps the flex engine and records every NewNode call.
type recorder struct {
	*flex.Engine
	calls []newNodeCall
}

func newRecorder() *recorder {
	return &recorder{Engine: flex.New()}
}

func (r *recorder) NewNode(style solver.Style, children []solver.NodeID) (solver.NodeID, error) {
	id, err := r.Engine.NewNode(style, children)
	if err == nil {
		r.calls = append(r.calls, newNodeCall{style: style, children: children, id: id})
	}
	return id, err
}

func (r *recorder) last() newNodeCall {
	return r.calls[len(r.calls)-1]
}

func (r *recorder) call(id solver.NodeID) (newNodeCall, bool) {
	for _, c := range r.calls {
		if c.id == id {
			return c, true
		}
	}
	return newNodeCall{}, false
}

// gate is a container whose submission can be switched to fail, either
// before or after its child has been submitted.
type gate struct {
	element
	child     Content
	fail      bool
	failLate  bool
	submitted int
}

func newGate(child Content) *gate {
	return &gate{element: newElement(Structural), child: child}
}

func (g *gate) Submit(p *Pass) (solver.NodeID, error) {
	g.submitted++
	if g.fail {
		return 0, errors.New(errors.ErrCodeSolver, "gate closed")
	}
	children, err := p.SubmitChildren(g, g.Children())
	if err != nil {
		return 0, err
	}
	if g.failLate {
		return 0, errors.New(errors.ErrCodeSolver, "gate closed late")
	}
	return p.NewNode(g.Identity(), solver.DefaultStyle(), children)
}

func (g *gate) Children() []Content {
	if g.child == nil {
		return nil
	}
	return []Content{g.child}
}

func broken() *gate {
	g := newGate(nil)
	g.fail = true
	return g
}

func viewport(w, h float64) solver.Size[solver.Number] {
	return solver.Viewport(Pt(w), Pt(h))
}

func rect(x, y, w, h float64) solver.Layout {
	return solver.Layout{
		Location: solver.Point{X: x, Y: y},
		Size:     solver.Size[float64]{Width: w, Height: h},
	}
}
