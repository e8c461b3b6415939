package tree

import (
	"fmt"
	"strings"

	"github.com/matzehuels/layoutc/pkg/solver"
)

// Pt returns a pointer to v, for optional lengths such as a stack's spacing
// or a frame's bounds.
func Pt(v float64) *float64 { return &v }

// Frame is a set of optional size constraints. A nil field is unconstrained
// and maps to an undefined solver dimension, never to zero.
type Frame struct {
	Width, MinWidth, MaxWidth    *float64
	Height, MinHeight, MaxHeight *float64
}

func dimension(v *float64) solver.Dimension {
	if v == nil {
		return solver.Undefined()
	}
	return solver.Points(*v)
}

// Size returns the width/height constraint.
func (f Frame) Size() solver.Size[solver.Dimension] {
	return solver.Size[solver.Dimension]{Width: dimension(f.Width), Height: dimension(f.Height)}
}

// MinSize returns the lower bounds.
func (f Frame) MinSize() solver.Size[solver.Dimension] {
	return solver.Size[solver.Dimension]{Width: dimension(f.MinWidth), Height: dimension(f.MinHeight)}
}

// MaxSize returns the upper bounds.
func (f Frame) MaxSize() solver.Size[solver.Dimension] {
	return solver.Size[solver.Dimension]{Width: dimension(f.MaxWidth), Height: dimension(f.MaxHeight)}
}

// String lists the set constraints, e.g. "(w=50 h=100)".
func (f Frame) String() string {
	var parts []string
	for _, field := range []struct {
		name string
		v    *float64
	}{
		{"w", f.Width}, {"minw", f.MinWidth}, {"maxw", f.MaxWidth},
		{"h", f.Height}, {"minh", f.MinHeight}, {"maxh", f.MaxHeight},
	} {
		if field.v != nil {
			parts = append(parts, fmt.Sprintf("%s=%g", field.name, *field.v))
		}
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// FrameWrapper is a structural decorator that constrains the size of exactly
// one child without changing the shape of the tree.
type FrameWrapper struct {
	element
	Frame   Frame
	content Content
}

// NewFrame wraps content in an unconstrained frame.
func NewFrame(content Content) *FrameWrapper {
	return &FrameWrapper{element: newElement(Structural), content: content}
}

// DefaultFrame wraps c in an unconstrained frame.
func DefaultFrame(c Content) *FrameWrapper {
	return NewFrame(c)
}

// OptionalFrame wraps c in a frame whose width and height are each either
// nil (unconstrained) or exact.
func OptionalFrame(c Content, width, height *float64) *FrameWrapper {
	return NewFrame(c).Option(width, height)
}

// AbsoluteFrame wraps c in a frame of exactly width x height.
func AbsoluteFrame(c Content, width, height float64) *FrameWrapper {
	return NewFrame(c).Absolute(width, height)
}

// Content returns the wrapped child.
func (w *FrameWrapper) Content() Content { return w.content }

// Width sets an exact width.
func (w *FrameWrapper) Width(v float64) *FrameWrapper {
	w.Frame.Width = Pt(v)
	return w
}

// Height sets an exact height.
func (w *FrameWrapper) Height(v float64) *FrameWrapper {
	w.Frame.Height = Pt(v)
	return w
}

// MinWidth sets a lower width bound.
func (w *FrameWrapper) MinWidth(v float64) *FrameWrapper {
	w.Frame.MinWidth = Pt(v)
	return w
}

// MaxWidth sets an upper width bound.
func (w *FrameWrapper) MaxWidth(v float64) *FrameWrapper {
	w.Frame.MaxWidth = Pt(v)
	return w
}

// MinHeight sets a lower height bound.
func (w *FrameWrapper) MinHeight(v float64) *FrameWrapper {
	w.Frame.MinHeight = Pt(v)
	return w
}

// MaxHeight sets an upper height bound.
func (w *FrameWrapper) MaxHeight(v float64) *FrameWrapper {
	w.Frame.MaxHeight = Pt(v)
	return w
}

// Absolute replaces all constraints with an exact width and height.
func (w *FrameWrapper) Absolute(width, height float64) *FrameWrapper {
	w.Frame = Frame{Width: Pt(width), Height: Pt(height)}
	return w
}

// Option replaces all constraints with the given optional width and height.
func (w *FrameWrapper) Option(width, height *float64) *FrameWrapper {
	w.Frame = Frame{Width: width, Height: height}
	return w
}

// Submit submits the child, tolerating its failure the way View does, then
// creates a node carrying the frame's constraints.
func (w *FrameWrapper) Submit(p *Pass) (solver.NodeID, error) {
	children, err := p.SubmitChildren(w, w.Children())
	if err != nil {
		return 0, err
	}

	style := solver.DefaultStyle()
	style.Size = w.Frame.Size()
	style.MinSize = w.Frame.MinSize()
	style.MaxSize = w.Frame.MaxSize()
	return p.NewNode(w.Identity(), style, children)
}

// Children returns the wrapped child.
func (w *FrameWrapper) Children() []Content {
	if w.content == nil {
		return nil
	}
	return []Content{w.content}
}
