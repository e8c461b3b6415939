package tree

import "github.com/matzehuels/layoutc/pkg/solver"

// View is a renderable element. It wraps at most one child and grows to fill
// the space its parent gives it.
type View struct {
	element
	Label      string
	Background Color
	child      Content
}

// NewView returns a white View wrapping child. child may be nil.
func NewView(child Content) *View {
	return &View{element: newElement(Renderable), Background: White, child: child}
}

// WithLabel sets the label reported in results and diagrams.
func (v *View) WithLabel(label string) *View {
	v.Label = label
	return v
}

// WithBackground sets the background color.
func (v *View) WithBackground(c Color) *View {
	v.Background = c
	return v
}

// Child returns the wrapped child, or nil.
func (v *View) Child() Content { return v.child }

// Submit submits the child, if any, then creates a growing solver node. A
// child that fails to submit leaves the view childless.
func (v *View) Submit(p *Pass) (solver.NodeID, error) {
	children, err := p.SubmitChildren(v, v.Children())
	if err != nil {
		return 0, err
	}

	style := solver.DefaultStyle()
	style.FlexGrow = 1
	return p.NewNode(v.Identity(), style, children)
}

// Children returns the wrapped child as a one-element slice, or nil.
func (v *View) Children() []Content {
	if v.child == nil {
		return nil
	}
	return []Content{v.child}
}
