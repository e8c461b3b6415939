package tree

import "github.com/matzehuels/layoutc/pkg/solver"

// SizedBox is a structural leaf with a fixed width and height. Stacks also
// use it as the filler that realizes a fixed spacing.
type SizedBox struct {
	element
	Width, Height float64
}

// NewSizedBox returns a box of exactly width x height points.
func NewSizedBox(width, height float64) *SizedBox {
	return &SizedBox{element: newElement(Structural), Width: width, Height: height}
}

// Submit creates a childless solver node of exact size.
func (b *SizedBox) Submit(p *Pass) (solver.NodeID, error) {
	style := solver.DefaultStyle()
	style.Size = solver.Size[solver.Dimension]{
		Width:  solver.Points(b.Width),
		Height: solver.Points(b.Height),
	}
	return p.NewNode(b.Identity(), style, nil)
}

// Children returns nil; a SizedBox never has children.
func (b *SizedBox) Children() []Content { return nil }
