package tree

import (
	"github.com/matzehuels/layoutc/pkg/errors"
	"github.com/matzehuels/layoutc/pkg/solver"
)

// stack is the state shared by VStack and HStack.
type stack struct {
	element
	Alignment MainAxisAlignment
	Cross     CrossAxisAlignment
	Spacing   *float64
	children  []Content
}

func newStack(main MainAxisAlignment, cross CrossAxisAlignment, spacing *float64, children []Content) stack {
	return stack{
		element:   newElement(Structural),
		Alignment: main,
		Cross:     cross,
		Spacing:   spacing,
		children:  compact(children),
	}
}

// Children returns the stacked children in declaration order.
func (s *stack) Children() []Content { return s.children }

// Validate reports a fixed spacing combined with a distributive alignment.
// Submit panics on the same condition.
func (s *stack) Validate() error {
	if s.Alignment.IsDistributive() && s.Spacing != nil {
		return errors.New(errors.ErrCodeInvalidTree,
			"%s alignment distributes spacing itself and cannot be combined with spacing %g",
			s.Alignment, *s.Spacing)
	}
	return nil
}

// submit builds the stack node. self is the outer VStack or HStack, used as
// the parent of omitted children and of spacing fillers.
func (s *stack) submit(p *Pass, self Content, direction solver.FlexDirection) (solver.NodeID, error) {
	if err := s.Validate(); err != nil {
		panic(err)
	}

	var ids []solver.NodeID
	if s.Spacing == nil || s.Alignment.IsDistributive() {
		var err error
		if ids, err = p.SubmitChildren(self, s.children); err != nil {
			return 0, err
		}
	} else {
		// A filler follows every submitted child except the last declared
		// one, so a failed last child leaves a trailing filler.
		ids = make([]solver.NodeID, 0, 2*len(s.children))
		last := len(s.children) - 1
		for i, c := range s.children {
			id, ok, err := p.submitChild(self, c)
			if err != nil {
				return 0, err
			}
			if !ok {
				continue
			}
			ids = append(ids, id)
			if i == last {
				continue
			}

			filler := spacer(direction, *s.Spacing)
			fid, ok, err := p.submitChild(self, filler)
			if err != nil {
				return 0, err
			}
			if ok {
				ids = append(ids, fid)
			}
		}
	}

	style := solver.DefaultStyle()
	style.FlexDirection = direction
	style.JustifyContent = s.Alignment.justify()
	style.AlignItems = s.Cross.alignItems()
	style.AlignContent = s.Cross.alignContent()
	return p.NewNode(s.Identity(), style, ids)
}

// spacer returns a filler that is v long on the main axis and zero on the
// cross axis.
func spacer(direction solver.FlexDirection, v float64) *SizedBox {
	if direction == solver.Column {
		return NewSizedBox(0, v)
	}
	return NewSizedBox(v, 0)
}

// VStack lays its children out top to bottom.
type VStack struct {
	stack
}

// NewVStack returns a vertical stack. spacing may be nil for no fixed gap.
// Nil children are dropped.
func NewVStack(main MainAxisAlignment, cross CrossAxisAlignment, spacing *float64, children ...Content) *VStack {
	return &VStack{stack: newStack(main, cross, spacing, children)}
}

// Submit submits the children, with spacing fillers between them when a
// fixed spacing is set, and creates a column node. It panics when a fixed
// spacing is combined with a distributive alignment.
func (s *VStack) Submit(p *Pass) (solver.NodeID, error) {
	return s.submit(p, s, solver.Column)
}

// HStack lays its children out left to right.
type HStack struct {
	stack
}

// NewHStack returns a horizontal stack. spacing may be nil for no fixed gap.
// Nil children are dropped.
func NewHStack(main MainAxisAlignment, cross CrossAxisAlignment, spacing *float64, children ...Content) *HStack {
	return &HStack{stack: newStack(main, cross, spacing, children)}
}

// Submit is the row counterpart of VStack.Submit.
func (s *HStack) Submit(p *Pass) (solver.NodeID, error) {
	return s.submit(p, s, solver.Row)
}
