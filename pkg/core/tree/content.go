package tree

import (
	"fmt"

	"github.com/matzehuels/layoutc/pkg/solver"
)

// Content is implemented by every element of a layout tree.
//
// Implementations outside this package hold a NodeType from NewNodeType,
// submit children through Pass.SubmitChildren and finish Submit with
// Pass.NewNode, which records the identity the coordinate walk reads.
type Content interface {
	// Identity returns the element's node identity. The pointer is stable
	// for the lifetime of the element.
	Identity() *NodeType

	// Submit creates the element's solver node, submitting children first,
	// and records the id in the identity slot.
	Submit(p *Pass) (solver.NodeID, error)

	// Children returns the owned children in declaration order.
	Children() []Content

	// Parent returns the parent back-reference without clearing it.
	Parent() Content

	// TakeParent returns the parent back-reference and clears it.
	TakeParent() Content

	// SetParent replaces the parent back-reference.
	SetParent(parent Content)
}

// element holds the state every Content implementation shares. The parent
// field is a back-reference used only for upward traversal; children are
// owned through the parent's own fields.
type element struct {
	identity NodeType
	parent   Content
}

func newElement(kind Kind) element {
	return element{identity: NewNodeType(kind)}
}

func (e *element) Identity() *NodeType { return &e.identity }

func (e *element) Parent() Content { return e.parent }

func (e *element) TakeParent() Content {
	p := e.parent
	e.parent = nil
	return p
}

func (e *element) SetParent(parent Content) { e.parent = parent }

// Describe returns a short human-readable name for c, used in logs, errors
// and diagrams.
func Describe(c Content) string {
	switch v := c.(type) {
	case nil:
		return "<nil>"
	case *View:
		if v.Label != "" {
			return fmt.Sprintf("View(%s)", v.Label)
		}
		return "View"
	case *VStack:
		return fmt.Sprintf("VStack(%s, %s)", v.Alignment, v.Cross)
	case *HStack:
		return fmt.Sprintf("HStack(%s, %s)", v.Alignment, v.Cross)
	case *FrameWrapper:
		return "Frame" + v.Frame.String()
	case *SizedBox:
		return fmt.Sprintf("SizedBox(%gx%g)", v.Width, v.Height)
	default:
		return fmt.Sprintf("%T", c)
	}
}

// compact drops nil entries so constructors never store nil children.
func compact(items []Content) []Content {
	out := make([]Content, 0, len(items))
	for _, c := range items {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}
