package tree

import (
	"strings"

	"github.com/matzehuels/layoutc/pkg/errors"
	"github.com/matzehuels/layoutc/pkg/solver"
)

// MainAxisAlignment positions a stack's children along its main axis.
type MainAxisAlignment uint8

const (
	MainLeading MainAxisAlignment = iota
	MainCenter
	MainTrailing
	MainBetween
	MainAround
	MainEvenly
)

var mainNames = [...]string{"leading", "center", "trailing", "between", "around", "evenly"}

func (a MainAxisAlignment) String() string {
	if int(a) < len(mainNames) {
		return mainNames[a]
	}
	return "unknown"
}

// IsDistributive reports whether the solver computes the spacing between
// children for this alignment.
func (a MainAxisAlignment) IsDistributive() bool {
	return a == MainBetween || a == MainAround || a == MainEvenly
}

func (a MainAxisAlignment) justify() solver.JustifyContent {
	switch a {
	case MainCenter:
		return solver.JustifyCenter
	case MainTrailing:
		return solver.JustifyFlexEnd
	case MainBetween:
		return solver.JustifySpaceBetween
	case MainAround:
		return solver.JustifySpaceAround
	case MainEvenly:
		return solver.JustifySpaceEvenly
	default:
		return solver.JustifyFlexStart
	}
}

// CrossAxisAlignment positions a stack's children across its main axis.
type CrossAxisAlignment uint8

const (
	CrossLeading CrossAxisAlignment = iota
	CrossCenter
	CrossTrailing
	CrossStretch
	CrossBetween
	CrossAround
)

var crossNames = [...]string{"leading", "center", "trailing", "stretch", "between", "around"}

func (a CrossAxisAlignment) String() string {
	if int(a) < len(crossNames) {
		return crossNames[a]
	}
	return "unknown"
}

func (a CrossAxisAlignment) alignContent() solver.AlignContent {
	switch a {
	case CrossLeading:
		return solver.AlignContentFlexStart
	case CrossCenter:
		return solver.AlignContentCenter
	case CrossTrailing:
		return solver.AlignContentFlexEnd
	case CrossBetween:
		return solver.AlignContentSpaceBetween
	case CrossAround:
		return solver.AlignContentSpaceAround
	default:
		return solver.AlignContentStretch
	}
}

// alignItems positions single-line children. Between and Around have no
// per-item meaning and fall back to stretch.
func (a CrossAxisAlignment) alignItems() solver.AlignItems {
	switch a {
	case CrossLeading:
		return solver.AlignItemsFlexStart
	case CrossCenter:
		return solver.AlignItemsCenter
	case CrossTrailing:
		return solver.AlignItemsFlexEnd
	default:
		return solver.AlignItemsStretch
	}
}

// ParseMainAxisAlignment parses a lowercase alignment name. An empty string
// yields MainLeading.
func ParseMainAxisAlignment(s string) (MainAxisAlignment, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return MainLeading, nil
	}
	for i, name := range mainNames {
		if name == s {
			return MainAxisAlignment(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown main-axis alignment %q", s)
}

// ParseCrossAxisAlignment parses a lowercase alignment name. An empty string
// yields CrossLeading.
func ParseCrossAxisAlignment(s string) (CrossAxisAlignment, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CrossLeading, nil
	}
	for i, name := range crossNames {
		if name == s {
			return CrossAxisAlignment(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown cross-axis alignment %q", s)
}
