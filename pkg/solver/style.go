package solver

// FlexDirection selects the main axis of a container.
type FlexDirection uint8

const (
	Row    FlexDirection = iota // children laid out left-to-right
	Column                      // children laid out top-to-bottom
)

// String returns the CSS name of the direction.
func (d FlexDirection) String() string {
	if d == Column {
		return "column"
	}
	return "row"
}

// JustifyContent distributes children along the main axis.
type JustifyContent uint8

const (
	JustifyFlexStart JustifyContent = iota
	JustifyFlexEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

var justifyNames = [...]string{"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly"}

func (j JustifyContent) String() string {
	if int(j) < len(justifyNames) {
		return justifyNames[j]
	}
	return "unknown"
}

// AlignItems positions each child on the cross axis.
type AlignItems uint8

const (
	AlignItemsStretch AlignItems = iota
	AlignItemsFlexStart
	AlignItemsFlexEnd
	AlignItemsCenter
)

var alignItemsNames = [...]string{"stretch", "flex-start", "flex-end", "center"}

func (a AlignItems) String() string {
	if int(a) < len(alignItemsNames) {
		return alignItemsNames[a]
	}
	return "unknown"
}

// AlignContent distributes lines of a multi-line container on the cross axis.
type AlignContent uint8

const (
	AlignContentStretch AlignContent = iota
	AlignContentFlexStart
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentSpaceBetween
	AlignContentSpaceAround
)

var alignContentNames = [...]string{"stretch", "flex-start", "flex-end", "center", "space-between", "space-around"}

func (a AlignContent) String() string {
	if int(a) < len(alignContentNames) {
		return alignContentNames[a]
	}
	return "unknown"
}

// Style contains the layout properties of a single node.
type Style struct {
	// Sizing
	Size    Size[Dimension]
	MinSize Size[Dimension]
	MaxSize Size[Dimension]

	// Flex container properties
	FlexDirection  FlexDirection
	JustifyContent JustifyContent
	AlignItems     AlignItems
	AlignContent   AlignContent

	// Flex item properties
	FlexGrow   float64
	FlexShrink float64
}

// DefaultStyle returns a Style with flexbox defaults: row direction,
// stretch alignment, no growth and a shrink factor of 1. All sizes are
// undefined.
func DefaultStyle() Style {
	return Style{
		FlexDirection:  Row,
		JustifyContent: JustifyFlexStart,
		AlignItems:     AlignItemsStretch,
		AlignContent:   AlignContentStretch,
		FlexShrink:     1,
	}
}
