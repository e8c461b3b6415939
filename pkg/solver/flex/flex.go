package flex

import "github.com/matzehuels/layoutc/pkg/solver"

// flexItem holds intermediate calculation state for a child.
// It lives only for the duration of one place call.
type flexItem struct {
	id        solver.NodeID
	baseSize  float64
	mainSize  float64
	crossSize float64
	mainPos   float64
	crossPos  float64
	grow      float64
	shrink    float64
}

// measure returns the hypothetical size of id: explicit points where set,
// otherwise the size of its content (children summed along the main axis
// and maxed along the cross axis), clamped by min/max.
func (e *Engine) measure(id solver.NodeID) solver.Size[float64] {
	i := id - 1
	if e.measureOK[i] {
		return e.measured[i]
	}

	n := &e.nodes[i]
	isRow := n.style.FlexDirection == solver.Row

	var content solver.Size[float64]
	for _, c := range n.children {
		cs := e.measure(c)
		if isRow {
			content.Width += cs.Width
			content.Height = max(content.Height, cs.Height)
		} else {
			content.Height += cs.Height
			content.Width = max(content.Width, cs.Width)
		}
	}

	size := solver.Size[float64]{
		Width:  orContent(n.style.Size.Width, content.Width),
		Height: orContent(n.style.Size.Height, content.Height),
	}
	size.Width = clampAxis(size.Width, n.style.MinSize.Width, n.style.MaxSize.Width)
	size.Height = clampAxis(size.Height, n.style.MinSize.Height, n.style.MaxSize.Height)

	e.measured[i] = size
	e.measureOK[i] = true
	return size
}

func orContent(dim solver.Dimension, content float64) float64 {
	if v, ok := dim.Value(); ok {
		return v
	}
	return content
}

// place arranges the children of id inside a box of the given size and
// recurses. This implements the core flexbox algorithm.
func (e *Engine) place(id solver.NodeID, width, height float64) {
	n := &e.nodes[id-1]
	if len(n.children) == 0 {
		return
	}

	style := n.style
	isRow := style.FlexDirection == solver.Row

	mainSize, crossSize := width, height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Phase 1: base sizes and flex factors
	items := make([]flexItem, len(n.children))
	var totalBase, totalGrow, totalScaledShrink float64
	for i, c := range n.children {
		child := e.nodes[c-1].style
		ms := e.measure(c)

		item := &items[i]
		item.id = c
		item.baseSize = mainOf(ms, isRow)
		item.grow = child.FlexGrow
		item.shrink = child.FlexShrink

		totalBase += item.baseSize
		totalGrow += item.grow
		totalScaledShrink += item.shrink * item.baseSize
	}

	// Phase 2: distribute free space
	freeSpace := mainSize - totalBase
	for i := range items {
		item := &items[i]
		switch {
		case freeSpace > 0 && totalGrow > 0:
			item.mainSize = item.baseSize + freeSpace*item.grow/totalGrow
		case freeSpace < 0 && totalScaledShrink > 0:
			item.mainSize = item.baseSize + freeSpace*item.shrink*item.baseSize/totalScaledShrink
		default:
			item.mainSize = item.baseSize
		}
	}

	// Phase 3: min/max constraints on the main axis
	totalUsed := 0.0
	for i := range items {
		child := e.nodes[items[i].id-1].style
		if isRow {
			items[i].mainSize = clampAxis(items[i].mainSize, child.MinSize.Width, child.MaxSize.Width)
		} else {
			items[i].mainSize = clampAxis(items[i].mainSize, child.MinSize.Height, child.MaxSize.Height)
		}
		totalUsed += items[i].mainSize
	}
	freeSpace = mainSize - totalUsed

	// Phase 4: justify along the main axis
	offset := justifyOffset(style.JustifyContent, freeSpace, len(items))
	spacing := justifySpacing(style.JustifyContent, freeSpace, len(items))
	for i := range items {
		items[i].mainPos = offset
		offset += items[i].mainSize + spacing
	}

	// Phase 5: cross-axis sizing and alignment
	for i := range items {
		child := e.nodes[items[i].id-1].style
		crossDim, minCross, maxCross := child.Size.Height, child.MinSize.Height, child.MaxSize.Height
		if !isRow {
			crossDim, minCross, maxCross = child.Size.Width, child.MinSize.Width, child.MaxSize.Width
		}

		if style.AlignItems == solver.AlignItemsStretch && !crossDim.IsDefined() {
			items[i].crossSize = clampAxis(crossSize, minCross, maxCross)
			items[i].crossPos = 0
			continue
		}
		items[i].crossSize = crossOf(e.measure(items[i].id), isRow)
		items[i].crossPos = alignOffset(style.AlignItems, crossSize, items[i].crossSize)
	}

	// Phase 6: store parent-relative boxes and recurse
	for i := range items {
		item := &items[i]
		var l solver.Layout
		if isRow {
			l.Location = solver.Point{X: item.mainPos, Y: item.crossPos}
			l.Size = solver.Size[float64]{Width: item.mainSize, Height: item.crossSize}
		} else {
			l.Location = solver.Point{X: item.crossPos, Y: item.mainPos}
			l.Size = solver.Size[float64]{Width: item.crossSize, Height: item.mainSize}
		}

		child := &e.nodes[item.id-1]
		child.layout = l
		child.solved = true
		e.place(item.id, l.Size.Width, l.Size.Height)
	}
}

func mainOf(s solver.Size[float64], isRow bool) float64 {
	if isRow {
		return s.Width
	}
	return s.Height
}

func crossOf(s solver.Size[float64], isRow bool) float64 {
	if isRow {
		return s.Height
	}
	return s.Width
}

// justifyOffset returns the position of the first child along the main axis.
func justifyOffset(justify solver.JustifyContent, freeSpace float64, itemCount int) float64 {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case solver.JustifyFlexEnd:
		return freeSpace
	case solver.JustifyCenter:
		return freeSpace / 2
	case solver.JustifySpaceAround:
		return freeSpace / float64(itemCount*2)
	case solver.JustifySpaceEvenly:
		return freeSpace / float64(itemCount+1)
	default: // FlexStart, SpaceBetween
		return 0
	}
}

// justifySpacing returns the extra gap inserted between consecutive children.
func justifySpacing(justify solver.JustifyContent, freeSpace float64, itemCount int) float64 {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	switch justify {
	case solver.JustifySpaceBetween:
		return freeSpace / float64(itemCount-1)
	case solver.JustifySpaceAround:
		return freeSpace / float64(itemCount)
	case solver.JustifySpaceEvenly:
		return freeSpace / float64(itemCount+1)
	default: // FlexStart, FlexEnd, Center
		return 0
	}
}

// alignOffset returns the cross-axis position of a child.
func alignOffset(align solver.AlignItems, crossSize, itemSize float64) float64 {
	switch align {
	case solver.AlignItemsFlexEnd:
		return crossSize - itemSize
	case solver.AlignItemsCenter:
		return (crossSize - itemSize) / 2
	default: // FlexStart, Stretch
		return 0
	}
}
