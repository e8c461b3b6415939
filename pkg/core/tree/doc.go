// Package tree composes declarative layout primitives into a tree and
// resolves the absolute rectangle of every renderable leaf.
//
// A tree is built bottom-up from [SizedBox], [View], [FrameWrapper],
// [VStack] and [HStack], all of which implement [Content]. Wrapping the root
// in a [RootView] wires every child's parent back-reference once; the root
// view then drives a [solver.Solver]:
//
//	v1 := tree.AbsoluteFrame(tree.NewView(nil), 50, 100)
//	v2 := tree.AbsoluteFrame(tree.NewView(nil), 100, 100)
//	row := tree.NewHStack(tree.MainCenter, tree.CrossCenter, tree.Pt(10), v1, v2)
//	root := tree.NewRoot(tree.NewVStack(tree.MainLeading, tree.CrossCenter, nil, row))
//
//	rects, err := root.ComputeLayout(flex.New(), solver.Viewport(tree.Pt(200), tree.Pt(200)))
//
// The solver reports boxes relative to each node's parent. ComputeLayout
// walks every renderable node's ancestor chain and sums those offsets, so a
// view's rectangle is absolute no matter how many structural wrappers
// surround it.
//
// # Node kinds
//
// Every element carries a [NodeType]: structural nodes (stacks, frames,
// boxes) only shape the layout, renderable nodes ([View]) produce a
// rectangle in the result.
//
// # Child omission
//
// A child whose submission fails is omitted from its parent's solver node
// and is recorded as an [Omission] in the [Result]. [WithStrictChildren]
// turns that into a hard failure instead.
//
// # Spacing
//
// Stacks realize a fixed spacing by inserting synthetic [SizedBox] fillers
// between children. Distributive main-axis alignments (between, around,
// evenly) leave spacing to the solver and must not be combined with a fixed
// spacing; doing so panics.
package tree
