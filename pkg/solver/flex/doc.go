// Package flex implements an in-process, single-line flexbox solver that
// satisfies [solver.Solver].
//
// It supports row/column directions, justify and align-items modes,
// flex-grow and flex-shrink, min/max constraints and intrinsic sizing.
// Nodes live in an arena owned by the [Engine] and are addressed by
// [solver.NodeID]; every node records its parent so malformed trees (a child
// attached twice, an unknown id) are rejected when the node is created.
//
// The root node is sized fit-content: an explicit size wins, otherwise the
// content size capped at the available space.
package flex
