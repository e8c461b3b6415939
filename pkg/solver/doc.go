// Package solver defines the contract between the layout tree and a
// flexbox-style geometry solver.
//
// A [Solver] accepts a tree of styled nodes, built bottom-up with
// [Solver.NewNode], resolves it against an available size with
// [Solver.ComputeLayout], and reports per node a [Layout] whose location is
// relative to the node's immediate parent box.
//
// The package holds only value types and the interface. The bundled
// in-process implementation lives in [github.com/matzehuels/layoutc/pkg/solver/flex].
package solver
