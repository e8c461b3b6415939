// Package pkg provides the libraries behind layoutc, a compiler from
// declarative layout trees to absolute rectangles.
//
// # Overview
//
// The pkg directory is organized into four areas:
//
//  1. [core/tree] - Content elements, the submission pass and the root
//     orchestrator that turns a solved tree into absolute rectangles
//  2. [solver] - The solver contract and the bundled [solver/flex] engine
//  3. [manifest], [export] - Tree documents in, layout documents and
//     diagrams out
//  4. [pipeline] - Orchestration (decode → build → solve → export) with
//     [cache] and [observability] hooks
//
// # Architecture
//
// The data flow through layoutc:
//
//	TOML / YAML / JSON document
//	         ↓
//	    [manifest] package (decode + build content tree)
//	         ↓
//	    [core/tree] package (submit to the solver, resolve coordinates)
//	         ↓
//	    [solver/flex] package (flexbox layout)
//	         ↓
//	    [export] package (JSON layout document, DOT/SVG diagram)
//
// # Quick Start
//
// Lay out a tree built in code:
//
//	import (
//	    "github.com/matzehuels/layoutc/pkg/core/tree"
//	    "github.com/matzehuels/layoutc/pkg/solver"
//	    "github.com/matzehuels/layoutc/pkg/solver/flex"
//	)
//
//	root := tree.NewVStack(tree.MainLeading, tree.CrossCenter, nil,
//	    tree.NewFrame(tree.NewView(nil).WithLabel("hero")).Width(50).Height(100),
//	)
//	rects, err := tree.NewRoot(root).ComputeLayout(flex.New(), solver.Viewport(nil, nil))
//
// Or run a document through the pipeline:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, err := runner.Run(ctx, data, pipeline.Options{Format: manifest.FormatTOML})
//
// [core/tree]: github.com/matzehuels/layoutc/pkg/core/tree
// [solver]: github.com/matzehuels/layoutc/pkg/solver
// [solver/flex]: github.com/matzehuels/layoutc/pkg/solver/flex
// [manifest]: github.com/matzehuels/layoutc/pkg/manifest
// [export]: github.com/matzehuels/layoutc/pkg/export
// [pipeline]: github.com/matzehuels/layoutc/pkg/pipeline
// [cache]: github.com/matzehuels/layoutc/pkg/cache
// [observability]: github.com/matzehuels/layoutc/pkg/observability
package pkg
