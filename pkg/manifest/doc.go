// Package manifest decodes declarative layout documents and builds them into
// content trees.
//
// A document names an optional default viewport and a root node. Nodes are
// written in TOML, YAML or JSON with the same keys:
//
//	[viewport]
//	width = 200
//	height = 200
//
//	[root]
//	type = "vstack"
//	main = "leading"
//	cross = "center"
//
//	[[root.children]]
//	type = "frame"
//	width = 50
//	height = 100
//	child = { type = "view", label = "hero", color = "#3366ff" }
//
// Node types are view, frame, vstack, hstack and box. Documents are decoded
// into generic maps first and then into [Node] with mapstructure, so all
// three formats reject unknown keys in the same way.
package manifest
