// Package export writes layout results and content-tree diagrams.
//
// [Layout] is the JSON document produced by the CLI and the HTTP API: one
// absolute rectangle per renderable element in pre-order, plus the children
// that were omitted during submission. [ToDOT] and [RenderSVG] draw the
// content tree itself with Graphviz, which helps when a document does not
// lay out the way its author expected.
package export
