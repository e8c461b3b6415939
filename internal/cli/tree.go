package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/layoutc/pkg/export"
	"github.com/matzehuels/layoutc/pkg/manifest"
)

// treeCommand creates the tree command for drawing the content tree.
func (c *CLI) treeCommand() *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "tree [document]",
		Short: "Draw the content tree of a document",
		Long: `Draw the content tree of a document.

Writes a Graphviz diagram of the views, frames and stacks the document
describes. The output format follows the extension of --output: .svg renders
through Graphviz, .dot writes the DOT source (default: <input>.tree.svg).`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: documentCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTree(cmd.Context(), args[0], format, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, .svg or .dot (default: <input>.tree.svg)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "document format: toml, yaml, json (default: from extension)")

	return cmd
}

// runTree builds the content tree and writes the diagram.
func (c *CLI) runTree(ctx context.Context, input, format, output string) error {
	logger := loggerFromContext(ctx)

	var (
		f   manifest.Format
		err error
	)
	if format != "" {
		f, err = manifest.ParseFormat(format)
	} else {
		f, err = manifest.FormatFromPath(input)
	}
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read document %s: %w", input, err)
	}
	doc, err := manifest.Decode(data, f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", input, err)
	}
	root, err := manifest.Build(doc.Root)
	if err != nil {
		return fmt.Errorf("build %s: %w", input, err)
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".tree.svg"
	}

	var out []byte
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".dot", ".gv":
		out = []byte(export.ToDOT(root))
	case ".svg":
		prog := newProgress(logger)
		if out, err = export.RenderTreeSVG(root); err != nil {
			return fmt.Errorf("render diagram: %w", err)
		}
		prog.done("Rendered diagram")
	default:
		return fmt.Errorf("unsupported diagram format %q (use .svg or .dot)", ext)
	}

	if err := os.WriteFile(output, out, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Diagram complete")
	printFile(output)
	return nil
}
