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
	"github.com/matzehuels/layoutc/pkg/pipeline"
)

// computeFlags holds the flags of the compute command.
type computeFlags struct {
	output  string
	format  string
	width   float64
	height  float64
	strict  bool
	noCache bool
	table   bool
}

// computeCommand creates the compute command for solving a tree document.
func (c *CLI) computeCommand() *cobra.Command {
	var flags computeFlags

	cmd := &cobra.Command{
		Use:   "compute [document]",
		Short: "Compute the rectangles of a tree document",
		Long: `Compute the rectangles of a tree document.

The document is a TOML, YAML or JSON description of views, frames and stacks.
Its format is inferred from the file extension unless --format is given. The
result is written as a JSON layout document (default: <input>.layout.json).

--width and --height override the document's viewport. Children that fail to
submit are omitted and reported; with --strict they fail the run instead.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, args[0])
			if err != nil {
				return err
			}
			return c.runCompute(cmd.Context(), args[0], opts, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: <input>.layout.json, - for stdout)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "document format: toml, yaml, json (default: from extension)")
	cmd.Flags().Float64Var(&flags.width, "width", 0, "available width (overrides the document viewport)")
	cmd.Flags().Float64Var(&flags.height, "height", 0, "available height (overrides the document viewport)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail when a child cannot be submitted")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.table, "table", false, "print the rectangles as a table")

	cmd.ValidArgsFunction = documentCompletion
	_ = cmd.RegisterFlagCompletionFunc("format",
		cobra.FixedCompletions(documentFormats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

var documentFormats = []string{"toml", "yaml", "json"}

// documentCompletion completes the single document argument with files of
// a supported extension.
func documentCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"toml", "yaml", "yml", "json"}, cobra.ShellCompDirectiveFilterFileExt
}

// options converts the flags to pipeline options. Width and height only
// override the document when set explicitly.
func (f computeFlags) options(cmd *cobra.Command, input string) (pipeline.Options, error) {
	opts := pipeline.Options{Strict: f.strict, NoCache: f.noCache}

	var err error
	if f.format != "" {
		opts.Format, err = manifest.ParseFormat(f.format)
	} else {
		opts.Format, err = manifest.FormatFromPath(input)
	}
	if err != nil {
		return opts, err
	}

	if cmd.Flags().Changed("width") {
		w := f.width
		opts.Width = &w
	}
	if cmd.Flags().Changed("height") {
		h := f.height
		opts.Height = &h
	}
	return opts, opts.Validate()
}

// runCompute reads the document, runs the pipeline and writes output.
func (c *CLI) runCompute(ctx context.Context, input string, opts pipeline.Options, flags computeFlags) error {
	logger := loggerFromContext(ctx)

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read document %s: %w", input, err)
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = logger
	prog := newProgress(logger)
	res, err := runner.Run(ctx, data, opts)
	if err != nil {
		return fmt.Errorf("compute %s: %w", input, err)
	}
	prog.done(fmt.Sprintf("Computed %d rectangles", len(res.Layout.Rects)))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if flags.output == "-" {
		out, err := export.MarshalLayout(res.Layout)
		if err != nil {
			return fmt.Errorf("encode layout: %w", err)
		}
		_, err = stdout.Write(append(out, '\n'))
		return err
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
	}
	if err := export.WriteLayoutFile(res.Layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(res.Stats, res.Cached)
	printOmissions(res.Layout.Omitted)
	if flags.table {
		printRects(res.Layout.Rects)
	}
	printNewline()
	printNextStep("Diagram", appName+" tree "+input)

	return nil
}
