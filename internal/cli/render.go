package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridlayout/pkg/diagram"
	"github.com/matzehuels/gridlayout/pkg/errors"
	"github.com/matzehuels/gridlayout/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	layoutFlags
	output     string   // output file (single format) or base path
	formats    []string // json, dot, svg
	detailed   bool     // add type and grid cell to labels
	fromLayout bool     // input is a positioned graph, skip layout
}

// renderCommand creates the render command for generating previews.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		opts       renderOpts
		formatsStr string
	)

	cmd := &cobra.Command{
		Use:   "render [diagram.json]",
		Short: "Render a diagram or positioned graph to SVG, DOT or JSON",
		Long: `Render a diagram or positioned graph to SVG, DOT or JSON.

SVG and DOT outputs pin every node at its computed position, so Graphviz
draws exactly the layout gridlayout produced. They are meant for inspection,
not as a final rendering.

With --from-layout the input is a positioned graph written by 'layout' and
no layout is computed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show node type and grid cell in labels")
	cmd.Flags().BoolVar(&opts.fromLayout, "from-layout", false, "input is a positioned graph")
	opts.layoutFlags.register(cmd)

	return cmd
}

func runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	timer := newStageTimer(logger)

	runner, err := newRunner(ctx, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	popts := opts.options(ctx)
	popts.Formats = opts.formats
	popts.Detailed = opts.detailed

	spinner := startSpinner(ctx, "Reading "+input+"...")
	rendering := "Rendering " + strings.Join(opts.formats, ", ") + "..."

	var (
		artifacts map[string][]byte
		diags     []diagram.Diagnostic
	)
	if opts.fromLayout {
		var p diagram.PositionedGraph
		p, err = diagram.ReadLayoutFile(input)
		if err != nil {
			spinner.Fail("Read failed")
			return errors.Wrap(errors.ErrCodeInvalidFormat, err, "read positioned graph")
		}
		spinner.Update(rendering)
		artifacts, err = runner.Render(ctx, p, popts)
	} else {
		var g diagram.Graph
		g, err = pipeline.ParseFile(input)
		if err != nil {
			spinner.Fail("Read failed")
			return err
		}
		spinner.Update("Computing layout, " + strings.ToLower(rendering))
		var res *pipeline.Result
		res, err = runner.ExecuteGraph(ctx, g, popts)
		if err == nil {
			artifacts = res.Artifacts
			diags = res.Layout.Diagnostics
		}
	}
	if err != nil {
		spinner.Fail("Render failed")
		return err
	}
	spinner.Stop()
	timer.lap("render")

	paths := outputPaths(input, opts.output, opts.formats)
	for _, format := range opts.formats {
		path := paths[format]
		if err := errors.ValidateOutputPath(path); err != nil {
			return err
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	timer.lap("write")
	timer.done(fmt.Sprintf("Rendered %d artifact(s)", len(opts.formats)))

	printSuccess("Render complete")
	for _, format := range opts.formats {
		printFile(paths[format])
	}
	printDiagnostics(diags)
	return nil
}

// outputPaths maps each format to its output file. A single format with an
// explicit output uses it verbatim; otherwise output (or the input without
// extension) is a base path and the format is the extension. JSON uses
// ".layout.json" so that it never overwrites a diagram input.
func outputPaths(input, output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := output
	if base == "" {
		base = baseName(input)
	}
	for _, f := range formats {
		if f == pipeline.FormatJSON {
			paths[f] = base + ".layout.json"
			continue
		}
		paths[f] = base + "." + f
	}
	return paths
}
