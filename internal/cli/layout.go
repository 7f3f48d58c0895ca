package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridlayout/pkg/diagram"
	"github.com/matzehuels/gridlayout/pkg/errors"
	"github.com/matzehuels/gridlayout/pkg/pipeline"
)

// layoutFlags holds the flags shared by layout and render.
type layoutFlags struct {
	direction string // overrides the diagram's direction
	config    string // TOML geometry file
	noCache   bool
	refresh   bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.direction, "direction", "d", "", "override direction: TB, LR, radial")
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "layout geometry file (TOML, see 'gridlayout config')")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute even when cached")
}

func (f *layoutFlags) options(ctx context.Context) pipeline.Options {
	return pipeline.Options{
		Direction:  f.direction,
		ConfigPath: f.config,
		Refresh:    f.refresh,
		Logger:     loggerFromContext(ctx),
	}
}

// layoutCommand creates the layout command for positioning a diagram.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags  layoutFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout [diagram.json]",
		Short: "Position a diagram and write the positioned graph",
		Long: `Position a diagram and write the positioned graph.

The input is a JSON diagram description (nodes, connections, groups, notes).
The output is a JSON positioned graph (default: <input>.layout.json) that
'render --from-layout' and 'inspect --from-layout' accept. Use -o - to write
to stdout.

Input problems such as dangling connections or duplicate node ids never fail
the command; they are repaired and reported as warnings.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd.Context(), cmd.OutOrStdout(), args[0], output, flags)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json, - for stdout)")
	flags.register(cmd)

	return cmd
}

// runLayout loads the diagram, computes the layout, and writes output.
func runLayout(ctx context.Context, stdout io.Writer, input, output string, flags layoutFlags) error {
	timer := newStageTimer(loggerFromContext(ctx))
	g, err := pipeline.ParseFile(input)
	if err != nil {
		return err
	}
	timer.lap("parse")

	opts := flags.options(ctx)
	if err := opts.ValidateForLayout(); err != nil {
		return err
	}

	runner, err := newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	toStdout := output == "-"
	var spinner *Spinner
	if !toStdout {
		spinner = startSpinner(ctx, "Computing layout...")
	}

	res, _, cacheHit, err := runner.LayoutWithCacheInfo(ctx, g, opts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	timer.lap("layout")
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if toStdout {
		return diagram.WriteLayout(res.Graph, stdout)
	}

	outputPath := output
	if outputPath == "" {
		outputPath = baseName(input) + ".layout.json"
	}
	if err := errors.ValidateOutputPath(outputPath); err != nil {
		return err
	}
	if err := diagram.WriteLayoutFile(res.Graph, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(res.Graph.Nodes), len(res.Graph.Connections), res.Crossings, res.Snake, cacheHit)
	printDiagnostics(res.Diagnostics)
	printNewline()
	printNextStep("Render", appName+" render --from-layout "+outputPath)

	return nil
}
