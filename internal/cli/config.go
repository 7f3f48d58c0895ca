package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridlayout/pkg/layout"
)

// configCommand prints and validates layout geometry files.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the default layout geometry as TOML",
		Long: `Print the default layout geometry as TOML.

Save the output, edit the values you want to change and pass the file to
'layout' or 'render' with --config. Keys left out of a file keep their
defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return layout.EncodeConfig(cmd.OutOrStdout(), layout.DefaultConfig())
		},
	}

	cmd.AddCommand(c.configValidateCommand())
	return cmd
}

func (c *CLI) configValidateCommand() *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "validate [config.toml]",
		Short: "Check a layout geometry file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := layout.LoadConfig(args[0])
			if err != nil {
				return err
			}
			return printConfig(cmd.OutOrStdout(), args[0], cfg, show)
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "print the effective configuration")
	return cmd
}

func printConfig(w io.Writer, path string, cfg layout.Config, show bool) error {
	if show {
		return layout.EncodeConfig(w, cfg)
	}
	_, err := fmt.Fprintf(w, "%s: ok (cell %gx%g, snake up to %d columns)\n",
		path, cfg.CellWidth, cfg.CellHeight, cfg.SnakeMaxCols)
	return err
}
