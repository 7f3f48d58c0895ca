package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// shellCompletion describes how one shell loads a generated script.
type shellCompletion struct {
	name    string
	title   string
	load    string
	install []string
	gen     func(root *cobra.Command, w io.Writer, desc bool) error
}

var shells = []shellCompletion{
	{
		name:  "bash",
		title: "Bash",
		load:  "$ source <(%[1]s completion bash)",
		install: []string{
			"# Linux:",
			"$ %[1]s completion bash > /etc/bash_completion.d/%[1]s",
			"# macOS:",
			"$ %[1]s completion bash > $(brew --prefix)/etc/bash_completion.d/%[1]s",
		},
		gen: func(root *cobra.Command, w io.Writer, desc bool) error {
			return root.GenBashCompletionV2(w, desc)
		},
	},
	{
		name:  "zsh",
		title: "Zsh",
		load:  `$ echo "autoload -U compinit; compinit" >> ~/.zshrc`,
		install: []string{
			`$ %[1]s completion zsh > "${fpath[1]}/_%[1]s"`,
		},
		gen: func(root *cobra.Command, w io.Writer, desc bool) error {
			if desc {
				return root.GenZshCompletion(w)
			}
			return root.GenZshCompletionNoDesc(w)
		},
	},
	{
		name:  "fish",
		title: "Fish",
		load:  "$ %[1]s completion fish | source",
		install: []string{
			"$ %[1]s completion fish > ~/.config/fish/completions/%[1]s.fish",
		},
		gen: func(root *cobra.Command, w io.Writer, desc bool) error {
			return root.GenFishCompletion(w, desc)
		},
	},
	{
		name:  "powershell",
		title: "PowerShell",
		load:  "PS> %[1]s completion powershell | Out-String | Invoke-Expression",
		gen: func(root *cobra.Command, w io.Writer, desc bool) error {
			if desc {
				return root.GenPowerShellCompletionWithDesc(w)
			}
			return root.GenPowerShellCompletion(w)
		},
	},
}

func completionHelp(app string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate shell completion scripts for %s.\n", app)
	for _, sh := range shells {
		fmt.Fprintf(&b, "\n%s:\n  %s\n", sh.title, fmt.Sprintf(sh.load, app))
		if len(sh.install) == 0 {
			continue
		}
		b.WriteString("\n  # To load completions for each session, execute once:\n")
		for _, line := range sh.install {
			fmt.Fprintf(&b, "  %s\n", fmt.Sprintf(line, app))
		}
	}
	return b.String()
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	var noDesc bool
	names := make([]string, len(shells))
	for i, sh := range shells {
		names[i] = sh.name
	}

	cmd := &cobra.Command{
		Use:       fmt.Sprintf("completion [%s]", strings.Join(names, "|")),
		Short:     "Generate shell completion scripts",
		Long:      completionHelp(appName),
		ValidArgs: names,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			i := slices.IndexFunc(shells, func(sh shellCompletion) bool { return sh.name == args[0] })
			return shells[i].gen(cmd.Root(), cmd.OutOrStdout(), !noDesc)
		},
	}
	cmd.Flags().BoolVar(&noDesc, "no-descriptions", false, "omit command descriptions from completions")
	return cmd
}
