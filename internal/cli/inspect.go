package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridlayout/pkg/diagram"
	"github.com/matzehuels/gridlayout/pkg/pipeline"
)

// List styles
var (
	listDimStyle  = lipgloss.NewStyle().Foreground(colorDim)
	headerStyle   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
)

// inspectCommand browses a positioned graph in the terminal.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		flags      layoutFlags
		fromLayout bool
		plain      bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [diagram.json]",
		Short: "Browse the positioned nodes of a diagram",
		Long: `Browse the positioned nodes of a diagram.

Shows every node with its rank, grid cell, center and size. Select a node to
see its routed connections, groups and notes. With --plain the table is
printed once instead of opening the interactive view.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, diags, err := loadPositioned(ctx, args[0], fromLayout, flags)
			if err != nil {
				return err
			}
			m := newInspectModel(p, diags)
			if plain {
				printKeyValue("Direction", string(p.Direction))
				printKeyValue("Canvas", fmt.Sprintf("%.0f×%.0f", p.Width, p.Height))
				printKeyValue("Groups", strconv.Itoa(len(p.Groups)))
				printKeyValue("Notes", strconv.Itoa(len(p.Notes)))
				printNewline()
				m.height = len(p.Nodes)
				_, err := fmt.Fprintln(cmd.OutOrStdout(), m.View())
				return err
			}
			_, err = tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(cmd.OutOrStdout())).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&fromLayout, "from-layout", false, "input is a positioned graph")
	cmd.Flags().BoolVar(&plain, "plain", false, "print the node table and exit")
	flags.register(cmd)

	return cmd
}

func loadPositioned(ctx context.Context, input string, fromLayout bool, flags layoutFlags) (diagram.PositionedGraph, []diagram.Diagnostic, error) {
	if fromLayout {
		p, err := diagram.ReadLayoutFile(input)
		return p, nil, err
	}

	g, err := pipeline.ParseFile(input)
	if err != nil {
		return diagram.PositionedGraph{}, nil, err
	}
	runner, err := newRunner(ctx, flags.noCache)
	if err != nil {
		return diagram.PositionedGraph{}, nil, err
	}
	defer runner.Close()

	res, err := runner.Layout(ctx, g, flags.options(ctx))
	if err != nil {
		return diagram.PositionedGraph{}, nil, err
	}
	return res.Graph, res.Diagnostics, nil
}

// =============================================================================
// inspectModel - Interactive node browser
// =============================================================================

// inspectModel is the bubbletea model of the inspect view.
type inspectModel struct {
	graph  diagram.PositionedGraph
	diags  []diagram.Diagnostic
	cursor int
	offset int
	height int
	detail bool
}

func newInspectModel(p diagram.PositionedGraph, diags []diagram.Diagnostic) inspectModel {
	return inspectModel{graph: p, diags: diags, height: 15}
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.graph.Nodes)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter", " ":
			m.detail = !m.detail
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-12, 5)
	}
	return m, nil
}

func (m inspectModel) View() string {
	var b strings.Builder

	title := "Layout"
	if m.graph.Title != nil {
		title = m.graph.Title.Text
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %s · %.0f×%.0f · %d nodes · %d connections",
		m.graph.Direction, m.graph.Width, m.graph.Height, len(m.graph.Nodes), len(m.graph.Connections))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.graph.Nodes))
	rows := make([][]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		n := m.graph.Nodes[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			n.ID,
			n.Label,
			strconv.Itoa(n.Rank),
			fmt.Sprintf("%d,%d", n.Row, n.Column),
			fmt.Sprintf("%.0f,%.0f", n.X, n.Y),
			fmt.Sprintf("%.0f×%.0f", n.Width, n.Height),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Label", "Rank", "Cell", "Center", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if m.offset+row == m.cursor {
				return selectedStyle
			}
			if col == 2 {
				return importanceStyle(m.graph.Nodes[m.offset+row].Importance)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	if m.detail && m.cursor < len(m.graph.Nodes) {
		b.WriteString("\n")
		b.WriteString(m.details(m.graph.Nodes[m.cursor].ID))
	}

	for _, d := range m.diags {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render(fmt.Sprintf("%s %s: %s", iconWarning.glyph, d.Subject, d.Message)))
	}
	return b.String()
}

// details lists the connections, groups and notes touching node id.
func (m inspectModel) details(id string) string {
	var lines []string
	for _, c := range m.graph.Connections {
		switch {
		case c.From == id && c.To == id:
			lines = append(lines, fmt.Sprintf("↻ self  exits %s enters %s", sideArrow(c.FromSide), sideArrow(c.ToSide)))
		case c.From == id:
			lines = append(lines, fmt.Sprintf("→ %-12s exits %s  %d points", c.To, sideArrow(c.FromSide), len(c.Points)))
		case c.To == id:
			lines = append(lines, fmt.Sprintf("← %-12s enters %s  %d points", c.From, sideArrow(c.ToSide), len(c.Points)))
		}
	}
	for _, g := range m.graph.Groups {
		for _, member := range g.NodeIDs {
			if member == id {
				lines = append(lines, fmt.Sprintf("□ group %s", g.Label))
				break
			}
		}
	}
	for _, n := range m.graph.Notes {
		if n.AttachedTo == id {
			lines = append(lines, fmt.Sprintf("✎ note (%s) %q", n.Position, n.Text))
		}
	}
	if len(lines) == 0 {
		return listDimStyle.Render("  no connections")
	}
	return StyleHighlight.Render(id) + "\n" + listDimStyle.Render("  "+strings.Join(lines, "\n  "))
}
