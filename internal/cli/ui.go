package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridlayout/pkg/diagram"
	"github.com/matzehuels/gridlayout/pkg/errors"
)

// Palette
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// Styles shared by every command.
var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// statusIcon pairs a leading glyph with its color.
type statusIcon struct {
	glyph string
	style lipgloss.Style
}

var (
	iconSuccess = statusIcon{"✓", lipgloss.NewStyle().Foreground(colorGreen)}
	iconError   = statusIcon{"✗", lipgloss.NewStyle().Foreground(colorRed)}
	iconWarning = statusIcon{"!", lipgloss.NewStyle().Foreground(colorYellow)}
	iconInfo    = statusIcon{"›", lipgloss.NewStyle().Foreground(colorGray)}
)

// uiOut receives all human-oriented status output. Machine output (layout
// JSON on stdout, completion scripts) goes to the command's writer instead.
var uiOut io.Writer = os.Stdout

func status(icon statusIcon, msg string) {
	fmt.Fprintln(uiOut, icon.style.Render(icon.glyph)+" "+msg)
}

func printSuccess(format string, args ...any) { status(iconSuccess, fmt.Sprintf(format, args...)) }
func printError(format string, args ...any) { status(iconError, fmt.Sprintf(format, args...)) }
func printInfo(format string, args ...any) { status(iconInfo, fmt.Sprintf(format, args...)) }

func printWarning(format string, args ...any) {
	status(iconWarning, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(uiOut, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints an output file line.
func printFile(path string) {
	fmt.Fprintln(uiOut, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	fmt.Fprintln(uiOut, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(uiOut, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Fprintln(uiOut)
}

// printStats prints a one-line layout summary such as
// "3 nodes · 2 connections · 1 crossings · fresh".
func printStats(nodeCount, connectionCount, crossings int, snake, cached bool) {
	parts := []string{
		fmt.Sprintf("%d nodes", nodeCount),
		fmt.Sprintf("%d connections", connectionCount),
	}
	if crossings > 0 {
		parts = append(parts, fmt.Sprintf("%d crossings", crossings))
	}
	if snake {
		parts = append(parts, "snake")
	}

	origin := lipgloss.NewStyle().Foreground(colorGray).Render("fresh")
	if cached {
		origin = lipgloss.NewStyle().Foreground(colorGreen).Render("cached")
	}

	sep := StyleDim.Render(" · ")
	for i, p := range parts {
		parts[i] = StyleDim.Render(p)
	}
	fmt.Fprintln(uiOut, "  "+strings.Join(parts, sep)+sep+origin)
}

// printDiagnostics prints one warning per repaired input problem, grouped
// by code in first-seen order.
func printDiagnostics(diags []diagram.Diagnostic) {
	var order []errors.Code
	byCode := make(map[errors.Code][]diagram.Diagnostic)
	for _, d := range diags {
		if !slices.Contains(order, d.Code) {
			order = append(order, d.Code)
		}
		byCode[d.Code] = append(byCode[d.Code], d)
	}
	for _, code := range order {
		group := byCode[code]
		if len(group) == 1 {
			printWarning("%s %s: %s", code, group[0].Subject, group[0].Message)
			continue
		}
		printWarning("%s ×%d", code, len(group))
		for _, d := range group {
			printDetail("%s: %s", d.Subject, d.Message)
		}
	}
}

// importanceStyle colors a node label by its importance tier.
func importanceStyle(imp diagram.Importance) lipgloss.Style {
	switch imp {
	case diagram.ImportanceHigh:
		return lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	case diagram.ImportanceLow:
		return lipgloss.NewStyle().Foreground(colorGray)
	default:
		return lipgloss.NewStyle()
	}
}

// sideArrow points out of a box through side.
func sideArrow(side diagram.Side) string {
	switch side {
	case diagram.SideTop:
		return "↑"
	case diagram.SideBottom:
		return "↓"
	case diagram.SideLeft:
		return "←"
	case diagram.SideRight:
		return "→"
	}
	return "·"
}
