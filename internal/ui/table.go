package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableStyle provides consistent styling for tables across the CLI.
type TableStyle struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Style
}

// DefaultTableStyle returns the default table styling.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Cell: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Selected: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Background(ColorMuted),
		Border: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	// Apply styling
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	s.Selected = s.Selected.
		Foreground(ColorPrimary).
		Background(ColorMuted).
		Bold(false)

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string.
// This is for CLI output (not TUI), producing a simple formatted table.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	// Create the table
	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}

// ProbeTableRow represents a row in the probe status table.
type ProbeTableRow struct {
	Status   string // "ok", "failed", or "skipped"
	Identity string // Probe identity, e.g. "external-ip"
	Result   string // Resolved value or failure reason
	Elapsed  string // Probe duration, empty when skipped
}

// RenderProbeTable renders probe results as a formatted table.
func RenderProbeTable(rows []ProbeTableRow) string {
	if len(rows) == 0 {
		return "No probes requested"
	}

	successStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ColorError)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var output string

	// Header
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorMuted)

	output += headerStyle.Render("  STATUS   PROBE             RESULT                           TIME") + "\n"

	// Rows
	for _, row := range rows {
		var statusIcon string
		switch row.Status {
		case "ok":
			statusIcon = successStyle.Render(SymbolComplete)
		case "skipped":
			statusIcon = mutedStyle.Render(SymbolSkipped)
		default:
			statusIcon = errorStyle.Render(SymbolFail)
		}

		var resultStr string
		if row.Status == "failed" {
			resultStr = errorStyle.Render(padRight(row.Result, 33))
		} else {
			resultStr = padRight(row.Result, 33)
		}

		rowLine := "  " + statusIcon + "        " +
			padRight(row.Identity, 18) +
			resultStr +
			mutedStyle.Render(row.Elapsed)
		output += rowLine + "\n"
	}

	return output
}

// FindingRow represents a row in the validation findings table.
type FindingRow struct {
	Status     string // "pass", "warn", "fail"
	Group      string // Grouping key, usually the device label
	Message    string // Finding message
	Suggestion string // Suggestion for fixing (if failed)
}

// RenderFindingsTable renders validation findings grouped by device.
func RenderFindingsTable(rows []FindingRow) string {
	if len(rows) == 0 {
		return "No findings to display"
	}

	successStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ColorError)
	warnStyle := lipgloss.NewStyle().Foreground(ColorWarning)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	var output string

	// Group by device
	groups := make(map[string][]FindingRow)
	groupOrder := []string{}
	for _, row := range rows {
		if _, exists := groups[row.Group]; !exists {
			groupOrder = append(groupOrder, row.Group)
		}
		groups[row.Group] = append(groups[row.Group], row)
	}

	// Render each group
	for _, g := range groupOrder {
		output += headerStyle.Render(g) + "\n"

		for _, row := range groups[g] {
			var statusIcon string
			switch row.Status {
			case "pass":
				statusIcon = successStyle.Render(SymbolComplete)
			case "warn":
				statusIcon = warnStyle.Render(SymbolComplete)
			case "fail":
				statusIcon = errorStyle.Render(SymbolFail)
			default:
				statusIcon = mutedStyle.Render(SymbolPending)
			}

			output += "  " + statusIcon + " " + row.Message + "\n"

			if row.Suggestion != "" && row.Status != "pass" {
				output += "    " + mutedStyle.Render(row.Suggestion) + "\n"
			}
		}
		output += "\n"
	}

	return output
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	// Account for ANSI codes when calculating visible length
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	padding := width - visibleLen
	for i := 0; i < padding; i++ {
		s += " "
	}
	return s
}
