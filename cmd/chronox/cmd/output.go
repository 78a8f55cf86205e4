// File: output.go
// Title: Result Rendering
// Description: Renders result tables as aligned lipgloss text, JSON or YAML.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/msto63/chronox/foundation/clock/calendar"
	cxerror "github.com/msto63/chronox/foundation/core/error"
	"github.com/msto63/chronox/pkg/core/config"
)

// Color palette of the text tables
var (
	colorHeader = lipgloss.Color("#8B5CF6") // Violet
	colorMuted  = lipgloss.Color("#6B7280") // Gray
	colorError  = lipgloss.Color("#EF4444") // Red
)

// table is a result set rendered as text, json or yaml
type table struct {
	headers []string
	rows    [][]string
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

// records returns one header keyed map per row
func (t table) records() []map[string]string {
	out := make([]map[string]string, len(t.rows))
	for i, row := range t.rows {
		m := make(map[string]string, len(t.headers))
		for j, h := range t.headers {
			if j < len(row) {
				m[h] = row[j]
			}
		}
		out[i] = m
	}
	return out
}

// render writes t in the configured output format
func (a *app) render(t table) error {
	switch a.cfg.Output.Format {
	case config.OutputJSON:
		return a.writeJSON(t.records())
	case config.OutputYAML:
		return a.writeYAML(t.records())
	default:
		_, err := fmt.Fprint(a.stdout, a.textTable(t))
		return err
	}
}

func (a *app) writeJSON(v interface{}) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return cxerror.Wrap(err, "failed to encode json").WithCode(cxerror.CodeInternal)
	}
	return nil
}

func (a *app) writeYAML(v interface{}) error {
	enc := yaml.NewEncoder(a.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return cxerror.Wrap(err, "failed to encode yaml").WithCode(cxerror.CodeInternal)
	}
	return enc.Close()
}

// textTable lays out t in aligned columns
func (a *app) textTable(t table) string {
	r := lipgloss.NewRenderer(a.stdout)
	headerStyle := r.NewStyle().Foreground(colorHeader).Bold(true)
	ruleStyle := r.NewStyle().Foreground(colorMuted)
	naStyle := r.NewStyle().Foreground(colorError)

	widths := make([]int, len(t.headers))
	for j, h := range t.headers {
		widths[j] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for j, cell := range row {
			if j < len(widths) && lipgloss.Width(cell) > widths[j] {
				widths[j] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	cells := make([]string, len(t.headers))
	for j, h := range t.headers {
		cells[j] = headerStyle.Width(widths[j] + 2).Render(strings.ToUpper(h))
	}
	b.WriteString(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " "))
	b.WriteString("\n")

	total := 0
	for _, w := range widths {
		total += w + 2
	}
	if total > 2 {
		b.WriteString(ruleStyle.Render(strings.Repeat("─", total-2)))
		b.WriteString("\n")
	}

	for _, row := range t.rows {
		for j := range t.headers {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			style := r.NewStyle()
			if cell == calendar.NA {
				style = naStyle
			}
			cells[j] = style.Width(widths[j] + 2).Render(cell)
		}
		b.WriteString(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " "))
		b.WriteString("\n")
	}
	return b.String()
}
