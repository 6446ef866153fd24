package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphsearch/hc"
)

// Write renders reports to w in the given format.
//
//   - text: one titled table plus a path summary per report, blank-line separated;
//   - json: a single object for one report, an array otherwise;
//   - yaml: one document per report.
//
// loc is only consulted for text output.
func Write(w io.Writer, f Format, loc *Localizer, reports ...*Report) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(reports) == 1 {
			return enc.Encode(reports[0])
		}
		return enc.Encode(reports)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, r := range reports {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("report: yaml: %w", err)
			}
		}
		return enc.Close()

	case FormatText:
		st := newStyles(lipgloss.NewRenderer(w))
		for i, r := range reports {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := writeText(w, st, loc, r); err != nil {
				return err
			}
		}
		return nil

	default:
		return ErrUnknownFormat
	}
}

// styles bundles the lipgloss styles bound to one output renderer.
type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	border  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newStyles(re *lipgloss.Renderer) styles {
	return styles{
		title:   re.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4")),
		header:  re.NewStyle().Bold(true).Padding(0, 1),
		cell:    re.NewStyle().Padding(0, 1),
		border:  re.NewStyle().Foreground(lipgloss.Color("#2C4A54")),
		success: re.NewStyle().Foreground(lipgloss.Color("#2CD7C7")),
		failure: re.NewStyle().Foreground(lipgloss.Color("#E74C3C")),
	}
}

func writeText(w io.Writer, st styles, loc *Localizer, r *Report) error {
	headers, rows := tableFor(loc, r)

	title := loc.T("title." + r.Algorithm)
	if r.Source != "" {
		title += " (" + r.Source + ")"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}
			return st.cell
		}).
		Headers(headers...).
		Rows(rows...)

	var b strings.Builder
	b.WriteString(st.title.Render(title))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")

	if r.Found {
		b.WriteString(st.success.Render(loc.T("path.found", r.Start, r.Goal, strings.Join(r.Path, " → "))))
		b.WriteString("\n")
		b.WriteString(loc.T("path.length", strconv.Itoa(len(r.Path)), strconv.Itoa(len(r.Path)-1)))
		b.WriteString("\n")
	} else {
		b.WriteString(st.failure.Render(loc.T("path.none", r.Start, r.Goal)))
		b.WriteString("\n")
	}
	if r.BestCost != nil {
		b.WriteString(loc.T("cost.best", number(*r.BestCost)))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// tableFor returns localized headers and rows for the report's step type.
func tableFor(loc *Localizer, r *Report) ([]string, [][]string) {
	list := func(items []string) string {
		if len(items) == 0 {
			return loc.T("empty")
		}
		return strings.Join(items, ", ")
	}

	switch steps := r.Steps.(type) {
	case []DFSStep:
		headers := []string{loc.T("col.step"), loc.T("col.current"), loc.T("col.stack"), loc.T("col.visited")}
		rows := make([][]string, len(steps))
		for i, s := range steps {
			rows[i] = []string{strconv.Itoa(s.Step), s.Current, list(s.Stack), list(s.Visited)}
		}
		return headers, rows

	case []BNBStep:
		headers := []string{
			loc.T("col.step"), loc.T("col.node"), loc.T("col.g"), loc.T("col.neighbors"),
			loc.T("col.children"), loc.T("col.open"), loc.T("col.bound"), loc.T("col.status"),
		}
		rows := make([][]string, len(steps))
		for i, s := range steps {
			bound := "∞"
			if s.Bound != nil {
				bound = number(*s.Bound)
			}
			status := ""
			if s.ReachedGoal {
				status = loc.T("status.reached")
			}
			rows[i] = []string{
				strconv.Itoa(s.Step), s.Node, number(s.G), list(s.Neighbors),
				list(s.Children), list(s.Open), bound, status,
			}
		}
		return headers, rows

	case []HCStep:
		headers := []string{
			loc.T("col.step"), loc.T("col.current"), loc.T("col.h"),
			loc.T("col.neighbors"), loc.T("col.chosen"), loc.T("col.note"),
		}
		rows := make([][]string, len(steps))
		for i, s := range steps {
			rows[i] = []string{
				strconv.Itoa(s.Step), s.Current, number(s.H),
				list(s.Neighbors), s.Chosen, loc.Note(hc.Note(s.Note)),
			}
		}
		return headers, rows

	default:
		return nil, nil
	}
}
