// Package report formats a result log as the final console report: an
// aligned table of every case, a statistics block, and a list of failing
// cases when there are any.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/light-bringer/tasks-contract-tests/framework"
)

const bannerWidth = 120

// statusColumn is the index of the outcome column in tableHeaders; it is
// the only colorized cell in the rich table.
const statusColumn = 5

var tableHeaders = []string{"#", "Category", "Test Name", "Method", "Endpoint", "Status", "Code", "Time(ms)"}

// RichTableAvailable reports whether the rich (colorized grid) table style
// can be used. fatih/color disables itself when stdout is not a terminal
// or NO_COLOR is set, and that same switch selects the renderer strategy.
func RichTableAvailable() bool {
	return !color.NoColor
}

// Renderer formats a result log. It is a pure consumer of the log:
// rendering never mutates or reorders it, and rendering the same log twice
// produces byte-identical text.
//
// The rich strategy draws a bordered grid with colorized outcome cells;
// the plain strategy draws the same rows as a manually aligned table. The
// strategy only affects presentation, never the statistics.
type Renderer struct {
	rich bool

	passStyle *color.Color
	failStyle *color.Color
	skipStyle *color.Color
}

// NewRenderer creates a Renderer using the rich or plain table strategy.
func NewRenderer(rich bool) *Renderer {
	return &Renderer{
		rich:      rich,
		passStyle: color.New(color.FgGreen),
		failStyle: color.New(color.FgRed, color.Bold),
		skipStyle: color.New(color.FgYellow),
	}
}

// Render returns the full report text for a non-empty result log. An empty
// log is an error, not an empty report.
func (r *Renderer) Render(results framework.Results) (string, error) {
	stats, err := framework.Summarize(results)
	if err != nil {
		return "", err
	}

	rows := buildRows(results)
	rule := strings.Repeat("=", bannerWidth)
	var b strings.Builder

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "TEST RESULTS SUMMARY")
	fmt.Fprintln(&b, rule)
	if r.rich {
		r.writeGridTable(&b, tableHeaders, rows)
	} else {
		writePlainTable(&b, tableHeaders, rows)
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "STATISTICS")
	fmt.Fprintln(&b, rule)
	writeStats(&b, stats)
	fmt.Fprintln(&b, rule)

	if stats.Failed == 0 {
		fmt.Fprintln(&b, r.verdict(r.passStyle, "ALL TESTS PASSED"))
	} else {
		fmt.Fprintln(&b, r.verdict(r.failStyle, fmt.Sprintf("%d TEST(S) FAILED", stats.Failed)))
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "Failed tests:")
		for i, result := range results.Tests {
			if result.Outcome != framework.Fail {
				continue
			}
			fmt.Fprintf(&b, "  %d. %s - %s\n", i+1, result.Category, result.Name)
			if result.ErrorDetail != "" {
				fmt.Fprintf(&b, "     Error: %s\n", result.ErrorDetail)
			}
		}
	}

	return b.String(), nil
}

func buildRows(results framework.Results) [][]string {
	rows := make([][]string, 0, len(results.Tests))
	for i, result := range results.Tests {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			result.Category,
			result.Name,
			result.Method,
			result.Path,
			string(result.Outcome),
			fmt.Sprintf("%d/%d", result.ActualStatus, result.ExpectedStatus),
			fmt.Sprintf("%.2f", millis(result.Duration)),
		})
	}
	return rows
}

// writePlainTable is the fallback strategy: each column is as wide as its
// widest cell (header included), cells are left-justified and joined with
// " | ", with a dash rule under the header.
func writePlainTable(b *strings.Builder, headers []string, rows [][]string) {
	widths := columnWidths(headers, rows)
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = pad(h, widths[i])
	}
	headerLine := strings.Join(cells, " | ")
	fmt.Fprintln(b, headerLine)
	fmt.Fprintln(b, strings.Repeat("-", len(headerLine)))
	for _, row := range rows {
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		fmt.Fprintln(b, strings.Join(cells, " | "))
	}
}

func (r *Renderer) writeGridTable(b *strings.Builder, headers []string, rows [][]string) {
	widths := columnWidths(headers, rows)
	writeGridRule(b, widths, "-")
	r.writeGridRow(b, headers, widths, false)
	writeGridRule(b, widths, "=")
	for _, row := range rows {
		r.writeGridRow(b, row, widths, true)
		writeGridRule(b, widths, "-")
	}
}

func writeGridRule(b *strings.Builder, widths []int, ch string) {
	b.WriteString("+")
	for _, w := range widths {
		b.WriteString(strings.Repeat(ch, w+2))
		b.WriteString("+")
	}
	b.WriteString("\n")
}

func (r *Renderer) writeGridRow(b *strings.Builder, cells []string, widths []int, colorize bool) {
	b.WriteString("|")
	for i, cell := range cells {
		// Pad before colorizing: widths are computed from the uncolored
		// text, and escape codes must not shift the columns.
		text := pad(cell, widths[i])
		if colorize && i == statusColumn {
			text = r.outcomeStyle(cell).Sprint(text)
		}
		b.WriteString(" " + text + " |")
	}
	b.WriteString("\n")
}

func (r *Renderer) outcomeStyle(label string) *color.Color {
	switch framework.Outcome(label) {
	case framework.Pass:
		return r.passStyle
	case framework.Skip:
		return r.skipStyle
	default:
		return r.failStyle
	}
}

func (r *Renderer) verdict(style *color.Color, text string) string {
	if r.rich {
		return style.Sprint(text)
	}
	return text
}

func writeStats(b *strings.Builder, stats framework.Stats) {
	writeStat(b, "Total Tests", strconv.Itoa(stats.Total))
	writeStat(b, "Passed", strconv.Itoa(stats.Passed))
	writeStat(b, "Failed", strconv.Itoa(stats.Failed))
	if stats.Skipped > 0 {
		writeStat(b, "Skipped", strconv.Itoa(stats.Skipped))
	}
	writeStat(b, "Success Rate", fmt.Sprintf("%.1f%%", stats.SuccessRate))
	writeStat(b, "Total Duration", fmt.Sprintf("%.2fms", millis(stats.TotalDuration)))
	writeStat(b, "Average Duration", fmt.Sprintf("%.2fms", millis(stats.AvgDuration)))
}

func writeStat(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "  %-20s %s\n", name, value)
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
