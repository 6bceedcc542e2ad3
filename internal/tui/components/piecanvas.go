package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keerthivasan18-r/ExpenseTracker/internal/pie"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/tui/theme"
)

// CellAspect compensates for terminal cells being roughly twice as tall
// as they are wide. Chart coordinates are measured in column units; one
// row counts for CellAspect units vertically.
const CellAspect = 2.0

// CanvasGeometry returns the chart center and radius, in column units,
// for a canvas of w columns by h rows. A one-unit margin keeps the rim
// off the card border.
func CanvasGeometry(w, h int) (centerX, centerY, radius float64) {
	centerX = float64(w) / 2
	centerY = float64(h) * CellAspect / 2
	radius = math.Min(centerX, centerY) - 1
	if radius < 1 {
		radius = 1
	}
	return centerX, centerY, radius
}

// CanvasPoint maps a cell position to the chart coordinates of the
// cell's center. The same mapping translates mouse hits back onto the
// geometry, so rendering and hit-testing can never disagree.
func CanvasPoint(col, row int) (x, y float64) {
	return float64(col) + 0.5, (float64(row) + 0.5) * CellAspect
}

// PieCanvas rasterizes pie segments into a w-by-h character grid. Cells
// whose centers fall inside a segment take that category's color; the
// rest stay blank. No segments yields an empty canvas.
func PieCanvas(segments []pie.Segment, w, h int) string {
	t := theme.Active
	blankStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	styles := make(map[lipgloss.Color]lipgloss.Style)

	var b strings.Builder
	for row := 0; row < h; row++ {
		if row > 0 {
			b.WriteString("\n")
		}
		for col := 0; col < w; col++ {
			x, y := CanvasPoint(col, row)
			seg, ok := pie.HitTest(segments, x, y)
			if !ok {
				b.WriteString(blankStyle.Render(" "))
				continue
			}
			color := theme.CategoryColor(seg.Category.Category)
			style, cached := styles[color]
			if !cached {
				style = lipgloss.NewStyle().Foreground(color)
				styles[color] = style
			}
			b.WriteString(style.Render("█"))
		}
	}
	return b.String()
}

// PieLegend renders one swatch-and-label line per segment.
func PieLegend(segments []pie.Segment) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		swatch := lipgloss.NewStyle().
			Foreground(theme.CategoryColor(s.Category.Category)).
			Render("■")
		parts = append(parts, swatch+" "+labelStyle.Render(s.Category.Category.String()))
	}
	return strings.Join(parts, "  ")
}
