package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/keerthivasan18-r/ExpenseTracker/internal/model"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/pie"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/stats"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
	theme.SetActive("flexoki-dark")
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	tests := []struct {
		total, n int
	}{
		{100, 2},
		{101, 2},
		{110, 3},
		{7, 3},
	}

	for _, tt := range tests {
		widths := LayoutRow(tt.total, tt.n)
		if len(widths) != tt.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tt.total, tt.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
		for i := 1; i < len(widths); i++ {
			if widths[i] > widths[i-1] {
				t.Errorf("LayoutRow(%d, %d): width %d grew after %d", tt.total, tt.n, widths[i], widths[i-1])
			}
		}
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	joined := CardRow([]string{tallCard, shortCard})
	if got, want := lipgloss.Height(joined), lipgloss.Height(tallCard); got != want {
		t.Errorf("joined height = %d, want %d", got, want)
	}
}

func TestBudgetBarClampsAndFills(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		filled  int
	}{
		{"empty", 0, 0},
		{"half", 50, 10},
		{"full", 100, 20},
		{"negative clamps", -5, 0},
		{"over clamps", 250, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := BudgetBar(tt.percent, 20)
			if got := strings.Count(bar, "█"); got != tt.filled {
				t.Errorf("BudgetBar(%d, 20) filled %d cells, want %d", tt.percent, got, tt.filled)
			}
			if got := strings.Count(bar, "░"); got != 20-tt.filled {
				t.Errorf("BudgetBar(%d, 20) empty %d cells, want %d", tt.percent, got, 20-tt.filled)
			}
		})
	}
}

func TestCategoryBarsEmptyState(t *testing.T) {
	out := CategoryBars(nil, 40)
	if !strings.Contains(out, "Add a few expenses") {
		t.Errorf("empty stat bars = %q, want the placeholder hint", out)
	}
}

func TestCategoryBarsLargestFillsWidth(t *testing.T) {
	totals := []stats.CategoryTotal{
		{Category: model.CategoryFood, Total: 200},
		{Category: model.CategoryTravel, Total: 50},
	}
	out := CategoryBars(totals, 40)

	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (2 categories x label+bar), got %d", len(lines))
	}
	if got := strings.Count(lines[1], "█"); got != 40 {
		t.Errorf("largest category bar filled %d cells, want 40", got)
	}
	if got := strings.Count(lines[3], "█"); got != 10 {
		t.Errorf("quarter-share bar filled %d cells, want 10", got)
	}
}

func TestCanvasGeometryFitsCanvas(t *testing.T) {
	cx, cy, r := CanvasGeometry(24, 11)
	if cx != 12 {
		t.Errorf("centerX = %v, want 12", cx)
	}
	if cy != 11 {
		t.Errorf("centerY = %v, want 11", cy)
	}
	if r <= 0 || r > cx || r > cy {
		t.Errorf("radius %v does not fit a 24x11 canvas centered at (%v, %v)", r, cx, cy)
	}
}

// The renderer and the mouse translation share CanvasPoint, so a cell
// the renderer paints must hit-test to the same segment when the mouse
// lands on it.
func TestPieCanvasAgreesWithHitTest(t *testing.T) {
	totals := []stats.CategoryTotal{
		{Category: model.CategoryFood, Total: 75},
		{Category: model.CategoryTravel, Total: 25},
	}
	cx, cy, r := CanvasGeometry(24, 11)
	segments := pie.BuildSegments(totals, cx, cy, r)

	painted := 0
	for row := 0; row < 11; row++ {
		for col := 0; col < 24; col++ {
			x, y := CanvasPoint(col, row)
			if _, ok := pie.HitTest(segments, x, y); ok {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Fatal("no canvas cell hit any segment")
	}

	out := PieCanvas(segments, 24, 11)
	if got := strings.Count(out, "█"); got != painted {
		t.Errorf("canvas painted %d cells, hit test says %d", got, painted)
	}
}

func TestRenderAuthTabsHighlightsActive(t *testing.T) {
	out := RenderAuthTabs(0)
	for _, name := range AuthTabs {
		if !strings.Contains(out, name) {
			t.Errorf("tab bar missing %q: %q", name, out)
		}
	}
}

func TestRenderStatusBarWidth(t *testing.T) {
	bar := RenderStatusBar(60, " [q]uit", "v1")
	if got := lipgloss.Width(bar); got != 60 {
		t.Errorf("status bar width = %d, want 60", got)
	}
}
