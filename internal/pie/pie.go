// Package pie computes the angular geometry of the category pie chart
// and answers point-in-segment queries for hover tooltips. It knows
// nothing about terminals; the rasterization lives in the TUI components.
package pie

import (
	"fmt"
	"math"

	"github.com/keerthivasan18-r/ExpenseTracker/internal/cli"
	"github.com/keerthivasan18-r/ExpenseTracker/internal/stats"
)

// startOffset puts the first segment boundary at 12 o'clock.
const startOffset = -math.Pi / 2

// Segment is one angular slice of the chart. Segments of a single build
// share the same center and radius and partition [-π/2, -π/2+2π)
// contiguously in category order.
type Segment struct {
	Category stats.CategoryTotal
	Start    float64
	End      float64
	CenterX  float64
	CenterY  float64
	Radius   float64
}

// BuildSegments converts category totals into contiguous segments whose
// spans are proportional to each category's share. A non-positive grand
// total yields no segments.
func BuildSegments(totals []stats.CategoryTotal, centerX, centerY, radius float64) []Segment {
	grand := stats.Sum(totals)
	if grand <= 0 {
		return nil
	}

	segments := make([]Segment, 0, len(totals))
	start := startOffset
	for _, t := range totals {
		end := start + t.Total/grand*2*math.Pi
		segments = append(segments, Segment{
			Category: t,
			Start:    start,
			End:      end,
			CenterX:  centerX,
			CenterY:  centerY,
			Radius:   radius,
		})
		start = end
	}
	return segments
}

// HitTest returns the segment containing the point (x, y), or false when
// the point is outside the chart radius or no segment spans its angle.
func HitTest(segments []Segment, x, y float64) (Segment, bool) {
	if len(segments) == 0 {
		return Segment{}, false
	}

	dx := x - segments[0].CenterX
	dy := y - segments[0].CenterY
	if math.Hypot(dx, dy) > segments[0].Radius {
		return Segment{}, false
	}

	angle := math.Atan2(dy, dx)
	if angle < startOffset {
		angle += 2 * math.Pi
	}

	for _, s := range segments {
		if angle >= s.Start && angle <= s.End {
			return s, true
		}
	}
	return Segment{}, false
}

// Tooltip renders the hover text for a segment given the grand total,
// e.g. "Food: ₹50 (50%)".
func Tooltip(s Segment, grandTotal float64) string {
	percent := 0
	if grandTotal > 0 {
		percent = int(math.Round(s.Category.Total / grandTotal * 100))
	}
	return fmt.Sprintf("%s: %s (%s)",
		s.Category.Category, cli.FormatRupees(s.Category.Total), cli.FormatPercent(percent))
}
