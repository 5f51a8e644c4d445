package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// gradient blends evenly spaced color stops.
type gradient struct {
	stops []colorful.Color
}

func newGradient(hexes ...string) gradient {
	var g gradient
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			continue
		}
		g.stops = append(g.stops, c)
	}
	if len(g.stops) == 0 {
		g.stops = []colorful.Color{{R: 1, G: 1, B: 1}}
	}
	return g
}

var (
	accentGradient = newGradient("#a855f7", "#6366f1", "#3b82f6")
	glowGradient   = newGradient("#030014", "#2a1f5c")
)

// at returns the blended color at t in [0, 1].
func (g gradient) at(t float64) colorful.Color {
	if len(g.stops) == 1 {
		return g.stops[0]
	}
	t = math.Max(0, math.Min(1, t))
	pos := t * float64(len(g.stops)-1)
	i := int(pos)
	if i >= len(g.stops)-1 {
		return g.stops[len(g.stops)-1]
	}
	return g.stops[i].BlendLab(g.stops[i+1], pos-float64(i)).Clamped()
}

func (g gradient) color(t float64) lipgloss.Color {
	return lipgloss.Color(g.at(t).Hex())
}

// renderGradientBar draws filled cells of a width-cell bar, colored along
// the gradient. Runs of equal color share one style.
func renderGradientBar(g gradient, width int, fill float64, glyph string, track lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	fill = math.Max(0, math.Min(1, fill))
	filled := int(math.Round(fill * float64(width)))
	var b strings.Builder
	const steps = 12
	run, runColor := 0, -1
	flush := func() {
		if run == 0 {
			return
		}
		style := lipgloss.NewStyle().Foreground(g.color(float64(runColor) / steps))
		b.WriteString(style.Render(strings.Repeat(glyph, run)))
		run = 0
	}
	for i := 0; i < filled; i++ {
		c := int(float64(i) / float64(width) * steps)
		if c != runColor {
			flush()
			runColor = c
		}
		run++
	}
	flush()
	if rest := width - filled; rest > 0 {
		b.WriteString(track.Render(strings.Repeat("─", rest)))
	}
	return b.String()
}

// glowLine renders a blank row tinted by a radial glow centered at (cx, cy)
// in cells. Cells beyond radius keep the plain background.
func glowLine(width, row int, cx, cy, radius float64) string {
	if width <= 0 {
		return ""
	}
	if radius <= 0 || math.Abs(float64(row)-cy) > radius {
		return strings.Repeat(" ", width)
	}
	const levels = 4
	var b strings.Builder
	run, runLevel := 0, -1
	flush := func() {
		if run == 0 {
			return
		}
		text := strings.Repeat(" ", run)
		if runLevel > 0 {
			style := lipgloss.NewStyle().Background(glowGradient.color(float64(runLevel) / levels))
			text = style.Render(text)
		}
		b.WriteString(text)
		run = 0
	}
	for x := 0; x < width; x++ {
		// cells are roughly twice as tall as wide
		dx := (float64(x) - cx) / 2
		dy := float64(row) - cy
		d := math.Sqrt(dx*dx+dy*dy) / radius
		level := 0
		if d < 1 {
			level = int(math.Ceil((1 - d) * levels))
		}
		if level != runLevel {
			flush()
			runLevel = level
		}
		run++
	}
	flush()
	return b.String()
}
