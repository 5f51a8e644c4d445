package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bekirdag/folio/internal/input"
)

func TestMarqueeWindowWrapsSeamlessly(t *testing.T) {
	words := []string{"React", "Go"}
	var lines []string
	for _, x := range []float64{-20, -32.5, -44.9} {
		w := marqueeWindow(words, 20, x)
		require.Len(t, []rune(w), 20)
		lines = append(lines, w)
	}
	// one wrap interval is exactly one unit, so both ends look the same
	assert.Equal(t, lines[0], lines[2])
	goldie.New(t).Assert(t, "marquee_window", []byte(strings.Join(lines, "\n")+"\n"))
}

func TestMarqueeWindowWithoutWords(t *testing.T) {
	assert.Equal(t, "    ", marqueeWindow(nil, 4, -30))
}

func TestMarqueeUnitCoversWidth(t *testing.T) {
	unit := marqueeUnit([]string{"Go"}, 100)
	assert.GreaterOrEqual(t, len([]rune(unit))*22, 1000)
	assert.True(t, strings.HasPrefix(unit, "Go"+marqueeSeparator))
}

func TestDropCellsKeepsEscapes(t *testing.T) {
	assert.Equal(t, "llo", dropCells("hello", 2))
	assert.Equal(t, "\x1b[1mllo\x1b[0m", dropCells("\x1b[1mhello\x1b[0m", 2))
	assert.Equal(t, "", dropCells("hi", 5))
	assert.Equal(t, "hi", dropCells("hi", 0))
}

func TestOverlayAt(t *testing.T) {
	assert.Equal(t, "ab"+ansiReset+"Xdef", overlayAt("abcdef", 2, "X"))
	assert.Equal(t, "ab  "+ansiReset+"X", overlayAt("ab", 4, "X"))
	assert.Equal(t, "abc", overlayAt("abc", -1, "X"))
}

func TestOverlayKeepsWideRuneColumns(t *testing.T) {
	assert.Equal(t, " 本語", dropCells("日本語", 1))
	assert.Equal(t, "本語", dropCells("日本語", 2))

	for x := 0; x < 5; x++ {
		got := overlayAt("日本語", x, "x")
		assert.Equal(t, 6, lipgloss.Width(got), "glyph at %d", x)
	}
	assert.Equal(t, ansiReset+"x 本語", overlayAt("日本語", 0, "x"))
}

func TestPlaceRowPushesOverlaps(t *testing.T) {
	got := placeRow(placement{x: 3, text: "cd"}, placement{x: 2, text: "ab"})
	assert.Equal(t, "  abcd", got)
	assert.Equal(t, "a  b", placeRow(placement{x: 0, text: "a"}, placement{x: 3, text: "b"}))
}

func TestGradientBarWidth(t *testing.T) {
	track := lipgloss.NewStyle()
	for _, fill := range []float64{-1, 0, 0.37, 1, 2} {
		assert.Equal(t, 30, lipgloss.Width(renderGradientBar(accentGradient, 30, fill, "━", track)), "fill %v", fill)
	}
	assert.Empty(t, renderGradientBar(accentGradient, 0, 1, "━", track))
}

func TestGradientEnds(t *testing.T) {
	g := newGradient("#000000", "#ffffff")
	assert.Equal(t, "#000000", g.at(0).Hex())
	assert.Equal(t, "#ffffff", g.at(1).Hex())
	assert.Equal(t, "#ffffff", g.at(3).Hex())
	single := newGradient("not a color")
	assert.Equal(t, "#ffffff", single.at(0.5).Hex())
}

func TestGlowLine(t *testing.T) {
	assert.Equal(t, 20, lipgloss.Width(glowLine(20, 0, 10, 0, 4)))
	assert.Equal(t, strings.Repeat(" ", 20), glowLine(20, 10, 10, 0, 4))
	assert.Equal(t, strings.Repeat(" ", 5), glowLine(5, 0, 0, 0, 0))
}

func TestShear(t *testing.T) {
	lines := []string{"a", "b", "c"}
	assert.Equal(t, []string{"    a", "    b", "    c"}, shear(lines, 2, 0, 10))
	assert.Equal(t, []string{" a", "  b", "   c"}, shear(lines, 2, 10, 0))
	assert.Equal(t, []string{"a"}, shear([]string{"a"}, -4, 0, 0))
}

func TestHeroFade(t *testing.T) {
	assert.Equal(t, 0, heroFade(1))
	assert.Equal(t, 1, heroFade(0.5))
	assert.Equal(t, 2, heroFade(0.1))
}

func TestPageLayoutMeasureAndCompose(t *testing.T) {
	lines := func(prefix string, n int) func() rendered {
		return func() rendered {
			var r rendered
			r.mark(prefix, 1, 4, 2)
			for i := 0; i < n; i++ {
				r.add(prefix)
			}
			return r
		}
	}
	l := pageLayout{
		width:      10,
		viewHeight: 4,
		blocks: []block{
			{id: "a", render: lines("a", 3)},
			{render: lines("-", 1)},
			{id: "b", render: lines("b", 5)},
		},
	}
	l.measure()

	assert.Equal(t, 9, l.height)
	assert.Equal(t, input.Rect{Left: 1, Top: 4, Width: 4, Height: 2}, l.box("b"))
	assert.Equal(t, input.Viewport{Width: 10, Height: 4, DocumentHeight: 9}, l.viewport())
	assert.Equal(t, []string{"a", "-", "b", "b"}, l.compose(2))
	assert.Equal(t, "a", l.sectionAt(0))
	assert.Equal(t, "b", l.sectionAt(3))

	b, ok := l.blockByID("b")
	require.True(t, ok)
	assert.Equal(t, 4, b.top)
	_, ok = l.blockByID("missing")
	assert.False(t, ok)
}

func TestFitLines(t *testing.T) {
	assert.Equal(t, []string{"a", ""}, fitLines([]string{"a"}, 2))
	assert.Equal(t, []string{"a"}, fitLines([]string{"a", "b"}, 1))
}
