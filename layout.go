package main

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bekirdag/folio/internal/input"
)

const (
	// rows above the page viewport: progress bar and navbar
	headerRows = 2
	footerRows = 1
	pageMargin = 2

	mobileBreakpoint = 72
	maxCardWidth     = 72
)

const (
	boxHeroWork       = "hero.work"
	boxHeroContact    = "hero.contact"
	boxSkills         = "skills"
	boxProjects       = "projects"
	boxTimeline       = "timeline"
	boxContactName    = "contact.name"
	boxContactEmail   = "contact.email"
	boxContactMessage = "contact.message"
	boxContactSend    = "contact.send"
)

func boxCard(i int) string { return fmt.Sprintf("project.%d", i) }

// rendered is one block's lines plus the boxes it placed, relative to the
// block's first row.
type rendered struct {
	lines []string
	boxes map[string]input.Rect
}

func (r *rendered) add(lines ...string) {
	r.lines = append(r.lines, lines...)
}

// addBlock appends a multi-line lipgloss render indented by left cells.
func (r *rendered) addBlock(left int, block string) {
	pad := strings.Repeat(" ", max(left, 0))
	for _, line := range strings.Split(block, "\n") {
		r.lines = append(r.lines, pad+line)
	}
}

// mark records a box that starts on the next row to be added.
func (r *rendered) mark(name string, left, width, height int) {
	if r.boxes == nil {
		r.boxes = map[string]input.Rect{}
	}
	r.boxes[name] = input.Rect{
		Left:   float64(left),
		Top:    float64(len(r.lines)),
		Width:  float64(width),
		Height: float64(height),
	}
}

// markSpan records a full-width box from row start to the last added row.
func (r *rendered) markSpan(name string, start, width int) {
	if r.boxes == nil {
		r.boxes = map[string]input.Rect{}
	}
	r.boxes[name] = input.Rect{
		Top:    float64(start),
		Width:  float64(width),
		Height: float64(len(r.lines) - start),
	}
}

type block struct {
	id     string
	top    int
	height int
	render func() rendered
}

type navHit struct {
	from, to int
	section  string
}

// pageLayout is the geometry of the document for one terminal size and one
// content revision. Renders must keep every block at its measured height.
type pageLayout struct {
	width      int
	viewHeight int
	height     int
	blocks     []block
	boxes      map[string]input.Rect
	nav        []navHit
}

func (l *pageLayout) viewport() input.Viewport {
	return input.Viewport{
		Width:          float64(l.width),
		Height:         float64(l.viewHeight),
		DocumentHeight: float64(l.height),
	}
}

func (l *pageLayout) box(name string) input.Rect {
	return l.boxes[name]
}

func (l *pageLayout) blockByID(id string) (block, bool) {
	for _, b := range l.blocks {
		if b.id == id {
			return b, true
		}
	}
	return block{}, false
}

// measure renders every block once to fix heights and document positions.
func (l *pageLayout) measure() {
	l.boxes = map[string]input.Rect{}
	top := 0
	for i := range l.blocks {
		r := l.blocks[i].render()
		l.blocks[i].top = top
		l.blocks[i].height = len(r.lines)
		for name, rect := range r.boxes {
			l.boxes[name] = rect.Shift(0, float64(top))
		}
		top += len(r.lines)
	}
	l.height = top
}

// compose renders the blocks visible from scroll into viewHeight rows.
func (l *pageLayout) compose(scroll int) []string {
	out := make([]string, l.viewHeight)
	for _, b := range l.blocks {
		if b.top+b.height <= scroll || b.top >= scroll+l.viewHeight {
			continue
		}
		lines := fitLines(b.render().lines, b.height)
		for i, line := range lines {
			row := b.top + i - scroll
			if row >= 0 && row < l.viewHeight {
				out[row] = line
			}
		}
	}
	return out
}

// sectionAt returns the navigation section the reader is in.
func (l *pageLayout) sectionAt(scroll int) string {
	current := ""
	probe := scroll + l.viewHeight/3
	for _, b := range l.blocks {
		if b.id != "" && b.top <= probe {
			current = b.id
		}
	}
	return current
}

func fitLines(lines []string, height int) []string {
	if len(lines) >= height {
		return lines[:height]
	}
	out := make([]string, height)
	copy(out, lines)
	return out
}

type placement struct {
	x    int
	text string
}

// placeRow lays items out on one row at their cell positions. Items that
// would overlap are pushed right.
func placeRow(items ...placement) string {
	sort.SliceStable(items, func(i, j int) bool { return items[i].x < items[j].x })
	var b strings.Builder
	cursor := 0
	for _, it := range items {
		x := max(it.x, cursor)
		b.WriteString(strings.Repeat(" ", x-cursor))
		b.WriteString(it.text)
		cursor = x + lipgloss.Width(it.text)
	}
	return b.String()
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func roundInt(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}
