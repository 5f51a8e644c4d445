package effects

import (
	"fmt"

	"github.com/bekirdag/folio/internal/input"
	"github.com/bekirdag/folio/internal/motion"
)

// Parallax shifts and fades the hero as it scrolls out of view.
type Parallax struct {
	Y       *motion.Derived
	Opacity *motion.Derived

	tracker *input.ScrollTracker
	scope   Scope
}

// OpenParallax tracks section, given in document cells.
func OpenParallax(env Env, section func() input.Rect, cfg ParallaxSettings) (*Parallax, error) {
	tracker, err := input.TrackScroll(env.Events, input.ScrollOptions{
		Target:  section,
		Offsets: cfg.Offsets,
		Name:    "hero",
	})
	if err != nil {
		return nil, fmt.Errorf("parallax: %w", err)
	}
	p := &Parallax{tracker: tracker}
	p.scope.Own(tracker)
	p.Y = motion.Transform(tracker.Progress, motion.Span(0, 1), motion.Span(0, cfg.Shift), motion.WithName("hero.y"))
	p.Opacity = motion.Transform(tracker.Progress, cfg.Fade, motion.Span(1, 0), motion.WithClamp(), motion.WithName("hero.opacity"))
	p.scope.Own(p.Y)
	p.scope.Own(p.Opacity)
	return p, nil
}

// Progress is how far the hero has scrolled past, in [0, 1].
func (p *Parallax) Progress() float64 { return p.tracker.Progress.Get() }

func (p *Parallax) Close() { p.scope.Close() }
