package effects

import (
	"fmt"

	"github.com/bekirdag/folio/internal/input"
	"github.com/bekirdag/folio/internal/motion"
)

// ScrollProgress is the eased page-progress bar.
type ScrollProgress struct {
	tracker *input.ScrollTracker
	scale   *motion.Spring
	scope   Scope
}

func OpenScrollProgress(env Env, cfg ProgressSettings) (*ScrollProgress, error) {
	tracker, err := input.TrackScroll(env.Events, input.ScrollOptions{Name: "page"})
	if err != nil {
		return nil, fmt.Errorf("scroll progress: %w", err)
	}
	p := &ScrollProgress{tracker: tracker}
	p.scope.Own(tracker)
	if p.scale, err = motion.NewSpring(env.Loop, tracker.Progress, cfg.Spring); err != nil {
		p.scope.Close()
		return nil, fmt.Errorf("scroll progress: %w", err)
	}
	p.scope.Own(p.scale)
	return p, nil
}

// ScaleX is the smoothed bar fill in [0, 1] for damped springs.
func (p *ScrollProgress) ScaleX() float64 { return p.scale.Get() }

// Raw is the unsmoothed progress.
func (p *ScrollProgress) Raw() float64 { return p.tracker.Progress.Get() }

func (p *ScrollProgress) Close() { p.scope.Close() }
