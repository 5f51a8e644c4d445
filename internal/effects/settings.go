package effects

import (
	"errors"
	"fmt"
	"time"

	"github.com/bekirdag/folio/internal/input"
	"github.com/bekirdag/folio/internal/motion"
)

// Settings is the typed configuration of every effect on the page. It is
// passed to each constructor; nothing reads it from global state.
type Settings struct {
	FPS        int                `yaml:"fps"`
	Scroll     ScrollSettings     `yaml:"scroll"`
	Cursor     CursorSettings     `yaml:"cursor"`
	Progress   ProgressSettings   `yaml:"progress"`
	Tilt       TiltSettings       `yaml:"tilt"`
	Magnetic   MagneticSettings   `yaml:"magnetic"`
	Marquee    MarqueeSettings    `yaml:"marquee"`
	Parallax   ParallaxSettings   `yaml:"parallax"`
	Reveal     RevealSettings     `yaml:"reveal"`
	Typewriter TypewriterSettings `yaml:"typewriter"`
	Preloader  PreloaderSettings  `yaml:"preloader"`
}

// ScrollSettings tunes the smooth page scroll.
type ScrollSettings struct {
	Spring motion.SpringConfig `yaml:"spring"`
	// WheelStep is the number of rows one wheel notch moves.
	WheelStep int `yaml:"wheel_step"`
}

type CursorSettings struct {
	Spring motion.SpringConfig `yaml:"spring"`
	Bias   input.Point         `yaml:"bias"`
}

type ProgressSettings struct {
	Spring motion.SpringConfig `yaml:"spring"`
}

type TiltSettings struct {
	Domain  motion.Interval `yaml:"domain"`
	RotateX motion.Interval `yaml:"rotate_x"`
	RotateY motion.Interval `yaml:"rotate_y"`
}

type MagneticSettings struct {
	Strength float64             `yaml:"strength"`
	Spring   motion.SpringConfig `yaml:"spring"`
}

type MarqueeSettings struct {
	// BaseVelocity is in percent of the strip per second; the sign sets
	// the resting direction.
	BaseVelocity float64             `yaml:"base_velocity"`
	Spring       motion.SpringConfig `yaml:"spring"`
	// VelocityDomain maps smoothed scroll velocity, in rows per second, onto
	// Boost.
	VelocityDomain motion.Interval `yaml:"velocity_domain"`
	Boost          motion.Interval `yaml:"boost"`
	Wrap           motion.Interval `yaml:"wrap"`
}

type ParallaxSettings struct {
	Offsets input.ScrollOffsets `yaml:"offsets"`
	Shift   float64             `yaml:"shift"`
	Fade    motion.Interval     `yaml:"fade"`
}

type RevealSettings struct {
	Spring motion.SpringConfig `yaml:"spring"`
}

type TypewriterSettings struct {
	Interval time.Duration `yaml:"interval"`
}

type PreloaderSettings struct {
	Tick  time.Duration `yaml:"tick"`
	Delay time.Duration `yaml:"delay"`
	Exit  time.Duration `yaml:"exit"`
}

// DefaultSettings mirrors the tuning of the web site, scaled to terminal
// cells where a pixel value made no sense.
func DefaultSettings() Settings {
	return Settings{
		FPS: 60,
		Scroll: ScrollSettings{
			Spring:    motion.SpringConfig{Stiffness: 170, Damping: 28, RestDelta: 0.05},
			WheelStep: 3,
		},
		Cursor: CursorSettings{
			Spring: motion.SpringConfig{Stiffness: 500, Damping: 28},
			Bias:   input.Point{X: -1, Y: -1},
		},
		Progress: ProgressSettings{
			Spring: motion.SpringConfig{Stiffness: 100, Damping: 30, RestDelta: 0.001},
		},
		Tilt: TiltSettings{
			Domain:  motion.Span(-20, 20),
			RotateX: motion.Span(10, -10),
			RotateY: motion.Span(-10, 10),
		},
		Magnetic: MagneticSettings{
			Strength: 0.3,
			Spring:   motion.SpringConfig{Stiffness: 150, Damping: 15},
		},
		Marquee: MarqueeSettings{
			BaseVelocity:   -4,
			Spring:         motion.SpringConfig{Stiffness: 400, Damping: 50},
			VelocityDomain: motion.Span(0, 60),
			Boost:          motion.Span(0, 5),
			Wrap:           motion.Span(-45, -20),
		},
		Parallax: ParallaxSettings{
			Offsets: input.OffsetsStartToEnd,
			Shift:   8,
			Fade:    motion.Span(0, 0.8),
		},
		Reveal: RevealSettings{
			Spring: motion.SpringConfig{Stiffness: 120, Damping: 22},
		},
		Typewriter: TypewriterSettings{Interval: 100 * time.Millisecond},
		Preloader: PreloaderSettings{
			Tick:  30 * time.Millisecond,
			Delay: 500 * time.Millisecond,
			Exit:  600 * time.Millisecond,
		},
	}
}

// Validate reports every invalid field at once.
func (s Settings) Validate() error {
	var errs []error
	springs := map[string]motion.SpringConfig{
		"cursor":   s.Cursor.Spring,
		"progress": s.Progress.Spring,
		"magnetic": s.Magnetic.Spring,
		"marquee":  s.Marquee.Spring,
		"reveal":   s.Reveal.Spring,
		"scroll":   s.Scroll.Spring,
	}
	for _, name := range []string{"scroll", "cursor", "progress", "magnetic", "marquee", "reveal"} {
		if err := springs[name].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if err := s.Parallax.Offsets.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("parallax: %w", err))
	}
	if s.Marquee.Wrap.From == s.Marquee.Wrap.To {
		errs = append(errs, errors.New("marquee: wrap interval is empty"))
	}
	if s.Scroll.WheelStep < 1 {
		errs = append(errs, errors.New("scroll: wheel step must be at least 1"))
	}
	if s.Typewriter.Interval <= 0 {
		errs = append(errs, errors.New("typewriter: interval must be positive"))
	}
	if s.Preloader.Tick <= 0 || s.Preloader.Delay < 0 || s.Preloader.Exit < 0 {
		errs = append(errs, errors.New("preloader: tick must be positive and delays non-negative"))
	}
	if s.FPS < 1 || s.FPS > 240 {
		errs = append(errs, fmt.Errorf("fps must be within 1..240, got %d", s.FPS))
	}
	return errors.Join(errs...)
}
