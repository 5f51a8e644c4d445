package motion

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/bekirdag/folio/internal/frame"
)

// ErrInvalidSpring is returned for spring parameters that have no stable
// physical meaning.
var ErrInvalidSpring = errors.New("invalid spring config")

const (
	DefaultRestDelta = 0.01

	// frame deltas are clamped so a stalled terminal does not fling values
	maxFrameDelta     = 0.040
	defaultFrameDelta = 1.0 / 60
)

// SpringConfig tunes a damped follower. Stiffness and Damping are per unit
// mass.
type SpringConfig struct {
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
	RestDelta float64 `yaml:"rest_delta,omitempty"`
}

// Validate rejects non-positive or non-finite parameters.
func (c SpringConfig) Validate() error {
	if !finite(c.Stiffness) || c.Stiffness <= 0 {
		return fmt.Errorf("%w: stiffness must be positive, got %v", ErrInvalidSpring, c.Stiffness)
	}
	if !finite(c.Damping) || c.Damping <= 0 {
		return fmt.Errorf("%w: damping must be positive, got %v", ErrInvalidSpring, c.Damping)
	}
	if !finite(c.RestDelta) || c.RestDelta < 0 {
		return fmt.Errorf("%w: rest delta must not be negative, got %v", ErrInvalidSpring, c.RestDelta)
	}
	return nil
}

func (c SpringConfig) withDefaults() SpringConfig {
	if c.RestDelta == 0 {
		c.RestDelta = DefaultRestDelta
	}
	return c
}

// CriticalDamping is the smallest damping that never overshoots for the
// given stiffness.
func CriticalDamping(stiffness float64) float64 {
	return 2 * math.Sqrt(stiffness)
}

// Spring publishes a value that follows its source like a damped harmonic
// oscillator. It sleeps once at rest and wakes on the next source change.
type Spring struct {
	cfg      SpringConfig
	source   *Value
	out      *Value
	target   float64
	position float64
	velocity float64

	slot    *frame.Slot
	lastTS  float64
	running bool
	unsub   Unsubscribe
	closed  bool
	angular float64
	ratio   float64
}

// NewSpring attaches a follower to source. Frames are requested from loop
// only while the follower is in motion.
func NewSpring(loop *frame.Loop, source *Value, cfg SpringConfig) (*Spring, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	start := source.Get()
	s := &Spring{
		cfg:      cfg,
		source:   source,
		out:      NewValue(source.Name()+".spring", start),
		target:   start,
		position: start,
		slot:     loop.Slot(),
		angular:  math.Sqrt(cfg.Stiffness),
		ratio:    cfg.Damping / CriticalDamping(cfg.Stiffness),
	}
	s.unsub = source.Subscribe(s.retarget)
	return s, nil
}

// Value is the smoothed output.
func (s *Spring) Value() *Value { return s.out }

func (s *Spring) Get() float64 { return s.out.Get() }

func (s *Spring) Velocity() float64 { return s.velocity }

func (s *Spring) Target() float64 { return s.target }

func (s *Spring) Config() SpringConfig { return s.cfg }

// Idle reports whether the follower is at rest and not requesting frames.
func (s *Spring) Idle() bool { return !s.running }

// Jump moves the output straight to x and stops any motion.
func (s *Spring) Jump(x float64) {
	if s.closed || !finite(x) {
		return
	}
	s.target = x
	s.position = x
	s.velocity = 0
	s.sleep()
	s.out.Set(x)
}

// Close detaches from the source and drops any pending frame.
func (s *Spring) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.unsub()
	s.sleep()
}

func (s *Spring) retarget(x float64) {
	if s.closed {
		return
	}
	s.target = x
	if !s.running {
		s.running = true
		s.lastTS = math.NaN()
		s.slot.Request(s.frame)
	}
}

func (s *Spring) sleep() {
	s.running = false
	s.slot.Cancel()
}

func (s *Spring) frame(ts float64) {
	if s.closed || !s.running {
		return
	}
	dt := defaultFrameDelta
	if !math.IsNaN(s.lastTS) {
		dt = (ts - s.lastTS) / 1000
	}
	s.lastTS = ts
	if dt <= 0 {
		s.slot.Request(s.frame)
		return
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	s.Step(dt)
	if s.running {
		s.slot.Request(s.frame)
	}
}

// Step advances the follower by dt seconds. Frames call it; tests and
// offline tools may call it directly.
func (s *Spring) Step(dt float64) {
	if dt <= 0 || s.closed {
		return
	}
	// frame deltas rarely repeat, so the coefficients are rebuilt per step
	step := harmonica.NewSpring(dt, s.angular, s.ratio)
	s.position, s.velocity = step.Update(s.position, s.velocity, s.target)
	if math.Abs(s.target-s.position) < s.cfg.RestDelta && math.Abs(s.velocity) < s.cfg.RestDelta {
		s.position = s.target
		s.velocity = 0
		s.sleep()
	}
	s.out.Set(s.position)
}
