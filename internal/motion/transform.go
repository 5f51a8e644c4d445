package motion

import "math"

// Interval is an ordered pair; From may be greater than To.
type Interval struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
}

func Span(from, to float64) Interval { return Interval{From: from, To: to} }

// Interpolate maps x from domain into rng. Outside the domain the mapping
// extrapolates unless clamp is set. A zero-width domain maps everything to
// rng.From.
func Interpolate(x float64, domain, rng Interval, clamp bool) float64 {
	width := domain.To - domain.From
	if width == 0 {
		return rng.From
	}
	t := (x - domain.From) / width
	if clamp {
		t = Clamp01(t)
	}
	return rng.From + t*(rng.To-rng.From)
}

// Clamp01 limits x to [0, 1].
func Clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

// Wrap folds v into [lo, hi).
func Wrap(lo, hi, v float64) float64 {
	span := hi - lo
	if span == 0 {
		return lo
	}
	r := (v - lo) - span*math.Floor((v-lo)/span)
	if r >= span {
		r = 0
	}
	return lo + r
}

type transformOptions struct {
	clamp bool
	name  string
}

type TransformOption func(*transformOptions)

// WithClamp keeps the output inside the range.
func WithClamp() TransformOption {
	return func(o *transformOptions) { o.clamp = true }
}

// WithName overrides the derived value's name.
func WithName(name string) TransformOption {
	return func(o *transformOptions) { o.name = name }
}

// Derived is a value computed from a source on every change.
type Derived struct {
	out    *Value
	unsub  Unsubscribe
	closed bool
}

// Transform publishes source mapped from domain into rng.
func Transform(source *Value, domain, rng Interval, opts ...TransformOption) *Derived {
	o := transformOptions{name: source.Name() + ".transform"}
	for _, opt := range opts {
		opt(&o)
	}
	d := &Derived{out: NewValue(o.name, Interpolate(source.Get(), domain, rng, o.clamp))}
	d.unsub = source.Subscribe(func(x float64) {
		d.out.Set(Interpolate(x, domain, rng, o.clamp))
	})
	return d
}

func (d *Derived) Value() *Value { return d.out }

func (d *Derived) Get() float64 { return d.out.Get() }

func (d *Derived) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.unsub()
}
