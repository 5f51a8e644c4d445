package motion

import (
	"math"

	"github.com/bekirdag/folio/internal/frame"
)

// minSampleInterval is the shortest interval, in seconds, a derivative is
// taken over. Shorter gaps keep the previous velocity.
const minSampleInterval = 0.001

// Velocity publishes the rate of change of a source value in units per
// second, sampled once per frame.
type Velocity struct {
	source *Value
	out    *Value
	slot   *frame.Slot
	unsub  Unsubscribe

	prevValue float64
	prevTS    float64
	primed    bool
	dirty     bool
	running   bool
	closed    bool
}

func NewVelocity(loop *frame.Loop, source *Value) *Velocity {
	v := &Velocity{
		source:    source,
		out:       NewValue(source.Name()+".velocity", 0),
		slot:      loop.Slot(),
		prevValue: source.Get(),
	}
	v.unsub = source.Subscribe(func(float64) {
		v.dirty = true
		v.wake()
	})
	return v
}

func (v *Velocity) Value() *Value { return v.out }

func (v *Velocity) Get() float64 { return v.out.Get() }

// Idle reports whether sampling has stopped because nothing moves.
func (v *Velocity) Idle() bool { return !v.running }

// Close stops sampling and detaches from the source.
func (v *Velocity) Close() {
	if v.closed {
		return
	}
	v.closed = true
	v.unsub()
	v.running = false
	v.slot.Cancel()
}

func (v *Velocity) wake() {
	if v.closed || v.running {
		return
	}
	v.running = true
	v.primed = false
	v.slot.Request(v.frame)
}

func (v *Velocity) frame(ts float64) {
	if v.closed {
		return
	}
	v.Sample(ts)
	if v.out.Get() == 0 && !v.dirty && v.primed {
		v.running = false
		return
	}
	v.dirty = false
	v.slot.Request(v.frame)
}

// Sample takes one derivative measurement at ts milliseconds.
func (v *Velocity) Sample(ts float64) {
	current := v.source.Get()
	if !v.primed {
		// no reliable interval exists for the change that woke us
		v.primed = true
		v.prevValue = current
		v.prevTS = ts
		return
	}
	dt := (ts - v.prevTS) / 1000
	if dt < minSampleInterval || math.IsNaN(dt) {
		return
	}
	v.out.Set((current - v.prevValue) / dt)
	v.prevValue = current
	v.prevTS = ts
}
