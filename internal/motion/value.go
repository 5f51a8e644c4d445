// Package motion holds observable scalars and the filters derived from them:
// springs, velocities and linear transforms. Values are owned by a single
// goroutine (the UI loop) and are not safe for concurrent use.
package motion

import "math"

// Unsubscribe removes a subscriber. Calling it more than once is a no-op.
type Unsubscribe func()

type subscriber struct {
	id     int
	fn     func(float64)
	active bool
}

// Value is a named scalar that notifies subscribers when it changes.
type Value struct {
	name    string
	current float64
	subs    []*subscriber
	nextID  int
}

func NewValue(name string, initial float64) *Value {
	if !finite(initial) {
		initial = 0
	}
	return &Value{name: name, current: initial}
}

func (v *Value) Name() string { return v.name }

func (v *Value) Get() float64 { return v.current }

// Set stores x and notifies current subscribers synchronously. Setting the
// current value again, or a non-finite value, does nothing.
func (v *Value) Set(x float64) {
	if !finite(x) || x == v.current {
		return
	}
	v.current = x
	v.notify()
}

// Subscribe registers fn for every subsequent change.
func (v *Value) Subscribe(fn func(float64)) Unsubscribe {
	v.nextID++
	s := &subscriber{id: v.nextID, fn: fn, active: true}
	v.subs = append(v.subs, s)
	return func() {
		if !s.active {
			return
		}
		s.active = false
		for i, other := range v.subs {
			if other == s {
				v.subs = append(v.subs[:i], v.subs[i+1:]...)
				break
			}
		}
	}
}

// SubscriberCount reports live subscriptions.
func (v *Value) SubscriberCount() int {
	return len(v.subs)
}

func (v *Value) notify() {
	if len(v.subs) == 0 {
		return
	}
	snapshot := make([]*subscriber, len(v.subs))
	copy(snapshot, v.subs)
	for _, s := range snapshot {
		// a subscriber removed by an earlier callback must not run
		if s.active {
			s.fn(v.current)
		}
	}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
