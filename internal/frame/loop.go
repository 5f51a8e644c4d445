// Package frame drives per-frame callbacks for animations. A Loop does not
// own a timer: whoever owns the display calls Tick once per frame.
package frame

import "sort"

// Callback receives the frame timestamp in milliseconds.
type Callback func(timestamp float64)

// Handle identifies a pending registration. The zero Handle is never issued.
type Handle uint64

// Loop holds callbacks waiting for the next frame.
type Loop struct {
	next    Handle
	pending map[Handle]Callback
	closed  bool
	last    float64
	ticks   int
}

func NewLoop() *Loop {
	return &Loop{pending: make(map[Handle]Callback)}
}

// Schedule arranges for cb to run once on the next Tick. It returns 0 when
// the loop is closed.
func (l *Loop) Schedule(cb Callback) Handle {
	if l.closed || cb == nil {
		return 0
	}
	l.next++
	l.pending[l.next] = cb
	return l.next
}

// Cancel prevents a pending invocation. Unknown or already-run handles are
// ignored.
func (l *Loop) Cancel(h Handle) {
	delete(l.pending, h)
}

// Pending reports how many callbacks are waiting for the next frame.
func (l *Loop) Pending() int {
	return len(l.pending)
}

// Active is true while at least one callback waits for a frame.
func (l *Loop) Active() bool {
	return !l.closed && len(l.pending) > 0
}

// Last returns the timestamp of the most recent Tick.
func (l *Loop) Last() float64 {
	return l.last
}

// Ticks counts frames run since the loop was created.
func (l *Loop) Ticks() int {
	return l.ticks
}

// Tick runs every callback that was pending when the tick started, in
// registration order. Callbacks scheduled while the tick runs wait for the
// next one. It returns the number of callbacks invoked.
func (l *Loop) Tick(timestamp float64) int {
	if l.closed {
		return 0
	}
	l.last = timestamp
	l.ticks++
	if len(l.pending) == 0 {
		return 0
	}
	handles := make([]Handle, 0, len(l.pending))
	for h := range l.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	ran := 0
	for _, h := range handles {
		cb, ok := l.pending[h]
		if !ok {
			// cancelled by an earlier callback in this frame
			continue
		}
		delete(l.pending, h)
		cb(timestamp)
		ran++
		if l.closed {
			break
		}
	}
	return ran
}

// Close drops every pending callback and refuses new ones.
func (l *Loop) Close() {
	l.closed = true
	l.pending = make(map[Handle]Callback)
}

// Closed reports whether Close was called.
func (l *Loop) Closed() bool {
	return l.closed
}

// Slot is a single registration owned by one component. Requesting a frame
// while one is already pending replaces it, so an owner never has two
// callbacks queued.
type Slot struct {
	loop   *Loop
	handle Handle
}

func (l *Loop) Slot() *Slot {
	return &Slot{loop: l}
}

// Request schedules cb for the next frame, replacing any pending request.
func (s *Slot) Request(cb Callback) {
	s.Cancel()
	var h Handle
	h = s.loop.Schedule(func(ts float64) {
		if s.handle == h {
			s.handle = 0
		}
		cb(ts)
	})
	s.handle = h
}

// Cancel drops the pending request, if any.
func (s *Slot) Cancel() {
	if s.handle != 0 {
		s.loop.Cancel(s.handle)
		s.handle = 0
	}
}

// Pending reports whether a request is waiting for the next frame.
func (s *Slot) Pending() bool {
	return s.handle != 0
}
