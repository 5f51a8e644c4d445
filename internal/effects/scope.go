// Package effects builds the page's decorative animations on top of the
// motion, input and frame packages. Every effect is opened against an Env,
// acquires its listeners up front, and gives them all back in Close.
package effects

import (
	"github.com/bekirdag/folio/internal/frame"
	"github.com/bekirdag/folio/internal/input"
)

// Env is what an effect may subscribe to.
type Env struct {
	Events *input.Events
	Loop   *frame.Loop
}

// Scope collects release funcs and runs them in reverse order exactly once.
type Scope struct {
	releases []func()
	closed   bool
}

// Defer registers fn to run on Close. After Close it runs fn immediately.
func (s *Scope) Defer(fn func()) {
	if fn == nil {
		return
	}
	if s.closed {
		fn()
		return
	}
	s.releases = append(s.releases, fn)
}

func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}

func (s *Scope) Closed() bool { return s.closed }

// Closer is anything an effect owns that must be released.
type Closer interface {
	Close()
}

// Own ties c's lifetime to the scope.
func (s *Scope) Own(c Closer) {
	s.Defer(c.Close)
}
