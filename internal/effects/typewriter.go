package effects

import "time"

// Typewriter reveals text one rune per interval.
type Typewriter struct {
	text     []rune
	interval time.Duration
	elapsed  time.Duration
	shown    int
}

func NewTypewriter(text string, cfg TypewriterSettings) *Typewriter {
	interval := cfg.Interval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Typewriter{text: []rune(text), interval: interval}
}

// Advance moves time forward and reports whether the visible text changed.
func (t *Typewriter) Advance(d time.Duration) bool {
	if t.Done() || d <= 0 {
		return false
	}
	t.elapsed += d
	n := int(t.elapsed / t.interval)
	if n > len(t.text) {
		n = len(t.text)
	}
	if n == t.shown {
		return false
	}
	t.shown = n
	return true
}

func (t *Typewriter) Visible() string { return string(t.text[:t.shown]) }

func (t *Typewriter) Done() bool { return t.shown >= len(t.text) }

// Reset restarts typing, optionally with new text.
func (t *Typewriter) Reset(text string) {
	t.text = []rune(text)
	t.elapsed = 0
	t.shown = 0
}
