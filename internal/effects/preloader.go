package effects

import (
	"time"

	"github.com/bekirdag/folio/internal/motion"
)

// PreloaderState is the phase of the loading screen.
type PreloaderState int

const (
	PreloaderLoading PreloaderState = iota
	PreloaderExiting
	PreloaderDone
)

func (s PreloaderState) String() string {
	switch s {
	case PreloaderLoading:
		return "loading"
	case PreloaderExiting:
		return "exiting"
	case PreloaderDone:
		return "done"
	default:
		return "unknown"
	}
}

// Preloader counts to 100 one tick at a time, waits a beat, then plays an
// exit animation.
//
//	loading(p) --tick--> loading(p+1)
//	loading(100) --delay--> exiting      OnFinish
//	exiting --exit animation--> done     OnDone
type Preloader struct {
	// OnFinish fires once, when the post-completion delay has elapsed.
	OnFinish func()
	// OnDone fires once, when the exit animation has completed.
	OnDone func()

	cfg     PreloaderSettings
	state   PreloaderState
	percent int
	tickAcc time.Duration
	waited  time.Duration
	exitAcc time.Duration
	exit    *motion.Value
}

func NewPreloader(cfg PreloaderSettings) *Preloader {
	if cfg.Tick <= 0 {
		cfg.Tick = 30 * time.Millisecond
	}
	return &Preloader{
		cfg:  cfg,
		exit: motion.NewValue("preloader.exit", 0),
	}
}

func (p *Preloader) State() PreloaderState { return p.state }

func (p *Preloader) Percent() int { return p.percent }

// Exit is the exit animation progress in [0, 1].
func (p *Preloader) Exit() *motion.Value { return p.exit }

// Tick advances the counter by one percent while loading.
func (p *Preloader) Tick() {
	if p.state == PreloaderLoading && p.percent < 100 {
		p.percent++
	}
}

// Advance moves the machine forward by d of wall time.
func (p *Preloader) Advance(d time.Duration) {
	for d > 0 && p.state != PreloaderDone {
		d = p.step(d)
	}
}

// step consumes as much of d as the current state can use and returns the
// remainder.
func (p *Preloader) step(d time.Duration) time.Duration {
	switch p.state {
	case PreloaderLoading:
		if p.percent < 100 {
			need := p.cfg.Tick - p.tickAcc
			if d < need {
				p.tickAcc += d
				return 0
			}
			p.tickAcc = 0
			p.Tick()
			return d - need
		}
		need := p.cfg.Delay - p.waited
		if d < need {
			p.waited += d
			return 0
		}
		p.waited = p.cfg.Delay
		p.state = PreloaderExiting
		if p.OnFinish != nil {
			p.OnFinish()
		}
		return d - need
	case PreloaderExiting:
		need := p.cfg.Exit - p.exitAcc
		if d < need {
			p.exitAcc += d
			p.exit.Set(float64(p.exitAcc) / float64(p.cfg.Exit))
			return 0
		}
		p.exitAcc = p.cfg.Exit
		p.exit.Set(1)
		p.state = PreloaderDone
		if p.OnDone != nil {
			p.OnDone()
		}
		return 0
	}
	return 0
}

// Skip jumps straight to done, firing any notification not yet sent.
func (p *Preloader) Skip() {
	if p.state == PreloaderDone {
		return
	}
	p.percent = 100
	if p.state == PreloaderLoading {
		p.state = PreloaderExiting
		if p.OnFinish != nil {
			p.OnFinish()
		}
	}
	p.exit.Set(1)
	p.state = PreloaderDone
	if p.OnDone != nil {
		p.OnDone()
	}
}
