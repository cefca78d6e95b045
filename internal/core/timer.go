package core

import "time"

// Pacer holds the run loop for the configured inter-frame delay. The delay is
// a scheduling pause only; it carries no cancellation state.
type Pacer struct {
	delay time.Duration
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer constructs a Pacer targeting one frame per delay.
func NewPacer(delay time.Duration) *Pacer {
	return NewPacerWith(delay, time.Now, time.Sleep)
}

// NewPacerWith lets tests supply the clock and sleep functions.
func NewPacerWith(delay time.Duration, now func() time.Time, sleep func(time.Duration)) *Pacer {
	if delay < 0 {
		delay = 0
	}
	return &Pacer{delay: delay, now: now, sleep: sleep}
}

// Delay returns the configured frame delay.
func (p *Pacer) Delay() time.Duration { return p.delay }

// Wait sleeps for whatever is left of the delay since the previous Wait and
// returns the time elapsed since then.
func (p *Pacer) Wait() time.Duration {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	spent := now.Sub(p.last)
	if remaining := p.delay - spent; remaining > 0 {
		p.sleep(remaining)
		now = p.now()
	}
	elapsed := now.Sub(p.last)
	p.last = now
	return elapsed
}
