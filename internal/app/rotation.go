package app

import (
	"errors"
	"time"

	"ledframe/internal/core"
)

// Rotation plays routines in turn for the window player. Each routine runs
// until it reports Done, or until the -frames or -duration bound is hit.
// Then the next one starts. A single routine ends the rotation instead of
// restarting, like the terminal playlist.
type Rotation struct {
	routines []core.Routine
	idx      int
	frames   int
	limit    int
	duration time.Duration
	started  time.Time
	seed     int64
	now      func() time.Time
}

// NewRotation resets the first routine and starts its bounds. A nil now
// uses the wall clock.
func NewRotation(rs []core.Routine, cfg Config, now func() time.Time) (*Rotation, error) {
	if len(rs) == 0 {
		return nil, errors.New("rotation needs at least one routine")
	}
	if now == nil {
		now = time.Now
	}
	r := &Rotation{routines: rs, limit: cfg.Frames, duration: cfg.Duration, seed: cfg.Seed, now: now}
	r.start(0)
	return r, nil
}

func (r *Rotation) start(i int) {
	r.idx = i
	r.frames = 0
	r.started = r.now()
	r.routines[i].Reset(r.seed)
}

// Current returns the routine on screen.
func (r *Rotation) Current() core.Routine { return r.routines[r.idx] }

// Restart resets the current routine with seed and restarts its bounds.
// Later routines are reset with the same seed.
func (r *Rotation) Restart(seed int64) {
	r.seed = seed
	r.start(r.idx)
}

// Advance counts one stepped frame against the current routine.
func (r *Rotation) Advance() { r.frames++ }

// Next returns the routine to step this frame, switching to the next one
// when the current routine is finished. It reports false once the rotation
// is over.
func (r *Rotation) Next() (core.Routine, bool) {
	if !r.finished() {
		return r.Current(), true
	}
	if len(r.routines) == 1 {
		return nil, false
	}
	r.start((r.idx + 1) % len(r.routines))
	return r.Current(), true
}

func (r *Rotation) finished() bool {
	switch {
	case r.Current().Done():
		return true
	case r.limit > 0 && r.frames >= r.limit:
		return true
	case r.duration > 0 && r.now().Sub(r.started) >= r.duration:
		return true
	}
	return false
}
