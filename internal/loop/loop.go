// Package loop hosts routines on a pixel sink: it paces frames, checks stop
// conditions once per tick and reports the start and finish of every run.
package loop

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ledframe/internal/core"
)

// ErrSinkSize is returned when the sink cannot hold the routine's grid.
var ErrSinkSize = errors.New("sink size does not match routine")

// ErrTooManyErrors is returned when a routine keeps failing frame after frame.
var ErrTooManyErrors = errors.New("routine failed repeatedly")

// Options controls a single Run.
type Options struct {
	// Delay is the inter-frame hold.
	Delay time.Duration
	// MaxFrames stops the run after this many frames; zero is unbounded.
	MaxFrames int
	// Duration stops the run once this much time has passed; zero is unbounded.
	Duration time.Duration
	// Seed is handed to Routine.Reset.
	Seed int64
	// Stop is polled once per frame.
	Stop func() bool
	// MaxErrors is the number of consecutive Step errors tolerated. Zero
	// means 3.
	MaxErrors int

	Logger Logger
	Pacer  *core.Pacer
	Now    func() time.Time
}

// Result describes a finished run.
type Result struct {
	RunID   string
	Frames  int
	Errors  int
	Elapsed time.Duration
}

// Run resets r and steps it on sink until r reports Done, a bound is hit or
// Stop returns true.
func Run(sink core.Sink, r core.Routine, opts Options) (Result, error) {
	res := Result{RunID: uuid.NewString()}
	size := r.Size()
	if want := size.W * size.H; sink.Len() != want {
		return res, fmt.Errorf("%w: %s needs %d leds, sink has %d", ErrSinkSize, r.Name(), want, sink.Len())
	}
	log := opts.Logger
	if log == nil {
		log = Discard
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	pacer := opts.Pacer
	if pacer == nil {
		pacer = core.NewPacer(opts.Delay)
	}
	maxErrors := opts.MaxErrors
	if maxErrors <= 0 {
		maxErrors = 3
	}

	if rep, ok := r.(core.EpisodeReporter); ok {
		if el, ok := log.(EpisodeLogger); ok {
			rep.OnEpisode(func(ep core.Episode) { el.Episode(r.Name(), res.RunID, ep) })
			defer rep.OnEpisode(nil)
		}
	}
	r.Reset(opts.Seed)
	params := map[string]string{}
	if pp, ok := r.(core.ParameterProvider); ok {
		params = pp.Parameters().Flatten()
	}
	log.Start(r.Name(), res.RunID, params)

	start := now()
	var err error
	streak := 0
	for {
		if opts.Stop != nil && opts.Stop() {
			break
		}
		if r.Done() {
			break
		}
		if opts.MaxFrames > 0 && res.Frames >= opts.MaxFrames {
			break
		}
		if opts.Duration > 0 && now().Sub(start) >= opts.Duration {
			break
		}
		if stepErr := r.Step(sink, pacer.Delay()); stepErr != nil {
			res.Errors++
			streak++
			log.Error(r.Name(), res.RunID, stepErr)
			if streak >= maxErrors {
				err = fmt.Errorf("%w: %s: %w", ErrTooManyErrors, r.Name(), stepErr)
				res.Frames++
				break
			}
		} else {
			streak = 0
		}
		res.Frames++
		pacer.Wait()
	}
	res.Elapsed = now().Sub(start)
	log.Finish(r.Name(), res.RunID, res.Frames, res.Elapsed)
	return res, err
}
