package loop

import (
	"errors"
	"fmt"

	"ledframe/internal/core"
)

// Entry is one routine in a playlist.
type Entry struct {
	Name    string
	Config  map[string]string
	Options Options
}

// Playlist plays its entries in order, optionally starting over forever.
type Playlist struct {
	Entries []Entry
	Repeat  bool
	// Stop is polled between frames and between entries, and overrides the
	// entries' own Stop.
	Stop   func() bool
	Logger Logger
	// OnBuild, when set, sees each routine before it plays.
	OnBuild func(core.Routine)
}

// Run builds and plays each entry on sink. Construction and sizing errors
// stop the playlist; a routine that keeps failing is logged and skipped.
func (p Playlist) Run(sink core.Sink) ([]Result, error) {
	var results []Result
	if len(p.Entries) == 0 {
		return nil, nil
	}
	stopped := func() bool { return p.Stop != nil && p.Stop() }
	for {
		for _, e := range p.Entries {
			if stopped() {
				return results, nil
			}
			r, err := core.Build(e.Name, e.Config)
			if err != nil {
				return results, fmt.Errorf("playlist %s: %w", e.Name, err)
			}
			if p.OnBuild != nil {
				p.OnBuild(r)
			}
			opts := e.Options
			if p.Stop != nil {
				opts.Stop = p.Stop
			}
			if opts.Logger == nil {
				opts.Logger = p.Logger
			}
			res, err := Run(sink, r, opts)
			results = append(results, res)
			switch {
			case err == nil:
			case errors.Is(err, ErrTooManyErrors):
				if opts.Logger != nil {
					opts.Logger.Error(e.Name, res.RunID, err)
				}
			default:
				return results, fmt.Errorf("playlist %s: %w", e.Name, err)
			}
		}
		if !p.Repeat {
			return results, nil
		}
	}
}
