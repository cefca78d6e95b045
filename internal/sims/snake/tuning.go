package snake

import (
	"fmt"
	"sync"

	"ledframe/internal/core"
)

// Candidate is one configuration evaluated by Sweep.
type Candidate struct {
	Label  string
	Config Config
}

// SweepResult pairs a candidate with the statistics of its headless run.
type SweepResult struct {
	Candidate Candidate
	Stats     Stats
	Err       error
}

// WinRate is the share of finished episodes that filled the board.
func (r SweepResult) WinRate() float64 {
	if r.Stats.Episodes == 0 {
		return 0
	}
	return float64(r.Stats.Wins) / float64(r.Stats.Episodes)
}

// Evaluate plays cfg headlessly until episodes have finished or maxTicks
// frames have been rendered. Zero maxTicks allows area squared ticks per
// episode, enough for a tour-following snake to fill the board.
func Evaluate(cfg Config, episodes, maxTicks int) (Stats, error) {
	if episodes <= 0 {
		return Stats{}, fmt.Errorf("%w: episodes %d", ErrBadConfig, episodes)
	}
	cfg.Episodes = episodes
	c, err := New(cfg)
	if err != nil {
		return Stats{}, err
	}
	if maxTicks <= 0 {
		area := cfg.Width * cfg.Height
		maxTicks = episodes * (area*area + cfg.Params.FlashFrames + cfg.Params.WinFrames)
	}
	sink := core.NewFrameBuffer(cfg.Width * cfg.Height)
	for i := 0; i < maxTicks && !c.Done(); i++ {
		if err := c.Step(sink, 0); err != nil {
			return c.Stats(), err
		}
	}
	return c.Stats(), nil
}

// Candidates expands base across every combination of the option lists. Empty
// lists keep the base value.
func Candidates(base Config, strategies []Strategy, buffers []int, fills []float64, flood []bool) []Candidate {
	if len(strategies) == 0 {
		strategies = []Strategy{base.Strategy}
	}
	if len(buffers) == 0 {
		buffers = []int{base.Params.Buffer}
	}
	if len(fills) == 0 {
		fills = []float64{base.Params.ShortcutFill}
	}
	if len(flood) == 0 {
		flood = []bool{base.Params.FloodCheck}
	}
	var out []Candidate
	for _, s := range strategies {
		for _, b := range buffers {
			for _, f := range fills {
				for _, fc := range flood {
					cfg := base
					cfg.Strategy = s
					cfg.Params.Buffer = b
					cfg.Params.ShortcutFill = f
					cfg.Params.FloodCheck = fc
					out = append(out, Candidate{
						Label:  fmt.Sprintf("%s buffer=%d fill=%.2f flood=%t", s, b, f, fc),
						Config: cfg,
					})
				}
			}
		}
	}
	return out
}

// Sweep evaluates candidates on workers goroutines. Results come back in
// candidate order. Each run owns its controller, so nothing is shared.
func Sweep(cands []Candidate, episodes, maxTicks, workers int) []SweepResult {
	if workers < 1 {
		workers = 1
	}
	type job struct {
		idx  int
		cand Candidate
	}
	jobs := make(chan job)
	results := make([]SweepResult, len(cands))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				st, err := Evaluate(j.cand.Config, episodes, maxTicks)
				results[j.idx] = SweepResult{Candidate: j.cand, Stats: st, Err: err}
			}
		}()
	}
	for i, c := range cands {
		jobs <- job{idx: i, cand: c}
	}
	close(jobs)
	wg.Wait()
	return results
}
