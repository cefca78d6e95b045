package snake

import (
	"fmt"

	"ledframe/internal/core"
)

// Parameters implements core.ParameterProvider.
func (c *Controller) Parameters() core.ParameterSnapshot {
	p := c.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Frame",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.cfg.Width),
				core.IntParam("h", "Height", c.cfg.Height),
				core.StringParam("wiring", "Wiring", c.cfg.Wiring.String()),
				core.Int64Param("seed", "Seed", c.cfg.Seed),
			},
		},
		{
			Name: "Planner",
			Params: []core.Parameter{
				core.StringParam("strategy", "Strategy", c.cfg.Strategy.String()),
				core.IntParam("buffer", "Shortcut buffer", p.Buffer),
				core.FloatParam("shortcut_fill", "Shortcut free share", p.ShortcutFill),
				core.BoolParam("flood_check", "Flood check", p.FloodCheck),
			},
		},
		{
			Name: "Trap Detector",
			Params: []core.Parameter{
				core.IntParam("history", "History", p.History),
				core.IntParam("window", "Window", p.Window),
				core.IntParam("period", "Max period", p.Period),
			},
		},
		{
			Name: "Episodes",
			Params: []core.Parameter{
				core.IntParam("episodes", "Episodes", c.cfg.Episodes),
				core.IntParam("stall_limit", "Stall limit", p.StallLimit),
				core.IntParam("flash_frames", "Flash frames", p.FlashFrames),
				core.IntParam("win_frames", "Win frames", p.WinFrames),
				core.BoolParam("random_start", "Random start", p.RandomStart),
			},
		},
	}}
}

// StatusLines summarises the run for overlays and logs.
func (c *Controller) StatusLines() []string {
	st := c.stats
	return []string{
		fmt.Sprintf("%s %s len %d", c.active, c.state, c.snake.Len()),
		fmt.Sprintf("ep %d won %d died %d", st.Episodes, st.Wins, st.Deaths),
		fmt.Sprintf("best %d last %s", st.BestLength, st.LastReason),
	}
}
