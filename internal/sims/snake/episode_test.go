package snake

import (
	"errors"
	"testing"
	"time"

	"ledframe/internal/core"
	"ledframe/internal/loop"
	"ledframe/internal/matrix"
)

func newController(t *testing.T, mutate func(*Config)) *Controller {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

// place replaces the current episode's board.
func place(t *testing.T, c *Controller, body []Cell, facing Direction, food Cell) {
	t.Helper()
	s, err := NewSnake(c.cfg.Width, c.cfg.Height, body, facing)
	if err != nil {
		t.Fatalf("NewSnake: %v", err)
	}
	c.snake = s
	c.grid = NewGrid(c.cfg.Width, c.cfg.Height)
	c.grid.Bind(s, food, true)
	c.history.Reset()
	c.state = Running
	c.sinceFood = 0
}

type countingSink struct {
	*core.FrameBuffer
	calls int
	fail  int
}

func (s *countingSink) Flush() error {
	s.calls++
	if s.fail > 0 {
		s.fail--
		return errors.New("bus error")
	}
	return s.FrameBuffer.Flush()
}

func TestControllerFlushesOncePerTick(t *testing.T) {
	c := newController(t, nil)
	sink := &countingSink{FrameBuffer: core.NewFrameBuffer(18 * 18)}
	for i := 0; i < 500; i++ {
		if err := c.Step(sink, 0); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if sink.calls != 500 {
		t.Fatalf("expected 500 flushes, got %d", sink.calls)
	}
}

func TestControllerGrowthAndConservation(t *testing.T) {
	c := newController(t, func(cfg *Config) { cfg.Seed = 99 })
	sink := core.NewFrameBuffer(18 * 18)
	for i := 0; i < 3000; i++ {
		if c.State() != Running {
			if err := c.Step(sink, 0); err != nil {
				t.Fatalf("step %d: %v", i, err)
			}
			continue
		}
		before := c.Snake().Len()
		food, _ := c.Grid().Food()
		s := c.Snake()
		if err := c.Step(sink, 0); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if c.State() != Running || c.Snake() != s {
			continue
		}
		grew := c.Snake().Head() == food
		want := before
		if grew {
			want++
		}
		if got := c.Snake().Len(); got != want {
			t.Fatalf("step %d: length %d, want %d (grew=%v)", i, got, want, grew)
		}
		body, foods := c.Grid().Counts()
		if body != c.Snake().Len() || foods != 1 {
			t.Fatalf("step %d: %d body cells for length %d, %d food", i, body, c.Snake().Len(), foods)
		}
		if f, _ := c.Grid().Food(); c.Snake().Contains(f) {
			t.Fatalf("step %d: food %v spawned on the snake", i, f)
		}
	}
}

func TestControllerRendersThroughMapper(t *testing.T) {
	c := newController(t, nil)
	sink := core.NewFrameBuffer(18 * 18)
	if err := c.Step(sink, 0); err != nil {
		t.Fatalf("step: %v", err)
	}
	m := c.Mapper()
	head := c.Snake().Head()
	food, _ := c.Grid().Food()
	frame := sink.Frame()
	if got := frame[m.ToPhysical(head.X, head.Y)]; got != headColor {
		t.Fatalf("head pixel %+v", got)
	}
	if got := frame[m.ToPhysical(food.X, food.Y)]; got != foodColor(c.Stats().Ticks) {
		t.Fatalf("food pixel %+v", got)
	}
	lit := 0
	for _, px := range frame {
		if px != core.Black {
			lit++
		}
	}
	if lit != c.Snake().Len()+1 {
		t.Fatalf("expected %d lit pixels, got %d", c.Snake().Len()+1, lit)
	}
}

func TestControllerTrappedFlashesThenRestarts(t *testing.T) {
	c := newController(t, func(cfg *Config) {
		cfg.Width, cfg.Height = 5, 5
		cfg.Params.FlashFrames = 2
	})
	sink := core.NewFrameBuffer(25)
	body := []Cell{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 2}}
	place(t, c, body, Left, Cell{X: 4, Y: 4})
	var episodes []core.Episode
	c.OnEpisode(func(ep core.Episode) { episodes = append(episodes, ep) })

	if err := c.Step(sink, 0); err != nil {
		t.Fatalf("step: %v", err)
	}
	if c.State() != Dead || c.Reason() != ReasonTrapped {
		t.Fatalf("expected trapped death, got %v %v", c.State(), c.Reason())
	}
	want := core.Episode{Index: 1, Outcome: "dead", Reason: "trapped", Length: 5, Ticks: 1, Deaths: 1}
	if len(episodes) != 1 || episodes[0] != want {
		t.Fatalf("expected one trapped episode report, got %+v", episodes)
	}
	m := c.Mapper()
	for _, cell := range body {
		if px := sink.Frame()[m.ToPhysical(cell.X, cell.Y)]; px != failColor {
			t.Fatalf("cell %v should flash red, got %+v", cell, px)
		}
	}

	if err := c.Step(sink, 0); err != nil {
		t.Fatalf("step: %v", err)
	}
	for i, px := range sink.Frame() {
		if px != core.Black {
			t.Fatalf("second flourish frame should be dark, pixel %d is %+v", i, px)
		}
	}

	if err := c.Step(sink, 0); err != nil {
		t.Fatalf("step: %v", err)
	}
	if c.State() != Running || c.Snake().Len() > 2 {
		t.Fatalf("expected a fresh episode, got %v len %d", c.State(), c.Snake().Len())
	}
	if st := c.Stats(); st.Deaths != 1 || st.Episodes != 1 || st.LastReason != ReasonTrapped {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestControllerWinsWhenBoardFills(t *testing.T) {
	c := newController(t, nil)
	// Row-major boustrophedon over the whole board; the snake covers all
	// but the last cell and the food sits there.
	var path []Cell
	for y := 0; y < 18; y++ {
		for i := 0; i < 18; i++ {
			x := i
			if y%2 == 1 {
				x = 17 - i
			}
			path = append(path, Cell{X: x, Y: y})
		}
	}
	body := make([]Cell, 0, 323)
	for i := 322; i >= 0; i-- {
		body = append(body, path[i])
	}
	place(t, c, body, Left, path[323])

	sink := core.NewFrameBuffer(18 * 18)
	if err := c.Step(sink, 0); err != nil {
		t.Fatalf("step: %v", err)
	}
	if c.State() != Won || c.Reason() != ReasonFull {
		t.Fatalf("expected a win, got %v %v", c.State(), c.Reason())
	}
	if st := c.Stats(); st.Wins != 1 || st.BestLength != 324 {
		t.Fatalf("unexpected stats %+v", st)
	}
	for i, px := range sink.Frame() {
		if px.G == 0 {
			t.Fatalf("win frame should light every LED, pixel %d is %+v", i, px)
		}
	}
}

func TestControllerStrategicSurvives(t *testing.T) {
	c := newController(t, func(cfg *Config) { cfg.Strategy = StrategyStrategic })
	sink := core.NewFrameBuffer(18 * 18)
	for i := 0; i < 20000; i++ {
		if err := c.Step(sink, 0); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if c.Stats().Deaths != 0 {
			t.Fatalf("strategic snake died at tick %d: %v", i, c.Stats().LastReason)
		}
	}
	if c.Stats().BestLength == 0 && c.Snake().Len() < 20 {
		t.Fatalf("strategic snake made no progress, length %d", c.Snake().Len())
	}
}

func TestControllerStrategicWinsSmallBoard(t *testing.T) {
	c := newController(t, func(cfg *Config) {
		cfg.Width, cfg.Height = 8, 8
		cfg.Strategy = StrategyStrategic
		cfg.Episodes = 1
	})
	sink := core.NewFrameBuffer(64)
	for i := 0; i < 64*64 && !c.Done(); i++ {
		if err := c.Step(sink, 0); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if !c.Done() {
		t.Fatalf("episode did not finish, length %d", c.Snake().Len())
	}
	if st := c.Stats(); st.Wins != 1 || st.Deaths != 0 {
		t.Fatalf("expected a win, got %+v", st)
	}
}

func TestControllerOverridesCycling(t *testing.T) {
	c := newController(t, func(cfg *Config) { cfg.Strategy = StrategyStrategic })
	head := c.Snake().Head()
	recordLoop(c.history, 16)
	if !c.history.IsCycling() {
		t.Fatal("history should be cycling")
	}
	d, ok := c.override()
	want, _ := DirectionTo(head, c.tour.Successor(head))
	if !ok || d != want {
		t.Fatalf("strategic override should follow the tour, got %v %v", d, ok)
	}

	c = newController(t, nil)
	recordLoop(c.history, 16)
	d, ok = c.override()
	if !ok || !legal(c.grid, c.snake, d) {
		t.Fatalf("seek override should pick a legal move, got %v %v", d, ok)
	}
}

func TestControllerStallGuard(t *testing.T) {
	c := newController(t, func(cfg *Config) {
		cfg.Width, cfg.Height = 6, 6
		cfg.Params.StallLimit = 2
	})
	// Food is out of reach behind the body, so the snake wanders.
	body := []Cell{{1, 5}, {2, 5}, {2, 4}, {2, 3}, {2, 2}, {2, 1}, {2, 0}, {3, 0}}
	place(t, c, body, Left, Cell{X: 5, Y: 5})
	sink := core.NewFrameBuffer(36)
	for i := 0; i < 3; i++ {
		if err := c.Step(sink, 0); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if c.State() != Dead || c.Reason() != ReasonStalled {
		t.Fatalf("expected a stall, got %v %v", c.State(), c.Reason())
	}
}

func TestControllerSinkRetry(t *testing.T) {
	c := newController(t, nil)
	sink := &countingSink{FrameBuffer: core.NewFrameBuffer(18 * 18), fail: 1}
	if err := c.Step(sink, 0); err != nil {
		t.Fatalf("single failure should be retried, got %v", err)
	}
	if sink.calls != 2 || c.State() != Running {
		t.Fatalf("expected retry and a running episode, calls %d state %v", sink.calls, c.State())
	}

	sink.fail = 2
	sink.calls = 0
	err := c.Step(sink, 0)
	if err == nil {
		t.Fatal("expected an error after two failures")
	}
	if sink.calls != 2 {
		t.Fatalf("expected exactly one retry, got %d calls", sink.calls)
	}
	if c.State() != Dead || c.Reason() != ReasonSink {
		t.Fatalf("expected sink abort, got %v %v", c.State(), c.Reason())
	}
}

func TestControllerRejectsWrongSink(t *testing.T) {
	c := newController(t, nil)
	err := c.Step(core.NewFrameBuffer(100), 0)
	if !errors.Is(err, matrix.ErrSize) {
		t.Fatalf("expected ErrSize, got %v", err)
	}
}

func TestControllerEpisodeBound(t *testing.T) {
	c := newController(t, func(cfg *Config) {
		cfg.Width, cfg.Height = 5, 5
		cfg.Episodes = 1
		cfg.Params.FlashFrames = 2
	})
	body := []Cell{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 2}}
	place(t, c, body, Left, Cell{X: 4, Y: 4})
	sink := &countingSink{FrameBuffer: core.NewFrameBuffer(25)}
	for i := 0; i < 2; i++ {
		if c.Done() {
			t.Fatalf("done before the flourish finished (step %d)", i)
		}
		if err := c.Step(sink, 0); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if !c.Done() {
		t.Fatal("expected the bound to be reached")
	}
	if err := c.Step(sink, 0); err != nil || sink.calls != 2 {
		t.Fatalf("finished controller should not render, err %v calls %d", err, sink.calls)
	}
}

func TestAlternateSwitchesStrategy(t *testing.T) {
	c := newController(t, func(cfg *Config) {
		cfg.Width, cfg.Height = 5, 4
		cfg.Strategy = StrategyAlternate
		cfg.Params.FlashFrames = 0
	})
	if c.Strategy() != StrategySeek {
		t.Fatalf("first episode should seek, got %v", c.Strategy())
	}
	c.end(Dead, ReasonSelf)
	c.startEpisode()
	if c.Strategy() != StrategyStrategic {
		t.Fatalf("second episode should be strategic, got %v", c.Strategy())
	}
}

func TestPlayStopsAfterEpisodes(t *testing.T) {
	stats, err := Play(core.NewFrameBuffer(36), 6, 6, time.Duration(0), 2, StrategyStrategic, PlayOptions{Seed: 5})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if stats.Episodes != 2 || stats.Wins != 2 {
		t.Fatalf("expected two won episodes, got %+v", stats)
	}
}

type episodeLog struct {
	loop.Logger
	episodes []core.Episode
}

func (l *episodeLog) Episode(name, run string, ep core.Episode) {
	l.episodes = append(l.episodes, ep)
}

func TestPlayLogsEveryEpisode(t *testing.T) {
	lg := &episodeLog{Logger: loop.Discard}
	stats, err := Play(core.NewFrameBuffer(36), 6, 6, 0, 2, StrategyStrategic, PlayOptions{Seed: 5, Logger: lg})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if len(lg.episodes) != stats.Episodes || len(lg.episodes) != 2 {
		t.Fatalf("expected 2 episode reports, got %+v", lg.episodes)
	}
	for i, ep := range lg.episodes {
		if ep.Index != i+1 || ep.Outcome != "won" || ep.Reason != "full" || ep.Length != 36 {
			t.Fatalf("episode %d: unexpected report %+v", i, ep)
		}
		if ep.Ticks < 35 {
			t.Fatalf("episode %d: %d ticks cannot fill the board", i, ep.Ticks)
		}
	}
	if last := lg.episodes[1]; last.Wins != 2 || last.Deaths != 0 {
		t.Fatalf("running totals wrong: %+v", last)
	}
}

func TestPlayHonoursStop(t *testing.T) {
	frames := 0
	stop := func() bool {
		frames++
		return frames > 10
	}
	stats, err := Play(core.NewFrameBuffer(36), 6, 6, 0, 0, StrategySeek, PlayOptions{Stop: stop})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if stats.Ticks == 0 || stats.Ticks > 10 {
		t.Fatalf("expected at most 10 ticks, got %d", stats.Ticks)
	}
}
