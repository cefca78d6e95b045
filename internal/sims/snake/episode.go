package snake

import (
	"fmt"
	"time"

	"ledframe/internal/core"
	"ledframe/internal/matrix"
)

// State is the lifecycle phase of an episode.
type State uint8

const (
	Running State = iota
	Dead
	Won
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Dead:
		return "dead"
	case Won:
		return "won"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Reason records why an episode ended.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonWall
	ReasonSelf
	ReasonTrapped
	ReasonStalled
	ReasonSink
	ReasonFull
)

var reasonNames = [...]string{"none", "wall", "self", "trapped", "stalled", "sink", "full"}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return fmt.Sprintf("reason(%d)", uint8(r))
}

// Stats accumulates results across episodes.
type Stats struct {
	Episodes   int
	Wins       int
	Deaths     int
	BestLength int
	LengthSum  int
	Ticks      int
	LastReason Reason
}

// MeanLength is the average final length over finished episodes.
func (s Stats) MeanLength() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return float64(s.LengthSum) / float64(s.Episodes)
}

// Controller runs snake episodes back to back on a pixel sink. It owns the
// grid, snake, food and history and is the only thing that mutates them.
type Controller struct {
	cfg    Config
	name   string
	mapper matrix.Mapper
	tour   *Tour

	rng     *core.RNG
	spawner *Spawner
	history *History

	grid    *Grid
	snake   *Snake
	planner Planner
	active  Strategy

	state     State
	reason    Reason
	hold      int
	flourish  int
	sinceFood int
	ticks     int
	stats     Stats

	onEpisode func(core.Episode)
}

// New validates cfg and returns a Controller ready for its first episode.
func New(cfg Config) (*Controller, error) {
	m, err := matrix.New(cfg.Width, cfg.Height, cfg.Width*cfg.Height, cfg.Wiring)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	p := cfg.Params
	switch {
	case cfg.Episodes < 0:
		return nil, fmt.Errorf("%w: episodes %d", ErrBadConfig, cfg.Episodes)
	case p.ShortcutFill < 0 || p.ShortcutFill > 1:
		return nil, fmt.Errorf("%w: shortcut_fill %v", ErrBadConfig, p.ShortcutFill)
	case p.FlashFrames < 0 || p.WinFrames < 0:
		return nil, fmt.Errorf("%w: negative flourish frames", ErrBadConfig)
	case p.History < 0 || p.Window < 0 || p.Period < 0:
		return nil, fmt.Errorf("%w: negative detector size", ErrBadConfig)
	}
	tour, err := NewTour(cfg.Width, cfg.Height)
	if err != nil {
		if cfg.Strategy != StrategySeek {
			return nil, fmt.Errorf("%w: %s play: %w", ErrBadConfig, cfg.Strategy, err)
		}
		tour = nil
	}
	c := &Controller{
		cfg:     cfg,
		name:    routineName(cfg.Strategy),
		mapper:  m,
		tour:    tour,
		history: NewHistory(p.History, p.Window, p.Period),
	}
	c.Reset(cfg.Seed)
	return c, nil
}

func routineName(s Strategy) string {
	switch s {
	case StrategyStrategic:
		return "strategic_snake"
	case StrategyAlternate:
		return "snake_alternate"
	}
	return "snake"
}

// Name returns the routine identifier.
func (c *Controller) Name() string { return c.name }

// Size returns the grid dimensions.
func (c *Controller) Size() core.Size { return core.Size{W: c.cfg.Width, H: c.cfg.Height} }

// Config returns the configuration the controller was built with.
func (c *Controller) Config() Config { return c.cfg }

// Mapper returns the logical to physical transform used for rendering.
func (c *Controller) Mapper() matrix.Mapper { return c.mapper }

// State reports the phase of the current episode.
func (c *Controller) State() State { return c.state }

// Reason reports why the last episode ended.
func (c *Controller) Reason() Reason { return c.reason }

// Stats returns the accumulated episode statistics.
func (c *Controller) Stats() Stats { return c.stats }

// Grid exposes the current board. Callers must not hold it across Steps.
func (c *Controller) Grid() *Grid { return c.grid }

// Snake exposes the current snake. Callers must not hold it across Steps.
func (c *Controller) Snake() *Snake { return c.snake }

// Strategy reports the planner driving the current episode.
func (c *Controller) Strategy() Strategy { return c.active }

// OnEpisode registers hook to receive every finished episode.
func (c *Controller) OnEpisode(hook func(core.Episode)) { c.onEpisode = hook }

// Reset reseeds the controller, clears statistics and starts a fresh
// episode. A zero seed falls back to the configured one.
func (c *Controller) Reset(seed int64) {
	if seed == 0 {
		seed = c.cfg.Seed
	}
	c.rng = core.NewRNG(seed)
	c.spawner = NewSpawner(c.rng)
	c.stats = Stats{}
	c.startEpisode()
}

func (c *Controller) startEpisode() {
	c.active = c.cfg.Strategy
	if c.active == StrategyAlternate {
		c.active = StrategySeek
		if c.stats.Episodes%2 == 1 && c.tour != nil {
			c.active = StrategyStrategic
		}
	}
	p := c.cfg.Params
	switch c.active {
	case StrategyStrategic:
		c.planner = Strategic{Buffer: p.Buffer, ShortcutFill: p.ShortcutFill}
	default:
		c.planner = Seek{FloodCheck: p.FloodCheck}
	}

	w, h := c.cfg.Width, c.cfg.Height
	start := Cell{X: w / 2, Y: h / 2}
	if p.RandomStart {
		start = Cell{X: c.rng.IntN(w), Y: c.rng.IntN(h)}
	}
	facing := Right
	if c.active == StrategyStrategic {
		// Face along the tour so the first successor is never a reversal.
		facing, _ = DirectionTo(start, c.tour.Successor(start))
	}
	c.snake, _ = NewSnake(w, h, []Cell{start}, facing)
	c.grid = NewGrid(w, h)
	c.grid.Bind(c.snake, Cell{}, false)
	food, ok := c.spawner.Spawn(c.grid)
	c.grid.SetFood(food, ok)

	c.history.Reset()
	c.state = Running
	c.reason = ReasonNone
	c.hold = 0
	c.flourish = 0
	c.sinceFood = 0
	c.ticks = 0
	if !ok {
		c.end(Won, ReasonFull)
	}
}

func (c *Controller) stallLimit() int {
	switch l := c.cfg.Params.StallLimit; {
	case l < 0:
		return 0
	case l == 0:
		return c.cfg.Width * c.cfg.Height
	default:
		return l
	}
}

// Done reports whether the episode bound has been reached and the last
// flourish has finished.
func (c *Controller) Done() bool {
	return c.cfg.Episodes > 0 && c.stats.Episodes >= c.cfg.Episodes &&
		c.state != Running && c.flourish >= c.hold
}

// Step advances one tick, renders it and flushes the sink exactly once. A
// flush that fails twice ends the episode and returns the error.
func (c *Controller) Step(sink core.Sink, _ time.Duration) error {
	if n := sink.Len(); n != c.mapper.Len() {
		return fmt.Errorf("%w: sink has %d leds, grid needs %d", matrix.ErrSize, n, c.mapper.Len())
	}
	if c.Done() {
		return nil
	}
	if c.state != Running && c.flourish >= c.hold {
		c.startEpisode()
	}
	if c.state == Running {
		c.advance()
	}
	c.render(sink)
	err := sink.Flush()
	if err != nil {
		err = sink.Flush()
	}
	if c.state != Running {
		c.flourish++
	}
	if err != nil {
		if c.state == Running {
			c.end(Dead, ReasonSink)
		}
		return fmt.Errorf("snake: flush: %w", err)
	}
	return nil
}

// advance performs one tick of the episode: plan, validate, move, eat.
func (c *Controller) advance() {
	c.stats.Ticks++
	c.ticks++
	var (
		d  Direction
		ok bool
	)
	if c.history.IsCycling() {
		d, ok = c.override()
	} else {
		d, ok = c.planner.NextMove(c.grid, c.snake, c.tour)
	}
	if !ok {
		c.end(Dead, ReasonTrapped)
		return
	}
	next, d := c.snake.ProposeMove(d)
	if !c.grid.InBounds(next) {
		c.end(Dead, ReasonWall)
		return
	}
	food, hasFood := c.grid.Food()
	grew := hasFood && next == food
	if c.snake.Collides(next, grew) {
		c.end(Dead, ReasonSelf)
		return
	}
	c.snake.ApplyMove(next, d, grew)
	c.history.Record(next, d)
	if grew {
		c.sinceFood = 0
		food, ok := c.spawner.Spawn(c.grid)
		c.grid.SetFood(food, ok)
		if !ok {
			c.end(Won, ReasonFull)
		}
		return
	}
	c.sinceFood++
	if limit := c.stallLimit(); limit > 0 && c.sinceFood > limit {
		c.end(Dead, ReasonStalled)
	}
}

// override breaks a detected oscillation. Strategic play falls back to the
// tour, seek play takes a random legal move.
func (c *Controller) override() (Direction, bool) {
	head := c.snake.Head()
	if c.active == StrategyStrategic {
		return DirectionTo(head, c.tour.Successor(head))
	}
	moves := legalMoves(c.grid, c.snake)
	if len(moves) == 0 {
		return c.snake.Facing(), false
	}
	return moves[c.rng.IntN(len(moves))], true
}

func (c *Controller) end(s State, r Reason) {
	c.state = s
	c.reason = r
	c.flourish = 0
	c.hold = c.cfg.Params.FlashFrames
	if s == Won {
		c.hold = c.cfg.Params.WinFrames
	}

	st := &c.stats
	st.Episodes++
	if s == Won {
		st.Wins++
	} else {
		st.Deaths++
	}
	n := c.snake.Len()
	st.LengthSum += n
	if n > st.BestLength {
		st.BestLength = n
	}
	st.LastReason = r

	if c.onEpisode != nil {
		c.onEpisode(core.Episode{
			Index:   st.Episodes,
			Outcome: s.String(),
			Reason:  r.String(),
			Length:  n,
			Ticks:   c.ticks,
			Wins:    st.Wins,
			Deaths:  st.Deaths,
		})
	}
}

func init() {
	core.Register("snake", factory(StrategySeek))
	core.Register("strategic_snake", factory(StrategyStrategic))
	core.Register("snake_alternate", factory(StrategyAlternate))
}

// factory builds a registry constructor whose strategy defaults to s.
func factory(s Strategy) core.Factory {
	return func(m map[string]string) (core.Routine, error) {
		cfg, err := FromMap(m)
		if err != nil {
			return nil, err
		}
		if _, ok := m["strategy"]; !ok {
			cfg.Strategy = s
		}
		c, err := New(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}
