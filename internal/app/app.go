//go:build ebiten

package app

import (
	"log"
	"time"

	"ledframe/internal/core"
	"ledframe/internal/matrix"
	"ledframe/internal/render"
	"ledframe/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a routine to the ebiten.Game interface. The routine renders
// into an in-memory frame buffer which is painted as the LED panel.
type Game struct {
	rotation *Rotation
	routine  core.Routine
	frame    *core.FrameBuffer
	painter  *render.GridPainter
	hud      *ui.HUD

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game playing the routines of rot.
func New(rot *Rotation, m matrix.Mapper, cfg Config) *Game {
	painter := render.NewGridPainter(m)
	if cfg.Brightness >= 0 && cfg.Brightness < 255 {
		painter.Brightness = uint8(cfg.Brightness)
	}
	r := rot.Current()
	return &Game{
		rotation: rot,
		routine:  r,
		frame:    core.NewFrameBuffer(m.Len()),
		painter:  painter,
		hud:      ui.NewHUD(r, hudWidth),
		scale:    cfg.Scale,
	}
}

// Reset reinitializes the current routine with the provided seed.
func (g *Game) Reset(seed int64) {
	g.rotation.Restart(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the routine.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.rotation.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	r, ok := g.rotation.Next()
	if !ok {
		return ebiten.Termination
	}
	if r != g.routine {
		g.routine = r
		g.hud.SetRoutine(r)
		ebiten.SetWindowTitle("ledframe - " + r.Name())
	}
	g.hud.Update()

	if !g.paused || g.tickOnce {
		if err := g.routine.Step(g.frame, budget()); err != nil {
			log.Printf("%s: %v", g.routine.Name(), err)
		}
		g.rotation.Advance()
		g.tickOnce = false
	}
	return nil
}

// Draw paints the last flushed frame and the HUD beside it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.frame.Frame(), g.scale)
	s := g.routine.Size()
	g.hud.Draw(screen, s.W*g.scale, s.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.routine.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}

func budget() time.Duration {
	if tps := ebiten.TPS(); tps > 0 {
		return time.Second / time.Duration(tps)
	}
	return time.Second / 60
}

// TPS converts an inter-frame delay into an ebiten tick rate.
func TPS(delay time.Duration) int {
	if delay <= 0 {
		return ebiten.SyncWithFPS
	}
	tps := int(time.Second / delay)
	if tps < 1 {
		tps = 1
	}
	return tps
}
