//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"ledframe/internal/app"
	"ledframe/internal/core"
	"ledframe/internal/matrix"
	_ "ledframe/internal/sims/briansbrain"
	_ "ledframe/internal/sims/elementary"
	_ "ledframe/internal/sims/life"
	_ "ledframe/internal/sims/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	wiring, err := matrix.ParseWiring(cfg.Wiring)
	if err != nil {
		log.Fatal(err)
	}
	m, err := matrix.New(cfg.Width, cfg.Height, cfg.Width*cfg.Height, wiring)
	if err != nil {
		log.Fatal(err)
	}
	var routines []core.Routine
	for _, name := range cfg.Routines() {
		r, err := core.Build(name, cfg.RoutineConfig())
		if err != nil {
			log.Fatalf("%v (have %v)", err, core.Names())
		}
		if s := r.Size(); s.W*s.H != m.Len() {
			log.Fatalf("%s is %dx%d, panel has %d leds", name, s.W, s.H, m.Len())
		}
		routines = append(routines, r)
	}
	rot, err := app.NewRotation(routines, cfg, nil)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(rot, m, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("ledframe - " + rot.Current().Name())
	ebiten.SetTPS(app.TPS(cfg.Delay))
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
