package main

import (
	"flag"
	"log"
	"os"

	"ledframe/internal/app"
	"ledframe/internal/core"
	"ledframe/internal/loop"
	"ledframe/internal/matrix"
	_ "ledframe/internal/sims/briansbrain"
	_ "ledframe/internal/sims/elementary"
	_ "ledframe/internal/sims/life"
	_ "ledframe/internal/sims/snake"
	"ledframe/internal/term"
	"ledframe/internal/ui"
)

// statusSink forwards routine status lines to the terminal under the panel.
type statusSink struct {
	*term.Sink
	routine core.Routine
}

func (s *statusSink) Flush() error {
	s.SetStatus(ui.StatusLines(s.routine))
	return s.Sink.Flush()
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "frame.log", "log file (the terminal is busy drawing)")
	flag.Parse()

	wiring, err := matrix.ParseWiring(cfg.Wiring)
	if err != nil {
		log.Fatal(err)
	}
	m, err := matrix.New(cfg.Width, cfg.Height, cfg.Width*cfg.Height, wiring)
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer f.Close()
	logger := loop.NewStdLogger(f)

	names := cfg.Routines()
	for _, name := range names {
		// Fail before the terminal is taken over.
		if _, err := core.Build(name, cfg.RoutineConfig()); err != nil {
			log.Fatalf("%v (have %v)", err, core.Names())
		}
	}

	screen, err := term.Open(m)
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	defer screen.Close()
	stop := term.Watch(screen.Screen())

	opts := loop.Options{
		Delay:     cfg.Delay,
		MaxFrames: cfg.Frames,
		Duration:  cfg.Duration,
		Seed:      cfg.Seed,
	}
	sink := &statusSink{Sink: screen}
	pl := loop.Playlist{
		Repeat:  len(names) > 1,
		Stop:    stop,
		Logger:  logger,
		OnBuild: func(r core.Routine) { sink.routine = r },
	}
	for _, name := range names {
		pl.Entries = append(pl.Entries, loop.Entry{Name: name, Config: cfg.RoutineConfig(), Options: opts})
	}
	if _, err := pl.Run(sink); err != nil {
		logger.L.Printf("playlist: %v", err)
	}
}
