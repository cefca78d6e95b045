package core

import (
	"fmt"
	"sort"
	"time"
)

// Size describes the dimensions of a routine's logical grid.
type Size struct {
	W int
	H int
}

// Routine defines the contract every visual routine must implement so the
// generic run loop can host it.
type Routine interface {
	Name() string
	Size() Size
	Reset(seed int64)
	// Step advances one frame, writes it to sink and flushes it once.
	Step(sink Sink, budget time.Duration) error
	// Done reports whether the routine reached its own bound.
	Done() bool
}

// Factory constructs a Routine from flag-style key/value pairs.
type Factory func(cfg map[string]string) (Routine, error)

var routines = map[string]Factory{}

// Register adds a routine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	routines[name] = f
}

// Build looks up name in the registry and constructs the routine.
func Build(name string, cfg map[string]string) (Routine, error) {
	f, ok := routines[name]
	if !ok {
		return nil, fmt.Errorf("unknown routine %q (have %v)", name, Names())
	}
	return f(cfg)
}

// Names returns the registered routine names in sorted order.
func Names() []string {
	names := make([]string, 0, len(routines))
	for name := range routines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Episode summarises one finished game of a routine that plays games back
// to back.
type Episode struct {
	// Index counts finished episodes from 1.
	Index   int
	Outcome string
	Reason  string
	Length  int
	Ticks   int
	Wins    int
	Deaths  int
}

// EpisodeReporter is implemented by routines that announce finished
// episodes. A nil hook stops the reports.
type EpisodeReporter interface {
	OnEpisode(hook func(Episode))
}
