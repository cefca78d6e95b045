package loop

import (
	"io"
	"log"
	"sort"
	"strings"
	"time"

	"ledframe/internal/core"
)

// Logger receives run lifecycle events.
type Logger interface {
	Start(name, run string, params map[string]string)
	Finish(name, run string, frames int, elapsed time.Duration)
	Error(name, run string, err error)
}

// EpisodeLogger is implemented by loggers that also record the finished
// episodes of game routines.
type EpisodeLogger interface {
	Episode(name, run string, ep core.Episode)
}

type discard struct{}

func (discard) Start(string, string, map[string]string)   {}
func (discard) Finish(string, string, int, time.Duration) {}
func (discard) Error(string, string, error)               {}

// Discard drops every event.
var Discard Logger = discard{}

// StdLogger writes events through a standard library logger.
type StdLogger struct {
	L *log.Logger
}

// NewStdLogger returns a StdLogger writing to w with the usual timestamp.
func NewStdLogger(w io.Writer) *StdLogger {
	return &StdLogger{L: log.New(w, "", log.LstdFlags)}
}

// Start logs the routine name, run id and its parameters in key order.
func (s *StdLogger) Start(name, run string, params map[string]string) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	s.L.Printf("start %s run=%s %s", name, run, b.String())
}

// Finish logs how many frames the run produced.
func (s *StdLogger) Finish(name, run string, frames int, elapsed time.Duration) {
	s.L.Printf("finish %s run=%s frames=%d elapsed=%s", name, run, frames, elapsed.Round(time.Millisecond))
}

func (s *StdLogger) Error(name, run string, err error) {
	s.L.Printf("error %s run=%s: %v", name, run, err)
}

// Episode logs one finished game with the running win and death totals.
func (s *StdLogger) Episode(name, run string, ep core.Episode) {
	s.L.Printf("episode %s run=%s n=%d outcome=%s reason=%s length=%d ticks=%d wins=%d deaths=%d",
		name, run, ep.Index, ep.Outcome, ep.Reason, ep.Length, ep.Ticks, ep.Wins, ep.Deaths)
}
