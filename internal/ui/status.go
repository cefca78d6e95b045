package ui

import "ledframe/internal/core"

// StatusReporter is implemented by routines that summarise their progress.
type StatusReporter interface {
	StatusLines() []string
}

// StatusLines returns the routine's status or nil when it has none.
func StatusLines(r core.Routine) []string {
	if sr, ok := r.(StatusReporter); ok {
		return sr.StatusLines()
	}
	return nil
}
