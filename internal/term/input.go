package term

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// Quit reports whether ev asks the program to stop: Escape, Ctrl-C or q.
func Quit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q' || key.Rune() == 'Q'
	}
	return false
}

// Watch polls screen events on a goroutine and returns a stop function for
// the run loop. The goroutine exits once the screen is finalised.
func Watch(screen tcell.Screen) func() bool {
	var stop atomic.Bool
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			default:
				if Quit(ev) {
					stop.Store(true)
				}
			}
		}
	}()
	return stop.Load
}
