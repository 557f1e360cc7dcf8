package middleware

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

const DebounceInterval = 125 * time.Millisecond

// Debounce drops key and mouse events that arrive within interval of the
// last handled one. Other events always pass through.
func Debounce(interval time.Duration, now func() time.Time) Middleware {
	return func(next Handler) Handler {
		var last time.Time
		return HandlerFunc(func(ev tcell.Event) bool {
			if !isInput(ev) {
				return next.HandleEvent(ev)
			}
			t := now()
			if !last.IsZero() && t.Sub(last) < interval {
				return false
			}
			if !next.HandleEvent(ev) {
				return false
			}
			last = t
			return true
		})
	}
}
