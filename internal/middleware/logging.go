package middleware

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
)

func eventAttrs(ev tcell.Event) []any {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return []any{slog.String("key", ev.Name())}
	case *tcell.EventMouse:
		x, y := ev.Position()
		return []any{
			slog.Int("x", x),
			slog.Int("y", y),
			slog.Int("buttons", int(ev.Buttons())),
		}
	default:
		return nil
	}
}

func Logging(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ev tcell.Event) bool {
			if !isInput(ev) {
				return next.HandleEvent(ev)
			}
			start := time.Now()

			handled := next.HandleEvent(ev)

			logger.Debug(
				"handled input",
				append(eventAttrs(ev),
					slog.Bool("handled", handled),
					slog.Any("duration (us)", int64(time.Since(start)/time.Microsecond)),
				)...,
			)
			return handled
		})
	}
}
