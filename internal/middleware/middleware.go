package middleware

import "github.com/gdamore/tcell/v2"

// Handler consumes a terminal event and reports whether it resulted in
// a game command.
type Handler interface {
	HandleEvent(ev tcell.Event) bool
}

type HandlerFunc func(ev tcell.Event) bool

func (f HandlerFunc) HandleEvent(ev tcell.Event) bool {
	return f(ev)
}

type Middleware func(Handler) Handler

func Wrap(h Handler, mws ...Middleware) Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}

func isInput(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventMouse:
		return true
	default:
		return false
	}
}
