package app

import (
	"hash/maphash"
	"math/rand/v2"
	"time"

	"github.com/vancomm/minesweeper-tui/internal/handlers"
	"github.com/vancomm/minesweeper-tui/internal/middleware"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadHandlers() {
	game := handlers.NewGameHandler(a.logger, a.game, a, a.quit)

	a.handler = middleware.Wrap(
		game,
		middleware.Logging(a.logger),
		middleware.Debounce(middleware.DebounceInterval, func() time.Time { return a.now() }),
	)
}
