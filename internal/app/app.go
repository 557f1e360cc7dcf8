package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-tui/internal/middleware"
	"github.com/vancomm/minesweeper-tui/internal/mines"
	"github.com/vancomm/minesweeper-tui/internal/sound"
)

const frameInterval = 16 * time.Millisecond

type App struct {
	logger    *slog.Logger
	screen    tcell.Screen
	game      *mines.Game
	sound     *sound.Player
	handler   middleware.Handler
	sessionID uuid.UUID
	now       func() time.Time
	quitting  bool
}

// New creates the game and takes over the screen. A nil rnd is replaced
// by a randomly seeded one and a nil player plays nothing.
func New(
	logger *slog.Logger,
	screen tcell.Screen,
	params mines.GameParams,
	rnd *rand.Rand,
	player *sound.Player,
) (*App, error) {
	if rnd == nil {
		rnd = createRand()
	}
	if player == nil {
		player = sound.NewPlayer()
	}

	game, err := mines.NewGame(params, rnd)
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()

	sessionID := uuid.New()
	app := &App{
		logger:    logger.With(slog.String("session_id", sessionID.String())),
		screen:    screen,
		game:      game,
		sound:     player,
		sessionID: sessionID,
		now:       time.Now,
	}
	app.loadHandlers()

	app.logger.Info(
		"game created",
		slog.String("params", params.Seed()),
		slog.Int("mines", game.MineCount()),
	)

	return app, nil
}

func (a *App) SessionID() uuid.UUID { return a.sessionID }
func (a *App) Game() *mines.Game     { return a.game }

func (a *App) quit() {
	a.quitting = true
}

// Start runs the game until the player quits or ctx is cancelled. The
// screen is always restored before Start returns, including after a
// panic in the control loop.
func (a *App) Start(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-done:
				return nil
			}
		}
	})

	g.Go(func() (err error) {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic in control loop: %v\n%s", r, debug.Stack())
			}
			a.screen.Fini()
		}()
		return a.run(ctx, events)
	})

	err := g.Wait()
	if err != nil {
		a.logger.Error("game loop failed", slog.Any("error", err))
	}
	a.logger.Info(
		"session ended",
		slog.String("status", a.game.Status().String()),
		slog.Duration("elapsed", a.game.Elapsed()),
	)
	return err
}

func (a *App) run(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := a.now()
	a.draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				a.screen.Sync()
			}
			a.handle(ev)
			if a.quitting {
				return nil
			}
			a.draw()

		case <-ticker.C:
			t := a.now()
			a.game.Tick(t.Sub(last))
			last = t
			a.draw()
		}
	}
}

// handle passes ev to the handler chain and reports the game transitions
// it caused.
func (a *App) handle(ev tcell.Event) {
	status, placed := a.game.Status(), a.game.MinesPlaced()

	a.handler.HandleEvent(ev)

	if !placed && a.game.MinesPlaced() {
		a.logger.Info("mines placed", slog.String("cell", a.game.Cursor().String()))
	}
	if next := a.game.Status(); next != status {
		a.logger.Info(
			"game over",
			slog.String("status", next.String()),
			slog.Duration("elapsed", a.game.Elapsed()),
		)
		a.sound.GameOver(next)
	}
}
