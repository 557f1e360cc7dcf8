package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vancomm/minesweeper-tui/internal/app"
	"github.com/vancomm/minesweeper-tui/internal/config"
	"github.com/vancomm/minesweeper-tui/internal/mines"
	"github.com/vancomm/minesweeper-tui/internal/solver"
	"github.com/vancomm/minesweeper-tui/internal/sound"
)

var (
	width      int
	height     int
	difficulty string
	params     string
	logFile    string
	withSound  bool
	seed       uint64
)

func init() {
	const (
		widthUsage      = "grid width"
		heightUsage     = "grid height"
		difficultyUsage = "easy|e, medium|m, hard|h or a mine percentage"
		paramsUsage     = "game parameters as WIDTHxHEIGHT:DIFFICULTY"
	)
	flag.IntVar(&width, "width", config.DefaultWidth, widthUsage)
	flag.IntVar(&width, "w", config.DefaultWidth, widthUsage+" (shorthand)")
	flag.IntVar(&height, "height", config.DefaultHeight, heightUsage)
	flag.IntVar(&height, "h", config.DefaultHeight, heightUsage+" (shorthand)")
	flag.StringVar(&difficulty, "difficulty", config.DefaultDifficulty.String(), difficultyUsage)
	flag.StringVar(&difficulty, "d", config.DefaultDifficulty.String(), difficultyUsage+" (shorthand)")
	flag.StringVar(&params, "params", "", paramsUsage)
	flag.StringVar(&params, "p", "", paramsUsage+" (shorthand)")
	flag.StringVar(&logFile, "log", "", "write logs to this file")
	flag.BoolVar(&withSound, "sound", true, "play sound at the end of the game")
	flag.Uint64Var(&seed, "seed", 0, "seed for a reproducible board")
}

func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// gameParams applies the command line on top of the environment.
func gameParams(set map[string]bool) (*mines.GameParams, error) {
	p, err := config.NewGameParams()
	if err != nil {
		return nil, err
	}
	if set["params"] || set["p"] {
		if p, err = mines.ParseSeed(params); err != nil {
			return nil, fmt.Errorf("invalid -params flag: %w", err)
		}
	}
	if set["width"] || set["w"] {
		p.Width = width
	}
	if set["height"] || set["h"] {
		p.Height = height
	}
	if set["difficulty"] || set["d"] {
		if p.Difficulty, err = mines.ParseDifficulty(difficulty); err != nil {
			return nil, fmt.Errorf("invalid -difficulty flag: %w", err)
		}
	}
	return p, nil
}

func newLogWriter(path string) io.WriteCloser {
	if path == "" {
		return nopCloser{io.Discard}
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func setupLogging(w io.Writer) *slog.Logger {
	var logger *slog.Logger
	if config.Development() {
		logger = slog.New(
			tint.NewHandler(w, &tint.Options{Level: slog.LevelDebug, NoColor: true}),
		)
		solver.Log.SetLevel(logrus.DebugLevel)
	} else {
		logger = slog.New(slog.NewJSONHandler(w, nil))
		solver.Log.SetLevel(logrus.InfoLevel)
	}
	solver.Log.SetOutput(w)
	solver.Log.SetFormatter(&logrus.JSONFormatter{})
	mines.Log = logger
	return logger
}

func run() int {
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "unable to load .env:", err)
		return 1
	}

	set := setFlags()
	if !set["log"] {
		logFile = config.LogFile()
	}
	if !set["sound"] {
		withSound = config.Sound()
	}

	logWriter := newLogWriter(logFile)
	defer logWriter.Close()
	logger := setupLogging(logWriter)

	p, err := gameParams(set)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	var rnd *rand.Rand
	if set["seed"] {
		rnd = rand.New(rand.NewPCG(seed, seed))
	}

	player := sound.NewPlayer()
	if withSound {
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable", slog.Any("error", err))
		}
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to open terminal:", err)
		return 1
	}

	a, err := app.New(logger, screen, *p, rnd, player)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := a.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
