package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

const (
	DefaultWidth      = 10
	DefaultHeight     = 10
	DefaultDifficulty = mines.Medium
)

func DefaultGameParams() mines.GameParams {
	return mines.GameParams{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Difficulty: DefaultDifficulty,
	}
}

func lookupInt(key string) (int, bool, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, true, fmt.Errorf("invalid %s env variable: %w", key, err)
	}
	return n, true, nil
}

// NewGameParams starts from the defaults and applies MINES_PARAMS, then
// MINES_WIDTH, MINES_HEIGHT and MINES_DIFFICULTY. The result is not
// validated; that happens when the game is created.
func NewGameParams() (*mines.GameParams, error) {
	params := DefaultGameParams()

	if seed, ok := os.LookupEnv("MINES_PARAMS"); ok {
		p, err := mines.ParseSeed(seed)
		if err != nil {
			return nil, fmt.Errorf("invalid MINES_PARAMS env variable: %w", err)
		}
		params = *p
	}

	if width, ok, err := lookupInt("MINES_WIDTH"); err != nil {
		return nil, err
	} else if ok {
		params.Width = width
	}

	if height, ok, err := lookupInt("MINES_HEIGHT"); err != nil {
		return nil, err
	} else if ok {
		params.Height = height
	}

	if s, ok := os.LookupEnv("MINES_DIFFICULTY"); ok {
		d, err := mines.ParseDifficulty(s)
		if err != nil {
			return nil, fmt.Errorf("invalid MINES_DIFFICULTY env variable: %w", err)
		}
		params.Difficulty = d
	}

	return &params, nil
}
