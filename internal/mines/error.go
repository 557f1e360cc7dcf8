package mines

import "errors"

var (
	ErrInvalidSize       = errors.New("invalid grid size")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrTooManyMines      = errors.New("too many mines for the grid")
)
