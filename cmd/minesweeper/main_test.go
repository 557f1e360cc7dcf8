package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

func TestGameParamsPrecedence(t *testing.T) {
	t.Setenv("MINES_PARAMS", "30x16:m")
	t.Setenv("MINES_WIDTH", "20")
	t.Setenv("MINES_DIFFICULTY", "hard")

	p, err := gameParams(map[string]bool{})
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 20, Height: 16, Difficulty: mines.Hard}, *p)

	require.NoError(t, flag.CommandLine.Parse([]string{"-h", "7", "-difficulty", "e"}))
	p, err = gameParams(setFlags())
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 20, Height: 7, Difficulty: mines.Easy}, *p)
}
