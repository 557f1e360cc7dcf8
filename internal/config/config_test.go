package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

func TestNewGameParamsDefaults(t *testing.T) {
	p, err := NewGameParams()
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 10, Height: 10, Difficulty: mines.Medium}, *p)
}

func TestNewGameParamsFromEnv(t *testing.T) {
	t.Setenv("MINES_PARAMS", "30x16:hard")
	t.Setenv("MINES_HEIGHT", "20")

	p, err := NewGameParams()
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 30, Height: 20, Difficulty: mines.Hard}, *p)

	t.Setenv("MINES_DIFFICULTY", "e")
	p, err = NewGameParams()
	require.NoError(t, err)
	assert.Equal(t, mines.Easy, p.Difficulty)
}

func TestNewGameParamsErrors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"MINES_WIDTH", "wide"},
		{"MINES_HEIGHT", "1.5"},
		{"MINES_DIFFICULTY", "insane"},
		{"MINES_PARAMS", "10x10"},
	}
	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			t.Setenv(test.key, test.value)
			_, err := NewGameParams()
			assert.ErrorContains(t, err, test.key)
		})
	}
}

func TestSound(t *testing.T) {
	assert.True(t, Sound())
	t.Setenv("MINES_SOUND", "0")
	assert.False(t, Sound())
	t.Setenv("MINES_SOUND", "1")
	assert.True(t, Sound())
}

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("MINES_WIDTH=12\nMINES_LOG_FILE=/tmp/mines.log\n"), 0o600))

	// registered so the variables loaded below are cleared afterwards
	t.Setenv("MINES_WIDTH", "")
	t.Setenv("MINES_LOG_FILE", "")
	os.Unsetenv("MINES_WIDTH")
	os.Unsetenv("MINES_LOG_FILE")

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "/tmp/mines.log", LogFile())

	p, err := NewGameParams()
	require.NoError(t, err)
	assert.Equal(t, 12, p.Width)
}
