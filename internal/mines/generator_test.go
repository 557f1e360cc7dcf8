package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
		err  bool
	}{
		{in: "easy", want: Easy},
		{in: "E", want: Easy},
		{in: "medium", want: Medium},
		{in: "m", want: Medium},
		{in: " Hard ", want: Hard},
		{in: "0", want: 0},
		{in: "35%", want: 35},
		{in: "100", err: true},
		{in: "-1", err: true},
		{in: "extreme", err: true},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			d, err := ParseDifficulty(test.in)
			if test.err {
				assert.ErrorIs(t, err, ErrInvalidDifficulty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, d)
		})
	}
}

func TestParseSeed(t *testing.T) {
	p, err := ParseSeed("30x16:hard")
	require.NoError(t, err)
	assert.Equal(t, GameParams{Width: 30, Height: 16, Difficulty: Hard}, *p)
	assert.Equal(t, "30x16:21", p.Seed())

	for _, seed := range []string{"30x16", "30:hard", "axb:easy", "4x4:nope"} {
		_, err := ParseSeed(seed)
		assert.Error(t, err, seed)
	}
}

func TestMineCount(t *testing.T) {
	assert.Equal(t, 16, GameParams{Width: 10, Height: 10, Difficulty: Medium}.MineCount())
	assert.Equal(t, 1, GameParams{Width: 3, Height: 3, Difficulty: Easy}.MineCount())
	assert.Equal(t, 0, GameParams{Width: 1, Height: 1, Difficulty: 0}.MineCount())
	assert.Equal(t, 53, GameParams{Width: 16, Height: 16, Difficulty: Hard}.MineCount())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		params GameParams
		err    error
	}{
		{name: "single cell", params: GameParams{Width: 1, Height: 1, Difficulty: 0}},
		{name: "default", params: GameParams{Width: 10, Height: 10, Difficulty: Medium}},
		{name: "zero width", params: GameParams{Width: 0, Height: 10, Difficulty: Easy}, err: ErrInvalidSize},
		{name: "negative height", params: GameParams{Width: 10, Height: -1, Difficulty: Easy}, err: ErrInvalidSize},
		{name: "full density", params: GameParams{Width: 10, Height: 10, Difficulty: 100}, err: ErrInvalidDifficulty},
		{name: "3x3 one mine", params: GameParams{Width: 3, Height: 3, Difficulty: Easy}, err: ErrTooManyMines},
		{name: "5x5 tight", params: GameParams{Width: 5, Height: 5, Difficulty: 48}},
		{name: "5x5 over", params: GameParams{Width: 5, Height: 5, Difficulty: 52}, err: ErrTooManyMines},
		{name: "single row", params: GameParams{Width: 20, Height: 1, Difficulty: 75}},
		{name: "single row over", params: GameParams{Width: 20, Height: 1, Difficulty: 80}, err: ErrTooManyMines},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.params.Validate()
			if test.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.err)
			}
		})
	}
}
