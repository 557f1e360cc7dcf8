package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceMines(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{
			name:   "10x10(medium)",
			params: GameParams{Width: 10, Height: 10, Difficulty: Medium},
		},
		{
			name:   "16x16(hard)",
			params: GameParams{Width: 16, Height: 16, Difficulty: Hard},
		},
		{
			name:   "30x16(hard)",
			params: GameParams{Width: 30, Height: 16, Difficulty: Hard},
		},
		{
			name:   "5x5(40)",
			params: GameParams{Width: 5, Height: 5, Difficulty: 40},
		},
		{
			name:   "1x20(easy)",
			params: GameParams{Width: 1, Height: 20, Difficulty: Easy},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			require.NoError(t, test.params.Validate())

			r := rand.New(rand.NewPCG(1, 2))
			mineCount := test.params.MineCount()
			for sx := range test.params.Width {
				for sy := range test.params.Height {
					center := Point{sx, sy}
					grid := NewGrid(test.params.Width, test.params.Height)
					placeMines(grid, mineCount, center, r)

					require.Equal(t, mineCount, grid.countMines(), "%s @ %s", test.name, center)
					for p := range grid.Points {
						content := grid.At(p).Content
						if content.IsMine() {
							assert.Greater(t, p.Distance(center), SafeRadius,
								"%s @ %s: mine at %s\n%s", test.name, center, p, grid)
							continue
						}
						count, _ := content.Count()
						assert.Equal(t, bruteForceCount(grid, p), count,
							"%s @ %s: count at %s\n%s", test.name, center, p, grid)
					}
				}
			}
		})
	}
}

func TestPlaceMinesFillsTightGrid(t *testing.T) {
	// 5x5 with the start in a corner leaves 19 candidate cells, but the
	// worst-case start in the middle leaves 12.
	params := GameParams{Width: 5, Height: 5, Difficulty: 48}
	require.Equal(t, 12, params.MineCount())
	require.NoError(t, params.Validate())

	grid := NewGrid(5, 5)
	placeMines(grid, params.MineCount(), Point{2, 2}, rand.New(rand.NewPCG(1, 2)))

	for p := range grid.Points {
		assert.Equal(t, p.Distance(Point{2, 2}) > SafeRadius, grid.At(p).Content.IsMine(), "cell %s", p)
	}
}
