package mines

import (
	"log/slog"
	"math/rand/v2"
)

// SafeRadius is the Manhattan distance around the first opened cell that
// never holds a mine.
const SafeRadius = 2

/*
placeMines lays mines by rejection sampling: a uniformly random cell is
accepted when it is not already a mine and lies further than SafeRadius
from center. Every accepted mine bumps the count of its safe neighbours.

The caller must have validated the params; see [GameParams.Validate].
*/
func placeMines(grid *Grid, mineCount int, center Point, r *rand.Rand) {
	placed := 0
	for placed < mineCount {
		p := Point{r.IntN(grid.Width()), r.IntN(grid.Height())}
		cell := grid.At(p)
		if cell.Content.IsMine() || p.Distance(center) <= SafeRadius {
			continue
		}
		cell.Content = Mine()
		for _, n := range grid.Neighbors(p) {
			if nc := grid.At(n); !nc.Content.IsMine() {
				nc.Content.count++
			}
		}
		placed++
	}

	Log.Debug("mines placed",
		slog.Int("count", mineCount),
		slog.String("center", center.String()),
	)
}
