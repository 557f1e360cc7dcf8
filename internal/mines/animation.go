package mines

import "time"

// AnimationStep is the delay between two rings of the end sweep.
const AnimationStep = 125 * time.Millisecond

// Tick advances the end-of-game sweep by dt and reports whether any cell
// changed. It is a no-op while the game is active. Each time at least
// AnimationStep has accumulated the sweep grows by one ring, and every
// cell closer to the cursor than the animation level is marked
// RevealedAfterEnd.
func (g *Game) Tick(dt time.Duration) (changed bool) {
	if !g.status.Over() {
		return false
	}
	g.sinceAnimation += dt
	if g.sinceAnimation < AnimationStep {
		return false
	}
	g.sinceAnimation = 0
	g.animationLevel++

	for p := range g.grid.Points {
		cell := g.grid.At(p)
		if cell.State != RevealedAfterEnd && p.Distance(g.cursor) < g.animationLevel {
			cell.State = RevealedAfterEnd
			changed = true
		}
	}
	return changed
}

// AnimationDone reports whether the sweep has covered the whole grid.
func (g *Game) AnimationDone() bool {
	if !g.status.Over() {
		return false
	}
	farthest := 0
	for _, corner := range []Point{
		{0, 0}, {g.Width - 1, 0}, {0, g.Height - 1}, {g.Width - 1, g.Height - 1},
	} {
		farthest = max(farthest, corner.Distance(g.cursor))
	}
	return g.animationLevel > farthest
}
