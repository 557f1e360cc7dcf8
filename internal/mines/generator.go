package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// Difficulty is the percentage of cells that are mines.
type Difficulty int

const (
	Easy   Difficulty = 12
	Medium Difficulty = 16
	Hard   Difficulty = 21
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return strconv.Itoa(int(d)) + "%"
	}
}

func (d Difficulty) Valid() bool {
	return 0 <= d && d < 100
}

// ParseDifficulty accepts a tier name (easy, medium, hard or their first
// letter) or a plain percentage such as "16" or "16%".
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "e":
		return Easy, nil
	case "medium", "m":
		return Medium, nil
	case "hard", "h":
		return Hard, nil
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidDifficulty, s)
	}
	d := Difficulty(n)
	if !d.Valid() {
		return 0, fmt.Errorf("%w %q: must be between 0 and 99", ErrInvalidDifficulty, s)
	}
	return d, nil
}

type GameParams struct {
	Width, Height int
	Difficulty    Difficulty
}

func (p GameParams) Unpack() (w int, h int, d Difficulty) {
	return p.Width, p.Height, p.Difficulty
}

func (p GameParams) MineCount() int {
	return p.Width * p.Height * int(p.Difficulty) / 100
}

// Seed is the compact text form accepted by [ParseSeed], e.g. "16x16:21".
func (p GameParams) Seed() string {
	return fmt.Sprintf("%dx%d:%d", p.Width, p.Height, p.Difficulty)
}

func ParseSeed(seed string) (*GameParams, error) {
	size, diff, ok := strings.Cut(seed, ":")
	if !ok {
		return nil, fmt.Errorf(`invalid game params seed %q: missing ":"`, seed)
	}
	p := &GameParams{}
	n, err := fmt.Sscanf(strings.ReplaceAll(size, "x", " "), "%d %d", &p.Width, &p.Height)
	if n != 2 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (seed = "%s", n = %d, err = %w)`,
			seed, n, err,
		)
	}
	if p.Difficulty, err = ParseDifficulty(diff); err != nil {
		return nil, fmt.Errorf("invalid game params seed %q: %w", seed, err)
	}
	return p, nil
}

// Validate checks that a game with these params can always be generated,
// whichever cell the player opens first.
func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w %dx%d", ErrInvalidSize, p.Width, p.Height)
	}
	if !p.Difficulty.Valid() {
		return fmt.Errorf("%w %d", ErrInvalidDifficulty, p.Difficulty)
	}
	if mines, room := p.MineCount(), p.minePlaces(); mines > room {
		return fmt.Errorf(
			"%w: %d mines but only %d cells outside the safe zone of %s",
			ErrTooManyMines, mines, room, p.Seed(),
		)
	}
	return nil
}

// minePlaces is the number of cells that may hold a mine when the first
// reveal lands on the worst possible square, the one whose safe zone
// covers the most of the grid.
func (p GameParams) minePlaces() int {
	maxExcluded := 0
	for cy := range p.Height {
		for cx := range p.Width {
			excluded := 0
			for y := max(0, cy-SafeRadius); y <= min(p.Height-1, cy+SafeRadius); y++ {
				for x := max(0, cx-SafeRadius); x <= min(p.Width-1, cx+SafeRadius); x++ {
					if absDiff(x, cx)+absDiff(y, cy) <= SafeRadius {
						excluded++
					}
				}
			}
			maxExcluded = max(maxExcluded, excluded)
		}
	}
	return p.Width*p.Height - maxExcluded
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}
