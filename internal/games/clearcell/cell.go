package clearcell

import "math/rand"

// Cell is a single board cell value. The engine never interprets a color;
// it only compares kinds for equality and tests for emptiness.
type Cell uint8

// The cell vocabulary. Empty is the distinguished "no piece" value;
// everything else is a colored kind.
const (
	Empty Cell = iota
	Red
	Green
	Blue
	Yellow
	Magenta
	Cyan
)

// kindCount is the number of non-empty kinds.
const kindCount = 6

// IsEmpty reports whether the cell holds no piece.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// String returns a short name for the cell kind.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "."
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Yellow:
		return "Y"
	case Magenta:
		return "M"
	case Cyan:
		return "C"
	default:
		return "?"
	}
}

// Source produces cell values for freshly inserted rows.
// The board never owns randomness; a Source is injected at construction
// so tests can supply a deterministic stream.
type Source interface {
	// NextNonEmptyCell returns a random non-empty cell kind.
	NextNonEmptyCell() Cell
}

// RandomSource is the production Source, drawing uniformly from the
// colored kinds using a caller-seeded generator.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a Source backed by the given generator.
func NewRandomSource(rng *rand.Rand) *RandomSource {
	return &RandomSource{rng: rng}
}

// NextNonEmptyCell returns a uniformly-random colored cell.
func (s *RandomSource) NextNonEmptyCell() Cell {
	return Cell(1 + s.rng.Intn(kindCount))
}
