package domain

// Kind labels a classified matrix.
type Kind int

const (
	Human Kind = iota
	Mutant
)

func (k Kind) String() string {
	if k == Mutant {
		return "mutant"
	}
	return "human"
}

// Direction is a (row-step, col-step) scan vector.
type Direction struct {
	DX, DY int
}

var (
	Horizontal   = Direction{0, 1}
	Vertical     = Direction{1, 0}
	Diagonal     = Direction{1, 1}  // down-right
	AntiDiagonal = Direction{1, -1} // down-left
)

// Directions lists every scanned vector. Reverses are redundant since every
// cell is a scan origin.
var Directions = [4]Direction{Horizontal, Vertical, Diagonal, AntiDiagonal}

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	case AntiDiagonal:
		return "anti-diagonal"
	default:
		return "unknown"
	}
}
