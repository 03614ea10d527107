package component

type BirdState int

const (
	BirdIdle BirdState = iota
	BirdFlapping
	BirdGliding
	BirdWalking
	BirdPecking
)

func (s BirdState) String() string {
	switch s {
	case BirdIdle:
		return "idle"
	case BirdFlapping:
		return "flapping"
	case BirdGliding:
		return "gliding"
	case BirdWalking:
		return "walking"
	case BirdPecking:
		return "pecking"
	default:
		return "unknown"
	}
}

// Grounded reports whether the state is one of the ground states that the
// airborne rules leave alone.
func (s BirdState) Grounded() bool {
	return s == BirdIdle || s == BirdWalking || s == BirdPecking
}

type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
)

func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// Bird is the behavior state of the player, read by the animation system.
type Bird struct {
	State     BirdState
	Direction Direction
}

var BirdComponent = NewComponent[Bird]()
