package motion

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// State is the discrete movement state of a character.
type State int

const (
	StateIdle State = iota
	StateWalking
	StateJumping
	StateDead
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateJumping:
		return "jumping"
	case StateDead:
		return "dead"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// RuntimeState is everything a Controller mutates from tick to tick.
type RuntimeState struct {
	Facing        Facing
	State         State
	PreviousState State
	Velocity      cp.Vector
	Grounded      bool

	RemainingJumps int
	// ChainActive is set by the first jump of a chain and cleared when the
	// charges are rearmed.
	ChainActive bool

	Magnet MagnetMode
	Dead   bool
}

func newRuntimeState(charges int) RuntimeState {
	return RuntimeState{
		Facing:         FacingRight,
		State:          StateIdle,
		PreviousState:  StateIdle,
		RemainingJumps: charges,
		Magnet:         MagnetOff,
	}
}
