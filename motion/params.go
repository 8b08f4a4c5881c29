package motion

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

var (
	ErrInvalidSpeed    = errors.New("motion: invalid max speed")
	ErrInvalidTime     = errors.New("motion: invalid time constant")
	ErrInvalidHeight   = errors.New("motion: invalid apex height")
	ErrInvalidCharges  = errors.New("motion: invalid jump charges")
	ErrInvalidProbe    = errors.New("motion: invalid ground probe")
	ErrDerivedMismatch = errors.New("motion: derived constants do not match parameters")
)

// RearmPolicy decides when spent jump charges come back.
type RearmPolicy int

const (
	// RearmOnExhaustion refills the charges the moment the last one is spent,
	// even mid-air.
	RearmOnExhaustion RearmPolicy = iota
	// RearmOnLanding refills the charges on the first grounded tick.
	RearmOnLanding
)

func (p RearmPolicy) String() string {
	switch p {
	case RearmOnExhaustion:
		return "exhaustion"
	case RearmOnLanding:
		return "landing"
	default:
		return fmt.Sprintf("RearmPolicy(%d)", int(p))
	}
}

// ParseRearmPolicy maps a config name to a policy. The empty string selects
// RearmOnExhaustion.
func ParseRearmPolicy(name string) (RearmPolicy, error) {
	switch name {
	case "", "exhaustion":
		return RearmOnExhaustion, nil
	case "landing":
		return RearmOnLanding, nil
	default:
		return 0, fmt.Errorf("motion: unknown rearm policy %q", name)
	}
}

// Parameters are the designer-facing tuning values of a character. They are
// fixed for the lifetime of a Controller.
type Parameters struct {
	MaxSpeed         float64
	AccelerationTime float64
	DecelerationTime float64

	ApexHeight  float64
	ApexTime    float64
	JumpCharges int

	GroundProbeOffset float64
	GroundProbeSize   cp.Vector
	GroundMask        uint

	Rearm RearmPolicy
}

// DefaultParameters returns the stock tuning in world units (1 unit ~ 1 tile).
func DefaultParameters() Parameters {
	return Parameters{
		MaxSpeed:          5,
		AccelerationTime:  0.25,
		DecelerationTime:  0.15,
		ApexHeight:        5,
		ApexTime:          0.5,
		JumpCharges:       2,
		GroundProbeOffset: 0.6,
		GroundProbeSize:   cp.Vector{X: 0.5, Y: 0.1},
		GroundMask:        cp.ALL_CATEGORIES,
		Rearm:             RearmOnExhaustion,
	}
}

func (p Parameters) Validate() error {
	if !positive(p.MaxSpeed) {
		return fmt.Errorf("%w: max speed %v", ErrInvalidSpeed, p.MaxSpeed)
	}
	if !positive(p.AccelerationTime) {
		return fmt.Errorf("%w: acceleration time %v", ErrInvalidTime, p.AccelerationTime)
	}
	if !positive(p.DecelerationTime) {
		return fmt.Errorf("%w: deceleration time %v", ErrInvalidTime, p.DecelerationTime)
	}
	if !positive(p.ApexTime) {
		return fmt.Errorf("%w: apex time %v", ErrInvalidTime, p.ApexTime)
	}
	if !positive(p.ApexHeight) {
		return fmt.Errorf("%w: %v", ErrInvalidHeight, p.ApexHeight)
	}
	if p.JumpCharges < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCharges, p.JumpCharges)
	}
	if math.IsNaN(p.GroundProbeOffset) || math.IsInf(p.GroundProbeOffset, 0) {
		return fmt.Errorf("%w: offset %v", ErrInvalidProbe, p.GroundProbeOffset)
	}
	if !positive(p.GroundProbeSize.X) || !positive(p.GroundProbeSize.Y) {
		return fmt.Errorf("%w: size %v", ErrInvalidProbe, p.GroundProbeSize)
	}
	return nil
}

// Derived holds the per-tick constants computed from Parameters. The jump
// values come from the closed-form parabola that peaks at ApexHeight after
// ApexTime seconds.
type Derived struct {
	AccelerationRate float64
	DecelerationRate float64
	Gravity          float64
	InitialJumpSpeed float64
}

// Derive validates p and computes its constants.
func Derive(p Parameters) (Derived, error) {
	if err := p.Validate(); err != nil {
		return Derived{}, err
	}
	return Derived{
		AccelerationRate: p.MaxSpeed / p.AccelerationTime,
		DecelerationRate: p.MaxSpeed / p.DecelerationTime,
		Gravity:          -2 * p.ApexHeight / (p.ApexTime * p.ApexTime),
		InitialJumpSpeed: 2 * p.ApexHeight / p.ApexTime,
	}, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
