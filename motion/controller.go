package motion

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Input is one tick's worth of samples from the host. The button fields are
// edges: true only on the tick the button went down.
type Input struct {
	Position      cp.Vector
	Horizontal    float64
	JumpPressed   bool
	MagnetPressed bool
	// Dead is the external kill switch. Once seen it sticks.
	Dead bool
}

// Output is what the host applies after a tick.
type Output struct {
	Velocity cp.Vector
	State    State
	Grounded bool

	// Gravity is the magnet's world gravity override. GravityChanged is set
	// only on the tick the mode changed; the host should apply Gravity then.
	Gravity        cp.Vector
	GravityChanged bool
}

type Option func(*Controller)

// WithMagnet attaches a magnet that cycles on Input.MagnetPressed.
func WithMagnet(strength float64) Option {
	return func(c *Controller) {
		c.magnet = NewMagnet(strength)
	}
}

// WithDerived shares precomputed constants between controllers built from
// identical Parameters. NewController rejects d unless it equals
// Derive(params).
func WithDerived(d Derived) Option {
	return func(c *Controller) {
		c.derived = d
	}
}

// Controller owns the motion state of a single character. It is not safe for
// concurrent use.
type Controller struct {
	params  Parameters
	derived Derived
	sensor  *GroundSensor
	magnet  *Magnet

	state RuntimeState
	probe cp.BB
}

// NewController validates params and builds a controller that probes ground
// through tester.
func NewController(params Parameters, tester OverlapTester, opts ...Option) (*Controller, error) {
	derived, err := Derive(params)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		params:  params,
		derived: derived,
		sensor:  NewGroundSensor(tester, params.GroundProbeOffset, params.GroundProbeSize, params.GroundMask),
		state:   newRuntimeState(params.JumpCharges),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.derived != derived {
		return nil, fmt.Errorf("%w: got %+v, want %+v", ErrDerivedMismatch, c.derived, derived)
	}
	return c, nil
}

// Tick advances the controller by dt seconds. dt must be positive and
// finite.
func (c *Controller) Tick(dt float64, in Input) Output {
	if !(dt > 0) || math.IsInf(dt, 1) {
		panic(fmt.Sprintf("motion: tick with invalid dt %v", dt))
	}
	s := &c.state

	s.PreviousState = s.State

	if in.Dead {
		s.Dead = true
	}

	c.probe = c.sensor.Box(in.Position)
	s.Grounded = c.sensor.Grounded(in.Position)
	if s.Grounded && !s.Dead && c.params.Rearm == RearmOnLanding {
		c.rearm()
	}

	gravityChanged := false
	if c.magnet != nil && in.MagnetPressed {
		s.Magnet = c.magnet.Toggle()
		gravityChanged = true
	}

	s.State = nextState(s.State, s.Dead, s.Grounded, s.Velocity.X)

	if s.State != StateDead {
		c.quickTurn(in.Horizontal)
		c.accelerate(in.Horizontal, dt)
		c.jump(in.JumpPressed)
		c.fall(dt)
	}

	out := Output{
		Velocity:       s.Velocity,
		State:          s.State,
		Grounded:       s.Grounded,
		GravityChanged: gravityChanged,
	}
	if c.magnet != nil {
		out.Gravity = c.magnet.Gravity()
	}
	return out
}

// Kill sets the dead flag. The next tick enters StateDead.
func (c *Controller) Kill() {
	c.state.Dead = true
}

func (c *Controller) IsWalking() bool {
	return c.state.Velocity.X != 0
}

func (c *Controller) IsGrounded() bool {
	return c.state.Grounded
}

func (c *Controller) Facing() Facing {
	return c.state.Facing
}

func (c *Controller) State() State {
	return c.state.State
}

func (c *Controller) Velocity() cp.Vector {
	return c.state.Velocity
}

// Snapshot returns a copy of the runtime state.
func (c *Controller) Snapshot() RuntimeState {
	return c.state
}

func (c *Controller) Parameters() Parameters {
	return c.params
}

func (c *Controller) Derived() Derived {
	return c.derived
}

// HasMagnet reports whether the controller was built with WithMagnet.
func (c *Controller) HasMagnet() bool {
	return c.magnet != nil
}

// Probe is the ground probe box used by the latest tick, for debug drawing.
func (c *Controller) Probe() cp.BB {
	return c.probe
}
