package motion

import "github.com/milk9111/motioncore/common"

// quickTurn drops all horizontal speed when the input points against the
// current facing.
func (c *Controller) quickTurn(horizontal float64) {
	s := &c.state
	if horizontal < 0 && s.Facing == FacingRight {
		s.Velocity.X = 0
		s.Facing = FacingLeft
	} else if horizontal > 0 && s.Facing == FacingLeft {
		s.Velocity.X = 0
		s.Facing = FacingRight
	}
}

func (c *Controller) accelerate(horizontal, dt float64) {
	s := &c.state
	if horizontal < 0 {
		s.Facing = FacingLeft
	} else if horizontal > 0 {
		s.Facing = FacingRight
	}

	if horizontal != 0 {
		s.Velocity.X += c.derived.AccelerationRate * common.Sign(horizontal) * dt
		s.Velocity.X = common.Clamp(s.Velocity.X, -c.params.MaxSpeed, c.params.MaxSpeed)
		return
	}
	s.Velocity.X = common.MoveToward(s.Velocity.X, 0, c.derived.DecelerationRate*dt)
}

func (c *Controller) jump(pressed bool) {
	if !pressed {
		return
	}
	s := &c.state

	switch {
	case s.Grounded:
		c.impulse()
		s.Grounded = false
	case s.ChainActive && s.RemainingJumps >= 1:
		c.impulse()
	case s.ChainActive:
		// Only reachable while waiting for a landing rearm.
		return
	default:
		return
	}

	if s.RemainingJumps <= 0 && c.params.Rearm == RearmOnExhaustion {
		c.rearm()
	}
}

func (c *Controller) impulse() {
	s := &c.state
	s.Velocity.Y = c.derived.InitialJumpSpeed
	s.RemainingJumps--
	s.ChainActive = true
}

func (c *Controller) rearm() {
	c.state.RemainingJumps = c.params.JumpCharges
	c.state.ChainActive = false
}

// fall integrates jump gravity. Grounded characters never accumulate
// downward speed.
func (c *Controller) fall(dt float64) {
	s := &c.state
	if s.Grounded {
		s.Velocity.Y = 0
		return
	}
	s.Velocity.Y += c.derived.Gravity * dt
}
