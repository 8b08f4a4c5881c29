package motion

// nextState evaluates one transition. vx is the horizontal velocity from the
// end of the previous tick: the state always lags the integrator by one tick.
func nextState(current State, dead, grounded bool, vx float64) State {
	if dead {
		return StateDead
	}

	switch current {
	case StateDead:
		return StateDead
	case StateIdle:
		if !grounded {
			return StateJumping
		}
		if vx != 0 {
			return StateWalking
		}
	case StateWalking:
		if !grounded {
			return StateJumping
		}
		if vx == 0 {
			return StateIdle
		}
	case StateJumping:
		if grounded {
			if vx != 0 {
				return StateWalking
			}
			return StateIdle
		}
	}
	return current
}
