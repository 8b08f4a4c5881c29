package common

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// MoveToward steps v toward target by at most delta without passing it.
func MoveToward(v, target, delta float64) float64 {
	if v < target {
		v += delta
		if v > target {
			return target
		}
		return v
	}
	if v > target {
		v -= delta
		if v < target {
			return target
		}
	}
	return v
}
