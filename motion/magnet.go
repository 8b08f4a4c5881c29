package motion

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// DefaultMagnetStrength matches the magnitude of standard vertical gravity.
const DefaultMagnetStrength = 9.81

type MagnetMode int

const (
	MagnetOff MagnetMode = iota
	MagnetLeft
	MagnetRight
)

func (m MagnetMode) String() string {
	switch m {
	case MagnetOff:
		return "off"
	case MagnetLeft:
		return "left"
	case MagnetRight:
		return "right"
	default:
		return fmt.Sprintf("MagnetMode(%d)", int(m))
	}
}

// Next returns the mode that follows m in the Off -> Left -> Right cycle.
func (m MagnetMode) Next() MagnetMode {
	switch m {
	case MagnetOff:
		return MagnetLeft
	case MagnetLeft:
		return MagnetRight
	default:
		return MagnetOff
	}
}

// Magnet redirects horizontal world gravity. It is independent of the
// vertical jump gravity in Derived and never touches the Y axis.
type Magnet struct {
	mode     MagnetMode
	strength float64
}

func NewMagnet(strength float64) *Magnet {
	return &Magnet{mode: MagnetOff, strength: strength}
}

func (m *Magnet) Mode() MagnetMode {
	return m.mode
}

// Toggle advances the cycle by one step. Callers pass rising edges only.
func (m *Magnet) Toggle() MagnetMode {
	m.mode = m.mode.Next()
	return m.mode
}

// Gravity is the world gravity override for the current mode.
func (m *Magnet) Gravity() cp.Vector {
	switch m.mode {
	case MagnetLeft:
		return cp.Vector{X: -m.strength}
	case MagnetRight:
		return cp.Vector{X: m.strength}
	default:
		return cp.Vector{}
	}
}
