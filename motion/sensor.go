package motion

import "github.com/jakecoffman/cp"

// OverlapTester answers whether an axis-aligned box touches any shape whose
// category matches mask. Implementations must be synchronous reads.
type OverlapTester interface {
	OverlapBox(center, size cp.Vector, mask uint) bool
}

// OverlapFunc adapts a plain function to OverlapTester.
type OverlapFunc func(center, size cp.Vector, mask uint) bool

func (f OverlapFunc) OverlapBox(center, size cp.Vector, mask uint) bool {
	return f(center, size, mask)
}

// GroundSensor probes a fixed box below an entity's position.
type GroundSensor struct {
	tester OverlapTester
	offset float64
	size   cp.Vector
	mask   uint
}

func NewGroundSensor(tester OverlapTester, offset float64, size cp.Vector, mask uint) *GroundSensor {
	return &GroundSensor{tester: tester, offset: offset, size: size, mask: mask}
}

// Box returns the probe volume for position.
func (g *GroundSensor) Box(position cp.Vector) cp.BB {
	center := cp.Vector{X: position.X, Y: position.Y - g.offset}
	hw, hh := g.size.X/2, g.size.Y/2
	return cp.BB{L: center.X - hw, B: center.Y - hh, R: center.X + hw, T: center.Y + hh}
}

// Grounded runs the overlap query. A sensor without a tester never reports
// ground.
func (g *GroundSensor) Grounded(position cp.Vector) bool {
	if g == nil || g.tester == nil {
		return false
	}
	center := cp.Vector{X: position.X, Y: position.Y - g.offset}
	return g.tester.OverlapBox(center, g.size, g.mask)
}
