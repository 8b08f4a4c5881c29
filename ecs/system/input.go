package system

import (
	"github.com/milk9111/motioncore/common"
	"github.com/milk9111/motioncore/ecs"
	"github.com/milk9111/motioncore/ecs/component"
	"github.com/milk9111/motioncore/motion"
)

// InputSample is one poll of a device or script. Sources that know their
// own edges set the *Pressed fields; level-only sources leave them false
// and set EdgesFromLevels.
type InputSample struct {
	MoveX         float64
	Jump          bool
	JumpPressed   bool
	Magnet        bool
	MagnetPressed bool

	EdgesFromLevels bool
}

type InputSource interface {
	Sample(w *ecs.World) InputSample
}

type InputSystem struct {
	source InputSource
	jump   motion.EdgeDetector
	magnet motion.EdgeDetector
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

// SetSource swaps the input source and forgets any held buttons.
func (i *InputSystem) SetSource(source InputSource) {
	i.source = source
	i.jump.Reset()
	i.magnet.Reset()
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	sample := i.source.Sample(w)
	jumpEdge := i.jump.Rising(sample.Jump)
	magnetEdge := i.magnet.Rising(sample.Magnet)
	if sample.EdgesFromLevels {
		sample.JumpPressed = jumpEdge
		sample.MagnetPressed = magnetEdge
	}

	ecs.ForEach(w, component.InputComponent, func(e ecs.Entity, input *component.Input) {
		input.MoveX = common.Clamp(sample.MoveX, -1, 1)
		input.Jump = sample.Jump
		input.JumpPressed = sample.JumpPressed
		input.Magnet = sample.Magnet
		input.MagnetPressed = sample.MagnetPressed
	})
}
