package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/motioncore/ecs"
	"github.com/milk9111/motioncore/ecs/system"
)

const stickDeadzone = 0.2

// keyboardSource polls keyboard and the first gamepad. Ebiten tracks the
// press edges itself.
type keyboardSource struct{}

func (keyboardSource) Sample(*ecs.World) system.InputSample {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	s := system.InputSample{
		Jump:          ebiten.IsKeyPressed(ebiten.KeySpace),
		JumpPressed:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Magnet:        ebiten.IsKeyPressed(ebiten.KeyM),
		MagnetPressed: inpututil.IsKeyJustPressed(ebiten.KeyM),
	}
	if left {
		s.MoveX -= 1
	}
	if right {
		s.MoveX += 1
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			s.MoveX = leftX
		}
		s.Jump = s.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		s.JumpPressed = s.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		s.Magnet = s.Magnet || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
		s.MagnetPressed = s.MagnetPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
	}
	return s
}
