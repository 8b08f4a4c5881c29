package entity

import (
	"fmt"

	"github.com/milk9111/motioncore/ecs"
	"github.com/milk9111/motioncore/ecs/component"
	"github.com/milk9111/motioncore/motion"
	"github.com/milk9111/motioncore/prefabs"
)

// NewPlayer creates the motion-driven player. Its controller probes ground
// through tester and ignores world gravity.
func NewPlayer(w *ecs.World, spec prefabs.SandboxSpec, tester motion.OverlapTester) (ecs.Entity, error) {
	params, err := spec.Motion.ToParameters()
	if err != nil {
		return 0, fmt.Errorf("player: parameters: %w", err)
	}
	params.GroundMask = component.GroundMask

	var opts []motion.Option
	if spec.Magnet.Enabled {
		opts = append(opts, motion.WithMagnet(spec.Magnet.ResolvedStrength()))
	}
	controller, err := motion.NewController(params, tester, opts...)
	if err != nil {
		return 0, fmt.Errorf("player: controller: %w", err)
	}

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: spec.Player.X, Y: spec.Player.Y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent, component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.MotionComponent, component.Motion{Controller: controller}); err != nil {
		return 0, fmt.Errorf("player: add motion: %w", err)
	}

	body := component.PhysicsBody{
		Width:         spec.Player.Collider.Width,
		Height:        spec.Player.Collider.Height,
		Mass:          spec.Player.Mass,
		Friction:      spec.Player.Friction,
		IgnoreGravity: true,
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, body); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	layer := component.CollisionLayer{
		Category: component.CategoryPlayer,
		Mask:     component.CategorySolid | component.CategoryCrate,
	}
	if err := ecs.Add(w, e, component.CollisionLayerComponent, layer); err != nil {
		return 0, fmt.Errorf("player: add collision layer: %w", err)
	}
	return e, nil
}
