package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/motioncore/ecs"
	"github.com/milk9111/motioncore/ecs/component"
	"github.com/milk9111/motioncore/motion"
)

// GravitySink receives world gravity overrides. PhysicsSystem is the only
// implementation in the game.
type GravitySink interface {
	SetGravity(g cp.Vector)
}

// MotionSystem ticks every motion controller and drives its body.
type MotionSystem struct {
	gravity GravitySink
	Debug   bool
}

func NewMotionSystem(gravity GravitySink) *MotionSystem {
	return &MotionSystem{gravity: gravity}
}

func (m *MotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()
	if dt <= 0 {
		return
	}

	var (
		override    cp.Vector
		overridden  bool
		overrideSrc ecs.Entity
	)

	for _, e := range w.Query(component.MotionComponent.Kind(), component.TransformComponent.Kind()) {
		mc, _ := ecs.Get(w, e, component.MotionComponent)
		if mc.Controller == nil {
			continue
		}
		input, _ := ecs.Get(w, e, component.InputComponent)
		body, hasBody := ecs.Get(w, e, component.PhysicsBodyComponent)

		position := bodyPosition(w, e, body, hasBody)
		out := mc.Controller.Tick(dt, motion.Input{
			Position:      position,
			Horizontal:    input.MoveX,
			JumpPressed:   input.JumpPressed,
			MagnetPressed: input.MagnetPressed,
		})

		if hasBody && body.Body != nil {
			body.Body.SetVelocityVector(out.Velocity)
		}

		if m.Debug && out.State != mc.Last.State {
			log.Printf("motion system: entity %s %s -> %s", e, mc.Last.State, out.State)
		}

		if out.GravityChanged {
			if overridden && override != out.Gravity {
				log.Printf("motion system: gravity override from %s replaces %s", e, overrideSrc)
			}
			override = out.Gravity
			overridden = true
			overrideSrc = e
		}

		mc.Last = out
		if err := ecs.Add(w, e, component.MotionComponent, mc); err != nil {
			panic("motion system: update motion: " + err.Error())
		}
	}

	if overridden && m.gravity != nil {
		m.gravity.SetGravity(override)
	}
}

func bodyPosition(w *ecs.World, e ecs.Entity, body component.PhysicsBody, hasBody bool) cp.Vector {
	if hasBody && body.Body != nil {
		return body.Body.Position()
	}
	t, _ := ecs.Get(w, e, component.TransformComponent)
	return cp.Vector{X: t.X, Y: t.Y}
}
