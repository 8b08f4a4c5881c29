package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/motioncore/ecs"
	"github.com/milk9111/motioncore/ecs/component"
)

const spaceIterations = 20

// PhysicsSystem owns the Chipmunk space. It is the only writer of world
// gravity and doubles as the overlap tester behind ground probes.
type PhysicsSystem struct {
	space  *cp.Space
	bodies map[ecs.Entity]*bodyInfo
	Debug  bool
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem(gravity cp.Vector) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = spaceIterations
	space.SetGravity(gravity)
	return &PhysicsSystem{
		space:  space,
		bodies: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Gravity is the world gravity currently applied to the space.
func (ps *PhysicsSystem) Gravity() cp.Vector {
	return ps.space.Gravity()
}

// SetGravity replaces world gravity for every body that does not ignore it.
func (ps *PhysicsSystem) SetGravity(g cp.Vector) {
	if ps.Debug {
		log.Printf("physics system: gravity %v -> %v", ps.space.Gravity(), g)
	}
	ps.space.SetGravity(g)
}

// OverlapBox reports whether any shape in a category covered by mask
// intersects the axis-aligned box.
func (ps *PhysicsSystem) OverlapBox(center, size cp.Vector, mask uint) bool {
	if ps == nil || ps.space == nil {
		return false
	}
	bb := cp.NewBBForExtents(center, size.X/2, size.Y/2)
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, mask)
	hit := false
	ps.space.BBQuery(bb, filter, func(shape *cp.Shape, data interface{}) {
		hit = true
	}, nil)
	return hit
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.cleanupEntities(w)
	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		ps.EnsureBody(w, e)
	}

	if dt := w.DeltaTime(); dt > 0 {
		ps.space.Step(dt)
	}

	ps.syncTransforms(w)
}

// EnsureBody creates the Chipmunk body and shape for e if it has none yet.
func (ps *PhysicsSystem) EnsureBody(w *ecs.World, e ecs.Entity) {
	if _, ok := ps.bodies[e]; ok {
		return
	}
	bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}
	layer, _ := ecs.Get(w, e, component.CollisionLayerComponent)

	info := ps.createBodyInfo(transform, bodyComp, layer)
	ps.bodies[e] = info

	bodyComp.Body = info.body
	bodyComp.Shape = info.shape
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, bodyComp); err != nil {
		panic("physics system: update body: " + err.Error())
	}
}

func (ps *PhysicsSystem) createBodyInfo(transform component.Transform, bodyComp component.PhysicsBody, layer component.CollisionLayer) *bodyInfo {
	width, height := bodyComp.Width, bodyComp.Height
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}
	filter := shapeFilter(layer)

	if bodyComp.Static {
		bb := cp.NewBBForExtents(cp.Vector{X: transform.X, Y: transform.Y}, width/2, height/2)
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetSensor(bodyComp.Sensor)
		shape.SetFilter(filter)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	moment := cp.MomentForBox(mass, width, height)
	if bodyComp.IgnoreGravity {
		// motion-driven bodies never rotate
		moment = math.Inf(1)
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)
	if bodyComp.IgnoreGravity {
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
		})
	}

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetSensor(bodyComp.Sensor)
	shape.SetFilter(filter)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape}
}

func shapeFilter(layer component.CollisionLayer) cp.ShapeFilter {
	category := layer.Category
	if category == 0 {
		category = component.CategorySolid
	}
	mask := layer.Mask
	if mask == 0 {
		mask = cp.ALL_CATEGORIES
	}
	return cp.NewShapeFilter(cp.NO_GROUP, category, mask)
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.bodies {
		if info.static {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = info.body.Angle()
		_ = ecs.Add(w, e, component.TransformComponent, transform)
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.bodies {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent) {
			continue
		}
		ps.space.RemoveShape(info.shape)
		if !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.bodies, e)
	}
}

// Reset drops every body and shape so a new sandbox can be built.
func (ps *PhysicsSystem) Reset(gravity cp.Vector) {
	space := cp.NewSpace()
	space.Iterations = spaceIterations
	space.SetGravity(gravity)
	ps.space = space
	ps.bodies = make(map[ecs.Entity]*bodyInfo)
}
