package entity

import (
	"fmt"

	"github.com/milk9111/motioncore/ecs"
	"github.com/milk9111/motioncore/ecs/system"
	"github.com/milk9111/motioncore/prefabs"
)

// Sandbox is the set of entities built from one SandboxSpec.
type Sandbox struct {
	Player  ecs.Entity
	Solids  []ecs.Entity
	Crates  []ecs.Entity
	Hazards []ecs.Entity
}

// BuildSandbox populates w from spec and creates every physics body up
// front so the first motion tick already sees real positions.
func BuildSandbox(w *ecs.World, physics *system.PhysicsSystem, spec prefabs.SandboxSpec) (*Sandbox, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("sandbox: %w", err)
	}

	sb := &Sandbox{}
	for _, box := range spec.Solids {
		e, err := NewSolid(w, box)
		if err != nil {
			return nil, err
		}
		sb.Solids = append(sb.Solids, e)
	}
	for _, box := range spec.Crates {
		e, err := NewCrate(w, box)
		if err != nil {
			return nil, err
		}
		sb.Crates = append(sb.Crates, e)
	}
	for _, box := range spec.Hazards {
		e, err := NewHazard(w, box)
		if err != nil {
			return nil, err
		}
		sb.Hazards = append(sb.Hazards, e)
	}

	player, err := NewPlayer(w, spec, physics)
	if err != nil {
		return nil, err
	}
	sb.Player = player

	for _, e := range sb.all() {
		physics.EnsureBody(w, e)
	}
	return sb, nil
}

func (sb *Sandbox) all() []ecs.Entity {
	out := make([]ecs.Entity, 0, len(sb.Solids)+len(sb.Crates)+len(sb.Hazards)+1)
	out = append(out, sb.Solids...)
	out = append(out, sb.Crates...)
	out = append(out, sb.Hazards...)
	return append(out, sb.Player)
}
