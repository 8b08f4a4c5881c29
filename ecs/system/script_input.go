package system

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/motioncore/ecs"
	"github.com/milk9111/motioncore/ecs/component"
)

var ErrScriptOutput = errors.New("script input: bad output")

// ScriptInput drives the player from a tengo script run once per tick.
//
// The script sees the globals tick, grounded, state, x and y, and sets any
// of move (number in [-1, 1]), jump and magnet (held levels). Outputs are
// cleared before every run.
type ScriptInput struct {
	compiled *tengo.Compiled
	tick     int
	err      error
}

func NewScriptInput(src []byte) (*ScriptInput, error) {
	script := tengo.NewScript(src)
	for name, v := range map[string]any{
		"tick":     0,
		"grounded": false,
		"state":    "",
		"x":        0.0,
		"y":        0.0,
		"move":     0.0,
		"jump":     false,
		"magnet":   false,
	} {
		if err := script.Add(name, v); err != nil {
			return nil, fmt.Errorf("script input: add %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script input: compile: %w", err)
	}
	return &ScriptInput{compiled: compiled}, nil
}

// Err is the first error the script produced. Once set, Sample returns
// neutral input.
func (s *ScriptInput) Err() error {
	return s.err
}

func (s *ScriptInput) Sample(w *ecs.World) InputSample {
	if s.err != nil {
		return InputSample{EdgesFromLevels: true}
	}
	if err := s.run(w); err != nil {
		s.err = err
		return InputSample{EdgesFromLevels: true}
	}

	move := s.compiled.Get("move")
	if !move.IsUndefined() && move.ValueType() != "int" && move.ValueType() != "float" {
		s.err = fmt.Errorf("%w: move is %s", ErrScriptOutput, move.ValueType())
		return InputSample{EdgesFromLevels: true}
	}

	return InputSample{
		MoveX:           move.Float(),
		Jump:            s.compiled.Get("jump").Bool(),
		Magnet:          s.compiled.Get("magnet").Bool(),
		EdgesFromLevels: true,
	}
}

func (s *ScriptInput) run(w *ecs.World) error {
	globals := map[string]any{
		"tick":   s.tick,
		"move":   0.0,
		"jump":   false,
		"magnet": false,
	}
	s.tick++

	if player, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		if mc, ok := ecs.Get(w, player, component.MotionComponent); ok {
			globals["grounded"] = mc.Last.Grounded
			globals["state"] = mc.Last.State.String()
		}
		if t, ok := ecs.Get(w, player, component.TransformComponent); ok {
			globals["x"] = t.X
			globals["y"] = t.Y
		}
	}

	for name, v := range globals {
		if err := s.compiled.Set(name, v); err != nil {
			return fmt.Errorf("script input: set %s: %w", name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("script input: run tick %d: %w", s.tick-1, err)
	}
	return nil
}
