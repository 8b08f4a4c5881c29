package prefabs

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/motioncore/common"
	"github.com/milk9111/motioncore/motion"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFormat = errors.New("prefabs: unknown spec format")
	ErrInvalidBox    = errors.New("prefabs: invalid box")
)

// LoadSpec reads name from disk or the embedded prefabs and decodes it by
// extension: .yaml/.yml with yaml.v3, .toml with BurntSushi/toml.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec, err := DecodeSpec[T](filename, data)
	if err != nil {
		return zero, err
	}
	return spec, nil
}

func DecodeSpec[T any](filename string, data []byte) (T, error) {
	var spec T
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return spec, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &spec); err != nil {
			return spec, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
		}
	default:
		return spec, fmt.Errorf("%w: %s", ErrUnknownFormat, filename)
	}
	return spec, nil
}

// SandboxSpec describes a playable test level for one motion-driven player.
type SandboxSpec struct {
	Name    string     `yaml:"name" toml:"name"`
	Debug   bool       `yaml:"debug" toml:"debug"`
	Gravity float64    `yaml:"gravity" toml:"gravity"`
	Motion  MotionSpec `yaml:"motion" toml:"motion"`
	Magnet  MagnetSpec `yaml:"magnet" toml:"magnet"`
	Player  PlayerSpec `yaml:"player" toml:"player"`
	Solids  []BoxSpec  `yaml:"solids" toml:"solids"`
	Crates  []BoxSpec  `yaml:"crates" toml:"crates"`
	Hazards []BoxSpec  `yaml:"hazards" toml:"hazards"`
	Script  ScriptSpec `yaml:"script" toml:"script"`
}

// MotionSpec mirrors motion.Parameters. Absent keys fall back to
// motion.DefaultParameters; a key that is present is taken as written, so an
// explicit zero fails validation.
type MotionSpec struct {
	MaxSpeed          *float64  `yaml:"max_speed,omitempty" toml:"max_speed,omitempty"`
	AccelerationTime  *float64  `yaml:"acceleration_time,omitempty" toml:"acceleration_time,omitempty"`
	DecelerationTime  *float64  `yaml:"deceleration_time,omitempty" toml:"deceleration_time,omitempty"`
	ApexHeight        *float64  `yaml:"apex_height,omitempty" toml:"apex_height,omitempty"`
	ApexTime          *float64  `yaml:"apex_time,omitempty" toml:"apex_time,omitempty"`
	JumpCharges       *int      `yaml:"jump_charges,omitempty" toml:"jump_charges,omitempty"`
	GroundProbeOffset *float64  `yaml:"ground_probe_offset,omitempty" toml:"ground_probe_offset,omitempty"`
	GroundProbeSize   *SizeSpec `yaml:"ground_probe_size,omitempty" toml:"ground_probe_size,omitempty"`
	Rearm             string    `yaml:"rearm,omitempty" toml:"rearm,omitempty"`
}

type MagnetSpec struct {
	Enabled  bool    `yaml:"enabled" toml:"enabled"`
	Strength float64 `yaml:"strength" toml:"strength"`
}

type PlayerSpec struct {
	X        float64  `yaml:"x" toml:"x"`
	Y        float64  `yaml:"y" toml:"y"`
	Collider SizeSpec `yaml:"collider" toml:"collider"`
	Mass     float64  `yaml:"mass" toml:"mass"`
	Friction float64  `yaml:"friction" toml:"friction"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BoxSpec is an axis-aligned box centred on (X, Y).
type BoxSpec struct {
	X          float64 `yaml:"x" toml:"x"`
	Y          float64 `yaml:"y" toml:"y"`
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	Mass       float64 `yaml:"mass" toml:"mass"`
	Friction   float64 `yaml:"friction" toml:"friction"`
	Elasticity float64 `yaml:"elasticity" toml:"elasticity"`
}

// ScriptSpec names the tengo script the simulator runs when -script is not
// given.
type ScriptSpec struct {
	Path string `yaml:"path" toml:"path"`
}

func LoadSandboxSpec(filename string) (SandboxSpec, error) {
	spec, err := LoadSpec[SandboxSpec](filename)
	if err != nil {
		return SandboxSpec{}, err
	}
	if err := spec.Validate(); err != nil {
		return SandboxSpec{}, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return spec, nil
}

func (s SandboxSpec) Validate() error {
	if _, err := s.Motion.ToParameters(); err != nil {
		return err
	}
	if s.Player.Collider.Width <= 0 || s.Player.Collider.Height <= 0 {
		return fmt.Errorf("%w: player collider %vx%v", ErrInvalidBox, s.Player.Collider.Width, s.Player.Collider.Height)
	}
	groups := []struct {
		name  string
		boxes []BoxSpec
	}{
		{"solid", s.Solids},
		{"crate", s.Crates},
		{"hazard", s.Hazards},
	}
	for _, g := range groups {
		for i, b := range g.boxes {
			if b.Width <= 0 || b.Height <= 0 {
				return fmt.Errorf("%w: %s %d is %vx%v", ErrInvalidBox, g.name, i, b.Width, b.Height)
			}
		}
	}
	return nil
}

// WorldGravity is the host default gravity used until the magnet first
// toggles.
func (s SandboxSpec) WorldGravity() cp.Vector {
	if s.Gravity == 0 {
		return cp.Vector{Y: common.Gravity}
	}
	return cp.Vector{Y: s.Gravity}
}

func (m MagnetSpec) ResolvedStrength() float64 {
	if m.Strength <= 0 {
		return motion.DefaultMagnetStrength
	}
	return m.Strength
}

// ToParameters overlays the present fields on the defaults and validates
// the result.
func (m MotionSpec) ToParameters() (motion.Parameters, error) {
	p := motion.DefaultParameters()
	overlay(&p.MaxSpeed, m.MaxSpeed)
	overlay(&p.AccelerationTime, m.AccelerationTime)
	overlay(&p.DecelerationTime, m.DecelerationTime)
	overlay(&p.ApexHeight, m.ApexHeight)
	overlay(&p.ApexTime, m.ApexTime)
	overlay(&p.JumpCharges, m.JumpCharges)
	overlay(&p.GroundProbeOffset, m.GroundProbeOffset)
	if m.GroundProbeSize != nil {
		p.GroundProbeSize = cp.Vector{X: m.GroundProbeSize.Width, Y: m.GroundProbeSize.Height}
	}
	rearm, err := motion.ParseRearmPolicy(m.Rearm)
	if err != nil {
		return motion.Parameters{}, err
	}
	p.Rearm = rearm

	if err := p.Validate(); err != nil {
		return motion.Parameters{}, err
	}
	return p, nil
}

func overlay[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// MotionSpecFromParameters is the inverse of ToParameters for a fully
// populated parameter set.
func MotionSpecFromParameters(p motion.Parameters) MotionSpec {
	return MotionSpec{
		MaxSpeed:          &p.MaxSpeed,
		AccelerationTime:  &p.AccelerationTime,
		DecelerationTime:  &p.DecelerationTime,
		ApexHeight:        &p.ApexHeight,
		ApexTime:          &p.ApexTime,
		JumpCharges:       &p.JumpCharges,
		GroundProbeOffset: &p.GroundProbeOffset,
		GroundProbeSize:   &SizeSpec{Width: p.GroundProbeSize.X, Height: p.GroundProbeSize.Y},
		Rearm:             p.Rearm.String(),
	}
}

// MarshalMotionYAML renders p the way it appears under motion: in a sandbox
// file.
func MarshalMotionYAML(p motion.Parameters) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]MotionSpec{"motion": MotionSpecFromParameters(p)}); err != nil {
		return nil, fmt.Errorf("prefabs: marshal motion: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("prefabs: marshal motion: %w", err)
	}
	return buf.Bytes(), nil
}
