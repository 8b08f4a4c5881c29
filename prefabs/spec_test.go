package prefabs

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/motioncore/common"
	"github.com/milk9111/motioncore/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSandboxYAML(t *testing.T) {
	spec, err := LoadSandboxSpec("sandbox.yaml")
	require.NoError(t, err)

	assert.Equal(t, "sandbox", spec.Name)
	assert.True(t, spec.Magnet.Enabled)
	assert.Equal(t, motion.DefaultMagnetStrength, spec.Magnet.ResolvedStrength())
	assert.Len(t, spec.Solids, 5)
	assert.Len(t, spec.Crates, 3)
	assert.Len(t, spec.Hazards, 1)
	assert.Equal(t, "scripts/walk_jump.tengo", spec.Script.Path)

	p, err := spec.Motion.ToParameters()
	require.NoError(t, err)
	want := motion.DefaultParameters()
	want.GroundProbeOffset = 0.5
	assert.Equal(t, want, p)
}

func TestLoadSandboxTOML(t *testing.T) {
	spec, err := LoadSandboxSpec("sandbox_landing.toml")
	require.NoError(t, err)

	assert.Equal(t, "sandbox-landing", spec.Name)
	assert.True(t, spec.Debug)
	assert.False(t, spec.Magnet.Enabled)
	assert.Equal(t, SizeSpec{Width: 0.8, Height: 1}, spec.Player.Collider)
	assert.Len(t, spec.Solids, 2)
	assert.Len(t, spec.Hazards, 1)

	p, err := spec.Motion.ToParameters()
	require.NoError(t, err)
	assert.Equal(t, motion.RearmOnLanding, p.Rearm)
	assert.Equal(t, 3, p.JumpCharges)
	assert.Equal(t, 6.0, p.MaxSpeed)
	// unset probe fields keep their defaults
	assert.Equal(t, motion.DefaultParameters().GroundProbeSize, p.GroundProbeSize)
}

func TestMotionSpecToParameters(t *testing.T) {
	tests := []struct {
		name    string
		spec    MotionSpec
		wantErr error
		check   func(t *testing.T, p motion.Parameters)
	}{
		{
			name: "empty_is_default",
			check: func(t *testing.T, p motion.Parameters) {
				assert.Equal(t, motion.DefaultParameters(), p)
			},
		},
		{
			name: "overlay",
			spec: MotionSpec{ApexHeight: ptr(2.0), GroundProbeSize: &SizeSpec{Width: 1, Height: 0.2}},
			check: func(t *testing.T, p motion.Parameters) {
				assert.Equal(t, 2.0, p.ApexHeight)
				assert.Equal(t, cp.Vector{X: 1, Y: 0.2}, p.GroundProbeSize)
				assert.Equal(t, 5.0, p.MaxSpeed)
			},
		},
		{name: "negative_speed", spec: MotionSpec{MaxSpeed: ptr(-1.0)}, wantErr: motion.ErrInvalidSpeed},
		{name: "negative_charges", spec: MotionSpec{JumpCharges: ptr(-2)}, wantErr: motion.ErrInvalidCharges},
		{name: "negative_apex_time", spec: MotionSpec{ApexTime: ptr(-0.5)}, wantErr: motion.ErrInvalidTime},
		{name: "zero_speed", spec: MotionSpec{MaxSpeed: ptr(0.0)}, wantErr: motion.ErrInvalidSpeed},
		{name: "zero_charges", spec: MotionSpec{JumpCharges: ptr(0)}, wantErr: motion.ErrInvalidCharges},
		{name: "zero_acceleration_time", spec: MotionSpec{AccelerationTime: ptr(0.0)}, wantErr: motion.ErrInvalidTime},
		{name: "zero_probe_size", spec: MotionSpec{GroundProbeSize: &SizeSpec{}}, wantErr: motion.ErrInvalidProbe},
		{
			name: "zero_probe_offset_allowed",
			spec: MotionSpec{GroundProbeOffset: ptr(0.0)},
			check: func(t *testing.T, p motion.Parameters) {
				assert.Zero(t, p.GroundProbeOffset)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := tc.spec.ToParameters()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, p)
		})
	}

	_, err := MotionSpec{Rearm: "sometimes"}.ToParameters()
	assert.Error(t, err)
}

func TestDecodedZeroIsRejected(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		data    string
		wantErr error
	}{
		{"yaml_charges", "zero.yaml", "motion:\n  jump_charges: 0\n", motion.ErrInvalidCharges},
		{"yaml_acceleration", "zero.yaml", "motion:\n  acceleration_time: 0\n", motion.ErrInvalidTime},
		{"toml_charges", "zero.toml", "[motion]\njump_charges = 0\n", motion.ErrInvalidCharges},
		{"toml_max_speed", "zero.toml", "[motion]\nmax_speed = 0.0\n", motion.ErrInvalidSpeed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := DecodeSpec[SandboxSpec](tc.file, []byte(tc.data))
			require.NoError(t, err)
			_, err = spec.Motion.ToParameters()
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSandboxValidate(t *testing.T) {
	valid := SandboxSpec{Player: PlayerSpec{Collider: SizeSpec{Width: 1, Height: 1}}}
	require.NoError(t, valid.Validate())

	noCollider := valid
	noCollider.Player.Collider = SizeSpec{}
	assert.ErrorIs(t, noCollider.Validate(), ErrInvalidBox)

	flatCrate := valid
	flatCrate.Crates = []BoxSpec{{Width: 1}}
	assert.ErrorIs(t, flatCrate.Validate(), ErrInvalidBox)

	badMotion := valid
	badMotion.Motion.DecelerationTime = ptr(-1.0)
	assert.ErrorIs(t, badMotion.Validate(), motion.ErrInvalidTime)
}

func TestWorldGravity(t *testing.T) {
	assert.Equal(t, cp.Vector{Y: common.Gravity}, SandboxSpec{}.WorldGravity())
	assert.Equal(t, cp.Vector{Y: -3}, SandboxSpec{Gravity: -3}.WorldGravity())
}

func TestDecodeSpecUnknownFormat(t *testing.T) {
	_, err := DecodeSpec[SandboxSpec]("sandbox.json", []byte("{}"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestMarshalMotionYAML(t *testing.T) {
	p := motion.DefaultParameters()
	p.MaxSpeed = 7
	p.Rearm = motion.RearmOnLanding

	data, err := MarshalMotionYAML(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), "max_speed: 7")
	assert.Contains(t, string(data), "rearm: landing")

	spec, err := DecodeSpec[SandboxSpec]("copied.yaml", data)
	require.NoError(t, err)
	got, err := spec.Motion.ToParameters()
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"walk_jump.tengo", "scripts/walk_jump.tengo", "prefabs/scripts/walk_jump.tengo"} {
		t.Run(name, func(t *testing.T) {
			data, err := LoadScript(name)
			require.NoError(t, err)
			assert.Contains(t, string(data), "move = 1")
		})
	}

	_, err := LoadScript("missing.tengo")
	assert.Error(t, err)
}

func ptr[T any](v T) *T {
	return &v
}
