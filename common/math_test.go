package common

import "testing"

func TestMoveToward(t *testing.T) {
	cases := []struct {
		name             string
		v, target, delta float64
		want             float64
	}{
		{"up", 0, 1, 0.25, 0.25},
		{"down", 1, 0, 0.25, 0.75},
		{"stops_at_target_from_below", -0.1, 0, 0.25, 0},
		{"stops_at_target_from_above", 0.1, 0, 0.25, 0},
		{"at_target", 2, 2, 1, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := MoveToward(c.v, c.target, c.delta); got != c.want {
				t.Fatalf("MoveToward(%v, %v, %v) = %v, want %v", c.v, c.target, c.delta, got, c.want)
			}
		})
	}
}

func TestSignAndClamp(t *testing.T) {
	for v, want := range map[float64]float64{-3: -1, 0: 0, 0.2: 1} {
		if got := Sign(v); got != want {
			t.Fatalf("Sign(%v) = %v, want %v", v, got, want)
		}
	}
	if got := Clamp(7, -5, 5); got != 5 {
		t.Fatalf("Clamp high = %v", got)
	}
	if got := Clamp(-7, -5, 5); got != -5 {
		t.Fatalf("Clamp low = %v", got)
	}
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Fatalf("Lerp = %v", got)
	}
}
