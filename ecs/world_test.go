package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/motioncore/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
				if len(w.Entities()) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(w.Entities()))
				}
			}
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := w.CreateEntity()
	if err := Add(w, old, h, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	w.DestroyEntity(old)

	fresh := w.CreateEntity()
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled entity must not equal the stale handle")
	}
	if Has(w, fresh, h) {
		t.Fatalf("recycled entity must not inherit components")
	}
	if err := Add(w, old, h, 2); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func TestComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1, 10) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1)
				if !ok || v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2, "a"); err != nil {
					return err
				}
				return Add(w, e2, h2, "b")
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2) || !Has(w, e2, h2) {
					t.Fatalf("expected both entities to have string component")
				}
				if v, _ := Get(w, e2, h2); v != "b" {
					t.Fatalf("expected b, got %q", v)
				}
			},
			teardown: func() bool { return Remove(w, e1, h2) },
		},
		{
			name:  "replace_value",
			setup: func() error { return Add(w, e2, h1, 3) },
			check: func(t *testing.T) {
				if err := Add(w, e2, h1, 4); err != nil {
					t.Fatal(err)
				}
				if v, _ := Get(w, e2, h1); v != 4 {
					t.Fatalf("expected 4, got %d", v)
				}
			},
			teardown: func() bool { return Remove(w, e2, h1) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestInvalidKind(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	var zero component.ComponentHandle[int]
	if err := Add(w, e, zero, 1); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	if err := Add(w, e1, h, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h, 3); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	seen := map[Entity]bool{}
	ForEach(w, h, func(e Entity, v *int) {
		seen[e] = true
		*v *= 10
	})
	if !seen[e1] || !seen[e3] || seen[e2] {
		t.Fatalf("unexpected ForEach result %v", seen)
	}
	if v, _ := Get(w, e3, h); v != 30 {
		t.Fatalf("expected ForEach mutation to stick, got %d", v)
	}
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				ha := component.NewComponent[int]()
				hb := component.NewComponent[float64]()

				e1 := w.CreateEntity()
				e2 := w.CreateEntity()
				e3 := w.CreateEntity()
				_ = Add(w, e1, ha, 1)
				_ = Add(w, e2, ha, 2)
				_ = Add(w, e2, hb, 2.5)
				_ = Add(w, e3, hb, 3.5)

				res := w.Query(ha.Kind(), hb.Kind())
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				ha := component.NewComponent[int]()
				e := w.CreateEntity()
				_ = Add(w, e, ha, 1)
				w.DestroyEntity(e)

				if res := w.Query(ha.Kind()); len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
				if _, ok := w.First(ha.Kind()); ok {
					t.Fatalf("First should not find a destroyed entity")
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				ha := component.NewComponent[int]()
				hb := component.NewComponent[int]()
				e := w.CreateEntity()
				_ = Add(w, e, ha, 1)

				if res := w.Query(ha.Kind(), hb.Kind()); res != nil {
					t.Fatalf("expected nil when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

type countingSystem struct {
	calls int
	dt    float64
}

func (c *countingSystem) Update(w *World) {
	c.calls++
	c.dt = w.DeltaTime()
}

func TestScheduler(t *testing.T) {
	a, b := &countingSystem{}, &countingSystem{}
	s := NewScheduler(a, nil, b)
	if len(s.Systems()) != 2 {
		t.Fatalf("nil systems must be skipped, got %d", len(s.Systems()))
	}

	w := NewWorld()
	s.Update(w, 0.5)
	s.Update(w, 0.25)
	if a.calls != 2 || b.calls != 2 {
		t.Fatalf("expected two calls each, got %d and %d", a.calls, b.calls)
	}
	if b.dt != 0.25 {
		t.Fatalf("expected dt 0.25, got %v", b.dt)
	}
}
