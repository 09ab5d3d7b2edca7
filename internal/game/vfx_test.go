package game

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestParticlePoolReusesExpiredSlots(t *testing.T) {
	pool := NewParticlePool()

	h := pool.Spawn(rl.Vector3{}, rl.Vector3{Y: 1}, rl.Orange, 0.1)
	pool.Tick(0.2) // expires the instance

	if pool.ActiveCount() != 0 {
		t.Fatalf("ActiveCount = %d after expiry", pool.ActiveCount())
	}

	reused := pool.Spawn(rl.Vector3{X: 1}, rl.Vector3{}, rl.Gray, 1)
	if reused != h {
		t.Errorf("expired slot not reused: handle %d, want %d", reused.Index(), h.Index())
	}
	if pool.Size() != 1 {
		t.Errorf("pool grew to %d slots despite a free one", pool.Size())
	}
}

func TestParticlePoolGrowsWhenAllActive(t *testing.T) {
	pool := NewParticlePool()

	h1 := pool.Spawn(rl.Vector3{}, rl.Vector3{}, rl.Orange, 10)
	h2 := pool.Spawn(rl.Vector3{}, rl.Vector3{}, rl.Orange, 10)

	if h1 == h2 {
		t.Error("active slot handed back to a second spawn")
	}
	if pool.Size() != 2 {
		t.Errorf("Size = %d, want 2", pool.Size())
	}
	if pool.ActiveCount() != 2 {
		t.Errorf("ActiveCount = %d, want 2", pool.ActiveCount())
	}
}

func TestParticlesMoveWhileActive(t *testing.T) {
	pool := NewParticlePool()
	pool.Spawn(rl.Vector3{}, rl.Vector3{Y: 2}, rl.Orange, 1)

	pool.Tick(0.5)

	moved := false
	pool.Each(func(inst ParticleInstance) {
		if inst.Position.Y > 0.9 && inst.Position.Y < 1.1 {
			moved = true
		}
	})
	if !moved {
		t.Error("active particle did not advance by velocity*dt")
	}
}

func TestPropVolumes(t *testing.T) {
	cases := []struct {
		propType PropType
		extents  rl.Vector3
		block    bool
	}{
		{PropShotgun, rl.Vector3{X: 1, Y: 1, Z: 1}, false},
		{PropBarrel, rl.Vector3{X: 2, Y: 2, Z: 2}, true},
		{PropSign, rl.Vector3{X: 1.5, Y: 2, Z: 0.25}, true},
	}

	for _, tc := range cases {
		extents, block := propVolume(tc.propType)
		if extents != tc.extents || block != tc.block {
			t.Errorf("%v: volume = %v block=%v, want %v block=%v",
				tc.propType, extents, block, tc.extents, tc.block)
		}
	}
}
