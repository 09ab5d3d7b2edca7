package game

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"arena3d/internal/actor"
	"arena3d/internal/collision"
)

func TestMobChasesPlayerWhenPathClear(t *testing.T) {
	cfg := DefaultConfig()
	cm := collision.NewManager()
	var ids actor.IDAllocator

	m := NewMob(&ids, rl.Vector3{}, cfg, cm)
	m.Tick(0.1, rl.Vector3{X: 20}, cfg, cm)

	if m.State() != MobChasing {
		t.Errorf("state = %v, want Chasing", m.State())
	}
	if m.Actor.Position().X <= 0 {
		t.Errorf("mob did not move toward player: %v", m.Actor.Position())
	}

	shape, ok := cm.Get(m.CollisionHandle())
	if !ok {
		t.Fatal("mob volume missing after tick")
	}
	if shape.Position != m.Actor.Position() {
		t.Errorf("volume at %v, actor at %v", shape.Position, m.Actor.Position())
	}
}

func TestMobBlockedByWall(t *testing.T) {
	cfg := DefaultConfig()
	cm := collision.NewManager()
	var ids actor.IDAllocator

	m := NewMob(&ids, rl.Vector3{}, cfg, cm)

	// Wall face at x=0.1; this tick's movement is 0.3 units, so the cast
	// enters the wall at t≈0.33 and movement is blocked.
	cm.AddCollision(collision.NewBox(rl.Vector3{X: 1}, rl.Vector3{X: 0.9, Y: 2, Z: 2}, true))

	m.Tick(0.1, rl.Vector3{X: 20}, cfg, cm)

	if m.Actor.Position().X != 0 {
		t.Errorf("mob moved through a blocking wall to %v", m.Actor.Position())
	}
	if m.State() != MobChasing {
		t.Errorf("state = %v, want Chasing", m.State())
	}
}

func TestMobWalksThroughTriggerVolume(t *testing.T) {
	cfg := DefaultConfig()
	cm := collision.NewManager()
	var ids actor.IDAllocator

	m := NewMob(&ids, rl.Vector3{}, cfg, cm)
	cm.AddCollision(collision.NewBox(rl.Vector3{X: 1}, rl.Vector3{X: 0.9, Y: 2, Z: 2}, false))

	m.Tick(0.1, rl.Vector3{X: 20}, cfg, cm)

	if m.Actor.Position().X <= 0 {
		t.Error("non-blocking volume stopped the mob")
	}
}

func TestMobAttacksInRange(t *testing.T) {
	cfg := DefaultConfig()
	cm := collision.NewManager()
	var ids actor.IDAllocator

	m := NewMob(&ids, rl.Vector3{}, cfg, cm)
	m.Tick(0.1, rl.Vector3{X: cfg.MobAttackRange - 1}, cfg, cm)

	if m.State() != MobAttacking {
		t.Errorf("state = %v, want Attacking", m.State())
	}
	if m.Actor.Position() != (rl.Vector3{}) {
		t.Errorf("attacking mob moved to %v", m.Actor.Position())
	}
}

func TestMobDeathFreesVolume(t *testing.T) {
	cfg := DefaultConfig()
	cm := collision.NewManager()
	var ids actor.IDAllocator

	m := NewMob(&ids, rl.Vector3{}, cfg, cm)
	h := m.CollisionHandle()

	if dead := m.TakeDamage(cfg.MobHealth/2, cm); dead {
		t.Error("half damage reported death")
	}
	if dead := m.TakeDamage(cfg.MobHealth, cm); !dead {
		t.Error("lethal damage not reported")
	}

	if m.State() != MobDying {
		t.Errorf("state = %v, want Dying", m.State())
	}
	if _, ok := cm.Get(h); ok {
		t.Error("dead mob's volume still registered")
	}

	// Further damage on a dying mob is ignored.
	if m.TakeDamage(1, cm) {
		t.Error("dying mob died twice")
	}
}
