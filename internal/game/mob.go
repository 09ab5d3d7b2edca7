package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"arena3d/internal/actor"
	"arena3d/internal/collision"
)

type MobState int

const (
	MobIdle MobState = iota
	MobChasing
	MobAttacking
	MobDying
)

var mobExtents = rl.Vector3{X: 2, Y: 2, Z: 2}

// Mob is a melee chaser. It owns one blocking collision volume that tracks
// its actor every tick.
type Mob struct {
	Actor *actor.Actor

	collisionHandle collision.Handle
	state           MobState
	health          float32
}

func NewMob(ids *actor.IDAllocator, position rl.Vector3, cfg Config, cm *collision.Manager) *Mob {
	m := &Mob{
		Actor:  actor.New(ids),
		state:  MobIdle,
		health: cfg.MobHealth,
	}
	m.Actor.SetPosition(position)
	m.collisionHandle = cm.AddCollision(collision.NewBox(position, mobExtents, true))
	return m
}

func (m *Mob) State() MobState {
	return m.state
}

func (m *Mob) Health() float32 {
	return m.health
}

func (m *Mob) CollisionHandle() collision.Handle {
	return m.collisionHandle
}

// Tick chases the player, using a ray cast over this tick's movement to
// stop at blocking geometry. The mob's own volume is removed around the
// cast and re-added after, per the manager's self-intersection contract;
// the fresh handle replaces the old one.
func (m *Mob) Tick(dt float32, playerPos rl.Vector3, cfg Config, cm *collision.Manager) {
	if m.state == MobDying {
		return
	}

	pos := m.Actor.Position()
	toPlayer := rl.Vector3Subtract(playerPos, pos)
	dist := rl.Vector3Length(toPlayer)

	if dist > cfg.MobAttackRange {
		cm.RemoveCollision(m.collisionHandle)

		move := rl.Vector3Scale(toPlayer, dt*cfg.MobSpeed/dist)
		hit, found := cm.CastRay(pos, move)
		blocked := found && hit.T >= 0 && hit.T < 1 && hit.Blocks
		if !blocked {
			pos = rl.Vector3Add(pos, move)
			m.Actor.SetPosition(pos)
		}

		m.collisionHandle = cm.AddCollision(collision.NewBox(pos, mobExtents, true))
		m.state = MobChasing
	} else {
		m.state = MobAttacking
	}

	// Face the player on the ground plane.
	if toPlayer.X != 0 || toPlayer.Z != 0 {
		yaw := atan2Deg(toPlayer.X, toPlayer.Z)
		m.Actor.SetRotation(rl.Vector3{Y: yaw})
	}

	cm.UpdatePosition(m.collisionHandle, m.Actor.Position())
}

// TakeDamage applies damage and reports whether the mob died. A dying mob
// gives up its collision volume immediately so corpses don't block shots.
func (m *Mob) TakeDamage(damage float32, cm *collision.Manager) bool {
	if m.state == MobDying {
		return false
	}

	m.health -= damage
	if m.health <= 0 {
		cm.RemoveCollision(m.collisionHandle)
		m.state = MobDying
		return true
	}
	return false
}
