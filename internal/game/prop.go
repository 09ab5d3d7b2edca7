package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"arena3d/internal/actor"
	"arena3d/internal/collision"
)

type PropType int

const (
	PropShotgun PropType = iota
	PropBarrel
	PropSign
)

func (t PropType) String() string {
	switch t {
	case PropShotgun:
		return "Shotgun"
	case PropBarrel:
		return "Barrel"
	case PropSign:
		return "Sign"
	default:
		return "Unknown"
	}
}

// propVolume returns the collision extents and blocking flag per prop type.
// Pickups are trigger volumes; scenery blocks.
func propVolume(t PropType) (rl.Vector3, bool) {
	switch t {
	case PropShotgun:
		return rl.Vector3{X: 1, Y: 1, Z: 1}, false
	case PropBarrel:
		return rl.Vector3{X: 2, Y: 2, Z: 2}, true
	case PropSign:
		return rl.Vector3{X: 1.5, Y: 2, Z: 0.25}, true
	default:
		return rl.Vector3{X: 1, Y: 1, Z: 1}, true
	}
}

// Prop is a static world object with a collision volume: pickups, exploding
// barrels, scenery.
type Prop struct {
	Actor *actor.Actor
	Type  PropType

	collisionHandle collision.Handle
	destroyed       bool
}

func NewProp(ids *actor.IDAllocator, t PropType, position rl.Vector3, cm *collision.Manager) *Prop {
	p := &Prop{
		Actor: actor.New(ids),
		Type:  t,
	}
	p.Actor.SetPosition(position)

	extents, block := propVolume(t)
	p.collisionHandle = cm.AddCollision(collision.NewBox(position, extents, block))
	return p
}

func (p *Prop) CollisionHandle() collision.Handle {
	return p.collisionHandle
}

func (p *Prop) Destroyed() bool {
	return p.destroyed
}

// TakeDamage destroys the prop and frees its volume. Only barrels are
// damageable; the caller applies the blast. Returns true on destruction.
func (p *Prop) TakeDamage(cm *collision.Manager) bool {
	if p.destroyed || p.Type != PropBarrel {
		return false
	}

	cm.RemoveCollision(p.collisionHandle)
	p.destroyed = true
	return true
}
