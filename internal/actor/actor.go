package actor

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"arena3d/internal/assets"
)

// IDAllocator issues actor ids. It is owned by whatever spawns actors (the
// game world in this repo) rather than living in package state, so two
// worlds never share a counter. The zero value is ready to use; the first
// id issued is 1, leaving 0 free as "no actor".
type IDAllocator struct {
	next uint32
}

func (a *IDAllocator) Next() uint32 {
	a.next++
	return a.next
}

// Actor is a renderable entity: an id, a transform and a model handle.
// Collision is handled separately; actors that collide hold a handle into
// the collision manager themselves.
type Actor struct {
	id       uint32
	position rl.Vector3
	rotation rl.Vector3 // Euler angles in degrees
	scale    rl.Vector3
	model    assets.ModelHandle
}

func New(ids *IDAllocator) *Actor {
	return &Actor{
		id:    ids.Next(),
		scale: rl.Vector3{X: 1, Y: 1, Z: 1},
		model: assets.InvalidModel(),
	}
}

func (a *Actor) ID() uint32 {
	return a.id
}

func (a *Actor) Position() rl.Vector3 {
	return a.position
}

func (a *Actor) SetPosition(p rl.Vector3) {
	a.position = p
}

func (a *Actor) Rotation() rl.Vector3 {
	return a.rotation
}

func (a *Actor) SetRotation(r rl.Vector3) {
	a.rotation = r
}

func (a *Actor) Scale() rl.Vector3 {
	return a.scale
}

func (a *Actor) SetScale(s rl.Vector3) {
	a.scale = s
}

func (a *Actor) Model() assets.ModelHandle {
	return a.model
}

func (a *Actor) SetModel(h assets.ModelHandle) {
	a.model = h
}
