package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"arena3d/internal/registry"
)

// ParticleInstance is one pooled burst effect (impact puff, barrel smoke).
type ParticleInstance struct {
	Position rl.Vector3
	Velocity rl.Vector3
	Color    rl.Color
	Elapsed  float32
	Duration float32
	Active   bool
}

type ParticleHandle = registry.Handle[ParticleInstance]

// ParticlePool recycles particle instances through a handle registry.
// Expired instances go inactive and their slots (and handles) are reused by
// later spawns, so steady-state play allocates nothing.
type ParticlePool struct {
	instances *registry.Registry[ParticleInstance]
}

func NewParticlePool() *ParticlePool {
	return &ParticlePool{
		instances: registry.New[ParticleInstance](),
	}
}

// Spawn activates a pooled instance, reusing an expired slot when one
// exists and growing the pool otherwise.
func (p *ParticlePool) Spawn(position, velocity rl.Vector3, color rl.Color, duration float32) ParticleHandle {
	h := registry.Invalid[ParticleInstance]()
	p.instances.Each(func(candidate ParticleHandle, inst ParticleInstance) bool {
		if !inst.Active {
			h = candidate
			return false
		}
		return true
	})
	if !h.IsValid() {
		h = p.instances.Allocate()
	}

	p.instances.Insert(h, ParticleInstance{
		Position: position,
		Velocity: velocity,
		Color:    color,
		Duration: duration,
		Active:   true,
	})
	return h
}

// Tick advances active instances and expires the ones past their duration.
func (p *ParticlePool) Tick(dt float32) {
	p.instances.Each(func(h ParticleHandle, inst ParticleInstance) bool {
		if !inst.Active {
			return true
		}

		inst.Elapsed += dt
		if inst.Elapsed >= inst.Duration {
			inst.Active = false
		} else {
			inst.Position = rl.Vector3Add(inst.Position, rl.Vector3Scale(inst.Velocity, dt))
		}
		p.instances.Insert(h, inst)
		return true
	})
}

func (p *ParticlePool) ActiveCount() int {
	n := 0
	p.instances.Each(func(_ ParticleHandle, inst ParticleInstance) bool {
		if inst.Active {
			n++
		}
		return true
	})
	return n
}

// Size reports pool capacity, live or expired.
func (p *ParticlePool) Size() int {
	return p.instances.Len()
}

// Each visits active instances, for rendering.
func (p *ParticlePool) Each(fn func(ParticleInstance)) {
	p.instances.Each(func(_ ParticleHandle, inst ParticleInstance) bool {
		if inst.Active {
			fn(inst)
		}
		return true
	})
}
