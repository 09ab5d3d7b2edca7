package game

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"arena3d/internal/actor"
	"arena3d/internal/collision"
)

// World owns the simulation: the collision manager, the player, mobs,
// props, pooled VFX and the score. One Tick per frame from the main loop;
// everything here is single-threaded by contract.
type World struct {
	Config    Config
	Collision *collision.Manager
	Player    *Player
	Mobs      []*Mob
	Props     []*Prop
	Particles *ParticlePool
	Score     int

	ids actor.IDAllocator
}

func NewWorld(cfg Config) *World {
	w := &World{
		Config:    cfg,
		Collision: collision.NewManager(),
		Particles: NewParticlePool(),
	}
	w.Player = NewPlayer(&w.ids, cfg)
	return w
}

func (w *World) SpawnMob(position rl.Vector3) *Mob {
	m := NewMob(&w.ids, position, w.Config, w.Collision)
	w.Mobs = append(w.Mobs, m)
	return m
}

func (w *World) SpawnProp(t PropType, position rl.Vector3) *Prop {
	p := NewProp(&w.ids, t, position, w.Collision)
	w.Props = append(w.Props, p)
	return p
}

// SpawnWall registers static blocking geometry with no actor behind it.
func (w *World) SpawnWall(position, extents rl.Vector3) collision.Handle {
	return w.Collision.AddCollision(collision.NewBox(position, extents, true))
}

// Tick advances the whole simulation by dt.
func (w *World) Tick(dt float32, in Input) {
	if w.Player.Tick(dt, in, w.Config) {
		w.fireHitscan(in.LookDir)
	}

	playerPos := w.Player.Actor.Position()
	for _, m := range w.Mobs {
		m.Tick(dt, playerPos, w.Config, w.Collision)
	}

	w.Particles.Tick(dt)
	w.pruneDead()
}

// fireHitscan resolves one weapon discharge: a segment cast from the player
// along the look direction, out to weapon range.
func (w *World) fireHitscan(lookDir rl.Vector3) {
	length := rl.Vector3Length(lookDir)
	if length == 0 {
		return
	}
	segment := rl.Vector3Scale(lookDir, w.Config.WeaponRange/length)

	hit, found := w.Collision.CastRay(w.Player.Actor.Position(), segment)
	if !found {
		return
	}

	w.Particles.Spawn(hit.Point, rl.Vector3{Y: 2}, rl.Orange, 0.4)

	if mob := w.mobByHandle(hit.Handle); mob != nil {
		if mob.TakeDamage(w.Config.WeaponDamage, w.Collision) {
			w.Score += w.Config.ScorePerKill
			log.Printf("Game: mob %d down, score %d", mob.Actor.ID(), w.Score)
		}
		return
	}

	if prop := w.propByHandle(hit.Handle); prop != nil {
		if prop.TakeDamage(w.Collision) {
			w.explodeBarrel(prop)
		}
	}
}

// explodeBarrel applies radius damage around a destroyed barrel and spawns
// its smoke burst.
func (w *World) explodeBarrel(p *Prop) {
	center := p.Actor.Position()
	w.Particles.Spawn(center, rl.Vector3{Y: 4}, rl.Gray, 1.2)

	for _, m := range w.Mobs {
		d := rl.Vector3Length(rl.Vector3Subtract(m.Actor.Position(), center))
		if d <= w.Config.BlastRadius {
			if m.TakeDamage(w.Config.BlastDamage, w.Collision) {
				w.Score += w.Config.ScorePerKill
			}
		}
	}
}

func (w *World) mobByHandle(h collision.Handle) *Mob {
	for _, m := range w.Mobs {
		if m.CollisionHandle() == h {
			return m
		}
	}
	return nil
}

func (w *World) propByHandle(h collision.Handle) *Prop {
	for _, p := range w.Props {
		if p.CollisionHandle() == h {
			return p
		}
	}
	return nil
}

func (w *World) pruneDead() {
	mobs := w.Mobs[:0]
	for _, m := range w.Mobs {
		if m.State() != MobDying {
			mobs = append(mobs, m)
		}
	}
	w.Mobs = mobs

	props := w.Props[:0]
	for _, p := range w.Props {
		if !p.Destroyed() {
			props = append(props, p)
		}
	}
	w.Props = props
}
