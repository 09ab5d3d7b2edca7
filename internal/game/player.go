package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"arena3d/internal/actor"
)

type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerShooting
	PlayerReloading
)

func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "Idle"
	case PlayerShooting:
		return "Shooting"
	case PlayerReloading:
		return "Reloading"
	default:
		return "Unknown"
	}
}

// Input is one tick's worth of player intent, decoupled from the input
// device so the simulation is testable headless.
type Input struct {
	Move    rl.Vector3
	LookDir rl.Vector3
	Fire    bool
	Reload  bool
}

// Player is the first-person actor. It carries no collision volume; the
// weapon is hit-scan and movement clamping is the demo's concern.
type Player struct {
	Actor *actor.Actor

	state        PlayerState
	ammo         int
	cooldownLeft float32
	reloadLeft   float32
}

func NewPlayer(ids *actor.IDAllocator, cfg Config) *Player {
	return &Player{
		Actor: actor.New(ids),
		ammo:  cfg.MagazineSize,
	}
}

func (p *Player) State() PlayerState {
	return p.state
}

func (p *Player) Ammo() int {
	return p.ammo
}

// Tick advances the weapon state machine and applies movement. It returns
// true when a shot is discharged this tick; the world resolves the actual
// hit-scan.
func (p *Player) Tick(dt float32, in Input, cfg Config) bool {
	p.Actor.SetPosition(rl.Vector3Add(p.Actor.Position(), in.Move))

	switch p.state {
	case PlayerIdle:
		if in.Reload && p.ammo < cfg.MagazineSize {
			p.state = PlayerReloading
			p.reloadLeft = cfg.WeaponReload
			return false
		}
		if in.Fire {
			if p.ammo == 0 {
				p.state = PlayerReloading
				p.reloadLeft = cfg.WeaponReload
				return false
			}
			p.ammo--
			p.state = PlayerShooting
			p.cooldownLeft = cfg.WeaponCooldown
			return true
		}

	case PlayerShooting:
		p.cooldownLeft -= dt
		if p.cooldownLeft <= 0 {
			p.state = PlayerIdle
		}

	case PlayerReloading:
		p.reloadLeft -= dt
		if p.reloadLeft <= 0 {
			p.ammo = cfg.MagazineSize
			p.state = PlayerIdle
		}
	}
	return false
}
