package game

import (
	"encoding/json"
	"log"
	"os"
)

// Config holds gameplay tuning. Values load from a JSON file so designers
// can iterate without rebuilding; any read or parse error falls back to
// defaults.
type Config struct {
	MobSpeed       float32 `json:"mob_speed"`
	MobHealth      float32 `json:"mob_health"`
	MobAttackRange float32 `json:"mob_attack_range"`
	WeaponCooldown float32 `json:"weapon_cooldown"`
	WeaponReload   float32 `json:"weapon_reload"`
	WeaponRange    float32 `json:"weapon_range"`
	WeaponDamage   float32 `json:"weapon_damage"`
	MagazineSize   int     `json:"magazine_size"`
	BlastRadius    float32 `json:"blast_radius"`
	BlastDamage    float32 `json:"blast_damage"`
	ScorePerKill   int     `json:"score_per_kill"`
}

func DefaultConfig() Config {
	return Config{
		MobSpeed:       3.0,
		MobHealth:      100,
		MobAttackRange: 5.0,
		WeaponCooldown: 0.15,
		WeaponReload:   1.2,
		WeaponRange:    100,
		WeaponDamage:   50,
		MagazineSize:   8,
		BlastRadius:    6.0,
		BlastDamage:    75,
		ScorePerKill:   100,
	}
}

// LoadConfig reads tuning from path, falling back to defaults on error.
func LoadConfig(path string) Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Game: config %s unreadable (%v), using defaults", path, err)
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Game: config %s malformed (%v), using defaults", path, err)
		return DefaultConfig()
	}
	return cfg
}
