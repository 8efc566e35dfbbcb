// internal/defs/towers.go
package defs

import "image/color"

// CombatStats contains parameters related to a tower's combat abilities.
type CombatStats struct {
	Damage           int             `json:"damage"`
	FireRate         float64         `json:"fire_rate"` // Shots per second
	Range            float64         `json:"range"`     // pixels, center to center
	ProjectileSpeed  float64         `json:"projectile_speed"`
	ProjectileRadius float64         `json:"projectile_radius"`
	Splash           bool            `json:"splash"`
	SplashRadius     float64         `json:"splash_radius"`
	DefaultPolicy    TargetingPolicy `json:"default_policy"`
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Cost    int         `json:"cost"`
	Combat  CombatStats `json:"combat"`
	Visuals Visuals     `json:"visuals"`
}

// TowerLibrary is the library of all tower definitions, mapped by their ID.
// Populated with the built-in set below; LoadTowerDefinitions replaces it.
var TowerLibrary = map[string]TowerDefinition{
	"TOWER_ARROW": {
		ID: "TOWER_ARROW", Name: "Arrow Turret", Cost: 50,
		Combat: CombatStats{
			Damage: 12, FireRate: 2.0, Range: 140,
			ProjectileSpeed: 320, ProjectileRadius: 3,
			DefaultPolicy: PolicyNearestToGoal,
		},
		Visuals: Visuals{Color: color.RGBA{50, 255, 50, 255}, Radius: 12, StrokeWidth: 2},
	},
	"TOWER_CANNON": {
		ID: "TOWER_CANNON", Name: "Cannon", Cost: 90,
		Combat: CombatStats{
			Damage: 40, FireRate: 0.6, Range: 120,
			ProjectileSpeed: 220, ProjectileRadius: 5,
			Splash: true, SplashRadius: 60,
			DefaultPolicy: PolicyStrongest,
		},
		Visuals: Visuals{Color: color.RGBA{255, 50, 50, 255}, Radius: 14, StrokeWidth: 2},
	},
	"TOWER_SNIPER": {
		ID: "TOWER_SNIPER", Name: "Sniper Post", Cost: 120,
		Combat: CombatStats{
			Damage: 90, FireRate: 0.4, Range: 260,
			ProjectileSpeed: 500, ProjectileRadius: 2,
			DefaultPolicy: PolicyStrongest,
		},
		Visuals: Visuals{Color: color.RGBA{50, 100, 255, 255}, Radius: 11, StrokeWidth: 2},
	},
}
