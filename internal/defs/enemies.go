// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
// Definitions are immutable value records: entities copy the numbers they
// need at spawn time and never share the struct by reference.
type EnemyDefinition struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Health         int     `json:"health"`
	Speed          float64 `json:"speed"`           // pixels per second along the route
	PathMultiplier float64 `json:"path_multiplier"` // route-specific speed scale
	Reward         int     `json:"reward"`
	Visuals        Visuals `json:"visuals"`
}

// EnemyLibrary is the library of all enemy definitions, mapped by their ID.
// Populated with the built-in set below; LoadEnemyDefinitions replaces it.
var EnemyLibrary = map[string]EnemyDefinition{
	"ENEMY_BASIC": {
		ID: "ENEMY_BASIC", Name: "Runner", Health: 100, Speed: 80, PathMultiplier: 1.0, Reward: 10,
		Visuals: Visuals{Color: color.RGBA{200, 60, 60, 255}, Radius: 10},
	},
	"ENEMY_FAST": {
		ID: "ENEMY_FAST", Name: "Sprinter", Health: 60, Speed: 140, PathMultiplier: 1.0, Reward: 12,
		Visuals: Visuals{Color: color.RGBA{230, 180, 60, 255}, Radius: 8},
	},
	"ENEMY_TANK": {
		ID: "ENEMY_TANK", Name: "Juggernaut", Health: 400, Speed: 45, PathMultiplier: 1.0, Reward: 30,
		Visuals: Visuals{Color: color.RGBA{120, 90, 170, 255}, Radius: 14, StrokeWidth: 2},
	},
	"ENEMY_BOSS": {
		ID: "ENEMY_BOSS", Name: "Colossus", Health: 2500, Speed: 35, PathMultiplier: 1.0, Reward: 200,
		Visuals: Visuals{Color: color.RGBA{40, 40, 40, 255}, Radius: 18, StrokeWidth: 3},
	},
}
