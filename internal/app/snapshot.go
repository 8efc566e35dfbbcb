// internal/app/snapshot.go
package app

import (
	"sort"

	"go-defense-sim/internal/component"
	"go-defense-sim/internal/types"
)

// UnitSnapshot — копия состояния врага для слоя отрисовки и UI.
type UnitSnapshot struct {
	ID         types.EntityID `json:"id"`
	DefID      string         `json:"defId"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Heading    float64        `json:"heading"`
	Progress   float64        `json:"progress"`
	Health     int            `json:"health"`
	MaxHealth  int            `json:"maxHealth"`
	Radius     float64        `json:"radius"`
	Reward     int            `json:"reward"`
	ReachedEnd bool           `json:"reachedEnd,omitempty"`
}

// TowerSnapshot — копия состояния башни.
type TowerSnapshot struct {
	ID           types.EntityID `json:"id"`
	DefID        string         `json:"defId"`
	X            float64        `json:"x"`
	Y            float64        `json:"y"`
	FacingAngle  float64        `json:"facingAngle"`
	Range        float64        `json:"range"`
	FireCooldown float64        `json:"fireCooldown"`
	Policy       string         `json:"policy"`
	TargetID     types.EntityID `json:"targetId,omitempty"`
	ShotsFired   int            `json:"shotsFired"`
}

// ProjectileSnapshot — копия состояния снаряда.
type ProjectileSnapshot struct {
	ID      types.EntityID `json:"id"`
	X       float64        `json:"x"`
	Y       float64        `json:"y"`
	Heading float64        `json:"heading"`
	Radius  float64        `json:"radius"`
	Splash  bool           `json:"splash,omitempty"`
}

// WaveInfo — состояние планировщика волн.
type WaveInfo struct {
	Phase        string  `json:"phase"`
	Number       int     `json:"number"` // номер текущей/следующей волны, от 1
	TotalWaves   int     `json:"totalWaves"`
	QueueLength  int     `json:"queueLength"`
	Spawned      int     `json:"spawned"`
	Countdown    float64 `json:"countdown,omitempty"`
	Completed    int     `json:"completed"`
	AverageClear float64 `json:"averageClear,omitempty"`
	FastestClear float64 `json:"fastestClear,omitempty"`
	SlowestClear float64 `json:"slowestClear,omitempty"`
}

// StatsSnapshot — счётчики забега.
type StatsSnapshot struct {
	ShotsFired int `json:"shotsFired"`
	ShotsHit   int `json:"shotsHit"`
	Kills      int `json:"kills"`
	Leaks      int `json:"leaks"`
}

// Snapshot — read-only срез состояния симуляции на конец тика. Все данные
// скопированы по значению: потребители не могут повлиять на симуляцию.
type Snapshot struct {
	GameTime    float64              `json:"gameTime"`
	Lives       int                  `json:"lives"`
	Units       []UnitSnapshot       `json:"units"`
	Towers      []TowerSnapshot      `json:"towers"`
	Projectiles []ProjectileSnapshot `json:"projectiles"`
	Wave        WaveInfo             `json:"wave"`
	Stats       StatsSnapshot        `json:"stats"`
}

// Snapshot собирает полный снимок текущего состояния.
func (g *Game) Snapshot() *Snapshot {
	snap := &Snapshot{
		GameTime: g.ECS.GameTime,
		Lives:    g.Lives,
		Stats: StatsSnapshot{
			ShotsFired: g.ECS.Stats.ShotsFired,
			ShotsHit:   g.ECS.Stats.ShotsHit,
			Kills:      g.ECS.Stats.Kills,
			Leaks:      g.ECS.Stats.Leaks,
		},
	}

	for id, enemy := range g.ECS.Enemies {
		pos := g.ECS.Positions[id]
		health := g.ECS.Healths[id]
		if pos == nil || health == nil {
			continue
		}
		snap.Units = append(snap.Units, UnitSnapshot{
			ID:         id,
			DefID:      enemy.DefID,
			X:          pos.X,
			Y:          pos.Y,
			Heading:    enemy.Heading,
			Progress:   enemy.Progress,
			Health:     health.Value,
			MaxHealth:  health.Max,
			Radius:     enemy.Radius,
			Reward:     enemy.Reward,
			ReachedEnd: enemy.ReachedEnd,
		})
	}
	sort.Slice(snap.Units, func(i, j int) bool { return snap.Units[i].ID < snap.Units[j].ID })

	for id, tower := range g.ECS.Towers {
		pos := g.ECS.Positions[id]
		if pos == nil {
			continue
		}
		snap.Towers = append(snap.Towers, TowerSnapshot{
			ID:           id,
			DefID:        tower.DefID,
			X:            pos.X,
			Y:            pos.Y,
			FacingAngle:  tower.FacingAngle,
			Range:        tower.Range,
			FireCooldown: tower.FireCooldown,
			Policy:       string(tower.Policy),
			TargetID:     tower.TargetID,
			ShotsFired:   tower.ShotsFired,
		})
	}
	sort.Slice(snap.Towers, func(i, j int) bool { return snap.Towers[i].ID < snap.Towers[j].ID })

	for id, proj := range g.ECS.Projectiles {
		pos := g.ECS.Positions[id]
		if pos == nil {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileSnapshot{
			ID:      id,
			X:       pos.X,
			Y:       pos.Y,
			Heading: proj.Heading,
			Radius:  proj.Radius,
			Splash:  proj.Splash,
		})
	}
	sort.Slice(snap.Projectiles, func(i, j int) bool { return snap.Projectiles[i].ID < snap.Projectiles[j].ID })

	w := g.ECS.Wave
	number := w.Index + 1
	if w.Phase == component.WaveAllComplete {
		number = w.Index
	}
	snap.Wave = WaveInfo{
		Phase:        w.Phase.String(),
		Number:       number,
		TotalWaves:   len(g.Level.Waves),
		QueueLength:  len(w.Queue),
		Spawned:      w.Spawned,
		Countdown:    w.Countdown,
		Completed:    w.Stats.Completed,
		AverageClear: w.Stats.Average(),
		FastestClear: w.Stats.Fastest,
		SlowestClear: w.Stats.Slowest,
	}
	return snap
}
