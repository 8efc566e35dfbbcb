// pkg/render/renderer.go
package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-defense-sim/internal/app"
	"go-defense-sim/internal/config"
	"go-defense-sim/internal/defs"
	"go-defense-sim/pkg/route"
)

// SceneRenderer рисует снимок симуляции. Работает только по Snapshot:
// обратной связи в симуляцию нет.
type SceneRenderer struct {
	waypoints []route.Point
}

func NewSceneRenderer(waypoints []route.Point) *SceneRenderer {
	return &SceneRenderer{waypoints: waypoints}
}

func (r *SceneRenderer) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	// Маршрут
	for i := 0; i < len(r.waypoints)-1; i++ {
		a, b := r.waypoints[i], r.waypoints[i+1]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 4.0, config.RouteColor, true)
	}
	if len(r.waypoints) > 0 {
		start := r.waypoints[0]
		end := r.waypoints[len(r.waypoints)-1]
		vector.DrawFilledCircle(screen, float32(start.X), float32(start.Y), 8, config.RouteStartColor, true)
		vector.DrawFilledCircle(screen, float32(end.X), float32(end.Y), 8, config.RouteEndColor, true)
	}

	// Башни: радиус действия, корпус, направление турели
	for _, tower := range snap.Towers {
		vector.DrawFilledCircle(screen, float32(tower.X), float32(tower.Y), float32(tower.Range), config.RangeColor, true)

		def, ok := defs.TowerLibrary[tower.DefID]
		if !ok {
			continue
		}
		if def.Visuals.StrokeWidth > 0 {
			vector.DrawFilledCircle(screen, float32(tower.X), float32(tower.Y), float32(def.Visuals.Radius)+2, config.TowerStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, float32(tower.X), float32(tower.Y), float32(def.Visuals.Radius), def.Visuals.Color, true)

		tipX := tower.X + math.Cos(tower.FacingAngle)*(def.Visuals.Radius+6)
		tipY := tower.Y + math.Sin(tower.FacingAngle)*(def.Visuals.Radius+6)
		vector.StrokeLine(screen, float32(tower.X), float32(tower.Y), float32(tipX), float32(tipY), 3.0, config.FacingLineColor, true)
	}

	// Враги: радиус сжимается с потерей здоровья
	for _, unit := range snap.Units {
		def, ok := defs.EnemyLibrary[unit.DefID]
		if !ok {
			continue
		}
		frac := 0.0
		if unit.MaxHealth > 0 {
			frac = float64(unit.Health) / float64(unit.MaxHealth)
		}
		radius := float32((0.6 + 0.4*frac) * unit.Radius)
		if def.Visuals.StrokeWidth > 0 {
			vector.DrawFilledCircle(screen, float32(unit.X), float32(unit.Y), radius+2, config.TowerStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, float32(unit.X), float32(unit.Y), radius, def.Visuals.Color, true)
	}

	// Снаряды
	for _, proj := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(proj.X), float32(proj.Y), float32(proj.Radius), config.TextLightColor, true)
	}
}
