// internal/system/projectile.go
package system

import (
	"math"

	"go-defense-sim/internal/component"
	"go-defense-sim/internal/config"
	"go-defense-sim/internal/entity"
	"go-defense-sim/internal/event"
	"go-defense-sim/internal/types"
	"go-defense-sim/internal/utils"
)

// ProjectileSystem управляет полётом снарядов, самонаведением и нанесением
// урона при столкновении.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range sortedProjectileIDs(s.ecs) {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if pos == nil || proj.Resolved {
			s.removeProjectile(id)
			continue
		}

		// Интеграция движения и накопление пробега.
		stepX := proj.VX * deltaTime
		stepY := proj.VY * deltaTime
		pos.X += stepX
		pos.Y += stepY
		proj.Traveled += math.Sqrt(stepX*stepX + stepY*stepY)
		proj.Elapsed += deltaTime

		// Лимиты времени жизни, пробега и границы поля: снаряд исчезает
		// без нанесения урона.
		if proj.Elapsed > config.ProjectileMaxLifetime ||
			proj.Traveled > config.ProjectileMaxDistance ||
			pos.X < 0 || pos.X > config.ScreenWidth ||
			pos.Y < 0 || pos.Y > config.ScreenHeight {
			s.removeProjectile(id)
			continue
		}

		// Самонаведение: пока цель жива, вектор скорости плавно доворачивается
		// к новой упреждённой позиции, а не перенацеливается мгновенно.
		if IsUnitAlive(s.ecs, proj.TargetID) {
			s.steerTowardTarget(proj, pos)
		}

		if hitID, ok := s.findCollision(proj, pos); ok {
			s.resolveHit(id, proj, pos, hitID)
		}
	}
}

func (s *ProjectileSystem) steerTowardTarget(proj *component.Projectile, pos *component.Position) {
	aimX, aimY, ok := predictTargetPosition(s.ecs, proj.TargetID, pos.X, pos.Y, proj.Speed)
	if !ok {
		return
	}
	dir := math.Atan2(aimY-pos.Y, aimX-pos.X)
	desiredVX := math.Cos(dir) * proj.Speed
	desiredVY := math.Sin(dir) * proj.Speed

	vx := utils.Lerp(proj.VX, desiredVX, config.HomingCorrection)
	vy := utils.Lerp(proj.VY, desiredVY, config.HomingCorrection)

	// После смешивания модуль скорости приводится обратно к номиналу,
	// чтобы доворот менял только кривизну траектории.
	mag := math.Sqrt(vx*vx + vy*vy)
	if mag > 0 {
		proj.VX = vx / mag * proj.Speed
		proj.VY = vy / mag * proj.Speed
	}
	proj.Heading = math.Atan2(proj.VY, proj.VX)
}

// findCollision проверяет столкновение: сперва с захваченной целью, и только
// если она мертва или исчезла — со всеми живыми врагами в порядке спавна.
func (s *ProjectileSystem) findCollision(proj *component.Projectile, pos *component.Position) (types.EntityID, bool) {
	if IsUnitAlive(s.ecs, proj.TargetID) {
		if s.collides(proj, pos, proj.TargetID) {
			return proj.TargetID, true
		}
		return 0, false
	}

	for _, id := range sortedUnitIDs(s.ecs) {
		if !IsUnitAlive(s.ecs, id) {
			continue
		}
		if s.collides(proj, pos, id) {
			return id, true
		}
	}
	return 0, false
}

// collides — проверка окружность-окружность.
func (s *ProjectileSystem) collides(proj *component.Projectile, pos *component.Position, unitID types.EntityID) bool {
	unitPos := s.ecs.Positions[unitID]
	enemy := s.ecs.Enemies[unitID]
	if unitPos == nil || enemy == nil {
		return false
	}
	return utils.Dist(pos.X, pos.Y, unitPos.X, unitPos.Y) <= proj.Radius+enemy.Radius
}

// resolveHit наносит весь урон снаряда. Сработать может только один раз:
// Resolved защищает от повторного входа.
func (s *ProjectileSystem) resolveHit(projID types.EntityID, proj *component.Projectile, pos *component.Position, struckID types.EntityID) {
	if proj.Resolved {
		return
	}
	proj.Resolved = true

	s.applyLethal(struckID, proj.Damage)

	// Сплеш накрывает всех остальных живых врагов вокруг точки удара;
	// поражённая напрямую цель сплеш не получает.
	if proj.Splash && proj.SplashRadius > 0 {
		base := int(math.Floor(float64(proj.Damage) * config.SplashDamageFactor))
		for _, id := range sortedUnitIDs(s.ecs) {
			if id == struckID || !IsUnitAlive(s.ecs, id) {
				continue
			}
			unitPos := s.ecs.Positions[id]
			if unitPos == nil {
				continue
			}
			d := utils.Dist(pos.X, pos.Y, unitPos.X, unitPos.Y)
			if d > proj.SplashRadius {
				continue
			}
			splash := int(math.Floor(float64(base) * (1 - d/proj.SplashRadius)))
			if splash <= 0 {
				continue
			}
			s.applyLethal(id, splash)
		}
	}

	s.ecs.Stats.ShotsHit++
	s.eventDispatcher.Dispatch(event.Event{Type: event.ShotHit, Data: event.ShotHitPayload{
		ProjectileID: projID,
		TargetID:     struckID,
		Damage:       proj.Damage,
	}})

	s.removeProjectile(projID)
}

// applyLethal наносит урон и при убийстве рассылает событие награды.
func (s *ProjectileSystem) applyLethal(unitID types.EntityID, damage int) {
	if !ApplyDamage(s.ecs, unitID, damage) {
		return
	}
	s.ecs.Stats.Kills++
	s.eventDispatcher.Dispatch(event.Event{Type: event.UnitKilled, Data: event.UnitKilledPayload{
		ID:     unitID,
		Reward: s.ecs.Enemies[unitID].Reward,
	}})
}

func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	delete(s.ecs.Positions, id)
	delete(s.ecs.Projectiles, id)
	delete(s.ecs.Renderables, id)
}
