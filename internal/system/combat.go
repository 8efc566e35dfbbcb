// internal/system/combat.go
package system

import (
	"log"
	"math"

	"go-defense-sim/internal/component"
	"go-defense-sim/internal/config"
	"go-defense-sim/internal/defs"
	"go-defense-sim/internal/entity"
	"go-defense-sim/internal/event"
	"go-defense-sim/internal/types"
	"go-defense-sim/internal/utils"
	"go-defense-sim/pkg/route"
)

// CombatSystem управляет огневым автоматом башен: захват цели, доворот
// турели, выстрел.
type CombatSystem struct {
	ecs             *entity.ECS
	route           *route.Route
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, r *route.Route, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, route: r, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range sortedTowerIDs(s.ecs) {
		tower := s.ecs.Towers[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}

		if tower.FireCooldown > 0 {
			tower.FireCooldown -= deltaTime
			if tower.FireCooldown < 0 {
				tower.FireCooldown = 0
			}
		}

		// Перепроверка захваченной цели: умерла или вышла из радиуса — сброс.
		if tower.State == component.TurretTracking {
			if !s.targetStillValid(tower, pos) {
				tower.TargetID = 0
				tower.State = component.TurretIdle
			}
		}

		if tower.State == component.TurretIdle {
			candidates := s.candidatesInRange(tower, pos)
			if len(candidates) == 0 {
				continue
			}
			tower.TargetID = s.selectTarget(tower, pos, candidates)
			tower.State = component.TurretTracking
		}

		targetPos := s.ecs.Positions[tower.TargetID]
		if targetPos == nil {
			tower.TargetID = 0
			tower.State = component.TurretIdle
			continue
		}

		// Доворот турели к пеленгу по кратчайшей дуге; если остаток дуги
		// меньше шага за тик — защёлкиваемся точно на пеленг.
		bearing := math.Atan2(targetPos.Y-pos.Y, targetPos.X-pos.X)
		diff := utils.AngleDiff(tower.FacingAngle, bearing)
		step := config.TurretTurnRate * deltaTime
		if math.Abs(diff) <= step {
			tower.FacingAngle = bearing
		} else if diff > 0 {
			tower.FacingAngle = utils.NormalizeAngle(tower.FacingAngle + step)
		} else {
			tower.FacingAngle = utils.NormalizeAngle(tower.FacingAngle - step)
		}

		aligned := math.Abs(utils.AngleDiff(tower.FacingAngle, bearing)) <= config.AlignmentTolerance
		if aligned && tower.FireCooldown <= 0 {
			s.fire(id, tower, pos)
		}
	}
}

func (s *CombatSystem) targetStillValid(tower *component.Tower, pos *component.Position) bool {
	if tower.TargetID == 0 || !IsUnitAlive(s.ecs, tower.TargetID) {
		return false
	}
	targetPos := s.ecs.Positions[tower.TargetID]
	if targetPos == nil {
		return false
	}
	return utils.Dist(pos.X, pos.Y, targetPos.X, targetPos.Y) <= tower.Range
}

// candidatesInRange возвращает живых врагов в радиусе в порядке спавна.
func (s *CombatSystem) candidatesInRange(tower *component.Tower, pos *component.Position) []types.EntityID {
	var out []types.EntityID
	for _, id := range sortedUnitIDs(s.ecs) {
		if !IsUnitAlive(s.ecs, id) {
			continue
		}
		enemyPos := s.ecs.Positions[id]
		if enemyPos == nil {
			continue
		}
		if utils.Dist(pos.X, pos.Y, enemyPos.X, enemyPos.Y) <= tower.Range {
			out = append(out, id)
		}
	}
	return out
}

// selectTarget применяет политику выбора цели. Сравнения строгие, поэтому
// при равенстве метрик побеждает первый встреченный кандидат.
func (s *CombatSystem) selectTarget(tower *component.Tower, pos *component.Position, candidates []types.EntityID) types.EntityID {
	best := candidates[0]
	bestMetric := s.policyMetric(tower, pos, best)
	for _, id := range candidates[1:] {
		m := s.policyMetric(tower, pos, id)
		if m < bestMetric {
			best = id
			bestMetric = m
		}
	}
	return best
}

// policyMetric сводит все политики к минимизации одного числа.
func (s *CombatSystem) policyMetric(tower *component.Tower, pos *component.Position, id types.EntityID) float64 {
	switch tower.Policy {
	case defs.PolicyNearestToGoal:
		// Минимальная оставшаяся дистанция до выхода.
		return (1 - s.ecs.Enemies[id].Progress) * s.route.TotalLength()
	case defs.PolicyNearestToTower:
		enemyPos := s.ecs.Positions[id]
		return utils.Dist(pos.X, pos.Y, enemyPos.X, enemyPos.Y)
	case defs.PolicyStrongest:
		return -float64(s.ecs.Healths[id].Value)
	case defs.PolicyWeakest:
		return float64(s.ecs.Healths[id].Value)
	}
	// Неизвестная политика сюда не попадает (валидация на входе),
	// но на всякий случай ведём себя как NEAREST_TO_GOAL.
	return (1 - s.ecs.Enemies[id].Progress) * s.route.TotalLength()
}

func (s *CombatSystem) fire(towerID types.EntityID, tower *component.Tower, pos *component.Position) {
	def, ok := defs.TowerLibrary[tower.DefID]
	if !ok {
		log.Printf("CombatSystem: no tower definition for %s", tower.DefID)
		return
	}

	vx, vy, ok := computeLaunchVelocity(s.ecs, tower.TargetID, pos.X, pos.Y, def.Combat.ProjectileSpeed)
	if !ok {
		// Вырожденная геометрия: цель ровно в точке башни. Снаряд не
		// создаётся, урон не наносится, перезарядка не тратится.
		return
	}

	projID := s.ecs.NewEntity()
	s.ecs.Positions[projID] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.Projectiles[projID] = &component.Projectile{
		TargetID:     tower.TargetID,
		VX:           vx,
		VY:           vy,
		Speed:        def.Combat.ProjectileSpeed,
		Damage:       tower.Damage,
		Splash:       def.Combat.Splash,
		SplashRadius: def.Combat.SplashRadius,
		Radius:       def.Combat.ProjectileRadius,
		Heading:      math.Atan2(vy, vx),
	}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: float32(def.Combat.ProjectileRadius),
	}

	tower.FireCooldown = 1.0 / tower.FireRate
	tower.ShotsFired++
	s.ecs.Stats.ShotsFired++
	s.eventDispatcher.Dispatch(event.Event{Type: event.ShotFired, Data: towerID})
}

// computeLaunchVelocity строит стартовый вектор скорости снаряда в
// упреждённую позицию цели: скорость цели оценивается по её курсу, время
// подлёта — по текущей дистанции, горизонт упреждения ограничен.
// ok=false при нулевой дистанции до цели (вырожденный случай).
func computeLaunchVelocity(ecs *entity.ECS, targetID types.EntityID, fromX, fromY, projSpeed float64) (vx, vy float64, ok bool) {
	aimX, aimY, ok := predictTargetPosition(ecs, targetID, fromX, fromY, projSpeed)
	if !ok {
		return 0, 0, false
	}
	dir := math.Atan2(aimY-fromY, aimX-fromX)
	return math.Cos(dir) * projSpeed, math.Sin(dir) * projSpeed, true
}

// predictTargetPosition экстраполирует позицию цели на клампнутое время
// подлёта. ok=false, если цель отсутствует или дистанция ровно нулевая.
func predictTargetPosition(ecs *entity.ECS, targetID types.EntityID, fromX, fromY, projSpeed float64) (ax, ay float64, ok bool) {
	targetPos := ecs.Positions[targetID]
	enemy := ecs.Enemies[targetID]
	vel := ecs.Velocities[targetID]
	if targetPos == nil || enemy == nil || vel == nil {
		return 0, 0, false
	}

	d := utils.Dist(fromX, fromY, targetPos.X, targetPos.Y)
	if d == 0 {
		return 0, 0, false
	}

	leadTime := d / projSpeed
	if leadTime > config.PredictionHorizon {
		leadTime = config.PredictionHorizon
	}

	speed := vel.Speed * vel.PathMultiplier
	ax = targetPos.X + math.Cos(enemy.Heading)*speed*leadTime
	ay = targetPos.Y + math.Sin(enemy.Heading)*speed*leadTime
	return ax, ay, true
}

