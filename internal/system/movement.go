// internal/system/movement.go
package system

import (
	"go-defense-sim/internal/entity"
	"go-defense-sim/internal/event"
	"go-defense-sim/pkg/route"
)

// MovementSystem продвигает врагов вдоль маршрута.
type MovementSystem struct {
	ecs             *entity.ECS
	route           *route.Route
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, r *route.Route, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, route: r, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	total := s.route.TotalLength()
	for _, id := range sortedUnitIDs(s.ecs) {
		if !IsUnitAlive(s.ecs, id) {
			continue
		}
		enemy := s.ecs.Enemies[id]
		vel := s.ecs.Velocities[id]
		pos := s.ecs.Positions[id]
		if vel == nil || pos == nil {
			continue
		}

		moveDistance := vel.Speed * vel.PathMultiplier * deltaTime
		enemy.Progress += moveDistance / total
		if enemy.Progress > 1 {
			enemy.Progress = 1
		}

		x, y, heading := s.route.PositionAt(enemy.Progress)
		pos.X, pos.Y = x, y
		enemy.Heading = heading

		if enemy.Progress >= 1 {
			// Конец маршрута обрабатывается как смерть для удаления,
			// но событие другое: потеря жизни, не награда.
			enemy.ReachedEnd = true
			s.ecs.Healths[id].Value = 0
			s.ecs.Stats.Leaks++
			s.eventDispatcher.Dispatch(event.Event{Type: event.UnitReachedEnd, Data: id})
		}
	}
}
