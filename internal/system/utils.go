// internal/system/utils.go
package system

import (
	"sort"

	"go-defense-sim/internal/entity"
	"go-defense-sim/internal/types"
)

// ApplyDamage наносит урон врагу. Урон никогда не опускает здоровье ниже
// нуля и не применяется к уже мёртвым или дошедшим до конца врагам.
// Возвращает true, если именно этот вызов убил цель.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) bool {
	if !IsUnitAlive(ecs, entityID) {
		return false
	}
	health := ecs.Healths[entityID]

	health.Value -= damage
	if health.Value <= 0 {
		health.Value = 0
		return true
	}
	return false
}

// IsUnitAlive проверяет, жив ли враг: компоненты на месте, здоровье
// положительно и конец маршрута не достигнут. Отсутствующая сущность —
// это «нет цели», а не ошибка.
func IsUnitAlive(ecs *entity.ECS, id types.EntityID) bool {
	enemy, isEnemy := ecs.Enemies[id]
	health, hasHealth := ecs.Healths[id]
	if !isEnemy || !hasHealth {
		return false
	}
	return health.Value > 0 && !enemy.ReachedEnd
}

// sortedUnitIDs возвращает идентификаторы врагов по возрастанию, то есть в
// порядке спавна. Итерация по map в Go рандомизирована, а выбор цели и
// fallback-скан столкновений обязаны быть детерминированными.
func sortedUnitIDs(ecs *entity.ECS) []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Enemies))
	for id := range ecs.Enemies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// sortedTowerIDs — то же для башен: порядок обновления башен в тике стабилен.
func sortedTowerIDs(ecs *entity.ECS) []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Towers))
	for id := range ecs.Towers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// sortedProjectileIDs — и для снарядов.
func sortedProjectileIDs(ecs *entity.ECS) []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Projectiles))
	for id := range ecs.Projectiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
