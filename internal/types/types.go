// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в ECS.
// Ссылки между сущностями (цель башни, цель снаряда) хранятся как EntityID
// и каждый тик перепроверяются на живость, а не как прямые указатели.
type EntityID uint64
