// internal/event/types.go
package event

import "go-defense-sim/internal/types"

const (
	UnitSpawned       EventType = "UnitSpawned"       // Враг появился на маршруте
	UnitKilled        EventType = "UnitKilled"        // Враг уничтожен (награда)
	UnitReachedEnd    EventType = "UnitReachedEnd"    // Враг дошёл до конца (потеря жизни)
	WaveStarted       EventType = "WaveStarted"       // Волна началась
	WaveCompleted     EventType = "WaveCompleted"     // Волна зачищена (награда)
	AllWavesCompleted EventType = "AllWavesCompleted" // Все волны зачищены
	ShotFired         EventType = "ShotFired"         // Башня выстрелила
	ShotHit           EventType = "ShotHit"           // Снаряд попал
)

// UnitSpawnedPayload — данные события UnitSpawned.
type UnitSpawnedPayload struct {
	ID    types.EntityID
	DefID string
}

// UnitKilledPayload — данные события UnitKilled.
type UnitKilledPayload struct {
	ID     types.EntityID
	Reward int
}

// WaveStartedPayload — данные события WaveStarted. Number — номер волны от 1.
type WaveStartedPayload struct {
	Number int
	Manual bool
}

// WaveCompletedPayload — данные события WaveCompleted.
type WaveCompletedPayload struct {
	Number    int
	Reward    int
	ClearTime float64 // секунд от старта волны до зачистки
}

// ShotHitPayload — данные события ShotHit.
type ShotHitPayload struct {
	ProjectileID types.EntityID
	TargetID     types.EntityID
	Damage       int
}
