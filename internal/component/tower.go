// internal/component/tower.go
package component

import (
	"go-defense-sim/internal/defs"
	"go-defense-sim/internal/types"
)

// TurretState — явное состояние огневого автомата башни.
// Idle — цели нет; Tracking — цель захвачена, турель доворачивается.
type TurretState int

const (
	TurretIdle TurretState = iota
	TurretTracking
)

// Tower представляет размещённую башню. TargetID — невладеющая ссылка:
// живость цели перепроверяется каждый тик, протухшая ссылка сбрасывается.
type Tower struct {
	DefID        string
	State        TurretState
	Damage       int
	Range        float64 // пиксели, от центра до центра
	FireRate     float64 // выстрелов в секунду
	Policy       defs.TargetingPolicy
	FacingAngle  float64 // текущий угол турели, радианы
	TargetID     types.EntityID // 0 — цели нет
	FireCooldown float64        // оставшееся время перезарядки, с
	CellX, CellY int            // ячейка сетки размещения
	ShotsFired   int
}
