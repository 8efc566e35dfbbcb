// internal/system/system_test.go
package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-defense-sim/internal/component"
	"go-defense-sim/internal/entity"
	"go-defense-sim/internal/event"
	"go-defense-sim/internal/types"
	"go-defense-sim/pkg/route"
)

// testRoute — прямой маршрут слева направо длиной 1000.
func testRoute(t *testing.T) *route.Route {
	t.Helper()
	r, err := route.NewRoute([]route.Point{{X: 0, Y: 0}, {X: 1000, Y: 0}})
	require.NoError(t, err)
	return r
}

// spawnTestUnit создаёт врага с заданными параметрами напрямую в ECS,
// минуя планировщик волн.
func spawnTestUnit(ecs *entity.ECS, x, y, speed, progress float64, health int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Speed: speed, PathMultiplier: 1}
	ecs.Healths[id] = &component.Health{Value: health, Max: health}
	ecs.Enemies[id] = &component.Enemy{DefID: "ENEMY_BASIC", Progress: progress, Radius: 10}
	return id
}

// eventRecorder накапливает все доставленные события для проверок.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(eventType event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

func (r *eventRecorder) last(eventType event.EventType) (event.Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == eventType {
			return r.events[i], true
		}
	}
	return event.Event{}, false
}
