// internal/app/game_test.go
package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-defense-sim/internal/component"
	"go-defense-sim/internal/defs"
)

func testLevel() *defs.LevelConfig {
	return &defs.LevelConfig{
		Name:          "test",
		StartingFunds: 200,
		Lives:         5,
		Waypoints:     []defs.PointConfig{{X: 0, Y: 100}, {X: 1000, Y: 100}},
		Waves: []defs.WaveConfig{
			{Groups: []defs.GroupConfig{{Enemy: "ENEMY_FAST", Count: 1, IntervalMs: 1000}}},
		},
	}
}

// fakeWallet — простой кошелёк для проверки делегирования средств.
type fakeWallet struct {
	funds int
}

func (w *fakeWallet) CanAfford(amount int) bool { return w.funds >= amount }
func (w *fakeWallet) Spend(amount int) bool {
	if !w.CanAfford(amount) {
		return false
	}
	w.funds -= amount
	return true
}

func TestNewGameValidatesLevel(t *testing.T) {
	bad := testLevel()
	bad.Waypoints = bad.Waypoints[:1]
	_, err := NewGame(bad, nil, 1)
	assert.Error(t, err)
}

func TestPlaceTowerUnknownType(t *testing.T) {
	g, err := NewGame(testLevel(), nil, 1)
	require.NoError(t, err)

	_, err = g.PlaceTower("TOWER_BOGUS", 600, 500)
	assert.ErrorIs(t, err, ErrUnknownTower)
}

func TestPlaceTowerRejections(t *testing.T) {
	g, err := NewGame(testLevel(), nil, 1)
	require.NoError(t, err)

	tests := []struct {
		name string
		x, y float64
	}{
		{"outside playfield", -10, 50},
		{"beyond right edge", 1300, 50},
		{"too close to the route", 600, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.PlaceTower("TOWER_ARROW", tt.x, tt.y)
			assert.ErrorIs(t, err, ErrInvalidPlacement)
		})
	}
	assert.Empty(t, g.ECS.Towers, "rejected placements leave no towers behind")
}

func TestPlaceTowerOccupiedCell(t *testing.T) {
	g, err := NewGame(testLevel(), nil, 1)
	require.NoError(t, err)

	_, err = g.PlaceTower("TOWER_ARROW", 600, 500)
	require.NoError(t, err)

	// Вторая башня в ту же ячейку сетки, хоть и в другую точку.
	_, err = g.PlaceTower("TOWER_ARROW", 610, 510)
	assert.ErrorIs(t, err, ErrInvalidPlacement)
	assert.Len(t, g.ECS.Towers, 1)
}

func TestPlaceTowerSnapsToCellCenter(t *testing.T) {
	g, err := NewGame(testLevel(), nil, 1)
	require.NoError(t, err)

	id, err := g.PlaceTower("TOWER_ARROW", 611, 507)
	require.NoError(t, err)

	pos := g.ECS.Positions[id]
	assert.Equal(t, 620.0, pos.X)
	assert.Equal(t, 500.0, pos.Y)
}

func TestPlaceTowerFundsDelegation(t *testing.T) {
	wallet := &fakeWallet{funds: 60}
	g, err := NewGame(testLevel(), wallet, 1)
	require.NoError(t, err)

	_, err = g.PlaceTower("TOWER_ARROW", 600, 500)
	require.NoError(t, err)
	assert.Equal(t, 10, wallet.funds, "placement spends the tower cost")

	_, err = g.PlaceTower("TOWER_ARROW", 700, 500)
	assert.ErrorIs(t, err, ErrInvalidPlacement)
	assert.Equal(t, 10, wallet.funds)
	assert.Len(t, g.ECS.Towers, 1)
}

func TestPlaceTowerNilFundsIsFree(t *testing.T) {
	g, err := NewGame(testLevel(), nil, 1)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := g.PlaceTower("TOWER_SNIPER", 200+float64(i)*80, 500)
		require.NoError(t, err)
	}
	assert.Len(t, g.ECS.Towers, 5)
}

func TestSetTargetingPolicy(t *testing.T) {
	g, err := NewGame(testLevel(), nil, 1)
	require.NoError(t, err)

	id, err := g.PlaceTower("TOWER_ARROW", 600, 500)
	require.NoError(t, err)
	require.Equal(t, defs.PolicyNearestToGoal, g.ECS.Towers[id].Policy)

	g.SetTargetingPolicy(id, "WEAKEST")
	assert.Equal(t, defs.PolicyWeakest, g.ECS.Towers[id].Policy)

	// Неопознанная политика игнорируется, прежняя сохраняется.
	g.SetTargetingPolicy(id, "BOGUS")
	assert.Equal(t, defs.PolicyWeakest, g.ECS.Towers[id].Policy)

	// Неизвестная башня — тоже тихий no-op.
	g.SetTargetingPolicy(9999, "STRONGEST")
}

func TestUpdateDeltaHandling(t *testing.T) {
	g, err := NewGame(testLevel(), nil, 1)
	require.NoError(t, err)

	g.Update(0)
	g.Update(-1)
	assert.Zero(t, g.ECS.GameTime, "non-positive delta is ignored")

	g.Update(1.0)
	assert.InDelta(t, 0.06, g.ECS.GameTime, 1e-9, "oversized delta clamps")
}

func TestSnapshotAfterWaveStart(t *testing.T) {
	g, err := NewGame(testLevel(), nil, 1)
	require.NoError(t, err)

	_, err = g.PlaceTower("TOWER_ARROW", 600, 500)
	require.NoError(t, err)
	require.NoError(t, g.StartWave(true))
	g.Update(0.05)

	snap := g.Snapshot()
	assert.InDelta(t, 0.05, snap.GameTime, 1e-9)
	assert.Equal(t, 5, snap.Lives)
	require.Len(t, snap.Units, 1)
	assert.Equal(t, "ENEMY_FAST", snap.Units[0].DefID)
	require.Len(t, snap.Towers, 1)
	assert.Equal(t, "SPAWNING", snap.Wave.Phase)
	assert.Equal(t, 1, snap.Wave.Number)
	assert.Equal(t, 1, snap.Wave.TotalWaves)
}

func TestSpawnedUnitVisibleSameTick(t *testing.T) {
	g, err := NewGame(testLevel(), nil, 1)
	require.NoError(t, err)

	// Башня рядом с точкой спавна: ячейка (1,1), центр (60,60),
	// до старта маршрута ~72 при радиусе 140.
	id, err := g.PlaceTower("TOWER_ARROW", 60, 60)
	require.NoError(t, err)

	require.NoError(t, g.StartWave(true))
	g.Update(0.01)

	// Планировщик идёт первым в тике: свежезаспавненный враг уже виден
	// прицеливанию в том же Update.
	tower := g.ECS.Towers[id]
	assert.Equal(t, component.TurretTracking, tower.State)
	assert.NotZero(t, tower.TargetID)
}

func TestLeakCostsLife(t *testing.T) {
	level := testLevel()
	level.Waypoints = []defs.PointConfig{{X: 0, Y: 100}, {X: 120, Y: 100}}
	g, err := NewGame(level, nil, 1)
	require.NoError(t, err)

	require.NoError(t, g.StartWave(true))
	// ENEMY_FAST проходит 120 ед за ~0.86 с.
	for i := 0; i < 30; i++ {
		g.Update(0.05)
	}

	assert.Equal(t, 4, g.Lives)
	assert.Equal(t, 1, g.ECS.Stats.Leaks)
	assert.Empty(t, g.ECS.Enemies, "leaked unit leaves the live set")
}
