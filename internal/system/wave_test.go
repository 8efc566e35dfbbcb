// internal/system/wave_test.go
package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-defense-sim/internal/component"
	"go-defense-sim/internal/defs"
	"go-defense-sim/internal/entity"
	"go-defense-sim/internal/event"
	"go-defense-sim/internal/utils"
)

func newTestWaveSystem(t *testing.T, waves []defs.WaveDefinition) (*WaveSystem, *entity.ECS, *eventRecorder) {
	t.Helper()
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.WaveStarted, rec)
	dispatcher.Subscribe(event.WaveCompleted, rec)
	dispatcher.Subscribe(event.AllWavesCompleted, rec)
	dispatcher.Subscribe(event.UnitSpawned, rec)
	s := NewWaveSystem(ecs, testRoute(t), dispatcher, utils.NewPRNGService(1), waves)
	return s, ecs, rec
}

func killAllUnits(ecs *entity.ECS) {
	for id := range ecs.Enemies {
		ecs.Healths[id].Value = 0
	}
}

func TestExpandSpawnQueueOffsets(t *testing.T) {
	def := defs.WaveDefinition{Groups: []defs.SpawnGroup{
		{EnemyID: "ENEMY_BASIC", Count: 10, SpawnInterval: 800 * time.Millisecond},
		{EnemyID: "ENEMY_TANK", Count: 3, SpawnInterval: 2 * time.Second},
	}}

	queue := expandSpawnQueue(def, 0, utils.NewPRNGService(1))
	require.Len(t, queue, 13)

	// Смещение — сквозной индекс спавна × интервал группы записи.
	for i := 0; i < 10; i++ {
		assert.Equal(t, "ENEMY_BASIC", queue[i].EnemyID)
		assert.InDelta(t, float64(i)*0.8, queue[i].Offset, 1e-9)
	}
	// На стыке групп зазор неравномерный: 7.2 → 20.
	assert.Equal(t, "ENEMY_TANK", queue[10].EnemyID)
	assert.InDelta(t, 20.0, queue[10].Offset, 1e-9)
	assert.InDelta(t, 22.0, queue[11].Offset, 1e-9)
	assert.InDelta(t, 24.0, queue[12].Offset, 1e-9)
}

func TestExpandSpawnQueueShuffled(t *testing.T) {
	def := defs.WaveDefinition{Groups: []defs.SpawnGroup{
		{EnemyID: "ENEMY_BASIC", Count: 6, SpawnInterval: 800 * time.Millisecond},
		{EnemyID: "ENEMY_TANK", Count: 4, SpawnInterval: 2 * time.Second},
	}}

	queue := expandSpawnQueue(def, 3, utils.NewPRNGService(1))
	require.Len(t, queue, 10)

	// Перемешанная очередь получает фиксированный шаг, интервалы групп
	// отбрасываются; состав очереди сохраняется.
	counts := map[string]int{}
	for i, entry := range queue {
		assert.InDelta(t, float64(i)*0.8, entry.Offset, 1e-9)
		counts[entry.EnemyID]++
	}
	assert.Equal(t, map[string]int{"ENEMY_BASIC": 6, "ENEMY_TANK": 4}, counts)
}

func TestExpandSpawnQueueShuffleIsSeeded(t *testing.T) {
	def := defs.WaveDefinition{Groups: []defs.SpawnGroup{
		{EnemyID: "ENEMY_BASIC", Count: 8, SpawnInterval: 800 * time.Millisecond},
		{EnemyID: "ENEMY_FAST", Count: 8, SpawnInterval: 400 * time.Millisecond},
	}}

	a := expandSpawnQueue(def, 5, utils.NewPRNGService(7))
	b := expandSpawnQueue(def, 5, utils.NewPRNGService(7))
	assert.Equal(t, a, b, "the same seed yields the same order")
}

func TestStartWaveRejections(t *testing.T) {
	s, ecs, _ := newTestWaveSystem(t, []defs.WaveDefinition{
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_BASIC", Count: 1, SpawnInterval: time.Second}}},
	})

	require.NoError(t, s.StartWave(true))
	assert.ErrorIs(t, s.StartWave(true), ErrWaveInProgress)

	ecs.Wave.Phase = component.WaveAllComplete
	assert.ErrorIs(t, s.StartWave(true), ErrAllWavesComplete)
}

func TestStartWaveCancelsCountdown(t *testing.T) {
	s, ecs, rec := newTestWaveSystem(t, []defs.WaveDefinition{
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_BASIC", Count: 1, SpawnInterval: time.Second}}},
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_BASIC", Count: 1, SpawnInterval: time.Second}}},
	})

	require.NoError(t, s.StartWave(true))
	s.Update(0.01) // спавн единственного врага
	killAllUnits(ecs)
	s.Update(0.01)
	require.Equal(t, component.WaveCountdown, ecs.Wave.Phase)

	require.NoError(t, s.StartWave(true))
	assert.Equal(t, component.WaveSpawning, ecs.Wave.Phase)
	assert.Zero(t, ecs.Wave.Countdown)

	e, ok := rec.last(event.WaveStarted)
	require.True(t, ok)
	assert.Equal(t, event.WaveStartedPayload{Number: 2, Manual: true}, e.Data)
}

func TestSpawnTiming(t *testing.T) {
	s, ecs, rec := newTestWaveSystem(t, []defs.WaveDefinition{
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_BASIC", Count: 2, SpawnInterval: 800 * time.Millisecond}}},
	})

	require.NoError(t, s.StartWave(true))

	s.Update(0.01)
	assert.Equal(t, 1, rec.count(event.UnitSpawned), "first spawn fires immediately")
	assert.Len(t, ecs.Enemies, 1)

	s.Update(0.5)
	assert.Equal(t, 1, rec.count(event.UnitSpawned), "second spawn waits for its offset")

	s.Update(0.3)
	assert.Equal(t, 2, rec.count(event.UnitSpawned))
}

func TestMinSpawnGapEnforced(t *testing.T) {
	s, _, rec := newTestWaveSystem(t, []defs.WaveDefinition{
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_FAST", Count: 3, SpawnInterval: 200 * time.Millisecond}}},
	})

	require.NoError(t, s.StartWave(true))

	// Интервал группы 0.2 с меньше минимального зазора: спавны растянуты до 0.5 с.
	s.Update(0.01)
	assert.Equal(t, 1, rec.count(event.UnitSpawned))
	s.Update(0.3)
	assert.Equal(t, 1, rec.count(event.UnitSpawned))
	s.Update(0.25)
	assert.Equal(t, 2, rec.count(event.UnitSpawned))
	s.Update(0.5)
	assert.Equal(t, 3, rec.count(event.UnitSpawned))
}

func TestWaveCompletion(t *testing.T) {
	s, ecs, rec := newTestWaveSystem(t, []defs.WaveDefinition{
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_BASIC", Count: 1, SpawnInterval: time.Second}}, Reward: 75},
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_BASIC", Count: 1, SpawnInterval: time.Second}}},
	})

	require.NoError(t, s.StartWave(true))
	s.Update(0.01)

	// Всё заспавнено, но враг жив: волна не завершается.
	s.Update(1.0)
	assert.Equal(t, component.WaveSpawning, ecs.Wave.Phase)
	assert.Zero(t, rec.count(event.WaveCompleted))

	killAllUnits(ecs)
	s.Update(1.0)

	assert.Equal(t, component.WaveCountdown, ecs.Wave.Phase)
	assert.InDelta(t, 10.0, ecs.Wave.Countdown, 1e-9)
	assert.Equal(t, 1, ecs.Wave.Stats.Completed)
	assert.Equal(t, 1, ecs.Wave.Index)

	e, ok := rec.last(event.WaveCompleted)
	require.True(t, ok)
	payload := e.Data.(event.WaveCompletedPayload)
	assert.Equal(t, 1, payload.Number)
	assert.Equal(t, 75, payload.Reward)
	assert.InDelta(t, 2.01, payload.ClearTime, 1e-9)
}

func TestWaveRewardFallback(t *testing.T) {
	s, ecs, rec := newTestWaveSystem(t, []defs.WaveDefinition{
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_BASIC", Count: 1, SpawnInterval: time.Second}}},
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_BASIC", Count: 1, SpawnInterval: time.Second}}},
	})

	require.NoError(t, s.StartWave(true))
	s.Update(0.01)
	killAllUnits(ecs)
	s.Update(0.01)

	// Награда в определении не задана: база плюс шаг за индекс волны.
	e, ok := rec.last(event.WaveCompleted)
	require.True(t, ok)
	assert.Equal(t, 50, e.Data.(event.WaveCompletedPayload).Reward)
}

func TestCountdownAutoStartsNextWave(t *testing.T) {
	s, ecs, rec := newTestWaveSystem(t, []defs.WaveDefinition{
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_BASIC", Count: 1, SpawnInterval: time.Second}}},
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_BASIC", Count: 1, SpawnInterval: time.Second}}},
	})

	require.NoError(t, s.StartWave(true))
	s.Update(0.01)
	killAllUnits(ecs)
	s.Update(0.01)
	require.Equal(t, component.WaveCountdown, ecs.Wave.Phase)

	s.Update(10.01)

	assert.Equal(t, component.WaveSpawning, ecs.Wave.Phase)
	assert.Equal(t, 1, ecs.Wave.Index)
	e, ok := rec.last(event.WaveStarted)
	require.True(t, ok)
	assert.Equal(t, event.WaveStartedPayload{Number: 2, Manual: false}, e.Data)
}

func TestAllWavesCompleteIsTerminal(t *testing.T) {
	s, ecs, rec := newTestWaveSystem(t, []defs.WaveDefinition{
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_BASIC", Count: 1, SpawnInterval: time.Second}}},
	})

	require.NoError(t, s.StartWave(true))
	s.Update(0.01)
	killAllUnits(ecs)
	s.Update(0.01)

	assert.Equal(t, component.WaveAllComplete, ecs.Wave.Phase)
	assert.Equal(t, 1, rec.count(event.AllWavesCompleted))

	assert.ErrorIs(t, s.StartWave(true), ErrAllWavesComplete)
	s.Update(100)
	assert.Equal(t, component.WaveAllComplete, ecs.Wave.Phase, "terminal phase never transitions")
}

func TestEmptyWaveCompletesImmediately(t *testing.T) {
	s, ecs, rec := newTestWaveSystem(t, []defs.WaveDefinition{
		{Groups: nil},
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_BASIC", Count: 1, SpawnInterval: time.Second}}},
	})

	require.NoError(t, s.StartWave(true))
	s.Update(0.01)

	assert.Equal(t, component.WaveCountdown, ecs.Wave.Phase)
	assert.Equal(t, 1, rec.count(event.WaveCompleted))
	assert.Empty(t, ecs.Enemies)
}

func TestCompletionWaitsForStragglers(t *testing.T) {
	s, ecs, _ := newTestWaveSystem(t, []defs.WaveDefinition{
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_BASIC", Count: 1, SpawnInterval: time.Second}}},
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_BASIC", Count: 1, SpawnInterval: time.Second}}},
	})

	// Живой враг, не принадлежащий текущей волне, тоже блокирует завершение:
	// проверяется весь живой набор.
	straggler := spawnTestUnit(ecs, 50, 0, 80, 0.05, 100)

	require.NoError(t, s.StartWave(true))
	s.Update(0.01)
	for id := range ecs.Enemies {
		if id != straggler {
			ecs.Healths[id].Value = 0
		}
	}

	s.Update(0.01)
	assert.Equal(t, component.WaveSpawning, ecs.Wave.Phase, "a straggler keeps the wave open")

	killAllUnits(ecs)
	s.Update(0.01)
	assert.Equal(t, component.WaveCountdown, ecs.Wave.Phase)
}

func TestWaveStatsAccumulate(t *testing.T) {
	s, ecs, _ := newTestWaveSystem(t, []defs.WaveDefinition{
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_BASIC", Count: 1, SpawnInterval: time.Second}}},
		{Groups: []defs.SpawnGroup{{EnemyID: "ENEMY_BASIC", Count: 1, SpawnInterval: time.Second}}},
	})

	require.NoError(t, s.StartWave(true))
	s.Update(0.01)
	killAllUnits(ecs)
	s.Update(0.99) // зачистка за 1.0 с

	require.NoError(t, s.StartWave(true))
	s.Update(0.01)
	killAllUnits(ecs)
	s.Update(2.99) // зачистка за 3.0 с

	stats := ecs.Wave.Stats
	assert.Equal(t, 2, stats.Completed)
	assert.InDelta(t, 1.0, stats.Fastest, 1e-9)
	assert.InDelta(t, 3.0, stats.Slowest, 1e-9)
	assert.InDelta(t, 2.0, stats.Average(), 1e-9)
}
