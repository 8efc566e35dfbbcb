// internal/system/wave.go
package system

import (
	"errors"
	"log"

	"go-defense-sim/internal/component"
	"go-defense-sim/internal/config"
	"go-defense-sim/internal/defs"
	"go-defense-sim/internal/entity"
	"go-defense-sim/internal/event"
	"go-defense-sim/internal/utils"
	"go-defense-sim/pkg/route"
)

var (
	ErrWaveInProgress   = errors.New("wave already in progress")
	ErrAllWavesComplete = errors.New("all waves complete")
)

// WaveSystem — планировщик волн: разворачивает определения волн в очередь
// спавна, создаёт врагов по таймеру симуляции и отслеживает завершение.
type WaveSystem struct {
	ecs             *entity.ECS
	route           *route.Route
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	waves           []defs.WaveDefinition
}

func NewWaveSystem(ecs *entity.ECS, r *route.Route, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, waves []defs.WaveDefinition) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		route:           r,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		waves:           waves,
	}
}

// StartWave запускает следующую волну. Отклоняется, пока волна активна и
// после зачистки всех волн; активный межволновой отсчёт отменяется.
func (s *WaveSystem) StartWave(manual bool) error {
	w := s.ecs.Wave
	switch w.Phase {
	case component.WaveSpawning:
		return ErrWaveInProgress
	case component.WaveAllComplete:
		return ErrAllWavesComplete
	case component.WaveCountdown:
		w.Countdown = 0
	}

	def := s.waves[w.Index]
	w.Queue = expandSpawnQueue(def, w.Index, s.rng)
	w.Spawned = 0
	w.Elapsed = 0
	w.Countdown = 0
	if len(w.Queue) > 0 {
		w.NextSpawnAt = w.Queue[0].Offset
	}
	w.Phase = component.WaveSpawning

	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveStartedPayload{
		Number: w.Index + 1,
		Manual: manual,
	}})
	return nil
}

func (s *WaveSystem) Update(deltaTime float64) {
	w := s.ecs.Wave
	switch w.Phase {
	case component.WaveSpawning:
		s.updateSpawning(deltaTime)
	case component.WaveCountdown:
		w.Countdown -= deltaTime
		if w.Countdown <= 0 {
			w.Countdown = 0
			if err := s.StartWave(false); err != nil {
				log.Printf("WaveSystem: auto-start failed: %v", err)
			}
		}
	}
	// Idle и AllComplete: делать нечего; AllComplete — терминальная фаза.
}

func (s *WaveSystem) updateSpawning(deltaTime float64) {
	w := s.ecs.Wave
	w.Elapsed += deltaTime

	for w.Spawned < len(w.Queue) && w.Elapsed >= w.NextSpawnAt {
		entry := w.Queue[w.Spawned]
		s.spawnEnemy(entry.EnemyID)
		w.Spawned++
		if w.Spawned < len(w.Queue) {
			// Зазор до следующего спавна — разница соседних смещений,
			// но не меньше минимального.
			gap := w.Queue[w.Spawned].Offset - entry.Offset
			if gap < config.MinSpawnGap {
				gap = config.MinSpawnGap
			}
			w.NextSpawnAt += gap
		}
	}

	// Волна завершена, когда всё заспавнено и живых врагов не осталось.
	// Проверяется весь живой набор, не только враги этой волны.
	if w.Spawned == len(w.Queue) && s.aliveUnits() == 0 {
		s.completeWave()
	}
}

func (s *WaveSystem) aliveUnits() int {
	alive := 0
	for id := range s.ecs.Enemies {
		if IsUnitAlive(s.ecs, id) {
			alive++
		}
	}
	return alive
}

func (s *WaveSystem) completeWave() {
	w := s.ecs.Wave
	clearTime := w.Elapsed

	w.Stats.Completed++
	w.Stats.TotalTime += clearTime
	if w.Stats.Completed == 1 || clearTime < w.Stats.Fastest {
		w.Stats.Fastest = clearTime
	}
	if clearTime > w.Stats.Slowest {
		w.Stats.Slowest = clearTime
	}

	number := w.Index + 1
	reward := s.waves[w.Index].Reward
	if reward == 0 {
		reward = config.WaveRewardBase + w.Index*config.WaveRewardStep
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: event.WaveCompletedPayload{
		Number:    number,
		Reward:    reward,
		ClearTime: clearTime,
	}})

	w.Index++
	w.Queue = nil
	w.Spawned = 0
	if w.Index >= len(s.waves) {
		w.Phase = component.WaveAllComplete
		log.Printf("WaveSystem: all %d waves cleared; avg %.1fs fastest %.1fs slowest %.1fs",
			w.Stats.Completed, w.Stats.Average(), w.Stats.Fastest, w.Stats.Slowest)
		s.eventDispatcher.Dispatch(event.Event{Type: event.AllWavesCompleted, Data: w.Stats})
		return
	}
	w.Phase = component.WaveCountdown
	w.Countdown = config.WaveCountdown
}

// expandSpawnQueue разворачивает определение волны в плоскую очередь.
// Смещение записи — сквозной индекс спавна, умноженный на интервал её
// группы; на стыках групп это даёт неравномерные зазоры — поведение
// сохранено как есть. Начиная с волны с индексом ShuffledWaveFromIndex
// очередь перемешивается, а смещения переписываются фиксированным шагом,
// исходные интервалы групп при этом отбрасываются.
func expandSpawnQueue(def defs.WaveDefinition, waveIndex int, rng *utils.PRNGService) []component.SpawnEntry {
	var queue []component.SpawnEntry
	spawnIndex := 0
	for _, group := range def.Groups {
		interval := group.SpawnInterval.Seconds()
		for i := 0; i < group.Count; i++ {
			queue = append(queue, component.SpawnEntry{
				EnemyID: group.EnemyID,
				Offset:  float64(spawnIndex) * interval,
			})
			spawnIndex++
		}
	}

	if waveIndex >= config.ShuffledWaveFromIndex && len(queue) > 1 {
		rng.Shuffle(len(queue), func(i, j int) {
			queue[i], queue[j] = queue[j], queue[i]
		})
		for i := range queue {
			queue[i].Offset = float64(i) * config.ShuffledSpawnStride
		}
	}
	return queue
}

func (s *WaveSystem) spawnEnemy(enemyID string) {
	def, ok := defs.EnemyLibrary[enemyID]
	if !ok {
		log.Printf("WaveSystem: enemy definition not found for ID: %s", enemyID)
		return
	}

	mult := def.PathMultiplier
	if mult == 0 {
		mult = 1 // не задан в файле определений
	}

	id := s.ecs.NewEntity()
	x, y, heading := s.route.PositionAt(0)
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed, PathMultiplier: mult}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:   enemyID,
		Heading: heading,
		Radius:  def.Visuals.Radius,
		Reward:  def.Reward,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(def.Visuals.Radius),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.UnitSpawned, Data: event.UnitSpawnedPayload{
		ID:    id,
		DefID: enemyID,
	}})
}
