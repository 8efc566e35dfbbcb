// internal/component/wave.go
package component

// WavePhase — явное состояние планировщика волн.
// Недопустимых комбинаций флагов нет: планировщик всегда ровно в одной фазе.
type WavePhase int

const (
	WaveIdle WavePhase = iota
	WaveSpawning
	WaveCountdown
	WaveAllComplete // терминальная фаза, переходов из неё нет
)

func (p WavePhase) String() string {
	switch p {
	case WaveIdle:
		return "IDLE"
	case WaveSpawning:
		return "SPAWNING"
	case WaveCountdown:
		return "COUNTDOWN"
	case WaveAllComplete:
		return "ALL_COMPLETE"
	}
	return "UNKNOWN"
}

// SpawnEntry — один запланированный спавн в развёрнутой очереди волны.
type SpawnEntry struct {
	EnemyID string
	Offset  float64 // смещение от старта волны, с
}

// WaveStats — накопленная статистика времени зачистки волн.
type WaveStats struct {
	Completed int
	TotalTime float64 // сумма времён зачистки, для среднего
	Fastest   float64
	Slowest   float64
}

// Average возвращает среднее время зачистки завершённых волн.
func (s *WaveStats) Average() float64 {
	if s.Completed == 0 {
		return 0
	}
	return s.TotalTime / float64(s.Completed)
}

// Wave — единственный в ECS компонент планировщика волн.
type Wave struct {
	Phase       WavePhase
	Index       int          // индекс текущей (или следующей при Idle/Countdown) волны
	Queue       []SpawnEntry // развёрнутая очередь спавна активной волны
	Spawned     int          // сколько записей очереди уже заспавнено
	Elapsed     float64      // симуляционное время с начала активной волны, с
	NextSpawnAt float64      // момент следующего спавна относительно старта волны
	Countdown   float64      // остаток межволнового отсчёта, с
	Stats       WaveStats
}
