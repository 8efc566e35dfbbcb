// internal/defs/level.go
package defs

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// LevelConfig описывает уровень: маршрут, стартовые ресурсы и
// последовательность волн. Загружается из YAML; при отсутствии файла
// используется DefaultLevel.
type LevelConfig struct {
	Name          string        `yaml:"name"`
	StartingFunds int           `yaml:"starting_funds"`
	Lives         int           `yaml:"lives"`
	Waypoints     []PointConfig `yaml:"waypoints"`
	Waves         []WaveConfig  `yaml:"waves"`
}

// PointConfig — точка маршрута в файле уровня.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// WaveConfig — одна волна в файле уровня.
type WaveConfig struct {
	Reward int           `yaml:"reward"`
	Groups []GroupConfig `yaml:"groups"`
}

// GroupConfig — группа врагов внутри волны.
type GroupConfig struct {
	Enemy      string `yaml:"enemy"`
	Count      int    `yaml:"count"`
	IntervalMs int    `yaml:"interval_ms"`
}

// LoadLevel читает и валидирует файл уровня.
func LoadLevel(path string) (*LevelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}

	var lc LevelConfig
	if err := yaml.Unmarshal(data, &lc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level file: %w", err)
	}
	if err := lc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level %q: %w", lc.Name, err)
	}
	return &lc, nil
}

// Validate проверяет структурную корректность уровня. Пустые волны
// допустимы (они мгновенно завершаются), пустой маршрут — нет.
func (lc *LevelConfig) Validate() error {
	if len(lc.Waypoints) < 2 {
		return fmt.Errorf("route needs at least 2 waypoints, got %d", len(lc.Waypoints))
	}
	if len(lc.Waves) == 0 {
		return fmt.Errorf("level has no waves")
	}
	for wi, w := range lc.Waves {
		for gi, g := range w.Groups {
			if _, ok := EnemyLibrary[g.Enemy]; !ok {
				return fmt.Errorf("wave %d group %d: unknown enemy %q", wi+1, gi+1, g.Enemy)
			}
			if g.Count < 0 {
				return fmt.Errorf("wave %d group %d: negative count", wi+1, gi+1)
			}
			if g.IntervalMs < 0 {
				return fmt.Errorf("wave %d group %d: negative interval", wi+1, gi+1)
			}
		}
	}
	return nil
}

// WaveDefinitions конвертирует волны уровня во внутренний формат планировщика.
func (lc *LevelConfig) WaveDefinitions() []WaveDefinition {
	defs := make([]WaveDefinition, 0, len(lc.Waves))
	for _, w := range lc.Waves {
		groups := make([]SpawnGroup, 0, len(w.Groups))
		for _, g := range w.Groups {
			groups = append(groups, SpawnGroup{
				EnemyID:       g.Enemy,
				Count:         g.Count,
				SpawnInterval: time.Duration(g.IntervalMs) * time.Millisecond,
			})
		}
		defs = append(defs, WaveDefinition{Groups: groups, Reward: w.Reward})
	}
	return defs
}

// DefaultLevel возвращает встроенный уровень: S-образный маршрут через весь
// экран и стандартная последовательность WavePatterns.
func DefaultLevel() *LevelConfig {
	lc := &LevelConfig{
		Name:          "default",
		StartingFunds: 0, // 0 — взять значение из config
		Lives:         0,
		Waypoints: []PointConfig{
			{X: 0, Y: 150},
			{X: 900, Y: 150},
			{X: 900, Y: 450},
			{X: 250, Y: 450},
			{X: 250, Y: 750},
			{X: 1200, Y: 750},
		},
	}
	for _, wd := range WavePatterns {
		wc := WaveConfig{Reward: wd.Reward}
		for _, g := range wd.Groups {
			wc.Groups = append(wc.Groups, GroupConfig{
				Enemy:      g.EnemyID,
				Count:      g.Count,
				IntervalMs: int(g.SpawnInterval / time.Millisecond),
			})
		}
		lc.Waves = append(lc.Waves, wc)
	}
	return lc
}
