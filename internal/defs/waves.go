// internal/defs/waves.go
package defs

import "time"

// SpawnGroup описывает однородную группу врагов внутри волны.
type SpawnGroup struct {
	EnemyID       string        // Идентификатор врага из EnemyLibrary
	Count         int           // Количество врагов в группе
	SpawnInterval time.Duration // Интервал между появлением врагов группы
}

// WaveDefinition описывает параметры одной волны: упорядоченный список групп
// и награду за зачистку.
type WaveDefinition struct {
	Groups []SpawnGroup
	Reward int
}

// WavePatterns определяет последовательность волн по умолчанию.
// Индекс в срезе — номер волны минус один.
var WavePatterns = []WaveDefinition{
	{Groups: []SpawnGroup{{EnemyID: "ENEMY_BASIC", Count: 5, SpawnInterval: 800 * time.Millisecond}}, Reward: 50},
	{Groups: []SpawnGroup{{EnemyID: "ENEMY_BASIC", Count: 8, SpawnInterval: 800 * time.Millisecond}}, Reward: 60},
	{Groups: []SpawnGroup{
		{EnemyID: "ENEMY_BASIC", Count: 10, SpawnInterval: 800 * time.Millisecond},
		{EnemyID: "ENEMY_TANK", Count: 3, SpawnInterval: 2 * time.Second},
	}, Reward: 80},
	{Groups: []SpawnGroup{
		{EnemyID: "ENEMY_FAST", Count: 10, SpawnInterval: 500 * time.Millisecond},
		{EnemyID: "ENEMY_BASIC", Count: 6, SpawnInterval: 800 * time.Millisecond},
	}, Reward: 90},
	{Groups: []SpawnGroup{
		{EnemyID: "ENEMY_TANK", Count: 6, SpawnInterval: 1500 * time.Millisecond},
		{EnemyID: "ENEMY_FAST", Count: 8, SpawnInterval: 400 * time.Millisecond},
	}, Reward: 110},
	{Groups: []SpawnGroup{
		{EnemyID: "ENEMY_BASIC", Count: 15, SpawnInterval: 400 * time.Millisecond},
		{EnemyID: "ENEMY_TANK", Count: 5, SpawnInterval: 1500 * time.Millisecond},
	}, Reward: 130},
	{Groups: []SpawnGroup{
		{EnemyID: "ENEMY_FAST", Count: 20, SpawnInterval: 300 * time.Millisecond},
	}, Reward: 150},
	{Groups: []SpawnGroup{
		{EnemyID: "ENEMY_TANK", Count: 10, SpawnInterval: 1200 * time.Millisecond},
		{EnemyID: "ENEMY_FAST", Count: 10, SpawnInterval: 300 * time.Millisecond},
	}, Reward: 170},
	{Groups: []SpawnGroup{
		{EnemyID: "ENEMY_BASIC", Count: 20, SpawnInterval: 300 * time.Millisecond},
		{EnemyID: "ENEMY_TANK", Count: 8, SpawnInterval: 1000 * time.Millisecond},
	}, Reward: 200},
	{Groups: []SpawnGroup{
		{EnemyID: "ENEMY_BOSS", Count: 1, SpawnInterval: time.Second},
		{EnemyID: "ENEMY_FAST", Count: 12, SpawnInterval: 400 * time.Millisecond},
	}, Reward: 400},
}
