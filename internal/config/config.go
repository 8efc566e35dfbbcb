// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Сетка размещения башен
	CellSize    = 40.0
	RouteBuffer = 28.0 // минимальная дистанция от центра ячейки до маршрута

	BaseLives     = 20
	StartingFunds = 200

	ClickCooldown     = 300
	IndicatorOffsetX  = 30
	IndicatorRadius   = 10.0
	PauseButtonOffset = 80

	// Турель
	TurretTurnRate     = 6.0 // радиан в секунду
	AlignmentTolerance = 0.1 // допуск рассогласования перед выстрелом, рад

	// Снаряды
	ProjectileMaxLifetime = 5.0    // секунд полёта до самоуничтожения
	ProjectileMaxDistance = 1000.0 // пикселей пути до самоуничтожения
	PredictionHorizon     = 0.5    // максимальное время упреждения, с
	HomingCorrection      = 0.1    // доля доворота вектора скорости за тик
	SplashDamageFactor    = 0.7    // базовый сплеш = floor(урон * 0.7)

	// Планировщик волн
	MinSpawnGap           = 0.5 // минимальный зазор между спавнами, с
	ShuffledWaveFromIndex = 3   // с этого индекса волны очередь перемешивается
	ShuffledSpawnStride   = 0.8 // фиксированный шаг перемешанных волн, с
	WaveCountdown         = 10.0

	WaveRewardBase = 50
	WaveRewardStep = 10
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	RouteColor       = color.RGBA{70, 100, 120, 220}
	RouteEndColor    = color.RGBA{255, 0, 0, 255}
	RouteStartColor  = color.RGBA{0, 255, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	RangeColor       = color.RGBA{240, 240, 240, 40}
	FacingLineColor  = color.RGBA{255, 255, 0, 128}
	UIColorBlue      = color.RGBA{70, 130, 180, 220}
	UIColorRed       = color.RGBA{220, 60, 60, 220}
)
