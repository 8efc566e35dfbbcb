// internal/component/stats.go
package component

// GameStats — счётчики за текущий забег.
type GameStats struct {
	ShotsFired int
	ShotsHit   int
	Kills      int
	Leaks      int // враги, дошедшие до конца маршрута
}
