// internal/component/enemy.go
package component

// Enemy представляет вражескую сущность, движущуюся по маршруту.
type Enemy struct {
	DefID      string  // ID из EnemyLibrary
	Progress   float64 // доля пройденного маршрута, [0, 1], не убывает
	Heading    float64 // направление движения, радианы
	Radius     float64 // радиус для проверки столкновений
	Reward     int     // награда за уничтожение
	ReachedEnd bool    // достиг ли враг конца пути (жизнь потеряна, не награда)
}
