// internal/component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости движения по маршруту
type Velocity struct {
	Speed          float64 // пикселей в секунду вдоль маршрута
	PathMultiplier float64 // множитель маршрута (1.0 — без модификаторов)
}
