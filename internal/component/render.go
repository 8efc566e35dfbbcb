// internal/component/render.go
package component

import "image/color"

// Renderable — визуальное представление сущности для слоя отрисовки.
// На симуляцию не влияет.
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
