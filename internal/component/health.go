// internal/component/health.go
package component

// Health — компонент здоровья. Value всегда в диапазоне [0, Max].
type Health struct {
	Value int
	Max   int
}
