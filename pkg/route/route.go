// pkg/route/route.go
package route

import (
	"errors"
	"math"
)

// Point — точка маршрута в экранных координатах.
type Point struct {
	X, Y float64
}

// Route — неизменяемая ломаная, по которой движутся враги от входа к выходу.
// Все производные величины (длины сегментов, накопленные длины) вычисляются
// один раз при создании; после этого маршрут только читается.
type Route struct {
	waypoints  []Point
	segLengths []float64
	cumLengths []float64 // накопленная длина до начала i-го сегмента
	total      float64
}

var ErrTooFewWaypoints = errors.New("route: need at least two waypoints")

// NewRoute создает маршрут по списку контрольных точек (минимум две).
// Сегменты нулевой длины допускаются и просто пропускаются при запросах.
func NewRoute(waypoints []Point) (*Route, error) {
	if len(waypoints) < 2 {
		return nil, ErrTooFewWaypoints
	}

	r := &Route{
		waypoints:  make([]Point, len(waypoints)),
		segLengths: make([]float64, len(waypoints)-1),
		cumLengths: make([]float64, len(waypoints)-1),
	}
	copy(r.waypoints, waypoints)

	for i := 0; i < len(waypoints)-1; i++ {
		dx := waypoints[i+1].X - waypoints[i].X
		dy := waypoints[i+1].Y - waypoints[i].Y
		r.cumLengths[i] = r.total
		r.segLengths[i] = math.Sqrt(dx*dx + dy*dy)
		r.total += r.segLengths[i]
	}
	return r, nil
}

// TotalLength возвращает полную длину маршрута в пикселях.
func (r *Route) TotalLength() float64 {
	return r.total
}

// Start возвращает точку входа врагов.
func (r *Route) Start() Point {
	return r.waypoints[0]
}

// End возвращает точку выхода.
func (r *Route) End() Point {
	return r.waypoints[len(r.waypoints)-1]
}

// PositionAt возвращает позицию и направление движения (радианы) для
// прогресса progress ∈ [0, 1] по длине дуги. Значения вне диапазона
// ограничиваются до границ.
func (r *Route) PositionAt(progress float64) (x, y, heading float64) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	target := progress * r.total

	for i, segLen := range r.segLengths {
		if segLen == 0 {
			continue
		}
		if target <= r.cumLengths[i]+segLen || i == len(r.segLengths)-1 {
			t := (target - r.cumLengths[i]) / segLen
			if t > 1 {
				t = 1
			}
			a, b := r.waypoints[i], r.waypoints[i+1]
			x = a.X + (b.X-a.X)*t
			y = a.Y + (b.Y-a.Y)*t
			heading = math.Atan2(b.Y-a.Y, b.X-a.X)
			return x, y, heading
		}
	}

	// Маршрут из одних нулевых сегментов: стоим на входе.
	start := r.waypoints[0]
	return start.X, start.Y, 0
}

// DistanceTo возвращает минимальное расстояние от точки до ломаной.
// Используется при валидации размещения башен (буфер вокруг маршрута).
func (r *Route) DistanceTo(px, py float64) float64 {
	min := math.MaxFloat64
	for i := 0; i < len(r.waypoints)-1; i++ {
		d := distToSegment(px, py, r.waypoints[i], r.waypoints[i+1])
		if d < min {
			min = d
		}
	}
	return min
}

func distToSegment(px, py float64, a, b Point) float64 {
	abx := b.X - a.X
	aby := b.Y - a.Y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return math.Hypot(px-a.X, py-a.Y)
	}
	t := ((px-a.X)*abx + (py-a.Y)*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	cx := a.X + abx*t
	cy := a.Y + aby*t
	return math.Hypot(px-cx, py-cy)
}
