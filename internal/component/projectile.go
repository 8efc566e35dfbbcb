// internal/component/projectile.go
package component

import "go-defense-sim/internal/types"

// Projectile представляет летящий снаряд. Resolved переходит false→true
// ровно один раз; весь урон снаряда наносится внутри этого перехода.
type Projectile struct {
	TargetID     types.EntityID // невладеющая ссылка на цель
	VX, VY       float64        // вектор скорости, пикселей в секунду
	Speed        float64        // модуль скорости
	Damage       int
	Splash       bool
	SplashRadius float64
	Radius       float64 // радиус снаряда (size/2)
	Heading      float64 // визуальное направление, производное от скорости
	Elapsed      float64 // накопленное время полёта, с
	Traveled     float64 // накопленный путь, пикселей
	Resolved     bool
}
