// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — кнопка паузы с анимацией нажатия.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	rectSize := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play): три толстые линии вместо заливки
		c := b.PlayColor
		x1, y1 := b.X-rectSize, b.Y-rectSize*1.2
		x2, y2 := b.X-rectSize, b.Y+rectSize*1.2
		x3, y3 := b.X+rectSize, b.Y
		vector.StrokeLine(screen, x1, y1, x2, y2, 3, c, true)
		vector.StrokeLine(screen, x2, y2, x3, y3, 3, c, true)
		vector.StrokeLine(screen, x3, y3, x1, y1, 3, c, true)
	} else {
		// Два прямоугольника (pause)
		c := b.PauseColor
		width := rectSize * 0.6
		height := rectSize * 2.0
		spacing := rectSize * 0.4
		vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, c, true)
		vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, c, true)
	}
}

func (b *PauseButton) Contains(mx, my int) bool {
	dx := float32(mx) - b.X
	dy := float32(my) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*4
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}
