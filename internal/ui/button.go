// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, W, H float32
	Text       string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
	Font       font.Face
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h float32, label string, face font.Face, bg, hover color.Color) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Text:       label,
		TextColor:  color.White,
		BgColor:    bg,
		HoverColor: hover,
		Font:       face,
	}
}

// Contains проверяет попадание точки в кнопку.
func (b *Button) Contains(mx, my int) bool {
	x, y := float32(mx), float32(my)
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	bg := b.BgColor
	if b.Contains(mx, my) {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, true)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, color.White, true)

	bounds := text.BoundString(b.Font, b.Text)
	tx := int(b.X) + (int(b.W)-bounds.Dx())/2
	ty := int(b.Y) + (int(b.H)+bounds.Dy())/2
	text.Draw(screen, b.Text, b.Font, tx, ty, b.TextColor)
}
