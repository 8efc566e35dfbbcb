// internal/assets/fonts.go
package assets

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// UIFont возвращает шрифт для текстовых элементов UI.
// Внешних файлов не требует.
func UIFont() font.Face {
	return basicfont.Face7x13
}
