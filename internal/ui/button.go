// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"bastion-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Disabled   bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  config.TextLightColor,
		BgColor:    color.RGBA{60, 60, 70, 230},
		HoverColor: color.RGBA{90, 90, 110, 230},
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, cursorX, cursorY int) {
	bg := b.BgColor
	if b.Disabled {
		bg = color.RGBA{40, 40, 40, 200}
	} else if b.Contains(cursorX, cursorY) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, config.UIBorderColor, false)

	bounds := text.BoundString(face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Text, face, textX, textY, b.TextColor)
}
