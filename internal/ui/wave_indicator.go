// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"bastion-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         float32
	Color        color.RGBA
	FinalColor   color.RGBA // последняя волна
	OutlineColor color.RGBA
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float32) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        config.BetweenStateColor,
		FinalColor:   config.PlayingStateColor,
		OutlineColor: config.UIBorderColor,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает номер волны с обводкой. После победы номер
// выходит за total, тогда показываем последнюю волну.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, wave, total int) {
	if wave > total {
		wave = total
	}
	label := toRoman(wave)
	if label == "" {
		return
	}

	textColor := i.Color
	if wave == total {
		textColor = i.FinalColor
	}

	bounds := text.BoundString(face, label)
	x := int(i.X) - bounds.Dx()/2
	y := int(i.Y)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, x, y, textColor)
}
