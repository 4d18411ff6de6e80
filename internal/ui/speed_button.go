// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"bastion-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton: два треугольника «перемотки», цвет зависит от скорости.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.RGBA
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	triangleSize := b.Size * pulse(time.Since(b.LastClickTime).Seconds())
	c := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	// Левый треугольник
	fillPolygon(screen, [][2]float32{
		{b.X - width, b.Y - height/2},
		{b.X, b.Y},
		{b.X - width, b.Y + height/2},
	}, c, config.UIBorderColor, config.UIBorderWidth)
	// Правый треугольник
	fillPolygon(screen, [][2]float32{
		{b.X - width + offset, b.Y - height/2},
		{b.X + offset, b.Y},
		{b.X - width + offset, b.Y + height/2},
	}, c, config.UIBorderColor, config.UIBorderWidth)
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// Используем круг для определения попадания, так как форма сложная
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) CanToggle() bool {
	return time.Since(b.LastToggleTime) >= config.ClickCooldown*time.Millisecond
}

func (b *SpeedButton) HandleClick() {
	b.LastClickTime = time.Now()
	b.LastToggleTime = b.LastClickTime
}

// SetSpeed синхронизирует кнопку с множителем скорости сессии.
func (b *SpeedButton) SetSpeed(speed float64) {
	if speed > 1 {
		b.CurrentState = 1
	} else {
		b.CurrentState = 0
	}
}
