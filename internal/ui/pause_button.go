// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"time"

	"bastion-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton рисует «паузу» (две полосы) или «play» (треугольник).
type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.RGBA
	PlayColor      color.RGBA
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	rectSize := b.Size * pulse(time.Since(b.LastClickTime).Seconds())

	if b.IsPaused {
		// Треугольник (play)
		fillPolygon(screen, [][2]float32{
			{b.X - rectSize, b.Y - rectSize*1.2},
			{b.X + rectSize, b.Y},
			{b.X - rectSize, b.Y + rectSize*1.2},
		}, b.PlayColor, config.UIBorderColor, config.UIBorderWidth)
		return
	}

	// Две полосы (pause)
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(screen, x, b.Y-height/2, width, height, b.PauseColor, true)
		vector.StrokeRect(screen, x, b.Y-height/2, width, height, config.UIBorderWidth, config.UIBorderColor, true)
	}
}

func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*1.5
}

// CanToggle сообщает, прошёл ли антидребезг после прошлого клика.
func (b *PauseButton) CanToggle() bool {
	return time.Since(b.LastToggleTime) >= config.ClickCooldown*time.Millisecond
}

func (b *PauseButton) HandleClick() {
	b.LastClickTime = time.Now()
	b.LastToggleTime = b.LastClickTime
}

// SetPaused синхронизирует кнопку с состоянием сессии.
func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
