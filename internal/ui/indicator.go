// internal/ui/indicator.go
package ui

import (
	"image/color"
	"time"

	"bastion-defense/internal/component"
	"bastion-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator: кружок цвета текущей фазы. Клик по нему запускает
// следующую волну.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// PhaseColor returns the indicator color of a phase.
func PhaseColor(p component.Phase) color.RGBA {
	switch p {
	case component.PhasePlaying:
		return config.PlayingStateColor
	case component.PhaseBetweenWaves:
		return config.BetweenStateColor
	case component.PhaseVictory:
		return config.VictoryStateColor
	case component.PhaseDefeat:
		return config.DefeatStateColor
	default:
		return config.MenuStateColor
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, phase component.Phase) {
	currentRadius := i.Radius * pulse(time.Since(i.LastClickTime).Seconds())
	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, PhaseColor(phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, config.UIBorderWidth, config.UIBorderColor, true)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *StateIndicator) IsClicked(x, y int) bool {
	dx := float32(x) - i.X
	dy := float32(y) - i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

// HandleClick запоминает время клика для анимации
func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
