// internal/ui/hull_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"bastion-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HullCols          = 10
	HullCircleRadius  = 5.0
	HullCircleSpacing = 3.0
	hullCellsMax      = 40
)

var (
	hullFullColor  = color.RGBA{70, 130, 180, 255}
	hullLowColor   = color.RGBA{220, 40, 40, 255}
	hullEmptyColor = color.RGBA{0, 0, 0, 255}
)

// HullIndicator отображает корпус бастиона сеткой кружков.
type HullIndicator struct {
	X, Y float32
}

// NewHullIndicator создает новый индикатор корпуса.
func NewHullIndicator(x, y float32) *HullIndicator {
	return &HullIndicator{X: x, Y: y}
}

// Draw рисует сетку: заполненные кружки показывают оставшийся корпус. Когда
// осталось меньше половины, кружки красные. Большой корпус
// масштабируется на hullCellsMax ячеек.
func (i *HullIndicator) Draw(screen *ebiten.Image, face font.Face, hull, maxHull int) {
	if maxHull <= 0 {
		return
	}
	cells := min(maxHull, hullCellsMax)
	filled := hull * cells / maxHull
	if hull > 0 && filled == 0 {
		filled = 1
	}

	fill := hullFullColor
	if hull*2 <= maxHull {
		fill = hullLowColor
	}

	step := float32(HullCircleRadius*2 + HullCircleSpacing)
	for j := 0; j < cells; j++ {
		x := i.X + float32(j%HullCols)*step + HullCircleRadius
		y := i.Y + float32(j/HullCols)*step + HullCircleRadius
		c := hullEmptyColor
		if j < filled {
			c = fill
		}
		vector.DrawFilledCircle(screen, x, y, HullCircleRadius, c, true)
		vector.StrokeCircle(screen, x, y, HullCircleRadius, 1, config.UIBorderColor, true)
	}

	label := strconv.Itoa(hull) + "/" + strconv.Itoa(maxHull)
	text.Draw(screen, label, face, int(i.X+float32(HullCols)*step+6), int(i.Y+HullCircleRadius*2), config.TextLightColor)
}
