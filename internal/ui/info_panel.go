// internal/ui/info_panel.go
package ui

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"

	"bastion-defense/internal/app"
	"bastion-defense/internal/component"
	"bastion-defense/internal/config"
	"bastion-defense/internal/defs"
	"bastion-defense/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 110
	panelMargin    = 8
	animationSpeed = 10.0
	lineHeight     = 18
	buttonWidth    = 130
	buttonHeight   = 28
)

// InfoPanel shows the selected construction spot: build options when it
// is empty, stats with upgrade and sell actions when a tower stands there.
type InfoPanel struct {
	IsVisible bool
	SpotID    int
	fontFace  font.Face
	currentY  float64
	targetY   float64
	game      interfaces.GameContext
	log       *slog.Logger
	message   string

	buildButtons  []*Button
	UpgradeButton *Button
	SellButton    *Button
}

// NewInfoPanel creates a hidden panel acting on game.
func NewInfoPanel(face font.Face, game interfaces.GameContext, logger *slog.Logger) *InfoPanel {
	p := &InfoPanel{
		SpotID:        -1,
		fontFace:      face,
		currentY:      config.ScreenHeight,
		targetY:       config.ScreenHeight,
		game:          game,
		log:           logger,
		UpgradeButton: NewButton(image.Rectangle{}, "Upgrade"),
		SellButton:    NewButton(image.Rectangle{}, "Sell"),
	}
	for _, t := range defs.TowerTypes() {
		p.buildButtons = append(p.buildButtons, NewButton(image.Rectangle{}, t.String()))
	}
	return p
}

func (p *InfoPanel) SetSpot(spotID int) {
	p.SpotID = spotID
	p.IsVisible = true
	p.message = ""
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Update анимирует панель и пересчитывает кнопки.
func (p *InfoPanel) Update() {
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}
		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.SpotID = -1
		}
	}
	p.layout()
}

func (p *InfoPanel) layout() {
	top := int(p.currentY) + panelHeight - panelMargin - buttonHeight
	right := config.ScreenWidth - panelMargin
	for i, b := range p.buildButtons {
		x := right - (len(p.buildButtons)-i)*(buttonWidth+panelMargin)
		b.Rect = image.Rect(x, top, x+buttonWidth, top+buttonHeight)
	}
	x := right - 2*(buttonWidth+panelMargin)
	p.UpgradeButton.Rect = image.Rect(x, top, x+buttonWidth, top+buttonHeight)
	x += buttonWidth + panelMargin
	p.SellButton.Rect = image.Rect(x, top, x+buttonWidth, top+buttonHeight)
}

// Contains reports whether (x, y) lies on the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && y >= int(p.currentY)
}

// HandleClick runs the action under the cursor. It returns false when the
// click missed the panel.
func (p *InfoPanel) HandleClick(x, y int) bool {
	if !p.Contains(x, y) {
		return false
	}
	st := p.game.State()
	tower, built := st.TowerAtSpot(p.SpotID)

	switch {
	case built && p.UpgradeButton.Contains(x, y):
		p.report(p.game.UpgradeTower(tower.ID), "upgraded")
	case built && p.SellButton.Contains(x, y):
		refund, err := p.game.SellTower(tower.ID)
		p.report(err, fmt.Sprintf("sold for %d", refund))
	case !built:
		for i, b := range p.buildButtons {
			if b.Contains(x, y) {
				_, err := p.game.BuildTower(p.SpotID, defs.TowerTypes()[i])
				p.report(err, "built")
			}
		}
	}
	return true
}

func (p *InfoPanel) report(err error, ok string) {
	if err == nil {
		p.message = ok
		return
	}
	switch {
	case errors.Is(err, app.ErrInsufficientScrap):
		p.message = "not enough scrap"
	case errors.Is(err, app.ErrMaxLevel):
		p.message = "max level"
	case errors.Is(err, app.ErrSessionOver):
		p.message = "game over"
	default:
		p.message = err.Error()
	}
	p.log.Debug("tower action rejected", "spot", p.SpotID, "err", err)
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}
	y := float32(p.currentY)
	vector.DrawFilledRect(screen, 0, y, config.ScreenWidth, panelHeight, config.PanelColor, false)
	vector.StrokeRect(screen, 0, y, config.ScreenWidth, panelHeight, 2, config.UIBorderColor, false)

	st := p.game.State()
	catalog := p.game.Engine().Catalog()
	cursorX, cursorY := ebiten.CursorPosition()
	lineY := int(y) + panelMargin + lineHeight
	col := panelMargin * 2

	tower, built := st.TowerAtSpot(p.SpotID)
	if !built {
		text.Draw(screen, fmt.Sprintf("Spot #%d: empty", p.SpotID), p.fontFace, col, lineY, config.TextLightColor)
		for i, b := range p.buildButtons {
			t := defs.TowerTypes()[i]
			stats, _ := catalog.TowerLevel(t, 1)
			b.Text = fmt.Sprintf("%s (%d)", t, stats.Cost)
			b.Disabled = st.Scrap < stats.Cost || st.Phase.Terminal()
			b.Draw(screen, p.fontFace, cursorX, cursorY)
		}
	} else {
		p.drawTower(screen, tower, col, lineY)
		next, ok := catalog.TowerLevel(tower.Type, tower.Level+1)
		if ok {
			p.UpgradeButton.Text = fmt.Sprintf("Upgrade (%d)", next.Cost)
			p.UpgradeButton.Disabled = st.Scrap < next.Cost || st.Phase.Terminal()
		} else {
			p.UpgradeButton.Text = "Max level"
			p.UpgradeButton.Disabled = true
		}
		refund := int(math.Floor(float64(tower.Invested) * p.game.Engine().Rules().SellRefund))
		p.SellButton.Text = fmt.Sprintf("Sell (+%d)", refund)
		p.SellButton.Disabled = st.Phase.Terminal()
		p.UpgradeButton.Draw(screen, p.fontFace, cursorX, cursorY)
		p.SellButton.Draw(screen, p.fontFace, cursorX, cursorY)
	}

	if p.message != "" {
		text.Draw(screen, p.message, p.fontFace, col, int(y)+panelHeight-panelMargin, config.DamageTextColor)
	}
}

func (p *InfoPanel) drawTower(screen *ebiten.Image, t *component.Tower, x, y int) {
	stats, _ := p.game.Engine().Catalog().TowerLevel(t.Type, t.Level)
	text.Draw(screen, fmt.Sprintf("Spot #%d: %s, level %d", t.SpotID, t.Type, t.Level), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Damage: %d", stats.Damage), p.fontFace, x, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Range: %.2f", stats.Range), p.fontFace, x+160, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Fire Rate: %.2f/s", stats.FireRate), p.fontFace, x, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Invested: %d", t.Invested), p.fontFace, x+160, y, config.TextLightColor)
}
