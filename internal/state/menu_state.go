// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"

	"bastion-defense/internal/config"
	"bastion-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState: стартовый экран уровня
type MenuState struct {
	sm          *StateMachine
	deps        Deps
	startButton *ui.Button
}

func NewMenuState(sm *StateMachine, deps Deps) *MenuState {
	btnWidth, btnHeight := 220, 44
	x := (config.ScreenWidth - btnWidth) / 2
	y := config.ScreenHeight / 2
	return &MenuState{
		sm:          sm,
		deps:        deps,
		startButton: ui.NewButton(image.Rect(x, y, x+btnWidth, y+btnHeight), "Start (Space)"),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		start = start || m.startButton.Contains(ebiten.CursorPosition())
	}
	if start {
		m.deps.Session.StartWave()
		m.sm.SetState(NewGameState(m.sm, m.deps))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	level := m.deps.Session.Engine().Level()
	lines := []string{
		"BASTION DEFENSE",
		"",
		fmt.Sprintf("Level: %s", level.Name),
		fmt.Sprintf("%d waves, %d scrap, hull %d", level.TotalWaves(), level.StartScrap, level.StartHull),
		"",
		"P pause   F speed   Space next wave   R restart",
	}
	y := config.ScreenHeight/2 - 140
	for _, line := range lines {
		bounds := text.BoundString(m.deps.Face, line)
		text.Draw(screen, line, m.deps.Face, (config.ScreenWidth-bounds.Dx())/2, y, config.TextLightColor)
		y += 20
	}

	cx, cy := ebiten.CursorPosition()
	m.startButton.Draw(screen, m.deps.Face, cx, cy)
}

func (m *MenuState) Exit() {}
