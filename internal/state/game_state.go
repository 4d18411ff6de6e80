// internal/state/game_state.go
package state

import (
	"fmt"

	"bastion-defense/internal/component"
	"bastion-defense/internal/config"
	"bastion-defense/internal/fx"
	"bastion-defense/internal/ui"
	"bastion-defense/internal/utils"
	"bastion-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	deps          Deps
	renderer      *render.FieldRenderer
	effects       *fx.Layer
	indicator     *ui.StateIndicator
	pauseButton   *ui.PauseButton
	speedButton   *ui.SpeedButton
	waveIndicator *ui.WaveIndicator
	hullIndicator *ui.HullIndicator
	infoPanel     *ui.InfoPanel
}

func NewGameState(sm *StateMachine, deps Deps) *GameState {
	session := deps.Session
	level := session.Engine().Level()

	fieldColors := &render.FieldColors{
		BackgroundColor: config.BackgroundColor,
		PathColor:       config.PathColor,
		SpotColor:       config.SpotColor,
		BastionColor:    config.BastionColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     config.UIBorderWidth,
	}
	entityColors := &render.EntityColors{
		Enemies:        config.EnemyColors,
		Towers:         config.TowerColors,
		Projectile:     config.ProjectileColor,
		HealthBarBack:  config.HealthBarBack,
		HealthBarFront: config.HealthBarFront,
	}
	renderer := render.NewFieldRenderer(level, session.Engine().Catalog(), config.TileSize,
		config.FieldOffsetX, config.FieldOffsetY, config.ScreenWidth, config.ScreenHeight,
		deps.Face, fieldColors, entityColors)
	renderer.RenderMapImage()

	return &GameState{
		sm:       sm,
		deps:     deps,
		renderer: renderer,
		effects:  fx.NewLayer(utils.NewPRNGService(deps.Seed)),
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		pauseButton: ui.NewPauseButton(
			float32(config.ScreenWidth-config.IndicatorOffsetX-90), config.SpeedButtonY,
			config.SpeedButtonSize, config.SpeedButtonColors[0], config.SpeedButtonColors[1],
		),
		speedButton: ui.NewSpeedButton(
			float32(config.ScreenWidth-config.IndicatorOffsetX-45), config.SpeedButtonY,
			config.SpeedButtonSize, config.SpeedButtonColors,
		),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, 38),
		hullIndicator: ui.NewHullIndicator(16, 12),
		infoPanel:     ui.NewInfoPanel(deps.Face, session, deps.Log),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	session := g.deps.Session

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.toggleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.startWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.infoPanel.Hide()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(ebiten.CursorPosition())
	}

	out := session.Update(deltaTime)
	g.effects.Push(out.Feedback)
	g.effects.Update(deltaTime)
	g.infoPanel.Update()

	st := session.State()
	g.pauseButton.SetPaused(st.Paused)
	g.speedButton.SetSpeed(st.Speed)
	if st.Paused {
		g.sm.SetState(NewPauseState(g.sm, g))
	}
}

func (g *GameState) togglePause() {
	g.pauseButton.HandleClick()
	g.deps.Session.TogglePause()
}

func (g *GameState) toggleSpeed() {
	g.speedButton.HandleClick()
	g.deps.Session.ToggleSpeed()
}

func (g *GameState) startWave() {
	g.indicator.HandleClick()
	g.deps.Session.StartWave()
}

// reset сбрасывает сессию сразу, не дожидаясь следующего кадра, и
// возвращает в меню.
func (g *GameState) reset() {
	g.deps.Session.Reset()
	g.deps.Session.Update(0)
	g.effects.Clear()
	g.infoPanel.Hide()
	g.sm.SetState(NewMenuState(g.sm, g.deps))
}

// handleClick: сначала UI, потом поле
func (g *GameState) handleClick(x, y int) {
	switch {
	case g.infoPanel.HandleClick(x, y):
	case g.pauseButton.IsClicked(x, y):
		if g.pauseButton.CanToggle() {
			g.togglePause()
		}
	case g.speedButton.IsClicked(x, y):
		if g.speedButton.CanToggle() {
			g.toggleSpeed()
		}
	case g.indicator.IsClicked(x, y):
		g.startWave()
	default:
		if spot, ok := g.renderer.SpotAt(x, y); ok {
			g.infoPanel.SetSpot(spot.ID)
		} else {
			g.infoPanel.Hide()
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	st := g.deps.Session.State()
	level := g.deps.Session.Engine().Level()

	g.renderer.Draw(screen, st, g.effects, g.infoPanel.SpotID)
	for _, spot := range level.Spots {
		if _, built := st.TowerAtSpot(spot.ID); !built {
			g.renderer.DrawLabel(screen, spot.Pos, render.SpotLabel(spot.ID), config.TextLightColor)
		}
	}

	// верхняя панель
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.FieldOffsetY, config.PanelColor, false)
	g.hullIndicator.Draw(screen, g.deps.Face, st.Hull, level.StartHull)
	text.Draw(screen, fmt.Sprintf("Scrap: %d", st.Scrap), g.deps.Face, 230, 26, config.TextLightColor)
	text.Draw(screen, g.statusLine(st.Phase, st.Countdown), g.deps.Face, 230, 46, config.TextLightColor)
	g.waveIndicator.Draw(screen, g.deps.Face, st.CurrentWave, level.TotalWaves())
	g.indicator.Draw(screen, st.Phase)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	g.infoPanel.Draw(screen)

	if st.Phase.Terminal() {
		g.drawGameOver(screen)
	}
}

func (g *GameState) statusLine(phase component.Phase, countdown float64) string {
	switch phase {
	case component.PhaseBetweenWaves:
		return fmt.Sprintf("Next wave in %.0fs (Space: +%d)", countdown, g.deps.Session.Engine().Rules().ManualStartBonus)
	case component.PhasePlaying:
		return "Wave in progress"
	default:
		return phase.String()
	}
}

func (g *GameState) drawGameOver(screen *ebiten.Image) {
	st := g.deps.Session.State()
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, overlayColor, false)

	title := "VICTORY"
	if st.Phase == component.PhaseDefeat {
		title = "DEFEAT"
	}
	lines := []string{
		title,
		fmt.Sprintf("Waves completed: %d", st.Stats.WavesCompleted),
		fmt.Sprintf("Zombies killed: %d", st.Stats.ZombiesKilled),
		fmt.Sprintf("Damage dealt: %d", st.Stats.TotalDamage),
		fmt.Sprintf("Breaches: %d", st.Stats.Breaches),
		"",
		"R to restart",
	}
	y := config.ScreenHeight/2 - 60
	for _, line := range lines {
		bounds := text.BoundString(g.deps.Face, line)
		text.Draw(screen, line, g.deps.Face, (config.ScreenWidth-bounds.Dx())/2, y, config.TextLightColor)
		y += 20
	}
}

func (g *GameState) Exit() {}
