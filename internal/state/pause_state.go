// internal/state/pause_state.go
package state

import (
	"image/color"

	"bastion-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var overlayColor = color.RGBA{0, 0, 0, 128}

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженную игру поверх затемнения. Сессия сама
// стоит на паузе; здесь только ждём сигнала снять её.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prev,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	g := s.previousState
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || (g.pauseButton.IsClicked(x, y) && g.pauseButton.CanToggle())
	}
	// скорость и сброс работают и на паузе
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.toggleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
		return
	}

	if unpause {
		g.togglePause()
	}
	g.deps.Session.Update(deltaTime)
	st := g.deps.Session.State()
	g.pauseButton.SetPaused(st.Paused)
	g.speedButton.SetSpeed(st.Speed)
	if !st.Paused {
		s.stateMachine.SetState(g)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, config.FieldOffsetY, config.ScreenWidth, config.ScreenHeight-config.FieldOffsetY, overlayColor, false)
	label := "PAUSED"
	face := s.previousState.deps.Face
	bounds := text.BoundString(face, label)
	text.Draw(screen, label, face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
