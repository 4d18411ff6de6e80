// internal/state/state.go
package state

import (
	"log/slog"

	"bastion-defense/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Deps: общие зависимости экранов.
type Deps struct {
	Session *app.Session
	Face    font.Face
	Log     *slog.Logger
	Seed    int64 // сид визуальных эффектов, 0 означает от времени
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current возвращает активное состояние
func (sm *StateMachine) Current() State { return sm.current }

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
