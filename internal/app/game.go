// internal/app/game.go
package app

import (
	"log/slog"

	"bastion-defense/internal/component"
	"bastion-defense/internal/entity"
	"bastion-defense/internal/event"
	"bastion-defense/internal/interfaces"
	"bastion-defense/internal/system"
)

// Session owns the mutable state cell of one game. Player actions are
// buffered and handed to the engine on the next Update, except tower
// management, which edits the state between ticks. A Session is used from
// a single goroutine.
type Session struct {
	engine          *system.Engine
	state           entity.State
	pending         system.Input
	EventDispatcher *event.Dispatcher
	log             *slog.Logger
	lastOutput      system.Output
}

// NewSession creates a session in the menu phase. Lifecycle events are
// logged through logger; a nil logger uses slog.Default.
func NewSession(engine *system.Engine, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		engine:          engine,
		state:           engine.NewState(),
		EventDispatcher: event.NewDispatcher(),
		log:             logger,
	}
	s.EventDispatcher.SubscribeAll(&eventLogger{log: logger})
	return s
}

// Update progresses the game by one frame of deltaTime wall seconds.
func (s *Session) Update(deltaTime float64) system.Output {
	if maxDt := s.engine.Rules().MaxDeltaTime; maxDt > 0 && deltaTime > maxDt {
		deltaTime = maxDt
	}
	in := s.pending
	in.Delta = deltaTime
	s.pending = system.Input{}

	next, out := s.engine.Tick(s.state, in)
	s.state = next
	s.lastOutput = out
	if out.DroppedFeedback > 0 {
		s.log.Debug("feedback dropped", "count", out.DroppedFeedback)
	}
	s.EventDispatcher.DispatchAll(out.Events)
	return out
}

// State returns a copy of the current state. Later ticks and tower
// actions do not change a returned snapshot.
func (s *Session) State() entity.State { return s.state.Clone() }

// LastOutput returns what the most recent Update emitted.
func (s *Session) LastOutput() system.Output { return s.lastOutput }

func (s *Session) Engine() *system.Engine { return s.engine }

func (s *Session) TogglePause() { s.pending.TogglePause = !s.pending.TogglePause }
func (s *Session) ToggleSpeed() { s.pending.ToggleSpeed = !s.pending.ToggleSpeed }

// StartWave requests the next wave (or the first one from the menu).
func (s *Session) StartWave() { s.pending.StartWave = true }

// Reset discards the whole session on the next Update.
func (s *Session) Reset() { s.pending.Reset = true }

func (s *Session) IsPaused() bool         { return s.state.Paused }
func (s *Session) Phase() component.Phase { return s.state.Phase }

var _ interfaces.GameContext = (*Session)(nil)
