// internal/system/engine.go
package system

import (
	"fmt"

	"bastion-defense/internal/component"
	"bastion-defense/internal/config"
	"bastion-defense/internal/defs"
	"bastion-defense/internal/entity"
	"bastion-defense/internal/event"
)

// Input is what the outside world feeds into one tick.
type Input struct {
	Delta       float64 // реальное время кадра, секунд
	TogglePause bool
	ToggleSpeed bool
	StartWave   bool
	Reset       bool
}

// Output is what one tick emits besides the next state. Feedback is for
// the renderer only and is never read back by the simulation.
type Output struct {
	Feedback        []event.Feedback
	Events          []event.Event
	DroppedFeedback int
}

// Engine applies the five simulation components to a state, one tick at a
// time. It holds only read-only configuration and is safe to share.
type Engine struct {
	level   *config.Level
	catalog *defs.Catalog
	rules   config.Rules

	Movement    *MovementSystem
	Waves       *WaveSystem
	Combat      *CombatSystem
	Projectiles *ProjectileSystem
	Progression *ProgressionSystem
}

// NewEngine validates level and wires the components.
func NewEngine(level *config.Level, catalog *defs.Catalog) (*Engine, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}
	route, err := level.Route()
	if err != nil {
		return nil, fmt.Errorf("building route: %w", err)
	}
	return &Engine{
		level:       level,
		catalog:     catalog,
		rules:       level.Rules,
		Movement:    NewMovementSystem(catalog, route),
		Waves:       NewWaveSystem(level, catalog, route),
		Combat:      NewCombatSystem(catalog),
		Projectiles: NewProjectileSystem(catalog, level.Rules),
		Progression: NewProgressionSystem(level.Rules, level.TotalWaves()),
	}, nil
}

// Level returns the level the engine was built for.
func (e *Engine) Level() *config.Level { return e.level }

// Catalog returns the enemy and tower stat tables.
func (e *Engine) Catalog() *defs.Catalog { return e.catalog }

// Rules returns the simulation constants of the level.
func (e *Engine) Rules() config.Rules { return e.rules }

// NewState returns a fresh session state in the menu phase.
func (e *Engine) NewState() entity.State {
	return entity.NewState(e.level)
}

// Tick advances prev by one frame and returns the next state. prev is not
// modified. The tick never fails; logical edge cases are absorbed.
func (e *Engine) Tick(prev entity.State, in Input) (entity.State, Output) {
	f := NewFrame(e.rules.FeedbackCapacity)

	if in.Reset {
		next := e.NewState()
		if prev.Phase != next.Phase {
			f.emit(event.PhaseChanged, event.PhaseData{From: prev.Phase, To: next.Phase})
		}
		return next, f.Output()
	}

	st := prev.Clone()
	if in.TogglePause {
		st.Paused = !st.Paused
	}
	if in.ToggleSpeed {
		if st.Speed == 2 {
			st.Speed = 1
		} else {
			st.Speed = 2
		}
	}
	if st.Paused {
		return st, f.Output()
	}

	if in.StartWave {
		e.Progression.Start(&st, f)
	}
	if st.Phase != component.PhasePlaying && st.Phase != component.PhaseBetweenWaves {
		return st, f.Output()
	}

	dt := in.Delta * st.Speed
	if dt < 0 {
		dt = 0
	}
	st.Clock += dt

	e.Movement.Update(&st, dt, f)
	e.Waves.Update(&st, dt, f)
	e.Combat.Update(&st, f)
	e.Projectiles.Update(&st, dt, f)
	e.Progression.Update(&st, dt, f)
	return st, f.Output()
}
