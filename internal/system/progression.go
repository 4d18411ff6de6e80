// internal/system/progression.go
package system

import (
	"bastion-defense/internal/component"
	"bastion-defense/internal/config"
	"bastion-defense/internal/entity"
	"bastion-defense/internal/event"
)

// ProgressionSystem drives the session phase: wave completion, the
// between-waves countdown, victory and defeat.
type ProgressionSystem struct {
	rules      config.Rules
	totalWaves int
}

func NewProgressionSystem(rules config.Rules, totalWaves int) *ProgressionSystem {
	return &ProgressionSystem{rules: rules, totalWaves: totalWaves}
}

// Update runs after every other component of the tick.
func (s *ProgressionSystem) Update(st *entity.State, deltaTime float64, f *Frame) {
	if st.Hull <= 0 {
		st.Hull = 0
		s.switchTo(st, component.PhaseDefeat, f)
		return
	}

	switch st.Phase {
	case component.PhasePlaying:
		if st.WaveOver() {
			s.completeWave(st, f)
		}
	case component.PhaseBetweenWaves:
		st.Countdown -= deltaTime
		if st.Countdown <= 0 {
			st.Countdown = 0
			s.switchTo(st, component.PhasePlaying, f)
		}
	}
}

// Start handles the explicit start signal. From the menu it begins the
// session; between waves it skips the countdown and pays the manual-start
// bonus. In any other phase it is ignored.
func (s *ProgressionSystem) Start(st *entity.State, f *Frame) {
	switch st.Phase {
	case component.PhaseMenu:
		s.switchTo(st, component.PhasePlaying, f)
	case component.PhaseBetweenWaves:
		st.Scrap += s.rules.ManualStartBonus
		st.Stats.ManualStartScrap += s.rules.ManualStartBonus
		st.Countdown = 0
		s.switchTo(st, component.PhasePlaying, f)
	}
}

func (s *ProgressionSystem) completeWave(st *entity.State, f *Frame) {
	bonus := s.rules.WaveCompletionBonus
	st.Scrap += bonus
	st.Stats.WaveBonusScrap += bonus
	st.Stats.WavesCompleted++
	f.emit(event.WaveCompleted, event.WaveData{Number: st.CurrentWave, Bonus: bonus})

	finished := st.CurrentWave
	st.CurrentWave++
	if finished >= s.totalWaves {
		s.switchTo(st, component.PhaseVictory, f)
		return
	}
	st.Countdown = s.rules.WaveCountdown
	s.switchTo(st, component.PhaseBetweenWaves, f)
}

func (s *ProgressionSystem) switchTo(st *entity.State, phase component.Phase, f *Frame) {
	if st.Phase == phase {
		return
	}
	f.emit(event.PhaseChanged, event.PhaseData{From: st.Phase, To: phase})
	st.Phase = phase
}
