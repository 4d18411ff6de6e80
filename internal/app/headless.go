// internal/app/headless.go
package app

import (
	"context"
	"fmt"
	"log/slog"

	"bastion-defense/internal/component"
	"bastion-defense/internal/defs"
	"bastion-defense/internal/system"
)

// HeadlessOptions configure an unattended run.
type HeadlessOptions struct {
	Tower   defs.TowerType // единственный тип башен, который строит бот
	Step    float64        // секунд на тик
	MaxTime float64        // предел игрового времени
	Rush    bool           // запускать волны сразу, не дожидаясь отсчёта
}

// Report summarises one headless run.
type Report struct {
	Tower          string  `yaml:"tower"`
	Outcome        string  `yaml:"outcome"`
	WavesCompleted int     `yaml:"waves_completed"`
	Killed         int     `yaml:"killed"`
	Breaches       int     `yaml:"breaches"`
	TotalDamage    int     `yaml:"total_damage"`
	Scrap          int     `yaml:"scrap"`
	Hull           int     `yaml:"hull"`
	Towers         int     `yaml:"towers"`
	Time           float64 `yaml:"time"`
}

const ctxCheckEvery = 600

// RunHeadless plays a whole session with the AutoBuild strategy until it
// ends or opts.MaxTime of game time passes. A run that hits the time limit
// reports the outcome "timeout".
func RunHeadless(ctx context.Context, engine *system.Engine, opts HeadlessOptions, logger *slog.Logger) (Report, error) {
	if opts.Step <= 0 {
		return Report{}, fmt.Errorf("headless step must be positive, got %v", opts.Step)
	}
	s := NewSession(engine, logger)
	s.StartWave()

	for tick := 0; ; tick++ {
		if tick%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Report{}, err
			}
		}
		st := s.State()
		if st.Phase.Terminal() || st.Clock >= opts.MaxTime {
			break
		}
		s.AutoBuild(opts.Tower)
		if opts.Rush && st.Phase == component.PhaseBetweenWaves {
			s.StartWave()
		}
		s.Update(opts.Step)
	}

	st := s.State()
	outcome := st.Phase.String()
	if !st.Phase.Terminal() {
		outcome = "timeout"
	}
	return Report{
		Tower:          opts.Tower.String(),
		Outcome:        outcome,
		WavesCompleted: st.Stats.WavesCompleted,
		Killed:         st.Stats.ZombiesKilled,
		Breaches:       st.Stats.Breaches,
		TotalDamage:    st.Stats.TotalDamage,
		Scrap:          st.Scrap,
		Hull:           st.Hull,
		Towers:         len(st.Towers),
		Time:           st.Clock,
	}, nil
}
