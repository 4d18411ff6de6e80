package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bastion-defense/internal/component"
	"bastion-defense/internal/config"
	"bastion-defense/internal/defs"
	"bastion-defense/internal/event"
	"bastion-defense/pkg/geom"
)

func tenWaveLevel(t *testing.T) *config.Level {
	waves := make([]config.Wave, 10)
	for i := range waves {
		waves[i] = wave(1, config.Group{Enemy: defs.EnemyShambler, Count: 1})
	}
	return straightLevel(t, 10, waves...)
}

func TestProgressionSystem_FinalWaveIsVictory(t *testing.T) {
	e := newEngine(t, tenWaveLevel(t), nil)
	st := e.NewState()
	st.Phase = component.PhasePlaying
	st.CurrentWave = 10
	st.Spawner.ActiveWave = 10
	scrap := st.Scrap
	f := NewFrame(8)

	e.Progression.Update(&st, 1.0/60, f)

	require.Equal(t, component.PhaseVictory, st.Phase)
	assert.Greater(t, st.CurrentWave, e.Level().TotalWaves())
	assert.Equal(t, scrap+e.Rules().WaveCompletionBonus, st.Scrap)
	assert.Equal(t, []event.EventType{event.WaveCompleted, event.PhaseChanged}, eventTypes(f.Output()))
}

func TestProgressionSystem_IntermediateWaveGoesBetweenWaves(t *testing.T) {
	e := newEngine(t, tenWaveLevel(t), nil)
	st := e.NewState()
	st.Phase = component.PhasePlaying
	st.CurrentWave = 3
	st.Spawner.ActiveWave = 3

	e.Progression.Update(&st, 1.0/60, NewFrame(8))

	assert.Equal(t, component.PhaseBetweenWaves, st.Phase)
	assert.Equal(t, 4, st.CurrentWave)
	assert.Equal(t, e.Rules().WaveCountdown, st.Countdown)
	assert.Equal(t, 1, st.Stats.WavesCompleted)
}

func TestProgressionSystem_UnexpandedWaveIsNotOver(t *testing.T) {
	e := newEngine(t, tenWaveLevel(t), nil)
	st := e.NewState()
	st.Phase = component.PhasePlaying
	st.CurrentWave = 4
	st.Spawner.ActiveWave = 3

	e.Progression.Update(&st, 1.0/60, NewFrame(8))

	assert.Equal(t, component.PhasePlaying, st.Phase)
	assert.Equal(t, 4, st.CurrentWave)
}

func TestProgressionSystem_CountdownAutoStartsWithoutBonus(t *testing.T) {
	e := newEngine(t, tenWaveLevel(t), nil)
	st := e.NewState()
	st.Phase = component.PhaseBetweenWaves
	st.CurrentWave = 2
	st.Countdown = 1.0
	scrap := st.Scrap

	e.Progression.Update(&st, 0.6, NewFrame(8))
	require.Equal(t, component.PhaseBetweenWaves, st.Phase)

	e.Progression.Update(&st, 0.6, NewFrame(8))
	assert.Equal(t, component.PhasePlaying, st.Phase)
	assert.Equal(t, scrap, st.Scrap)
	assert.Zero(t, st.Countdown)
}

func TestProgressionSystem_ManualStartPaysBonus(t *testing.T) {
	e := newEngine(t, tenWaveLevel(t), nil)
	st := e.NewState()
	st.Phase = component.PhaseBetweenWaves
	st.CurrentWave = 2
	st.Countdown = 5
	scrap := st.Scrap

	e.Progression.Start(&st, NewFrame(8))

	assert.Equal(t, component.PhasePlaying, st.Phase)
	assert.Equal(t, scrap+e.Rules().ManualStartBonus, st.Scrap)
	assert.Equal(t, e.Rules().ManualStartBonus, st.Stats.ManualStartScrap)

	e.Progression.Start(&st, NewFrame(8))
	assert.Equal(t, scrap+e.Rules().ManualStartBonus, st.Scrap, "ignored while playing")
}

func TestProgressionSystem_DefeatIsSticky(t *testing.T) {
	e := newEngine(t, tenWaveLevel(t), nil)
	st := e.NewState()
	st.Phase = component.PhaseBetweenWaves
	st.Hull = -3

	e.Progression.Update(&st, 0.1, NewFrame(8))
	assert.Equal(t, component.PhaseDefeat, st.Phase)
	assert.Equal(t, 0, st.Hull)

	e.Progression.Start(&st, NewFrame(8))
	assert.Equal(t, component.PhaseDefeat, st.Phase)
}

func TestEngine_BreachOnLastHullPointIsDefeat(t *testing.T) {
	e := newEngine(t, straightLevel(t, 10, wave(1, config.Group{Enemy: defs.EnemyShambler, Count: 1})), nil)
	st := playingState(e)
	st.Hull = 1
	addEnemy(&st, defs.EnemyBrute, 200, geom.Vec2{X: 9.995}, 0, 0.9995)

	next, out := e.Tick(st, Input{Delta: 1.0 / 60})

	assert.Equal(t, 0, next.Hull, "clamped, not -4")
	assert.Equal(t, component.PhaseDefeat, next.Phase)
	assert.Contains(t, eventTypes(out), event.EnemyBreached)

	after, _ := e.Tick(next, Input{Delta: 1.0 / 60, StartWave: true})
	assert.Equal(t, component.PhaseDefeat, after.Phase)
}
