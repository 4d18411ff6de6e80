package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bastion-defense/internal/component"
	"bastion-defense/internal/config"
	"bastion-defense/internal/defs"
	"bastion-defense/internal/event"
)

func TestExpand_OffsetsRunAcrossGroups(t *testing.T) {
	w := wave(0.5,
		config.Group{Enemy: defs.EnemyShambler, Count: 2},
		config.Group{Enemy: defs.EnemyRunner, Count: 2},
	)

	queue := Expand(w)

	require.Len(t, queue, 4)
	wantTypes := []defs.EnemyType{defs.EnemyShambler, defs.EnemyShambler, defs.EnemyRunner, defs.EnemyRunner}
	for i, entry := range queue {
		assert.Equal(t, wantTypes[i], entry.Enemy, "slot %d", i)
		assert.InDelta(t, float64(i)*0.5, entry.Offset, 1e-9, "slot %d", i)
	}
}

func TestWaveSystem_ReleasesOnSchedule(t *testing.T) {
	l := straightLevel(t, 100, wave(2.0, config.Group{Enemy: defs.EnemyShambler, Count: 3}))
	e := newEngine(t, l, nil)
	st := e.NewState()

	st, out := e.Tick(st, Input{Delta: 1.0, StartWave: true})
	require.Equal(t, component.PhasePlaying, st.Phase)
	require.Len(t, st.Enemies, 1, "entry at offset 0 is released on activation")
	assert.Contains(t, eventTypes(out), event.WaveStarted)

	for i := 0; i < 3; i++ {
		st, _ = e.Tick(st, Input{Delta: 1.0})
	}
	assert.Len(t, st.Enemies, 2, "after 4.0s only the 0.0s and 2.0s entries are out")
	assert.Len(t, st.Spawner.Queue, 1)

	st, _ = e.Tick(st, Input{Delta: 1.0})
	assert.Len(t, st.Enemies, 3)
	assert.Empty(t, st.Spawner.Queue)
	requireUniqueIDs(t, st)
}

func TestWaveSystem_ReleasesOnTimeAtFrameRate(t *testing.T) {
	l := straightLevel(t, 100, wave(2.0, config.Group{Enemy: defs.EnemyShambler, Count: 3}))
	e := newEngine(t, l, nil)
	st := e.NewState()

	// тик k начинается с elapsed = (k-1)/60
	st, _ = e.Tick(st, Input{Delta: 1.0 / 60, StartWave: true})
	for tick := 2; tick <= 120; tick++ {
		st, _ = e.Tick(st, Input{Delta: 1.0 / 60})
	}
	require.Len(t, st.Enemies, 1)
	st, _ = e.Tick(st, Input{Delta: 1.0 / 60})
	require.Len(t, st.Enemies, 2, "entry at 2.0s leaves on tick 121")

	for tick := 122; tick <= 240; tick++ {
		st, _ = e.Tick(st, Input{Delta: 1.0 / 60})
	}
	require.Len(t, st.Enemies, 2)
	st, _ = e.Tick(st, Input{Delta: 1.0 / 60})
	assert.Len(t, st.Enemies, 3, "entry at 4.0s leaves on tick 241")
	assert.Empty(t, st.Spawner.Queue)
}

func TestWaveSystem_CoarseTickReleasesSeveral(t *testing.T) {
	l := straightLevel(t, 100, wave(0.1, config.Group{Enemy: defs.EnemyRunner, Count: 5}))
	e := newEngine(t, l, nil)
	st := e.NewState()

	st, _ = e.Tick(st, Input{Delta: 0.01, StartWave: true})
	require.Len(t, st.Enemies, 1)

	st, _ = e.Tick(st, Input{Delta: 0.35})
	assert.Len(t, st.Enemies, 1, "elapsed was 0.01 at the start of this tick")

	st, _ = e.Tick(st, Input{Delta: 0.01})
	assert.Len(t, st.Enemies, 4, "entries at 0.1, 0.2, 0.3 leave together")
	for i := 1; i < len(st.Enemies); i++ {
		assert.Less(t, st.Enemies[i-1].ID, st.Enemies[i].ID, "FIFO keeps ids ascending")
	}
}

func TestWaveSystem_DoesNotExpandOutsidePlaying(t *testing.T) {
	l := straightLevel(t, 100, wave(1, config.Group{Enemy: defs.EnemyShambler, Count: 1}))
	e := newEngine(t, l, nil)
	st := e.NewState()
	f := NewFrame(8)

	e.Waves.Update(&st, 1.0, f)

	assert.Equal(t, 0, st.Spawner.ActiveWave)
	assert.Empty(t, st.Enemies)
	assert.Empty(t, f.Events())
}

func eventTypes(out Output) []event.EventType {
	types := make([]event.EventType, 0, len(out.Events))
	for _, e := range out.Events {
		types = append(types, e.Type)
	}
	return types
}
