package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bastion-defense/internal/component"
	"bastion-defense/internal/config"
	"bastion-defense/internal/defs"
	"bastion-defense/internal/entity"
	"bastion-defense/internal/types"
	"bastion-defense/pkg/geom"
)

func straightLevel(t *testing.T, length float64, waves ...config.Wave) *config.Level {
	t.Helper()
	l := &config.Level{
		Name:       "test",
		Path:       []geom.Vec2{{X: 0, Y: 0}, {X: length, Y: 0}},
		StartScrap: 100,
		StartHull:  20,
		Waves:      waves,
		Rules:      config.DefaultRules(),
	}
	for i := range l.Waves {
		l.Waves[i].Number = i + 1
	}
	require.NoError(t, l.Validate())
	return l
}

func wave(delay float64, groups ...config.Group) config.Wave {
	return config.Wave{SpawnDelay: delay, Groups: groups}
}

func newEngine(t *testing.T, l *config.Level, cat *defs.Catalog) *Engine {
	t.Helper()
	if cat == nil {
		cat = defs.DefaultCatalog()
	}
	e, err := NewEngine(l, cat)
	require.NoError(t, err)
	return e
}

// playingState returns a state in the middle of wave 1 whose spawn queue
// is parked far in the future, so only hand-placed entities act.
func playingState(e *Engine) entity.State {
	st := e.NewState()
	st.Phase = component.PhasePlaying
	st.Spawner = component.Spawner{
		ActiveWave: 1,
		Queue:      []component.SpawnEntry{{Enemy: defs.EnemyShambler, Offset: 1e9}},
	}
	return st
}

func addEnemy(st *entity.State, t defs.EnemyType, health int, pos geom.Vec2, waypoint int, progress float64) types.EntityID {
	id := st.NewEntity()
	st.Enemies = append(st.Enemies, component.Enemy{
		ID: id, Type: t, Health: health, MaxHealth: health,
		Pos: pos, Waypoint: waypoint, Progress: progress,
	})
	return id
}

func addTower(st *entity.State, t defs.TowerType, level int, pos geom.Vec2) types.EntityID {
	id := st.NewEntity()
	st.Towers = append(st.Towers, component.Tower{
		ID: id, Type: t, SpotID: int(id), Pos: pos, Level: level, LastFire: component.NeverFired,
	})
	return id
}

func requireUniqueIDs(t *testing.T, st entity.State) {
	t.Helper()
	seen := make(map[types.EntityID]bool)
	for _, e := range st.Enemies {
		require.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true
	}
	for _, tw := range st.Towers {
		require.False(t, seen[tw.ID], "duplicate id %d", tw.ID)
		seen[tw.ID] = true
	}
	for _, p := range st.Projectiles {
		require.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}
