// internal/system/wave.go
package system

import (
	"bastion-defense/internal/component"
	"bastion-defense/internal/config"
	"bastion-defense/internal/defs"
	"bastion-defense/internal/entity"
	"bastion-defense/internal/event"
	"bastion-defense/pkg/geom"
)

// spawnEpsilon absorbs float drift of the summed tick deltas, so an entry
// due at T leaves on the tick whose elapsed time reaches T.
const spawnEpsilon = 1e-9

// WaveSystem expands waves into spawn queues and releases enemies onto the
// path as simulated time passes.
type WaveSystem struct {
	level   *config.Level
	catalog *defs.Catalog
	route   *geom.Polyline
}

func NewWaveSystem(level *config.Level, catalog *defs.Catalog, route *geom.Polyline) *WaveSystem {
	return &WaveSystem{level: level, catalog: catalog, route: route}
}

// Expand flattens a wave into its spawn queue. Slot k is scheduled at
// k*SpawnDelay; group boundaries do not reset the offset.
func Expand(w config.Wave) []component.SpawnEntry {
	queue := make([]component.SpawnEntry, 0, w.Size())
	for _, g := range w.Groups {
		for i := 0; i < g.Count; i++ {
			queue = append(queue, component.SpawnEntry{
				Enemy:  g.Enemy,
				Offset: float64(len(queue)) * w.SpawnDelay,
			})
		}
	}
	return queue
}

func (s *WaveSystem) Update(st *entity.State, deltaTime float64, f *Frame) {
	if st.Phase != component.PhasePlaying {
		return
	}

	sp := &st.Spawner
	if sp.ActiveWave != st.CurrentWave && len(sp.Queue) == 0 && len(st.Enemies) == 0 {
		w, ok := s.level.Wave(st.CurrentWave)
		if !ok {
			return
		}
		*sp = component.Spawner{ActiveWave: st.CurrentWave, Queue: Expand(w)}
		f.emit(event.WaveStarted, event.WaveData{Number: st.CurrentWave})
	}
	if sp.ActiveWave != st.CurrentWave {
		return
	}

	// Сначала выпускаем всех, чьё время наступило, потом двигаем часы.
	for len(sp.Queue) > 0 && sp.Queue[0].Offset <= sp.Elapsed+spawnEpsilon {
		s.spawnEnemy(st, sp.Queue[0].Enemy)
		sp.Queue = sp.Queue[1:]
	}
	sp.Elapsed += deltaTime
}

func (s *WaveSystem) spawnEnemy(st *entity.State, t defs.EnemyType) {
	def := s.catalog.Enemy(t)
	st.Enemies = append(st.Enemies, component.Enemy{
		ID:        st.NewEntity(),
		Type:      t,
		Health:    def.Health,
		MaxHealth: def.Health,
		Pos:       s.route.Point(0),
	})
}
