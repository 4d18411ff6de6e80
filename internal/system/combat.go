// internal/system/combat.go
package system

import (
	"bastion-defense/internal/component"
	"bastion-defense/internal/defs"
	"bastion-defense/internal/entity"
	"bastion-defense/pkg/geom"
)

// CombatSystem управляет стрельбой башен.
type CombatSystem struct {
	catalog *defs.Catalog
}

func NewCombatSystem(catalog *defs.Catalog) *CombatSystem {
	return &CombatSystem{catalog: catalog}
}

// Update fires at most one projectile per ready tower. A tower without a
// target keeps its timer, so it shoots as soon as something walks in.
func (s *CombatSystem) Update(st *entity.State, f *Frame) {
	for i := range st.Towers {
		tower := &st.Towers[i]
		stats, ok := s.catalog.TowerLevel(tower.Type, tower.Level)
		if !ok {
			continue
		}
		if st.Clock-tower.LastFire < stats.Cooldown() {
			continue
		}

		target, found := SelectTarget(st.Enemies, tower.Pos, stats.Range)
		if !found {
			continue
		}
		st.Projectiles = append(st.Projectiles, component.Projectile{
			ID:        st.NewEntity(),
			TowerID:   tower.ID,
			Origin:    tower.Pos,
			Pos:       tower.Pos,
			Target:    target.Pos,
			TargetID:  target.ID,
			Damage:    stats.Damage,
			SpawnTime: st.Clock,
		})
		tower.LastFire = st.Clock
	}
}

// SelectTarget returns the enemy within rangeRadius of pos that is furthest
// along the path. Equal progress goes to the lowest id.
func SelectTarget(enemies []component.Enemy, pos geom.Vec2, rangeRadius float64) (component.Enemy, bool) {
	var best component.Enemy
	found := false
	for _, e := range enemies {
		if !e.Alive() || geom.Dist(pos, e.Pos) > rangeRadius {
			continue
		}
		if !found || e.Progress > best.Progress || (e.Progress == best.Progress && e.ID < best.ID) {
			best = e
			found = true
		}
	}
	return best, found
}
