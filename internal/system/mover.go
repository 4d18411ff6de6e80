// internal/system/mover.go
package system

import (
	"bastion-defense/internal/component"
	"bastion-defense/internal/defs"
	"bastion-defense/internal/entity"
	"bastion-defense/internal/event"
	"bastion-defense/pkg/geom"
)

// MovementSystem двигает врагов по ломаной пути и снимает прочность
// бастиона за каждого дошедшего до конца.
type MovementSystem struct {
	catalog *defs.Catalog
	route   *geom.Polyline
}

func NewMovementSystem(catalog *defs.Catalog, route *geom.Polyline) *MovementSystem {
	return &MovementSystem{catalog: catalog, route: route}
}

func (s *MovementSystem) Update(st *entity.State, deltaTime float64, f *Frame) {
	kept := st.Enemies[:0]
	for _, e := range st.Enemies {
		if !s.advance(&e, deltaTime) {
			kept = append(kept, e)
			continue
		}

		// Прорыв считается всегда, даже если здоровье уже на нуле.
		dmg := s.catalog.Enemy(e.Type).BastionDamage
		st.Hull -= dmg
		if st.Hull < 0 {
			st.Hull = 0
		}
		st.Stats.Breaches++
		f.emit(event.EnemyBreached, event.EnemyData{ID: e.ID, Type: e.Type, Pos: e.Pos, Reward: dmg})
	}
	st.Enemies = kept
}

// advance moves e by its speed and reports whether it reached the last
// waypoint. Overshoot past a waypoint is carried toward the following one
// once per tick and stops there; any remainder is dropped.
func (s *MovementSystem) advance(e *component.Enemy, deltaTime float64) bool {
	last := s.route.Last()
	if e.Waypoint >= last {
		return true
	}

	step := s.catalog.Enemy(e.Type).Speed * deltaTime
	pos, excess, reached := geom.MoveToward(e.Pos, s.route.Point(e.Waypoint+1), step)
	e.Pos = pos
	if reached {
		e.Waypoint++
		if e.Waypoint >= last {
			e.Progress = 1
			return true
		}
		if excess > 0 {
			e.Pos, _, reached = geom.MoveToward(e.Pos, s.route.Point(e.Waypoint+1), excess)
			if reached {
				e.Waypoint++
				if e.Waypoint >= last {
					e.Progress = 1
					return true
				}
			}
		}
	}

	e.Progress = s.route.Progress(e.Waypoint, e.Pos)
	return false
}
