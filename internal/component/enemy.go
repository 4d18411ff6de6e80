// internal/component/enemy.go
package component

import (
	"bastion-defense/internal/defs"
	"bastion-defense/internal/types"
	"bastion-defense/pkg/geom"
)

// Enemy представляет вражескую сущность на пути.
type Enemy struct {
	ID        types.EntityID
	Type      defs.EnemyType
	Health    int
	MaxHealth int
	Pos       geom.Vec2
	Waypoint  int     // индекс начала текущего сегмента пути
	Progress  float64 // 0..1, только растёт
}

// Alive reports whether the enemy still has health left.
func (e *Enemy) Alive() bool { return e.Health > 0 }
