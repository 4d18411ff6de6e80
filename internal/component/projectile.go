// internal/component/projectile.go
package component

import (
	"bastion-defense/internal/types"
	"bastion-defense/pkg/geom"
)

// Projectile представляет летящий снаряд. Цель запоминается в момент
// выстрела и не пересчитывается.
type Projectile struct {
	ID        types.EntityID
	TowerID   types.EntityID
	Origin    geom.Vec2
	Pos       geom.Vec2
	Target    geom.Vec2
	TargetID  types.EntityID
	Damage    int
	SpawnTime float64
}
