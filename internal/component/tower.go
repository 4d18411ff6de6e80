// internal/component/tower.go
package component

import (
	"math"

	"bastion-defense/internal/defs"
	"bastion-defense/internal/types"
	"bastion-defense/pkg/geom"
)

// NeverFired is the LastFire value of a tower that has not shot yet, so its
// first shot is never gated by the cooldown.
var NeverFired = math.Inf(-1)

type Tower struct {
	ID       types.EntityID
	Type     defs.TowerType
	SpotID   int
	Pos      geom.Vec2
	Level    int     // 1..N, только растёт
	LastFire float64 // время симуляции последнего выстрела
	Invested int     // сколько scrap вложено (постройка + улучшения)
}
