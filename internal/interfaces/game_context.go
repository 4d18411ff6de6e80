// internal/interfaces/game_context.go
package interfaces

import (
	"bastion-defense/internal/defs"
	"bastion-defense/internal/entity"
	"bastion-defense/internal/system"
	"bastion-defense/internal/types"
)

// GameContext is what a front end needs from a running session: the
// current snapshot, the buffered player signals and tower management.
type GameContext interface {
	Update(deltaTime float64) system.Output
	State() entity.State
	Engine() *system.Engine

	TogglePause()
	ToggleSpeed()
	StartWave()
	Reset()

	BuildTower(spotID int, t defs.TowerType) (types.EntityID, error)
	UpgradeTower(id types.EntityID) error
	SellTower(id types.EntityID) (int, error)
}
