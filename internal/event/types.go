// internal/event/types.go
package event

import (
	"bastion-defense/internal/component"
	"bastion-defense/internal/defs"
	"bastion-defense/internal/types"
	"bastion-defense/pkg/geom"
)

const (
	WaveStarted   EventType = "WaveStarted"   // очередь волны развёрнута
	WaveCompleted EventType = "WaveCompleted" // очередь и враги закончились
	EnemyKilled   EventType = "EnemyKilled"   // враг убит снарядом
	EnemyBreached EventType = "EnemyBreached" // враг дошёл до бастиона
	PhaseChanged  EventType = "PhaseChanged"
	TowerBuilt    EventType = "TowerBuilt"
	TowerUpgraded EventType = "TowerUpgraded"
	TowerSold     EventType = "TowerSold"
)

// WaveData is the payload of WaveStarted and WaveCompleted.
type WaveData struct {
	Number int
	Bonus  int
}

// EnemyData is the payload of EnemyKilled and EnemyBreached.
type EnemyData struct {
	ID     types.EntityID
	Type   defs.EnemyType
	Pos    geom.Vec2
	Reward int // scrap за убийство или урон по корпусу при прорыве
}

// PhaseData is the payload of PhaseChanged.
type PhaseData struct {
	From, To component.Phase
}

// TowerData is the payload of the tower action events.
type TowerData struct {
	ID     types.EntityID
	Type   defs.TowerType
	SpotID int
	Level  int
	Scrap  int // потрачено или возвращено
}
