// internal/app/tower_management.go
package app

import (
	"fmt"
	"math"

	"bastion-defense/internal/component"
	"bastion-defense/internal/defs"
	"bastion-defense/internal/event"
	"bastion-defense/internal/types"
)

// BuildTower places a level-1 tower of type t on a construction spot and
// charges its cost.
func (s *Session) BuildTower(spotID int, t defs.TowerType) (types.EntityID, error) {
	if s.state.Phase.Terminal() {
		return 0, ErrSessionOver
	}
	spot, ok := s.engine.Level().Spot(spotID)
	if !ok {
		return 0, fmt.Errorf("spot %d: %w", spotID, ErrUnknownSpot)
	}
	if _, taken := s.state.TowerAtSpot(spotID); taken {
		return 0, fmt.Errorf("spot %d: %w", spotID, ErrSpotOccupied)
	}
	stats, ok := s.engine.Catalog().TowerLevel(t, 1)
	if !ok {
		return 0, fmt.Errorf("tower type %s: %w", t, defs.ErrUnknownType)
	}
	if s.state.Scrap < stats.Cost {
		return 0, fmt.Errorf("build %s costs %d, have %d: %w", t, stats.Cost, s.state.Scrap, ErrInsufficientScrap)
	}

	id := s.state.NewEntity()
	s.state.Scrap -= stats.Cost
	s.state.Towers = append(s.state.Towers, component.Tower{
		ID:       id,
		Type:     t,
		SpotID:   spotID,
		Pos:      spot.Pos,
		Level:    1,
		LastFire: component.NeverFired,
		Invested: stats.Cost,
	})
	s.EventDispatcher.Dispatch(event.Event{Type: event.TowerBuilt, Data: event.TowerData{
		ID: id, Type: t, SpotID: spotID, Level: 1, Scrap: stats.Cost,
	}})
	return id, nil
}

// UpgradeTower raises a tower by one level and charges that level's cost.
func (s *Session) UpgradeTower(id types.EntityID) error {
	if s.state.Phase.Terminal() {
		return ErrSessionOver
	}
	tower, ok := s.state.Tower(id)
	if !ok {
		return fmt.Errorf("tower %d: %w", id, ErrUnknownTower)
	}
	stats, ok := s.engine.Catalog().TowerLevel(tower.Type, tower.Level+1)
	if !ok {
		return fmt.Errorf("tower %d level %d: %w", id, tower.Level, ErrMaxLevel)
	}
	if s.state.Scrap < stats.Cost {
		return fmt.Errorf("upgrade to level %d costs %d, have %d: %w", tower.Level+1, stats.Cost, s.state.Scrap, ErrInsufficientScrap)
	}

	s.state.Scrap -= stats.Cost
	tower.Level++
	tower.Invested += stats.Cost
	s.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerData{
		ID: id, Type: tower.Type, SpotID: tower.SpotID, Level: tower.Level, Scrap: stats.Cost,
	}})
	return nil
}

// SellTower removes a tower and refunds part of what was invested in it.
// Projectiles already in flight keep flying.
func (s *Session) SellTower(id types.EntityID) (int, error) {
	if s.state.Phase.Terminal() {
		return 0, ErrSessionOver
	}
	tower, ok := s.state.Tower(id)
	if !ok {
		return 0, fmt.Errorf("tower %d: %w", id, ErrUnknownTower)
	}

	sold := *tower
	refund := int(math.Floor(float64(sold.Invested) * s.engine.Rules().SellRefund))
	s.state.RemoveTower(id)
	s.state.Scrap += refund
	s.EventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: event.TowerData{
		ID: id, Type: sold.Type, SpotID: sold.SpotID, Level: sold.Level, Scrap: refund,
	}})
	return refund, nil
}
