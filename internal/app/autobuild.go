// internal/app/autobuild.go
package app

import (
	"errors"

	"bastion-defense/internal/defs"
	"bastion-defense/internal/types"
)

// AutoBuild spends scrap on towers of type t: free spots are filled in
// level order first, then existing towers of that type are upgraded
// oldest first. It returns how many actions succeeded.
func (s *Session) AutoBuild(t defs.TowerType) int {
	if s.state.Phase.Terminal() {
		return 0
	}
	actions := 0
	for _, spot := range s.engine.Level().Spots {
		if _, taken := s.state.TowerAtSpot(spot.ID); taken {
			continue
		}
		if _, err := s.BuildTower(spot.ID, t); err != nil {
			if errors.Is(err, ErrInsufficientScrap) {
				return actions
			}
			continue
		}
		actions++
	}

	ids := make([]types.EntityID, 0, len(s.state.Towers))
	for _, tw := range s.state.Towers {
		if tw.Type == t {
			ids = append(ids, tw.ID)
		}
	}
	for _, id := range ids {
		if err := s.UpgradeTower(id); err != nil {
			if errors.Is(err, ErrInsufficientScrap) {
				return actions
			}
			continue
		}
		actions++
	}
	return actions
}
