// internal/entity/state.go
package entity

import (
	"slices"

	"bastion-defense/internal/component"
	"bastion-defense/internal/config"
	"bastion-defense/internal/types"
)

// State is the root aggregate of one game session. Collections are kept in
// ascending id order: new entities get the next id and are appended.
type State struct {
	Phase       component.Phase
	CurrentWave int // 1-based
	Scrap       int
	Hull        int
	Paused      bool
	Speed       float64 // 1 или 2
	Countdown   float64 // только в фазе between_waves
	Clock       float64 // время симуляции, секунд
	NextID      types.EntityID

	Enemies     []component.Enemy
	Towers      []component.Tower
	Projectiles []component.Projectile
	Spawner     component.Spawner
	Stats       component.Stats
}

// NewState builds the initial state of a session on level l.
func NewState(l *config.Level) State {
	return State{
		Phase:       component.PhaseMenu,
		CurrentWave: 1,
		Scrap:       l.StartScrap,
		Hull:        l.StartHull,
		Speed:       1,
		NextID:      1,
	}
}

// NewEntity allocates the next entity id.
func (s *State) NewEntity() types.EntityID {
	id := s.NextID
	s.NextID++
	return id
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := s
	c.Enemies = slices.Clone(s.Enemies)
	c.Towers = slices.Clone(s.Towers)
	c.Projectiles = slices.Clone(s.Projectiles)
	c.Spawner.Queue = slices.Clone(s.Spawner.Queue)
	return c
}

// Enemy returns a pointer to the live enemy with the given id.
func (s *State) Enemy(id types.EntityID) (*component.Enemy, bool) {
	for i := range s.Enemies {
		if s.Enemies[i].ID == id {
			return &s.Enemies[i], true
		}
	}
	return nil, false
}

// RemoveEnemy deletes the enemy with the given id, keeping order.
func (s *State) RemoveEnemy(id types.EntityID) bool {
	for i := range s.Enemies {
		if s.Enemies[i].ID == id {
			s.Enemies = append(s.Enemies[:i], s.Enemies[i+1:]...)
			return true
		}
	}
	return false
}

// Tower returns a pointer to the tower with the given id.
func (s *State) Tower(id types.EntityID) (*component.Tower, bool) {
	for i := range s.Towers {
		if s.Towers[i].ID == id {
			return &s.Towers[i], true
		}
	}
	return nil, false
}

// TowerAtSpot returns the tower standing on a construction spot.
func (s *State) TowerAtSpot(spotID int) (*component.Tower, bool) {
	for i := range s.Towers {
		if s.Towers[i].SpotID == spotID {
			return &s.Towers[i], true
		}
	}
	return nil, false
}

// RemoveTower deletes the tower with the given id.
func (s *State) RemoveTower(id types.EntityID) bool {
	for i := range s.Towers {
		if s.Towers[i].ID == id {
			s.Towers = append(s.Towers[:i], s.Towers[i+1:]...)
			return true
		}
	}
	return false
}

// WaveOver reports whether the active wave has been fully spawned and
// cleared. A wave that has not been expanded yet is never over.
func (s *State) WaveOver() bool {
	return s.Spawner.ActiveWave == s.CurrentWave &&
		len(s.Spawner.Queue) == 0 &&
		len(s.Enemies) == 0
}
