// internal/config/level.go
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bastion-defense/internal/defs"
	"bastion-defense/pkg/geom"
)

// ErrInvalidLevel is returned when a level fails validation.
var ErrInvalidLevel = errors.New("invalid level")

//go:embed levels/outpost.yaml
var defaultLevelYAML []byte

// Group is one (enemy type, count) entry of a wave.
type Group struct {
	Enemy defs.EnemyType `yaml:"enemy"`
	Count int            `yaml:"count"`
}

// Wave is a scripted batch of spawns with a fixed cadence.
type Wave struct {
	Number     int     `yaml:"number"`
	Groups     []Group `yaml:"groups"`
	SpawnDelay float64 `yaml:"spawn_delay"` // секунд между соседними спавнами
}

// Size returns the total number of enemies in the wave.
func (w Wave) Size() int {
	n := 0
	for _, g := range w.Groups {
		n += g.Count
	}
	return n
}

// Spot is a construction spot where one tower may stand.
type Spot struct {
	ID  int       `yaml:"id"`
	Pos geom.Vec2 `yaml:",inline"`
}

// Level is the static configuration of one playable map.
type Level struct {
	Name       string      `yaml:"name"`
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Path       []geom.Vec2 `yaml:"path"`
	Spots      []Spot      `yaml:"spots"`
	StartScrap int         `yaml:"start_scrap"`
	StartHull  int         `yaml:"start_hull"`
	Waves      []Wave      `yaml:"waves"`
	Rules      Rules       `yaml:"rules"`
}

// TotalWaves returns the number of configured waves.
func (l *Level) TotalWaves() int { return len(l.Waves) }

// Wave returns the 1-based wave n.
func (l *Level) Wave(n int) (Wave, bool) {
	if n < 1 || n > len(l.Waves) {
		return Wave{}, false
	}
	return l.Waves[n-1], true
}

// Spot looks up a construction spot by id.
func (l *Level) Spot(id int) (Spot, bool) {
	for _, s := range l.Spots {
		if s.ID == id {
			return s, true
		}
	}
	return Spot{}, false
}

// Route builds the enemy polyline.
func (l *Level) Route() (*geom.Polyline, error) {
	return geom.NewPolyline(l.Path)
}

// Validate checks the structural constraints the simulation relies on.
func (l *Level) Validate() error {
	if len(l.Path) < 2 {
		return fmt.Errorf("%w: path needs at least 2 waypoints, got %d", ErrInvalidLevel, len(l.Path))
	}
	if len(l.Waves) == 0 {
		return fmt.Errorf("%w: no waves", ErrInvalidLevel)
	}
	if l.StartHull <= 0 {
		return fmt.Errorf("%w: start_hull must be positive", ErrInvalidLevel)
	}
	if l.StartScrap < 0 {
		return fmt.Errorf("%w: start_scrap must not be negative", ErrInvalidLevel)
	}
	for i, w := range l.Waves {
		if w.SpawnDelay < 0 {
			return fmt.Errorf("%w: wave %d: negative spawn_delay", ErrInvalidLevel, i+1)
		}
		if len(w.Groups) == 0 {
			return fmt.Errorf("%w: wave %d: no groups", ErrInvalidLevel, i+1)
		}
		for _, g := range w.Groups {
			if g.Count <= 0 {
				return fmt.Errorf("%w: wave %d: %s count must be positive", ErrInvalidLevel, i+1, g.Enemy)
			}
		}
	}
	seen := make(map[int]bool, len(l.Spots))
	for _, s := range l.Spots {
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate spot id %d", ErrInvalidLevel, s.ID)
		}
		seen[s.ID] = true
	}
	if l.Rules.ProjectileSpeed <= 0 || l.Rules.ArrivalRadius <= 0 || l.Rules.ProjectileLifetime <= 0 {
		return fmt.Errorf("%w: projectile rules must be positive", ErrInvalidLevel)
	}
	return nil
}

// ParseLevel decodes a level from YAML. Rules not present in the document
// keep their default values; wave numbers default to their position.
func ParseLevel(data []byte) (*Level, error) {
	l := &Level{Rules: DefaultRules()}
	if err := yaml.Unmarshal(data, l); err != nil {
		return nil, err
	}
	for i := range l.Waves {
		if l.Waves[i].Number == 0 {
			l.Waves[i].Number = i + 1
		}
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// LoadLevel reads a level file. An empty path yields the built-in level.
func LoadLevel(path string) (*Level, error) {
	if path == "" {
		return DefaultLevel()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level %s: %w", path, err)
	}
	l, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("parsing level %s: %w", path, err)
	}
	return l, nil
}

// DefaultLevel returns the embedded level.
func DefaultLevel() (*Level, error) {
	l, err := ParseLevel(defaultLevelYAML)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded level: %w", err)
	}
	return l, nil
}
