// internal/defs/catalog.go
package defs

// Catalog is the read-only stat table consumed by the simulation. Lookups
// are array-indexed by the closed enums, so every type always has an entry.
type Catalog struct {
	enemies [enemyTypeCount]EnemyStats
	towers  [towerTypeCount][]TowerLevel
}

// DefaultCatalog returns a catalog filled with the built-in tables.
func DefaultCatalog() *Catalog {
	c := &Catalog{enemies: defaultEnemies}
	for t, levels := range defaultTowers {
		c.towers[t] = append([]TowerLevel(nil), levels...)
	}
	return c
}

// Enemy returns the stats of enemy type t.
func (c *Catalog) Enemy(t EnemyType) EnemyStats {
	return c.enemies[t]
}

// SetEnemy replaces the stats of enemy type t.
func (c *Catalog) SetEnemy(t EnemyType, stats EnemyStats) {
	c.enemies[t] = stats
}

// TowerLevel returns the stats of tower type t at the 1-based level.
func (c *Catalog) TowerLevel(t TowerType, level int) (TowerLevel, bool) {
	if !t.Valid() {
		return TowerLevel{}, false
	}
	levels := c.towers[t]
	if level < 1 || level > len(levels) {
		return TowerLevel{}, false
	}
	return levels[level-1], true
}

// MaxLevel returns the highest level tower type t can be upgraded to.
func (c *Catalog) MaxLevel(t TowerType) int {
	if !t.Valid() {
		return 0
	}
	return len(c.towers[t])
}

// SetTowerLevels replaces the level table of tower type t.
func (c *Catalog) SetTowerLevels(t TowerType, levels []TowerLevel) {
	c.towers[t] = append([]TowerLevel(nil), levels...)
}
