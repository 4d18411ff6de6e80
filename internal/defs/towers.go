// internal/defs/towers.go
package defs

// TowerLevel contains the stats of a tower at one upgrade level.
type TowerLevel struct {
	Damage   int     `yaml:"damage"`
	Range    float64 `yaml:"range"`     // в тайлах
	FireRate float64 `yaml:"fire_rate"` // выстрелов в секунду
	Cost     int     `yaml:"cost"`      // цена постройки (уровень 1) или улучшения до этого уровня
}

// Cooldown returns the minimum simulated time between two shots.
func (l TowerLevel) Cooldown() float64 {
	if l.FireRate <= 0 {
		return 0
	}
	return 1.0 / l.FireRate
}

var defaultTowers = [towerTypeCount][]TowerLevel{
	TowerGatling: {
		{Damage: 8, Range: 2.5, FireRate: 4.0, Cost: 50},
		{Damage: 12, Range: 2.75, FireRate: 5.0, Cost: 60},
		{Damage: 18, Range: 3.0, FireRate: 6.0, Cost: 90},
	},
	TowerCannon: {
		{Damage: 40, Range: 3.0, FireRate: 0.8, Cost: 80},
		{Damage: 65, Range: 3.25, FireRate: 0.9, Cost: 100},
		{Damage: 100, Range: 3.5, FireRate: 1.0, Cost: 150},
	},
	TowerTesla: {
		{Damage: 20, Range: 3.5, FireRate: 1.5, Cost: 70},
		{Damage: 32, Range: 3.75, FireRate: 1.75, Cost: 90},
		{Damage: 50, Range: 4.0, FireRate: 2.0, Cost: 130},
	},
}
