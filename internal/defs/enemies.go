// internal/defs/enemies.go
package defs

// EnemyStats holds the static data for one enemy type.
type EnemyStats struct {
	Health        int     `yaml:"health"`
	Speed         float64 `yaml:"speed"`          // тайлов в секунду
	BastionDamage int     `yaml:"bastion_damage"` // урон по корпусу при прорыве
	Reward        int     `yaml:"reward"`         // scrap за убийство
	Size          float64 `yaml:"size"`           // радиус в тайлах, только для отрисовки
}

var defaultEnemies = [enemyTypeCount]EnemyStats{
	EnemyShambler: {Health: 50, Speed: 1.0, BastionDamage: 1, Reward: 5, Size: 0.30},
	EnemyRunner:   {Health: 30, Speed: 2.2, BastionDamage: 1, Reward: 4, Size: 0.22},
	EnemyBrute:    {Health: 200, Speed: 0.7, BastionDamage: 5, Reward: 15, Size: 0.42},
	EnemySpitter:  {Health: 80, Speed: 1.3, BastionDamage: 2, Reward: 8, Size: 0.30},
	EnemyBehemoth: {Health: 1200, Speed: 0.5, BastionDamage: 20, Reward: 100, Size: 0.60},
}
