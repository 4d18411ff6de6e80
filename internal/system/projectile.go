// internal/system/projectile.go
package system

import (
	"image/color"

	"bastion-defense/internal/component"
	"bastion-defense/internal/config"
	"bastion-defense/internal/defs"
	"bastion-defense/internal/entity"
	"bastion-defense/internal/event"
	"bastion-defense/pkg/geom"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	catalog *defs.Catalog
	rules   config.Rules
}

func NewProjectileSystem(catalog *defs.Catalog, rules config.Rules) *ProjectileSystem {
	return &ProjectileSystem{catalog: catalog, rules: rules}
}

func (s *ProjectileSystem) Update(st *entity.State, deltaTime float64, f *Frame) {
	kept := st.Projectiles[:0]
	for _, p := range st.Projectiles {
		if st.Clock-p.SpawnTime > s.rules.ProjectileLifetime {
			continue // промах: время жизни вышло
		}

		p.Pos, _, _ = geom.MoveToward(p.Pos, p.Target, s.rules.ProjectileSpeed*deltaTime)
		if geom.Dist(p.Pos, p.Target) < s.rules.ArrivalRadius {
			s.hitTarget(st, p, f)
			continue
		}
		kept = append(kept, p)
	}
	st.Projectiles = kept
}

// hitTarget applies damage to the projectile's target if it is still alive.
// A target that already died or breached makes the hit a no-op.
func (s *ProjectileSystem) hitTarget(st *entity.State, p component.Projectile, f *Frame) {
	enemy, ok := st.Enemy(p.TargetID)
	if !ok {
		return
	}

	enemy.Health -= p.Damage
	st.Stats.TotalDamage += p.Damage
	f.push(event.DamagePop{Pos: enemy.Pos, Amount: p.Damage})
	if enemy.Health > 0 {
		return
	}

	killed := *enemy
	reward := s.catalog.Enemy(killed.Type).Reward
	st.Scrap += reward
	st.Stats.ZombiesKilled++
	st.RemoveEnemy(killed.ID)

	f.push(event.RewardPop{Pos: killed.Pos, Amount: reward})
	f.push(event.ParticleBurst{Pos: killed.Pos, Color: enemyColor(killed.Type), Count: 8})
	f.emit(event.EnemyKilled, event.EnemyData{ID: killed.ID, Type: killed.Type, Pos: killed.Pos, Reward: reward})
}

func enemyColor(t defs.EnemyType) color.RGBA {
	if int(t) < len(config.EnemyColors) {
		return config.EnemyColors[t]
	}
	return config.ParticleColor
}
