package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseTypes(t *testing.T) {
	for _, et := range EnemyTypes() {
		got, err := ParseEnemyType(et.String())
		require.NoError(t, err)
		assert.Equal(t, et, got)
	}
	for _, tt := range TowerTypes() {
		got, err := ParseTowerType(tt.String())
		require.NoError(t, err)
		assert.Equal(t, tt, got)
	}

	_, err := ParseEnemyType("ghoul")
	assert.ErrorIs(t, err, ErrUnknownType)
	_, err = ParseTowerType("laser")
	assert.ErrorIs(t, err, ErrUnknownType)

	assert.False(t, EnemyType(200).Valid())
	assert.Equal(t, "EnemyType(200)", EnemyType(200).String())
}

func TestTypesYAML(t *testing.T) {
	var doc struct {
		Enemy EnemyType `yaml:"enemy"`
		Tower TowerType `yaml:"tower"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("enemy: brute\ntower: tesla\n"), &doc))
	assert.Equal(t, EnemyBrute, doc.Enemy)
	assert.Equal(t, TowerTesla, doc.Tower)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "enemy: brute\ntower: tesla\n", string(out))

	err = yaml.Unmarshal([]byte("enemy: ghoul\n"), &doc)
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	for _, et := range EnemyTypes() {
		s := c.Enemy(et)
		assert.Positive(t, s.Health, et.String())
		assert.Positive(t, s.Speed, et.String())
		assert.Positive(t, s.BastionDamage, et.String())
	}
	for _, tt := range TowerTypes() {
		require.Equal(t, 3, c.MaxLevel(tt))
		prev, ok := c.TowerLevel(tt, 1)
		require.True(t, ok)
		for lvl := 2; lvl <= c.MaxLevel(tt); lvl++ {
			cur, ok := c.TowerLevel(tt, lvl)
			require.True(t, ok)
			assert.Greater(t, cur.Damage, prev.Damage, "%s level %d", tt, lvl)
			prev = cur
		}
		_, ok = c.TowerLevel(tt, 0)
		assert.False(t, ok)
		_, ok = c.TowerLevel(tt, 4)
		assert.False(t, ok)
	}

	l, _ := c.TowerLevel(TowerGatling, 1)
	assert.InDelta(t, 0.25, l.Cooldown(), 1e-9)
}

func TestCatalogApply(t *testing.T) {
	c := DefaultCatalog()
	before := c.Enemy(EnemyRunner)

	err := c.Apply([]byte(`
enemies:
  runner:
    health: 45
towers:
  cannon:
    - {damage: 10, range: 2, fire_rate: 1, cost: 5}
`))
	require.NoError(t, err)

	after := c.Enemy(EnemyRunner)
	assert.Equal(t, 45, after.Health)
	assert.Equal(t, before.Speed, after.Speed, "unset fields keep their defaults")

	assert.Equal(t, 1, c.MaxLevel(TowerCannon))
	l, ok := c.TowerLevel(TowerCannon, 1)
	require.True(t, ok)
	assert.Equal(t, TowerLevel{Damage: 10, Range: 2, FireRate: 1, Cost: 5}, l)

	assert.Equal(t, 3, c.MaxLevel(TowerGatling))
}

func TestCatalogApply_Errors(t *testing.T) {
	c := DefaultCatalog()
	assert.ErrorIs(t, c.Apply([]byte("enemies:\n  ghoul: {health: 1}\n")), ErrUnknownType)
	assert.ErrorIs(t, c.Apply([]byte("towers:\n  tesla: []\n")), ErrEmptyLevels)
}

func TestDefaultCatalog_Independent(t *testing.T) {
	a := DefaultCatalog()
	a.SetTowerLevels(TowerTesla, []TowerLevel{{Damage: 1, Range: 1, FireRate: 1, Cost: 1}})

	b := DefaultCatalog()
	assert.Equal(t, 3, b.MaxLevel(TowerTesla))
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()

	c, err := LoadCatalog(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog(), c)

	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemies:\n  brute: {reward: 99}\n"), 0o644))
	c, err = LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, 99, c.Enemy(EnemyBrute).Reward)

	require.NoError(t, os.WriteFile(path, []byte("enemies: ["), 0o644))
	_, err = LoadCatalog(path)
	assert.Error(t, err)
}
