// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyLevels is returned when a tower override declares no levels.
var ErrEmptyLevels = errors.New("tower has no levels")

type catalogFile struct {
	Enemies map[string]yaml.Node    `yaml:"enemies"`
	Towers  map[string][]TowerLevel `yaml:"towers"`
}

// LoadCatalog reads a YAML override file on top of the default tables.
// Enemy entries are merged field by field; tower entries replace the whole
// level list of that tower type. A missing file yields the defaults.
func LoadCatalog(path string) (*Catalog, error) {
	c := DefaultCatalog()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	if err := c.Apply(data); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return c, nil
}

// Apply merges YAML overrides into c.
func (c *Catalog) Apply(data []byte) error {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}

	for name, node := range f.Enemies {
		t, err := ParseEnemyType(name)
		if err != nil {
			return err
		}
		stats := c.enemies[t]
		if err := node.Decode(&stats); err != nil {
			return fmt.Errorf("enemy %s: %w", name, err)
		}
		c.enemies[t] = stats
	}

	for name, levels := range f.Towers {
		t, err := ParseTowerType(name)
		if err != nil {
			return err
		}
		if len(levels) == 0 {
			return fmt.Errorf("tower %s: %w", name, ErrEmptyLevels)
		}
		c.SetTowerLevels(t, levels)
	}
	return nil
}
