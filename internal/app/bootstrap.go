// internal/app/bootstrap.go
package app

import (
	"fmt"

	"bastion-defense/internal/config"
	"bastion-defense/internal/defs"
	"bastion-defense/internal/system"
)

// LoadEngine builds an engine from a level file and a catalog override
// file. An empty level path selects the built-in level; an empty catalog
// path selects the built-in tables.
func LoadEngine(levelPath, catalogPath string) (*system.Engine, error) {
	level, err := config.LoadLevel(levelPath)
	if err != nil {
		return nil, fmt.Errorf("loading level: %w", err)
	}

	catalog := defs.DefaultCatalog()
	if catalogPath != "" {
		catalog, err = defs.LoadCatalog(catalogPath)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
	}

	engine, err := system.NewEngine(level, catalog)
	if err != nil {
		return nil, fmt.Errorf("building engine: %w", err)
	}
	return engine, nil
}
