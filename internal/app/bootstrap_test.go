package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bastion-defense/internal/config"
	"bastion-defense/internal/defs"
)

func TestLoadEngine_Defaults(t *testing.T) {
	e, err := LoadEngine("", "")
	require.NoError(t, err)
	assert.Equal(t, "Outpost", e.Level().Name)
	assert.Equal(t, defs.DefaultCatalog(), e.Catalog())
}

func TestLoadEngine_Files(t *testing.T) {
	dir := t.TempDir()
	levelPath := filepath.Join(dir, "level.yaml")
	catalogPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(levelPath, []byte(testLevel), 0o644))
	require.NoError(t, os.WriteFile(catalogPath, []byte("enemies:\n  shambler: {health: 1}\n"), 0o644))

	e, err := LoadEngine(levelPath, catalogPath)
	require.NoError(t, err)
	assert.Equal(t, "test", e.Level().Name)
	assert.Equal(t, 1, e.Catalog().Enemy(defs.EnemyShambler).Health)
}

func TestLoadEngine_BadLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.yaml")
	require.NoError(t, os.WriteFile(path, []byte("path: []\n"), 0o644))

	_, err := LoadEngine(path, "")
	assert.ErrorIs(t, err, config.ErrInvalidLevel)
}
