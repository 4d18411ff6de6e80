package app

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bastion-defense/internal/component"
	"bastion-defense/internal/config"
	"bastion-defense/internal/defs"
	"bastion-defense/internal/event"
	"bastion-defense/internal/system"
)

const testLevel = `
name: test
path: [{x: 0, y: 0}, {x: 10, y: 0}]
spots:
  - {id: 1, x: 2, y: 1}
  - {id: 2, x: 6, y: 1}
start_scrap: 120
start_hull: 5
waves:
  - spawn_delay: 1
    groups: [{enemy: shambler, count: 2}]
  - spawn_delay: 1
    groups: [{enemy: runner, count: 1}]
`

type collector struct {
	events []event.Event
}

func (c *collector) OnEvent(e event.Event) { c.events = append(c.events, e) }

func newSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	l, err := config.ParseLevel([]byte(testLevel))
	require.NoError(t, err)
	e, err := system.NewEngine(l, defs.DefaultCatalog())
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewSession(e, logger), &buf
}

func TestSession_BuildTower(t *testing.T) {
	s, logs := newSession(t)
	c := &collector{}
	s.EventDispatcher.Subscribe(event.TowerBuilt, c)

	id, err := s.BuildTower(1, defs.TowerGatling)
	require.NoError(t, err)

	st := s.State()
	assert.Equal(t, 70, st.Scrap)
	require.Len(t, st.Towers, 1)
	tw := st.Towers[0]
	assert.Equal(t, id, tw.ID)
	assert.Equal(t, 1, tw.Level)
	assert.Equal(t, 1, tw.SpotID)
	assert.Equal(t, 2.0, tw.Pos.X)
	assert.Equal(t, component.NeverFired, tw.LastFire)

	require.Len(t, c.events, 1)
	assert.Equal(t, event.TowerData{ID: id, Type: defs.TowerGatling, SpotID: 1, Level: 1, Scrap: 50}, c.events[0].Data)
	assert.Contains(t, logs.String(), "TowerBuilt")
}

func TestSession_BuildTowerErrors(t *testing.T) {
	s, _ := newSession(t)

	_, err := s.BuildTower(9, defs.TowerGatling)
	assert.ErrorIs(t, err, ErrUnknownSpot)

	_, err = s.BuildTower(1, defs.TowerType(42))
	assert.ErrorIs(t, err, defs.ErrUnknownType)

	_, err = s.BuildTower(1, defs.TowerCannon)
	require.NoError(t, err)
	_, err = s.BuildTower(1, defs.TowerGatling)
	assert.ErrorIs(t, err, ErrSpotOccupied)

	_, err = s.BuildTower(2, defs.TowerCannon)
	assert.ErrorIs(t, err, ErrInsufficientScrap)
	assert.Equal(t, 40, s.State().Scrap, "failed build charges nothing")
}

func TestSession_UpgradeAndSell(t *testing.T) {
	s, _ := newSession(t)
	id, err := s.BuildTower(2, defs.TowerGatling)
	require.NoError(t, err)

	require.NoError(t, s.UpgradeTower(id))
	tw, ok := s.state.Tower(id)
	require.True(t, ok)
	assert.Equal(t, 2, tw.Level)
	assert.Equal(t, 110, tw.Invested)
	assert.Equal(t, 10, s.State().Scrap)

	err = s.UpgradeTower(id)
	assert.ErrorIs(t, err, ErrInsufficientScrap)

	s.state.Scrap = 1000
	require.NoError(t, s.UpgradeTower(id))
	assert.ErrorIs(t, s.UpgradeTower(id), ErrMaxLevel)

	refund, err := s.SellTower(id)
	require.NoError(t, err)
	assert.Equal(t, 100, refund)
	assert.Equal(t, 1000-90+100, s.State().Scrap)
	assert.Empty(t, s.State().Towers)

	_, err = s.SellTower(id)
	assert.ErrorIs(t, err, ErrUnknownTower)
	assert.ErrorIs(t, s.UpgradeTower(id), ErrUnknownTower)
}

func TestSession_StateIsSnapshot(t *testing.T) {
	s, _ := newSession(t)
	gatling, err := s.BuildTower(1, defs.TowerGatling)
	require.NoError(t, err)
	s.state.Scrap = 1000
	_, err = s.BuildTower(2, defs.TowerCannon)
	require.NoError(t, err)

	snap := s.State()
	_, err = s.SellTower(gatling)
	require.NoError(t, err)

	require.Len(t, snap.Towers, 2)
	assert.Equal(t, gatling, snap.Towers[0].ID)
	assert.Equal(t, defs.TowerGatling, snap.Towers[0].Type)
	assert.Equal(t, 1, snap.Towers[0].SpotID)
	require.Len(t, s.State().Towers, 1)

	snap = s.State()
	require.NoError(t, s.UpgradeTower(s.State().Towers[0].ID))
	assert.Equal(t, 1, snap.Towers[0].Level, "upgrade does not leak into an older snapshot")
	assert.Equal(t, 2, s.State().Towers[0].Level)
}

func TestSession_FlowThroughUpdate(t *testing.T) {
	s, logs := newSession(t)
	assert.Equal(t, component.PhaseMenu, s.Phase())

	s.StartWave()
	out := s.Update(1.0 / 60)
	assert.Equal(t, component.PhasePlaying, s.Phase())
	assert.NotEmpty(t, out.Events)
	assert.Contains(t, logs.String(), "phase changed")

	s.TogglePause()
	s.Update(1.0 / 60)
	assert.True(t, s.IsPaused())
	clock := s.State().Clock
	s.Update(1.0 / 60)
	assert.Equal(t, clock, s.State().Clock)

	s.TogglePause()
	s.ToggleSpeed()
	s.Update(0.05)
	assert.False(t, s.IsPaused())
	assert.Equal(t, 2.0, s.State().Speed)
	assert.InDelta(t, clock+0.1, s.State().Clock, 1e-9)
}

func TestSession_ClampsDelta(t *testing.T) {
	s, _ := newSession(t)
	s.StartWave()
	s.Update(5)
	assert.InDelta(t, s.Engine().Rules().MaxDeltaTime, s.State().Clock, 1e-9)
}

func TestSession_Reset(t *testing.T) {
	s, _ := newSession(t)
	_, err := s.BuildTower(1, defs.TowerGatling)
	require.NoError(t, err)
	s.StartWave()
	s.Update(0.1)

	s.Reset()
	s.Update(0.1)
	assert.Equal(t, s.Engine().NewState(), s.State())
}

func TestSession_OverRejectsActions(t *testing.T) {
	s, _ := newSession(t)
	s.state.Phase = component.PhaseDefeat

	_, err := s.BuildTower(1, defs.TowerGatling)
	assert.ErrorIs(t, err, ErrSessionOver)
	assert.ErrorIs(t, s.UpgradeTower(1), ErrSessionOver)
	_, err = s.SellTower(1)
	assert.ErrorIs(t, err, ErrSessionOver)
}
