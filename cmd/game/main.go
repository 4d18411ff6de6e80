// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"bastion-defense/internal/app"
	"bastion-defense/internal/config"
	"bastion-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

// Update передаёт в сессию реальное время кадра; ограничение дельты
// делает сама сессия.
func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	levelPath := flag.String("level", "", "level YAML file (default: built-in Outpost)")
	catalogPath := flag.String("catalog", "", "enemy/tower stat overrides YAML")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	seed := flag.Int64("seed", 0, "seed for visual effects, 0 = time based")
	flag.Parse()

	logger := config.NewLogger(os.Stderr, *logLevel)
	slog.SetDefault(logger)

	if err := run(*levelPath, *catalogPath, *seed, logger); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(levelPath, catalogPath string, seed int64, logger *slog.Logger) error {
	engine, err := app.LoadEngine(levelPath, catalogPath)
	if err != nil {
		return err
	}
	session := app.NewSession(engine, logger)
	logger.Info("level loaded", "name", engine.Level().Name, "waves", engine.Level().TotalWaves())

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, state.Deps{
		Session: session,
		Face:    basicfont.Face7x13,
		Log:     logger,
		Seed:    seed,
	}))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("Bastion Defense: %s", engine.Level().Name))
	ebiten.SetTPS(config.TicksPerSec)
	return ebiten.RunGame(&AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	})
}
