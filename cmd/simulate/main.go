// cmd/simulate/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"bastion-defense/internal/app"
	"bastion-defense/internal/config"
	"bastion-defense/internal/defs"
)

func main() {
	levelPath := flag.String("level", "", "level YAML file (default: built-in Outpost)")
	catalogPath := flag.String("catalog", "", "enemy/tower stat overrides YAML")
	tower := flag.String("tower", "", "tower type to test; empty runs every type")
	step := flag.Float64("step", 1.0/config.TicksPerSec, "seconds per tick")
	maxTime := flag.Float64("max-time", 3600, "game-time limit per run, seconds")
	rush := flag.Bool("rush", false, "start every wave immediately")
	logLevel := flag.String("log-level", "warn", "debug, info, warn or error")
	flag.Parse()

	slog.SetDefault(config.NewLogger(os.Stderr, *logLevel))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := app.HeadlessOptions{Step: *step, MaxTime: *maxTime, Rush: *rush}
	if err := run(ctx, *levelPath, *catalogPath, *tower, opts); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, levelPath, catalogPath, tower string, opts app.HeadlessOptions) error {
	engine, err := app.LoadEngine(levelPath, catalogPath)
	if err != nil {
		return err
	}

	towers := defs.TowerTypes()
	if tower != "" {
		t, err := defs.ParseTowerType(tower)
		if err != nil {
			return err
		}
		towers = []defs.TowerType{t}
	}

	// движок только читается, поэтому прогоны идут параллельно
	reports := make([]app.Report, len(towers))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range towers {
		g.Go(func() error {
			o := opts
			o.Tower = t
			logger := slog.Default().With("tower", t)
			logger.Info("run started", "level", engine.Level().Name)
			r, err := app.RunHeadless(gctx, engine, o, logger)
			if err != nil {
				return fmt.Errorf("%s run: %w", t, err)
			}
			logger.Info("run finished", "outcome", r.Outcome, "waves", r.WavesCompleted, "time", r.Time)
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := yaml.NewEncoder(os.Stdout)
	defer out.Close()
	return out.Encode(map[string]any{
		"level":   engine.Level().Name,
		"reports": reports,
	})
}
