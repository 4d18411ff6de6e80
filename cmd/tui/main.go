// cmd/tui/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"bastion-defense/internal/app"
	"bastion-defense/internal/component"
	"bastion-defense/internal/config"
	"bastion-defense/internal/defs"
	"bastion-defense/internal/fx"
	"bastion-defense/internal/utils"
	"bastion-defense/pkg/geom"
)

const (
	cellsPerTile = 2 // символ вдвое уже, чем высота
	fieldTop     = 3
	fieldLeft    = 1
	frameMs      = 16
)

var enemyRunes = map[defs.EnemyType]rune{
	defs.EnemyShambler: 's',
	defs.EnemyRunner:   'r',
	defs.EnemyBrute:    'b',
	defs.EnemySpitter:  'p',
	defs.EnemyBehemoth: 'B',
}

var towerRunes = map[defs.TowerType]rune{
	defs.TowerGatling: 'G',
	defs.TowerCannon:  'C',
	defs.TowerTesla:   'T',
}

type Game struct {
	screen   tcell.Screen
	session  *app.Session
	effects  *fx.Layer
	log      *slog.Logger
	pathCell map[[2]int]bool
	selected int // индекс в level.Spots
	message  string
	lastTick time.Time
}

func NewGame(session *app.Session, logger *slog.Logger, seed int64) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	g := &Game{
		screen:   screen,
		session:  session,
		effects:  fx.NewLayer(utils.NewPRNGService(seed)),
		log:      logger,
		pathCell: make(map[[2]int]bool),
		lastTick: time.Now(),
	}
	g.tracePath()
	return g, nil
}

// tracePath отмечает клетки, через которые идёт маршрут.
func (g *Game) tracePath() {
	path := g.session.Engine().Level().Path
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		steps := int(geom.Dist(a, b)*4) + 1
		for s := 0; s <= steps; s++ {
			p := a.Add(b.Sub(a).Scale(float64(s) / float64(steps)))
			x, y := cell(p)
			g.pathCell[[2]int{x, y}] = true
		}
	}
}

func cell(p geom.Vec2) (int, int) {
	return fieldLeft + int(p.X*cellsPerTile), fieldTop + int(p.Y)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (g *Game) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (g *Game) draw() {
	g.screen.Clear()
	st := g.session.State()
	level := g.session.Engine().Level()
	bg := tcell.StyleDefault.Background(rgb(config.BackgroundColor))

	// поле
	for y := 0; y < level.Height; y++ {
		for x := 0; x < level.Width*cellsPerTile; x++ {
			g.screen.SetContent(fieldLeft+x, fieldTop+y, ' ', nil, bg)
		}
	}
	for c := range g.pathCell {
		g.screen.SetContent(c[0], c[1], '·', nil, bg.Foreground(rgb(config.PathColor)))
	}
	bx, by := cell(level.Path[len(level.Path)-1])
	g.screen.SetContent(bx-1, by, '#', nil, bg.Foreground(rgb(config.BastionColor)))

	for i, spot := range level.Spots {
		x, y := cell(spot.Pos)
		style := bg.Foreground(rgb(config.SpotColor))
		if i == g.selected {
			style = style.Reverse(true)
		}
		if t, ok := st.TowerAtSpot(spot.ID); ok {
			style = style.Foreground(rgb(config.TowerColors[t.Type]))
			g.screen.SetContent(x, y, towerRunes[t.Type], nil, style)
			g.screen.SetContent(x+1, y, rune('0'+t.Level), nil, style)
			continue
		}
		g.drawText(x, y, fmt.Sprintf("%-2d", spot.ID), style)
	}

	for _, p := range st.Projectiles {
		x, y := cell(p.Pos)
		g.screen.SetContent(x, y, '*', nil, bg.Foreground(rgb(config.ProjectileColor)))
	}
	for _, e := range st.Enemies {
		x, y := cell(e.Pos)
		style := bg.Foreground(rgb(config.EnemyColors[e.Type]))
		if e.Health*2 < e.MaxHealth {
			style = style.Bold(true)
		}
		g.screen.SetContent(x, y, enemyRunes[e.Type], nil, style)
	}
	for _, p := range g.effects.Particles() {
		x, y := cell(p.Pos)
		g.screen.SetContent(x, y, '.', nil, bg.Foreground(rgb(p.Color)))
	}
	for _, t := range g.effects.Texts() {
		x, y := cell(t.Position())
		g.drawText(x, y, t.Text, bg.Foreground(rgb(t.Color)))
	}

	g.drawHUD()
	g.screen.Show()
}

func (g *Game) drawHUD() {
	st := g.session.State()
	level := g.session.Engine().Level()
	light := tcell.StyleDefault.Foreground(rgb(config.TextLightColor))

	speed := "x1"
	if st.Speed > 1 {
		speed = "x2"
	}
	status := st.Phase.String()
	if st.Paused {
		status += " (paused)"
	}
	if st.Phase == component.PhaseBetweenWaves {
		status += fmt.Sprintf(" next in %.0fs", st.Countdown)
	}
	wave := min(st.CurrentWave, level.TotalWaves())
	g.drawText(fieldLeft, 0, fmt.Sprintf("%s  wave %d/%d  scrap %d  hull %d/%d  %s  %s",
		level.Name, wave, level.TotalWaves(), st.Scrap, st.Hull, level.StartHull, speed, status), light)
	g.drawText(fieldLeft, 1, "space start  p pause  f speed  r reset  tab spot  1-3 build  u upgrade  x sell  q quit", light.Dim(true))

	bottom := fieldTop + level.Height + 1
	if g.message != "" {
		g.drawText(fieldLeft, bottom, g.message, tcell.StyleDefault.Foreground(rgb(config.DamageTextColor)))
	}
	if st.Phase.Terminal() {
		g.drawText(fieldLeft, bottom+1, fmt.Sprintf("%s: %d waves, %d killed, %d breaches. r to restart",
			st.Phase, st.Stats.WavesCompleted, st.Stats.ZombiesKilled, st.Stats.Breaches), light.Bold(true))
	}
}

func (g *Game) selectedSpot() int {
	spots := g.session.Engine().Level().Spots
	if len(spots) == 0 {
		return -1
	}
	return spots[g.selected%len(spots)].ID
}

func (g *Game) report(err error, ok string) {
	if err == nil {
		g.message = ok
		return
	}
	switch {
	case errors.Is(err, app.ErrInsufficientScrap):
		g.message = "not enough scrap"
	case errors.Is(err, app.ErrMaxLevel):
		g.message = "max level"
	default:
		g.message = err.Error()
	}
	g.log.Debug("tower action rejected", "err", err)
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyTab {
			g.selected = (g.selected + 1) % max(1, len(g.session.Engine().Level().Spots))
			return true
		}
		if ev.Key() == tcell.KeyBacktab {
			n := max(1, len(g.session.Engine().Level().Spots))
			g.selected = (g.selected + n - 1) % n
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			g.session.StartWave()
		case 'p':
			g.session.TogglePause()
		case 'f':
			g.session.ToggleSpeed()
		case 'r':
			g.session.Reset()
			g.effects.Clear()
			g.message = ""
		case '1', '2', '3':
			t := defs.TowerTypes()[ev.Rune()-'1']
			_, err := g.session.BuildTower(g.selectedSpot(), t)
			g.report(err, fmt.Sprintf("%s built", t))
		case 'u':
			st := g.session.State()
			if t, ok := st.TowerAtSpot(g.selectedSpot()); ok {
				g.report(g.session.UpgradeTower(t.ID), "upgraded")
			}
		case 'x':
			st := g.session.State()
			if t, ok := st.TowerAtSpot(g.selectedSpot()); ok {
				refund, err := g.session.SellTower(t.ID)
				g.report(err, fmt.Sprintf("sold for %d", refund))
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) tick() {
	now := time.Now()
	dt := now.Sub(g.lastTick).Seconds()
	g.lastTick = now

	out := g.session.Update(dt)
	g.effects.Push(out.Feedback)
	if !g.session.IsPaused() {
		g.effects.Update(dt)
	}
}

func (g *Game) run() {
	ticker := time.NewTicker(frameMs * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.tick()
			g.draw()
		}
	}
}

func main() {
	levelPath := flag.String("level", "", "level YAML file (default: built-in Outpost)")
	catalogPath := flag.String("catalog", "", "enemy/tower stat overrides YAML")
	logFile := flag.String("log", "", "log file; the terminal is taken by the game")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	seed := flag.Int64("seed", 0, "seed for visual effects, 0 = time based")
	flag.Parse()

	logger := slog.New(slog.DiscardHandler)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "opening log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = config.NewLogger(f, *logLevel)
	}

	engine, err := app.LoadEngine(*levelPath, *catalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	game, err := NewGame(app.NewSession(engine, logger), logger, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.screen.Fini()

	game.run()
}
