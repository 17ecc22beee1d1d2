package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"

	"rpg-world/internal/config"
	"rpg-world/internal/engine"
	"rpg-world/internal/render"
	"rpg-world/internal/version"
	"rpg-world/pkg/logger"
)

// layout - раскладка окон: сверху заголовок, под ним карта, ниже журнал,
// справа статистика. Окна растягиваются под карту, если она больше 80x48.
type layout struct {
	width    int // ширина левой колонки (заголовок, карта, журнал)
	mapY     int
	mapH     int
	messageY int
	statX    int
}

func layoutFor(mapW, mapH int) layout {
	width := max(render.MapWidth, mapW)
	mapY := render.InventoryHeight
	mapH = max(render.MapHeight, mapH)
	return layout{
		width:    width,
		mapY:     mapY,
		mapH:     mapH,
		messageY: mapY + mapH,
		statX:    width,
	}
}

func main() {
	var seed int64
	flag.Int64Var(&seed, "seed", 0, "World seed (0 to use RPG_SEED or a random one)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	// Терминал занят картой, логи не печатаем
	logger.InitWith(cfg.LogLevel, cfg.LogFormat, io.Discard)

	game, err := engine.NewGame(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create game:", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create screen:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init screen:", err)
		os.Exit(1)
	}
	defer screen.Fini()

	run(screen, game, cfg.Seed)
}

func run(screen tcell.Screen, game *engine.Game, seed int64) {
	v := newView(screen, layoutFor(game.Map.Width(), game.Map.Height()))
	v.draw(game, seed)
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			v.draw(game, seed)
		case *tcell.EventKey:
			if quit := handleKey(game, ev.Key(), ev.Rune()); quit {
				return
			}
			v.draw(game, seed)
		case nil:
			return
		}
	}
}

// view - окна одного экрана
type view struct {
	screen                           tcell.Screen
	layout                           layout
	header, mapView, messages, stats *render.ScreenSurface
}

func newView(screen tcell.Screen, l layout) *view {
	return &view{
		screen:   screen,
		layout:   l,
		header:   render.NewScreenSurface(screen, 0, 0, l.width, render.InventoryHeight),
		mapView:  render.NewScreenSurface(screen, 0, l.mapY, l.width, l.mapH),
		messages: render.NewScreenSurface(screen, 0, l.messageY, l.width, render.MessageHeight),
		stats:    render.NewScreenSurface(screen, l.statX, 0, render.StatWidth, max(render.StatHeight, l.messageY+render.MessageHeight)),
	}
}

func (v *view) draw(game *engine.Game, seed int64) {
	for _, s := range []*render.ScreenSurface{v.header, v.mapView, v.messages, v.stats} {
		s.Clear()
	}
	render.Print(v.header, 1, 1, fmt.Sprintf("Level %d   Tick %d", game.Level, game.Tick()), render.TextHeading, render.FloorBackground)
	render.Print(v.header, 1, 3, fmt.Sprintf("Seed %d   %s", seed, version.Short()), render.Text, render.FloorBackground)
	render.Print(v.header, 1, 5, "arrows/hjklyubn: move   .: wait   q: quit", render.Text, render.FloorBackground)

	game.Render(v.mapView, v.stats, v.messages)
	v.screen.Show()
}

// Направления: стрелки и vi-клавиши, диагонали через yubn
var runeDirections = map[rune][2]int{
	'h': {-1, 0}, 'l': {1, 0}, 'k': {0, -1}, 'j': {0, 1},
	'y': {-1, -1}, 'u': {1, -1}, 'b': {-1, 1}, 'n': {1, 1},
}

var keyDirections = map[tcell.Key][2]int{
	tcell.KeyLeft:  {-1, 0},
	tcell.KeyRight: {1, 0},
	tcell.KeyUp:    {0, -1},
	tcell.KeyDown:  {0, 1},
}

func handleKey(game *engine.Game, key tcell.Key, r rune) (quit bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch r {
		case 'q':
			return true
		case '.':
			game.Wait()
		default:
			if d, ok := runeDirections[r]; ok {
				game.MovePlayer(d[0], d[1])
			}
		}
	default:
		if d, ok := keyDirections[key]; ok {
			game.MovePlayer(d[0], d[1])
		}
	}
	return false
}
