package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/actor"
	"github.com/milk9111/platformer/camera"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

type Game struct {
	spec  *prefabs.GameSpec
	debug bool

	scene    *actor.Scene
	clock    actor.Clock
	player   *obj.Player
	keyboard *obj.Keyboard
	level    *obj.Level
	camera   *camera.Camera

	watcher *prefabs.Watcher
	stamps  prefabs.Stamps

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
}

// NewGame loads settings, map and player, and builds the scene. Any load
// failure is returned before the window opens.
func NewGame(opts options) (*Game, error) {
	spec, err := prefabs.LoadGameSpec(opts.config)
	if err != nil {
		return nil, err
	}

	m, err := levels.LoadMap(opts.level)
	if err != nil {
		return nil, err
	}
	grid, err := levels.BuildGrid(m, spec.CollisionLayers...)
	if err != nil {
		return nil, fmt.Errorf("levels: build grid: %w", err)
	}

	ps, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	kb, err := obj.NewKeyboard(ps.Keys.Bindings())
	if err != nil {
		return nil, err
	}

	a := actor.New(ps.Name, ps.Spawn(), ps.Box(), ps.Tuning())
	scene := actor.NewScene(grid)
	scene.Add(a, kb)

	cam := camera.New(spec.Screen.Width, spec.Screen.Height, spec.Camera.Zoom)
	cam.SetSmooth(spec.Camera.Smoothness)
	cam.SetWorldBounds(grid.Size())
	center := a.Center()
	cam.SnapTo(center.X, center.Y)

	g := &Game{
		spec:     spec,
		debug:    opts.debug,
		scene:    scene,
		clock:    obj.FixedClock{},
		player:   obj.NewPlayer(a, ps.Sprite),
		keyboard: kb,
		level:    obj.NewLevel(m),
		camera:   cam,
		stamps:   prefabs.Stamps{},
	}
	g.stamps.Changed(prefabs.PlayerFile)
	g.pauseUI = NewPauseUI(g)

	if opts.watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Warn("prefab watch disabled", "dir", prefabs.Dir, "err", err)
		} else {
			g.watcher = w
		}
	}

	log.Info("game ready", "actor", ps.Name, "spawn", ps.Spawn(), "tps", spec.TPS)
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.reloadPrefabs()

	g.scene.Update(g.clock)
	g.player.Update()

	center := g.player.Actor.Center()
	g.camera.Update(center.X, center.Y)
	return nil
}

func (g *Game) reloadPrefabs() {
	for _, name := range g.watcher.Poll() {
		if name != prefabs.PlayerFile {
			log.Info("prefab changed, restart to apply", "file", name)
			continue
		}
		if !g.stamps.Changed(name) {
			continue
		}
		ps, err := prefabs.LoadPlayerSpec()
		if err != nil {
			log.Error("prefab reload failed", "file", name, "err", err)
			continue
		}
		g.player.Actor.SetTuning(ps.Tuning())
		g.player.SetSprite(ps.Sprite)
		log.Info("prefab reloaded", "file", name, "tuning", fmt.Sprintf("%+v", ps.Tuning()))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.spec.ClearColor.Or(colornames.Black))

	g.level.Draw(screen, g.camera)
	g.player.Draw(screen, g.camera)

	if g.debug {
		obj.DrawGrid(screen, g.scene.Grid(), g.camera)
		for _, a := range g.scene.Actors() {
			obj.DrawActorBox(screen, a, g.camera)
		}
		obj.DrawHUD(screen, g.player.Actor, g.scene.Ticks())
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Screen.Width, g.spec.Screen.Height
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Warn("close prefab watcher", "err", err)
		}
	}
}
