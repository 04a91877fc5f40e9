package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/dashrunner/assets"
	"github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/fonts"
	"github.com/automoto/dashrunner/scenes"
	"github.com/automoto/dashrunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	watcher *assets.Watcher
}

func NewGame(watcher *assets.Watcher) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds:  image.Rectangle{},
		watcher: watcher,
	}
	g.scene = scenes.NewRunScene(newLoader())
	return g
}

// newLoader reads from disk when an assets directory was given.
func newLoader() *assets.Loader {
	if config.Debug.AssetsDir != "" {
		return assets.NewLoader(os.DirFS(config.Debug.AssetsDir))
	}
	return assets.NewLoader(assets.Embedded())
}

func (g *Game) Update() error {
	g.reloadOnChange()
	g.scene.Update()
	return nil
}

// reloadOnChange restarts the scene with fresh data after an edit on disk.
func (g *Game) reloadOnChange() {
	if g.watcher == nil {
		return
	}
	select {
	case name := <-g.watcher.Events:
		log.Printf("Reloading after change to %s", name)
		systems.ResetFrameCache()
		g.scene = scenes.NewRunScene(newLoader())
	case err := <-g.watcher.Errors:
		log.Printf("Warning: asset watcher: %v", err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.Debug.Archetype, "archetype", config.Debug.Archetype, "Character archetype under data/archetypes")
	flag.StringVar(&config.Debug.Level, "level", config.Debug.Level, "Level under levels/")
	flag.StringVar(&config.Debug.AssetsDir, "assets", "", "Load assets from this directory and reload on change")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "Show the state overlay")
	flag.Parse()

	var watcher *assets.Watcher
	if config.Debug.AssetsDir != "" {
		w, err := assets.NewWatcher(config.Debug.AssetsDir)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", config.Debug.AssetsDir, err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("dashrunner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(watcher)); err != nil {
		log.Fatal(err)
	}
}
