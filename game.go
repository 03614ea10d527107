package main

import (
	"errors"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flapper/common"
	"github.com/milk9111/flapper/config"
	"github.com/milk9111/flapper/ecs/entity"
	"github.com/milk9111/flapper/ecs/render"
	"github.com/milk9111/flapper/ecs/system"
	"github.com/milk9111/flapper/prefabs"
	"github.com/milk9111/flapper/scene"
	"github.com/milk9111/flapper/session"
)

var skyColor = color.NRGBA{R: 0x70, G: 0xc5, B: 0xce, A: 0xff}

type Game struct {
	director *scene.Director
	watcher  *prefabs.Watcher
}

func NewGame(cfg *config.Config) (*Game, error) {
	controller, err := entity.ParseController(cfg.Controller)
	if err != nil {
		return nil, err
	}

	director, err := scene.NewDirector(scene.Config{
		Controller: controller,
		Tick:       cfg.TickDuration(),
		Gravity:    cfg.Physics.Gravity,
		Images:     render.NewImageCache(nil).Load,
		Menu:       NewMenuUI,
		Logger:     common.Logger(),
	}, system.Keyboard{})
	if err != nil {
		return nil, err
	}

	g := &Game{director: director}
	if cfg.Prefabs.HotReload {
		if _, err := os.Stat(prefabs.Dir); err == nil {
			watcher, err := prefabs.NewWatcher(prefabs.Dir)
			if err != nil {
				log.Printf("game: prefab hot reload disabled: %v", err)
			} else {
				g.watcher = watcher
			}
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.watcher != nil {
		for _, name := range g.watcher.Drain() {
			g.director.NotifyPrefabChanged(name)
		}
		select {
		case err := <-g.watcher.Errors:
			log.Printf("game: prefab watcher: %v", err)
		default:
		}
	}

	if g.director.Mode() == session.ModeMenu {
		if ui := g.director.MenuUI(); ui != nil {
			ui.Update()
		}
	}

	if err := g.director.Tick(); err != nil {
		if errors.Is(err, scene.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	g.director.Scheduler().Draw(g.director.World(), screen)

	if ui := g.director.MenuUI(); ui != nil {
		ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
