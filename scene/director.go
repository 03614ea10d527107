package scene

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/milk9111/flapper/common"
	"github.com/milk9111/flapper/ecs"
	"github.com/milk9111/flapper/ecs/component"
	"github.com/milk9111/flapper/ecs/entity"
	"github.com/milk9111/flapper/ecs/system"
	"github.com/milk9111/flapper/prefabs"
	"github.com/milk9111/flapper/session"
	"go.uber.org/zap"
)

var (
	// ErrQuit is returned from Tick when the quit key was pressed.
	ErrQuit = errors.New("scene: quit requested")
	// ErrPlayerMissing means Playing was left without a player to score.
	ErrPlayerMissing = errors.New("scene: player missing")
)

// MenuFactory builds the menu widget tree for the current scores. start is
// called by the start button; it only queues the transition.
type MenuFactory func(board session.Scoreboard, start func()) *ebitenui.UI

type Config struct {
	Controller entity.Controller
	// Tick is the simulated time of one Tick call.
	Tick time.Duration
	// Gravity pulls rigid bodies down, in physics units per second squared.
	Gravity float64
	Images  entity.ImageLoader
	Menu    MenuFactory
	Logger  *zap.SugaredLogger

	// Specs override the prefab files when set.
	Player   *prefabs.PlayerSpec
	Camera   *prefabs.CameraSpec
	Platform *prefabs.PlatformSpec
}

// Director owns the world and the session. It runs the Playing systems,
// spawns and despawns mode-scoped entities on mode changes and records the
// score when a run ends.
type Director struct {
	cfg       Config
	world     *ecs.World
	machine   *session.Machine
	board     session.Scoreboard
	scheduler *ecs.Scheduler
	input     *system.InputSystem
	keys      system.KeySource
	log       *zap.SugaredLogger

	startRequested bool
}

func NewDirector(cfg Config, keys system.KeySource) (*Director, error) {
	if keys == nil {
		return nil, fmt.Errorf("scene: nil key source")
	}
	if cfg.Controller == "" {
		cfg.Controller = entity.ControllerKinematic
	}
	if cfg.Tick <= 0 {
		cfg.Tick = common.TickDuration
	}
	if cfg.Gravity == 0 {
		cfg.Gravity = 9.8
	}
	logger := cfg.Logger
	if logger == nil {
		logger = common.Logger()
	}

	d := &Director{
		cfg:     cfg,
		world:   ecs.NewWorld(),
		machine: session.NewMachine(session.ModeMenu),
		input:   system.NewInputSystem(),
		keys:    keys,
		log:     logger.With("component", "director"),
	}
	d.scheduler = d.buildScheduler()

	d.machine.OnEnter(session.ModeMenu, d.enterMenu)
	d.machine.OnExit(session.ModeMenu, d.exitMenu)
	d.machine.OnEnter(session.ModePlaying, d.enterPlaying)
	d.machine.OnExit(session.ModePlaying, d.exitPlaying)

	if err := d.machine.Start(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Director) buildScheduler() *ecs.Scheduler {
	s := ecs.NewScheduler().Add("input", d.input)
	switch d.cfg.Controller {
	case entity.ControllerRigid:
		s.Add("rigid_body", system.NewRigidBodySystem(d.cfg.Gravity, d.cfg.Tick))
	default:
		s.Add("motion", system.NewMotionSystem()).
			Add("physics", system.NewPhysicsSystem())
	}
	return s.Add("behavior", system.NewBehaviorSystem()).
		Add("animation", system.NewAnimationSystem()).
		Add("camera", system.NewCameraSystem()).
		Add("render", system.NewRenderSystem())
}

// Tick runs one fixed step: poll keys, apply a queued start, run the
// Playing systems and handle the events they raised.
func (d *Director) Tick() error {
	in := d.keys.Poll()
	if in.Quit {
		return ErrQuit
	}

	if d.startRequested {
		d.startRequested = false
		if d.machine.Current() == session.ModeMenu {
			if err := d.StartGame(); err != nil {
				return err
			}
		}
	}

	d.world.SetDelta(d.cfg.Tick)
	d.input.Set(in)
	if d.machine.Current() == session.ModePlaying {
		d.scheduler.Update(d.world)
	}

	return d.handleEvents()
}

func (d *Director) handleEvents() error {
	for _, evt := range d.world.Events().Drain() {
		switch evt.Kind {
		case ecs.EventEndGame:
			if d.machine.Current() != session.ModePlaying {
				continue
			}
			if err := d.EndGame(); err != nil {
				return err
			}
		case ecs.EventPrefabChanged:
			name, _ := evt.Data.(string)
			d.reloadPrefab(name)
		}
	}
	return nil
}

func (d *Director) reloadPrefab(name string) {
	if name != prefabs.PlayerFile || d.cfg.Player != nil {
		return
	}
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Printf("scene: reload %s: %v", name, err)
		return
	}
	n := entity.ReloadMotion(d.world, spec.Motion)
	d.log.Infow("reloaded motion tuning", "file", name, "players", n)
}

// NotifyPrefabChanged queues a reload of a changed prefab file.
func (d *Director) NotifyPrefabChanged(name string) {
	d.world.Events().Push(ecs.Event{Kind: ecs.EventPrefabChanged, Data: name})
}

// RequestStart queues Menu -> Playing for the next Tick.
func (d *Director) RequestStart() {
	d.startRequested = true
}

func (d *Director) StartGame() error {
	return d.machine.Set(session.ModePlaying)
}

// EndGame leaves Playing, recording the score.
func (d *Director) EndGame() error {
	return d.machine.Set(session.ModeMenu)
}

func (d *Director) enterMenu() error {
	var ui *ebitenui.UI
	if d.cfg.Menu != nil {
		ui = d.cfg.Menu(d.board, d.RequestStart)
	}
	if _, err := entity.NewMenuRoot(d.world, ui); err != nil {
		return err
	}
	d.log.Debugw("menu shown", "score", d.board.Score, "high_score", d.board.HighScore)
	return nil
}

func (d *Director) exitMenu() error {
	entity.DespawnMenu(d.world)
	return nil
}

func (d *Director) enterPlaying() error {
	playerSpec, cameraSpec, platformSpec, err := d.specs()
	if err != nil {
		return err
	}

	opts := entity.Options{
		Images:     d.cfg.Images,
		Controller: d.cfg.Controller,
		Scope:      session.ModePlaying,
	}
	if _, err := entity.NewCamera(d.world, cameraSpec, opts); err != nil {
		return err
	}
	if _, err := entity.NewPlayer(d.world, playerSpec, opts); err != nil {
		return err
	}
	if _, err := entity.NewPlatform(d.world, platformSpec, opts); err != nil {
		return err
	}
	d.log.Infow("run started", "controller", d.cfg.Controller)
	return nil
}

func (d *Director) exitPlaying() error {
	player, ok := d.world.First(component.PlayerTagComponent.Kind())
	if !ok {
		return ErrPlayerMissing
	}
	kin, ok := ecs.Get(d.world, player, component.KinematicComponent.Kind())
	if !ok {
		return ErrPlayerMissing
	}
	d.board.Record(kin.Position.X)
	entity.DespawnScoped(d.world, session.ModePlaying)
	d.log.Infow("run ended", "score", d.board.Score, "high_score", d.board.HighScore)
	return nil
}

func (d *Director) specs() (*prefabs.PlayerSpec, *prefabs.CameraSpec, *prefabs.PlatformSpec, error) {
	var err error
	playerSpec := d.cfg.Player
	if playerSpec == nil {
		if playerSpec, err = prefabs.LoadPlayerSpec(); err != nil {
			return nil, nil, nil, err
		}
	}
	cameraSpec := d.cfg.Camera
	if cameraSpec == nil {
		if cameraSpec, err = prefabs.LoadCameraSpec(); err != nil {
			return nil, nil, nil, err
		}
	}
	platformSpec := d.cfg.Platform
	if platformSpec == nil {
		if platformSpec, err = prefabs.LoadPlatformSpec(); err != nil {
			return nil, nil, nil, err
		}
	}
	return playerSpec, cameraSpec, platformSpec, nil
}

func (d *Director) World() *ecs.World {
	return d.world
}

func (d *Director) Scheduler() *ecs.Scheduler {
	return d.scheduler
}

func (d *Director) Mode() session.Mode {
	return d.machine.Current()
}

func (d *Director) Scoreboard() session.Scoreboard {
	return d.board
}

// Player returns the live player entity, if a run is in progress.
func (d *Director) Player() (ecs.Entity, bool) {
	return d.world.First(component.PlayerTagComponent.Kind())
}

// MenuUI returns the widget tree of the live menu root.
func (d *Director) MenuUI() *ebitenui.UI {
	root, ok := d.world.First(component.MenuRootComponent.Kind())
	if !ok {
		return nil
	}
	menu, ok := ecs.Get(d.world, root, component.MenuRootComponent.Kind())
	if !ok {
		return nil
	}
	return menu.UI
}
