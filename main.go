package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flapper/common"
	"github.com/milk9111/flapper/config"
	"github.com/milk9111/flapper/ecs/entity"
	"github.com/milk9111/flapper/ecs/system"
	"github.com/milk9111/flapper/prefabs"
	"github.com/milk9111/flapper/scene"
	"github.com/milk9111/flapper/sim"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "flapper",
	Short: "flapper - a side-scrolling flappy bird",
	Long:  `flapper flies a bird across an endless side-scroller. Arrow keys flap, Backspace ends the run, Escape quits.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./.flapper.yaml or $HOME/.flapper.yaml)")
	rootCmd.PersistentFlags().String("controller", "kinematic", "player controller: kinematic or rigid")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("prefabs", "prefabs", "directory checked for prefab overrides")
	for key, flag := range map[string]string{
		"controller":  "controller",
		"log.level":   "log-level",
		"prefabs.dir": "prefabs",
	} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			log.Fatalf("main: bind flag %s: %v", flag, err)
		}
	}

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Open the game window (default)",
		RunE:  runPlay,
	}

	simCmd := &cobra.Command{
		Use:   "sim",
		Short: "Run one headless run and print the player's motion",
		Long:  `sim plays one run without a window. Held keys come from a tengo script defining keys(tick) or from --hold.`,
		RunE:  runSim,
	}
	simCmd.Flags().Int("ticks", 300, "number of fixed steps to simulate")
	simCmd.Flags().Int("every", 10, "print one row every N ticks")
	simCmd.Flags().String("script", "", "tengo keys script (name under prefabs/scripts or a path)")
	simCmd.Flags().String("hold", "", "keys held every tick, e.g. up,right")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}

func setup() error {
	if err := config.InitConfig(cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if _, err := common.SetupLogger(cfg.Log.Level, cfg.Log.Development); err != nil {
		return err
	}
	prefabs.Dir = cfg.Prefabs.Dir
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	game, err := NewGame(cfg)
	if err != nil {
		return err
	}
	defer game.Close()

	return ebiten.RunGame(game)
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	controller, err := entity.ParseController(cfg.Controller)
	if err != nil {
		return err
	}

	ticks, _ := cmd.Flags().GetInt("ticks")
	every, _ := cmd.Flags().GetInt("every")
	scriptName, _ := cmd.Flags().GetString("script")
	hold, _ := cmd.Flags().GetString("hold")

	var keys system.KeySource
	switch {
	case scriptName != "" && hold != "":
		return fmt.Errorf("sim: --script and --hold are exclusive")
	case scriptName != "":
		src, err := prefabs.LoadScript(scriptName)
		if err != nil {
			return err
		}
		if keys, err = sim.NewScriptKeys(src); err != nil {
			return err
		}
	default:
		if keys, err = sim.ParseHold(hold); err != nil {
			return err
		}
	}

	res, err := sim.Run(scene.Config{
		Controller: controller,
		Tick:       cfg.TickDuration(),
		Gravity:    cfg.Physics.Gravity,
		Logger:     common.Logger(),
	}, keys, sim.Options{Ticks: ticks, Every: every})
	if err != nil {
		return err
	}
	res.Render(cmd.OutOrStdout())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
