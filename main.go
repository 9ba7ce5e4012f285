package main

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/prefabs"
	"github.com/spf13/cobra"
)

type options struct {
	level   string
	config  string
	prefabs string
	debug   bool
	watch   bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "platformer",
		Short:         "Tile-based 2D platformer prototype",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.level, "level", "", "path to a Tiled JSON map (embedded map when empty)")
	flags.StringVar(&opts.config, "config", "", "path to a game settings YAML (embedded game.yaml when empty)")
	flags.StringVar(&opts.prefabs, "prefabs", prefabs.Dir, "directory whose YAML files override the embedded prefabs")
	flags.BoolVar(&opts.debug, "debug", false, "draw collision overlay and log at debug level")
	flags.BoolVar(&opts.watch, "watch", false, "reload player.yaml when it changes on disk")
	return cmd
}

func run(opts options) error {
	if opts.debug {
		log.SetLevel(log.DebugLevel)
	}
	prefabs.Dir = opts.prefabs

	game, err := NewGame(opts)
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowTitle(game.spec.Title)
	ebiten.SetWindowSize(game.spec.Screen.Width, game.spec.Screen.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(game.spec.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	log.SetReportTimestamp(true)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal("platformer", "err", err)
	}
}
