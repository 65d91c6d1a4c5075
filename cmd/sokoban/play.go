package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a pack",
	Long: `Start playing the given pack, or the configured default pack.

Controls:
  Arrows/WASD/hjkl - Move and push
  R                - Restart the level (the run, after the pack is complete)
  N/Enter          - Next level once solved
  P                - Pause
  B/Esc            - Leave (while paused)
  Ctrl+S           - Save a screenshot to ~/.sokoban/screenshots
  Q/Ctrl+C         - Quit

Examples:
  sokoban play
  sokoban play tutorial
  sokoban play classic --level 5
  sokoban play classic --speed turbo`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completePackIDs,
	RunE:              runPlay,
}

func init() {
	playCmd.Flags().IntVarP(&flagLevel, "level", "l", 0, "1-based level to start from")
}

func runPlay(_ *cobra.Command, args []string) error {
	packID := cfg.Levels.Pack
	if len(args) == 1 {
		packID = args[0]
	}

	game, err := registry.CreateAt(packID, flagLevel)
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("unknown pack %q, run 'sokoban list' to see available packs", packID)
	}
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting game", "pack", packID, "level", flagLevel)
	return tui.Run(game, store, runtimeConfig(), logger)
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}
