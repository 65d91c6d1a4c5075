package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick packs and levels from a menu",
	Long: `Start in interactive menu mode.

Choose a pack, then a level (or start from the beginning). Leaving a game
returns to the menu. Tab opens the records screen.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Esc          - Back to packs
  Tab          - Records
  Q            - Quit

Examples:
  sokoban menu
  sokoban menu --fps 30
  sokoban menu --db ./records.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	rc := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, rc)
		if err != nil {
			return err
		}

		// Keep any size changes
		rc = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if err != nil {
				logger.Error("records screen failed", "error", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.CreateAt(menuResult.GameID, menuResult.Level)
		if err != nil {
			logger.Error("cannot start pack", "pack", menuResult.GameID, "level", menuResult.Level, "error", err)
			continue
		}

		if err := tui.Run(game, store, rc, logger); err != nil {
			logger.Error("game failed", "error", err)
		}
	}
}
