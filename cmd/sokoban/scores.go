package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/registry"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	flagSession string
	flagClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [pack]",
	Short: "Show records for a pack",
	Long: `Display the best completion of every solved level in a pack, plus the
best runs.

With --session, lists the levels solved in one SSH session instead.
With --clear, deletes every record of the pack.

Examples:
  sokoban scores
  sokoban scores tutorial
  sokoban scores --session 0b6f3c1e-...
  sokoban scores tutorial --clear`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completePackIDs,
	RunE:              runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagSession, "session", "", "Show the completions of one SSH session")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all records of the pack")
}

func runScores(_ *cobra.Command, args []string) error {
	if flagSession != "" {
		return runSessionScores(flagSession)
	}

	packID := cfg.Levels.Pack
	if len(args) == 1 {
		packID = args[0]
	}

	game, err := registry.Create(packID)
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("unknown pack %q, run 'sokoban list' to see available packs", packID)
	}
	if err != nil {
		return err
	}

	store, err := storage.Open(dbPath())
	if err != nil {
		return fmt.Errorf("cannot open records database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearPack(packID); err != nil {
			return err
		}
		fmt.Printf("Records of %s cleared.\n", game.Title())
		return nil
	}

	best, err := store.BestCompletions(packID)
	if err != nil {
		return err
	}
	stats, err := store.GetPackStats(packID)
	if err != nil {
		return err
	}

	fmt.Printf("Records - %s\n", game.Title())
	fmt.Println()

	if len(best) == 0 {
		fmt.Println("No levels solved yet.")
		fmt.Println()
		fmt.Printf("Play 'sokoban play %s' to set the first record!\n", packID)
		return nil
	}

	fmt.Printf("  %-4s  %-20s  %6s  %6s  %8s  %s\n", "Lvl", "Name", "Moves", "Pushes", "Time", "Date")
	fmt.Printf("  %-4s  %-20s  %6s  %6s  %8s  %s\n", "---", "----", "-----", "------", "----", "----")

	for _, c := range best {
		fmt.Printf("  %-4d  %-20s  %6d  %6d  %8s  %s\n",
			c.Level, c.LevelName, c.Moves, c.Pushes,
			c.Duration.Round(100*time.Millisecond), c.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Solved: %d  Runs: %d  Best run: %d levels\n", stats.Solved, stats.Runs, stats.HighScore)

	if top, err := store.TopScores(packID, 5); err == nil && len(top) > 0 {
		fmt.Println()
		fmt.Println("Best runs:")
		for i, entry := range top {
			fmt.Printf("  %d. %d levels  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
	return nil
}

// runSessionScores prints the most recent completions of one SSH session.
func runSessionScores(id string) error {
	store, err := storage.Open(dbPath())
	if err != nil {
		return fmt.Errorf("cannot open records database: %w", err)
	}
	defer store.Close()

	list, err := store.SessionCompletions(id, 50)
	if err != nil {
		return err
	}

	fmt.Printf("Session %s\n", id)
	fmt.Println()
	if len(list) == 0 {
		fmt.Println("No levels solved in this session.")
		return nil
	}

	fmt.Printf("  %-12s  %-20s  %6s  %6s  %s\n", "Level", "Name", "Moves", "Pushes", "Date")
	for _, c := range list {
		ref := fmt.Sprintf("%s:%d", c.Pack, c.Level)
		fmt.Printf("  %-12s  %-20s  %6d  %6d  %s\n",
			ref, c.LevelName, c.Moves, c.Pushes, c.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
