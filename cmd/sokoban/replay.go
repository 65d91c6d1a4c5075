package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

var (
	flagFileLevel int
	flagTrace     bool
)

// errNotSolved is returned when a replay leaves the level unsolved.
var errNotSolved = errors.New("level not solved")

var replayCmd = &cobra.Command{
	Use:   "replay <file|pack[:level]> <moves>",
	Short: "Replay a move string against a level",
	Long: `Play a LURD move string (u, d, l, r; case is ignored) against a level
and report the result. Exits with an error when the level is not solved.

Examples:
  sokoban replay tutorial:3 dlluurRRdrUddlllUUruL
  sokoban replay ./my-pack.yaml rrRR --level 2 --trace`,
	Args: cobra.ExactArgs(2),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().IntVarP(&flagFileLevel, "level", "l", 1, "1-based level when replaying a file")
	replayCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print every move")
}

func runReplay(_ *cobra.Command, args []string) error {
	lvl, err := resolveLevel(args[0])
	if err != nil {
		return err
	}

	res, err := sokoban.Replay(lvl, arena(), args[1])
	if err != nil {
		return fmt.Errorf("%s: %w", lvl.Ref(), err)
	}

	if flagTrace {
		for i, m := range res.Moves {
			fmt.Printf("%4d  %-5s  %-16s  %v -> %v\n", i+1, m.Dir, m.Outcome, m.From, m.To)
		}
		fmt.Println()
	}

	f := res.Final
	fmt.Printf("%s  %s\n", lvl.Ref(), lvl.Title())
	fmt.Printf("moves %d  pushes %d  rejected %d  goals %d/%d\n",
		f.Moves, f.Pushes, res.Rejected, f.OnGoals, len(f.Boxes))

	if !f.Solved {
		return errNotSolved
	}
	fmt.Println("solved")
	return nil
}
