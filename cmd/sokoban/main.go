// sokoban is a terminal Sokoban game with level packs, records and an SSH
// server.
//
// Usage:
//
//	sokoban list                   - List available packs
//	sokoban play [pack]            - Play a pack
//	sokoban menu                   - Pick packs and levels interactively
//	sokoban serve                  - Start SSH server for remote play
//	sokoban scores [pack]          - Show records for a pack
//	sokoban inspect <file|ref>     - Show a level's grid, reachability and tile variants
//	sokoban replay <ref> <moves>   - Replay a LURD move string against a level
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--db <path>       - Set database path (default: ~/.sokoban/records.db)
//	--config <path>   - Use a custom config YAML
//	--speed <preset>  - Animation speed: slow, normal, fast, turbo or cells/s
//	--verbose         - Debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagConfig  string
	flagSpeed   string
	flagVerbose bool

	// Set up by the root command before any subcommand runs
	cfg    config.SokobanConfig
	logger *log.Logger
	loader *levels.Loader
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - push boxes onto goals in your terminal",
	Long: `Sokoban is a terminal puzzle game: push every box onto a goal.

Available commands:
  list     - Show all level packs
  play     - Play a pack directly
  menu     - Interactive pack and level picker
  serve    - Start SSH server for remote play
  scores   - View solved levels and best runs
  inspect  - Show a level's grid, reachable area and tile variants
  replay   - Check a move string against a level

Examples:
  sokoban list
  sokoban play classic --level 3
  sokoban menu --speed fast
  sokoban serve --ssh :2222
  sokoban replay tutorial:3 dlluurRRdrUddlllUUruL`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to records database (default ~/.sokoban/records.db)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Animation speed: slow, normal, fast, turbo or cells per second")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(replayCmd)
}

// setup loads configuration, applies flag and environment overrides and
// registers every level pack.
func setup(cmd *cobra.Command, _ []string) error {
	logger = newLogger(os.Stderr, flagVerbose)

	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return err
	}
	if err := applySpeedFlag(&cfg, flagSpeed); err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.Storage.DB = flagDBPath
	}
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}
	logger.Debug("config loaded",
		"arena", fmt.Sprintf("%dx%d", cfg.Arena.Width, cfg.Arena.Height),
		"speed", cfg.Motion.CellsPerSecond,
		"levels", cfg.Levels.Dir,
	)

	tui.SetTheme(tui.ThemeByName(cfg.Render.Theme))

	loader = levels.NewLoader(cfg.Levels.Dir)
	loader.Arena = arena()
	loader.Logger = logger

	packs, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("cannot load level packs: %w", err)
	}
	sokoban.RegisterPacks(packs, gameOptions())
	logger.Debug("packs registered", "count", len(packs))

	return nil
}

// newLogger builds the CLI logger. verbose enables Debug output.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{ReportTimestamp: true, Prefix: "sokoban"})
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// applySpeedFlag accepts a preset name or a positive cells-per-second value.
func applySpeedFlag(c *config.SokobanConfig, v string) error {
	if v == "" {
		return nil
	}
	if _, ok := config.CellsPerSecondForPreset(config.SpeedPreset(v)); ok {
		config.ApplySpeedPreset(c, config.SpeedPreset(v))
		return nil
	}
	cps, err := strconv.ParseFloat(v, 64)
	if err != nil || cps <= 0 {
		return fmt.Errorf("invalid --speed %q: want slow, normal, fast, turbo or a positive number", v)
	}
	c.Motion.Preset = ""
	c.Motion.CellsPerSecond = cps
	return nil
}

func arena() core.Arena {
	return core.Arena{W: cfg.Arena.Width, H: cfg.Arena.Height}
}

func gameOptions() sokoban.Options {
	return sokoban.Options{
		Arena:          arena(),
		CellsPerSecond: cfg.Motion.CellsPerSecond,
		CellWidth:      cfg.Render.CellWidth,
		ShowFloor:      cfg.Render.ShowFloor,
		ShowStatus:     cfg.Render.ShowStatus,
	}
}

// dbPath returns the configured records database path.
func dbPath() string {
	if cfg.Storage.DB != "" {
		return cfg.Storage.DB
	}
	return storage.DefaultPath()
}

// openStore opens the records database. Play continues without records
// when it cannot be opened.
func openStore() *storage.Store {
	store, err := storage.Open(dbPath())
	if err != nil {
		logger.Warn("could not open records database", "path", dbPath(), "error", err)
		return nil
	}
	return store
}
