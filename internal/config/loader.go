package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvDB        = "SOKOBAN_DB"
	EnvLevelsDir = "SOKOBAN_LEVELS_DIR"
	EnvSSHAddr   = "SOKOBAN_SSH_ADDR"
	EnvPack      = "SOKOBAN_PACK"
	EnvSpeed     = "SOKOBAN_SPEED"
)

// Load loads the Sokoban configuration.
// Search order: customPath -> ~/.sokoban/configs/sokoban.yaml -> ./configs/sokoban.yaml -> embedded default
func Load(customPath string) (SokobanConfig, error) {
	cfg := DefaultSokobanConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("sokoban.yaml"), filepath.Join("configs", "sokoban.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultSokobanConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return normalize(fileCfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSokobanYAML, &cfg); err != nil {
		return DefaultSokobanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// normalize applies the speed preset and replaces unusable values with defaults.
func normalize(cfg SokobanConfig) SokobanConfig {
	def := DefaultSokobanConfig()

	if cfg.Motion.Preset != "" {
		ApplySpeedPreset(&cfg, cfg.Motion.Preset)
	}
	if cfg.Motion.CellsPerSecond <= 0 {
		cfg.Motion.CellsPerSecond = def.Motion.CellsPerSecond
	}
	if cfg.Arena.Width <= 0 || cfg.Arena.Height <= 0 {
		cfg.Arena = def.Arena
	}
	if cfg.Render.CellWidth < 1 {
		cfg.Render.CellWidth = def.Render.CellWidth
	}
	if cfg.Render.Theme == "" {
		cfg.Render.Theme = def.Render.Theme
	}
	if cfg.Levels.Pack == "" {
		cfg.Levels.Pack = def.Levels.Pack
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = def.Server.Addr
	}
	return cfg
}

// ApplyEnv loads the given .env files (or ./.env when none are given) if
// present, then overrides cfg from SOKOBAN_* environment variables.
func ApplyEnv(cfg *SokobanConfig, envFiles ...string) error {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	if v, ok := os.LookupEnv(EnvDB); ok {
		cfg.Storage.DB = v
	}
	if v, ok := os.LookupEnv(EnvLevelsDir); ok {
		cfg.Levels.Dir = v
	}
	if v, ok := os.LookupEnv(EnvSSHAddr); ok && v != "" {
		cfg.Server.Addr = v
	}
	if v, ok := os.LookupEnv(EnvPack); ok && v != "" {
		cfg.Levels.Pack = v
	}
	if v, ok := os.LookupEnv(EnvSpeed); ok && v != "" {
		if _, known := CellsPerSecondForPreset(SpeedPreset(v)); known {
			ApplySpeedPreset(cfg, SpeedPreset(v))
			return nil
		}
		cps, err := strconv.ParseFloat(v, 64)
		if err != nil || cps <= 0 {
			return fmt.Errorf("invalid %s %q: want a preset or a positive number", EnvSpeed, v)
		}
		cfg.Motion.Preset = ""
		cfg.Motion.CellsPerSecond = cps
	}
	return nil
}

// userConfigPath returns the path to a user config file.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sokoban", "configs", filename)
}

// DataDir returns ~/.sokoban, creating it if needed.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	dir := filepath.Join(home, ".sokoban")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dir, nil
}
