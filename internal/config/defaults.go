package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultSokobanYAML []byte

// DefaultSokobanConfig returns the default configuration.
func DefaultSokobanConfig() SokobanConfig {
	return SokobanConfig{
		Arena: ArenaConfig{
			Width:  20,
			Height: 16,
		},
		Motion: MotionConfig{
			CellsPerSecond: 3.0,
		},
		Render: RenderConfig{
			CellWidth:  2,
			ShowFloor:  true,
			ShowStatus: true,
			Theme:      "default",
		},
		Levels: LevelsConfig{
			Pack: "classic",
		},
		Server: ServerConfig{
			Addr:        ":2222",
			HostKeyPath: ".ssh/sokoban_ed25519",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSokobanYAML
}
