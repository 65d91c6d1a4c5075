// Package config provides YAML-based configuration loading for the
// Sokoban game and its server.
package config

// SokobanConfig contains all configuration for the game.
type SokobanConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Motion  MotionConfig  `yaml:"motion"`
	Render  RenderConfig  `yaml:"render"`
	Levels  LevelsConfig  `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// ArenaConfig defines the fixed grid levels are centered in.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MotionConfig defines interpolation speed.
type MotionConfig struct {
	CellsPerSecond float64     `yaml:"cells_per_second"`
	Preset         SpeedPreset `yaml:"preset,omitempty"` // overrides cells_per_second when set
}

// RenderConfig defines terminal rendering parameters.
type RenderConfig struct {
	CellWidth  int    `yaml:"cell_width"` // terminal columns per grid cell
	ShowFloor  bool   `yaml:"show_floor"` // draw decorative floor glyphs
	ShowStatus bool   `yaml:"show_status"`
	Theme      string `yaml:"theme"` // "default" or "mono"
}

// LevelsConfig defines where packs come from.
type LevelsConfig struct {
	Dir  string `yaml:"dir"`
	Pack string `yaml:"pack"`
}

// StorageConfig defines the records database.
type StorageConfig struct {
	DB string `yaml:"db"` // empty means the default path under the home directory
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Addr        string `yaml:"addr"`
	HostKeyPath string `yaml:"host_key_path"`
}
