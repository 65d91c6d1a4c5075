// Package formats provides pluggable level pack parsers.
package formats

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoLevels is returned when a pack file contains no level maps.
var ErrNoLevels = errors.New("pack has no levels")

// YAMLPack represents the YAML structure for a pack file.
type YAMLPack struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Author   string            `yaml:"author,omitempty"`
	Levels   []YAMLLevel       `yaml:"levels"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLLevel is one level entry. The map is given either as a block
// string or as a list of rows; rows win when both are set, since YAML
// block scalars cannot start with indented lines.
type YAMLLevel struct {
	Name string   `yaml:"name"`
	Map  string   `yaml:"map,omitempty"`
	Rows []string `yaml:"rows,omitempty"`
}

// Level is a parsed level: a name and its raw map text.
type Level struct {
	Name string
	Map  string
}

// Pack is a parsed pack ready for the loader.
type Pack struct {
	ID       string
	Name     string
	Author   string
	Levels   []Level
	Metadata map[string]string
}

// ParseYAML parses a YAML pack file.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	pack := Pack{
		ID:       yp.ID,
		Name:     yp.Name,
		Author:   yp.Author,
		Metadata: yp.Metadata,
	}

	for i, yl := range yp.Levels {
		text := yl.Map
		if len(yl.Rows) > 0 {
			text = strings.Join(yl.Rows, "\n")
		}
		text = strings.TrimRight(text, "\n")
		if strings.TrimSpace(text) == "" {
			return Pack{}, fmt.Errorf("level %d (%q): empty map", i+1, yl.Name)
		}
		pack.Levels = append(pack.Levels, Level{Name: yl.Name, Map: text})
	}

	if len(pack.Levels) == 0 {
		return Pack{}, ErrNoLevels
	}
	return pack, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt", ".sok"}
}
