// Package levels provides level pack loading for Sokoban.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels/formats"
)

//go:embed builtin
var builtinFS embed.FS

// DefaultPack is the pack played when none is named.
const DefaultPack = "classic"

var (
	// ErrPackNotFound is returned when no pack has the requested ID.
	ErrPackNotFound = errors.New("levels: pack not found")
	// ErrLevelNotFound is returned when a pack has no level at the requested position.
	ErrLevelNotFound = errors.New("levels: level not found")
)

// Level is one playable map inside a pack.
type Level struct {
	Pack   string
	Index  int // 1-based position in the pack
	Name   string
	Map    string
	Width  int
	Height int
}

// Ref returns the "pack:index" reference of the level.
func (l Level) Ref() string {
	return fmt.Sprintf("%s:%d", l.Pack, l.Index)
}

// Title returns the level name, or a numbered fallback.
func (l Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return fmt.Sprintf("Level %d", l.Index)
}

// Grid parses the level into the given arena.
func (l Level) Grid(arena core.Arena) (*core.Grid, error) {
	return core.ParseIn(l.Map, arena)
}

// Pack is an ordered collection of levels.
type Pack struct {
	ID       string
	Name     string
	Author   string
	Levels   []Level
	Metadata map[string]string
	FilePath string
	Builtin  bool
}

// Level returns the level at the 1-based position n.
func (p Pack) Level(n int) (Level, error) {
	if n < 1 || n > len(p.Levels) {
		return Level{}, fmt.Errorf("%w: %s:%d (pack has %d)", ErrLevelNotFound, p.ID, n, len(p.Levels))
	}
	return p.Levels[n-1], nil
}

// Loader loads packs from the embedded builtin set and an optional directory.
type Loader struct {
	Root   string
	Arena  core.Arena
	Logger *log.Logger
}

// NewLoader creates a loader for root. An empty root loads builtin packs only.
func NewLoader(root string) *Loader {
	return &Loader{
		Root:   root,
		Arena:  core.DefaultArena,
		Logger: log.New(io.Discard),
	}
}

// LoadAll returns the builtin packs plus every pack under Root, sorted by ID.
// A directory pack replaces a builtin pack with the same ID. Files that fail
// to parse are skipped with a warning.
func (l *Loader) LoadAll() ([]Pack, error) {
	byID := make(map[string]Pack)

	builtin, err := l.loadFS(builtinFS, "builtin", true)
	if err != nil {
		return nil, err
	}
	for _, p := range builtin {
		byID[p.ID] = p
	}

	if l.Root != "" {
		if _, err := os.Stat(l.Root); err == nil {
			dirPacks, err := l.loadFS(os.DirFS(l.Root), ".", false)
			if err != nil {
				return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
			}
			for _, p := range dirPacks {
				if prev, ok := byID[p.ID]; ok {
					l.Logger.Warn("pack overrides existing pack", "id", p.ID, "file", p.FilePath, "previous", prev.FilePath)
				}
				byID[p.ID] = p
			}
		} else {
			l.Logger.Debug("levels directory not found", "dir", l.Root)
		}
	}

	packs := make([]Pack, 0, len(byID))
	for _, p := range byID {
		packs = append(packs, p)
	}
	sort.Slice(packs, func(i, j int) bool {
		return packs[i].ID < packs[j].ID
	})
	return packs, nil
}

func (l *Loader) loadFS(fsys fs.FS, root string, builtin bool) ([]Pack, error) {
	var packs []Pack

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		display := p
		if !builtin {
			display = filepath.Join(l.Root, filepath.FromSlash(p))
		}

		pack, err := l.parse(data, display)
		if err != nil {
			l.Logger.Warn("skipping invalid pack", "file", display, "err", err)
			return nil
		}
		pack.Builtin = builtin
		packs = append(packs, pack)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return packs, nil
}

// LoadFile loads a single pack file from disk.
func (l *Loader) LoadFile(file string) (Pack, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Pack{}, fmt.Errorf("levels: reading file %s: %w", file, err)
	}
	return l.parse(data, file)
}

// parse decodes a pack and validates every level against the arena.
func (l *Loader) parse(data []byte, file string) (Pack, error) {
	ext := strings.ToLower(filepath.Ext(file))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Pack{}, fmt.Errorf("levels: parsing file %s: %w", file, err)
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}
	name := parsed.Name
	if name == "" {
		name = id
	}

	pack := Pack{
		ID:       id,
		Name:     name,
		Author:   parsed.Author,
		Metadata: parsed.Metadata,
		FilePath: file,
	}

	for i, fl := range parsed.Levels {
		lvl := Level{Pack: id, Index: i + 1, Name: fl.Name, Map: fl.Map}
		lvl.Width, lvl.Height = core.Dimensions(fl.Map)

		if _, err := lvl.Grid(l.Arena); err != nil {
			return Pack{}, fmt.Errorf("levels: %s level %d: %w", file, lvl.Index, err)
		}
		l.Logger.Debug("loaded level", "ref", lvl.Ref(), "size", fmt.Sprintf("%dx%d", lvl.Width, lvl.Height))
		pack.Levels = append(pack.Levels, lvl)
	}

	return pack, nil
}

// LoadByID loads a specific pack by ID.
func (l *Loader) LoadByID(id string) (Pack, error) {
	packs, err := l.LoadAll()
	if err != nil {
		return Pack{}, err
	}

	for _, p := range packs {
		if p.ID == id {
			return p, nil
		}
	}

	return Pack{}, fmt.Errorf("%w: %s", ErrPackNotFound, id)
}

// Resolve finds a level by reference: "pack", "pack:N" (1-based) or
// "pack:name" (case-insensitive). A bare pack selects its first level.
func (l *Loader) Resolve(ref string) (Level, error) {
	id, sel, _ := strings.Cut(ref, ":")
	if id == "" {
		id = DefaultPack
	}

	pack, err := l.LoadByID(id)
	if err != nil {
		return Level{}, err
	}
	if sel == "" {
		return pack.Level(1)
	}
	if n, err := strconv.Atoi(sel); err == nil {
		return pack.Level(n)
	}
	for _, lvl := range pack.Levels {
		if strings.EqualFold(lvl.Name, sel) {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, ref)
}

// ListIDs returns all pack IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	packs, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(packs))
	for i, p := range packs {
		ids[i] = p.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Pack, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".txt", ".sok":
		return formats.ParseText(data)
	default:
		return formats.Pack{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
