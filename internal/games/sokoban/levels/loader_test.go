package levels_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestBuiltinPacks(t *testing.T) {
	loader := levels.NewLoader("")

	packs, err := loader.LoadAll()
	require.NoError(t, err)

	ids := make([]string, len(packs))
	for i, p := range packs {
		ids[i] = p.ID
		assert.True(t, p.Builtin, p.ID)
	}
	assert.Equal(t, []string{"classic", "tutorial"}, ids)

	for _, p := range packs {
		for _, lvl := range p.Levels {
			g, err := lvl.Grid(core.DefaultArena)
			require.NoError(t, err, lvl.Ref())
			assert.Equal(t, len(g.Goals()), len(g.Boxes()), "%s boxes vs goals", lvl.Ref())
			assert.NotEmpty(t, lvl.Name, lvl.Ref())
		}
	}
}

func TestBuiltinClassic(t *testing.T) {
	pack, err := levels.NewLoader("").LoadByID(levels.DefaultPack)
	require.NoError(t, err)

	assert.Equal(t, "Classic", pack.Name)
	require.Len(t, pack.Levels, 2)

	warehouse := pack.Levels[0]
	assert.Equal(t, "Warehouse", warehouse.Name)
	assert.Equal(t, "classic:1", warehouse.Ref())
	assert.Equal(t, 19, warehouse.Width)
	assert.Equal(t, 11, warehouse.Height)
	assert.Equal(t, "        #######", warehouse.Map[:15])
}

func TestBuiltinTutorialFromText(t *testing.T) {
	pack, err := levels.NewLoader("").LoadByID("tutorial")
	require.NoError(t, err)

	assert.Equal(t, "Tutorial", pack.Name)
	require.Len(t, pack.Levels, 4)
	assert.Equal(t, "First push", pack.Levels[0].Name)
	assert.Equal(t, "#####\n#@$.#\n#####", pack.Levels[0].Map)
	assert.Equal(t, 4, pack.Levels[3].Index)
}

func TestLoaderDirectoryPacks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mine.yaml", `
id: mine
name: My Pack
levels:
  - name: Tiny
    map: |
      ####
      #@$.#
      #####
`)
	writeFile(t, dir, "nested/extra.sok", "; Extra\n\n#####\n#@$.#\n#####\n---\n######\n#@ $.#\n######\n")
	writeFile(t, dir, "broken.yaml", "id: broken\nlevels:\n  - name: nobody\n    map: \"#$.#\"\n")
	writeFile(t, dir, "notes.md", "ignored")

	packs, err := levels.NewLoader(dir).LoadAll()
	require.NoError(t, err)

	ids := make([]string, len(packs))
	for i, p := range packs {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"classic", "extra", "mine", "tutorial"}, ids)

	extra := packs[1]
	assert.False(t, extra.Builtin)
	assert.Equal(t, "Extra", extra.Name)
	assert.Len(t, extra.Levels, 2)
	assert.Equal(t, filepath.Join(dir, "nested", "extra.sok"), extra.FilePath)
}

func TestLoaderDirectoryOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "classic.txt", "#####\n#@$.#\n#####\n")

	pack, err := levels.NewLoader(dir).LoadByID("classic")
	require.NoError(t, err)
	assert.False(t, pack.Builtin)
	assert.Len(t, pack.Levels, 1)
	assert.Equal(t, "classic", pack.Name)
}

func TestLoaderListIDs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "warm-up.txt", "#####\n#@$.#\n#####\n")

	ids, err := levels.NewLoader(dir).ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"classic", "tutorial", "warm-up"}, ids)
}

func TestLoaderMissingDirectory(t *testing.T) {
	packs, err := levels.NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll()
	require.NoError(t, err)
	assert.Len(t, packs, 2)
}

func TestLoadFileRejectsInvalidLevel(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "bad.txt", "#####\n#$ .#\n#####\n")

	_, err := levels.NewLoader("").LoadFile(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNoPlayer)
}

func TestLoadFileUsesArena(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "wide.txt", "#@$.#####\n")

	loader := levels.NewLoader("")
	loader.Arena = core.Arena{W: 5, H: 5}
	_, err := loader.LoadFile(p)
	assert.ErrorIs(t, err, core.ErrMalformedLevel)

	loader.Arena = core.DefaultArena
	pack, err := loader.LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "wide", pack.ID)
}

func TestResolve(t *testing.T) {
	loader := levels.NewLoader("")

	tests := []struct {
		ref  string
		want string
	}{
		{"classic", "classic:1"},
		{"", "classic:1"},
		{"classic:2", "classic:2"},
		{"tutorial:two boxes", "tutorial:3"},
	}
	for _, tc := range tests {
		t.Run(tc.ref, func(t *testing.T) {
			lvl, err := loader.Resolve(tc.ref)
			require.NoError(t, err)
			assert.Equal(t, tc.want, lvl.Ref())
		})
	}

	_, err := loader.Resolve("classic:9")
	assert.ErrorIs(t, err, levels.ErrLevelNotFound)
	_, err = loader.Resolve("classic:nowhere")
	assert.ErrorIs(t, err, levels.ErrLevelNotFound)
	_, err = loader.Resolve("missing:1")
	assert.ErrorIs(t, err, levels.ErrPackNotFound)
}

func TestLevelTitle(t *testing.T) {
	assert.Equal(t, "Level 3", levels.Level{Index: 3}.Title())
	assert.Equal(t, "Named", levels.Level{Index: 3, Name: "Named"}.Title())
}
