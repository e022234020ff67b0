package source

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftbase/recipesnap/pkg/item"
	"github.com/craftbase/recipesnap/pkg/recipe"
)

func TestSlice(t *testing.T) {
	a := &recipe.Shaped{Output: item.New("torch", 4)}
	b := &recipe.Furnace{Output: item.New("iron_ingot", 1)}

	recs, errs := drain(t, FromRecipes(a, b))
	assert.Empty(t, errs)
	assert.Equal(t, []recipe.Recipe{a, b}, recs)

	recs, errs = drain(t, FromRecipes())
	assert.Empty(t, errs)
	assert.Empty(t, recs)
}

func TestConcat(t *testing.T) {
	a := &recipe.Shaped{Output: item.New("torch", 4)}
	b := &recipe.Shapeless{Output: item.New("dough", 1)}
	c := &recipe.Furnace{Output: item.New("glass", 1)}

	src := Concat(FromRecipes(a), FromRecipes(), FromRecipes(b, c))
	recs, errs := drain(t, src)
	assert.Empty(t, errs)
	assert.Equal(t, []recipe.Recipe{a, b, c}, recs)
}

func writeSet(t *testing.T, dir, name, recipeName, material string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	data := []byte("kind: RecipeSet\nrecipes:\n  - kind: crafting.shaped\n    name: " +
		recipeName + "\n    result: {material: " + material + "}\n    grid: [stick]\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeSet(t, dir, "a.yaml", "ladder", "ladder")
	second := writeSet(t, dir, "b.yaml", "fence", "fence")

	src, err := LoadFiles(t.Context(), first, second)
	require.NoError(t, err)

	recs, errs := drain(t, src)
	assert.Empty(t, errs)
	require.Len(t, recs, 2)

	// Records come out in argument order regardless of load concurrency.
	assert.Equal(t, item.Material("ladder"), recs[0].Result().Material)
	assert.Equal(t, item.Material("fence"), recs[1].Result().Material)
}

func TestLoadFiles_Errors(t *testing.T) {
	_, err := LoadFiles(t.Context())
	assert.Error(t, err)

	_, err = LoadFiles(t.Context(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"sets/b.yaml": &fstest.MapFile{Data: []byte(
			"kind: RecipeSet\nrecipes:\n  - kind: stonecutting\n    result: {material: stone_slab, amount: 2}\n    input: stone\n")},
		"sets/a.yml": &fstest.MapFile{Data: []byte(
			"kind: RecipeSet\nrecipes:\n  - kind: smelting.furnace\n    result: {material: glass}\n    input: sand\n")},
		"sets/notes.txt": &fstest.MapFile{Data: []byte("ignored")},
	}

	src, err := LoadFS(fsys, "sets")
	require.NoError(t, err)

	recs, errs := drain(t, src)
	assert.Empty(t, errs)
	require.Len(t, recs, 2)

	// Lexical path order: a.yml before b.yaml.
	assert.Equal(t, recipe.KindFurnace, recs[0].Kind())
	assert.Equal(t, recipe.KindStonecutting, recs[1].Kind())
}
