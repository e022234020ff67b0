package descriptor

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftbase/recipesnap/pkg/item"
	"github.com/craftbase/recipesnap/pkg/recipe"
)

// customKindDescriptor handles a made-up modded kind for registry tests.
type customKindDescriptor struct {
	kind recipe.Kind
}

func (d customKindDescriptor) Kind() recipe.Kind { return d.kind }

func (d customKindDescriptor) Inputs(recipe.Recipe) []recipe.Choice { return nil }

func (d customKindDescriptor) Validate([]item.Item) bool { return false }

func (d customKindDescriptor) Output(iter.Seq[recipe.Recipe], []item.Item) (item.Item, bool) {
	return item.Item{}, false
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Register(Shaped{}))
	assert.Equal(t, 1, reg.Len())

	assert.Error(t, reg.Register(nil))
	assert.Error(t, reg.Register(Shaped{}), "duplicate kind must be rejected")
	assert.Error(t, reg.Register(customKindDescriptor{kind: "bad..kind"}))
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_Get(t *testing.T) {
	reg := Default()

	d, ok := reg.Get(recipe.KindShaped)
	require.True(t, ok)
	assert.Equal(t, recipe.KindShaped, d.Kind())

	_, ok = reg.Get(recipe.Kind("modded.press"))
	assert.False(t, ok)

	// Get is exact: the crafting ancestor has no descriptor of its own.
	_, ok = reg.Get(recipe.KindCrafting)
	assert.False(t, ok)
}

func TestRegistry_FindFor_FirstMatchWins(t *testing.T) {
	// Two descriptors match crafting records; registration order decides.
	broad := customKindDescriptor{kind: recipe.KindCrafting}
	reg := NewRegistry().MustRegister(broad, Shaped{})

	d, ok := reg.FindFor(&recipe.Shaped{})
	require.True(t, ok)
	assert.Equal(t, recipe.KindCrafting, d.Kind())

	// Reversed order flips the winner.
	reg = NewRegistry().MustRegister(Shaped{}, broad)
	d, ok = reg.FindFor(&recipe.Shaped{})
	require.True(t, ok)
	assert.Equal(t, recipe.KindShaped, d.Kind())
}

func TestRegistry_FindFor_NoMatch(t *testing.T) {
	reg := NewRegistry().MustRegister(Shaped{})

	_, ok := reg.FindFor(&recipe.Furnace{})
	assert.False(t, ok)

	_, ok = reg.FindFor(nil)
	assert.False(t, ok)
}

func TestDefault_CoversStockKinds(t *testing.T) {
	reg := Default()

	records := []recipe.Recipe{
		&recipe.Shaped{},
		&recipe.Shapeless{},
		&recipe.Furnace{},
		&recipe.Furnace{Variant: recipe.KindBlasting},
		&recipe.Furnace{Variant: recipe.KindSmoking},
		&recipe.Furnace{Variant: recipe.KindCampfire},
		&recipe.Stonecutting{},
		&recipe.Smithing{},
	}
	for _, rec := range records {
		d, ok := reg.FindFor(rec)
		require.True(t, ok, "no descriptor for %s", rec.Kind())
		assert.True(t, rec.Kind().Is(d.Kind()))
	}
}
