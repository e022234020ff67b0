package descriptor

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftbase/recipesnap/pkg/item"
	"github.com/craftbase/recipesnap/pkg/recipe"
)

func seqOf(recs ...recipe.Recipe) iter.Seq[recipe.Recipe] {
	return slices.Values(recs)
}

func TestShaped_Inputs(t *testing.T) {
	rec := &recipe.Shaped{
		Output: item.New("torch", 4),
		Grid: []recipe.Choice{
			recipe.MaterialChoice{"coal"},
			recipe.MaterialChoice{"stick"},
		},
	}

	assert.Len(t, Shaped{}.Inputs(rec), 2)
	assert.Nil(t, Shaped{}.Inputs(&recipe.Shapeless{}), "wrong record shape yields nil")
}

func TestShaped_Validate(t *testing.T) {
	d := Shaped{}
	assert.False(t, d.Validate(nil))
	assert.True(t, d.Validate(make([]item.Item, 1)))
	assert.True(t, d.Validate(make([]item.Item, 9)))
	assert.False(t, d.Validate(make([]item.Item, 10)))
}

func TestShaped_Output(t *testing.T) {
	torch := &recipe.Shaped{
		Output: item.New("torch", 4),
		Grid: []recipe.Choice{
			recipe.MaterialChoice{"coal", "charcoal"},
			recipe.MaterialChoice{"stick"},
		},
	}
	sword := &recipe.Shaped{
		Output: item.New("wooden_sword", 1),
		Grid: []recipe.Choice{
			recipe.MaterialChoice{"planks"},
			recipe.MaterialChoice{"planks"},
			recipe.MaterialChoice{"stick"},
		},
	}

	d := Shaped{}

	out, ok := d.Output(seqOf(torch, sword), []item.Item{item.New("charcoal", 1), item.New("stick", 1)})
	require.True(t, ok)
	assert.Equal(t, item.New("torch", 4), out)

	// Positions matter for shaped recipes.
	_, ok = d.Output(seqOf(torch, sword), []item.Item{item.New("stick", 1), item.New("coal", 1)})
	assert.False(t, ok)

	// Arity must line up with the grid.
	_, ok = d.Output(seqOf(torch, sword), []item.Item{item.New("coal", 1)})
	assert.False(t, ok)
}

func TestShaped_Output_EmptySlots(t *testing.T) {
	// A grid with a deliberate hole: slot 1 must stay empty.
	gate := &recipe.Shaped{
		Output: item.New("gate", 1),
		Grid: []recipe.Choice{
			recipe.MaterialChoice{"stick"},
			nil,
			recipe.MaterialChoice{"stick"},
		},
	}

	d := Shaped{}

	out, ok := d.Output(seqOf(gate), []item.Item{item.New("stick", 1), {}, item.New("stick", 1)})
	require.True(t, ok)
	assert.Equal(t, item.New("gate", 1), out)

	_, ok = d.Output(seqOf(gate), []item.Item{item.New("stick", 1), item.New("stick", 1), item.New("stick", 1)})
	assert.False(t, ok, "occupied empty slot must not match")
}

func TestShapeless_Output_OrderIrrelevant(t *testing.T) {
	torch := &recipe.Shapeless{
		Output: item.New("torch", 4),
		Ingredients: []recipe.Choice{
			recipe.MaterialChoice{"coal"},
			recipe.MaterialChoice{"stick"},
		},
	}

	d := Shapeless{}

	for _, inputs := range [][]item.Item{
		{item.New("coal", 1), item.New("stick", 1)},
		{item.New("stick", 1), item.New("coal", 1)},
	} {
		out, ok := d.Output(seqOf(torch), inputs)
		require.True(t, ok)
		assert.Equal(t, item.New("torch", 4), out)
	}

	// Each ingredient needs a distinct input.
	_, ok := d.Output(seqOf(torch), []item.Item{item.New("coal", 1), item.New("coal", 1)})
	assert.False(t, ok)
}

func TestCooking(t *testing.T) {
	ingot := &recipe.Furnace{
		Output: item.New("iron_ingot", 1),
		Input:  recipe.MaterialChoice{"iron_ore"},
	}
	steak := &recipe.Furnace{
		Output:  item.New("steak", 1),
		Input:   recipe.MaterialChoice{"beef"},
		Variant: recipe.KindSmoking,
	}

	furnace := Cooking{Variant: recipe.KindFurnace}
	smoker := Cooking{Variant: recipe.KindSmoking}

	assert.True(t, furnace.Validate([]item.Item{item.New("iron_ore", 1)}))
	assert.False(t, furnace.Validate(nil))
	assert.False(t, furnace.Validate(make([]item.Item, 2)))

	out, ok := furnace.Output(seqOf(ingot), []item.Item{item.New("iron_ore", 1)})
	require.True(t, ok)
	assert.Equal(t, item.New("iron_ingot", 1), out)

	// The furnace descriptor does not interpret smoker records.
	assert.Nil(t, furnace.Inputs(steak))
	assert.NotNil(t, smoker.Inputs(steak))

	// Zero-value variant defaults to the furnace kind.
	assert.Equal(t, recipe.KindFurnace, Cooking{}.Kind())
}

func TestSmith(t *testing.T) {
	upgrade := &recipe.Smithing{
		Output:   item.New("netherite_sword", 1),
		Base:     recipe.MaterialChoice{"diamond_sword"},
		Addition: recipe.MaterialChoice{"netherite_ingot"},
	}

	d := Smith{}

	assert.True(t, d.Validate(make([]item.Item, 2)))
	assert.False(t, d.Validate(make([]item.Item, 1)))

	out, ok := d.Output(seqOf(upgrade), []item.Item{
		item.New("diamond_sword", 1),
		item.New("netherite_ingot", 1),
	})
	require.True(t, ok)
	assert.Equal(t, item.New("netherite_sword", 1), out)

	// Base and addition are positional.
	_, ok = d.Output(seqOf(upgrade), []item.Item{
		item.New("netherite_ingot", 1),
		item.New("diamond_sword", 1),
	})
	assert.False(t, ok)
}

func TestStonecutter(t *testing.T) {
	slab := &recipe.Stonecutting{
		Output: item.New("stone_slab", 2),
		Input:  recipe.MaterialChoice{"stone"},
	}

	d := Stonecutter{}

	out, ok := d.Output(seqOf(slab), []item.Item{item.New("stone", 1)})
	require.True(t, ok)
	assert.Equal(t, item.New("stone_slab", 2), out)

	_, ok = d.Output(seqOf(slab), []item.Item{item.New("granite", 1)})
	assert.False(t, ok)
}
