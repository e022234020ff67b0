package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftbase/recipesnap/pkg/item"
)

func TestMaterialChoice(t *testing.T) {
	choice := MaterialChoice{"coal", "charcoal"}

	assert.True(t, choice.Test(item.New("coal", 1)))
	assert.True(t, choice.Test(item.New("charcoal", 64)))
	assert.False(t, choice.Test(item.New("stick", 1)))

	// Metadata is irrelevant for material choices.
	assert.True(t, choice.Test(item.Item{
		Material: "coal",
		Amount:   1,
		Meta:     map[string]string{"name": "Shiny Coal"},
	}))
}

func TestExactChoice(t *testing.T) {
	enchantedBook := item.Item{
		Material: "book",
		Amount:   1,
		Meta:     map[string]string{"enchantment": "sharpness"},
	}
	choice := ExactChoice{enchantedBook}

	assert.False(t, choice.Test(item.New("book", 1)))
	assert.True(t, choice.Test(enchantedBook))

	// Amount is ignored by similarity.
	bigger := enchantedBook
	bigger.Amount = 3
	assert.True(t, choice.Test(bigger))
}

func TestMaterials(t *testing.T) {
	assert.Equal(t, []item.Material{"coal", "charcoal"}, Materials(MaterialChoice{"coal", "charcoal"}))
	assert.Equal(t, []item.Material{"book"}, Materials(ExactChoice{item.New("book", 1)}))
	assert.Nil(t, Materials(nil))
}
