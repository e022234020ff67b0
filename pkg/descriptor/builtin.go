// Copyright (c) 2025, Craftbase Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package descriptor

import (
	"iter"

	"github.com/craftbase/recipesnap/pkg/item"
	"github.com/craftbase/recipesnap/pkg/recipe"
)

const maxGridSlots = 9

// Shaped interprets grid-based crafting records.
type Shaped struct{}

// Kind implements Descriptor.
func (Shaped) Kind() recipe.Kind { return recipe.KindShaped }

// Inputs implements Descriptor.
func (Shaped) Inputs(rec recipe.Recipe) []recipe.Choice {
	r, ok := rec.(*recipe.Shaped)
	if !ok {
		return nil
	}
	return r.Grid
}

// Validate implements Descriptor. A shaped query carries between one and
// nine slot items, in row-major order.
func (Shaped) Validate(inputs []item.Item) bool {
	return len(inputs) >= 1 && len(inputs) <= maxGridSlots
}

// Output implements Descriptor. A candidate matches when its grid has the
// same number of slots as the query and every occupied slot accepts the item
// at the same position (empty slots require empty items).
func (d Shaped) Output(candidates iter.Seq[recipe.Recipe], inputs []item.Item) (item.Item, bool) {
	for rec := range candidates {
		if matchPositional(d.Inputs(rec), inputs) {
			return rec.Result(), true
		}
	}
	return item.Item{}, false
}

// Shapeless interprets unordered crafting records.
type Shapeless struct{}

// Kind implements Descriptor.
func (Shapeless) Kind() recipe.Kind { return recipe.KindShapeless }

// Inputs implements Descriptor.
func (Shapeless) Inputs(rec recipe.Recipe) []recipe.Choice {
	r, ok := rec.(*recipe.Shapeless)
	if !ok {
		return nil
	}
	return r.Ingredients
}

// Validate implements Descriptor.
func (Shapeless) Validate(inputs []item.Item) bool {
	return len(inputs) >= 1 && len(inputs) <= maxGridSlots
}

// Output implements Descriptor. A candidate matches when every ingredient
// choice is satisfied by a distinct input item, in any order.
func (d Shapeless) Output(candidates iter.Seq[recipe.Recipe], inputs []item.Item) (item.Item, bool) {
	for rec := range candidates {
		if matchUnordered(d.Inputs(rec), inputs) {
			return rec.Result(), true
		}
	}
	return item.Item{}, false
}

// Cooking interprets single-input smelting records for one smelting variant
// (furnace, blast, smoker, campfire).
type Cooking struct {
	// Variant is the smelting kind this descriptor handles.
	Variant recipe.Kind
}

// Kind implements Descriptor.
func (c Cooking) Kind() recipe.Kind {
	if c.Variant == recipe.KindAny {
		return recipe.KindFurnace
	}
	return c.Variant
}

// Inputs implements Descriptor.
func (c Cooking) Inputs(rec recipe.Recipe) []recipe.Choice {
	r, ok := rec.(*recipe.Furnace)
	if !ok || !r.Kind().Is(c.Kind()) {
		return nil
	}
	return []recipe.Choice{r.Input}
}

// Validate implements Descriptor. Cooking takes exactly one input.
func (Cooking) Validate(inputs []item.Item) bool {
	return len(inputs) == 1
}

// Output implements Descriptor.
func (c Cooking) Output(candidates iter.Seq[recipe.Recipe], inputs []item.Item) (item.Item, bool) {
	return singleInputOutput(c, candidates, inputs)
}

// Stonecutter interprets stonecutting records.
type Stonecutter struct{}

// Kind implements Descriptor.
func (Stonecutter) Kind() recipe.Kind { return recipe.KindStonecutting }

// Inputs implements Descriptor.
func (Stonecutter) Inputs(rec recipe.Recipe) []recipe.Choice {
	r, ok := rec.(*recipe.Stonecutting)
	if !ok {
		return nil
	}
	return []recipe.Choice{r.Input}
}

// Validate implements Descriptor.
func (Stonecutter) Validate(inputs []item.Item) bool {
	return len(inputs) == 1
}

// Output implements Descriptor.
func (d Stonecutter) Output(candidates iter.Seq[recipe.Recipe], inputs []item.Item) (item.Item, bool) {
	return singleInputOutput(d, candidates, inputs)
}

// Smith interprets smithing records (base + addition).
type Smith struct{}

// Kind implements Descriptor.
func (Smith) Kind() recipe.Kind { return recipe.KindSmithing }

// Inputs implements Descriptor.
func (Smith) Inputs(rec recipe.Recipe) []recipe.Choice {
	r, ok := rec.(*recipe.Smithing)
	if !ok {
		return nil
	}
	return []recipe.Choice{r.Base, r.Addition}
}

// Validate implements Descriptor. Smithing takes base and addition.
func (Smith) Validate(inputs []item.Item) bool {
	return len(inputs) == 2
}

// Output implements Descriptor.
func (d Smith) Output(candidates iter.Seq[recipe.Recipe], inputs []item.Item) (item.Item, bool) {
	for rec := range candidates {
		if matchPositional(d.Inputs(rec), inputs) {
			return rec.Result(), true
		}
	}
	return item.Item{}, false
}

// singleInputOutput matches one-slot recipe shapes against a single input.
func singleInputOutput(d Descriptor, candidates iter.Seq[recipe.Recipe], inputs []item.Item) (item.Item, bool) {
	if len(inputs) != 1 {
		return item.Item{}, false
	}
	for rec := range candidates {
		choices := d.Inputs(rec)
		if len(choices) == 1 && choices[0] != nil && choices[0].Test(inputs[0]) {
			return rec.Result(), true
		}
	}
	return item.Item{}, false
}

// matchPositional checks slot-aligned choices against inputs. A nil choice
// marks an empty slot and only accepts the zero item.
func matchPositional(choices []recipe.Choice, inputs []item.Item) bool {
	if len(choices) == 0 || len(choices) != len(inputs) {
		return false
	}
	for i, c := range choices {
		if c == nil {
			if !inputs[i].IsZero() {
				return false
			}
			continue
		}
		if !c.Test(inputs[i]) {
			return false
		}
	}
	return true
}

// matchUnordered checks that every choice is satisfied by a distinct input.
// Greedy assignment is sufficient for the stock choice types, which are
// simple membership predicates.
func matchUnordered(choices []recipe.Choice, inputs []item.Item) bool {
	if len(choices) == 0 || len(choices) != len(inputs) {
		return false
	}
	used := make([]bool, len(inputs))
	for _, c := range choices {
		if c == nil {
			return false
		}
		matched := false
		for i, it := range inputs {
			if used[i] || !c.Test(it) {
				continue
			}
			used[i] = true
			matched = true
			break
		}
		if !matched {
			return false
		}
	}
	return true
}
