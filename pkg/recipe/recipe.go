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

package recipe

import "github.com/craftbase/recipesnap/pkg/item"

// Recipe is one recipe definition pulled from a registry source. Concrete
// records are pointer types so that record identity (not structural equality)
// drives duplicate detection inside a snapshot.
type Recipe interface {
	// Kind returns the record's concrete kind.
	Kind() Kind

	// Result returns the item the recipe produces.
	Result() item.Item
}

// Shaped is a grid-based crafting recipe: each slot of the grid carries an
// acceptance choice, and slot positions are significant.
type Shaped struct {
	// Name is an optional stable identifier from the data file.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Output is the crafted item.
	Output item.Item `json:"result" yaml:"result"`

	// Grid holds one choice per occupied slot in row-major order.
	// A nil entry marks an empty slot.
	Grid []Choice `json:"-" yaml:"-"`
}

// Kind implements Recipe.
func (r *Shaped) Kind() Kind { return KindShaped }

// Result implements Recipe.
func (r *Shaped) Result() item.Item { return r.Output }

// Shapeless is an unordered crafting recipe: every ingredient choice must be
// satisfied by a distinct input item, positions are irrelevant.
type Shapeless struct {
	Name   string    `json:"name,omitempty" yaml:"name,omitempty"`
	Output item.Item `json:"result" yaml:"result"`

	// Ingredients holds one choice per required ingredient.
	Ingredients []Choice `json:"-" yaml:"-"`
}

// Kind implements Recipe.
func (r *Shapeless) Kind() Kind { return KindShapeless }

// Result implements Recipe.
func (r *Shapeless) Result() item.Item { return r.Output }

// Furnace is a single-input cooking recipe. The same record shape backs the
// smelting refinements (blast, smoker, campfire) via an explicit Variant.
type Furnace struct {
	Name   string    `json:"name,omitempty" yaml:"name,omitempty"`
	Output item.Item `json:"result" yaml:"result"`

	// Input is the single cookable ingredient.
	Input Choice `json:"-" yaml:"-"`

	// Variant selects the concrete smelting kind. The zero value means
	// KindFurnace.
	Variant Kind `json:"variant,omitempty" yaml:"variant,omitempty"`

	// Experience awarded and cooking time in ticks, carried verbatim from
	// the data file. Not interpreted by the query engine.
	Experience float64 `json:"experience,omitempty" yaml:"experience,omitempty"`
	CookTime   int     `json:"cookTime,omitempty" yaml:"cookTime,omitempty"`
}

// Kind implements Recipe.
func (r *Furnace) Kind() Kind {
	if r.Variant != KindAny && r.Variant.Is(KindSmelting) {
		return r.Variant
	}
	return KindFurnace
}

// Result implements Recipe.
func (r *Furnace) Result() item.Item { return r.Output }

// Stonecutting is a single-input cutting recipe.
type Stonecutting struct {
	Name   string    `json:"name,omitempty" yaml:"name,omitempty"`
	Output item.Item `json:"result" yaml:"result"`
	Input  Choice    `json:"-" yaml:"-"`
}

// Kind implements Recipe.
func (r *Stonecutting) Kind() Kind { return KindStonecutting }

// Result implements Recipe.
func (r *Stonecutting) Result() item.Item { return r.Output }

// Smithing upgrades a base item with an addition item.
type Smithing struct {
	Name     string    `json:"name,omitempty" yaml:"name,omitempty"`
	Output   item.Item `json:"result" yaml:"result"`
	Base     Choice    `json:"-" yaml:"-"`
	Addition Choice    `json:"-" yaml:"-"`
}

// Kind implements Recipe.
func (r *Smithing) Kind() Kind { return KindSmithing }

// Result implements Recipe.
func (r *Smithing) Result() item.Item { return r.Output }
