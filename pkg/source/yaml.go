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

package source

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	recipeerrors "github.com/craftbase/recipesnap/pkg/errors"
	"github.com/craftbase/recipesnap/pkg/header"
	"github.com/craftbase/recipesnap/pkg/item"
	"github.com/craftbase/recipesnap/pkg/recipe"
)

// SetAPIVersion is the recipe-set file schema version this loader accepts.
const SetAPIVersion = "v1"

// Set is a source over one parsed RecipeSet document. Entries are decoded
// lazily, one per Next call, so a malformed entry surfaces as a per-record
// error and the snapshot builder can skip it and keep going.
type Set struct {
	// Header is the document header (kind, apiVersion, metadata).
	Header header.Header

	path    string
	entries []yaml.Node
	pos     int
}

type setDoc struct {
	header.Header `yaml:",inline"`
	Recipes       []yaml.Node `yaml:"recipes"`
}

// ParseSet parses a RecipeSet document. It fails only when the document
// itself cannot be obtained: invalid YAML, a wrong kind, or an unsupported
// apiVersion. Individual recipe entries are not decoded here.
func ParseSet(data []byte, path string) (*Set, error) {
	var doc setDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, recipeerrors.WrapWithContext(recipeerrors.ErrCodeInvalidArgument,
			"failed to parse recipe set", err, map[string]any{"path": path})
	}
	if doc.Kind != header.KindRecipeSet {
		return nil, recipeerrors.NewWithContext(recipeerrors.ErrCodeInvalidArgument,
			fmt.Sprintf("unexpected document kind %q, want %q", doc.Kind, header.KindRecipeSet),
			map[string]any{"path": path})
	}
	if doc.APIVersion != "" && doc.APIVersion != SetAPIVersion {
		return nil, recipeerrors.NewWithContext(recipeerrors.ErrCodeInvalidArgument,
			fmt.Sprintf("unsupported apiVersion %q, want %q", doc.APIVersion, SetAPIVersion),
			map[string]any{"path": path})
	}
	return &Set{
		Header:  doc.Header,
		path:    path,
		entries: doc.Recipes,
	}, nil
}

// Next implements Source. A malformed entry yields a MALFORMED_RECORD error
// for that record only.
func (s *Set) Next() (recipe.Recipe, bool, error) {
	if s.pos >= len(s.entries) {
		return nil, false, nil
	}
	node := s.entries[s.pos]
	idx := s.pos
	s.pos++

	rec, err := decodeEntry(&node)
	if err != nil {
		return nil, true, recipeerrors.WrapWithContext(recipeerrors.ErrCodeMalformedRecord,
			"failed to decode recipe entry", err,
			map[string]any{"path": s.path, "entry": idx})
	}
	return rec, true, nil
}

// entryDoc is the on-disk shape shared by all recipe kinds. Slot and
// ingredient choices are written as material alternatives separated by "|"
// ("coal|charcoal"); an empty string marks an empty shaped-grid slot.
type entryDoc struct {
	Kind        string   `yaml:"kind"`
	Name        string   `yaml:"name"`
	Result      *itemDoc `yaml:"result"`
	Grid        []string `yaml:"grid"`
	Ingredients []string `yaml:"ingredients"`
	Input       string   `yaml:"input"`
	Base        string   `yaml:"base"`
	Addition    string   `yaml:"addition"`
	Experience  float64  `yaml:"experience"`
	CookTime    int      `yaml:"cookTime"`
}

type itemDoc struct {
	Material string            `yaml:"material"`
	Amount   int               `yaml:"amount"`
	Meta     map[string]string `yaml:"meta"`
}

func decodeEntry(node *yaml.Node) (recipe.Recipe, error) {
	var doc entryDoc
	if err := node.Decode(&doc); err != nil {
		return nil, err
	}

	kind := recipe.Kind(doc.Kind)
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid recipe kind: %q", doc.Kind)
	}

	result, err := decodeItem(doc.Result)
	if err != nil {
		return nil, fmt.Errorf("result: %w", err)
	}

	switch {
	case kind == recipe.KindShaped:
		grid, err := decodeChoices(doc.Grid, true)
		if err != nil {
			return nil, fmt.Errorf("grid: %w", err)
		}
		if len(grid) == 0 || len(grid) > 9 {
			return nil, fmt.Errorf("grid must have 1 to 9 slots, got %d", len(doc.Grid))
		}
		return &recipe.Shaped{Name: doc.Name, Output: result, Grid: grid}, nil

	case kind == recipe.KindShapeless:
		ingredients, err := decodeChoices(doc.Ingredients, false)
		if err != nil {
			return nil, fmt.Errorf("ingredients: %w", err)
		}
		if len(ingredients) == 0 || len(ingredients) > 9 {
			return nil, fmt.Errorf("ingredients must have 1 to 9 entries, got %d", len(doc.Ingredients))
		}
		return &recipe.Shapeless{Name: doc.Name, Output: result, Ingredients: ingredients}, nil

	case kind.Is(recipe.KindSmelting):
		input, err := decodeChoice(doc.Input)
		if err != nil {
			return nil, fmt.Errorf("input: %w", err)
		}
		return &recipe.Furnace{
			Name:       doc.Name,
			Output:     result,
			Input:      input,
			Variant:    kind,
			Experience: doc.Experience,
			CookTime:   doc.CookTime,
		}, nil

	case kind == recipe.KindStonecutting:
		input, err := decodeChoice(doc.Input)
		if err != nil {
			return nil, fmt.Errorf("input: %w", err)
		}
		return &recipe.Stonecutting{Name: doc.Name, Output: result, Input: input}, nil

	case kind == recipe.KindSmithing:
		base, err := decodeChoice(doc.Base)
		if err != nil {
			return nil, fmt.Errorf("base: %w", err)
		}
		addition, err := decodeChoice(doc.Addition)
		if err != nil {
			return nil, fmt.Errorf("addition: %w", err)
		}
		return &recipe.Smithing{Name: doc.Name, Output: result, Base: base, Addition: addition}, nil

	default:
		return nil, fmt.Errorf("unsupported recipe kind: %q", doc.Kind)
	}
}

func decodeItem(doc *itemDoc) (item.Item, error) {
	if doc == nil {
		return item.Item{}, fmt.Errorf("missing item")
	}
	m, err := item.ParseMaterial(doc.Material)
	if err != nil {
		return item.Item{}, err
	}
	amount := doc.Amount
	if amount == 0 {
		amount = 1
	}
	if amount < 0 {
		return item.Item{}, fmt.Errorf("amount cannot be negative: %d", doc.Amount)
	}
	return item.Item{Material: m, Amount: amount, Meta: doc.Meta}, nil
}

// decodeChoice parses a "|"-separated material alternative list.
func decodeChoice(spec string) (recipe.Choice, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("missing ingredient")
	}
	parts := strings.Split(spec, "|")
	choice := make(recipe.MaterialChoice, 0, len(parts))
	for _, p := range parts {
		m, err := item.ParseMaterial(p)
		if err != nil {
			return nil, err
		}
		choice = append(choice, m)
	}
	return choice, nil
}

// decodeChoices parses a list of choice specs. When allowEmpty is true, an
// empty spec produces a nil choice (an empty shaped-grid slot).
func decodeChoices(specs []string, allowEmpty bool) ([]recipe.Choice, error) {
	choices := make([]recipe.Choice, 0, len(specs))
	for i, spec := range specs {
		if allowEmpty && strings.TrimSpace(spec) == "" {
			choices = append(choices, nil)
			continue
		}
		c, err := decodeChoice(spec)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		choices = append(choices, c)
	}
	return choices, nil
}
