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

package item

import (
	"fmt"
	"maps"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Material identifies an item type (e.g. "torch", "iron_ingot").
// Materials are lowercase snake_case identifiers.
type Material string

// String returns the string representation of the material.
func (m Material) String() string {
	return string(m)
}

// IsValid reports whether the material is a non-empty, normalized identifier.
func (m Material) IsValid() bool {
	if m == "" {
		return false
	}
	for _, r := range m {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

var titleCaser = cases.Title(language.English)

// Display returns the human-readable form of the material
// (e.g. "iron_ingot" becomes "Iron Ingot").
func (m Material) Display() string {
	return titleCaser.String(strings.ReplaceAll(string(m), "_", " "))
}

// ParseMaterial normalizes and validates a material identifier.
func ParseMaterial(s string) (Material, error) {
	m := Material(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("invalid material: %q", s)
	}
	return m, nil
}

// Item represents a stack of a single material with an amount and
// optional string metadata (display name, enchantments, etc.).
// Items are value types and are never mutated by the query engine.
type Item struct {
	// Material is the item type.
	Material Material `json:"material" yaml:"material"`

	// Amount is the stack size. Defaults to 1 when omitted in data files.
	Amount int `json:"amount,omitempty" yaml:"amount,omitempty"`

	// Meta holds optional kind-specific metadata as opaque key-value pairs.
	Meta map[string]string `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// New creates an item of the given material and amount without metadata.
func New(m Material, amount int) Item {
	return Item{Material: m, Amount: amount}
}

// IsZero reports whether the item is the empty value.
func (i Item) IsZero() bool {
	return i.Material == "" && i.Amount == 0 && len(i.Meta) == 0
}

// IsSimilar reports whether two items share the same material and metadata.
// Amounts are ignored, so a stack of 4 torches is similar to a single torch.
func (i Item) IsSimilar(other Item) bool {
	if i.Material != other.Material {
		return false
	}
	return maps.Equal(i.Meta, other.Meta)
}

// String returns a compact human-readable representation of the item.
func (i Item) String() string {
	if len(i.Meta) > 0 {
		return fmt.Sprintf("%dx %s (+%d meta)", i.Amount, i.Material, len(i.Meta))
	}
	return fmt.Sprintf("%dx %s", i.Amount, i.Material)
}
