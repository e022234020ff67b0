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

import "strings"

// Kind is the concrete category of a recipe record. Kinds form a dotted
// refinement hierarchy: "crafting.shaped" refines "crafting", which in turn
// refines KindAny. A snapshot bucket is keyed by the record's own concrete
// kind, never by an ancestor.
type Kind string

// Stock recipe kinds. The hierarchy is open: data files and plugins may
// introduce refinements of any of these (e.g. "crafting.shaped.large").
const (
	// KindAny matches every record.
	KindAny Kind = ""

	KindCrafting  Kind = "crafting"
	KindShaped    Kind = "crafting.shaped"
	KindShapeless Kind = "crafting.shapeless"

	KindSmelting Kind = "smelting"
	KindFurnace  Kind = "smelting.furnace"
	KindBlasting Kind = "smelting.blast"
	KindSmoking  Kind = "smelting.smoker"
	KindCampfire Kind = "smelting.campfire"

	KindStonecutting Kind = "stonecutting"
	KindSmithing     Kind = "smithing"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether the kind is a well-formed dotted identifier.
func (k Kind) IsValid() bool {
	if k == "" {
		return false
	}
	if strings.HasPrefix(string(k), ".") || strings.HasSuffix(string(k), ".") {
		return false
	}
	return !strings.Contains(string(k), "..")
}

// Is reports whether k is the given kind or a refinement of it.
// Every kind refines KindAny.
func (k Kind) Is(ancestor Kind) bool {
	if ancestor == KindAny {
		return true
	}
	return k == ancestor || strings.HasPrefix(string(k), string(ancestor)+".")
}

// Parent returns the immediate ancestor of the kind, or KindAny for
// top-level kinds.
func (k Kind) Parent() Kind {
	i := strings.LastIndex(string(k), ".")
	if i < 0 {
		return KindAny
	}
	return k[:i]
}
