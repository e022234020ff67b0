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
	"fmt"
	"iter"

	"github.com/craftbase/recipesnap/pkg/item"
	"github.com/craftbase/recipesnap/pkg/recipe"
)

// Descriptor is the per-kind strategy that knows how to interpret one
// concrete recipe shape: how to extract its input choices and how to compute
// its output for a given set of input items.
type Descriptor interface {
	// Kind returns the recipe kind this descriptor handles. Records whose
	// kind refines it are also handled.
	Kind() recipe.Kind

	// Inputs extracts the record's ordered input choices. The result is nil
	// when the record is not of the descriptor's kind.
	Inputs(rec recipe.Recipe) []recipe.Choice

	// Validate performs the arity/shape check for a candidate input set.
	// It must be cheap: it runs before any index scan.
	Validate(inputs []item.Item) bool

	// Output searches the candidate records for the first one whose input
	// choices accept the given items and returns its result. The boolean is
	// false when no candidate matches.
	Output(candidates iter.Seq[recipe.Recipe], inputs []item.Item) (item.Item, bool)
}

// Registry maps recipe kinds to descriptors. Registration order is
// significant: FindFor returns the first registered descriptor whose kind the
// record's kind refines. The registry is not safe for concurrent mutation;
// register everything up front, then share it freely for reads.
type Registry struct {
	ordered []Descriptor
	byKind  map[recipe.Kind]Descriptor
}

// NewRegistry creates an empty descriptor registry.
func NewRegistry() *Registry {
	return &Registry{
		byKind: make(map[recipe.Kind]Descriptor),
	}
}

// Register appends a descriptor to the registry. Registering a nil
// descriptor, an invalid kind, or a kind that is already present is a
// programmer error and returns an error without modifying the registry.
func (r *Registry) Register(d Descriptor) error {
	if d == nil {
		return fmt.Errorf("descriptor cannot be nil")
	}
	kind := d.Kind()
	if !kind.IsValid() {
		return fmt.Errorf("descriptor kind is invalid: %q", kind)
	}
	if _, exists := r.byKind[kind]; exists {
		return fmt.Errorf("descriptor already registered for kind %q", kind)
	}
	r.ordered = append(r.ordered, d)
	r.byKind[kind] = d
	return nil
}

// MustRegister is Register that panics on error, for static registries.
func (r *Registry) MustRegister(descriptors ...Descriptor) *Registry {
	for _, d := range descriptors {
		if err := r.Register(d); err != nil {
			panic(fmt.Sprintf("descriptor: %v", err))
		}
	}
	return r
}

// Get returns the descriptor registered for exactly the given kind.
func (r *Registry) Get(kind recipe.Kind) (Descriptor, bool) {
	d, ok := r.byKind[kind]
	return d, ok
}

// FindFor returns the first registered descriptor whose kind matches the
// record's concrete kind (equal or refined by it). Returns false when no
// descriptor matches; callers treat that as "kind not interpretable", not
// as an error.
func (r *Registry) FindFor(rec recipe.Recipe) (Descriptor, bool) {
	if rec == nil {
		return nil, false
	}
	kind := rec.Kind()
	for _, d := range r.ordered {
		if kind.Is(d.Kind()) {
			return d, true
		}
	}
	return nil, false
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	return len(r.ordered)
}

// Default returns a fresh registry with descriptors for all stock kinds.
func Default() *Registry {
	return NewRegistry().MustRegister(
		Shaped{},
		Shapeless{},
		Cooking{Variant: recipe.KindFurnace},
		Cooking{Variant: recipe.KindBlasting},
		Cooking{Variant: recipe.KindSmoking},
		Cooking{Variant: recipe.KindCampfire},
		Stonecutter{},
		Smith{},
	)
}
