package snapshot

import (
	"iter"

	"github.com/craftbase/recipesnap/pkg/descriptor"
	"github.com/craftbase/recipesnap/pkg/item"
	"github.com/craftbase/recipesnap/pkg/recipe"
)

// All returns a lazy sequence over every indexed record: arbitrary (but
// fixed) order across kinds, insertion order within a kind. Each call yields
// a fresh, independent traversal.
func (s *Snapshot) All() iter.Seq[recipe.Recipe] {
	return func(yield func(recipe.Recipe) bool) {
		for _, kind := range s.kinds {
			for _, rec := range s.index[kind] {
				if !yield(rec) {
					return
				}
			}
		}
	}
}

// Stream returns a lazy sequence of records whose concrete kind is the given
// kind or a refinement of it.
func (s *Snapshot) Stream(kind recipe.Kind) iter.Seq[recipe.Recipe] {
	return func(yield func(recipe.Recipe) bool) {
		for _, k := range s.kinds {
			if !k.Is(kind) {
				continue
			}
			for _, rec := range s.index[k] {
				if !yield(rec) {
					return
				}
			}
		}
	}
}

// ByKind returns the materialized set of records whose concrete kind is the
// given kind or a refinement of it.
func (s *Snapshot) ByKind(kind recipe.Kind) []recipe.Recipe {
	var out []recipe.Recipe
	for rec := range s.Stream(kind) {
		out = append(out, rec)
	}
	return out
}

// Select returns every record matching the predicate. The predicate is
// evaluated once per indexed record. Select panics when pred is nil.
func (s *Snapshot) Select(pred func(recipe.Recipe) bool) []recipe.Recipe {
	if pred == nil {
		panic("snapshot: nil predicate")
	}
	var out []recipe.Recipe
	for rec := range s.All() {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Inputs returns the record's ordered input choices using an explicitly
// supplied descriptor. Inputs panics when desc is nil; use InputsFor to let
// the snapshot infer the descriptor instead.
func (s *Snapshot) Inputs(desc descriptor.Descriptor, rec recipe.Recipe) []recipe.Choice {
	if desc == nil {
		panic("snapshot: nil descriptor")
	}
	return desc.Inputs(rec)
}

// InputsFor returns the record's ordered input choices, inferring the
// descriptor from the record's own kind (first match in registration order).
// When no descriptor matches, the result is empty rather than an error; this
// is a lossy convenience path, and callers that must distinguish "no inputs"
// from "unknown kind" should resolve the descriptor themselves and call
// Inputs.
func (s *Snapshot) InputsFor(rec recipe.Recipe) []recipe.Choice {
	desc, ok := s.registry.FindFor(rec)
	if !ok {
		return nil
	}
	return desc.Inputs(rec)
}

// Output computes the result of crafting the given inputs with a recipe of
// the descriptor's kind. The descriptor's shape check runs first: if the
// inputs are structurally impossible for that kind (wrong arity), Output
// returns false immediately without scanning the index. Otherwise the
// descriptor searches the kind's records for the first match. Output panics
// when desc is nil.
func (s *Snapshot) Output(desc descriptor.Descriptor, inputs ...item.Item) (item.Item, bool) {
	if desc == nil {
		panic("snapshot: nil descriptor")
	}
	if !desc.Validate(inputs) {
		return item.Item{}, false
	}
	return desc.Output(s.Stream(desc.Kind()), inputs)
}

// ForMaterial returns every record whose result item is of the given
// material, ignoring amount and metadata.
func (s *Snapshot) ForMaterial(m item.Material) []recipe.Recipe {
	return s.Select(func(rec recipe.Recipe) bool {
		return rec.Result().Material == m
	})
}

// ForItem returns every record whose result is similar to the given item
// (same material and metadata, amount ignored).
func (s *Snapshot) ForItem(it item.Item) []recipe.Recipe {
	return s.Select(func(rec recipe.Recipe) bool {
		return rec.Result().IsSimilar(it)
	})
}

// With returns every record that accepts the given item at any of its input
// slots. Input choices are resolved through the inferred-descriptor path, so
// records of kinds with no registered descriptor are never matched.
func (s *Snapshot) With(it item.Item) []recipe.Recipe {
	return s.Select(func(rec recipe.Recipe) bool {
		for _, choice := range s.InputsFor(rec) {
			if choice != nil && choice.Test(it) {
				return true
			}
		}
		return false
	})
}
