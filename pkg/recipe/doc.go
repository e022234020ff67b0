// Package recipe defines the recipe record model: the Kind refinement
// hierarchy, the Recipe interface implemented by every concrete record, and
// the Choice acceptance predicate used for ingredient slots.
//
// # Kinds
//
// Kinds are dotted identifiers forming a refinement hierarchy:
//
//	crafting
//	├── crafting.shaped
//	└── crafting.shapeless
//	smelting
//	├── smelting.furnace
//	├── smelting.blast
//	├── smelting.smoker
//	└── smelting.campfire
//	stonecutting
//	smithing
//
// Kind.Is implements the refinement test used by polymorphic snapshot
// queries: KindShaped.Is(KindCrafting) is true, the reverse is false.
//
// # Records
//
// Concrete records (Shaped, Shapeless, Furnace, Stonecutting, Smithing) are
// pointer types with exported fields. The snapshot core never interprets the
// kind-specific fields; that is the job of the per-kind descriptors in the
// descriptor package.
package recipe
