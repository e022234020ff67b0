// Package source provides concrete record sources for snapshot construction:
// in-memory slices, YAML RecipeSet documents, and multi-file loaders.
//
// A RecipeSet file carries a standard header followed by recipe entries:
//
//	kind: RecipeSet
//	apiVersion: v1
//	recipes:
//	  - kind: crafting.shaped
//	    name: torch
//	    result: {material: torch, amount: 4}
//	    grid: ["coal|charcoal", "stick"]
//	  - kind: smelting.furnace
//	    result: {material: iron_ingot}
//	    input: iron_ore
//	    experience: 0.7
//
// Entries are decoded one at a time during the snapshot pass, so a single
// malformed entry is reported through the source protocol as a per-record
// fault and skipped, without aborting the pass.
package source
