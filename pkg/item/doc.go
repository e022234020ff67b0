// Package item defines the item model shared by recipe records and the
// snapshot query engine: a Material identifier, an Item value (material,
// amount, opaque metadata), and the similarity relation used for fine-grained
// reverse lookups.
//
// Items are immutable value types. The engine distinguishes two match
// granularities:
//
//   - coarse: same Material (ForMaterial)
//   - fine: same Material and identical metadata, ignoring amount (ForItem)
package item
