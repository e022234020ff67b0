// Package descriptor provides the pluggable per-kind recipe interpretation
// layer: a Descriptor knows how to extract input choices from one concrete
// recipe shape and how to compute its output for a set of input items.
//
// Descriptors live in an ordered Registry. Lookup by a record's own kind uses
// first-match-wins over registration order, so a registry layering custom
// descriptors over the stock set should register the custom ones first.
// The Default registry covers all stock kinds.
//
// The registry is deliberately kept outside the snapshot core and injected
// into it, so hosts can interpret modded recipe kinds without touching the
// index itself.
package descriptor
