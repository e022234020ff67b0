// Package snapshot builds a point-in-time, queryable index over a game
// server's crafting-recipe definitions and exposes typed and predicate-based
// lookups against it.
//
// # Construction
//
// Build pulls records from a Source exactly once, partitioning them by
// concrete kind into insertion-ordered, duplicate-free buckets. A faulty
// record (pull or classification failure) is logged as a warning and
// skipped; construction never aborts because of a single bad record. Game
// registries routinely contain third-party records that violate assumptions,
// so all fault tolerance lives in the one construction pass rather than in
// every query.
//
// # Queries
//
// Once built, a Snapshot is immutable: every query is a pure function over
// the fixed index and is safe to run concurrently without locking.
//
//	snap, err := snapshot.Build(src)
//	torches := snap.ForMaterial("torch")             // reverse lookup by result
//	uses := snap.With(item.New("coal", 1))           // reverse lookup by ingredient
//	out, ok := snap.Output(descriptor.Shaped{}, ...) // resolve output for inputs
//
// Sequence-returning queries (All, Stream) are lazy and restartable: each
// call produces a fresh traversal with no shared cursor, stable across
// repeated calls against the same snapshot. Set-returning queries carry no
// defined order.
//
// Data irregularities (unknown kinds, impossible input shapes) are absorbed
// as empty results. Only calling-convention errors surface hard: Build
// rejects a nil source, and query methods panic on nil predicates or
// descriptors.
package snapshot
