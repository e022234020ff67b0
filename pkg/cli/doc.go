// Package cli implements the recipesnap command surface: snapshot (build an
// index over RecipeSet files and report it) and query (typed and reverse
// lookups against a freshly built snapshot).
package cli
