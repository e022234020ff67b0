// Package header provides common header types for recipesnap data
// structures.
//
// The Header type is shared by recipe-set data files and snapshot reports to
// provide consistent metadata and versioning information:
//
//	kind: RecipeSet
//	apiVersion: v1
//	metadata:
//	  source: vanilla
package header
