// Package serializer handles output of snapshot reports and query results in
// JSON, YAML, or table format, to stdout or to a file.
//
// Table output is driven by the Tabler interface; values that do not
// implement it fall back to JSON.
package serializer
