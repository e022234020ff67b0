/*
Copyright © 2025 Craftbase Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/urfave/cli/v3"

	"github.com/craftbase/recipesnap/pkg/item"
	"github.com/craftbase/recipesnap/pkg/recipe"
	"github.com/craftbase/recipesnap/pkg/serializer"
	"github.com/craftbase/recipesnap/pkg/snapshot"
)

func queryCmd() *cli.Command {
	return &cli.Command{
		Name:                  "query",
		EnableShellCompletion: true,
		Usage:                 "Query a recipe snapshot",
		Description: `Build a snapshot from the given RecipeSet files and query it. Filters
combine: a recipe must satisfy every filter given.

  --kind        recipes of that kind or any refinement of it
  --result      recipes producing the given material
  --ingredient  recipes accepting the given material at any input slot

# Examples

  recipesnap query -f vanilla.yaml --result torch
  recipesnap query -f vanilla.yaml --kind crafting --ingredient coal --format table`,
		Flags: []cli.Flag{
			fileFlag,
			formatFlag,
			outputFlag,
			&cli.StringFlag{
				Name:  "kind",
				Usage: "Recipe kind to match (e.g. crafting, crafting.shaped)",
			},
			&cli.StringFlag{
				Name:  "result",
				Usage: "Material the recipe must produce",
			},
			&cli.StringFlag{
				Name:  "ingredient",
				Usage: "Material the recipe must accept as an input",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format %q, supported: %v",
					outFormat, serializer.SupportedFormats())
			}

			kindStr := cmd.String("kind")
			resultStr := cmd.String("result")
			ingredientStr := cmd.String("ingredient")
			if kindStr == "" && resultStr == "" && ingredientStr == "" {
				return fmt.Errorf("at least one of --kind, --result, --ingredient is required")
			}

			snap, err := buildSnapshot(ctx, cmd.StringSlice("file"))
			if err != nil {
				return err
			}

			recs, desc, err := runQuery(snap, kindStr, resultStr, ingredientStr)
			if err != nil {
				return err
			}

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()
			return w.Serialize(ctx, snap.Listing(desc, recs))
		},
	}
}

func runQuery(snap *snapshot.Snapshot, kindStr, resultStr, ingredientStr string) ([]recipe.Recipe, string, error) {
	var parts []string
	recs := snap.Select(func(recipe.Recipe) bool { return true })

	if kindStr != "" {
		kind := recipe.Kind(kindStr)
		if !kind.IsValid() {
			return nil, "", fmt.Errorf("invalid kind: %q", kindStr)
		}
		parts = append(parts, "kind="+kindStr)
		recs = intersect(recs, snap.ByKind(kind))
	}

	if resultStr != "" {
		m, err := item.ParseMaterial(resultStr)
		if err != nil {
			return nil, "", err
		}
		parts = append(parts, "result="+resultStr)
		producing := snap.ForMaterial(m)
		if len(producing) == 0 {
			if suggestion := nearestResultMaterial(snap, m); suggestion != "" {
				return nil, "", fmt.Errorf("no recipes produce %q, did you mean %q?", m, suggestion)
			}
		}
		recs = intersect(recs, producing)
	}

	if ingredientStr != "" {
		m, err := item.ParseMaterial(ingredientStr)
		if err != nil {
			return nil, "", err
		}
		parts = append(parts, "ingredient="+ingredientStr)
		recs = intersect(recs, snap.With(item.New(m, 1)))
	}

	return recs, strings.Join(parts, " "), nil
}

// intersect keeps the records of a that are also in b, preserving a's order.
// Records are compared by identity.
func intersect(a, b []recipe.Recipe) []recipe.Recipe {
	inB := make(map[recipe.Recipe]struct{}, len(b))
	for _, rec := range b {
		inB[rec] = struct{}{}
	}
	var out []recipe.Recipe
	for _, rec := range a {
		if _, ok := inB[rec]; ok {
			out = append(out, rec)
		}
	}
	return out
}

// nearestResultMaterial finds the closest result material present in the
// snapshot, within an edit distance budget scaled to the query length.
func nearestResultMaterial(snap *snapshot.Snapshot, m item.Material) item.Material {
	best := item.Material("")
	bestDist := suggestionLimit(len(m)) + 1
	seen := make(map[item.Material]struct{})

	for rec := range snap.All() {
		candidate := rec.Result().Material
		if _, done := seen[candidate]; done {
			continue
		}
		seen[candidate] = struct{}{}
		dist := levenshtein.ComputeDistance(m.String(), candidate.String())
		if dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}
	return best
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
