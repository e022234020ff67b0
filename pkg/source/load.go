// Copyright (c) 2025, Craftbase Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// LoadFiles reads and parses the given RecipeSet files concurrently and
// returns a single source yielding their records in argument order. An
// unreadable or unparseable file fails the whole load: the file level is the
// "source sequence cannot be obtained" boundary, while per-entry faults stay
// recoverable inside each Set.
func LoadFiles(ctx context.Context, paths ...string) (*Multi, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no recipe set files given")
	}

	sets := make([]Source, len(paths))
	g, gctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read recipe set %s: %w", path, err)
			}
			set, err := ParseSet(data, path)
			if err != nil {
				return err
			}
			slog.Debug("loaded recipe set", "path", path, "entries", len(set.entries))
			sets[i] = set
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return Concat(sets...), nil
}

// LoadFS walks an fs.FS tree, parsing every .yaml/.yml file as a RecipeSet,
// and returns a single source over all of them in lexical path order.
func LoadFS(fsys fs.FS, root string) (*Multi, error) {
	var paths []string
	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk recipe sets: %w", err)
	}
	sort.Strings(paths)

	sets := make([]Source, 0, len(paths))
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read recipe set %s: %w", path, err)
		}
		set, err := ParseSet(data, path)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return Concat(sets...), nil
}
