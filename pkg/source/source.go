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

import "github.com/craftbase/recipesnap/pkg/recipe"

// Source is the pull-based record protocol consumed by snapshot.Build.
// Declared here as well so sources can be composed without importing the
// snapshot package.
type Source interface {
	Next() (rec recipe.Recipe, ok bool, err error)
}

// Slice is an in-memory source over a fixed list of records.
type Slice struct {
	recs []recipe.Recipe
	pos  int
}

// FromRecipes creates a source that yields the given records in order.
func FromRecipes(recs ...recipe.Recipe) *Slice {
	return &Slice{recs: recs}
}

// Next implements Source.
func (s *Slice) Next() (recipe.Recipe, bool, error) {
	if s.pos >= len(s.recs) {
		return nil, false, nil
	}
	rec := s.recs[s.pos]
	s.pos++
	return rec, true, nil
}

// Multi concatenates sources, exhausting each in turn.
type Multi struct {
	sources []Source
}

// Concat creates a source that yields all records of the given sources in
// argument order.
func Concat(sources ...Source) *Multi {
	return &Multi{sources: sources}
}

// Next implements Source.
func (m *Multi) Next() (recipe.Recipe, bool, error) {
	for len(m.sources) > 0 {
		rec, ok, err := m.sources[0].Next()
		if err != nil {
			return nil, true, err
		}
		if ok {
			return rec, true, nil
		}
		m.sources = m.sources[1:]
	}
	return nil, false, nil
}
