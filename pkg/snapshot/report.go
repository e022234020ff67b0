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

package snapshot

import (
	"strconv"
	"strings"
	"time"

	"github.com/craftbase/recipesnap/pkg/header"
	"github.com/craftbase/recipesnap/pkg/item"
	"github.com/craftbase/recipesnap/pkg/recipe"
)

// ReportAPIVersion is the schema version of serialized snapshot reports.
const ReportAPIVersion = "v1"

// KindCount is one row of the snapshot's kind census.
type KindCount struct {
	Kind  recipe.Kind `json:"kind" yaml:"kind"`
	Count int         `json:"count" yaml:"count"`
}

// Report is the serializable summary of a snapshot: identity, build time,
// and a census of records per kind in bucket order.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	ID      string      `json:"id" yaml:"id"`
	BuiltAt time.Time   `json:"builtAt" yaml:"builtAt"`
	Total   int         `json:"total" yaml:"total"`
	Kinds   []KindCount `json:"kinds" yaml:"kinds"`
}

// Report builds the snapshot's summary view.
func (s *Snapshot) Report() *Report {
	counts := make([]KindCount, 0, len(s.kinds))
	for _, k := range s.kinds {
		counts = append(counts, KindCount{Kind: k, Count: len(s.index[k])})
	}
	return &Report{
		Header: header.Header{
			Kind:       header.KindSnapshot,
			APIVersion: ReportAPIVersion,
		},
		ID:      s.id,
		BuiltAt: s.builtAt,
		Total:   s.size,
		Kinds:   counts,
	}
}

// TableHeader implements the serializer table contract.
func (r *Report) TableHeader() []string {
	return []string{"KIND", "RECIPES"}
}

// TableRows implements the serializer table contract.
func (r *Report) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Kinds)+1)
	for _, kc := range r.Kinds {
		rows = append(rows, []string{kc.Kind.String(), strconv.Itoa(kc.Count)})
	}
	rows = append(rows, []string{"total", strconv.Itoa(r.Total)})
	return rows
}

// Entry is the display view of one record in a query listing.
type Entry struct {
	Kind   recipe.Kind `json:"kind" yaml:"kind"`
	Name   string      `json:"name,omitempty" yaml:"name,omitempty"`
	Result item.Item   `json:"result" yaml:"result"`

	// Inputs lists the accepted materials per slot, resolved through the
	// inferred-descriptor path. Empty for kinds with no descriptor.
	Inputs []string `json:"inputs,omitempty" yaml:"inputs,omitempty"`
}

// Listing is the serializable result of one query against a snapshot.
type Listing struct {
	SnapshotID string  `json:"snapshotId" yaml:"snapshotId"`
	Query      string  `json:"query" yaml:"query"`
	Count      int     `json:"count" yaml:"count"`
	Recipes    []Entry `json:"recipes" yaml:"recipes"`
}

// Listing builds the display view of a set of records, resolving ingredient
// materials through the snapshot's descriptor registry.
func (s *Snapshot) Listing(query string, recs []recipe.Recipe) *Listing {
	entries := make([]Entry, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, s.entryOf(rec))
	}
	return &Listing{
		SnapshotID: s.id,
		Query:      query,
		Count:      len(entries),
		Recipes:    entries,
	}
}

func (s *Snapshot) entryOf(rec recipe.Recipe) Entry {
	e := Entry{
		Kind:   rec.Kind(),
		Result: rec.Result(),
	}
	switch r := rec.(type) {
	case *recipe.Shaped:
		e.Name = r.Name
	case *recipe.Shapeless:
		e.Name = r.Name
	case *recipe.Furnace:
		e.Name = r.Name
	case *recipe.Stonecutting:
		e.Name = r.Name
	case *recipe.Smithing:
		e.Name = r.Name
	}
	for _, choice := range s.InputsFor(rec) {
		if choice == nil {
			e.Inputs = append(e.Inputs, "")
			continue
		}
		mats := recipe.Materials(choice)
		parts := make([]string, 0, len(mats))
		for _, m := range mats {
			parts = append(parts, m.String())
		}
		e.Inputs = append(e.Inputs, strings.Join(parts, "|"))
	}
	return e
}

// TableHeader implements the serializer table contract.
func (l *Listing) TableHeader() []string {
	return []string{"KIND", "NAME", "RESULT", "INPUTS"}
}

// TableRows implements the serializer table contract.
func (l *Listing) TableRows() [][]string {
	rows := make([][]string, 0, len(l.Recipes))
	for _, e := range l.Recipes {
		rows = append(rows, []string{
			e.Kind.String(),
			e.Name,
			e.Result.String(),
			strings.Join(e.Inputs, ", "),
		})
	}
	return rows
}
