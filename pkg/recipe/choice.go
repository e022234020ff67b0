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

package recipe

import (
	"slices"

	"github.com/craftbase/recipesnap/pkg/item"
)

// Choice is a per-slot acceptance predicate over items: any item for which
// Test returns true is acceptable at that ingredient slot.
type Choice interface {
	Test(it item.Item) bool
}

// MaterialChoice accepts any item whose material is in the list,
// regardless of amount or metadata.
type MaterialChoice []item.Material

// Test implements Choice.
func (c MaterialChoice) Test(it item.Item) bool {
	return slices.Contains(c, it.Material)
}

// ExactChoice accepts only items similar to one of the listed items
// (material and metadata must match, amount is ignored).
type ExactChoice []item.Item

// Test implements Choice.
func (c ExactChoice) Test(it item.Item) bool {
	return slices.ContainsFunc(c, it.IsSimilar)
}

// Materials returns the materials accepted by a choice when the choice is
// one of the stock implementations, nil otherwise. Used for display only.
func Materials(c Choice) []item.Material {
	switch v := c.(type) {
	case MaterialChoice:
		return slices.Clone(v)
	case ExactChoice:
		out := make([]item.Material, 0, len(v))
		for _, it := range v {
			out = append(out, it.Material)
		}
		return out
	default:
		return nil
	}
}
