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
	"log/slog"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/craftbase/recipesnap/pkg/descriptor"
	recipeerrors "github.com/craftbase/recipesnap/pkg/errors"
	"github.com/craftbase/recipesnap/pkg/recipe"
)

// Source is the pull-based protocol over a live recipe registry. Next
// returns the next record, or ok=false once the sequence is exhausted.
// A non-nil error marks a single faulty record: the snapshot builder logs
// it, skips it, and keeps pulling. An error reported together with
// ok=false ends the pass after the fault is logged.
type Source interface {
	Next() (rec recipe.Recipe, ok bool, err error)
}

// Option configures snapshot construction.
type Option func(*buildConfig)

type buildConfig struct {
	logger   *slog.Logger
	registry *descriptor.Registry
}

// WithLogger sets the logger used during construction. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *buildConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRegistry sets the descriptor registry used by the inferred-descriptor
// query paths (InputsFor, With). Defaults to descriptor.Default().
func WithRegistry(reg *descriptor.Registry) Option {
	return func(c *buildConfig) {
		if reg != nil {
			c.registry = reg
		}
	}
}

// Snapshot is a point-in-time index over a registry's recipe records,
// partitioned by concrete kind. It is immutable once built and safe for
// unsynchronized concurrent reads.
type Snapshot struct {
	// id identifies this snapshot in logs and reports.
	id string

	// kinds preserves first-seen bucket order so that every traversal of
	// the same snapshot visits records in the same order.
	kinds []recipe.Kind
	index map[recipe.Kind][]recipe.Recipe
	size  int

	registry *descriptor.Registry
	builtAt  time.Time
}

// Build captures a snapshot from the given source in a single blocking pass.
//
// A failure pulling or classifying an individual record is logged as a
// warning and the record is skipped; construction never fails because of a
// single bad record. Build returns an error only when src is nil, which is a
// calling-convention error rather than a data irregularity.
func Build(src Source, opts ...Option) (*Snapshot, error) {
	if src == nil {
		return nil, recipeerrors.New(recipeerrors.ErrCodeInvalidArgument, "snapshot source cannot be nil")
	}

	cfg := &buildConfig{
		logger:   slog.Default(),
		registry: descriptor.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	start := time.Now()
	defer func() {
		snapshotBuildDuration.Observe(time.Since(start).Seconds())
	}()

	s := &Snapshot{
		id:       uuid.NewString(),
		index:    make(map[recipe.Kind][]recipe.Recipe),
		registry: cfg.registry,
		builtAt:  start,
	}

	cfg.logger.Info("collecting recipe snapshot", "id", s.id)

	// Per-kind identity sets, used only during the build pass.
	seen := make(map[recipe.Kind]map[recipe.Recipe]struct{})

	for {
		rec, ok, err := src.Next()
		if err != nil {
			cfg.logger.Warn("skipping faulty recipe record",
				"kind", recipeerrors.CodeOf(err).String(),
				"error", err.Error(),
			)
			recordsSkipped.Inc()
			if !ok {
				break
			}
			continue
		}
		if !ok {
			break
		}
		if isNilRecord(rec) || !rec.Kind().IsValid() {
			cfg.logger.Warn("skipping faulty recipe record",
				"kind", recipeerrors.ErrCodeMalformedRecord.String(),
				"error", "record is nil or carries an invalid kind",
			)
			recordsSkipped.Inc()
			continue
		}

		kind := rec.Kind()
		bucket, exists := seen[kind]
		if !exists {
			bucket = make(map[recipe.Recipe]struct{})
			seen[kind] = bucket
			s.kinds = append(s.kinds, kind)
		}
		if _, dup := bucket[rec]; dup {
			continue
		}
		bucket[rec] = struct{}{}
		s.index[kind] = append(s.index[kind], rec)
		s.size++
		recordsIndexed.Inc()
	}

	cfg.logger.Info("recipe snapshot complete", "id", s.id, "recipes", s.size, "kinds", len(s.kinds))
	return s, nil
}

// isNilRecord reports whether rec is nil or an interface holding a typed
// nil pointer. Kind() tolerates a nil receiver on the stock record types,
// so a typed nil would survive classification and crash the first query
// that touches Result().
func isNilRecord(rec recipe.Recipe) bool {
	if rec == nil {
		return true
	}
	v := reflect.ValueOf(rec)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// ID returns the snapshot's unique identifier.
func (s *Snapshot) ID() string {
	return s.id
}

// Size returns the total number of indexed records.
func (s *Snapshot) Size() int {
	return s.size
}

// BuiltAt returns the time the snapshot pass started.
func (s *Snapshot) BuiltAt() time.Time {
	return s.builtAt
}

// Kinds returns the concrete kinds present in the snapshot, in first-seen
// order. The returned slice is a copy.
func (s *Snapshot) Kinds() []recipe.Kind {
	out := make([]recipe.Kind, len(s.kinds))
	copy(out, s.kinds)
	return out
}
