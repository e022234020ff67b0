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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	snapshotBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipesnap_snapshot_build_duration_seconds",
			Help:    "Duration of snapshot construction in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
	)

	recordsIndexed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipesnap_records_indexed_total",
			Help: "Total number of recipe records indexed into snapshots",
		},
	)
	recordsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipesnap_records_skipped_total",
			Help: "Total number of faulty recipe records skipped during snapshot construction",
		},
	)
)
