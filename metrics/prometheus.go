// Copyright (C) 2024 Halo Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	setupOnce sync.Once

	// Call counters for each operation on the engines, labelled by outcome.
	engineOpCounter *prometheus.CounterVec
	// Total time spent in each engine operation.
	engineTimeCounter *prometheus.CounterVec
)

// Register sets up the engine instruments and registers them with the
// default prometheus registerer. Safe to call more than once.
func Register() {
	setupOnce.Do(setup)
}

func setup() {
	engineOpCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "halo",
			Subsystem: "engine",
			Name:      "op_total",
			Help:      "Number of operations processed by the engines",
		},
		[]string{"engine", "op", "status"},
	)
	engineTimeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "halo",
			Subsystem: "engine",
			Name:      "seconds_total",
			Help:      "Total time spent in engine operations",
		},
		[]string{"engine", "op"},
	)
	prometheus.MustRegister(engineOpCounter, engineTimeCounter)
}

// EngineOpCounterInc increments the operation counter for the given
// engine/operation/outcome triple.
func EngineOpCounterInc(engine, op, status string) {
	if engineOpCounter == nil {
		return
	}
	engineOpCounter.WithLabelValues(engine, op, status).Inc()
}

// EngineTimeCounterAdd adds the duration of one operation to the per-op
// timing counter.
func EngineTimeCounterAdd(start time.Time, engine, op string) {
	if engineTimeCounter == nil {
		return
	}
	engineTimeCounter.WithLabelValues(engine, op).Add(time.Since(start).Seconds())
}
