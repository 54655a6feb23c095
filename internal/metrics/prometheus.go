// Copyright © 2026 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "idcli"

const metricsLabelAction = "action"
const metricsLabelOutcome = "outcome"

const mtrCounterActionsTotal = "actions_total"
const mtrCounterActionsTotalDescription = "Number of actions dispatched grouped by action and outcome"
const mtrHistogramActionDuration = "action_duration_seconds"
const mtrHistogramActionDurationDescription = "Duration of individual actions grouped by action"

var registry *prometheus.Registry
var actionsTotal *prometheus.CounterVec
var actionDuration *prometheus.HistogramVec

// Registry returns the private Prometheus registry of the CLI
func Registry() *prometheus.Registry {
	if registry == nil {
		initMetricsCollectors()
		registry = prometheus.NewRegistry()
		registerMetricsCollectors()
	}

	return registry
}

// Clear will reset the Prometheus metrics registry, useful for testing
func Clear() {
	registry = nil
}

func initMetricsCollectors() {
	actionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      mtrCounterActionsTotal,
		Help:      mtrCounterActionsTotalDescription,
	}, []string{metricsLabelAction, metricsLabelOutcome})
	actionDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      mtrHistogramActionDuration,
		Help:      mtrHistogramActionDurationDescription,
		Buckets:   prometheus.DefBuckets,
	}, []string{metricsLabelAction})
}

func registerMetricsCollectors() {
	registry.MustRegister(actionsTotal)
	registry.MustRegister(actionDuration)
}
