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
	"context"
	"time"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/identity-zk/idcli/internal/idmsgs"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

type Metrics interface {
	IsMetricsEnabled() bool
	RecordActionMetrics(ctx context.Context, action, outcome string, duration time.Duration)
	// Flush writes the registry to the textfile, for collection by node-exporter after the process exits
	Flush(ctx context.Context) error
}

type metricsManager struct {
	ctx            context.Context
	metricsEnabled bool
	textfile       string
}

// NewMetricsManager enables metrics when a textfile path is supplied
func NewMetricsManager(ctx context.Context, textfile string) Metrics {
	mm := &metricsManager{
		ctx:            ctx,
		metricsEnabled: textfile != "",
		textfile:       textfile,
	}
	if mm.metricsEnabled {
		Registry()
	}
	return mm
}

func (mm *metricsManager) IsMetricsEnabled() bool {
	return mm.metricsEnabled
}

func (mm *metricsManager) RecordActionMetrics(ctx context.Context, action, outcome string, duration time.Duration) {
	if !mm.metricsEnabled {
		return
	}
	Registry()
	actionsTotal.With(prometheus.Labels{metricsLabelAction: action, metricsLabelOutcome: outcome}).Inc()
	actionDuration.With(prometheus.Labels{metricsLabelAction: action}).Observe(duration.Seconds())
	log.L(ctx).Tracef("Recorded metrics for action=%s outcome=%s", action, outcome)
}

func (mm *metricsManager) Flush(ctx context.Context) error {
	if !mm.metricsEnabled {
		return nil
	}
	if err := prometheus.WriteToTextfile(mm.textfile, Registry()); err != nil {
		return i18n.WrapError(ctx, err, idmsgs.MsgMetricsWriteFailed, mm.textfile)
	}
	log.L(ctx).Debugf("Wrote metrics to %s", mm.textfile)
	return nil
}
