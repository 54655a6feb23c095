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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestMetricsManager(t *testing.T, textfile string) (*metricsManager, func()) {
	Clear()
	ctx, cancel := context.WithCancel(context.Background())
	mmi := NewMetricsManager(ctx, textfile)
	mm := mmi.(*metricsManager)
	return mm, cancel
}

func TestRecordAndFlush(t *testing.T) {
	ctx := context.Background()
	textfile := filepath.Join(t.TempDir(), "idcli.prom")
	mm, cancel := newTestMetricsManager(t, textfile)
	defer cancel()
	assert.True(t, mm.IsMetricsEnabled())

	mm.RecordActionMetrics(ctx, "merchant-name", OutcomeSuccess, 250*time.Millisecond)
	mm.RecordActionMetrics(ctx, "merchant-name", OutcomeSuccess, 10*time.Millisecond)
	mm.RecordActionMetrics(ctx, "verify-proof", OutcomeError, time.Second)
	err := mm.Flush(ctx)
	assert.NoError(t, err)

	b, err := os.ReadFile(textfile)
	assert.NoError(t, err)
	assert.Contains(t, string(b), `idcli_actions_total{action="merchant-name",outcome="success"} 2`)
	assert.Contains(t, string(b), `idcli_actions_total{action="verify-proof",outcome="error"} 1`)
	assert.Contains(t, string(b), `idcli_action_duration_seconds_count{action="merchant-name"} 2`)
}

func TestFlushFail(t *testing.T) {
	ctx := context.Background()
	mm, cancel := newTestMetricsManager(t, filepath.Join(t.TempDir(), "missing", "dir", "idcli.prom"))
	defer cancel()
	mm.RecordActionMetrics(ctx, "merchant-name", OutcomeSuccess, time.Millisecond)
	err := mm.Flush(ctx)
	assert.Regexp(t, "IDC10050", err)
}

func TestMetricsDisabled(t *testing.T) {
	ctx := context.Background()
	mm, cancel := newTestMetricsManager(t, "")
	defer cancel()
	assert.False(t, mm.IsMetricsEnabled())
	mm.RecordActionMetrics(ctx, "merchant-name", OutcomeSuccess, time.Millisecond)
	assert.NoError(t, mm.Flush(ctx))
}
