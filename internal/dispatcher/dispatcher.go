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

package dispatcher

import (
	"context"
	"fmt"
	"time"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/identity-zk/idcli/internal/idmsgs"
	"github.com/identity-zk/idcli/internal/metrics"
	"github.com/oklog/ulid/v2"
)

// Outcome is the result of one dispatched action. Exactly one of Result or Err
// is meaningful.
type Outcome struct {
	Action       string
	InvocationID string
	Result       interface{}
	Err          error
	Duration     time.Duration
}

func (o *Outcome) Failed() bool {
	return o.Err != nil
}

// Dispatcher maps command names to actions, and funnels every invocation
// through SafeExecute so each one produces exactly one report
type Dispatcher struct {
	actions  map[string]*Action
	order    []string
	reporter *Reporter
	metrics  metrics.Metrics
}

func New(reporter *Reporter, mm metrics.Metrics) *Dispatcher {
	return &Dispatcher{
		actions:  make(map[string]*Action),
		reporter: reporter,
		metrics:  mm,
	}
}

func (d *Dispatcher) Register(ctx context.Context, actions ...*Action) error {
	for _, a := range actions {
		if _, exists := d.actions[a.Name]; exists {
			return i18n.NewError(ctx, idmsgs.MsgDuplicateAction, a.Name)
		}
		if a.Fn == nil {
			return i18n.NewError(ctx, idmsgs.MsgInvalidAction, a.Name)
		}
		d.actions[a.Name] = a
		d.order = append(d.order, a.Name)
	}
	return nil
}

// Actions returns the registered actions in registration order
func (d *Dispatcher) Actions() []*Action {
	actions := make([]*Action, len(d.order))
	for i, name := range d.order {
		actions[i] = d.actions[name]
	}
	return actions
}

func (d *Dispatcher) Lookup(name string) (*Action, bool) {
	a, ok := d.actions[name]
	return a, ok
}

// Dispatch validates the command name and arity, then runs the action.
// Unknown commands and arity mismatches are returned as errors without
// invoking anything; failures of the action itself are reported, and carried
// on the Outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args []string) (*Outcome, error) {
	action, ok := d.actions[name]
	if !ok {
		return nil, i18n.NewError(ctx, idmsgs.MsgUnknownCommand, name)
	}
	if len(args) != action.Arity() {
		return nil, i18n.NewError(ctx, idmsgs.MsgArityMismatch, name, action.Arity(), action.Params, len(args))
	}
	return d.SafeExecute(ctx, action, args), nil
}

func (d *Dispatcher) SafeExecute(ctx context.Context, action *Action, args []string) *Outcome {
	outcome := &Outcome{
		Action:       action.Name,
		InvocationID: ulid.Make().String(),
	}
	ctx = log.WithLogField(ctx, "invocation", outcome.InvocationID)
	log.L(ctx).Debugf("Executing %s with %d argument(s)", action.Name, len(args))

	start := time.Now()
	result, err := invoke(ctx, action.Fn, args)
	outcome.Duration = time.Since(start)

	if err == nil {
		outcome.Result = result
		// a result that cannot be reported is a failure of the run
		if err = d.reporter.Success(ctx, outcome); err != nil {
			outcome.Result = nil
		}
	}

	metricsOutcome := metrics.OutcomeSuccess
	if err != nil {
		metricsOutcome = metrics.OutcomeError
		outcome.Err = err
		log.L(ctx).Debugf("Action %s failed after %s: %s", action.Name, outcome.Duration, errorMessage(err))
		d.reporter.Failure(ctx, outcome)
	} else {
		log.L(ctx).Debugf("Action %s succeeded after %s", action.Name, outcome.Duration)
	}
	d.metrics.RecordActionMetrics(ctx, action.Name, metricsOutcome, outcome.Duration)
	return outcome
}

// panicError carries a value an action panicked with
type panicError struct {
	value interface{}
}

func (p *panicError) Error() string {
	return fmt.Sprint(p.value)
}

func invoke(ctx context.Context, fn ActionFn, args []string) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.L(ctx).Errorf("Action panicked: %v", r)
			result = nil
			err = &panicError{value: r}
		}
	}()
	return fn(ctx, args)
}

func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fmt.Sprintf("%#v", err)
}
