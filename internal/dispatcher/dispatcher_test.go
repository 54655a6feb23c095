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
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/identity-zk/idcli/internal/metrics"
	"github.com/identity-zk/idcli/mocks/metricsmocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type emptyError struct{}

func (emptyError) Error() string { return "" }

func newTestDispatcher(t *testing.T, format string) (*Dispatcher, *bytes.Buffer, *bytes.Buffer, *metricsmocks.Metrics) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	r, err := NewReporter(context.Background(), out, errOut, format)
	assert.NoError(t, err)
	mm := metricsmocks.NewMetrics(t)
	return New(r, mm), out, errOut, mm
}

func echoAction(name string, params ...string) *Action {
	return &Action{
		Name:   name,
		Params: params,
		Kind:   KindRead,
		Fn: func(ctx context.Context, args []string) (interface{}, error) {
			return fmt.Sprintf("%s%v", name, args), nil
		},
	}
}

func TestDispatchSuccess(t *testing.T) {
	ctx := context.Background()
	d, out, errOut, mm := newTestDispatcher(t, "")
	err := d.Register(ctx, echoAction("merchant-name"), echoAction("register-merchant", "name"))
	assert.NoError(t, err)
	mm.On("RecordActionMetrics", mock.Anything, "register-merchant", metrics.OutcomeSuccess, mock.Anything).Return()

	o, err := d.Dispatch(ctx, "register-merchant", []string{"Acme"})
	assert.NoError(t, err)
	assert.False(t, o.Failed())
	assert.Equal(t, "register-merchant[Acme]", o.Result)
	assert.Len(t, o.InvocationID, 26)
	assert.Equal(t, "\n[Success]: register-merchant[Acme]\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestDispatchUnknownCommand(t *testing.T) {
	ctx := context.Background()
	d, out, errOut, _ := newTestDispatcher(t, "")
	err := d.Register(ctx, echoAction("merchant-name"))
	assert.NoError(t, err)

	_, err = d.Dispatch(ctx, "nonexistent", nil)
	assert.Regexp(t, "IDC10001.*nonexistent", err)
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestDispatchArityMismatch(t *testing.T) {
	ctx := context.Background()
	d, out, errOut, _ := newTestDispatcher(t, "")
	called := false
	a := echoAction("register-merchant", "name")
	a.Fn = func(ctx context.Context, args []string) (interface{}, error) {
		called = true
		return nil, nil
	}
	err := d.Register(ctx, a, echoAction("merchant-name"))
	assert.NoError(t, err)

	_, err = d.Dispatch(ctx, "register-merchant", []string{})
	assert.Regexp(t, "IDC10002.*register-merchant.*expects 1.*received 0", err)
	_, err = d.Dispatch(ctx, "register-merchant", []string{"a", "b"})
	assert.Regexp(t, "IDC10002.*received 2", err)
	_, err = d.Dispatch(ctx, "merchant-name", []string{"extra"})
	assert.Regexp(t, "IDC10002.*merchant-name.*expects 0", err)

	assert.False(t, called)
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestDispatchActionError(t *testing.T) {
	ctx := context.Background()
	d, out, errOut, mm := newTestDispatcher(t, "")
	err := d.Register(ctx, &Action{
		Name:   "verify-proof",
		Params: []string{"proof"},
		Fn: func(ctx context.Context, args []string) (interface{}, error) {
			return nil, errors.New("boom")
		},
	})
	assert.NoError(t, err)
	mm.On("RecordActionMetrics", mock.Anything, "verify-proof", metrics.OutcomeError, mock.Anything).Return()

	o, err := d.Dispatch(ctx, "verify-proof", []string{"0xdead"})
	assert.NoError(t, err)
	assert.True(t, o.Failed())
	assert.Equal(t, "\n[Error]: boom\n", errOut.String())
	assert.Empty(t, out.String())
}

func TestDispatchActionEmptyErrorMessage(t *testing.T) {
	ctx := context.Background()
	d, _, errOut, mm := newTestDispatcher(t, "")
	err := d.Register(ctx, &Action{
		Name: "merchant-name",
		Fn: func(ctx context.Context, args []string) (interface{}, error) {
			return nil, emptyError{}
		},
	})
	assert.NoError(t, err)
	mm.On("RecordActionMetrics", mock.Anything, "merchant-name", metrics.OutcomeError, mock.Anything).Return()

	_, err = d.Dispatch(ctx, "merchant-name", nil)
	assert.NoError(t, err)
	assert.Equal(t, "\n[Error]: dispatcher.emptyError{}\n", errOut.String())
}

func TestDispatchActionPanic(t *testing.T) {
	ctx := context.Background()
	d, out, errOut, mm := newTestDispatcher(t, "")
	err := d.Register(ctx, &Action{
		Name:   "token-price",
		Params: []string{"tokenAddress"},
		Fn: func(ctx context.Context, args []string) (interface{}, error) {
			panic("plain string rejection")
		},
	})
	assert.NoError(t, err)
	mm.On("RecordActionMetrics", mock.Anything, "token-price", metrics.OutcomeError, mock.Anything).Return()

	o, err := d.Dispatch(ctx, "token-price", []string{"0x0"})
	assert.NoError(t, err)
	assert.True(t, o.Failed())
	assert.Nil(t, o.Result)
	assert.Equal(t, "\n[Error]: plain string rejection\n", errOut.String())
	assert.Empty(t, out.String())
}

func TestRegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	d, _, _, _ := newTestDispatcher(t, "")
	err := d.Register(ctx, echoAction("merchant-name"), echoAction("merchant-name"))
	assert.Regexp(t, "IDC10003", err)
}

func TestRegisterNoFunction(t *testing.T) {
	ctx := context.Background()
	d, _, _, _ := newTestDispatcher(t, "")
	err := d.Register(ctx, &Action{Name: "merchant-name"})
	assert.Regexp(t, "IDC10004", err)
}

func TestActionsInOrder(t *testing.T) {
	ctx := context.Background()
	d, _, _, _ := newTestDispatcher(t, "")
	err := d.Register(ctx, echoAction("b"), echoAction("a", "x", "y"), echoAction("c"))
	assert.NoError(t, err)

	actions := d.Actions()
	assert.Len(t, actions, 3)
	assert.Equal(t, "b", actions[0].Name)
	assert.Equal(t, "a <x> <y>", actions[1].Usage())
	assert.Equal(t, 2, actions[1].Arity())

	a, ok := d.Lookup("c")
	assert.True(t, ok)
	assert.Equal(t, "c", a.Name)
	_, ok = d.Lookup("d")
	assert.False(t, ok)
}

func TestDispatchTemplateFailureIsActionError(t *testing.T) {
	ctx := context.Background()
	d, out, errOut, mm := newTestDispatcher(t, "go-template={{ .Missing.Field }}")
	err := d.Register(ctx, echoAction("merchant-name"))
	assert.NoError(t, err)
	mm.On("RecordActionMetrics", mock.Anything, "merchant-name", metrics.OutcomeError, mock.Anything).Return()

	o, err := d.Dispatch(ctx, "merchant-name", []string{})
	assert.NoError(t, err)
	assert.True(t, o.Failed())
	assert.Nil(t, o.Result)
	assert.Regexp(t, "IDC10008", o.Err)
	assert.Empty(t, out.String())
	assert.Regexp(t, `^\n\[Error\]: IDC10008.*Missing`, errOut.String())
}
