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

package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/identity-zk/idcli/internal/connector"
	"github.com/identity-zk/idcli/internal/contracts"
	"github.com/identity-zk/idcli/internal/idmsgs"
)

type connectorReader struct {
	api connector.API
}

func (r *connectorReader) ReadContract(ctx context.Context, call *ContractCall) (interface{}, error) {
	input, err := connectorInput(ctx, call, "")
	if err != nil {
		return nil, err
	}
	res, reason, err := r.api.QueryInvoke(ctx, &connector.QueryInvokeRequest{TransactionInput: *input})
	if err != nil {
		log.L(ctx).Debugf("Query %s failed (reason=%s)", call, reason)
		return nil, i18n.WrapError(ctx, err, idmsgs.MsgCallFailed, call.Method, call.Contract)
	}
	return parseConnectorOutputs(ctx, call, res.Outputs)
}

type connectorWriter struct {
	api      connector.API
	from     common.Address
	strategy *Strategy
}

func (w *connectorWriter) Address() common.Address {
	return w.from
}

func (w *connectorWriter) WriteContract(ctx context.Context, call *ContractCall) (*TxHandle, error) {
	if w.from == (common.Address{}) {
		return nil, i18n.NewError(ctx, idmsgs.MsgConnectorSignerMissing)
	}
	input, err := connectorInput(ctx, call, w.from.Hex())
	if err != nil {
		return nil, err
	}
	res, reason, err := w.api.SendTransaction(ctx, &connector.SendTransactionRequest{TransactionInput: *input})
	if err != nil {
		log.L(ctx).Debugf("Transaction %s failed (reason=%s)", call, reason)
		return nil, i18n.WrapError(ctx, err, idmsgs.MsgTransactFailed, call.Method, call.Contract)
	}
	log.L(ctx).Infof("Submitted transaction %s for %s via connector", res.TransactionHash, call)
	return &TxHandle{
		Hash: common.HexToHash(res.TransactionHash),
		From: w.from,
	}, nil
}

func (w *connectorWriter) ShieldedWriteContract(ctx context.Context, call *ContractCall) (*TxHandle, error) {
	return nil, i18n.NewError(ctx, idmsgs.MsgShieldedUnsupported, w.strategy)
}

func connectorInput(ctx context.Context, call *ContractCall, from string) (*connector.TransactionInput, error) {
	entry := call.Contract.MethodEntry(call.Method)
	if entry == nil {
		return nil, i18n.NewError(ctx, idmsgs.MsgMethodNotFound, call.Method, call.Contract.Name)
	}
	params := make([]*fftypes.JSONAny, len(call.Args))
	for i, arg := range call.Args {
		b, err := json.Marshal(connectorParam(arg))
		if err != nil {
			return nil, i18n.WrapError(ctx, err, idmsgs.MsgConnectorBadParam, i, call.Method)
		}
		params[i] = fftypes.JSONAnyPtrBytes(b)
	}
	return &connector.TransactionInput{
		TransactionHeaders: connector.TransactionHeaders{
			From: from,
			To:   call.Contract.Address.Hex(),
		},
		Method: fftypes.JSONAnyPtrBytes(entry),
		Params: params,
	}, nil
}

// Integers travel as base 10 strings, and byte values as 0x hex
func connectorParam(v interface{}) interface{} {
	if bi, ok := v.(*big.Int); ok {
		return bi.String()
	}
	return contracts.FormatOutputs([]interface{}{v})
}

func parseConnectorOutputs(ctx context.Context, call *ContractCall, outputs *fftypes.JSONAny) (interface{}, error) {
	if outputs.IsNil() {
		return nil, nil
	}
	var v interface{}
	d := json.NewDecoder(bytes.NewReader(outputs.Bytes()))
	d.UseNumber()
	if err := d.Decode(&v); err != nil {
		return nil, i18n.WrapError(ctx, err, idmsgs.MsgConnectorBadOutputs, call.Method)
	}
	switch tv := v.(type) {
	case []interface{}:
		return contracts.FormatOutputs(tv), nil
	case map[string]interface{}:
		// a single named (or "output") value is reported bare
		if len(tv) == 1 {
			for _, o := range tv {
				return o, nil
			}
		}
	}
	return v, nil
}
