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

package contracts

import (
	"context"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/identity-zk/idcli/internal/idmsgs"
)

var bigIntType = reflect.TypeOf(&big.Int{})

// CoerceArgs converts command line strings into the Go values the ABI encoder
// expects for each input of the method.
func CoerceArgs(ctx context.Context, method *abi.Method, args []string) ([]interface{}, error) {
	if len(args) != len(method.Inputs) {
		return nil, i18n.NewError(ctx, idmsgs.MsgInputCountMismatch, method.Name, len(method.Inputs), len(args))
	}
	values := make([]interface{}, len(args))
	for i, input := range method.Inputs {
		name := input.Name
		if name == "" {
			name = strconv.Itoa(i)
		}
		v, err := coerceArg(ctx, name, input.Type, args[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func coerceArg(ctx context.Context, name string, t abi.Type, value string) (interface{}, error) {
	invalid := func(err error) error {
		if err != nil {
			return i18n.WrapError(ctx, err, idmsgs.MsgInvalidArgument, value, name, t.String())
		}
		return i18n.NewError(ctx, idmsgs.MsgInvalidArgument, value, name, t.String())
	}

	switch t.T {
	case abi.StringTy:
		return value, nil
	case abi.AddressTy:
		if !common.IsHexAddress(value) {
			return nil, invalid(nil)
		}
		return common.HexToAddress(value), nil
	case abi.BoolTy:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, invalid(err)
		}
		return b, nil
	case abi.BytesTy:
		b, err := decodeHex(value)
		if err != nil {
			return nil, invalid(err)
		}
		return b, nil
	case abi.FixedBytesTy:
		b, err := decodeHex(value)
		if err != nil {
			return nil, invalid(err)
		}
		if len(b) != t.Size {
			return nil, invalid(nil)
		}
		v := reflect.New(t.GetType()).Elem()
		reflect.Copy(v, reflect.ValueOf(b))
		return v.Interface(), nil
	case abi.IntTy, abi.UintTy:
		n, ok := new(big.Int).SetString(value, 0)
		if !ok || !inRange(n, t) {
			return nil, invalid(nil)
		}
		goType := t.GetType()
		if goType == bigIntType {
			return n, nil
		}
		v := reflect.New(goType).Elem()
		if t.T == abi.UintTy {
			v.SetUint(n.Uint64())
		} else {
			v.SetInt(n.Int64())
		}
		return v.Interface(), nil
	default:
		return nil, i18n.NewError(ctx, idmsgs.MsgUnsupportedArgType, name, t.String())
	}
}

func decodeHex(value string) ([]byte, error) {
	if !strings.HasPrefix(value, "0x") && !strings.HasPrefix(value, "0X") {
		value = "0x" + value
	}
	return hexutil.Decode(strings.ToLower(value[:2]) + value[2:])
}

func inRange(n *big.Int, t abi.Type) bool {
	if t.T == abi.UintTy {
		return n.Sign() >= 0 && n.BitLen() <= t.Size
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
	minValue := new(big.Int).Neg(limit)
	maxValue := new(big.Int).Sub(limit, big.NewInt(1))
	return n.Cmp(minValue) >= 0 && n.Cmp(maxValue) <= 0
}
