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
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// FormatOutputs collapses decoded ABI outputs into the value reported to the user.
// A single output is returned bare, and byte values are rendered as 0x hex.
func FormatOutputs(outputs []interface{}) interface{} {
	switch len(outputs) {
	case 0:
		return nil
	case 1:
		return formatValue(outputs[0])
	}
	formatted := make([]interface{}, len(outputs))
	for i, o := range outputs {
		formatted[i] = formatValue(o)
	}
	return formatted
}

func formatValue(v interface{}) interface{} {
	switch tv := v.(type) {
	case nil:
		return nil
	case common.Address, common.Hash:
		return tv
	case []byte:
		return hexutil.Bytes(tv)
	case []interface{}:
		return FormatOutputs(tv)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 {
		b := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(b), rv)
		return hexutil.Bytes(b)
	}
	return v
}
