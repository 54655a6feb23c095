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
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
)

func newTestLoader(t *testing.T) *Loader {
	l, err := NewLoader("testdata", 0)
	assert.NoError(t, err)
	return l
}

func TestLoadHardhatArtifact(t *testing.T) {
	ctx := context.Background()
	l := newTestLoader(t)

	a, err := l.Load(ctx, "IDProtocol")
	assert.NoError(t, err)
	assert.Equal(t, "IDProtocol", a.Name)
	assert.Equal(t, filepath.Join("testdata", "IDProtocol.json"), a.Path)
	assert.Contains(t, a.ABI.Methods, "name")
	assert.Contains(t, a.ABI.Methods, "registerMerchant")
	assert.Contains(t, a.ABI.Events, "MerchantRegistered")

	c := a.Bind(common.HexToAddress("0x1111111111111111111111111111111111111111"))
	assert.Equal(t, "IDProtocol(0x1111111111111111111111111111111111111111)", c.String())
	m, err := c.Method(ctx, "registerMerchant")
	assert.NoError(t, err)
	assert.Len(t, m.Inputs, 1)

	var entry map[string]interface{}
	err = json.Unmarshal(c.MethodEntry("registerMerchant"), &entry)
	assert.NoError(t, err)
	assert.Equal(t, "function", entry["type"])
	assert.Nil(t, c.MethodEntry("MerchantRegistered"))
}

func TestLoadBareABIArtifact(t *testing.T) {
	a, err := newTestLoader(t).Load(context.Background(), "MockOracle")
	assert.NoError(t, err)
	assert.Contains(t, a.ABI.Methods, "oracle")
	assert.Contains(t, a.ABI.Methods, "setPrice")
}

func TestLoadCached(t *testing.T) {
	dir := t.TempDir()
	src, err := os.ReadFile(filepath.Join("testdata", "Verifier.json"))
	assert.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "Verifier.json"), src, 0644)
	assert.NoError(t, err)

	l, err := NewLoader(dir, 2)
	assert.NoError(t, err)
	a1, err := l.Load(context.Background(), "Verifier")
	assert.NoError(t, err)

	// served from cache once the file is gone
	err = os.Remove(filepath.Join(dir, "Verifier.json"))
	assert.NoError(t, err)
	a2, err := l.Load(context.Background(), "Verifier")
	assert.NoError(t, err)
	assert.Same(t, a1, a2)
}

func TestLoadMissingArtifact(t *testing.T) {
	_, err := newTestLoader(t).Load(context.Background(), "DoesNotExist")
	assert.Regexp(t, "IDC10020", err)
}

func TestLoadGarbageArtifact(t *testing.T) {
	_, err := newTestLoader(t).Load(context.Background(), "Garbage")
	assert.Regexp(t, "IDC10021", err)
}

func TestLoadBadABIArtifact(t *testing.T) {
	_, err := newTestLoader(t).Load(context.Background(), "Broken")
	assert.Regexp(t, "IDC10021", err)
}

func TestMethodNotFound(t *testing.T) {
	ctx := context.Background()
	a, err := newTestLoader(t).Load(ctx, "Verifier")
	assert.NoError(t, err)
	_, err = a.Bind(common.Address{}).Method(ctx, "nope")
	assert.Regexp(t, "IDC10022.*nope.*Verifier", err)
}

func TestFormatOutputs(t *testing.T) {
	assert.Nil(t, FormatOutputs(nil))
	assert.Equal(t, "hello", FormatOutputs([]interface{}{"hello"}))
	assert.Equal(t, big.NewInt(1000000), FormatOutputs([]interface{}{big.NewInt(1000000)}))
	assert.Equal(t, hexutil.Bytes{0xde, 0xad}, FormatOutputs([]interface{}{[]byte{0xde, 0xad}}))
	assert.Equal(t, hexutil.Bytes{0x01, 0x02, 0x03, 0x04}, FormatOutputs([]interface{}{[4]byte{1, 2, 3, 4}}))

	addr := common.HexToAddress("0x71562b71999873DB5b286dF957af199Ec94617F7")
	multi := FormatOutputs([]interface{}{true, addr, nil})
	assert.Equal(t, []interface{}{true, addr, nil}, multi)
}
