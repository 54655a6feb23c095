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

package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/identity-zk/idcli/internal/chain"
	"github.com/identity-zk/idcli/internal/contracts"
	"github.com/identity-zk/idcli/internal/idconfig"
	"github.com/identity-zk/idcli/internal/idprotocol"
	"github.com/identity-zk/idcli/internal/metrics"
	"github.com/identity-zk/idcli/mocks/chainmocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestSettings(t *testing.T) *idconfig.Settings {
	key, err := crypto.HexToECDSA("b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291")
	assert.NoError(t, err)
	return &idconfig.Settings{
		Preset:       "anvil",
		Transport:    "http",
		PrivateKey:   key,
		From:         crypto.PubkeyToAddress(key.PublicKey),
		ArtifactsDir: "../contracts/testdata",
		Addresses: idconfig.ContractAddresses{
			IDProtocol: common.HexToAddress("0x1111111111111111111111111111111111111111"),
			Merchant:   common.HexToAddress("0x2222222222222222222222222222222222222222"),
			Oracle:     common.HexToAddress("0x3333333333333333333333333333333333333333"),
			Verifier:   common.HexToAddress("0x4444444444444444444444444444444444444444"),
		},
		OutputFormat: "text",
	}
}

func newTestApp(t *testing.T, settings *idconfig.Settings) (*App, *chainmocks.Reader, *bytes.Buffer, *bytes.Buffer) {
	ctx := context.Background()
	l, err := contracts.NewLoader(settings.ArtifactsDir, 0)
	assert.NoError(t, err)
	c, err := idprotocol.LoadContracts(ctx, l, &settings.Addresses)
	assert.NoError(t, err)

	r := chainmocks.NewReader(t)
	w := chainmocks.NewWriter(t)
	w.On("Address").Return(settings.From).Maybe()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	a, err := Assemble(ctx, settings, c, &chain.Clients{Reader: r, Writer: w}, out, errOut)
	assert.NoError(t, err)
	return a, r, out, errOut
}

func TestNewOK(t *testing.T) {
	a, err := New(context.Background(), newTestSettings(t), &bytes.Buffer{}, &bytes.Buffer{})
	assert.NoError(t, err)
	defer a.Close()
	assert.Len(t, a.Actions(), 5)
}

func TestNewBadPreset(t *testing.T) {
	settings := newTestSettings(t)
	settings.Preset = "mainnet"
	_, err := New(context.Background(), settings, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Regexp(t, "IDC10015", err)
}

func TestNewMissingArtifacts(t *testing.T) {
	settings := newTestSettings(t)
	settings.ArtifactsDir = t.TempDir()
	_, err := New(context.Background(), settings, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Regexp(t, "IDC10020", err)
}

func TestNewBadRPCURL(t *testing.T) {
	settings := newTestSettings(t)
	settings.RPCURL = "ftp://localhost"
	_, err := New(context.Background(), settings, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Regexp(t, "IDC10030", err)
}

func TestNewBadOutputFormat(t *testing.T) {
	settings := newTestSettings(t)
	settings.OutputFormat = "xml"
	_, err := New(context.Background(), settings, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Regexp(t, "IDC10005", err)
}

func TestDispatchWithMetrics(t *testing.T) {
	metrics.Clear()
	settings := newTestSettings(t)
	settings.MetricsTextfile = filepath.Join(t.TempDir(), "idcli.prom")
	a, r, out, errOut := newTestApp(t, settings)
	r.On("ReadContract", mock.Anything, mock.Anything).Return("Acme Corp", nil)

	o, err := a.Dispatch(context.Background(), idprotocol.ActionMerchantName, []string{})
	assert.NoError(t, err)
	assert.False(t, o.Failed())
	assert.Equal(t, "\n[Success]: Acme Corp\n", out.String())
	assert.Empty(t, errOut.String())

	b, err := os.ReadFile(settings.MetricsTextfile)
	assert.NoError(t, err)
	assert.Contains(t, string(b), `idcli_actions_total{action="merchant-name",outcome="success"} 1`)
}

func TestDispatchMetricsWriteFailureIgnored(t *testing.T) {
	metrics.Clear()
	settings := newTestSettings(t)
	settings.MetricsTextfile = filepath.Join(t.TempDir(), "missing", "idcli.prom")
	a, r, _, _ := newTestApp(t, settings)
	r.On("ReadContract", mock.Anything, mock.Anything).Return("Acme Corp", nil)

	o, err := a.Dispatch(context.Background(), idprotocol.ActionMerchantName, []string{})
	assert.NoError(t, err)
	assert.False(t, o.Failed())
}

func TestDispatchUnknownCommand(t *testing.T) {
	a, _, out, errOut := newTestApp(t, newTestSettings(t))
	_, err := a.Dispatch(context.Background(), "nonexistent", []string{})
	assert.Regexp(t, "IDC10001", err)
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}
