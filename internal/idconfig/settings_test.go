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

package idconfig

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/stretchr/testify/assert"
)

const (
	testKey        = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"
	testIDProtocol = "0x1111111111111111111111111111111111111111"
	testMerchant   = "0x2222222222222222222222222222222222222222"
	testOracle     = "0x3333333333333333333333333333333333333333"
	testVerifier   = "0x4444444444444444444444444444444444444444"
)

func resetWithRequired() {
	Reset()
	config.Set(RPCURL, "http://localhost:8545")
	config.Set(SignerPrivateKey, testKey)
	config.Set(ContractsIDProtocol, testIDProtocol)
	config.Set(ContractsMerchant, testMerchant)
	config.Set(ContractsOracle, testOracle)
	config.Set(ContractsVerifier, testVerifier)
}

func TestLoadDefaults(t *testing.T) {
	resetWithRequired()
	s, err := Load(context.Background())
	assert.NoError(t, err)

	key, _ := crypto.HexToECDSA(testKey)
	assert.Equal(t, "http://localhost:8545", s.RPCURL)
	assert.Equal(t, "http", s.Transport)
	assert.Equal(t, 30*time.Second, s.RequestTimeout)
	assert.Equal(t, "contracts/build", s.ArtifactsDir)
	assert.Equal(t, 16, s.CacheSize)
	assert.Equal(t, "text", s.OutputFormat)
	assert.False(t, s.Wait)
	assert.Equal(t, 2*time.Minute, s.WaitTimeout)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), s.From)
	assert.Equal(t, common.HexToAddress(testIDProtocol), s.Addresses.IDProtocol)
	assert.Equal(t, common.HexToAddress(testMerchant), s.Addresses.Merchant)
	assert.Equal(t, common.HexToAddress(testOracle), s.Addresses.Oracle)
	assert.Equal(t, common.HexToAddress(testVerifier), s.Addresses.Verifier)
	assert.Nil(t, s.EncryptionPublicKey)
}

func TestLoadFromLegacyEnvironment(t *testing.T) {
	t.Setenv("RPC_URL", "http://node.example:8545")
	t.Setenv("PRIVATE_KEY", "0x"+testKey)
	t.Setenv("ID_PROTOCOL_ADDRESS", testIDProtocol)
	t.Setenv("MERCHANT_CONTRACT_ADDRESS", testMerchant)
	t.Setenv("MOCK_ORACLE_ADDRESS", testOracle)
	t.Setenv("VERIFIER_ADDRESS", testVerifier)
	Reset()

	s, err := Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "http://node.example:8545", s.RPCURL)
	assert.NotNil(t, s.PrivateKey)
	assert.Equal(t, common.HexToAddress(testVerifier), s.Addresses.Verifier)
}

func TestLoadPresetWithoutURL(t *testing.T) {
	resetWithRequired()
	config.Set(RPCURL, "")
	config.Set(RPCPreset, "anvil")
	s, err := Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "anvil", s.Preset)
	assert.Empty(t, s.RPCURL)
}

func TestLoadMissingURL(t *testing.T) {
	resetWithRequired()
	config.Set(RPCURL, "")
	_, err := Load(context.Background())
	assert.Regexp(t, "IDC10011.*rpc.url", err)
}

func TestLoadConnectorMissingURL(t *testing.T) {
	resetWithRequired()
	config.Set(RPCTransport, "connector")
	_, err := Load(context.Background())
	assert.Regexp(t, "IDC10011.*connector.url", err)
}

func TestLoadConnectorWithSignerAddress(t *testing.T) {
	resetWithRequired()
	config.Set(RPCTransport, "connector")
	config.Set(SignerPrivateKey, "")
	config.Set(SignerFrom, "0x5555555555555555555555555555555555555555")
	ConnectorConfig.Set(ffresty.HTTPConfigURL, "http://connector:5008")
	s, err := Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, s.PrivateKey)
	assert.Equal(t, common.HexToAddress("0x5555555555555555555555555555555555555555"), s.From)
}

func TestLoadMissingPrivateKey(t *testing.T) {
	resetWithRequired()
	config.Set(SignerPrivateKey, "")
	_, err := Load(context.Background())
	assert.Regexp(t, "IDC10011.*signer.privateKey", err)
}

func TestLoadBadPrivateKey(t *testing.T) {
	resetWithRequired()
	config.Set(SignerPrivateKey, "not hex")
	_, err := Load(context.Background())
	assert.Regexp(t, "IDC10013", err)
}

func TestLoadBadSignerAddress(t *testing.T) {
	resetWithRequired()
	config.Set(SignerFrom, "0xnope")
	_, err := Load(context.Background())
	assert.Regexp(t, "IDC10012.*signer.from", err)
}

func TestLoadMissingContractAddress(t *testing.T) {
	resetWithRequired()
	config.Set(ContractsOracle, "")
	_, err := Load(context.Background())
	assert.Regexp(t, "IDC10011.*contracts.oracle", err)
}

func TestLoadMalformedContractAddress(t *testing.T) {
	resetWithRequired()
	config.Set(ContractsVerifier, "0x1234")
	_, err := Load(context.Background())
	assert.Regexp(t, "IDC10012.*contracts.verifier", err)
}

func TestLoadZeroContractAddress(t *testing.T) {
	resetWithRequired()
	config.Set(ContractsIDProtocol, "0x0000000000000000000000000000000000000000")
	_, err := Load(context.Background())
	assert.Regexp(t, "IDC10012.*contracts.idProtocol", err)
}

func TestLoadEncryptionKey(t *testing.T) {
	k, err := crypto.GenerateKey()
	assert.NoError(t, err)

	resetWithRequired()
	config.Set(SignerEncryptionPublicKey, hexutil.Encode(crypto.FromECDSAPub(&k.PublicKey)))
	s, err := Load(context.Background())
	assert.NoError(t, err)
	assert.True(t, s.EncryptionPublicKey.Equal(&k.PublicKey))

	config.Set(SignerEncryptionPublicKey, hexutil.Encode(crypto.CompressPubkey(&k.PublicKey))[2:])
	s, err = Load(context.Background())
	assert.NoError(t, err)
	assert.True(t, s.EncryptionPublicKey.Equal(&k.PublicKey))
}

func TestLoadBadEncryptionKey(t *testing.T) {
	resetWithRequired()
	config.Set(SignerEncryptionPublicKey, "0x0102")
	_, err := Load(context.Background())
	assert.Regexp(t, "IDC10014", err)
}
