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
	"crypto/ecdsa"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/identity-zk/idcli/internal/idmsgs"
)

const TransportConnector = "connector"

// ContractAddresses are the deployed locations of the identity protocol contracts
type ContractAddresses struct {
	IDProtocol common.Address
	Merchant   common.Address
	Oracle     common.Address
	Verifier   common.Address
}

// Settings is the validated, immutable view of the configuration for one run.
// It is built once by Load, before any action is dispatched.
type Settings struct {
	RPCURL              string
	Preset              string
	Transport           string
	RequestTimeout      time.Duration
	PrivateKey          *ecdsa.PrivateKey
	From                common.Address
	EncryptionPublicKey *ecdsa.PublicKey
	ArtifactsDir        string
	CacheSize           int
	Addresses           ContractAddresses
	Wait                bool
	WaitTimeout         time.Duration
	OutputFormat        string
	MetricsTextfile     string
	Connector           config.Section
}

func Load(ctx context.Context) (*Settings, error) {
	s := &Settings{
		RPCURL:          strings.TrimSpace(config.GetString(RPCURL)),
		Preset:          strings.TrimSpace(config.GetString(RPCPreset)),
		Transport:       strings.TrimSpace(config.GetString(RPCTransport)),
		RequestTimeout:  config.GetDuration(RPCRequestTimeout),
		ArtifactsDir:    config.GetString(ContractsArtifactsDir),
		CacheSize:       config.GetInt(ContractsCacheSize),
		Wait:            config.GetBool(TransactionsWait),
		WaitTimeout:     config.GetDuration(TransactionsWaitTimeout),
		OutputFormat:    config.GetString(OutputFormat),
		MetricsTextfile: config.GetString(MetricsTextfile),
		Connector:       ConnectorConfig,
	}

	// The endpoint comes from the preset, the connector section, or rpc.url
	switch {
	case s.Transport == TransportConnector:
		if ConnectorConfig.GetString(ffresty.HTTPConfigURL) == "" {
			return nil, i18n.NewError(ctx, idmsgs.MsgConfigParamNotSet, "connector.url")
		}
	case s.Preset == "" && s.RPCURL == "":
		return nil, i18n.NewError(ctx, idmsgs.MsgConfigParamNotSet, RPCURL)
	}

	if err := s.loadSigner(ctx); err != nil {
		return nil, err
	}

	var err error
	if s.Addresses.IDProtocol, err = addressParam(ctx, ContractsIDProtocol); err != nil {
		return nil, err
	}
	if s.Addresses.Merchant, err = addressParam(ctx, ContractsMerchant); err != nil {
		return nil, err
	}
	if s.Addresses.Oracle, err = addressParam(ctx, ContractsOracle); err != nil {
		return nil, err
	}
	if s.Addresses.Verifier, err = addressParam(ctx, ContractsVerifier); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) loadSigner(ctx context.Context) error {
	if keyHex := strings.TrimSpace(config.GetString(SignerPrivateKey)); keyHex != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(keyHex, "0x"))
		if err != nil {
			return i18n.WrapError(ctx, err, idmsgs.MsgInvalidPrivateKey, SignerPrivateKey)
		}
		s.PrivateKey = key
		s.From = crypto.PubkeyToAddress(key.PublicKey)
	}

	if from := strings.TrimSpace(config.GetString(SignerFrom)); from != "" {
		if !common.IsHexAddress(from) {
			return i18n.NewError(ctx, idmsgs.MsgInvalidAddressConfig, SignerFrom, from)
		}
		if s.PrivateKey == nil {
			s.From = common.HexToAddress(from)
		}
	}

	// Only a connector can sign on our behalf
	if s.PrivateKey == nil && (s.Transport != TransportConnector || s.From == (common.Address{})) {
		return i18n.NewError(ctx, idmsgs.MsgConfigParamNotSet, SignerPrivateKey)
	}

	if pubHex := strings.TrimSpace(config.GetString(SignerEncryptionPublicKey)); pubHex != "" {
		pub, err := parsePublicKey(pubHex)
		if err != nil {
			return i18n.WrapError(ctx, err, idmsgs.MsgInvalidEncryptionKey, SignerEncryptionPublicKey)
		}
		s.EncryptionPublicKey = pub
	}
	return nil
}

func parsePublicKey(pubHex string) (*ecdsa.PublicKey, error) {
	if !strings.HasPrefix(pubHex, "0x") {
		pubHex = "0x" + pubHex
	}
	b, err := hexutil.Decode(pubHex)
	if err != nil {
		return nil, err
	}
	if len(b) == 33 {
		return crypto.DecompressPubkey(b)
	}
	return crypto.UnmarshalPubkey(b)
}

func addressParam(ctx context.Context, key config.RootKey) (common.Address, error) {
	value := strings.TrimSpace(config.GetString(key))
	if value == "" {
		return common.Address{}, i18n.NewError(ctx, idmsgs.MsgConfigParamNotSet, key)
	}
	if !common.IsHexAddress(value) {
		return common.Address{}, i18n.NewError(ctx, idmsgs.MsgInvalidAddressConfig, key, value)
	}
	addr := common.HexToAddress(value)
	if addr == (common.Address{}) {
		return common.Address{}, i18n.NewError(ctx, idmsgs.MsgInvalidAddressConfig, key, value)
	}
	return addr, nil
}
