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
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/spf13/viper"
)

var ffc = config.AddRootKey

var (
	// RPCURL is the JSON-RPC endpoint of the chain node (overrides the preset URL)
	RPCURL = ffc("rpc.url")
	// RPCPreset selects a named chain preset instead of a plain transport
	RPCPreset = ffc("rpc.preset")
	// RPCTransport is the transport used when no preset is selected - "http" or "connector"
	RPCTransport = ffc("rpc.transport")
	// RPCRequestTimeout bounds each remote call
	RPCRequestTimeout = ffc("rpc.requestTimeout")
	// SignerPrivateKey is the hex secp256k1 key used to sign writes
	SignerPrivateKey = ffc("signer.privateKey")
	// SignerFrom is the signing address passed to a connector that holds its own keys
	SignerFrom = ffc("signer.from")
	// SignerEncryptionPublicKey is the network key shielded calldata is encrypted to
	SignerEncryptionPublicKey = ffc("signer.encryptionPublicKey")
	// ContractsArtifactsDir is the directory holding the <Name>.json build artifacts
	ContractsArtifactsDir = ffc("contracts.artifactsDir")
	// ContractsCacheSize is the number of parsed artifacts kept in memory
	ContractsCacheSize = ffc("contracts.cacheSize")
	// ContractsIDProtocol is the address of the IDProtocol contract
	ContractsIDProtocol = ffc("contracts.idProtocol")
	// ContractsMerchant is the address of the MerchantContract contract
	ContractsMerchant = ffc("contracts.merchant")
	// ContractsOracle is the address of the MockOracle contract
	ContractsOracle = ffc("contracts.oracle")
	// ContractsVerifier is the address of the Verifier contract
	ContractsVerifier = ffc("contracts.verifier")
	// TransactionsWait makes writes wait for a receipt before reporting
	TransactionsWait = ffc("transactions.wait")
	// TransactionsWaitTimeout bounds the wait for a receipt
	TransactionsWaitTimeout = ffc("transactions.waitTimeout")
	// OutputFormat is "text", "json" or "go-template=<template>"
	OutputFormat = ffc("output.format")
	// MetricsTextfile is the node-exporter textfile the invocation metrics are written to
	MetricsTextfile = ffc("metrics.textfile")
)

// ConnectorConfig is the HTTP client configuration for the "connector" transport
var ConnectorConfig config.Section

// Environment variable names honored in addition to the FIREFLY_ prefixed form of each key
var legacyEnvVars = map[config.RootKey]string{
	RPCURL:                    "RPC_URL",
	RPCPreset:                 "CHAIN_PRESET",
	RPCTransport:              "RPC_TRANSPORT",
	SignerPrivateKey:          "PRIVATE_KEY",
	SignerFrom:                "SIGNER_ADDRESS",
	SignerEncryptionPublicKey: "SHIELDED_ENCRYPTION_KEY",
	ContractsArtifactsDir:     "CONTRACTS_ARTIFACTS_DIR",
	ContractsIDProtocol:       "ID_PROTOCOL_ADDRESS",
	ContractsMerchant:         "MERCHANT_CONTRACT_ADDRESS",
	ContractsOracle:           "MOCK_ORACLE_ADDRESS",
	ContractsVerifier:         "VERIFIER_ADDRESS",
}

func setDefaults() {
	viper.SetDefault(string(config.LogLevel), "warn")
	viper.SetDefault(string(RPCTransport), "http")
	viper.SetDefault(string(RPCRequestTimeout), "30s")
	viper.SetDefault(string(ContractsArtifactsDir), "contracts/build")
	viper.SetDefault(string(ContractsCacheSize), 16)
	viper.SetDefault(string(TransactionsWait), false)
	viper.SetDefault(string(TransactionsWaitTimeout), "2m")
	viper.SetDefault(string(OutputFormat), "text")
	for key, envVar := range legacyEnvVars {
		_ = viper.BindEnv(string(key), envVar)
	}
}

func Reset() {
	config.RootConfigReset(setDefaults)

	ConnectorConfig = config.RootSection("connector")
	ffresty.InitConfig(ConnectorConfig)
}
