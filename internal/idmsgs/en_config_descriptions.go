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

package idmsgs

import (
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var ffc = func(key, translation, fieldType string) i18n.ConfigMessageKey {
	return i18n.FFC(language.AmericanEnglish, key, translation, fieldType)
}

//revive:disable
var (
	ConfigRPCURL            = ffc("config.rpc.url", "The JSON-RPC endpoint of the chain node. Overrides the URL of the preset", i18n.StringType)
	ConfigRPCPreset         = ffc("config.rpc.preset", "A named chain preset to use instead of a plain transport", "'anvil', 'sanvil' or 'sepolia'")
	ConfigRPCTransport      = ffc("config.rpc.transport", "The transport used when no preset is selected", "'http' or 'connector'")
	ConfigRPCRequestTimeout = ffc("config.rpc.requestTimeout", "The maximum time to wait for each call to the chain node", i18n.TimeDurationType)

	ConfigSignerPrivateKey          = ffc("config.signer.privateKey", "The hex encoded secp256k1 private key used to sign transactions", i18n.StringType)
	ConfigSignerFrom                = ffc("config.signer.from", "The signing address, when a connector holds the keys", i18n.StringType)
	ConfigSignerEncryptionPublicKey = ffc("config.signer.encryptionPublicKey", "The network public key that shielded transaction inputs are encrypted to", i18n.StringType)

	ConfigContractsArtifactsDir = ffc("config.contracts.artifactsDir", "The directory containing the <Name>.json contract build artifacts", i18n.StringType)
	ConfigContractsCacheSize    = ffc("config.contracts.cacheSize", "The number of parsed contract artifacts to keep in memory", i18n.IntType)
	ConfigContractsIDProtocol   = ffc("config.contracts.idProtocol", "The address of the IDProtocol contract", i18n.StringType)
	ConfigContractsMerchant     = ffc("config.contracts.merchant", "The address of the MerchantContract contract", i18n.StringType)
	ConfigContractsOracle       = ffc("config.contracts.oracle", "The address of the MockOracle contract", i18n.StringType)
	ConfigContractsVerifier     = ffc("config.contracts.verifier", "The address of the Verifier contract", i18n.StringType)

	ConfigTransactionsWait        = ffc("config.transactions.wait", "Wait for the receipt of each transaction before reporting it", i18n.BooleanType)
	ConfigTransactionsWaitTimeout = ffc("config.transactions.waitTimeout", "The maximum time to wait for a transaction receipt", i18n.TimeDurationType)

	ConfigOutputFormat = ffc("config.output.format", "The format results are reported in", "'text', 'json' or 'go-template=<template>'")

	ConfigConnectorURL      = ffc("config.connector.url", "The URL of the blockchain connector, for the 'connector' transport", i18n.StringType)
	ConfigConnectorProxyURL = ffc("config.connector.proxy.url", "Optional HTTP proxy to use when invoking the blockchain connector", i18n.StringType)

	ConfigMetricsTextfile = ffc("config.metrics.textfile", "A Prometheus textfile to write the invocation metrics to. Metrics are disabled when empty", i18n.StringType)
)
