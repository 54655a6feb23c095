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
	"sync"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

const idcliPrefix = "IDC10"

var registerPrefix sync.Once

var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	registerPrefix.Do(func() {
		i18n.RegisterPrefix(idcliPrefix, "Identity Protocol CLI")
	})
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

//revive:disable
var (
	// Dispatcher
	MsgUnknownCommand  = ffe("IDC10001", "Unknown command '%s'")
	MsgArityMismatch   = ffe("IDC10002", "Command '%s' expects %d argument(s) %v, received %d")
	MsgDuplicateAction = ffe("IDC10003", "Action '%s' is already registered")
	MsgInvalidAction   = ffe("IDC10004", "Action '%s' has no function bound")
	MsgBadOutputFormat = ffe("IDC10005", "Invalid output format '%s'")
	MsgBadTemplate     = ffe("IDC10006", "Invalid output template: %s")
	MsgActionFailed    = ffe("IDC10007", "Command '%s' failed")
	MsgTemplateFailed  = ffe("IDC10008", "Failed to render the output template")

	// Configuration
	MsgConfigFailed            = ffe("IDC10010", "Failed to read configuration")
	MsgConfigParamNotSet       = ffe("IDC10011", "Configuration parameter '%s' must be set")
	MsgInvalidAddressConfig    = ffe("IDC10012", "Configuration parameter '%s' is not a valid contract address: '%s'")
	MsgInvalidPrivateKey       = ffe("IDC10013", "Configuration parameter '%s' is not a valid secp256k1 private key")
	MsgInvalidEncryptionKey    = ffe("IDC10014", "Configuration parameter '%s' is not a valid secp256k1 public key")
	MsgUnknownPreset           = ffe("IDC10015", "Unknown chain preset '%s'")
	MsgUnknownTransport        = ffe("IDC10016", "Unknown RPC transport '%s'")
	MsgPresetTransportConflict = ffe("IDC10017", "Chain preset '%s' cannot be combined with the '%s' transport")

	// Contract artifacts and arguments
	MsgArtifactReadFailed  = ffe("IDC10020", "Failed to read contract artifact '%s'")
	MsgArtifactParseFailed = ffe("IDC10021", "Failed to parse ABI from contract artifact '%s'")
	MsgMethodNotFound      = ffe("IDC10022", "Method '%s' not found in the ABI of contract '%s'")
	MsgInputCountMismatch  = ffe("IDC10023", "Method '%s' expects %d input(s), received %d")
	MsgInvalidArgument     = ffe("IDC10024", "Invalid value '%s' for parameter '%s' of type %s")
	MsgUnsupportedArgType  = ffe("IDC10025", "Parameter '%s' of type %s cannot be supplied on the command line")

	// Remote calls
	MsgRPCDialFailed          = ffe("IDC10030", "Failed to connect to RPC endpoint '%s'")
	MsgCallFailed             = ffe("IDC10031", "Call to '%s' on %s failed")
	MsgPackFailed             = ffe("IDC10032", "Failed to encode inputs for '%s' on %s")
	MsgTransactFailed         = ffe("IDC10033", "Transaction '%s' on %s failed")
	MsgChainIDFailed          = ffe("IDC10034", "Failed to query the chain ID of the RPC endpoint")
	MsgShieldedUnsupported    = ffe("IDC10035", "Shielded writes are not supported by %s")
	MsgShieldedKeyNotSet      = ffe("IDC10036", "Shielded writes require '%s' to be set")
	MsgShieldedEncryptFailed  = ffe("IDC10037", "Failed to encrypt calldata for shielded transaction '%s'")
	MsgWaitReceiptFailed      = ffe("IDC10038", "Failed waiting for the receipt of transaction %s")
	MsgTransactionReverted    = ffe("IDC10039", "Transaction %s reverted in block %s")
	MsgGasPriceFailed         = ffe("IDC10046", "Failed to query the gas price of the RPC endpoint")
	MsgConnectorFailInvoke    = ffe("IDC10040", "Connector failed request. requestId=%s failed to call connector API")
	MsgConnectorError         = ffe("IDC10041", "Connector failed request. requestId=%s reason=%s error: %s")
	MsgConnectorInvalidType   = ffe("IDC10042", "Connector failed request. requestId=%s invalid response content type: %s")
	MsgConnectorBadOutputs    = ffe("IDC10043", "Connector returned outputs that could not be parsed for '%s'")
	MsgConnectorBadParam      = ffe("IDC10044", "Parameter %d of '%s' could not be serialized for the connector")
	MsgConnectorSignerMissing = ffe("IDC10045", "A signing address is required to submit transactions through the connector")

	// Metrics
	MsgMetricsWriteFailed = ffe("IDC10050", "Failed to write metrics to '%s'")
)
