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

package connector

import (
	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

// RequestType for each request is defined in the individual file
type RequestType string

// Semver API versioning
type Version string

const (
	Version1_0_0 Version = "v1.0.0"
)

const VersionCurrent = Version1_0_0

type Variant string

const (
	VariantEVM Variant = "evm"
)

// ErrorReason is a set of standard error conditions a blockchain connector can return
type ErrorReason string

const (
	// ErrorReasonInvalidInputs the inputs could not be parsed by the connector against the method definition
	ErrorReasonInvalidInputs ErrorReason = "invalid_inputs"
	// ErrorReasonTransactionReverted the call reverted on-chain (queries, or gas estimation for transactions)
	ErrorReasonTransactionReverted ErrorReason = "transaction_reverted"
	// ErrorReasonNonceTooLow the nonce has already been used by a mined transaction
	ErrorReasonNonceTooLow ErrorReason = "nonce_too_low"
	// ErrorReasonTransactionUnderpriced the node rejected the transaction gas price
	ErrorReasonTransactionUnderpriced ErrorReason = "transaction_underpriced"
	// ErrorReasonNotFound the requested object was not found
	ErrorReasonNotFound ErrorReason = "not_found"
)

// Header is included consistently as a "ffcapi" structure on each request
type Header struct {
	RequestID   *fftypes.UUID `json:"id"`
	Version     Version       `json:"version"`
	Variant     Variant       `json:"variant"`
	RequestType RequestType   `json:"type"`
}

// TransactionHeaders identify the signer and the target contract. From is
// pass-through to the connector, which resolves the signing key for it.
type TransactionHeaders struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
}

// TransactionInput describes a contract method invocation. For variant=evm the
// method is an ABI function definition, and each param is the JSON
// serialization of the input value.
type TransactionInput struct {
	TransactionHeaders
	Method *fftypes.JSONAny   `json:"method"`
	Params []*fftypes.JSONAny `json:"params"`
}

// ErrorResponse is the body a connector returns with a non-success status code
type ErrorResponse struct {
	Reason ErrorReason `json:"reason,omitempty"`
	Error  string      `json:"error"`
}

type RequestBase struct {
	FFCAPI Header `json:"ffcapi"`
}

func (r *RequestBase) FFCAPIHeader() *Header {
	return &r.FFCAPI
}

type ResponseBase struct {
	ErrorResponse
}

func (r *ResponseBase) ErrorMessage() string {
	return r.Error
}

func (r *ResponseBase) ErrorReason() ErrorReason {
	return r.Reason
}

type ffcapiRequest interface {
	FFCAPIHeader() *Header
	RequestType() RequestType
}

type ffcapiResponse interface {
	ErrorMessage() string
	ErrorReason() ErrorReason
}

func initHeader(header *Header, variant Variant, requestType RequestType) {
	header.RequestID = fftypes.NewUUID()
	header.Version = VersionCurrent
	header.Variant = variant
	header.RequestType = requestType
}
