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

import "context"

// SendTransactionRequest asks the connector to sign and submit a transaction
type SendTransactionRequest struct {
	RequestBase
	TransactionInput
}

type SendTransactionResponse struct {
	ResponseBase
	TransactionHash string `json:"transactionHash"`
}

const RequestTypeSendTransaction RequestType = "send_transaction"

func (r *SendTransactionRequest) RequestType() RequestType {
	return RequestTypeSendTransaction
}

func (a *api) SendTransaction(ctx context.Context, req *SendTransactionRequest) (*SendTransactionResponse, ErrorReason, error) {
	res := &SendTransactionResponse{}
	reason, err := a.invokeAPI(ctx, req, res)
	if err != nil {
		return nil, reason, err
	}
	return res, "", nil
}
