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
	"context"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

// QueryInvokeRequest executes a read-only method call against the chain
type QueryInvokeRequest struct {
	RequestBase
	TransactionInput
	BlockNumber *string `json:"blockNumber,omitempty"`
}

type QueryInvokeResponse struct {
	ResponseBase
	Outputs *fftypes.JSONAny `json:"outputs"`
}

const RequestTypeQueryInvoke RequestType = "query_invoke"

func (r *QueryInvokeRequest) RequestType() RequestType {
	return RequestTypeQueryInvoke
}

func (a *api) QueryInvoke(ctx context.Context, req *QueryInvokeRequest) (*QueryInvokeResponse, ErrorReason, error) {
	res := &QueryInvokeResponse{}
	reason, err := a.invokeAPI(ctx, req, res)
	if err != nil {
		return nil, reason, err
	}
	return res, "", nil
}
