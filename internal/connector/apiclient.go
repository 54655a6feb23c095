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
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/identity-zk/idcli/internal/idmsgs"
)

// API is the subset of the FFCAPI blockchain connector interface the CLI drives
type API interface {
	QueryInvoke(ctx context.Context, req *QueryInvokeRequest) (*QueryInvokeResponse, ErrorReason, error)
	SendTransaction(ctx context.Context, req *SendTransactionRequest) (*SendTransactionResponse, ErrorReason, error)
}

type api struct {
	client  *resty.Client
	variant Variant
}

// New builds a connector client from an ffresty configuration section
func New(ctx context.Context, conf config.Section) (API, error) {
	return newAPI(ctx, conf)
}

func newAPI(ctx context.Context, conf config.Section) (*api, error) {
	client, err := ffresty.New(ctx, conf)
	if err != nil {
		return nil, err
	}
	return &api{
		client:  client,
		variant: VariantEVM,
	}, nil
}

func (a *api) invokeAPI(ctx context.Context, input ffcapiRequest, output ffcapiResponse) (ErrorReason, error) {

	initHeader(input.FFCAPIHeader(), a.variant, input.RequestType())
	requestID := input.FFCAPIHeader().RequestID
	log.L(ctx).Debugf("Connector request %s type=%s", requestID, input.RequestType())
	res, err := a.client.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(output).
		SetError(output).
		Post("/")
	if err != nil {
		return "", i18n.WrapError(ctx, err, idmsgs.MsgConnectorFailInvoke, requestID)
	}
	if !strings.Contains(res.Header().Get("Content-Type"), "application/json") {
		return "", i18n.NewError(ctx, idmsgs.MsgConnectorInvalidType, requestID, res.Header().Get("Content-Type"))
	}
	if res.IsError() {
		return output.ErrorReason(), i18n.NewError(ctx, idmsgs.MsgConnectorError, requestID, output.ErrorReason(), output.ErrorMessage())
	}

	return "", nil
}
