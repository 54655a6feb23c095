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

package idprotocol

import (
	"context"

	"github.com/identity-zk/idcli/internal/dispatcher"
)

const (
	ActionMerchantName             = "merchant-name"
	ActionRegisterMerchant         = "register-merchant"
	ActionRegisterMerchantShielded = "register-merchant-shielded"
	ActionVerifyProof              = "verify-proof"
	ActionTokenPrice               = "token-price"
)

var catalog = []dispatcher.Action{
	{
		Name:        ActionMerchantName,
		Description: "Get the merchant name",
		Kind:        dispatcher.KindRead,
	},
	{
		Name:        ActionRegisterMerchant,
		Description: "Register a new merchant",
		Params:      []string{"name"},
		Kind:        dispatcher.KindWrite,
	},
	{
		Name:        ActionRegisterMerchantShielded,
		Description: "Register a new merchant, with the transaction inputs shielded",
		Params:      []string{"name"},
		Kind:        dispatcher.KindWrite,
	},
	{
		Name:        ActionVerifyProof,
		Description: "Verify a proof using the Verifier contract",
		Params:      []string{"proof"},
		Kind:        dispatcher.KindRead,
	},
	{
		Name:        ActionTokenPrice,
		Description: "Get the price of a token from the Mock Oracle",
		Params:      []string{"tokenAddress"},
		Kind:        dispatcher.KindRead,
	},
}

// Catalog describes every action, without functions bound. It needs no
// configuration, so the command line can be built before any is loaded.
func Catalog() []*dispatcher.Action {
	actions := make([]*dispatcher.Action, len(catalog))
	for i := range catalog {
		a := catalog[i]
		actions[i] = &a
	}
	return actions
}

// Actions returns the catalog with each action bound to its call on this service
func (s *Service) Actions() []*dispatcher.Action {
	fns := map[string]dispatcher.ActionFn{
		ActionMerchantName: func(ctx context.Context, args []string) (interface{}, error) {
			return s.MerchantName(ctx)
		},
		ActionRegisterMerchant: func(ctx context.Context, args []string) (interface{}, error) {
			h, err := s.RegisterMerchant(ctx, args[0])
			if err != nil {
				return nil, err
			}
			return h, nil
		},
		ActionRegisterMerchantShielded: func(ctx context.Context, args []string) (interface{}, error) {
			h, err := s.RegisterMerchantShielded(ctx, args[0])
			if err != nil {
				return nil, err
			}
			return h, nil
		},
		ActionVerifyProof: func(ctx context.Context, args []string) (interface{}, error) {
			return s.VerifyProof(ctx, args[0])
		},
		ActionTokenPrice: func(ctx context.Context, args []string) (interface{}, error) {
			return s.TokenPrice(ctx, args[0])
		},
	}
	actions := Catalog()
	for _, a := range actions {
		a.Fn = fns[a.Name]
	}
	return actions
}
