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

	"github.com/ethereum/go-ethereum/common"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/identity-zk/idcli/internal/contracts"
	"github.com/identity-zk/idcli/internal/idconfig"
)

// Artifact names of the identity protocol contracts
const (
	ContractIDProtocol = "IDProtocol"
	ContractMerchant   = "MerchantContract"
	ContractOracle     = "MockOracle"
	ContractVerifier   = "Verifier"
)

const (
	methodName             = "name"
	methodRegisterMerchant = "registerMerchant"
	methodVerify           = "verify"
	methodOracle           = "oracle"
)

// Contracts is the explicitly constructed set of deployed contracts the actions call
type Contracts struct {
	IDProtocol *contracts.Contract
	Merchant   *contracts.Contract
	Oracle     *contracts.Contract
	Verifier   *contracts.Contract
}

type contractBinding struct {
	name    string
	address common.Address
	methods []string
	target  **contracts.Contract
}

// LoadContracts binds each artifact to its configured address, and checks the
// methods the actions call are present in the ABI
func LoadContracts(ctx context.Context, loader *contracts.Loader, addrs *idconfig.ContractAddresses) (*Contracts, error) {
	c := &Contracts{}
	for _, b := range []*contractBinding{
		{name: ContractIDProtocol, address: addrs.IDProtocol, methods: []string{methodName, methodRegisterMerchant}, target: &c.IDProtocol},
		{name: ContractMerchant, address: addrs.Merchant, target: &c.Merchant},
		{name: ContractOracle, address: addrs.Oracle, methods: []string{methodOracle}, target: &c.Oracle},
		{name: ContractVerifier, address: addrs.Verifier, methods: []string{methodVerify}, target: &c.Verifier},
	} {
		artifact, err := loader.Load(ctx, b.name)
		if err != nil {
			return nil, err
		}
		contract := artifact.Bind(b.address)
		for _, m := range b.methods {
			if _, err := contract.Method(ctx, m); err != nil {
				return nil, err
			}
		}
		log.L(ctx).Debugf("Bound %s", contract)
		*b.target = contract
	}
	return c, nil
}
