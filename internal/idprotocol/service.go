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

	"github.com/identity-zk/idcli/internal/chain"
	"github.com/identity-zk/idcli/internal/contracts"
)

// Service performs the identity protocol contract calls
type Service struct {
	contracts *Contracts
	reader    chain.Reader
	writer    chain.Writer
}

func NewService(c *Contracts, reader chain.Reader, writer chain.Writer) *Service {
	return &Service{
		contracts: c,
		reader:    reader,
		writer:    writer,
	}
}

// MerchantName reads name() from the IDProtocol contract
func (s *Service) MerchantName(ctx context.Context) (interface{}, error) {
	return s.read(ctx, s.contracts.IDProtocol, methodName)
}

// RegisterMerchant sends registerMerchant(name) to the IDProtocol contract
func (s *Service) RegisterMerchant(ctx context.Context, name string) (*chain.TxHandle, error) {
	call, err := s.call(ctx, s.contracts.IDProtocol, methodRegisterMerchant, name)
	if err != nil {
		return nil, err
	}
	return s.writer.WriteContract(ctx, call)
}

// RegisterMerchantShielded sends registerMerchant(name) with encrypted calldata
func (s *Service) RegisterMerchantShielded(ctx context.Context, name string) (*chain.TxHandle, error) {
	call, err := s.call(ctx, s.contracts.IDProtocol, methodRegisterMerchant, name)
	if err != nil {
		return nil, err
	}
	return s.writer.ShieldedWriteContract(ctx, call)
}

// VerifyProof reads verify(proof) from the Verifier contract, with the proof as hex bytes
func (s *Service) VerifyProof(ctx context.Context, proof string) (interface{}, error) {
	return s.read(ctx, s.contracts.Verifier, methodVerify, proof)
}

// TokenPrice reads oracle(token) from the MockOracle contract
func (s *Service) TokenPrice(ctx context.Context, tokenAddress string) (interface{}, error) {
	return s.read(ctx, s.contracts.Oracle, methodOracle, tokenAddress)
}

func (s *Service) read(ctx context.Context, contract *contracts.Contract, method string, args ...string) (interface{}, error) {
	call, err := s.call(ctx, contract, method, args...)
	if err != nil {
		return nil, err
	}
	return s.reader.ReadContract(ctx, call)
}

func (s *Service) call(ctx context.Context, contract *contracts.Contract, method string, args ...string) (*chain.ContractCall, error) {
	m, err := contract.Method(ctx, method)
	if err != nil {
		return nil, err
	}
	values, err := contracts.CoerceArgs(ctx, m, args)
	if err != nil {
		return nil, err
	}
	return &chain.ContractCall{
		Contract: contract,
		Method:   method,
		Args:     values,
	}, nil
}
