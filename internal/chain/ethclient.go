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

package chain

import (
	"context"
	"crypto/ecdsa"
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/crypto/ecies"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/identity-zk/idcli/internal/contracts"
	"github.com/identity-zk/idcli/internal/idconfig"
	"github.com/identity-zk/idcli/internal/idmsgs"
)

var receiptPollInterval = 1 * time.Second

type ethBackend interface {
	bind.ContractBackend
	ChainID(ctx context.Context) (*big.Int, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type ethReader struct {
	backend bind.ContractCaller
	timeout time.Duration
}

func (r *ethReader) ReadContract(ctx context.Context, call *ContractCall) (interface{}, error) {
	callCtx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	bound := bind.NewBoundContract(call.Contract.Address, *call.Contract.ABI(), r.backend, nil, nil)
	var outputs []interface{}
	if err := bound.Call(&bind.CallOpts{Context: callCtx}, &outputs, call.Method, call.Args...); err != nil {
		return nil, i18n.WrapError(ctx, err, idmsgs.MsgCallFailed, call.Method, call.Contract)
	}
	log.L(ctx).Debugf("Call %s returned %d output(s)", call, len(outputs))
	return contracts.FormatOutputs(outputs), nil
}

type ethWriter struct {
	backend       ethBackend
	strategy      *Strategy
	chainID       *big.Int
	shielded      bool
	key           *ecdsa.PrivateKey
	encryptionKey *ecdsa.PublicKey
	timeout       time.Duration
	wait          bool
	waitTimeout   time.Duration
}

type sendFn func(bound *bind.BoundContract, opts *bind.TransactOpts) (*types.Transaction, error)

func (w *ethWriter) Address() common.Address {
	return crypto.PubkeyToAddress(w.key.PublicKey)
}

func (w *ethWriter) WriteContract(ctx context.Context, call *ContractCall) (*TxHandle, error) {
	return w.transact(ctx, call, false, func(bound *bind.BoundContract, opts *bind.TransactOpts) (*types.Transaction, error) {
		return bound.Transact(opts, call.Method, call.Args...)
	})
}

// ShieldedWriteContract submits the call with its calldata ECIES-encrypted to the
// network encryption key, carried as the data of a legacy transaction. This is
// not the typed shielded transaction envelope of a Seismic node.
func (w *ethWriter) ShieldedWriteContract(ctx context.Context, call *ContractCall) (*TxHandle, error) {
	if !w.shielded {
		return nil, i18n.NewError(ctx, idmsgs.MsgShieldedUnsupported, w.strategy)
	}
	if w.encryptionKey == nil {
		return nil, i18n.NewError(ctx, idmsgs.MsgShieldedKeyNotSet, idconfig.SignerEncryptionPublicKey)
	}
	calldata, err := call.Contract.ABI().Pack(call.Method, call.Args...)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, idmsgs.MsgPackFailed, call.Method, call.Contract)
	}
	encrypted, err := ecies.Encrypt(rand.Reader, ecies.ImportECDSAPublic(w.encryptionKey), calldata, nil, nil)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, idmsgs.MsgShieldedEncryptFailed, call.Method)
	}
	return w.transact(ctx, call, true, func(bound *bind.BoundContract, opts *bind.TransactOpts) (*types.Transaction, error) {
		return bound.RawTransact(opts, encrypted)
	})
}

func (w *ethWriter) transact(ctx context.Context, call *ContractCall, shielded bool, send sendFn) (*TxHandle, error) {
	callCtx, cancel := withTimeout(ctx, w.timeout)
	defer cancel()

	opts, err := w.transactOpts(callCtx)
	if err != nil {
		return nil, err
	}
	bound := bind.NewBoundContract(call.Contract.Address, *call.Contract.ABI(), w.backend, w.backend, nil)
	tx, err := send(bound, opts)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, idmsgs.MsgTransactFailed, call.Method, call.Contract)
	}
	log.L(ctx).Infof("Submitted transaction %s for %s (shielded=%t nonce=%d)", tx.Hash(), call, shielded, tx.Nonce())

	handle := &TxHandle{
		Hash:     tx.Hash(),
		From:     opts.From,
		Shielded: shielded,
	}
	if w.wait {
		if err := w.waitForReceipt(ctx, handle); err != nil {
			return nil, err
		}
	}
	return handle, nil
}

func (w *ethWriter) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	chainID := w.chainID
	if chainID == nil {
		var err error
		if chainID, err = w.backend.ChainID(ctx); err != nil {
			return nil, i18n.WrapError(ctx, err, idmsgs.MsgChainIDFailed)
		}
	}
	opts, err := bind.NewKeyedTransactorWithChainID(w.key, chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx

	// Legacy pricing at the node's suggested gas price
	gasPrice, err := w.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, idmsgs.MsgGasPriceFailed)
	}
	opts.GasPrice = gasPrice
	return opts, nil
}

func (w *ethWriter) waitForReceipt(ctx context.Context, handle *TxHandle) error {
	waitCtx, cancel := withTimeout(ctx, w.waitTimeout)
	defer cancel()

	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()
	for {
		receipt, err := w.backend.TransactionReceipt(waitCtx, handle.Hash)
		if err == nil {
			status := receipt.Status
			handle.Status = &status
			handle.BlockNumber = receipt.BlockNumber
			if status != types.ReceiptStatusSuccessful {
				return i18n.NewError(ctx, idmsgs.MsgTransactionReverted, handle.Hash.Hex(), receipt.BlockNumber)
			}
			log.L(ctx).Infof("Transaction %s mined in block %s", handle.Hash, receipt.BlockNumber)
			return nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			log.L(ctx).Debugf("Receipt query for %s failed: %s", handle.Hash, err)
		}
		select {
		case <-waitCtx.Done():
			return i18n.WrapError(ctx, waitCtx.Err(), idmsgs.MsgWaitReceiptFailed, handle.Hash.Hex())
		case <-ticker.C:
		}
	}
}
