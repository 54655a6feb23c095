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
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/identity-zk/idcli/internal/connector"
	"github.com/identity-zk/idcli/internal/contracts"
	"github.com/identity-zk/idcli/internal/idmsgs"
)

// ContractCall is one invocation of a method on a deployed contract, with
// arguments already coerced to the types of the method inputs
type ContractCall struct {
	Contract *contracts.Contract
	Method   string
	Args     []interface{}
}

func (c *ContractCall) String() string {
	return fmt.Sprintf("%s.%s", c.Contract, c.Method)
}

// TxHandle identifies a submitted transaction, and its receipt when the
// writer waited for it to be mined
type TxHandle struct {
	Hash        common.Hash    `json:"transactionHash"`
	From        common.Address `json:"from"`
	Shielded    bool           `json:"shielded,omitempty"`
	BlockNumber *big.Int       `json:"blockNumber,omitempty"`
	Status      *uint64        `json:"status,omitempty"`
}

func (h *TxHandle) String() string {
	if h.BlockNumber != nil {
		return fmt.Sprintf("%s (block %s)", h.Hash.Hex(), h.BlockNumber)
	}
	return h.Hash.Hex()
}

type Reader interface {
	ReadContract(ctx context.Context, call *ContractCall) (interface{}, error)
}

type Writer interface {
	WriteContract(ctx context.Context, call *ContractCall) (*TxHandle, error)
	ShieldedWriteContract(ctx context.Context, call *ContractCall) (*TxHandle, error)
	Address() common.Address
}

// Options carries everything needed to build the clients for one run
type Options struct {
	Strategy       *Strategy
	RPCURL         string
	RequestTimeout time.Duration
	PrivateKey     *ecdsa.PrivateKey
	From           common.Address
	EncryptionKey  *ecdsa.PublicKey
	Wait           bool
	WaitTimeout    time.Duration
	Connector      config.Section
}

// Clients is the read client and signing client pair, bound to one endpoint.
// Both are read-only once built.
type Clients struct {
	Reader Reader
	Writer Writer
	close  func()
}

func (c *Clients) Close() {
	if c.close != nil {
		c.close()
	}
}

// NewClients builds the read and write clients according to the strategy
func NewClients(ctx context.Context, opts *Options) (*Clients, error) {
	log.L(ctx).Debugf("Building chain clients with strategy %s", opts.Strategy)
	if opts.Strategy.Type == StrategyTransport && opts.Strategy.Transport == TransportConnector {
		return newConnectorClients(ctx, opts)
	}

	url := opts.RPCURL
	var chainID *big.Int
	shielded := false
	if opts.Strategy.Type == StrategyPreset {
		if url == "" {
			url = opts.Strategy.Preset.RPCURL
		}
		chainID = opts.Strategy.Preset.ChainID
		shielded = opts.Strategy.Preset.Shielded
	}

	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, idmsgs.MsgRPCDialFailed, url)
	}
	return &Clients{
		Reader: &ethReader{backend: client, timeout: opts.RequestTimeout},
		Writer: &ethWriter{
			backend:       client,
			strategy:      opts.Strategy,
			chainID:       chainID,
			shielded:      shielded,
			key:           opts.PrivateKey,
			encryptionKey: opts.EncryptionKey,
			timeout:       opts.RequestTimeout,
			wait:          opts.Wait,
			waitTimeout:   opts.WaitTimeout,
		},
		close: client.Close,
	}, nil
}

func newConnectorClients(ctx context.Context, opts *Options) (*Clients, error) {
	api, err := connector.New(ctx, opts.Connector)
	if err != nil {
		return nil, err
	}
	return &Clients{
		Reader: &connectorReader{api: api},
		Writer: &connectorWriter{api: api, from: opts.From, strategy: opts.Strategy},
	}, nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
