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
	"fmt"
	"math/big"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/identity-zk/idcli/internal/idmsgs"
)

type StrategyType string

const (
	// StrategyTransport builds clients over a generic transport to a configured URL
	StrategyTransport StrategyType = "transport"
	// StrategyPreset builds clients for a named chain, with its chain ID and default URL
	StrategyPreset StrategyType = "preset"
)

type Transport string

const (
	TransportHTTP      Transport = "http"
	TransportConnector Transport = "connector"
)

// Preset describes a well known chain
type Preset struct {
	Name     string
	ChainID  *big.Int
	RPCURL   string
	Shielded bool
}

var presets = map[string]*Preset{
	"anvil": {
		Name:    "anvil",
		ChainID: big.NewInt(31337),
		RPCURL:  "http://127.0.0.1:8545",
	},
	"sanvil": {
		Name:     "sanvil",
		ChainID:  big.NewInt(31337),
		RPCURL:   "http://127.0.0.1:8545",
		Shielded: true,
	},
	"sepolia": {
		Name:    "sepolia",
		ChainID: big.NewInt(11155111),
		RPCURL:  "https://ethereum-sepolia-rpc.publicnode.com",
	},
}

// Strategy selects how the read and write clients are built. Exactly one of
// Transport or Preset is meaningful, according to Type.
type Strategy struct {
	Type      StrategyType
	Transport Transport
	Preset    *Preset
}

func (s *Strategy) String() string {
	if s.Type == StrategyPreset {
		return fmt.Sprintf("{preset: %s}", s.Preset.Name)
	}
	return fmt.Sprintf("{transport: %s}", s.Transport)
}

// ResolveStrategy turns the configured preset and transport names into a Strategy.
// A preset always talks JSON-RPC over HTTP, so it cannot be combined with another transport.
func ResolveStrategy(ctx context.Context, preset, transport string) (*Strategy, error) {
	if preset != "" {
		p, ok := presets[preset]
		if !ok {
			return nil, i18n.NewError(ctx, idmsgs.MsgUnknownPreset, preset)
		}
		if transport != "" && Transport(transport) != TransportHTTP {
			return nil, i18n.NewError(ctx, idmsgs.MsgPresetTransportConflict, preset, transport)
		}
		return &Strategy{Type: StrategyPreset, Preset: p}, nil
	}
	switch Transport(transport) {
	case "", TransportHTTP:
		return &Strategy{Type: StrategyTransport, Transport: TransportHTTP}, nil
	case TransportConnector:
		return &Strategy{Type: StrategyTransport, Transport: TransportConnector}, nil
	default:
		return nil, i18n.NewError(ctx, idmsgs.MsgUnknownTransport, transport)
	}
}
