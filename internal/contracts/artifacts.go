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

package contracts

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/identity-zk/idcli/internal/idmsgs"
)

const defaultCacheSize = 16

// Artifact is a parsed contract build artifact
type Artifact struct {
	Name string
	Path string
	ABI  abi.ABI
	// raw ABI entries of each function, keyed by function name
	entries map[string]json.RawMessage
}

type artifactFile struct {
	ContractName string            `json:"contractName,omitempty"`
	ABI          []json.RawMessage `json:"abi"`
}

type abiEntryHeader struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// Loader reads contract artifacts from a build directory, in either the
// Hardhat/Truffle layout ({"abi":[...]}) or as a bare ABI array.
type Loader struct {
	dir   string
	cache *lru.Cache[string, *Artifact]
}

func NewLoader(dir string, cacheSize int) (*Loader, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, *Artifact](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Loader{dir: dir, cache: cache}, nil
}

func (l *Loader) Load(ctx context.Context, name string) (*Artifact, error) {
	path := filepath.Join(l.dir, name+".json")
	if cached, ok := l.cache.Get(path); ok {
		return cached, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, idmsgs.MsgArtifactReadFailed, path)
	}
	artifact, err := parseArtifact(name, path, b)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, idmsgs.MsgArtifactParseFailed, path)
	}
	log.L(ctx).Debugf("Loaded artifact %s from %s (%d methods)", name, path, len(artifact.ABI.Methods))
	l.cache.Add(path, artifact)
	return artifact, nil
}

func parseArtifact(name, path string, b []byte) (*Artifact, error) {
	var entries []json.RawMessage
	if trimmed := bytes.TrimSpace(b); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}
	} else {
		var file artifactFile
		if err := json.Unmarshal(b, &file); err != nil {
			return nil, err
		}
		entries = file.ABI
	}

	abiJSON, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	parsed, err := abi.JSON(bytes.NewReader(abiJSON))
	if err != nil {
		return nil, err
	}

	artifact := &Artifact{
		Name:    name,
		Path:    path,
		ABI:     parsed,
		entries: make(map[string]json.RawMessage),
	}
	for _, entry := range entries {
		var header abiEntryHeader
		if err := json.Unmarshal(entry, &header); err != nil {
			return nil, err
		}
		if header.Type != "function" {
			continue
		}
		// First definition wins for overloaded functions
		if _, exists := artifact.entries[header.Name]; !exists {
			artifact.entries[header.Name] = entry
		}
	}
	return artifact, nil
}

// Bind attaches the artifact to a deployed address
func (a *Artifact) Bind(address common.Address) *Contract {
	return &Contract{
		Name:     a.Name,
		Address:  address,
		artifact: a,
	}
}

// Contract is a deployed instance of an artifact
type Contract struct {
	Name     string
	Address  common.Address
	artifact *Artifact
}

func (c *Contract) ABI() *abi.ABI {
	return &c.artifact.ABI
}

func (c *Contract) Method(ctx context.Context, name string) (*abi.Method, error) {
	method, ok := c.artifact.ABI.Methods[name]
	if !ok {
		return nil, i18n.NewError(ctx, idmsgs.MsgMethodNotFound, name, c.Name)
	}
	return &method, nil
}

// MethodEntry returns the ABI JSON definition of a function, as it appeared in the artifact
func (c *Contract) MethodEntry(name string) json.RawMessage {
	return c.artifact.entries[name]
}

func (c *Contract) String() string {
	return c.Name + "(" + c.Address.Hex() + ")"
}
