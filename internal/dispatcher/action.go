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

package dispatcher

import (
	"context"
	"strings"
)

type Kind string

const (
	KindRead  Kind = "read"
	KindWrite Kind = "write"
)

// ActionFn performs the remote call behind a command, with the raw positional arguments
type ActionFn func(ctx context.Context, args []string) (interface{}, error)

// Action is a named command, with the ordered parameter names that fix its arity
type Action struct {
	Name        string
	Description string
	Params      []string
	Kind        Kind
	Fn          ActionFn
}

func (a *Action) Arity() int {
	return len(a.Params)
}

// Usage renders the command line form, for example "register-merchant <name>"
func (a *Action) Usage() string {
	parts := []string{a.Name}
	for _, p := range a.Params {
		parts = append(parts, "<"+p+">")
	}
	return strings.Join(parts, " ")
}
