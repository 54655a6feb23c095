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

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/identity-zk/idcli/internal/dispatcher"
	"github.com/identity-zk/idcli/internal/idprotocol"
	"github.com/spf13/cobra"
)

// Arity is left to the dispatcher, so every action accepts any arguments here
func buildActionCommand(action *dispatcher.Action, factory appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   action.Usage(),
		Short: action.Description,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, factory, action.Name, args)
		},
	}
}

func actionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the available actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ACTION\tKIND\tDESCRIPTION")
			for _, a := range idprotocol.Catalog() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", a.Usage(), a.Kind, a.Description)
			}
			return w.Flush()
		},
	}
}
