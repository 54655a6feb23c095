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
	"context"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/identity-zk/idcli/internal/idconfig"
	"github.com/spf13/cobra"
)

const configDocHeader = "# idcli configuration"

func docsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Prints the configuration reference as markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idconfig.Reset()
			b, err := config.GenerateConfigMarkdown(context.Background(), configDocHeader, config.GetKnownKeys())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
