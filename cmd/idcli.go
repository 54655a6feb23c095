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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/identity-zk/idcli/internal/app"
	"github.com/identity-zk/idcli/internal/dispatcher"
	"github.com/identity-zk/idcli/internal/idconfig"
	"github.com/identity-zk/idcli/internal/idmsgs"
	"github.com/identity-zk/idcli/internal/idprotocol"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type application interface {
	Dispatch(ctx context.Context, name string, args []string) (*dispatcher.Outcome, error)
	Close()
}

type appFactory func(ctx context.Context, out, errOut io.Writer) (application, error)

var cfgFile string
var outputFormat string
var failOnError bool
var verbose bool

var rootCmd = buildRootCommand(createApp)

func Execute() error {
	return rootCmd.Execute()
}

func buildRootCommand(factory appFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "idcli <command> [args...]",
		Short:        "Identity protocol smart contract command line",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			// not a registered sub-command, so the dispatcher reports it as unknown
			return runAction(cmd, factory, args[0], args[1:])
		},
	}
	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "config file")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: text, json or go-template=<template>")
	cmd.PersistentFlags().BoolVarP(&failOnError, "fail-on-error", "", false, "exit with a non-zero status when the action reports an error")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	for _, action := range idprotocol.Catalog() {
		cmd.AddCommand(buildActionCommand(action, factory))
	}
	cmd.AddCommand(actionsCommand())
	cmd.AddCommand(versionCommand())
	cmd.AddCommand(docsCommand())
	return cmd
}

func initConfig() (context.Context, error) {
	idconfig.Reset()
	err := config.ReadConfig("idcli", cfgFile)

	// Setup logging after reading config (even if failed), to output header correctly
	ctx := log.WithLogger(context.Background(), logrus.WithField("pid", fmt.Sprintf("%d", os.Getpid())))
	ctx = log.WithLogger(ctx, logrus.WithField("prefix", "idcli"))
	if verbose {
		config.Set(config.LogLevel, "debug")
	}
	config.SetupLogging(ctx)

	// A config file is optional, unless one was named
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return ctx, i18n.WrapError(ctx, err, idmsgs.MsgConfigFailed)
		}
	}
	if outputFormat != "" {
		config.Set(idconfig.OutputFormat, outputFormat)
	}
	return ctx, nil
}

func createApp(ctx context.Context, out, errOut io.Writer) (application, error) {
	settings, err := idconfig.Load(ctx)
	if err != nil {
		return nil, err
	}
	a, err := app.New(ctx, settings, out, errOut)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func runAction(cmd *cobra.Command, factory appFactory, name string, args []string) error {
	ctx, err := initConfig()
	if err != nil {
		return err
	}
	// An interrupt abandons any in-flight call or receipt wait
	ctx, cancelCtx := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancelCtx()

	a, err := factory(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	outcome, err := a.Dispatch(ctx, name, args)
	if err != nil {
		return err
	}
	if outcome.Failed() && failOnError {
		return i18n.NewError(ctx, idmsgs.MsgActionFailed, name)
	}
	return nil
}
