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

package app

import (
	"context"
	"io"

	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/identity-zk/idcli/internal/chain"
	"github.com/identity-zk/idcli/internal/contracts"
	"github.com/identity-zk/idcli/internal/dispatcher"
	"github.com/identity-zk/idcli/internal/idconfig"
	"github.com/identity-zk/idcli/internal/idprotocol"
	"github.com/identity-zk/idcli/internal/metrics"
)

// App is one run of the CLI: the clients, contracts and dispatcher built from
// validated settings. Any failure building it is a configuration error, and
// happens before a command is dispatched.
type App struct {
	dispatcher *dispatcher.Dispatcher
	metrics    metrics.Metrics
	clients    *chain.Clients
}

func New(ctx context.Context, settings *idconfig.Settings, out, errOut io.Writer) (*App, error) {
	strategy, err := chain.ResolveStrategy(ctx, settings.Preset, settings.Transport)
	if err != nil {
		return nil, err
	}
	loader, err := contracts.NewLoader(settings.ArtifactsDir, settings.CacheSize)
	if err != nil {
		return nil, err
	}
	c, err := idprotocol.LoadContracts(ctx, loader, &settings.Addresses)
	if err != nil {
		return nil, err
	}
	clients, err := chain.NewClients(ctx, &chain.Options{
		Strategy:       strategy,
		RPCURL:         settings.RPCURL,
		RequestTimeout: settings.RequestTimeout,
		PrivateKey:     settings.PrivateKey,
		From:           settings.From,
		EncryptionKey:  settings.EncryptionPublicKey,
		Wait:           settings.Wait,
		WaitTimeout:    settings.WaitTimeout,
		Connector:      settings.Connector,
	})
	if err != nil {
		return nil, err
	}
	a, err := Assemble(ctx, settings, c, clients, out, errOut)
	if err != nil {
		clients.Close()
		return nil, err
	}
	return a, nil
}

// Assemble wires the dispatcher over already built contracts and clients
func Assemble(ctx context.Context, settings *idconfig.Settings, c *idprotocol.Contracts, clients *chain.Clients, out, errOut io.Writer) (*App, error) {
	reporter, err := dispatcher.NewReporter(ctx, out, errOut, settings.OutputFormat)
	if err != nil {
		return nil, err
	}
	mm := metrics.NewMetricsManager(ctx, settings.MetricsTextfile)
	d := dispatcher.New(reporter, mm)
	svc := idprotocol.NewService(c, clients.Reader, clients.Writer)
	if err := d.Register(ctx, svc.Actions()...); err != nil {
		return nil, err
	}
	log.L(ctx).Debugf("Registered %d actions, signing as %s", len(d.Actions()), clients.Writer.Address())
	return &App{
		dispatcher: d,
		metrics:    mm,
		clients:    clients,
	}, nil
}

func (a *App) Actions() []*dispatcher.Action {
	return a.dispatcher.Actions()
}

// Dispatch runs one command. Metrics are flushed after the action, and a
// failure to write them is only logged.
func (a *App) Dispatch(ctx context.Context, name string, args []string) (*dispatcher.Outcome, error) {
	outcome, err := a.dispatcher.Dispatch(ctx, name, args)
	if err != nil {
		return nil, err
	}
	if err := a.metrics.Flush(ctx); err != nil {
		log.L(ctx).Warnf("Metrics not written: %s", err)
	}
	return outcome, nil
}

func (a *App) Close() {
	a.clients.Close()
}
