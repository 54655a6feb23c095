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
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/identity-zk/idcli/internal/idmsgs"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	// FormatTemplatePrefix introduces a Go template, with sprig functions, rendered against the result
	FormatTemplatePrefix = "go-template="
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Reporter owns the two report channels. Successes go to out, failures to errOut.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	format string
	tmpl   *template.Template
}

type jsonReport struct {
	Status       string      `json:"status"`
	Action       string      `json:"action"`
	InvocationID string      `json:"invocationId"`
	Result       interface{} `json:"result,omitempty"`
	Error        string      `json:"error,omitempty"`
}

func NewReporter(ctx context.Context, out, errOut io.Writer, format string) (*Reporter, error) {
	r := &Reporter{
		out:    out,
		errOut: errOut,
		format: format,
	}
	switch {
	case format == "" || format == FormatText:
		r.format = FormatText
	case format == FormatJSON:
	case strings.HasPrefix(format, FormatTemplatePrefix):
		tmpl, err := template.New("output").Funcs(sprig.TxtFuncMap()).Parse(strings.TrimPrefix(format, FormatTemplatePrefix))
		if err != nil {
			return nil, i18n.NewError(ctx, idmsgs.MsgBadTemplate, err)
		}
		r.tmpl = tmpl
	default:
		return nil, i18n.NewError(ctx, idmsgs.MsgBadOutputFormat, format)
	}
	return r, nil
}

// Success reports a result on the success channel. A result the output
// template cannot render is returned as an error, and nothing is written.
func (r *Reporter) Success(ctx context.Context, o *Outcome) error {
	switch {
	case r.tmpl != nil:
		var buff strings.Builder
		if err := r.tmpl.Execute(&buff, o.Result); err != nil {
			log.L(ctx).Errorf("Output template failed: %s", err)
			return i18n.WrapError(ctx, err, idmsgs.MsgTemplateFailed)
		}
		fmt.Fprintln(r.out, buff.String())
	case r.format == FormatJSON:
		r.writeJSON(ctx, r.out, &jsonReport{
			Status:       statusSuccess,
			Action:       o.Action,
			InvocationID: o.InvocationID,
			Result:       o.Result,
		})
	default:
		r.writeText(r.out, "Success", o.Result)
	}
	return nil
}

func (r *Reporter) Failure(ctx context.Context, o *Outcome) {
	msg := errorMessage(o.Err)
	if r.format == FormatJSON {
		r.writeJSON(ctx, r.errOut, &jsonReport{
			Status:       statusError,
			Action:       o.Action,
			InvocationID: o.InvocationID,
			Error:        msg,
		})
		return
	}
	r.writeText(r.errOut, "Error", msg)
}

func (r *Reporter) writeText(w io.Writer, tag string, value interface{}) {
	fmt.Fprintf(w, "\n[%s]: %v\n", tag, value)
}

func (r *Reporter) writeJSON(ctx context.Context, w io.Writer, report *jsonReport) {
	b, err := json.Marshal(report)
	if err != nil {
		// results that cannot be serialized are still reported, as text
		log.L(ctx).Warnf("Failed to serialize result of %s: %s", report.Action, err)
		b, _ = json.Marshal(&jsonReport{
			Status:       report.Status,
			Action:       report.Action,
			InvocationID: report.InvocationID,
			Result:       fmt.Sprintf("%v", report.Result),
			Error:        report.Error,
		})
	}
	fmt.Fprintln(w, string(b))
}
