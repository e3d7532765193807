// Copyright 2025 The NLP Odyssey Authors
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

package exporter

import (
	"cmp"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/nlpodyssey/genkit-langfuse-go/genkitspan"
	"github.com/nlpodyssey/genkit-langfuse-go/langfuse"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// UnknownModel is the model and provider name used when a generation span
// carries no model identity at all.
const UnknownModel = "unknown"

// modelPathPattern extracts provider and model from action paths of the form
// .../model/<provider>/<model>.
var modelPathPattern = regexp.MustCompile(`/model/([^/]+)/(.+)$`)

// modelFromPath resolves the provider and model encoded in an action path,
// returning UnknownModel for both on an unmatched path.
func modelFromPath(path string) (provider, model string) {
	m := modelPathPattern.FindStringSubmatch(path)
	if m == nil {
		return UnknownModel, UnknownModel
	}
	return m[1], m[2]
}

// decodeJSON decodes a serialized payload, falling back to the raw string
// unchanged when it is not valid JSON. An absent payload decodes to nil.
// It never fails and never drops data.
func decodeJSON(s string) any {
	if s == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

// observationMetadata assembles the metadata bag for a record: the span's
// custom metadata entries plus thread name and execution state.
func observationMetadata(md genkitspan.Metadata) langfuse.Metadata {
	if len(md.Custom) == 0 && md.ThreadName == "" && md.State == "" {
		return nil
	}
	meta := make(langfuse.Metadata, len(md.Custom)+2)
	for k, v := range md.Custom {
		meta[k] = v
	}
	if md.ThreadName != "" {
		meta["threadName"] = md.ThreadName
	}
	if md.State != "" {
		meta["state"] = md.State
	}
	return meta
}

// observationLevel maps the execution state onto an observation level.
// Failed actions surface as errors in the backend UI.
func observationLevel(md genkitspan.Metadata) (langfuse.ObservationLevel, string) {
	if md.State == genkitspan.StateError {
		return langfuse.LevelError, md.State
	}
	return "", ""
}

// parentObservationID resolves the span's parent link, omitting it for an
// absent parent or the reserved all-zero sentinel.
func parentObservationID(span sdktrace.ReadOnlySpan) string {
	if !genkitspan.HasParent(span) {
		return ""
	}
	return span.Parent().SpanID().String()
}

func observationName(span sdktrace.ReadOnlySpan, md genkitspan.Metadata) string {
	return cmp.Or(md.Name, span.Name())
}

func (e *Exporter) buildTrace(span sdktrace.ReadOnlySpan, md genkitspan.Metadata) langfuse.TraceBody {
	return langfuse.TraceBody{
		ID:          span.SpanContext().TraceID().String(),
		Timestamp:   span.StartTime(),
		Name:        observationName(span, md),
		UserID:      md.UserID,
		SessionID:   md.SessionID,
		Input:       decodeJSON(md.Input),
		Output:      decodeJSON(md.Output),
		Metadata:    observationMetadata(md),
		Environment: e.environment,
	}
}

func (e *Exporter) buildSpan(span sdktrace.ReadOnlySpan, md genkitspan.Metadata) langfuse.SpanBody {
	level, statusMessage := observationLevel(md)
	return langfuse.SpanBody{
		ID:                  span.SpanContext().SpanID().String(),
		TraceID:             span.SpanContext().TraceID().String(),
		Name:                observationName(span, md),
		StartTime:           span.StartTime(),
		EndTime:             span.EndTime(),
		Input:               decodeJSON(md.Input),
		Output:              decodeJSON(md.Output),
		Metadata:            observationMetadata(md),
		Level:               level,
		StatusMessage:       statusMessage,
		ParentObservationID: parentObservationID(span),
		SessionID:           md.SessionID,
		UserID:              md.UserID,
		Environment:         e.environment,
	}
}

func (e *Exporter) buildGeneration(span sdktrace.ReadOnlySpan, md genkitspan.Metadata) langfuse.GenerationBody {
	provider, pathModel := modelFromPath(md.Path)
	model := cmp.Or(md.Name, pathModel)

	var usage *langfuse.Usage
	if tokens, ok := genkitspan.UsageFromOutput(md.Output); ok {
		usage = &langfuse.Usage{
			Input:  tokens.InputTokens,
			Output: tokens.OutputTokens,
			Total:  tokens.TotalTokens,
		}
		if e.costFn != nil {
			if cost, err := e.safeCost(model, tokens); err != nil {
				Logger().Warn("cost function failed, leaving cost unset",
					slog.String("model", model), slog.String("error", err.Error()))
			} else {
				usage.TotalCost = cost
			}
		}
	}

	modelParams, _ := genkitspan.ModelConfigFromInput(md.Input)

	level, statusMessage := observationLevel(md)
	return langfuse.GenerationBody{
		ID:                  span.SpanContext().SpanID().String(),
		TraceID:             span.SpanContext().TraceID().String(),
		Name:                observationName(span, md),
		StartTime:           span.StartTime(),
		EndTime:             span.EndTime(),
		Input:               decodeJSON(md.Input),
		Output:              decodeJSON(md.Output),
		Metadata:            observationMetadata(md),
		Level:               level,
		StatusMessage:       statusMessage,
		ParentObservationID: parentObservationID(span),
		SessionID:           md.SessionID,
		UserID:              md.UserID,
		Environment:         e.environment,
		Model:               model,
		Provider:            provider,
		ModelParameters:     modelParams,
		Usage:               usage,
	}
}

// safeCost invokes the user-supplied cost function, converting a panic into
// an error so a misbehaving cost function can never abort the record.
func (e *Exporter) safeCost(model string, tokens genkitspan.TokenUsage) (cost float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cost function panicked: %v", r)
		}
	}()
	return e.costFn(model, tokens)
}
