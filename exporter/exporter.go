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

// Package exporter converts Genkit-instrumented OpenTelemetry spans into
// Langfuse observation records and submits them through a langfuse.Client.
//
// The Exporter plugs into the OpenTelemetry SDK as a span exporter: the SDK
// owns batching and flush cadence, the Exporter owns classification, payload
// construction and the client lifecycle. Individual spans that fail to
// convert or submit are logged and dropped without failing their batch.
package exporter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/nlpodyssey/genkit-langfuse-go/genkitspan"
	"github.com/nlpodyssey/genkit-langfuse-go/langfuse"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ErrStopped is returned for batches submitted after Shutdown.
var ErrStopped = errors.New("exporter is shut down")

// CostFn computes the cost of a generation from its model name and token
// usage. An error (or panic) leaves the cost unset; it never drops the record.
type CostFn func(model string, usage genkitspan.TokenUsage) (float64, error)

// SpanSummary is the reduced view of a span handed to a Filter.
type SpanSummary struct {
	Name string
	Path string
	Type string
}

// Filter decides whether a span is exported at all. Returning false skips
// the span silently.
type Filter func(summary SpanSummary) bool

type Params struct {
	// The backend client records are submitted to. Required.
	// The exporter owns the client for its lifetime: Shutdown releases it,
	// and no other component may use it concurrently.
	Client langfuse.Client

	// Optional cost function for generations.
	CostFn CostFn

	// Optional span filter.
	Filter Filter

	// Optional lifecycle observer.
	Observer Observer

	// Optional environment tag attached to every record.
	Environment string
}

// Exporter is a sdktrace.SpanExporter submitting Langfuse observation
// records. Safe for concurrent use: overlapping batches are allowed and are
// not serialized against each other.
type Exporter struct {
	client      langfuse.Client
	costFn      CostFn
	filter      Filter
	observer    Observer
	environment string
	stopped     atomic.Bool
}

var _ sdktrace.SpanExporter = (*Exporter)(nil)

func New(params Params) (*Exporter, error) {
	if params.Client == nil {
		return nil, errors.New("exporter: client is required")
	}
	return &Exporter{
		client:      params.Client,
		costFn:      params.CostFn,
		filter:      params.Filter,
		observer:    params.Observer,
		environment: params.Environment,
	}, nil
}

// ExportSpans converts and submits a batch of spans, in the order supplied.
// A failure on an individual span (extraction, payload construction,
// submission, or a panic out of user-supplied callbacks) is logged and the
// span is dropped; the batch still succeeds. The only batch-level failure is
// exporting after Shutdown.
func (e *Exporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	if e.stopped.Load() {
		return ErrStopped
	}

	for _, span := range spans {
		if err := e.exportSpan(ctx, span); err != nil {
			Logger().Warn("dropping span",
				slog.String("name", span.Name()),
				slog.String("spanID", span.SpanContext().SpanID().String()),
				slog.String("error", err.Error()))
		}
	}
	return nil
}

// exportSpan processes a single span end to end. It is the per-span
// isolation boundary: any panic below it is converted into an error.
func (e *Exporter) exportSpan(ctx context.Context, span sdktrace.ReadOnlySpan) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("span processing panicked: %v", r)
		}
	}()

	md := genkitspan.Extract(span)

	if e.filter != nil && !e.filter(SpanSummary{Name: span.Name(), Path: md.Path, Type: md.Type}) {
		return nil
	}

	kind := genkitspan.Classify(span, md)

	var id string
	switch kind {
	case genkitspan.KindTrace:
		body := e.buildTrace(span, md)
		id = body.ID
		err = e.client.CreateTrace(ctx, body)
	case genkitspan.KindGeneration:
		body := e.buildGeneration(span, md)
		id = body.ID
		err = e.client.CreateGeneration(ctx, body)
	case genkitspan.KindSpan:
		body := e.buildSpan(span, md)
		id = body.ID
		err = e.client.CreateSpan(ctx, body)
	default:
		return fmt.Errorf("unexpected observation kind %q", kind)
	}

	if err != nil {
		if e.observer != nil {
			e.observer.OnSubmitError(kind, id, err)
		}
		return fmt.Errorf("failed to submit %s record: %w", kind, err)
	}
	if e.observer != nil {
		e.observer.OnSubmit(kind, id)
	}
	return nil
}

// ForceFlush asks the backend client to push any internally buffered records
// immediately. Client errors propagate to the caller.
func (e *Exporter) ForceFlush(ctx context.Context) error {
	if e.stopped.Load() {
		return ErrStopped
	}
	err := e.client.Flush(ctx)
	if e.observer != nil {
		e.observer.OnFlush()
	}
	return err
}

// Shutdown stops the exporter and releases the backend client. Unlike
// per-span export failures, client shutdown errors propagate to the caller.
// Subsequent calls are no-ops.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e.stopped.Swap(true) {
		return nil
	}
	return e.client.Shutdown(ctx)
}
