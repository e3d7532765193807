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
	"errors"
	"time"

	"github.com/openai/openai-go/v2/packages/param"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type TracerProviderParams struct {
	// The exporter to install. Required.
	Exporter *Exporter

	// Export every span as soon as it ends instead of batching.
	// Suitable for development; batching is the mode for production use.
	Immediate bool

	// The maximum number of spans exported in one batch.
	// Default: 512.
	BatchSize param.Opt[int]

	// The delay between scheduled flushes of the span queue.
	// Default: 5 seconds.
	FlushInterval param.Opt[time.Duration]

	// The timeout applied to one export call.
	// Default: 30 seconds.
	ExportTimeout param.Opt[time.Duration]

	// The maximum number of spans queued before new spans are dropped.
	// Default: 2048.
	MaxQueueSize param.Opt[int]
}

// NewTracerProvider wires the exporter into an OpenTelemetry tracer provider.
// The provider owns the export cadence: it batches (or, in immediate mode,
// forwards) finished spans and calls the exporter on its own schedule.
// Shutting down the provider shuts down the exporter and its client.
func NewTracerProvider(params TracerProviderParams) (*sdktrace.TracerProvider, error) {
	if params.Exporter == nil {
		return nil, errors.New("exporter: tracer provider needs an exporter")
	}

	var processor sdktrace.SpanProcessor
	if params.Immediate {
		processor = sdktrace.NewSimpleSpanProcessor(params.Exporter)
	} else {
		processor = sdktrace.NewBatchSpanProcessor(
			params.Exporter,
			sdktrace.WithMaxExportBatchSize(params.BatchSize.Or(512)),
			sdktrace.WithBatchTimeout(params.FlushInterval.Or(5*time.Second)),
			sdktrace.WithExportTimeout(params.ExportTimeout.Or(30*time.Second)),
			sdktrace.WithMaxQueueSize(params.MaxQueueSize.Or(2048)),
		)
	}

	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(processor)), nil
}
