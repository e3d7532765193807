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

package langfuse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Client is implemented by objects which persist observation records in a
// Langfuse backend. Implementations must be safe for concurrent use: the
// exporter may submit records from overlapping batches.
type Client interface {
	// CreateTrace submits a root-level trace record.
	CreateTrace(ctx context.Context, body TraceBody) error

	// CreateGeneration submits a model-invocation record.
	CreateGeneration(ctx context.Context, body GenerationBody) error

	// CreateSpan submits a plain span record.
	CreateSpan(ctx context.Context, body SpanBody) error

	// Flush pushes any internally buffered records immediately.
	Flush(ctx context.Context) error

	// Shutdown releases the client and its background resources.
	Shutdown(ctx context.Context) error
}

// ConsoleClient is a Client that prints ingestion events instead of sending
// them anywhere. Useful for development and debugging.
type ConsoleClient struct {
	// Writer to print to. Defaults to os.Stdout if nil.
	Writer io.Writer
}

func (c ConsoleClient) writer() io.Writer {
	if c.Writer != nil {
		return c.Writer
	}
	return os.Stdout
}

func (c ConsoleClient) print(event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("ConsoleClient: failed to JSON-marshal %s event: %w", event.Type, err)
	}
	_, err = fmt.Fprintf(c.writer(), "[Langfuse] %s\n", data)
	return err
}

func (c ConsoleClient) CreateTrace(_ context.Context, body TraceBody) error {
	return c.print(NewTraceEvent(body))
}

func (c ConsoleClient) CreateGeneration(_ context.Context, body GenerationBody) error {
	return c.print(NewGenerationEvent(body))
}

func (c ConsoleClient) CreateSpan(_ context.Context, body SpanBody) error {
	return c.print(NewSpanEvent(body))
}

func (c ConsoleClient) Flush(context.Context) error { return nil }

func (c ConsoleClient) Shutdown(context.Context) error { return nil }
