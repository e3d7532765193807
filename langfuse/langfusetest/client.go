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

// Package langfusetest provides an in-memory Client for tests.
package langfusetest

import (
	"context"
	"slices"
	"sync"

	"github.com/nlpodyssey/genkit-langfuse-go/langfuse"
)

// RecordingClient is a langfuse.Client that stores submitted records in
// memory. It is concurrency-safe and suitable for tests or basic usage.
//
// The error fields, when set, are returned by the corresponding calls;
// records are still recorded, so tests can assert on both the outcome and
// what was submitted.
type RecordingClient struct {
	TraceErr      error
	GenerationErr error
	SpanErr       error
	FlushErr      error
	ShutdownErr   error

	mu            sync.RWMutex
	traces        []langfuse.TraceBody
	generations   []langfuse.GenerationBody
	spans         []langfuse.SpanBody
	flushCalls    int
	shutdownCalls int
}

func NewRecordingClient() *RecordingClient {
	return &RecordingClient{}
}

func (c *RecordingClient) CreateTrace(_ context.Context, body langfuse.TraceBody) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.traces = append(c.traces, body)
	return c.TraceErr
}

func (c *RecordingClient) CreateGeneration(_ context.Context, body langfuse.GenerationBody) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations = append(c.generations, body)
	return c.GenerationErr
}

func (c *RecordingClient) CreateSpan(_ context.Context, body langfuse.SpanBody) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spans = append(c.spans, body)
	return c.SpanErr
}

func (c *RecordingClient) Flush(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushCalls += 1
	return c.FlushErr
}

func (c *RecordingClient) Shutdown(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shutdownCalls += 1
	return c.ShutdownErr
}

// Traces returns the trace records submitted so far, in submission order.
func (c *RecordingClient) Traces() []langfuse.TraceBody {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.traces)
}

// Generations returns the generation records submitted so far, in submission order.
func (c *RecordingClient) Generations() []langfuse.GenerationBody {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.generations)
}

// Spans returns the span records submitted so far, in submission order.
func (c *RecordingClient) Spans() []langfuse.SpanBody {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.spans)
}

// Total returns the total number of records submitted, of all kinds.
func (c *RecordingClient) Total() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.traces) + len(c.generations) + len(c.spans)
}

func (c *RecordingClient) FlushCalls() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.flushCalls
}

func (c *RecordingClient) ShutdownCalls() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.shutdownCalls
}
