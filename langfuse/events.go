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
	"time"

	"github.com/google/uuid"
)

// Event types understood by the Langfuse ingestion API.
const (
	EventTypeTraceCreate      = "trace-create"
	EventTypeGenerationCreate = "generation-create"
	EventTypeSpanCreate       = "span-create"
)

// Event is the envelope wrapping a single record in an ingestion batch.
// The envelope ID deduplicates redelivered events on the backend and is
// distinct from the ID of the record it carries.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Body      any       `json:"body"`
}

func newEvent(eventType string, body any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Body:      body,
	}
}

// NewTraceEvent wraps a trace record in an ingestion event envelope.
func NewTraceEvent(body TraceBody) Event {
	return newEvent(EventTypeTraceCreate, body)
}

// NewGenerationEvent wraps a generation record in an ingestion event envelope.
func NewGenerationEvent(body GenerationBody) Event {
	return newEvent(EventTypeGenerationCreate, body)
}

// NewSpanEvent wraps a span record in an ingestion event envelope.
func NewSpanEvent(body SpanBody) Event {
	return newEvent(EventTypeSpanCreate, body)
}
