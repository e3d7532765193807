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

// Package langfuse defines the Langfuse observation model used by the
// exporter, and the client boundary through which observation records are
// submitted to a backend.
package langfuse

import "time"

// Metadata is an arbitrary key-value bag attached to traces and observations.
type Metadata map[string]any

// ObservationLevel represents the severity level of an observation.
type ObservationLevel string

const (
	LevelDebug   ObservationLevel = "DEBUG"
	LevelDefault ObservationLevel = "DEFAULT"
	LevelWarning ObservationLevel = "WARNING"
	LevelError   ObservationLevel = "ERROR"
)

// Usage represents token usage for a generation.
// TotalCost is populated only when a cost function is configured on the
// exporter and succeeds for the generation's model.
type Usage struct {
	Input     int     `json:"input,omitempty"`
	Output    int     `json:"output,omitempty"`
	Total     int     `json:"total,omitempty"`
	Unit      string  `json:"unit,omitempty"`
	TotalCost float64 `json:"totalCost,omitempty"`
}

// TraceBody is the record created for a root-level observation.
type TraceBody struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Name        string    `json:"name,omitempty"`
	UserID      string    `json:"userId,omitempty"`
	SessionID   string    `json:"sessionId,omitempty"`
	Input       any       `json:"input,omitempty"`
	Output      any       `json:"output,omitempty"`
	Metadata    Metadata  `json:"metadata,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Environment string    `json:"environment,omitempty"`
}

// SpanBody is the record created for a non-root, non-generation observation.
type SpanBody struct {
	ID                  string           `json:"id"`
	TraceID             string           `json:"traceId,omitempty"`
	Name                string           `json:"name,omitempty"`
	StartTime           time.Time        `json:"startTime"`
	EndTime             time.Time        `json:"endTime"`
	Input               any              `json:"input,omitempty"`
	Output              any              `json:"output,omitempty"`
	Metadata            Metadata         `json:"metadata,omitempty"`
	Level               ObservationLevel `json:"level,omitempty"`
	StatusMessage       string           `json:"statusMessage,omitempty"`
	ParentObservationID string           `json:"parentObservationId,omitempty"`
	SessionID           string           `json:"sessionId,omitempty"`
	UserID              string           `json:"userId,omitempty"`
	Environment         string           `json:"environment,omitempty"`
}

// GenerationBody is the record created for a model invocation. It carries the
// common observation fields plus model identity, parameters and token usage.
type GenerationBody struct {
	ID                  string           `json:"id"`
	TraceID             string           `json:"traceId,omitempty"`
	Name                string           `json:"name,omitempty"`
	StartTime           time.Time        `json:"startTime"`
	EndTime             time.Time        `json:"endTime"`
	Input               any              `json:"input,omitempty"`
	Output              any              `json:"output,omitempty"`
	Metadata            Metadata         `json:"metadata,omitempty"`
	Level               ObservationLevel `json:"level,omitempty"`
	StatusMessage       string           `json:"statusMessage,omitempty"`
	ParentObservationID string           `json:"parentObservationId,omitempty"`
	SessionID           string           `json:"sessionId,omitempty"`
	UserID              string           `json:"userId,omitempty"`
	Environment         string           `json:"environment,omitempty"`

	Model           string         `json:"model,omitempty"`
	Provider        string         `json:"provider,omitempty"`
	ModelParameters map[string]any `json:"modelParameters,omitempty"`
	Usage           *Usage         `json:"usage,omitempty"`
}
