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

// Package genkitspan reads the Genkit attribute conventions off
// OpenTelemetry spans: structured metadata extraction, model/root
// predicates, token-usage parsing and observation-kind classification.
package genkitspan

import (
	"strings"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Attribute keys set by the Genkit tracing instrumentation.
const (
	AttrName       = "genkit:name"
	AttrPath       = "genkit:path"
	AttrType       = "genkit:type"
	AttrInput      = "genkit:input"
	AttrOutput     = "genkit:output"
	AttrState      = "genkit:state"
	AttrIsRoot     = "genkit:isRoot"
	AttrSessionID  = "genkit:sessionId"
	AttrThreadName = "genkit:threadName"
	AttrUserID     = "genkit:userId"

	// MetadataPrefix namespaces user-defined metadata attributes. The key
	// suffix after the prefix becomes the metadata key.
	MetadataPrefix = "genkit:metadata:"
)

// Execution states recorded under AttrState.
const (
	StateSuccess = "success"
	StateError   = "error"
)

// Metadata is the structured form of a span's Genkit attributes. It has no
// lifecycle of its own: it is derived per span and consumed immediately by
// classification and payload building.
type Metadata struct {
	Name       string
	Path       string
	Type       string
	Input      string
	Output     string
	State      string
	IsRoot     bool
	SessionID  string
	ThreadName string
	UserID     string
	Custom     map[string]string
}

// Extract maps a span's attribute bag into Metadata. It is total and never
// fails: missing attributes yield zero values. Iteration order of Custom is
// whatever the span producer recorded; callers must not depend on it.
func Extract(span sdktrace.ReadOnlySpan) Metadata {
	var md Metadata
	for _, kv := range span.Attributes() {
		switch string(kv.Key) {
		case AttrName:
			md.Name = stringValue(kv.Value)
		case AttrPath:
			md.Path = stringValue(kv.Value)
		case AttrType:
			md.Type = stringValue(kv.Value)
		case AttrInput:
			md.Input = stringValue(kv.Value)
		case AttrOutput:
			md.Output = stringValue(kv.Value)
		case AttrState:
			md.State = stringValue(kv.Value)
		case AttrIsRoot:
			md.IsRoot = boolValue(kv.Value)
		case AttrSessionID:
			md.SessionID = stringValue(kv.Value)
		case AttrThreadName:
			md.ThreadName = stringValue(kv.Value)
		case AttrUserID:
			md.UserID = stringValue(kv.Value)
		default:
			if suffix, ok := strings.CutPrefix(string(kv.Key), MetadataPrefix); ok {
				if md.Custom == nil {
					md.Custom = make(map[string]string)
				}
				md.Custom[suffix] = stringValue(kv.Value)
			}
		}
	}
	return md
}

// IsModelSpan reports whether the metadata describes a model invocation.
func IsModelSpan(md Metadata) bool {
	return md.Type == "model" || strings.Contains(md.Path, "/model/")
}

// IsRootSpan reports whether the span carries the Genkit root flag. The flag
// is normalized the same way Extract normalizes it: both a boolean true and
// the string "true" count.
func IsRootSpan(span sdktrace.ReadOnlySpan) bool {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == AttrIsRoot {
			return boolValue(kv.Value)
		}
	}
	return false
}

// HasParent reports whether the span has a parent, treating the all-zero
// span id sentinel as "no parent".
func HasParent(span sdktrace.ReadOnlySpan) bool {
	return span.Parent().SpanID().IsValid()
}

// stringValue renders an attribute value as a string. Non-string values keep
// their textual representation rather than being dropped.
func stringValue(v attribute.Value) string {
	if v.Type() == attribute.STRING {
		return v.AsString()
	}
	return v.Emit()
}

func boolValue(v attribute.Value) bool {
	switch v.Type() {
	case attribute.BOOL:
		return v.AsBool()
	case attribute.STRING:
		return v.AsString() == "true"
	default:
		return false
	}
}
