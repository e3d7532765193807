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

package genkitspan

import (
	"strings"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Kind is the observation kind a span maps to. It is a closed tag: the
// exporter switches on it to pick the payload shape and submission call.
type Kind string

const (
	KindGeneration Kind = "generation"
	KindTrace      Kind = "trace"
	KindSpan       Kind = "span"
)

// rule pairs a predicate with the kind it produces. Rules are evaluated
// top-down, first match wins.
type rule struct {
	kind  Kind
	match func(span sdktrace.ReadOnlySpan, md Metadata) bool
}

// classificationRules encode precedence: a root flow that is also a model
// call is a Generation because the generation rule comes first. Reordering
// changes classification outcomes for ambiguous spans.
var classificationRules = []rule{
	{KindGeneration, func(span sdktrace.ReadOnlySpan, md Metadata) bool {
		return IsModelSpan(md) ||
			strings.Contains(span.Name(), "generate") ||
			strings.Contains(span.Name(), "model")
	}},
	{KindTrace, func(span sdktrace.ReadOnlySpan, md Metadata) bool {
		return md.IsRoot ||
			md.Type == "flow" ||
			strings.Contains(md.Path, "/flow/") ||
			!HasParent(span)
	}},
	// Tool spans get no shape of their own; the rule records the intent and
	// keeps the precedence explicit should tools ever diverge from plain spans.
	{KindSpan, func(span sdktrace.ReadOnlySpan, md Metadata) bool {
		return md.Type == "tool" ||
			strings.Contains(md.Path, "/tool/") ||
			strings.Contains(span.Name(), "tool") ||
			strings.Contains(span.Name(), "Tool")
	}},
}

// Classify maps a span and its extracted metadata to an observation kind.
// Deterministic and total: spans matching no rule are plain spans.
func Classify(span sdktrace.ReadOnlySpan, md Metadata) Kind {
	for _, r := range classificationRules {
		if r.match(span, md) {
			return r.kind
		}
	}
	return KindSpan
}
