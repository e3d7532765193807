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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// stubSpan builds a minimal ReadOnlySpan carrying the given attributes.
// withParent links it to a non-zero parent span id.
func stubSpan(name string, withParent bool, attrs ...attribute.KeyValue) sdktrace.ReadOnlySpan {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	stub := tracetest.SpanStub{
		Name: name,
		SpanContext: trace.NewSpanContext(trace.SpanContextConfig{
			TraceID: trace.TraceID{0x01},
			SpanID:  trace.SpanID{0x02},
		}),
		StartTime:  start,
		EndTime:    start.Add(time.Second),
		Attributes: attrs,
	}
	if withParent {
		stub.Parent = trace.NewSpanContext(trace.SpanContextConfig{
			TraceID: trace.TraceID{0x01},
			SpanID:  trace.SpanID{0x03},
		})
	}
	return stub.Snapshot()
}

func TestExtract(t *testing.T) {
	span := stubSpan("doGenerate", true,
		attribute.String(AttrName, "gpt-4-turbo"),
		attribute.String(AttrPath, "/flow/chat/model/openai/gpt-4-turbo"),
		attribute.String(AttrType, "model"),
		attribute.String(AttrInput, `{"messages":[]}`),
		attribute.String(AttrOutput, `{"text":"hi"}`),
		attribute.String(AttrState, StateSuccess),
		attribute.Bool(AttrIsRoot, true),
		attribute.String(AttrSessionID, "session-1"),
		attribute.String(AttrThreadName, "main"),
		attribute.String(AttrUserID, "user-7"),
	)

	md := Extract(span)
	assert.Equal(t, "gpt-4-turbo", md.Name)
	assert.Equal(t, "/flow/chat/model/openai/gpt-4-turbo", md.Path)
	assert.Equal(t, "model", md.Type)
	assert.Equal(t, `{"messages":[]}`, md.Input)
	assert.Equal(t, `{"text":"hi"}`, md.Output)
	assert.Equal(t, StateSuccess, md.State)
	assert.True(t, md.IsRoot)
	assert.Equal(t, "session-1", md.SessionID)
	assert.Equal(t, "main", md.ThreadName)
	assert.Equal(t, "user-7", md.UserID)
	assert.Nil(t, md.Custom)
}

func TestExtractMissingAttributes(t *testing.T) {
	md := Extract(stubSpan("bare", false))
	assert.Equal(t, Metadata{}, md)
}

func TestExtractCustomMetadata(t *testing.T) {
	span := stubSpan("step", true,
		attribute.String(MetadataPrefix+"a", "x"),
		attribute.String(MetadataPrefix+"b", "y"),
		attribute.String("other:k", "z"),
	)

	md := Extract(span)
	assert.Equal(t, map[string]string{"a": "x", "b": "y"}, md.Custom)
}

func TestExtractRootFlagForms(t *testing.T) {
	t.Run("boolean", func(t *testing.T) {
		md := Extract(stubSpan("root", false, attribute.Bool(AttrIsRoot, true)))
		assert.True(t, md.IsRoot)
	})

	t.Run("string", func(t *testing.T) {
		md := Extract(stubSpan("root", false, attribute.String(AttrIsRoot, "true")))
		assert.True(t, md.IsRoot)
	})

	t.Run("string false", func(t *testing.T) {
		md := Extract(stubSpan("root", false, attribute.String(AttrIsRoot, "false")))
		assert.False(t, md.IsRoot)
	})
}

func TestIsRootSpan(t *testing.T) {
	// Same normalization as Extract: bool and string "true" agree.
	assert.True(t, IsRootSpan(stubSpan("a", false, attribute.Bool(AttrIsRoot, true))))
	assert.True(t, IsRootSpan(stubSpan("a", false, attribute.String(AttrIsRoot, "true"))))
	assert.False(t, IsRootSpan(stubSpan("a", false, attribute.String(AttrIsRoot, "yes"))))
	assert.False(t, IsRootSpan(stubSpan("a", false)))
}

func TestIsModelSpan(t *testing.T) {
	assert.True(t, IsModelSpan(Metadata{Type: "model"}))
	assert.True(t, IsModelSpan(Metadata{Path: "/flow/x/model/openai/gpt-4"}))
	assert.False(t, IsModelSpan(Metadata{Type: "flow", Path: "/flow/x"}))
}

func TestHasParent(t *testing.T) {
	assert.True(t, HasParent(stubSpan("child", true)))
	assert.False(t, HasParent(stubSpan("root", false)))
}
