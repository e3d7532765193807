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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageFromOutput(t *testing.T) {
	t.Run("total computed", func(t *testing.T) {
		u, ok := UsageFromOutput(`{"usage":{"inputTokens":10,"outputTokens":5}}`)
		require.True(t, ok)
		assert.Equal(t, TokenUsage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}, u)
	})

	t.Run("explicit total wins", func(t *testing.T) {
		u, ok := UsageFromOutput(`{"usage":{"inputTokens":10,"outputTokens":5,"totalTokens":99}}`)
		require.True(t, ok)
		assert.Equal(t, 99, u.TotalTokens)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, ok := UsageFromOutput(`not json`)
		assert.False(t, ok)
	})

	t.Run("no usage field", func(t *testing.T) {
		_, ok := UsageFromOutput(`{"text":"hi"}`)
		assert.False(t, ok)
	})

	t.Run("empty output", func(t *testing.T) {
		_, ok := UsageFromOutput("")
		assert.False(t, ok)
	})
}

func TestModelConfigFromInput(t *testing.T) {
	t.Run("config present", func(t *testing.T) {
		config, ok := ModelConfigFromInput(`{"config":{"temperature":0.2,"maxOutputTokens":256}}`)
		require.True(t, ok)
		assert.Equal(t, map[string]any{"temperature": 0.2, "maxOutputTokens": 256.0}, config)
	})

	t.Run("config absent", func(t *testing.T) {
		_, ok := ModelConfigFromInput(`{"messages":[]}`)
		assert.False(t, ok)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, ok := ModelConfigFromInput(`{`)
		assert.False(t, ok)
	})
}
