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

import "encoding/json"

// TokenUsage is the token accounting reported by a model action.
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UsageFromOutput parses a serialized action output and returns its usage
// object, if any. TotalTokens is computed as InputTokens+OutputTokens when
// the output omits it. A missing or unparsable output, or an output without
// a usage object, yields ok=false, never an error.
func UsageFromOutput(output string) (u TokenUsage, ok bool) {
	if output == "" {
		return TokenUsage{}, false
	}

	var decoded struct {
		Usage *struct {
			InputTokens  int  `json:"inputTokens"`
			OutputTokens int  `json:"outputTokens"`
			TotalTokens  *int `json:"totalTokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal([]byte(output), &decoded); err != nil || decoded.Usage == nil {
		return TokenUsage{}, false
	}

	u = TokenUsage{
		InputTokens:  decoded.Usage.InputTokens,
		OutputTokens: decoded.Usage.OutputTokens,
	}
	if decoded.Usage.TotalTokens != nil {
		u.TotalTokens = *decoded.Usage.TotalTokens
	} else {
		u.TotalTokens = u.InputTokens + u.OutputTokens
	}
	return u, true
}

// ModelConfigFromInput parses a serialized action input and returns its
// config object, or ok=false if the input is missing, unparsable, or has no
// config field.
func ModelConfigFromInput(input string) (map[string]any, bool) {
	if input == "" {
		return nil, false
	}

	var decoded struct {
		Config map[string]any `json:"config"`
	}
	if err := json.Unmarshal([]byte(input), &decoded); err != nil || decoded.Config == nil {
		return nil, false
	}
	return decoded.Config, true
}
