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

import "github.com/nlpodyssey/genkit-langfuse-go/genkitspan"

// Observer receives callbacks at well-defined lifecycle points of the
// exporter. It replaces ad-hoc instrumentation of the backend client: pass
// one at construction to audit submissions and flushes without touching the
// client itself.
//
// Callbacks are invoked synchronously on the exporting goroutine and must
// not block.
type Observer interface {
	// OnSubmit is called after a record was accepted by the backend client.
	OnSubmit(kind genkitspan.Kind, id string)

	// OnSubmitError is called after the backend client rejected a record.
	// The span is dropped; the batch still succeeds.
	OnSubmitError(kind genkitspan.Kind, id string, err error)

	// OnFlush is called after a flush was requested from the backend client.
	OnFlush()
}
