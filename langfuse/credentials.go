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
	"cmp"
	"errors"
	"os"
)

// DefaultBaseURL is the Langfuse Cloud ingestion endpoint.
const DefaultBaseURL = "https://cloud.langfuse.com"

// Credentials identifies a Langfuse project.
type Credentials struct {
	// Project public key. Required.
	PublicKey string
	// Project secret key. Required.
	SecretKey string
	// Base URL of the backend. Defaults to DefaultBaseURL.
	BaseURL string
}

// CredentialsFromEnv reads credentials from the LANGFUSE_PUBLIC_KEY,
// LANGFUSE_SECRET_KEY and LANGFUSE_BASE_URL environment variables.
func CredentialsFromEnv() Credentials {
	return Credentials{
		PublicKey: os.Getenv("LANGFUSE_PUBLIC_KEY"),
		SecretKey: os.Getenv("LANGFUSE_SECRET_KEY"),
		BaseURL:   cmp.Or(os.Getenv("LANGFUSE_BASE_URL"), DefaultBaseURL),
	}
}

// Validate reports whether the credentials are complete enough to build a
// client. Missing keys are a fatal configuration error: callers must abort
// initialization instead of exporting anonymously.
func (c Credentials) Validate() error {
	if c.PublicKey == "" {
		return errors.New("langfuse: public key is not set")
	}
	if c.SecretKey == "" {
		return errors.New("langfuse: secret key is not set")
	}
	return nil
}
