// Copyright 2025
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package provider

import (
	"context"
	"errors"

	"github.com/penny-vault/pvscreen/data"
)

var (
	// ErrFetch indicates the provider could not be reached or returned an
	// unusable response.
	ErrFetch = errors.New("could not fetch fundamentals")

	// ErrUnknownTicker indicates the provider does not recognize the
	// requested symbol.
	ErrUnknownTicker = errors.New("unknown ticker")
)

// Fundamentals is a source of company fundamentals. Any provider
// implementing this contract is substitutable; the scoring core treats
// it as an opaque capability.
type Fundamentals interface {
	Name() string
	Description() string
	ConfigDescription() map[string]string

	// Fetch retrieves the fundamentals snapshot for a single ticker.
	Fetch(ctx context.Context, ticker string) (*data.FundamentalsSnapshot, error)
}

// Map holds all registered fundamentals providers keyed by name.
var Map = map[string]Fundamentals{
	"yahoo": &Yahoo{},
}
