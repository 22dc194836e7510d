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
package data

import (
	"time"

	"github.com/rs/zerolog"
)

// FundamentalsSnapshot is a normalized view of a single company's
// fundamentals as reported by a data provider at fetch time. Numeric
// fields are pointers so that a missing value is distinguishable from
// a true zero; scoring rules rely on that distinction.
type FundamentalsSnapshot struct {
	Ticker          string
	Name            string
	Sector          string
	Industry        string
	Country         string
	BusinessSummary string

	MarketCap    *float64 // USD
	CurrentPrice *float64 // USD

	ProfitMargin   *float64 // fraction
	ReturnOnEquity *float64 // fraction
	EarningsGrowth *float64 // fraction

	FreeCashFlow    *float64 // USD
	EBIT            *float64 // USD
	InterestExpense *float64 // USD
	DebtToEquity    *float64 // percent-scaled, 50 means 0.5

	SharesOutstanding *float64
	SharesShort       *float64
	DividendRate      *float64 // USD/share
	DividendYield     *float64 // percent
	FiveYearAvgYield  *float64 // percent

	BookValue *float64 // USD/share
	Beta      *float64

	FetchTime time.Time
}

// Float returns a pointer to v; convenient for building snapshots by hand.
func Float(v float64) *float64 {
	return &v
}

// Value returns the pointed-at value or 0 when the field is absent. Use
// only where a missing value and zero are treated the same.
func Value(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}

func (snapshot *FundamentalsSnapshot) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Ticker", snapshot.Ticker)
	e.Str("Sector", snapshot.Sector)
	e.Str("Industry", snapshot.Industry)
	e.Str("Country", snapshot.Country)

	if snapshot.MarketCap != nil {
		e.Float64("MarketCap", *snapshot.MarketCap)
	}

	if snapshot.CurrentPrice != nil {
		e.Float64("CurrentPrice", *snapshot.CurrentPrice)
	}
}
