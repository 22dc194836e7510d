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
	"sort"

	"github.com/rs/zerolog"
)

type Rating string

const (
	Pass Rating = "✓"
	Warn Rating = "⚠"
	Fail Rating = "✗"
)

// ScoreBreakdown records how a single criterion contributed to a score.
// Entries are created once per scoring call and never mutated.
type ScoreBreakdown struct {
	Criterion string
	Points    float64
	Rating    Rating
	Detail    string
}

// StockResult aggregates the three sub-scores computed for a ticker. A
// fetch failure produces the error variant: Err is set, all scores are
// zero and Passing is false.
type StockResult struct {
	Ticker    string
	Name      string
	Sector    string
	Industry  string
	MarketCap float64
	Price     float64

	FinancialScore float64
	MoatScore      float64
	RiskDeduction  float64
	TotalScore     float64
	Passing        bool

	FinancialBreakdown []ScoreBreakdown
	MoatBreakdown      []ScoreBreakdown
	RiskBreakdown      []ScoreBreakdown

	DividendYield float64
	Beta          float64

	Err error
}

// ErrorResult builds the terminal error variant for a ticker whose
// fundamentals could not be fetched.
func ErrorResult(ticker string, err error) *StockResult {
	return &StockResult{
		Ticker:  ticker,
		Name:    ticker,
		Err:     err,
		Passing: false,
	}
}

func (result *StockResult) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Ticker", result.Ticker)

	if result.Err != nil {
		e.Err(result.Err)
		return
	}

	e.Float64("Financial", result.FinancialScore)
	e.Float64("Moat", result.MoatScore)
	e.Float64("Risk", result.RiskDeduction)
	e.Float64("Total", result.TotalScore)
	e.Bool("Passing", result.Passing)
}

// SortByScore orders results by total score descending; display order is
// always re-derived here, never taken from fetch completion order.
func SortByScore(results []*StockResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})
}

// SummaryRow is the fixed column set written to every CSV view.
type SummaryRow struct {
	Ticker         string  `csv:"ticker"`
	CompanyName    string  `csv:"company_name"`
	Sector         string  `csv:"sector"`
	Industry       string  `csv:"industry"`
	CurrentPrice   float64 `csv:"current_price"`
	MarketCap      float64 `csv:"market_cap"`
	FinancialScore float64 `csv:"financial_score"`
	MoatScore      float64 `csv:"moat_score"`
	RiskDeduction  float64 `csv:"risk_deduction"`
	TotalScore     float64 `csv:"total_score"`
	Passing        bool    `csv:"passing"`
	DividendYield  float64 `csv:"dividend_yield"`
}

// Summary projects the result onto the export column set.
func (result *StockResult) Summary() *SummaryRow {
	return &SummaryRow{
		Ticker:         result.Ticker,
		CompanyName:    result.Name,
		Sector:         result.Sector,
		Industry:       result.Industry,
		CurrentPrice:   result.Price,
		MarketCap:      result.MarketCap,
		FinancialScore: result.FinancialScore,
		MoatScore:      result.MoatScore,
		RiskDeduction:  result.RiskDeduction,
		TotalScore:     result.TotalScore,
		Passing:        result.Passing,
		DividendYield:  result.DividendYield,
	}
}
