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
package scorer

import (
	"github.com/penny-vault/pvscreen/data"
)

// DefaultMinPassingScore is the threshold a total score must reach for
// a stock to be flagged as a candidate.
const DefaultMinPassingScore = 7.0

// Composite runs the three rule-sets over a snapshot, sums their scores
// and applies the pass threshold.
type Composite struct {
	minPassingScore float64
}

// NewComposite builds a composite scorer with the given pass threshold;
// a threshold of 0 selects the default.
func NewComposite(minPassingScore float64) *Composite {
	if minPassingScore == 0 {
		minPassingScore = DefaultMinPassingScore
	}

	return &Composite{minPassingScore: minPassingScore}
}

// MinPassingScore returns the configured threshold.
func (composite *Composite) MinPassingScore() float64 {
	return composite.minPassingScore
}

// Score computes the full result for a fetched snapshot. The snapshot
// must come from a successful fetch; failed fetches go through
// ScoreFetchError instead.
func (composite *Composite) Score(snapshot *data.FundamentalsSnapshot) *data.StockResult {
	financialScore, financialBreakdown := Financial(snapshot)
	moatScore, moatBreakdown := Moat(snapshot)
	riskDeduction, riskBreakdown := Risk(snapshot)

	totalScore := financialScore + moatScore + riskDeduction

	name := snapshot.Name
	if name == "" {
		name = snapshot.Ticker
	}

	return &data.StockResult{
		Ticker:    snapshot.Ticker,
		Name:      name,
		Sector:    snapshot.Sector,
		Industry:  snapshot.Industry,
		MarketCap: data.Value(snapshot.MarketCap),
		Price:     data.Value(snapshot.CurrentPrice),

		FinancialScore: financialScore,
		MoatScore:      moatScore,
		RiskDeduction:  riskDeduction,
		TotalScore:     totalScore,
		Passing:        totalScore >= composite.minPassingScore,

		FinancialBreakdown: financialBreakdown,
		MoatBreakdown:      moatBreakdown,
		RiskBreakdown:      riskBreakdown,

		DividendYield: data.Value(snapshot.DividendYield),
		Beta:          data.Value(snapshot.Beta),
	}
}

// ScoreFetchError packages a provider failure as the terminal
// error-variant result for the ticker. The rule-sets are not invoked.
func (composite *Composite) ScoreFetchError(ticker string, err error) *data.StockResult {
	return data.ErrorResult(ticker, err)
}
