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
	"fmt"
	"math"
	"strings"

	"github.com/penny-vault/pvscreen/data"
)

// FinancialMaxScore is the highest score Financial can award.
const FinancialMaxScore = 9.0

// Financial scores a snapshot on profitability, leverage and growth
// signals, awarding up to 9 points across nine criteria. A missing or
// malformed field degrades the affected criterion to its lowest tier;
// scoring never fails.
func Financial(snapshot *data.FundamentalsSnapshot) (score float64, breakdown []data.ScoreBreakdown) {
	defer func() {
		if r := recover(); r != nil {
			breakdown = append(breakdown, data.ScoreBreakdown{
				Criterion: "Error",
				Rating:    data.Fail,
				Detail:    fmt.Sprintf("%v", r),
			})
		}
	}()

	add := func(entry data.ScoreBreakdown) {
		score += entry.Points
		breakdown = append(breakdown, entry)
	}

	// 1. EPS growth above 5%
	growth := snapshot.EarningsGrowth
	switch {
	case growth != nil && *growth > 0.05:
		add(data.ScoreBreakdown{
			Criterion: "EPS Growth",
			Points:    1,
			Rating:    data.Pass,
			Detail:    fmt.Sprintf("%.1f%%", *growth*100),
		})
	case growth != nil:
		add(data.ScoreBreakdown{
			Criterion: "EPS Growth",
			Rating:    data.Fail,
			Detail:    fmt.Sprintf("%.1f%%", *growth*100),
		})
	default:
		add(data.ScoreBreakdown{
			Criterion: "EPS Growth",
			Rating:    data.Fail,
			Detail:    "N/A",
		})
	}

	// 2. Dividend stability; a five-year yield history marks an
	// established payer
	dividendRate := data.Value(snapshot.DividendRate)
	fiveYearYield := data.Value(snapshot.FiveYearAvgYield)

	switch {
	case dividendRate > 0 && fiveYearYield > 0:
		add(data.ScoreBreakdown{
			Criterion: "Dividend",
			Points:    1,
			Rating:    data.Pass,
			Detail:    fmt.Sprintf("$%.2f, 5yr avg %.1f%%", dividendRate, fiveYearYield),
		})
	case dividendRate > 0:
		add(data.ScoreBreakdown{
			Criterion: "Dividend",
			Points:    0.5,
			Rating:    data.Warn,
			Detail:    fmt.Sprintf("$%.2f", dividendRate),
		})
	default:
		add(data.ScoreBreakdown{
			Criterion: "Dividend",
			Rating:    data.Fail,
			Detail:    "No dividend",
		})
	}

	// 3. Share count trend. A true historical share-count series is not
	// available from the provider, so give partial credit when a buyback
	// program is evident.
	if data.Value(snapshot.SharesOutstanding) > 0 {
		buyback := strings.Contains(strings.ToLower(snapshot.BusinessSummary), "buyback")
		if data.Value(snapshot.SharesShort) > 0 || buyback {
			add(data.ScoreBreakdown{
				Criterion: "Shares",
				Points:    0.5,
				Rating:    data.Warn,
				Detail:    "Unable to verify trend",
			})
		}
	}

	// 4. Book value present and positive
	if data.Value(snapshot.BookValue) > 0 {
		add(data.ScoreBreakdown{
			Criterion: "Book Value",
			Points:    0.5,
			Rating:    data.Warn,
			Detail:    fmt.Sprintf("$%.2f", *snapshot.BookValue),
		})
	}

	// 5. Positive free cash flow
	if data.Value(snapshot.FreeCashFlow) > 0 {
		add(data.ScoreBreakdown{
			Criterion: "FCF",
			Points:    1,
			Rating:    data.Pass,
			Detail:    fmt.Sprintf("$%.2fB", *snapshot.FreeCashFlow/1e9),
		})
	} else {
		add(data.ScoreBreakdown{
			Criterion: "FCF",
			Rating:    data.Fail,
			Detail:    "Negative or N/A",
		})
	}

	// 6. Net margin
	if margin := data.Value(snapshot.ProfitMargin); margin != 0 {
		switch {
		case margin > 0.10:
			add(data.ScoreBreakdown{
				Criterion: "Net Margin",
				Points:    1,
				Rating:    data.Pass,
				Detail:    fmt.Sprintf("%.1f%%", margin*100),
			})
		case margin > 0.05:
			add(data.ScoreBreakdown{
				Criterion: "Net Margin",
				Points:    0.5,
				Rating:    data.Warn,
				Detail:    fmt.Sprintf("%.1f%%", margin*100),
			})
		default:
			add(data.ScoreBreakdown{
				Criterion: "Net Margin",
				Rating:    data.Fail,
				Detail:    fmt.Sprintf("%.1f%%", margin*100),
			})
		}
	}

	// 7. Return on equity in the 15-40% sweet spot
	if roe := data.Value(snapshot.ReturnOnEquity); roe != 0 {
		switch {
		case roe >= 0.15 && roe <= 0.40:
			add(data.ScoreBreakdown{
				Criterion: "ROE",
				Points:    1,
				Rating:    data.Pass,
				Detail:    fmt.Sprintf("%.1f%%", roe*100),
			})
		case roe >= 0.10 && roe < 0.15:
			add(data.ScoreBreakdown{
				Criterion: "ROE",
				Points:    0.5,
				Rating:    data.Warn,
				Detail:    fmt.Sprintf("%.1f%%", roe*100),
			})
		default:
			add(data.ScoreBreakdown{
				Criterion: "ROE",
				Rating:    data.Fail,
				Detail:    fmt.Sprintf("%.1f%%", roe*100),
			})
		}
	}

	// 8. Interest coverage. Zero or absent interest expense means the
	// company carries no debt, which is the best case rather than
	// missing data.
	if interest := data.Value(snapshot.InterestExpense); interest != 0 {
		ratio := 0.0
		if ebit := data.Value(snapshot.EBIT); ebit != 0 {
			ratio = math.Abs(ebit / interest)
		}

		switch {
		case ratio > 10:
			add(data.ScoreBreakdown{
				Criterion: "Interest Coverage",
				Points:    1,
				Rating:    data.Pass,
				Detail:    fmt.Sprintf("%.1fx", ratio),
			})
		case ratio > 5:
			add(data.ScoreBreakdown{
				Criterion: "Interest Coverage",
				Points:    0.5,
				Rating:    data.Warn,
				Detail:    fmt.Sprintf("%.1fx", ratio),
			})
		default:
			add(data.ScoreBreakdown{
				Criterion: "Interest Coverage",
				Rating:    data.Fail,
				Detail:    fmt.Sprintf("%.1fx", ratio),
			})
		}
	} else {
		add(data.ScoreBreakdown{
			Criterion: "Interest Coverage",
			Points:    1,
			Rating:    data.Pass,
			Detail:    "No debt",
		})
	}

	// 9. Debt to equity below 0.5; the provider reports the ratio
	// percent-scaled so the cutoff is 50. Only evaluated when present.
	if snapshot.DebtToEquity != nil {
		if *snapshot.DebtToEquity < 50 {
			add(data.ScoreBreakdown{
				Criterion: "D/E Ratio",
				Points:    1,
				Rating:    data.Pass,
				Detail:    fmt.Sprintf("%.2f", *snapshot.DebtToEquity/100),
			})
		} else {
			add(data.ScoreBreakdown{
				Criterion: "D/E Ratio",
				Rating:    data.Fail,
				Detail:    fmt.Sprintf("%.2f", *snapshot.DebtToEquity/100),
			})
		}
	}

	return score, breakdown
}
