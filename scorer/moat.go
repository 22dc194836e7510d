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
	"strings"

	"github.com/penny-vault/pvscreen/data"
)

// MoatMaxScore is the highest score Moat can award.
const MoatMaxScore = 7.0

var (
	consumerSectors = []string{"Consumer Cyclical", "Consumer Defensive", "Communication Services"}
	ipSectors       = []string{"Healthcare", "Technology"}

	switchingCostIndustries = []string{"Software", "Banks", "Insurance", "Utilities"}
	networkIndustries       = []string{"Internet", "Payment", "Social Media", "Marketplace"}
)

func sectorIn(sector string, sectors []string) bool {
	for _, candidate := range sectors {
		if sector == candidate {
			return true
		}
	}

	return false
}

func industryMatches(industry string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(industry, keyword) {
			return true
		}
	}

	return false
}

// Moat scores structural competitive-advantage proxies, awarding up to
// 7 points across seven criteria. Like Financial it is pure and never
// fails; missing fields simply leave criteria unawarded.
func Moat(snapshot *data.FundamentalsSnapshot) (score float64, breakdown []data.ScoreBreakdown) {
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

	marketCap := data.Value(snapshot.MarketCap)
	profitMargin := data.Value(snapshot.ProfitMargin)

	// 1. Brand recognition: large consumer-facing companies
	if marketCap > 50e9 {
		if sectorIn(snapshot.Sector, consumerSectors) {
			add(data.ScoreBreakdown{
				Criterion: "Brand",
				Points:    1,
				Rating:    data.Pass,
				Detail:    "Large consumer brand",
			})
		} else {
			add(data.ScoreBreakdown{
				Criterion: "Brand",
				Points:    0.5,
				Rating:    data.Warn,
				Detail:    "Large company",
			})
		}
	}

	// 2. Patents and licenses proxy
	if sectorIn(snapshot.Sector, ipSectors) {
		add(data.ScoreBreakdown{
			Criterion: "Patents",
			Points:    1,
			Rating:    data.Pass,
			Detail:    fmt.Sprintf("%s sector", snapshot.Sector),
		})
	}

	// 3. Cost advantage: high margin with scale
	if profitMargin > 0.15 && marketCap > 10e9 {
		add(data.ScoreBreakdown{
			Criterion: "Cost Advantage",
			Points:    1,
			Rating:    data.Pass,
			Detail:    fmt.Sprintf("%.1f%% margin + scale", profitMargin*100),
		})
	}

	// 4. High switching costs
	if industryMatches(snapshot.Industry, switchingCostIndustries) {
		add(data.ScoreBreakdown{
			Criterion: "Switching Cost",
			Points:    1,
			Rating:    data.Pass,
			Detail:    snapshot.Industry,
		})
	}

	// 5. Network effects
	if industryMatches(snapshot.Industry, networkIndustries) {
		add(data.ScoreBreakdown{
			Criterion: "Network Effect",
			Points:    1,
			Rating:    data.Pass,
			Detail:    snapshot.Industry,
		})
	}

	// 6. Niche market: mid-cap with potential dominance
	if marketCap > 1e9 && marketCap < 10e9 {
		add(data.ScoreBreakdown{
			Criterion: "Niche",
			Points:    0.5,
			Rating:    data.Warn,
			Detail:    "Mid-cap potential niche",
		})
	}

	// 7. Longevity: a dividend history marks an established company
	switch {
	case data.Value(snapshot.FiveYearAvgYield) > 0:
		add(data.ScoreBreakdown{
			Criterion: "Longevity",
			Points:    1,
			Rating:    data.Pass,
			Detail:    "Established (dividend history)",
		})
	case marketCap > 100e9:
		add(data.ScoreBreakdown{
			Criterion: "Longevity",
			Points:    0.5,
			Rating:    data.Warn,
			Detail:    "Large cap (likely established)",
		})
	}

	return score, breakdown
}
