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

	"github.com/penny-vault/pvscreen/data"
)

// RiskMaxDeduction is the largest total deduction Risk can apply.
const RiskMaxDeduction = -3.0

var (
	highTechIndustries = []string{
		"Semiconductor", "Software—Application", "Electronics",
		"Consumer Electronics", "Internet Content",
	}
	governmentIndustries = []string{"Aerospace & Defense", "Government"}
	chinaCountries       = []string{"China", "Hong Kong"}
)

// Risk deducts up to 3 points for structural risk flags. Each triggered
// rule subtracts exactly 1 point, independent of the others.
func Risk(snapshot *data.FundamentalsSnapshot) (deduction float64, breakdown []data.ScoreBreakdown) {
	defer func() {
		if r := recover(); r != nil {
			breakdown = append(breakdown, data.ScoreBreakdown{
				Criterion: "Error",
				Rating:    data.Fail,
				Detail:    fmt.Sprintf("%v", r),
			})
		}
	}()

	deduct := func(entry data.ScoreBreakdown) {
		deduction += entry.Points
		breakdown = append(breakdown, entry)
	}

	// fast-changing technology industries
	if industryMatches(snapshot.Industry, highTechIndustries) {
		deduct(data.ScoreBreakdown{
			Criterion: "Tech Risk",
			Points:    -1,
			Rating:    data.Fail,
			Detail:    fmt.Sprintf("-1 (%s)", snapshot.Industry),
		})
	}

	// revenue dependent on government contracts
	if industryMatches(snapshot.Industry, governmentIndustries) {
		deduct(data.ScoreBreakdown{
			Criterion: "Gov Risk",
			Points:    -1,
			Rating:    data.Fail,
			Detail:    fmt.Sprintf("-1 (%s)", snapshot.Industry),
		})
	}

	// Chinese companies listed in the US
	if sectorIn(snapshot.Country, chinaCountries) {
		deduct(data.ScoreBreakdown{
			Criterion: "China Risk",
			Points:    -1,
			Rating:    data.Fail,
			Detail:    "-1 (Chinese company)",
		})
	}

	return deduction, breakdown
}
