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
package screener

import (
	"github.com/penny-vault/pvscreen/data"
)

// Valid returns the successfully scored results ranked by total score
// descending; error-variant results are excluded.
func (run *Run) Valid() []*data.StockResult {
	valid := make([]*data.StockResult, 0, len(run.Results))

	for _, result := range run.Results {
		if result.Err == nil {
			valid = append(valid, result)
		}
	}

	data.SortByScore(valid)

	return valid
}

// Passing returns the ranked subset of results meeting the pass
// threshold.
func (run *Run) Passing() []*data.StockResult {
	passing := make([]*data.StockResult, 0, len(run.Results))

	for _, result := range run.Valid() {
		if result.Passing {
			passing = append(passing, result)
		}
	}

	return passing
}

// Budget returns the ranked passing results with a share price in
// (0, maxPrice); candidates affordable for small accounts.
func (run *Run) Budget(maxPrice float64) []*data.StockResult {
	budget := make([]*data.StockResult, 0, len(run.Results))

	for _, result := range run.Passing() {
		if result.Price > 0 && result.Price < maxPrice {
			budget = append(budget, result)
		}
	}

	return budget
}

// BySector groups the ranked valid results by sector; results with no
// reported sector are omitted.
func (run *Run) BySector() map[string][]*data.StockResult {
	sectors := make(map[string][]*data.StockResult)

	for _, result := range run.Valid() {
		if result.Sector == "" {
			continue
		}

		sectors[result.Sector] = append(sectors[result.Sector], result)
	}

	return sectors
}
