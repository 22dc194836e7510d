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
package report

import (
	"fmt"
	"strings"

	"github.com/penny-vault/pvscreen/data"
	"github.com/penny-vault/pvscreen/screener"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	defaultTopRows    = 20
	defaultBudgetRows = 15
)

// Markdown builds the human-readable run report: run statistics, the
// top-N ranked listing and the budget-constrained listing. The caller
// renders the document for the terminal.
func Markdown(run *screener.Run, topRows int, budgetMaxPrice float64) string {
	if topRows <= 0 {
		topRows = defaultTopRows
	}

	p := message.NewPrinter(language.English)
	builder := strings.Builder{}

	builder.WriteString("# Stock Screening Results\n\n")
	builder.WriteString("## Run Summary\n\n")

	valid := run.Valid()

	builder.WriteString(p.Sprintf("  * Run ID: %s\n", run.Summary.RunID.String()[:6]))
	builder.WriteString(p.Sprintf("  * Stocks analyzed: %d\n", run.Summary.NumScored))
	builder.WriteString(p.Sprintf("  * Fetch errors: %d\n", run.Summary.NumErrors))

	if len(valid) > 0 {
		pct := float64(run.Summary.NumPassing) / float64(len(valid)) * 100
		builder.WriteString(p.Sprintf("  * Passing candidates: %d (%.1f%%)\n", run.Summary.NumPassing, pct))
	}

	builder.WriteString("\n## Top Stocks\n\n")
	builder.WriteString("| Rank | Ticker | Company | Score | Price |\n")
	builder.WriteString("|------|--------|---------|-------|-------|\n")

	for i, result := range valid {
		if i >= topRows {
			break
		}

		builder.WriteString(fmt.Sprintf("| %d | %s | %s | %.1f | %s |\n",
			i+1, result.Ticker, truncate(result.Name, 38), result.TotalScore, formatPrice(result)))
	}

	builder.WriteString(fmt.Sprintf("\n## Budget Friendly (passing, price under $%.0f)\n\n", budgetMaxPrice))

	budget := run.Budget(budgetMaxPrice)
	if len(budget) == 0 {
		builder.WriteString("No stocks found matching criteria\n")
		return builder.String()
	}

	builder.WriteString("| Ticker | Company | Price | Score | Sector |\n")
	builder.WriteString("|--------|---------|-------|-------|--------|\n")

	for i, result := range budget {
		if i >= defaultBudgetRows {
			break
		}

		builder.WriteString(fmt.Sprintf("| %s | %s | %s | %.1f | %s |\n",
			result.Ticker, truncate(result.Name, 33), formatPrice(result),
			result.TotalScore, truncate(result.Sector, 18)))
	}

	return builder.String()
}

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen]
	}

	return s
}

func formatPrice(result *data.StockResult) string {
	if result.Price == 0 {
		return "N/A"
	}

	return fmt.Sprintf("$%.2f", result.Price)
}
