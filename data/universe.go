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
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

var ErrEmptyUniverse = errors.New("ticker universe is empty")

// defaultUniverse is the hand-maintained list of major US-listed
// equities screened when no universe is configured. It is a static set,
// not a discovery pipeline.
var defaultUniverse = []string{
	// mega-cap tech
	"AAPL", "MSFT", "GOOGL", "AMZN", "META", "NVDA", "TSLA",

	// blue chips
	"JNJ", "JPM", "V", "WMT", "PG", "UNH", "HD", "BAC", "XOM", "CVX",
	"ABBV", "MA", "KO", "PEP", "COST", "MRK", "TMO", "AVGO", "ABT", "LLY",
	"ORCL", "ACN", "NKE", "CSCO", "DHR", "VZ", "ADBE", "CRM", "MCD", "WFC",

	// dividend aristocrats
	"MMM", "AFL", "APD", "ADM", "AOS", "ADP", "ALB", "ARE",
	"CHRW", "CAH", "CAT", "CB", "CINF", "CTAS", "CLX", "CL", "ED", "ECL",
	"EMR", "ESS", "EXR", "FRT", "GD", "GPC", "HRL", "ITW", "IBM",

	// semiconductors and software
	"AMD", "INTC", "QCOM", "TXN", "AMAT", "LRCX", "KLAC", "SNPS", "CDNS",
	"NOW", "PANW", "CRWD", "ZS", "DDOG", "NET", "SNOW",

	// financials
	"GS", "MS", "C", "BLK", "SCHW", "AXP", "USB", "PNC", "TFC", "COF",

	// healthcare
	"CVS", "CI", "HUM", "ANTM", "PFE", "MRNA", "BMY", "GILD", "AMGN",

	// consumer
	"DIS", "NFLX", "SBUX", "LOW", "TGT", "TJX", "ROST", "DG", "DLTR",

	// industrials
	"BA", "HON", "UPS", "RTX", "LMT", "GE", "DE",

	// energy
	"COP", "SLB", "EOG", "MPC", "PSX", "VLO",

	// telecom and utilities
	"T", "TMUS", "NEE", "DUK", "SO", "D", "AEP",

	// small caps
	"F", "SOFI", "PATH", "PLTR", "NIO", "GME",
}

// Universe resolves the ordered, de-duplicated set of tickers to
// screen. Resolution order: the universe.file config value (one ticker
// per line, '#' comments allowed), then the universe.tickers config
// list, then the built-in default list.
func Universe() ([]string, error) {
	if universeFN := viper.GetString("universe.file"); universeFN != "" {
		raw, err := os.ReadFile(universeFN)
		if err != nil {
			return nil, err
		}

		return NormalizeUniverse(strings.Split(string(raw), "\n"))
	}

	if tickers := viper.GetStringSlice("universe.tickers"); len(tickers) > 0 {
		return NormalizeUniverse(tickers)
	}

	return NormalizeUniverse(defaultUniverse)
}

// NormalizeUniverse upper-cases, de-duplicates and strips comments while
// preserving encounter order. An empty result is an error; a run over
// zero tickers is deliberately disallowed.
func NormalizeUniverse(tickers []string) ([]string, error) {
	seen := make(map[string]bool, len(tickers))
	universe := make([]string, 0, len(tickers))

	for _, ticker := range tickers {
		ticker = strings.TrimSpace(ticker)
		if ticker == "" || strings.HasPrefix(ticker, "#") {
			continue
		}

		ticker = strings.ToUpper(ticker)
		if seen[ticker] {
			continue
		}

		seen[ticker] = true
		universe = append(universe, ticker)
	}

	if len(universe) == 0 {
		return nil, ErrEmptyUniverse
	}

	return universe, nil
}
