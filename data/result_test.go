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
package data_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/pvscreen/data"
)

var _ = Describe("Stock results", func() {
	It("sorts by total score descending", func() {
		results := []*data.StockResult{
			{Ticker: "LOW", TotalScore: 2},
			{Ticker: "HIGH", TotalScore: 11.5},
			{Ticker: "MID", TotalScore: 7},
		}

		data.SortByScore(results)

		Expect(results[0].Ticker).To(Equal("HIGH"))
		Expect(results[1].Ticker).To(Equal("MID"))
		Expect(results[2].Ticker).To(Equal("LOW"))
	})

	It("sorts stably for equal scores", func() {
		results := []*data.StockResult{
			{Ticker: "FIRST", TotalScore: 7},
			{Ticker: "SECOND", TotalScore: 7},
		}

		data.SortByScore(results)

		Expect(results[0].Ticker).To(Equal("FIRST"))
		Expect(results[1].Ticker).To(Equal("SECOND"))
	})

	It("builds a forced-fail error variant", func() {
		cause := errors.New("rate limited")

		result := data.ErrorResult("XYZ", cause)

		Expect(result.Ticker).To(Equal("XYZ"))
		Expect(result.Err).To(MatchError(cause))
		Expect(result.Passing).To(BeFalse())
		Expect(result.TotalScore).To(BeZero())
	})

	It("projects the summary column set", func() {
		result := &data.StockResult{
			Ticker:         "ABC",
			Name:           "ABC Industries",
			Sector:         "Industrials",
			Industry:       "Farm & Heavy Construction Machinery",
			Price:          145.33,
			MarketCap:      75e9,
			FinancialScore: 6.5,
			MoatScore:      2,
			RiskDeduction:  -1,
			TotalScore:     7.5,
			Passing:        true,
			DividendYield:  0.021,
		}

		row := result.Summary()

		Expect(row.Ticker).To(Equal("ABC"))
		Expect(row.CompanyName).To(Equal("ABC Industries"))
		Expect(row.CurrentPrice).To(Equal(145.33))
		Expect(row.FinancialScore).To(Equal(6.5))
		Expect(row.RiskDeduction).To(Equal(-1.0))
		Expect(row.TotalScore).To(Equal(7.5))
		Expect(row.Passing).To(BeTrue())
	})
})
