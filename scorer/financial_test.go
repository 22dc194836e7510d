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
package scorer_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/pvscreen/data"
	"github.com/penny-vault/pvscreen/scorer"
)

func breakdownFor(breakdown []data.ScoreBreakdown, criterion string) *data.ScoreBreakdown {
	for idx := range breakdown {
		if breakdown[idx].Criterion == criterion {
			return &breakdown[idx]
		}
	}

	return nil
}

var _ = Describe("Financial scorer", func() {
	var snapshot *data.FundamentalsSnapshot

	BeforeEach(func() {
		snapshot = &data.FundamentalsSnapshot{
			Ticker: "TEST",
		}
	})

	When("scoring a healthy dividend payer with no debt", func() {
		BeforeEach(func() {
			snapshot.EarningsGrowth = data.Float(0.08)
			snapshot.DividendRate = data.Float(2.0)
			snapshot.FiveYearAvgYield = data.Float(2.5)
			snapshot.FreeCashFlow = data.Float(5e9)
			snapshot.ProfitMargin = data.Float(0.12)
			snapshot.ReturnOnEquity = data.Float(0.18)
			snapshot.EBIT = data.Float(0)
			snapshot.InterestExpense = data.Float(0)
			snapshot.DebtToEquity = data.Float(20)
		})

		It("awards 7 points", func() {
			score, _ := scorer.Financial(snapshot)
			Expect(score).To(Equal(7.0))
		})

		It("passes growth, dividend, fcf, margin, roe, coverage and d/e", func() {
			_, breakdown := scorer.Financial(snapshot)

			for _, criterion := range []string{
				"EPS Growth", "Dividend", "FCF", "Net Margin", "ROE",
				"Interest Coverage", "D/E Ratio",
			} {
				entry := breakdownFor(breakdown, criterion)
				Expect(entry).NotTo(BeNil(), criterion)
				Expect(entry.Rating).To(Equal(data.Pass), criterion)
				Expect(entry.Points).To(Equal(1.0), criterion)
			}
		})

		It("awards nothing for book value and share count without data", func() {
			_, breakdown := scorer.Financial(snapshot)
			Expect(breakdownFor(breakdown, "Book Value")).To(BeNil())
			Expect(breakdownFor(breakdown, "Shares")).To(BeNil())
		})
	})

	When("interest expense is absent", func() {
		It("treats the company as debt free and awards the full point", func() {
			score, breakdown := scorer.Financial(snapshot)

			entry := breakdownFor(breakdown, "Interest Coverage")
			Expect(entry).NotTo(BeNil())
			Expect(entry.Points).To(Equal(1.0))
			Expect(entry.Detail).To(Equal("No debt"))

			// the empty snapshot earns only the no-debt point
			Expect(score).To(Equal(1.0))
		})
	})

	When("interest expense is non-zero", func() {
		BeforeEach(func() {
			snapshot.EBIT = data.Float(12e9)
			snapshot.InterestExpense = data.Float(1e9)
		})

		It("awards the full point above 10x coverage", func() {
			_, breakdown := scorer.Financial(snapshot)

			entry := breakdownFor(breakdown, "Interest Coverage")
			Expect(entry).NotTo(BeNil())
			Expect(entry.Points).To(Equal(1.0))
		})

		It("awards a half point between 5x and 10x coverage", func() {
			snapshot.EBIT = data.Float(7e9)

			_, breakdown := scorer.Financial(snapshot)

			entry := breakdownFor(breakdown, "Interest Coverage")
			Expect(entry).NotTo(BeNil())
			Expect(entry.Points).To(Equal(0.5))
		})

		It("awards nothing when EBIT is absent", func() {
			snapshot.EBIT = nil

			_, breakdown := scorer.Financial(snapshot)

			entry := breakdownFor(breakdown, "Interest Coverage")
			Expect(entry).NotTo(BeNil())
			Expect(entry.Points).To(BeZero())
		})

		It("uses the absolute coverage ratio when values are negative", func() {
			snapshot.InterestExpense = data.Float(-1e9)

			_, breakdown := scorer.Financial(snapshot)

			entry := breakdownFor(breakdown, "Interest Coverage")
			Expect(entry).NotTo(BeNil())
			Expect(entry.Points).To(Equal(1.0))
		})
	})

	When("the dividend has no five year history", func() {
		It("awards a half point", func() {
			snapshot.DividendRate = data.Float(1.5)

			_, breakdown := scorer.Financial(snapshot)

			entry := breakdownFor(breakdown, "Dividend")
			Expect(entry).NotTo(BeNil())
			Expect(entry.Points).To(Equal(0.5))
			Expect(entry.Rating).To(Equal(data.Warn))
		})
	})

	When("a buyback program is evident", func() {
		It("awards the share count half point", func() {
			snapshot.SharesOutstanding = data.Float(1e9)
			snapshot.BusinessSummary = "The company returns capital through dividends and a share buyback program."

			_, breakdown := scorer.Financial(snapshot)

			entry := breakdownFor(breakdown, "Shares")
			Expect(entry).NotTo(BeNil())
			Expect(entry.Points).To(Equal(0.5))
		})

		It("accepts short interest as evidence", func() {
			snapshot.SharesOutstanding = data.Float(1e9)
			snapshot.SharesShort = data.Float(1e6)

			_, breakdown := scorer.Financial(snapshot)
			Expect(breakdownFor(breakdown, "Shares")).NotTo(BeNil())
		})

		It("awards nothing when shares outstanding is unknown", func() {
			snapshot.SharesShort = data.Float(1e6)

			_, breakdown := scorer.Financial(snapshot)
			Expect(breakdownFor(breakdown, "Shares")).To(BeNil())
		})
	})

	When("the debt to equity ratio is absent", func() {
		It("emits no entry for the criterion", func() {
			_, breakdown := scorer.Financial(snapshot)
			Expect(breakdownFor(breakdown, "D/E Ratio")).To(BeNil())
		})
	})

	DescribeTable("net margin tiers",
		func(margin float64, expected float64) {
			snapshot.ProfitMargin = data.Float(margin)

			_, breakdown := scorer.Financial(snapshot)

			entry := breakdownFor(breakdown, "Net Margin")
			Expect(entry).NotTo(BeNil())
			Expect(entry.Points).To(Equal(expected))
		},
		Entry("above 10%", 0.15, 1.0),
		Entry("between 5% and 10%", 0.07, 0.5),
		Entry("below 5%", 0.02, 0.0),
		Entry("negative", -0.10, 0.0),
	)

	DescribeTable("return on equity tiers",
		func(roe float64, expected float64) {
			snapshot.ReturnOnEquity = data.Float(roe)

			_, breakdown := scorer.Financial(snapshot)

			entry := breakdownFor(breakdown, "ROE")
			Expect(entry).NotTo(BeNil())
			Expect(entry.Points).To(Equal(expected))
		},
		Entry("in the 15-40% sweet spot", 0.25, 1.0),
		Entry("between 10% and 15%", 0.12, 0.5),
		Entry("below 10%", 0.05, 0.0),
		Entry("above 40%", 0.80, 0.0),
	)

	It("never decreases when free cash flow turns positive", func() {
		snapshot.FreeCashFlow = data.Float(-1e9)
		before, _ := scorer.Financial(snapshot)

		snapshot.FreeCashFlow = data.Float(1e9)
		after, _ := scorer.Financial(snapshot)

		Expect(after).To(BeNumerically(">=", before))
	})

	It("is idempotent", func() {
		snapshot.EarningsGrowth = data.Float(0.10)
		snapshot.ProfitMargin = data.Float(0.08)
		snapshot.BookValue = data.Float(12.50)

		score1, breakdown1 := scorer.Financial(snapshot)
		score2, breakdown2 := scorer.Financial(snapshot)

		Expect(score1).To(Equal(score2))
		Expect(breakdown1).To(Equal(breakdown2))
	})

	It("stays within [0, 9] for every snapshot", func() {
		snapshots := []*data.FundamentalsSnapshot{
			{},
			{
				EarningsGrowth:    data.Float(0.50),
				DividendRate:      data.Float(4.0),
				FiveYearAvgYield:  data.Float(3.0),
				SharesOutstanding: data.Float(1e9),
				SharesShort:       data.Float(1e7),
				BookValue:         data.Float(50),
				FreeCashFlow:      data.Float(20e9),
				ProfitMargin:      data.Float(0.30),
				ReturnOnEquity:    data.Float(0.25),
				DebtToEquity:      data.Float(10),
			},
			{
				EarningsGrowth:  data.Float(-0.50),
				FreeCashFlow:    data.Float(-5e9),
				ProfitMargin:    data.Float(-0.20),
				ReturnOnEquity:  data.Float(-0.10),
				EBIT:            data.Float(1e9),
				InterestExpense: data.Float(2e9),
				DebtToEquity:    data.Float(250),
			},
		}

		for _, candidate := range snapshots {
			score, _ := scorer.Financial(candidate)
			Expect(score).To(BeNumerically(">=", 0))
			Expect(score).To(BeNumerically("<=", scorer.FinancialMaxScore))
		}
	})

	It("awards the maximum 9 points to a perfect snapshot", func() {
		perfect := &data.FundamentalsSnapshot{
			EarningsGrowth:    data.Float(0.20),
			DividendRate:      data.Float(2.0),
			FiveYearAvgYield:  data.Float(2.0),
			SharesOutstanding: data.Float(1e9),
			SharesShort:       data.Float(1e7),
			BookValue:         data.Float(25),
			FreeCashFlow:      data.Float(10e9),
			ProfitMargin:      data.Float(0.25),
			ReturnOnEquity:    data.Float(0.20),
			DebtToEquity:      data.Float(20),
		}

		score, _ := scorer.Financial(perfect)
		Expect(score).To(Equal(scorer.FinancialMaxScore))
	})
})
