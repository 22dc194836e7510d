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
package report_test

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/pvscreen/data"
	"github.com/penny-vault/pvscreen/report"
	"github.com/penny-vault/pvscreen/screener"
)

func fixtureRun() *screener.Run {
	return &screener.Run{
		Summary: screener.RunSummary{
			RunID:      uuid.New(),
			NumTickers: 4,
			NumScored:  3,
			NumPassing: 2,
			NumErrors:  1,
		},
		Results: []*data.StockResult{
			{
				Ticker:     "AAA",
				Name:       "Triple A Corp",
				Sector:     "Technology",
				Industry:   "Software—Application",
				Price:      112.50,
				TotalScore: 10,
				Passing:    true,
			},
			{
				Ticker:     "BBB",
				Name:       "Bravo Brands",
				Sector:     "Consumer Defensive",
				Industry:   "Beverages—Non-Alcoholic",
				Price:      14.25,
				TotalScore: 8,
				Passing:    true,
			},
			{
				Ticker:     "CCC",
				Name:       "Charlie Chemicals",
				Sector:     "Technology",
				Industry:   "Specialty Chemicals",
				Price:      42.10,
				TotalScore: 4,
			},
			data.ErrorResult("DDD", errors.New("not found")),
		},
	}
}

func readRows(path string) []*data.SummaryRow {
	fh, err := os.Open(path)
	Expect(err).NotTo(HaveOccurred())

	defer func() {
		Expect(fh.Close()).To(Succeed())
	}()

	rows := []*data.SummaryRow{}
	Expect(gocsv.UnmarshalFile(fh, &rows)).To(Succeed())

	return rows
}

var _ = Describe("CSV export", func() {
	var (
		outputDir string
		run       *screener.Run
	)

	BeforeEach(func() {
		var err error
		outputDir, err = os.MkdirTemp("", "pvscreen-csv")
		Expect(err).NotTo(HaveOccurred())

		run = fixtureRun()
	})

	AfterEach(func() {
		Expect(os.RemoveAll(outputDir)).To(Succeed())
	})

	It("writes the full, passing, budget and per-sector views", func() {
		sink := report.NewCSVSink(outputDir)

		written, err := sink.Save(run, 20)
		Expect(err).NotTo(HaveOccurred())

		// full + passing + budget + 2 sectors
		Expect(written).To(HaveLen(5))

		names := make([]string, 0, len(written))
		for _, fn := range written {
			names = append(names, filepath.Base(fn))
		}

		Expect(names[0]).To(MatchRegexp(`^stock_scores_\d{8}_\d{6}\.csv$`))
		Expect(names[1]).To(MatchRegexp(`^stock_scores_top_scorers_\d{8}_\d{6}\.csv$`))
		Expect(names[2]).To(MatchRegexp(`^stock_scores_budget_friendly_\d{8}_\d{6}\.csv$`))
		Expect(names).To(ContainElement(MatchRegexp(`^stock_scores_sector_technology_\d{8}_\d{6}\.csv$`)))
		Expect(names).To(ContainElement(MatchRegexp(`^stock_scores_sector_consumer-defensive_\d{8}_\d{6}\.csv$`)))
	})

	It("excludes the error variant and keeps rank order in the full view", func() {
		sink := report.NewCSVSink(outputDir)

		written, err := sink.Save(run, 20)
		Expect(err).NotTo(HaveOccurred())

		rows := readRows(written[0])
		Expect(rows).To(HaveLen(3))
		Expect(rows[0].Ticker).To(Equal("AAA"))
		Expect(rows[1].Ticker).To(Equal("BBB"))
		Expect(rows[2].Ticker).To(Equal("CCC"))
	})

	It("restricts the passing view to flagged candidates", func() {
		sink := report.NewCSVSink(outputDir)

		written, err := sink.Save(run, 20)
		Expect(err).NotTo(HaveOccurred())

		rows := readRows(written[1])
		Expect(rows).To(HaveLen(2))
		Expect(rows[0].Passing).To(BeTrue())
		Expect(rows[1].Passing).To(BeTrue())
	})

	It("restricts the budget view to passing stocks under the price cap", func() {
		sink := report.NewCSVSink(outputDir)

		written, err := sink.Save(run, 20)
		Expect(err).NotTo(HaveOccurred())

		rows := readRows(written[2])
		Expect(rows).To(HaveLen(1))
		Expect(rows[0].Ticker).To(Equal("BBB"))
	})

	It("skips the budget file when nothing qualifies", func() {
		sink := report.NewCSVSink(outputDir)

		written, err := sink.Save(run, 5)
		Expect(err).NotTo(HaveOccurred())

		for _, fn := range written {
			Expect(filepath.Base(fn)).NotTo(ContainSubstring("budget_friendly"))
		}
	})

	It("creates the output directory when missing", func() {
		nested := filepath.Join(outputDir, "a", "b")
		sink := report.NewCSVSink(nested)

		_, err := sink.Save(run, 20)
		Expect(err).NotTo(HaveOccurred())

		info, err := os.Stat(nested)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())
	})
})
