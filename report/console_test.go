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
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/pvscreen/report"
)

var _ = Describe("Console report", func() {
	It("renders the run summary and ranked table", func() {
		doc := report.Markdown(fixtureRun(), 20, 20)

		Expect(doc).To(HavePrefix("# Stock Screening Results"))
		Expect(doc).To(ContainSubstring("## Run Summary"))
		Expect(doc).To(ContainSubstring("Stocks analyzed: 3"))
		Expect(doc).To(ContainSubstring("Fetch errors: 1"))
		Expect(doc).To(ContainSubstring("Passing candidates: 2 (66.7%)"))
	})

	It("ranks stocks by score and formats prices", func() {
		doc := report.Markdown(fixtureRun(), 20, 20)

		Expect(doc).To(ContainSubstring("| 1 | AAA | Triple A Corp | 10.0 | $112.50 |"))
		Expect(doc).To(ContainSubstring("| 2 | BBB | Bravo Brands | 8.0 | $14.25 |"))
		Expect(doc).To(ContainSubstring("| 3 | CCC | Charlie Chemicals | 4.0 | $42.10 |"))
	})

	It("caps the ranked table at the requested row count", func() {
		doc := report.Markdown(fixtureRun(), 1, 20)

		Expect(doc).To(ContainSubstring("| 1 | AAA |"))
		Expect(doc).NotTo(ContainSubstring("| 2 | BBB |"))
	})

	It("lists budget candidates below the price cap", func() {
		doc := report.Markdown(fixtureRun(), 20, 20)

		Expect(doc).To(ContainSubstring("## Budget Friendly (passing, price under $20)"))
		Expect(doc).To(ContainSubstring("| BBB | Bravo Brands | $14.25 | 8.0 | Consumer Defensive |"))
		Expect(doc).NotTo(ContainSubstring("| CCC |"))
	})

	It("notes when no budget candidates exist", func() {
		doc := report.Markdown(fixtureRun(), 20, 5)

		Expect(doc).To(ContainSubstring("No stocks found matching criteria"))
	})

	It("reports a price-less stock as N/A", func() {
		run := fixtureRun()
		run.Results[0].Price = 0

		doc := report.Markdown(run, 20, 20)

		Expect(doc).To(ContainSubstring("| 1 | AAA | Triple A Corp | 10.0 | N/A |"))
	})

	It("truncates long company names in the ranked table", func() {
		run := fixtureRun()
		run.Results[0].Name = strings.Repeat("x", 60)

		doc := report.Markdown(run, 20, 20)

		Expect(doc).To(ContainSubstring(strings.Repeat("x", 38) + " | 10.0"))
		Expect(doc).NotTo(ContainSubstring(strings.Repeat("x", 39)))
	})
})
