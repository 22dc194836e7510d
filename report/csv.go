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
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/gosimple/slug"
	"github.com/penny-vault/pvscreen/data"
	"github.com/penny-vault/pvscreen/screener"
	"github.com/rs/zerolog/log"
)

const timestampLayout = "20060102_150405"

// CSVSink persists screening results as delimited files. Every file in
// a run shares one timestamp so related views group together on disk.
type CSVSink struct {
	outputDir string
	timestamp string
}

// NewCSVSink creates a sink writing into outputDir; the directory is
// created on first save if missing.
func NewCSVSink(outputDir string) *CSVSink {
	return &CSVSink{
		outputDir: outputDir,
		timestamp: time.Now().Format(timestampLayout),
	}
}

// Save writes the full ranked result set plus the derived views: the
// passing subset, the budget subset (passing with price under
// budgetMaxPrice) and one file per distinct sector. It returns the
// paths of all files written.
func (sink *CSVSink) Save(run *screener.Run, budgetMaxPrice float64) ([]string, error) {
	if err := os.MkdirAll(sink.outputDir, 0755); err != nil {
		return nil, err
	}

	written := make([]string, 0, 8)

	mainFN, err := sink.writeView(fmt.Sprintf("stock_scores_%s.csv", sink.timestamp), run.Valid())
	if err != nil {
		return written, err
	}

	written = append(written, mainFN)

	topFN, err := sink.writeView(fmt.Sprintf("stock_scores_top_scorers_%s.csv", sink.timestamp), run.Passing())
	if err != nil {
		return written, err
	}

	written = append(written, topFN)

	if budget := run.Budget(budgetMaxPrice); len(budget) > 0 {
		budgetFN, err := sink.writeView(fmt.Sprintf("stock_scores_budget_friendly_%s.csv", sink.timestamp), budget)
		if err != nil {
			return written, err
		}

		written = append(written, budgetFN)
	}

	for sector, results := range run.BySector() {
		sectorFN, err := sink.writeView(
			fmt.Sprintf("stock_scores_sector_%s_%s.csv", slug.Make(sector), sink.timestamp), results)
		if err != nil {
			return written, err
		}

		written = append(written, sectorFN)
	}

	return written, nil
}

func (sink *CSVSink) writeView(filename string, results []*data.StockResult) (string, error) {
	rows := make([]*data.SummaryRow, 0, len(results))
	for _, result := range results {
		rows = append(rows, result.Summary())
	}

	outputFN := filepath.Join(sink.outputDir, filename)

	fh, err := os.Create(outputFN)
	if err != nil {
		return "", err
	}

	defer func() {
		if err := fh.Close(); err != nil {
			log.Error().Err(err).Str("FileName", outputFN).Msg("error closing csv file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, fh); err != nil {
		return "", err
	}

	log.Debug().Str("FileName", outputFN).Int("NumRows", len(rows)).Msg("wrote csv view")

	return outputFN, nil
}
