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
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alphadose/haxmap"
	"github.com/google/uuid"
	"github.com/penny-vault/pvscreen/data"
	"github.com/penny-vault/pvscreen/provider"
	"github.com/penny-vault/pvscreen/scorer"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// maxTotalScore is the highest attainable composite score (financial 9
// plus moat 7); used only for progress display.
const maxTotalScore = scorer.FinancialMaxScore + scorer.MoatMaxScore

// Pipeline screens a ticker universe: it fetches one fundamentals
// snapshot per ticker from the provider and scores it with the
// composite scorer. Fetches may run on a bounded worker pool; the
// shared rate limiter preserves the aggregate courtesy request rate
// toward the provider regardless of worker count.
type Pipeline struct {
	fundamentals provider.Fundamentals
	composite    *scorer.Composite
	limiter      *rate.Limiter
	workers      int
}

// RunSummary describes a completed screening run.
type RunSummary struct {
	RunID     uuid.UUID
	StartTime time.Time
	EndTime   time.Time

	NumTickers int
	NumScored  int
	NumPassing int
	NumErrors  int
}

// Run holds the per-ticker results of a screening run, one result per
// requested ticker in encounter order.
type Run struct {
	Summary RunSummary
	Results []*data.StockResult
}

// New creates a screening pipeline. workers below 1 selects sequential
// operation; a nil limiter installs the default courtesy rate of one
// request per 500ms.
func New(fundamentals provider.Fundamentals, composite *scorer.Composite, workers int, limiter *rate.Limiter) *Pipeline {
	if workers < 1 {
		workers = 1
	}

	if limiter == nil {
		limiter = rate.NewLimiter(rate.Every(500*time.Millisecond), 1)
	}

	return &Pipeline{
		fundamentals: fundamentals,
		composite:    composite,
		limiter:      limiter,
		workers:      workers,
	}
}

// Screen processes every ticker in the universe. A failed fetch yields
// the error-variant result for that ticker only; remaining tickers are
// always processed. The only run-level error is an empty universe.
func (pipeline *Pipeline) Screen(ctx context.Context, universe []string) (*Run, error) {
	if len(universe) == 0 {
		return nil, data.ErrEmptyUniverse
	}

	summary := RunSummary{
		RunID:      uuid.New(),
		StartTime:  time.Now(),
		NumTickers: len(universe),
	}

	logger := log.With().Str("RunID", summary.RunID.String()).Logger()
	logger.Info().Int("NumTickers", len(universe)).Str("Provider", pipeline.fundamentals.Name()).
		Msg("screening ticker universe")

	resultMap := haxmap.New[string, *data.StockResult]()
	tickerChan := make(chan string)

	var (
		wg        sync.WaitGroup
		completed atomic.Int64
	)

	for i := 0; i < pipeline.workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for ticker := range tickerChan {
				resultMap.Set(ticker, pipeline.scoreTicker(ctx, ticker))

				n := completed.Add(1)
				if result, ok := resultMap.Get(ticker); ok {
					logProgress(&logger, result, int(n), len(universe))
				}
			}
		}()
	}

	for _, ticker := range universe {
		tickerChan <- ticker
	}

	close(tickerChan)
	wg.Wait()

	// re-assemble in universe order; completion order depends on the
	// worker pool and is never exposed
	results := make([]*data.StockResult, 0, len(universe))

	for _, ticker := range universe {
		result, ok := resultMap.Get(ticker)
		if !ok {
			// cannot happen: every ticker is scored exactly once
			result = data.ErrorResult(ticker, context.Canceled)
		}

		results = append(results, result)

		switch {
		case result.Err != nil:
			summary.NumErrors++
		case result.Passing:
			summary.NumScored++
			summary.NumPassing++
		default:
			summary.NumScored++
		}
	}

	summary.EndTime = time.Now()

	logger.Info().Int("NumScored", summary.NumScored).Int("NumPassing", summary.NumPassing).
		Int("NumErrors", summary.NumErrors).Dur("Elapsed", summary.EndTime.Sub(summary.StartTime)).
		Msg("screening run complete")

	return &Run{Summary: summary, Results: results}, nil
}

func (pipeline *Pipeline) scoreTicker(ctx context.Context, ticker string) *data.StockResult {
	// courtesy delay toward the shared data provider
	if err := pipeline.limiter.Wait(ctx); err != nil {
		return pipeline.composite.ScoreFetchError(ticker, err)
	}

	snapshot, err := pipeline.fundamentals.Fetch(ctx, ticker)
	if err != nil {
		return pipeline.composite.ScoreFetchError(ticker, err)
	}

	return pipeline.composite.Score(snapshot)
}

func logProgress(logger *zerolog.Logger, result *data.StockResult, completed int, total int) {
	event := logger.Info().Int("Completed", completed).Int("Total", total).Str("Ticker", result.Ticker)

	if result.Err != nil {
		event.Err(result.Err).Msg("fetch failed")
		return
	}

	status := "FAIL"
	if result.Passing {
		status = "PASS"
	}

	event.Str("Status", status).
		Str("Score", scoreFraction(result.TotalScore)).
		Msg("scored ticker")
}

func scoreFraction(total float64) string {
	return strconv.FormatFloat(total, 'f', -1, 64) + "/" +
		strconv.FormatFloat(maxTotalScore, 'f', -1, 64)
}
