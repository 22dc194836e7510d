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
package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/penny-vault/pvscreen/data"
	"github.com/penny-vault/pvscreen/healthcheck"
	"github.com/penny-vault/pvscreen/provider"
	"github.com/penny-vault/pvscreen/report"
	"github.com/penny-vault/pvscreen/scorer"
	"github.com/penny-vault/pvscreen/screener"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

// screenCmd represents the screen command
var screenCmd = &cobra.Command{
	Use:   "screen [ticker...]",
	Short: "Score the ticker universe and export the results",
	Long: `The screen sub-command runs the screener over the configured ticker
universe (or over the tickers given as arguments), scores each stock, writes
the CSV result views to the output directory and prints a ranked report.

Fetching fundamentals is rate limited as a courtesy to the shared data
provider, so large universes take several minutes.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		var (
			universe []string
			err      error
		)

		if len(args) > 0 {
			universe, err = data.NormalizeUniverse(args)
		} else {
			universe, err = data.Universe()
		}

		if err != nil {
			log.Fatal().Err(err).Msg("could not resolve ticker universe")
		}

		providerName := viper.GetString("screener.provider")

		fundamentals, ok := provider.Map[providerName]
		if !ok {
			log.Fatal().Str("ProviderKey", providerName).Msg("unknown fundamentals provider")
		}

		composite := scorer.NewComposite(viper.GetFloat64("screener.min_passing_score"))

		var limiter *rate.Limiter
		if rateLimit := viper.GetInt("screener.rate_limit"); rateLimit > 0 {
			limiter = rate.NewLimiter(rate.Limit(float64(rateLimit)/float64(61)), 1)
		}

		pipeline := screener.New(fundamentals, composite, viper.GetInt("screener.workers"), limiter)

		if err := healthcheck.Start(); err != nil {
			log.Warn().Err(err).Msg("could not ping healthcheck start")
		}

		startTime := time.Now()

		run, err := pipeline.Screen(ctx, universe)
		if err != nil {
			if hcErr := healthcheck.Fail(err.Error()); hcErr != nil {
				log.Warn().Err(hcErr).Msg("could not ping healthcheck fail")
			}

			log.Fatal().Err(err).Msg("screening run failed")
		}

		budgetMaxPrice := viper.GetFloat64("screener.budget_max_price")

		sink := report.NewCSVSink(viper.GetString("screener.output_dir"))

		files, err := sink.Save(run, budgetMaxPrice)
		if err != nil {
			if hcErr := healthcheck.Fail(err.Error()); hcErr != nil {
				log.Warn().Err(hcErr).Msg("could not ping healthcheck fail")
			}

			log.Fatal().Err(err).Msg("could not save csv results")
		}

		markdown := report.Markdown(run, viper.GetInt("screener.top_n"), budgetMaxPrice)

		r, _ := glamour.NewTermRenderer(
			// detect background color and pick either the default dark or light theme
			glamour.WithAutoStyle(),
			// wrap output at specific width (default is 80)
			glamour.WithWordWrap(100),
		)

		out, err := r.Render(markdown)
		if err != nil {
			log.Fatal().Err(err).Msg("could not render screening report")
		}

		fmt.Print(out)

		// Print run summary box
		{
			var sb strings.Builder
			keyword := func(s string) string {
				return lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Render(s)
			}

			fmt.Fprintf(&sb,
				"%s\n\nAnalyzed: %s\nPassing: %s\nErrors: %s\nElapsed: %s\n\n",
				lipgloss.NewStyle().Bold(true).Render("SCREENING COMPLETE"),
				keyword(fmt.Sprintf("%d", run.Summary.NumScored)),
				keyword(fmt.Sprintf("%d", run.Summary.NumPassing)),
				keyword(fmt.Sprintf("%d", run.Summary.NumErrors)),
				keyword(time.Since(startTime).Round(time.Second).String()),
			)

			fmt.Fprintln(&sb, lipgloss.NewStyle().Bold(true).Render("Saved Files"))
			for _, fn := range files {
				fmt.Fprintf(&sb, "\n%s", keyword(fn))
			}

			fmt.Println(
				lipgloss.NewStyle().
					Width(72).
					BorderStyle(lipgloss.RoundedBorder()).
					BorderForeground(lipgloss.Color("63")).
					Padding(1, 2).
					Render(sb.String()),
			)
		}

		message := fmt.Sprintf("%d analyzed, %d passing, %d errors",
			run.Summary.NumScored, run.Summary.NumPassing, run.Summary.NumErrors)
		if err := healthcheck.Success(message); err != nil {
			log.Warn().Err(err).Msg("could not ping healthcheck success")
		}
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().String("provider", "yahoo", "fundamentals data provider")
	screenCmd.Flags().Int("workers", 1, "number of concurrent fetch workers")
	screenCmd.Flags().Int("rateLimit", 120, "maximum provider requests per minute")
	screenCmd.Flags().Float64("minScore", scorer.DefaultMinPassingScore, "total score required to pass")
	screenCmd.Flags().String("outputDir", "./output", "directory for csv exports")
	screenCmd.Flags().Int("top", 20, "number of rows in the top stocks listing")
	screenCmd.Flags().Float64("budgetMaxPrice", 20, "price ceiling for the budget friendly view")

	for viperKey, flagName := range map[string]string{
		"screener.provider":          "provider",
		"screener.workers":           "workers",
		"screener.rate_limit":        "rateLimit",
		"screener.min_passing_score": "minScore",
		"screener.output_dir":        "outputDir",
		"screener.top_n":             "top",
		"screener.budget_max_price":  "budgetMaxPrice",
	} {
		if err := viper.BindPFlag(viperKey, screenCmd.Flags().Lookup(flagName)); err != nil {
			log.Panic().Err(err).Str("Flag", flagName).Msg("BindPFlag failed")
		}
	}
}
