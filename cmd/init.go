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
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type screenerConfig struct {
	Provider        string  `toml:"provider"`
	OutputDir       string  `toml:"output_dir"`
	RateLimit       int     `toml:"rate_limit"`
	Workers         int     `toml:"workers"`
	MinPassingScore float64 `toml:"min_passing_score"`
}

type universeConfig struct {
	File string `toml:"file,omitempty"`
}

type healthchecksConfig struct {
	UUID string `toml:"uuid,omitempty"`
}

type configFile struct {
	Screener     screenerConfig     `toml:"screener"`
	Universe     universeConfig     `toml:"universe"`
	Healthchecks healthchecksConfig `toml:"healthchecks"`
}

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Gather screener configuration and write the config file",
	Run: func(cmd *cobra.Command, args []string) {
		config := configFile{
			Screener: screenerConfig{
				Provider:        "yahoo",
				OutputDir:       "./output",
				RateLimit:       120,
				Workers:         1,
				MinPassingScore: 7,
			},
		}

		rateLimit := strconv.Itoa(config.Screener.RateLimit)
		minScore := strconv.FormatFloat(config.Screener.MinPassingScore, 'f', -1, 64)

		validateInt := func(s string) error {
			_, err := strconv.Atoi(s)
			return err
		}

		form := huh.NewForm(
			// Gather details about the data provider
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Which fundamentals provider should be used?").
					Options(huh.NewOption("Yahoo Finance", "yahoo")).
					Value(&config.Screener.Provider),

				huh.NewInput().
					Title("What is the maximum number of provider requests per minute?").
					Value(&rateLimit).
					Validate(validateInt),
			),

			// Gather details about the screening run
			huh.NewGroup(
				huh.NewInput().
					Title("Where should CSV results be written?").
					Value(&config.Screener.OutputDir),

				huh.NewInput().
					Title("What total score should a stock need to pass?").
					Value(&minScore).
					Validate(func(s string) error {
						_, err := strconv.ParseFloat(s, 64)
						return err
					}),

				huh.NewInput().
					Title("Path to a ticker universe file (leave empty for the built-in list):").
					Value(&config.Universe.File),

				huh.NewInput().
					Title("healthchecks.io check UUID (leave empty to disable monitoring):").
					Value(&config.Healthchecks.UUID),
			),
		)

		err := form.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("error gathering screener settings")
		}

		config.Screener.RateLimit, _ = strconv.Atoi(rateLimit)
		config.Screener.MinPassingScore, _ = strconv.ParseFloat(minScore, 64)

		// save settings to config file
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal().Err(err).Msg("could not determine user home directory")
		}

		configFN := filepath.Join(home, ".pvscreen.toml")
		log.Info().Str("ConfigFile", configFN).Msg("Saving screener settings to config file")

		configData, err := toml.Marshal(config)
		if err != nil {
			log.Fatal().Err(err).Msg("could not marshal configuration data")
		}

		err = os.WriteFile(configFN, configData, 0644)
		if err != nil {
			log.Fatal().Err(err).Str("FileName", configFN).Msg("could not save configuration to file")
		}

		log.Info().Msg("Your screener has been initialized")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
