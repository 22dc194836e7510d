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
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/penny-vault/pvscreen/data"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// universeCmd represents the universe command
var universeCmd = &cobra.Command{
	Use:   "universe",
	Short: "Print the effective ticker universe",
	Long: `The universe sub-command resolves and prints the ordered set of tickers
the screen sub-command would process: the universe.file config value if set,
then the universe.tickers config list, then the built-in default list.`,
	Run: func(cmd *cobra.Command, args []string) {
		universe, err := data.Universe()
		if err != nil {
			log.Fatal().Err(err).Msg("could not resolve ticker universe")
		}

		builder := strings.Builder{}
		builder.WriteString(fmt.Sprintf("# Ticker Universe (%d tickers)\n\n", len(universe)))

		for _, ticker := range universe {
			builder.WriteString(fmt.Sprintf("  * %s\n", ticker))
		}

		r, _ := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)

		out, err := r.Render(builder.String())
		if err != nil {
			log.Fatal().Err(err).Msg("could not render universe document")
		}

		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(universeCmd)
}
