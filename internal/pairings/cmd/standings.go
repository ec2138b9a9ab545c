// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
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
	"os"

	"github.com/spf13/cobra"
)

func Standings() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standings tournament",
		Short: "Show the standings of a tournament",
		Args:  cobra.ExactArgs(1),

		ValidArgsFunction: completeTournaments,

		RunE: func(cmd *cobra.Command, args []string) error {
			_, tour, err := open(args[0])
			if err != nil {
				return err
			}

			tour.Report(os.Stdout)

			if history, _ := cmd.Flags().GetBool("rounds"); history {
				for _, r := range tour.Rounds() {
					fmt.Println()
					tour.ReportRound(os.Stdout, r)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolP("rounds", "r", false, "Also show the pairings of every round")

	return cmd
}
