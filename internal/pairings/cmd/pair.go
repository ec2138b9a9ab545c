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

	"laptudirm.com/x/pairings/internal/util"
	"laptudirm.com/x/pairings/pkg/round"
)

func Pair() *cobra.Command {
	return &cobra.Command{
		Use:   "pair tournament",
		Short: "Pair the next round of a tournament",
		Args:  cobra.ExactArgs(1),

		ValidArgsFunction: completeTournaments,

		RunE: func(cmd *cobra.Command, args []string) error {
			tournaments, tour, err := open(args[0])
			if err != nil {
				return err
			}

			players := tour.Roster()
			if total, err := tour.TotalRounds(len(players)); err == nil && tour.CurrentRound() > total {
				fmt.Printf("\x1b[33mAll %d Swiss rounds have been played.\x1b[0m\n", total)
			}

			util.StartSpinner()
			pairings, err := tour.NextRound(players)
			if err == nil {
				err = tournaments.Save(tour.Snapshot())
			}
			util.PauseSpinner()

			if err != nil {
				return err
			}

			tour.ReportRound(os.Stdout, round.New(pairings[0].Round, pairings))
			return nil
		},
	}
}
