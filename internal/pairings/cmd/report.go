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
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/pairings/pkg/round"
)

func Report() *cobra.Command {
	return &cobra.Command{
		Use:   "report tournament table=result...",
		Short: "Record the results of the open round",
		Args:  cobra.MinimumNArgs(1),
		Long: heredoc.Doc(`report records the results of every table of the open
			round of the given tournament and closes it.

			Each result is given as table=result, where table is the
			table number printed by pair and result is the outcome for
			the first player of that table: 1-0, 0-1, 1/2-1/2, or win,
			loss and draw. Byes are recorded automatically.

			Results are only recorded if every table is given a result,
			so a round is never left half reported.`),

		ValidArgsFunction: completeTournaments,

		RunE: func(cmd *cobra.Command, args []string) error {
			tournaments, tour, err := open(args[0])
			if err != nil {
				return err
			}

			current, ok := tour.OpenRound()
			if !ok {
				return fmt.Errorf("%s: no round waiting for results, pair one first", args[0])
			}

			reports, err := parseResults(current, args[1:])
			if err != nil {
				return err
			}

			if err := tour.RecordResults(reports); err != nil {
				return err
			}

			if err := tournaments.Save(tour.Snapshot()); err != nil {
				return err
			}

			logrus.Infof("Closed round #%d of %s", current.Index, args[0])
			tour.Report(os.Stdout)
			return nil
		},
	}
}

// parseResults converts table=result arguments into the reports closing
// the given round, adding the reports of any byes.
func parseResults(open round.Round, args []string) ([]round.Report, error) {
	var reports []round.Report

	for _, arg := range args {
		table, result, found := strings.Cut(arg, "=")
		if !found {
			return nil, fmt.Errorf("invalid result %q: expected table=result", arg)
		}

		n, err := strconv.Atoi(table)
		if err != nil || n < 1 || n > len(open.Pairings) {
			return nil, fmt.Errorf("invalid table %q: round #%d has tables 1 to %d", table, open.Index, len(open.Pairings))
		}

		pairing := open.Pairings[n-1]
		if pairing.IsBye() {
			return nil, fmt.Errorf("table %d is a bye and needs no result", n)
		}

		outcome, err := round.ParseOutcome(result)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", n, err)
		}

		reports = append(reports, round.Reports(pairing, outcome)...)
	}

	for _, pairing := range open.Pairings {
		if pairing.IsBye() {
			reports = append(reports, round.Reports(pairing, round.Bye)...)
		}
	}

	return reports, nil
}
