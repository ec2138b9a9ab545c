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

package tournament

import (
	"fmt"
	"io"
	"math"
	"strings"

	"laptudirm.com/x/pairings/pkg/round"
	"laptudirm.com/x/pairings/pkg/stats"
)

const nameWidth = 18

// Report writes the standings table of the tournament.
func (tour *Tournament) Report(w io.Writer) {
	rows := tour.Standings()

	border := strings.Repeat("═", 66)
	fmt.Fprintln(w, "╔"+border+"╗")
	fmt.Fprintf(w, "║ %3s %-*s %4s %3s %3s %3s %5s %5s  %5s %5s ║\n",
		"", nameWidth, "Name", "Pts", "W", "L", "D", "SOS", "ESOS", "Elo", "Error")
	fmt.Fprintln(w, "╠"+border+"╣")
	for _, row := range rows {
		lower, elo, upper := stats.Performance(row.PlayerStats)
		fmt.Fprintf(w, "║ %2d. %-*s %4d %3d %3d %3d %5.2f %5.2f  %+5.0f %5.0f ║\n",
			row.Rank, nameWidth, truncate(row.Player.DisplayName(), nameWidth),
			row.Score, row.Wins, row.Losses, row.Draws,
			row.StrengthOfSchedule, row.ExtendedStrengthOfSchedule,
			elo, math.Abs(math.Max(upper-elo, elo-lower)),
		)
	}
	fmt.Fprintln(w, "╚"+border+"╝")
}

// ReportRound writes the pairings of the given round, one table per line.
func (tour *Tournament) ReportRound(w io.Writer, r round.Round) {
	fmt.Fprintf(w, "Round #%d\n", r.Index)
	for i, pairing := range r.Pairings {
		a := tour.PlayerName(pairing.PlayerA)
		if pairing.IsBye() {
			fmt.Fprintf(w, "%3d. %s (bye)\n", i+1, a)
			continue
		}

		b := tour.PlayerName(pairing.PlayerB)
		if pairing.Reported() {
			fmt.Fprintf(w, "%3d. %s vs %s: %s\n", i+1, a, b, *pairing.Result)
		} else {
			fmt.Fprintf(w, "%3d. %s vs %s\n", i+1, a, b)
		}
	}
}

func truncate(name string, width int) string {
	runes := []rune(name)
	if len(runes) <= width {
		return name
	}

	return string(runes[:width-1]) + "…"
}
