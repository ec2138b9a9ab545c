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

package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/pairings/pkg/round"
)

var points = Points{Win: 3, Draw: 1, Loss: 0, Bye: 3}

func closed(t *testing.T, index int, results map[round.Pairing]round.Outcome, pairings ...round.Pairing) round.Round {
	t.Helper()

	r := round.New(index, pairings)
	var reports []round.Report
	for _, pairing := range pairings {
		reports = append(reports, round.Reports(pairing, results[pairing])...)
	}

	require.NoError(t, r.Apply(reports))
	return r
}

func TestPointsValidate(t *testing.T) {
	assert.NoError(t, points.Validate())
	assert.NoError(t, Points{Win: 1, Loss: 0}.Validate())

	invalid := []Points{
		{Win: -1},
		{Win: 1, Loss: 1},
		{Win: 1, Draw: 2},
		{Win: 3, Draw: 0, Loss: 1},
		{Win: 3, Bye: -3},
	}
	for _, p := range invalid {
		assert.ErrorIs(t, p.Validate(), ErrInvalidPoints, "%+v", p)
	}
}

func TestZeroHistory(t *testing.T) {
	standings := NewStandings()
	standings.Track("a")
	standings.Recompute(nil, points)

	stats := standings.Get("a")
	assert.Equal(t, 0, stats.Score)
	assert.Equal(t, 0, stats.RoundsPlayed)
	assert.Equal(t, 0.0, stats.StrengthOfSchedule)
	assert.Equal(t, 0.0, stats.ExtendedStrengthOfSchedule)
	assert.Equal(t, 0.0, stats.AveragePoints())
}

func TestWinLoss(t *testing.T) {
	ab := round.NewPairing(1, "a", "b")

	standings := NewStandings()
	standings.Recompute([]round.Round{
		closed(t, 1, map[round.Pairing]round.Outcome{ab: round.Win}, ab),
	}, points)

	a, b := standings.Get("a"), standings.Get("b")
	assert.Equal(t, 3, a.Score)
	assert.Equal(t, 0, b.Score)
	assert.Equal(t, 1, a.RoundsPlayed)
	assert.Equal(t, 1, b.RoundsPlayed)
	assert.Equal(t, 1, a.Wins)
	assert.Equal(t, 1, b.Losses)

	// a's only opponent averages 0, b's only opponent averages 3.
	assert.Equal(t, 0.0, a.StrengthOfSchedule)
	assert.Equal(t, 3.0, b.StrengthOfSchedule)
	assert.Equal(t, 3.0, a.ExtendedStrengthOfSchedule)
	assert.Equal(t, 0.0, b.ExtendedStrengthOfSchedule)
}

func TestByeContributesNoOpponent(t *testing.T) {
	ab := round.NewPairing(1, "a", "b")
	c := round.NewBye(1, "c")

	standings := NewStandings()
	standings.Recompute([]round.Round{
		closed(t, 1, map[round.Pairing]round.Outcome{ab: round.Draw}, ab, c),
	}, points)

	stats := standings.Get("c")
	assert.Equal(t, 3, stats.Score)
	assert.Equal(t, 1, stats.RoundsPlayed)
	assert.True(t, stats.HadBye)
	assert.Equal(t, 1, stats.Byes)
	assert.Equal(t, 0.0, stats.StrengthOfSchedule)
	assert.Equal(t, 0.0, stats.ExtendedStrengthOfSchedule)

	assert.Equal(t, 1, standings.Get("a").Score)
	assert.Equal(t, 1, standings.Get("b").Score)
	assert.False(t, standings.Get("a").HadBye)
}

func TestStrengthOfScheduleOverRounds(t *testing.T) {
	ab := round.NewPairing(1, "a", "b")
	cd := round.NewPairing(1, "c", "d")
	ac := round.NewPairing(2, "a", "c")
	bd := round.NewPairing(2, "b", "d")

	rounds := []round.Round{
		closed(t, 1, map[round.Pairing]round.Outcome{ab: round.Win, cd: round.Win}, ab, cd),
		closed(t, 2, map[round.Pairing]round.Outcome{ac: round.Win, bd: round.Draw}, ac, bd),
	}

	standings := NewStandings()
	standings.Recompute(rounds, points)

	a, b, c, d := standings.Get("a"), standings.Get("b"), standings.Get("c"), standings.Get("d")
	assert.Equal(t, 6, a.Score)
	assert.Equal(t, 1, b.Score)
	assert.Equal(t, 3, c.Score)
	assert.Equal(t, 1, d.Score)

	// Averages as of the round in which the opponent was faced:
	// round 1: a=3 b=0 c=3 d=0; round 2: a=3 b=0.5 c=1.5 d=0.5
	assert.InDelta(t, (0.0+1.5)/2, a.StrengthOfSchedule, 1e-9)
	assert.InDelta(t, (3.0+0.5)/2, b.StrengthOfSchedule, 1e-9)
	assert.InDelta(t, (0.0+3.0)/2, c.StrengthOfSchedule, 1e-9)
	assert.InDelta(t, (3.0+0.5)/2, d.StrengthOfSchedule, 1e-9)

	assert.InDelta(t, (b.StrengthOfSchedule+c.StrengthOfSchedule)/2, a.ExtendedStrengthOfSchedule, 1e-9)
	assert.InDelta(t, (a.StrengthOfSchedule+d.StrengthOfSchedule)/2, b.ExtendedStrengthOfSchedule, 1e-9)

	// Recomputing is idempotent.
	standings.Recompute(rounds, points)
	assert.Equal(t, a, standings.Get("a"))
}

func TestOpenRoundOnlyMarksByes(t *testing.T) {
	ab := round.NewPairing(1, "a", "b")
	open := round.New(1, []round.Pairing{ab, round.NewBye(1, "c")})

	standings := NewStandings()
	standings.Recompute([]round.Round{open}, points)

	assert.True(t, standings.Get("c").HadBye)
	assert.Equal(t, 0, standings.Get("c").RoundsPlayed)
	assert.Equal(t, 0, standings.Get("a").RoundsPlayed)
	assert.Equal(t, 3, standings.Len())
}

func TestPerformance(t *testing.T) {
	_, even, _ := Performance(PlayerStats{Wins: 2, Losses: 2})
	assert.InDelta(t, 0, even, 1e-9)

	lower, elo, upper := Performance(PlayerStats{Wins: 4, Draws: 1})
	assert.Greater(t, elo, 0.0)
	assert.Less(t, lower, elo)
	assert.Greater(t, upper, elo)

	_, weak, _ := Performance(PlayerStats{Losses: 3, Byes: 2})
	assert.Less(t, weak, 0.0)

	lower, elo, upper = Performance(PlayerStats{Wins: 9})
	assert.Less(t, lower, elo)
	assert.Greater(t, upper, elo)
	assert.False(t, math.IsInf(upper, 0))
}
