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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/pairings/pkg/round"
	"laptudirm.com/x/pairings/pkg/schedule"
)

func openRound() round.Round {
	return round.New(2, []round.Pairing{
		round.NewPairing(2, "a", "b"),
		round.NewPairing(2, "c", "d"),
		round.NewBye(2, "e"),
	})
}

func TestParseResults(t *testing.T) {
	current := openRound()

	reports, err := parseResults(current, []string{"1=1-0", "2=draw"})
	require.NoError(t, err)
	assert.Len(t, reports, 5)

	require.NoError(t, current.Apply(reports))
	assert.Equal(t, round.Win, *current.Pairings[0].Result)
	assert.Equal(t, round.Draw, *current.Pairings[1].Result)
	assert.Equal(t, round.Bye, *current.Pairings[2].Result)
}

func TestParseResultsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"1"},
		{"0=1-0"},
		{"4=1-0"},
		{"x=1-0"},
		{"3=1-0"},
		{"1=2-0"},
	} {
		_, err := parseResults(openRound(), args)
		assert.Error(t, err, "%v", args)
	}
}

func TestMissingTableLeavesRoundOpen(t *testing.T) {
	current := openRound()

	reports, err := parseResults(current, []string{"2=0-1"})
	require.NoError(t, err)
	assert.ErrorIs(t, current.Apply(reports), round.ErrIncompleteResults)
	assert.False(t, current.Closed())
}

func TestEntryFile(t *testing.T) {
	data := []byte(`
format: single-sided
seed: 12
points: { win: 2, draw: 1, loss: 0, bye: 2 }
players:
  - { first-name: Ada, last-name: Lovelace }
  - { first-name: Alan, last-name: Turing, nickname: alan }
`)

	var entry entryFile
	require.NoError(t, yaml.Unmarshal(data, &entry))

	assert.Equal(t, schedule.FormatSingleSided, entry.Format)
	assert.Equal(t, int64(12), entry.Seed)
	assert.Equal(t, 2, entry.Schedule.Points.Win)
	require.Len(t, entry.Players, 2)
	assert.Equal(t, "alan", entry.Players[1].DisplayName())

	config := entry.Config.WithDefaults()
	assert.NotEmpty(t, config.Schedule.Rounds)
	assert.Equal(t, 2, config.Schedule.Points.Win)
}
