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

package round

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOutcomeReverse(t *testing.T) {
	assert.Equal(t, Loss, Win.Reverse())
	assert.Equal(t, Win, Loss.Reverse())
	assert.Equal(t, Draw, Draw.Reverse())
	assert.Equal(t, Bye, Bye.Reverse())
}

func TestParseOutcome(t *testing.T) {
	tests := map[string]Outcome{
		"1-0":     Win,
		"win":     Win,
		"W":       Win,
		"1/2-1/2": Draw,
		"draw":    Draw,
		"0-1":     Loss,
		" loss ":  Loss,
		"bye":     Bye,
	}

	for str, expected := range tests {
		outcome, err := ParseOutcome(str)
		require.NoError(t, err, str)
		assert.Equal(t, expected, outcome, str)
	}

	_, err := ParseOutcome("2-0")
	assert.Error(t, err)
}

func TestOutcomeYAML(t *testing.T) {
	pairing := NewPairing(1, "a", "b")
	require.NoError(t, pairing.SetResult(Draw))

	data, err := yaml.Marshal(pairing)
	require.NoError(t, err)
	assert.Contains(t, string(data), "result: draw")

	var decoded Pairing
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Result)
	assert.Equal(t, Draw, *decoded.Result)
	assert.True(t, decoded.Same(pairing))
}

func TestPairingSame(t *testing.T) {
	ab := NewPairing(1, "a", "b")
	ba := NewPairing(2, "b", "a")
	ac := NewPairing(1, "a", "c")

	require.NoError(t, ba.SetResult(Win))

	assert.True(t, ab.Same(ba), "equality ignores order, round and result")
	assert.False(t, ab.Same(ac))
	assert.False(t, NewBye(1, "a").Same(ab))
	assert.True(t, NewBye(1, "a").Same(NewBye(3, "a")))
}

func TestPairingOpponent(t *testing.T) {
	pairing := NewPairing(1, "a", "b")

	opponent, ok := pairing.Opponent("a")
	assert.True(t, ok)
	assert.Equal(t, "b", opponent)

	opponent, ok = pairing.Opponent("b")
	assert.True(t, ok)
	assert.Equal(t, "a", opponent)

	_, ok = pairing.Opponent("c")
	assert.False(t, ok)

	_, ok = NewBye(1, "a").Opponent("a")
	assert.False(t, ok, "a bye has no opponent")

	assert.False(t, pairing.Has(""))
	assert.False(t, NewBye(1, "a").Has(""))
}

func TestSetResultOnce(t *testing.T) {
	pairing := NewPairing(1, "a", "b")
	require.NoError(t, pairing.SetResult(Win))

	err := pairing.SetResult(Loss)
	assert.ErrorIs(t, err, ErrDoubleRecording)
	assert.Equal(t, Win, *pairing.Result, "first result must be kept")

	outcome, ok := pairing.OutcomeOf("b")
	assert.True(t, ok)
	assert.Equal(t, Loss, outcome)
}

func TestApply(t *testing.T) {
	ab := NewPairing(1, "a", "b")
	bye := NewBye(1, "c")

	t.Run("win and bye", func(t *testing.T) {
		round := New(1, []Pairing{ab, bye})
		reports := append(Reports(ab, Win), Reports(bye, Draw)...)

		require.NoError(t, round.Apply(reports))
		assert.True(t, round.Closed())
		assert.Equal(t, Win, *round.Pairings[0].Result)
		assert.Equal(t, Bye, *round.Pairings[1].Result)
	})

	t.Run("reports in any order", func(t *testing.T) {
		round := New(1, []Pairing{ab})
		reports := []Report{
			{Pairing: NewPairing(1, "b", "a"), Player: "b", Outcome: Win},
			{Pairing: ab, Player: "a", Outcome: Loss},
		}

		require.NoError(t, round.Apply(reports))
		assert.Equal(t, Loss, *round.Pairings[0].Result)
	})

	failures := []struct {
		name    string
		reports []Report
		err     error
	}{
		{"missing pairing", Reports(ab, Win), ErrIncompleteResults},
		{"nothing reported", nil, ErrIncompleteResults},
		{"both win", []Report{
			{Pairing: ab, Player: "a", Outcome: Win},
			{Pairing: ab, Player: "b", Outcome: Win},
			{Pairing: bye, Player: "c", Outcome: Bye},
		}, ErrInconsistentResults},
		{"one side missing", []Report{
			{Pairing: ab, Player: "a", Outcome: Win},
			{Pairing: bye, Player: "c", Outcome: Bye},
		}, ErrInconsistentResults},
		{"same side twice", []Report{
			{Pairing: ab, Player: "a", Outcome: Draw},
			{Pairing: ab, Player: "a", Outcome: Draw},
			{Pairing: bye, Player: "c", Outcome: Bye},
		}, ErrInconsistentResults},
		{"bye without bye outcome", []Report{
			{Pairing: ab, Player: "a", Outcome: Draw},
			{Pairing: ab, Player: "b", Outcome: Draw},
			{Pairing: bye, Player: "c", Outcome: Win},
		}, ErrInconsistentResults},
		{"bye in a match", []Report{
			{Pairing: ab, Player: "a", Outcome: Bye},
			{Pairing: ab, Player: "b", Outcome: Bye},
			{Pairing: bye, Player: "c", Outcome: Bye},
		}, ErrInconsistentResults},
		{"unknown pairing", append(append(Reports(ab, Win), Reports(bye, Bye)...),
			Reports(NewPairing(1, "x", "y"), Win)...), ErrInconsistentResults},
		{"player not in pairing", []Report{
			{Pairing: ab, Player: "a", Outcome: Draw},
			{Pairing: ab, Player: "c", Outcome: Draw},
			{Pairing: bye, Player: "c", Outcome: Bye},
		}, ErrInconsistentResults},
	}

	for _, failure := range failures {
		t.Run(failure.name, func(t *testing.T) {
			round := New(1, []Pairing{ab, bye})

			err := round.Apply(failure.reports)
			assert.ErrorIs(t, err, failure.err)
			assert.False(t, round.Pairings[0].Reported(), "nothing may be attached on failure")
			assert.False(t, round.Pairings[1].Reported(), "nothing may be attached on failure")
		})
	}

	t.Run("double recording", func(t *testing.T) {
		round := New(1, []Pairing{ab})
		require.NoError(t, round.Apply(Reports(ab, Win)))

		err := round.Apply(Reports(ab, Loss))
		assert.ErrorIs(t, err, ErrDoubleRecording)
		assert.Equal(t, Win, *round.Pairings[0].Result)
	})
}

func TestClone(t *testing.T) {
	round := New(1, []Pairing{NewPairing(1, "a", "b")})
	require.NoError(t, round.Pairings[0].SetResult(Win))

	clone := round.Clone()
	*clone.Pairings[0].Result = Loss

	assert.Equal(t, Win, *round.Pairings[0].Result, "a clone must not share results")
}

func TestCheckResult(t *testing.T) {
	with := func(pairing Pairing, outcome Outcome) Pairing {
		pairing.Result = &outcome
		return pairing
	}

	game := NewPairing(1, "a", "b")
	bye := NewBye(1, "c")

	assert.NoError(t, game.CheckResult())
	assert.NoError(t, bye.CheckResult())
	assert.NoError(t, with(game, Draw).CheckResult())
	assert.NoError(t, with(bye, Bye).CheckResult())

	assert.ErrorIs(t, with(bye, Win).CheckResult(), ErrInvalidResult)
	assert.ErrorIs(t, with(game, Bye).CheckResult(), ErrInvalidResult)
	assert.ErrorIs(t, with(game, Outcome(7)).CheckResult(), ErrInvalidResult)
}
