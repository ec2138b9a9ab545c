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

// Package stats keeps the per-player standings of a tournament. Every value
// in the standings is derived from the round history; nothing can be set
// directly.
package stats

import (
	"errors"
	"fmt"

	"laptudirm.com/x/pairings/pkg/round"
)

var ErrInvalidPoints = errors.New("invalid point values")

// Points are the number of points each outcome is worth.
type Points struct {
	Win  int `yaml:"win"`
	Draw int `yaml:"draw"`
	Loss int `yaml:"loss"`
	Bye  int `yaml:"bye"`
}

// Validate checks that the point values describe a sensible scoring system.
func (points Points) Validate() error {
	switch {
	case points.Win < 0, points.Draw < 0, points.Loss < 0, points.Bye < 0:
		return fmt.Errorf("%w: point values can't be negative", ErrInvalidPoints)
	case points.Win <= points.Loss:
		return fmt.Errorf("%w: a win must be worth more than a loss", ErrInvalidPoints)
	case points.Draw > points.Win, points.Draw < points.Loss:
		return fmt.Errorf("%w: a draw must be worth between a loss and a win", ErrInvalidPoints)
	}

	return nil
}

// Value returns the number of points the given outcome is worth.
func (points Points) Value(outcome round.Outcome) int {
	switch outcome {
	case round.Win:
		return points.Win
	case round.Draw:
		return points.Draw
	case round.Loss:
		return points.Loss
	case round.Bye:
		return points.Bye
	default:
		return 0
	}
}

// PlayerStats are the standings of a single player.
type PlayerStats struct {
	Score        int `yaml:"score"`
	RoundsPlayed int `yaml:"rounds-played"`

	StrengthOfSchedule         float64 `yaml:"sos"`
	ExtendedStrengthOfSchedule float64 `yaml:"esos"`

	HadBye bool `yaml:"had-bye"`

	Wins   int `yaml:"wins"`
	Draws  int `yaml:"draws"`
	Losses int `yaml:"losses"`
	Byes   int `yaml:"byes"`
}

// AveragePoints returns the player's mean number of points per round played.
func (stats PlayerStats) AveragePoints() float64 {
	if stats.RoundsPlayed == 0 {
		return 0
	}

	return float64(stats.Score) / float64(stats.RoundsPlayed)
}

// Standings holds the PlayerStats of every tracked player, keyed by ID.
type Standings struct {
	order   []string
	players map[string]*PlayerStats
}

// NewStandings creates empty standings.
func NewStandings() *Standings {
	return &Standings{players: make(map[string]*PlayerStats)}
}

// Track starts tracking the given player with zeroed stats. Tracking an
// already tracked player does nothing.
func (standings *Standings) Track(id string) {
	if _, found := standings.players[id]; found {
		return
	}

	standings.order = append(standings.order, id)
	standings.players[id] = &PlayerStats{}
}

// Tracked reports whether the given player is tracked.
func (standings *Standings) Tracked(id string) bool {
	_, found := standings.players[id]
	return found
}

// Get returns the stats of the given player. Untracked players have zeroed
// stats.
func (standings *Standings) Get(id string) PlayerStats {
	if stats, found := standings.players[id]; found {
		return *stats
	}

	return PlayerStats{}
}

// IDs returns the tracked players in the order they were first tracked.
func (standings *Standings) IDs() []string {
	return append([]string(nil), standings.order...)
}

// MarkBye records that the given player has been given a bye.
func (standings *Standings) MarkBye(id string) {
	standings.Track(id)
	standings.players[id].HadBye = true
}

// Len returns the number of tracked players.
func (standings *Standings) Len() int {
	return len(standings.order)
}
