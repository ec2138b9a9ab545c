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

// Package schedule implements the pairing algorithms of a tournament: how
// many rounds it runs for, how big its top cut is, how players are ranked
// and paired for each round, and how reported rounds feed the standings.
package schedule

import (
	"errors"
	"fmt"

	"laptudirm.com/x/pairings/pkg/round"
	"laptudirm.com/x/pairings/pkg/stats"
)

var (
	ErrInvalidPlayerCount = errors.New("not enough players")
	ErrNotConfigured      = errors.New("format parameter not configured")
	ErrUnknownFormat      = errors.New("unknown tournament format")
)

// Format is the tournament format a pairing Algorithm implements.
type Format string

const (
	FormatSwiss       Format = "swiss"
	FormatSingleSided Format = "single-sided"
)

// ParseFormat parses the name of a tournament format. An empty name is the
// standard Swiss format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "swiss", "":
		return FormatSwiss, nil
	case "single-sided", "single-sided-swiss", "sss":
		return FormatSingleSided, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
}

// Rand is the source of randomness used for seeding and for breaking ties
// between otherwise equal players. *math/rand.Rand satisfies it.
type Rand interface {
	Shuffle(n int, swap func(i, j int))
}

// Algorithm is a pairing strategy for a particular tournament format.
type Algorithm interface {
	// Format returns the format implemented by the algorithm.
	Format() Format

	// TotalRounds returns the number of rounds a tournament with the given
	// number of players runs for.
	TotalRounds(players int) (int, error)

	// TopCut returns the number of players advancing to the elimination
	// stage, and false if the tournament has no top cut.
	TopCut(players int) (int, bool, error)

	// Rank orders the given players best-first.
	Rank(players []string, rounds []round.Round) []string

	// NextPairings pairs the given players for the round with the given
	// index, using the round history to avoid rematches and repeat byes.
	NextPairings(players []string, rounds []round.Round, index int) ([]round.Pairing, error)

	// RoundEnded updates the standings after the last round of the given
	// history has been closed.
	RoundEnded(rounds []round.Round)

	// Standings returns the standings maintained by the algorithm.
	Standings() *stats.Standings
}

// New creates the pairing algorithm for the given format.
func New(format Format, config Config, rng Rand) (Algorithm, error) {
	if rng == nil {
		return nil, errors.New("new schedule: nil random source")
	}

	if err := config.Points.Validate(); err != nil {
		return nil, err
	}

	b := base{
		config:    config,
		rng:       rng,
		standings: stats.NewStandings(),
	}

	switch format {
	case FormatSwiss, "":
		return &Swiss{b}, nil
	case FormatSingleSided:
		if err := config.validateTables(); err != nil {
			return nil, err
		}
		return &SingleSided{b}, nil
	default:
		return nil, fmt.Errorf("new schedule: %w: %s", ErrUnknownFormat, format)
	}
}

// base holds the state common to every Algorithm.
type base struct {
	config    Config
	rng       Rand
	standings *stats.Standings
}

func (b *base) Standings() *stats.Standings {
	return b.standings
}

func (b *base) RoundEnded(rounds []round.Round) {
	b.standings.Recompute(rounds, b.config.Points)
}

// takeBye removes the bye recipient from the ranked players if their count
// is odd: the lowest ranked player without a bye yet, or the lowest ranked
// player if everyone has already had one.
func (b *base) takeBye(ranked []string) (pool []string, bye string) {
	if len(ranked)%2 == 0 {
		return ranked, ""
	}

	index := len(ranked) - 1
	for i := len(ranked) - 1; i >= 0; i-- {
		if !b.standings.Get(ranked[i]).HadBye {
			index = i
			break
		}
	}

	pool = make([]string, 0, len(ranked)-1)
	pool = append(pool, ranked[:index]...)
	pool = append(pool, ranked[index+1:]...)
	return pool, ranked[index]
}

// CheckPlayers reports whether the given players can be paired: at least two
// of them, none with an empty or repeated ID.
func CheckPlayers(players []string) error {
	if len(players) < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidPlayerCount, len(players))
	}

	seen := make(map[string]bool, len(players))
	for _, player := range players {
		if player == "" || seen[player] {
			return fmt.Errorf("pair players: duplicate or empty player id %q", player)
		}
		seen[player] = true
	}

	return nil
}
