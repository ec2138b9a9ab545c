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
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/pairings/pkg/player"
	"laptudirm.com/x/pairings/pkg/round"
	"laptudirm.com/x/pairings/pkg/schedule"
	"laptudirm.com/x/pairings/pkg/stats"
)

var (
	ErrNoOpenRound   = errors.New("no open round")
	ErrRoundOpen     = errors.New("previous round is still open")
	ErrUnknownPlayer = errors.New("unknown player")
)

func New(config Config) (*Tournament, error) {
	var tour Tournament
	tour.config = config
	tour.players = player.NewRegistry()

	tour.rng = rand.New(rand.NewSource(config.Seed))

	var err error
	tour.algorithm, err = schedule.New(config.Format, config.Schedule, tour.rng)
	if err != nil {
		return nil, fmt.Errorf("new tournament: %w", err)
	}

	return &tour, nil
}

// Tournament owns the roster and round history of a tournament and drives
// its pairing algorithm. Every method is safe for concurrent use.
type Tournament struct {
	mu sync.Mutex

	config Config

	rng       *rand.Rand
	algorithm schedule.Algorithm

	players *player.Registry
	rounds  []round.Round
}

func (tour *Tournament) Name() string {
	return tour.config.Name
}

func (tour *Tournament) Config() Config {
	return tour.config
}

// Register adds the given players to the roster. Players already on the
// roster are left unchanged.
func (tour *Tournament) Register(players ...player.Player) {
	tour.mu.Lock()
	defer tour.mu.Unlock()

	tour.register(players)
}

func (tour *Tournament) register(players []player.Player) {
	for _, p := range players {
		if tour.players.Add(p) {
			tour.algorithm.Standings().Track(p.ID)
		}
	}
}

// CurrentRound returns the index of the round being played: the number of
// closed rounds plus one.
func (tour *Tournament) CurrentRound() int {
	tour.mu.Lock()
	defer tour.mu.Unlock()

	closed := 0
	for i := range tour.rounds {
		if tour.rounds[i].Closed() {
			closed++
		}
	}

	return closed + 1
}

// NextRound registers the given players and pairs them for the next round,
// which stays open until its results are recorded.
func (tour *Tournament) NextRound(players []player.Player) ([]round.Pairing, error) {
	tour.mu.Lock()
	defer tour.mu.Unlock()

	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}

	if err := schedule.CheckPlayers(ids); err != nil {
		return nil, fmt.Errorf("next round: %w", err)
	}

	if tour.open() != nil {
		return nil, fmt.Errorf("next round: %w", ErrRoundOpen)
	}

	tour.register(players)

	index := len(tour.rounds) + 1
	tour.rng.Seed(tour.config.Seed + int64(index))

	pairings, err := tour.algorithm.NextPairings(ids, tour.rounds, index)
	if err != nil {
		return nil, fmt.Errorf("next round: %w", err)
	}

	next := round.New(index, pairings)
	tour.rounds = append(tour.rounds, next.Clone())

	logrus.WithFields(logrus.Fields{
		"tournament": tour.config.Name,
		"round":      index,
		"pairings":   len(pairings),
	}).Info("round paired")

	return next.Pairings, nil
}

// RecordResults closes the open round with the given reports. The reports
// must cover every pairing of the round; if they don't, or if they
// contradict each other, nothing is recorded.
func (tour *Tournament) RecordResults(reports []round.Report) error {
	tour.mu.Lock()
	defer tour.mu.Unlock()

	open := tour.open()
	if open == nil {
		return fmt.Errorf("record results: %w", ErrNoOpenRound)
	}

	if err := open.Apply(reports); err != nil {
		return fmt.Errorf("record results: round %d: %w", open.Index, err)
	}

	tour.algorithm.RoundEnded(tour.rounds)

	logrus.WithFields(logrus.Fields{
		"tournament": tour.config.Name,
		"round":      open.Index,
	}).Info("round closed")

	return nil
}

// OpenRound returns a copy of the round waiting for results, and false if
// every round has been closed.
func (tour *Tournament) OpenRound() (round.Round, bool) {
	tour.mu.Lock()
	defer tour.mu.Unlock()

	if open := tour.open(); open != nil {
		return open.Clone(), true
	}

	return round.Round{}, false
}

func (tour *Tournament) open() *round.Round {
	if len(tour.rounds) == 0 {
		return nil
	}

	last := &tour.rounds[len(tour.rounds)-1]
	if last.Closed() {
		return nil
	}

	return last
}

func (tour *Tournament) TotalRounds(players int) (int, error) {
	return tour.algorithm.TotalRounds(players)
}

func (tour *Tournament) TopCut(players int) (int, bool, error) {
	return tour.algorithm.TopCut(players)
}

// Standing is a player's row in the standings table.
type Standing struct {
	Rank   int
	Player player.Player
	stats.PlayerStats
}

// Standings returns every registered player ranked by score, strength of
// schedule, and extended strength of schedule. Players tied on all three
// share a rank and are listed in registration order.
func (tour *Tournament) Standings() []Standing {
	tour.mu.Lock()
	defer tour.mu.Unlock()

	standings := tour.algorithm.Standings()

	rows := make([]Standing, 0, tour.players.Len())
	for _, p := range tour.players.Players() {
		rows = append(rows, Standing{Player: p, PlayerStats: standings.Get(p.ID)})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return schedule.Better(rows[i].PlayerStats, rows[j].PlayerStats)
	})

	for i := range rows {
		rows[i].Rank = i + 1
		if i > 0 && !schedule.Better(rows[i-1].PlayerStats, rows[i].PlayerStats) {
			rows[i].Rank = rows[i-1].Rank
		}
	}

	return rows
}

// Rounds returns a copy of the round history.
func (tour *Tournament) Rounds() []round.Round {
	tour.mu.Lock()
	defer tour.mu.Unlock()

	return cloneRounds(tour.rounds)
}

// Roster returns the registered players in registration order.
func (tour *Tournament) Roster() []player.Player {
	tour.mu.Lock()
	defer tour.mu.Unlock()

	return tour.players.Players()
}

// PlayerName returns the display name of the player with the given ID.
func (tour *Tournament) PlayerName(id string) string {
	tour.mu.Lock()
	defer tour.mu.Unlock()

	return tour.players.Name(id)
}

func cloneRounds(rounds []round.Round) []round.Round {
	clones := make([]round.Round, len(rounds))
	for i, r := range rounds {
		clones[i] = r.Clone()
	}

	return clones
}
