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

package schedule

import (
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/pairings/pkg/round"
)

// SingleSided is the single-sided Swiss format, where every pairing is a
// single game and PlayerA takes the first side. Two players may meet a
// second time on reversed sides; only a third meeting is a rematch.
type SingleSided struct {
	base
}

var _ Algorithm = (*SingleSided)(nil)

func (single *SingleSided) Format() Format {
	return FormatSingleSided
}

func (single *SingleSided) TotalRounds(players int) (int, error) {
	return lookup(single.config.Rounds, players)
}

func (single *SingleSided) TopCut(players int) (int, bool, error) {
	cut, err := lookup(single.config.TopCut, players)
	return cut, cut > 0, err
}

func (single *SingleSided) NextPairings(players []string, rounds []round.Round, index int) ([]round.Pairing, error) {
	if err := CheckPlayers(players); err != nil {
		return nil, err
	}

	ranked := single.Rank(players, rounds)
	pool, bye := single.takeBye(ranked)

	h := newHistory(players, rounds)

	// fresh opponents are preferred, repeat meetings are used only when the
	// field cannot be grouped otherwise
	groups, ok := pairWithin(pool, func(a, b string) bool {
		return h.met(a, b) == 0
	}, 0)
	if !ok {
		var rematches int
		groups, rematches = pair(pool, func(a, b string) bool {
			return h.met(a, b) < 2
		})

		if rematches > 0 {
			logrus.WithField("round", index).Debugf("no grouping without rematches, %d rematch(es) paired", rematches)
		}
	}

	pairings := make([]round.Pairing, 0, len(groups)+1)
	for _, group := range groups {
		a, b := single.sides(h, group[0], group[1])
		pairings = append(pairings, round.NewPairing(index, a, b))
	}

	if bye != "" {
		single.standings.MarkBye(bye)
		logrus.WithField("round", index).Debugf("bye given to %s", bye)
		pairings = append(pairings, round.NewBye(index, bye))
	}

	return pairings, nil
}

// sides orders two paired players by side, the higher ranked player first.
// Players who met before take the reverse of their previous sides. Otherwise
// the player with fewer first-side games takes the first side.
func (single *SingleSided) sides(h *history, higher, lower string) (first, second string) {
	if last, met := h.lastFirst(higher, lower); met {
		if last == higher {
			return lower, higher
		}
		return higher, lower
	}

	if h.firsts[lower] < h.firsts[higher] {
		return lower, higher
	}

	return higher, lower
}
