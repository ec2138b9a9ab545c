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

// Swiss is the standard double-sided Swiss format: two players never meet
// twice unless no other grouping of the field exists.
type Swiss struct {
	base
}

var _ Algorithm = (*Swiss)(nil)

func (swiss *Swiss) Format() Format {
	return FormatSwiss
}

func (swiss *Swiss) TotalRounds(players int) (int, error) {
	return TotalRounds(players)
}

func (swiss *Swiss) TopCut(players int) (int, bool, error) {
	return TopCut(players)
}

func (swiss *Swiss) NextPairings(players []string, rounds []round.Round, index int) ([]round.Pairing, error) {
	if err := CheckPlayers(players); err != nil {
		return nil, err
	}

	ranked := swiss.Rank(players, rounds)
	pool, bye := swiss.takeBye(ranked)

	h := newHistory(players, rounds)
	groups, rematches := pair(pool, func(a, b string) bool {
		return h.met(a, b) == 0
	})

	if rematches > 0 {
		logrus.WithField("round", index).Debugf("no grouping without rematches, %d rematch(es) paired", rematches)
	}

	pairings := make([]round.Pairing, 0, len(groups)+1)
	for _, group := range groups {
		pairings = append(pairings, round.NewPairing(index, group[0], group[1]))
	}

	if bye != "" {
		swiss.standings.MarkBye(bye)
		logrus.WithField("round", index).Debugf("bye given to %s", bye)
		pairings = append(pairings, round.NewBye(index, bye))
	}

	return pairings, nil
}
