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
	"errors"

	"github.com/dominikbraun/graph"

	"laptudirm.com/x/pairings/pkg/round"
)

// attribute holding the player who took the first side at the latest
// meeting of two players
const firstSide = "first"

// history is the meeting graph of a tournament: players are vertices and
// every pair of players who have met is joined by an edge weighted by the
// number of times they met.
type history struct {
	meetings graph.Graph[string, string]

	// number of non-bye games played on the first side
	firsts map[string]int
}

func newHistory(players []string, rounds []round.Round) *history {
	h := &history{
		meetings: graph.New(graph.StringHash),
		firsts:   make(map[string]int),
	}

	for _, player := range players {
		h.addPlayer(player)
	}

	for _, r := range rounds {
		for _, pairing := range r.Pairings {
			h.record(pairing)
		}
	}

	return h
}

func (h *history) addPlayer(id string) {
	// re-adding a vertex is harmless
	_ = h.meetings.AddVertex(id)
}

func (h *history) record(pairing round.Pairing) {
	if pairing.IsBye() {
		return
	}

	a, b := pairing.PlayerA, pairing.PlayerB
	h.addPlayer(a)
	h.addPlayer(b)
	h.firsts[a]++

	edge, err := h.meetings.Edge(a, b)
	if errors.Is(err, graph.ErrEdgeNotFound) {
		_ = h.meetings.AddEdge(a, b,
			graph.EdgeWeight(1),
			graph.EdgeAttribute(firstSide, a),
		)
		return
	}

	_ = h.meetings.UpdateEdge(a, b,
		graph.EdgeWeight(edge.Properties.Weight+1),
		graph.EdgeAttribute(firstSide, a),
	)
}

// met returns the number of times the given players have met.
func (h *history) met(a, b string) int {
	edge, err := h.meetings.Edge(a, b)
	if err != nil {
		return 0
	}

	return edge.Properties.Weight
}

// lastFirst returns the player who took the first side the last time the
// given players met, and false if they never have.
func (h *history) lastFirst(a, b string) (string, bool) {
	edge, err := h.meetings.Edge(a, b)
	if err != nil {
		return "", false
	}

	first, found := edge.Properties.Attributes[firstSide]
	return first, found
}
