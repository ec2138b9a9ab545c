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

package player

// Registry owns the players of a tournament. Everything else refers to a
// player by its ID and looks it up here.
type Registry struct {
	order   []string
	players map[string]Player
}

// NewRegistry creates a Registry holding the given players.
func NewRegistry(players ...Player) *Registry {
	registry := &Registry{players: make(map[string]Player)}
	for _, player := range players {
		registry.Add(player)
	}

	return registry
}

// Add registers the player. Adding an already registered ID is a no-op, so
// the first record for an ID is the one that is kept.
func (registry *Registry) Add(player Player) bool {
	if _, found := registry.players[player.ID]; found {
		return false
	}

	registry.order = append(registry.order, player.ID)
	registry.players[player.ID] = player
	return true
}

// Get looks up the player with the given ID.
func (registry *Registry) Get(id string) (Player, bool) {
	player, found := registry.players[id]
	return player, found
}

// Name returns the display name of the given ID, or the ID itself for an
// unknown player.
func (registry *Registry) Name(id string) string {
	if player, found := registry.players[id]; found {
		return player.DisplayName()
	}

	return id
}

// Players returns the registered players in registration order.
func (registry *Registry) Players() []Player {
	players := make([]Player, 0, len(registry.order))
	for _, id := range registry.order {
		players = append(players, registry.players[id])
	}

	return players
}

// Len returns the number of registered players.
func (registry *Registry) Len() int {
	return len(registry.order)
}
