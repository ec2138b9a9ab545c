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

import "github.com/google/uuid"

// Player is a participant of a tournament. A Player is identified only by
// its ID, which is assigned on creation and never changes.
type Player struct {
	ID string `yaml:"id"`

	FirstName string `yaml:"first-name"`
	LastName  string `yaml:"last-name"`
	Nickname  string `yaml:"nickname,omitempty"`
}

// New creates a new Player with a freshly generated ID.
func New(first, last, nickname string) Player {
	return Player{
		ID:        uuid.NewString(),
		FirstName: first,
		LastName:  last,
		Nickname:  nickname,
	}
}

// Equal reports whether the two players are the same participant.
func (player Player) Equal(other Player) bool {
	return player.ID == other.ID
}

// FullName returns the player's first and last names.
func (player Player) FullName() string {
	switch {
	case player.LastName == "":
		return player.FirstName
	case player.FirstName == "":
		return player.LastName
	default:
		return player.FirstName + " " + player.LastName
	}
}

// DisplayName returns the player's nickname, falling back to the full name.
func (player Player) DisplayName() string {
	if player.Nickname != "" {
		return player.Nickname
	}

	return player.FullName()
}

func (player Player) String() string {
	return player.DisplayName()
}
