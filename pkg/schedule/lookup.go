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

import "fmt"

// Round counts of the standard Swiss format.
var swissRounds = []Threshold{
	{Min: 2, Value: 3},
	{Min: 10, Value: 4},
	{Min: 33, Value: 5},
	{Min: 57, Value: 6},
	{Min: 81, Value: 7},
	{Min: 193, Value: 8},
	{Min: 257, Value: 9},
}

// Top cut sizes of the standard Swiss format. Zero means no top cut.
var swissTopCut = []Threshold{
	{Min: 2, Value: 0},
	{Min: 16, Value: 4},
	{Min: 25, Value: 8},
	{Min: 129, Value: 16},
}

// TotalRounds returns the number of Swiss rounds for the given player count.
func TotalRounds(players int) (int, error) {
	return lookup(swissRounds, players)
}

// TopCut returns the Swiss top cut size for the given player count, and
// false if a tournament of that size has no top cut.
func TopCut(players int) (int, bool, error) {
	cut, err := lookup(swissTopCut, players)
	return cut, cut > 0, err
}

// lookup finds the value of the given table for the given player count.
// The table must be sorted by increasing Min.
func lookup(table []Threshold, players int) (int, error) {
	if players < 2 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPlayerCount, players)
	}

	if len(table) == 0 || table[0].Min > players {
		return 0, fmt.Errorf("%w: no entry for %d players", ErrNotConfigured, players)
	}

	value := table[0].Value
	for _, threshold := range table[1:] {
		if threshold.Min > players {
			break
		}
		value = threshold.Value
	}

	return value, nil
}
