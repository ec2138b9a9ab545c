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
	"fmt"

	"laptudirm.com/x/pairings/pkg/stats"
)

// Config holds the parameters of a pairing Algorithm.
type Config struct {
	// Points awarded for each outcome of a pairing.
	Points stats.Points `yaml:"points"`

	// Round count and top cut tables of the single-sided format. The
	// standard Swiss format has fixed tables and ignores these.
	Rounds []Threshold `yaml:"rounds,omitempty"`
	TopCut []Threshold `yaml:"top-cut,omitempty"`
}

// Threshold maps every player count from Min upwards, up to the next
// Threshold's Min, to Value.
type Threshold struct {
	Min   int `yaml:"min"`
	Value int `yaml:"value"`
}

// DefaultConfig returns a preset configuration for the given format. The
// presets follow the usual organized play policies but are only presets:
// any configuration passed to New is used as is.
func DefaultConfig(format Format) Config {
	switch format {
	case FormatSingleSided:
		return Config{
			Points: stats.Points{Win: 3, Draw: 1, Loss: 0, Bye: 3},

			// A single-sided round is a single game, so the format runs for
			// twice as many rounds as a double-sided Swiss.
			Rounds: []Threshold{
				{Min: 2, Value: 6},
				{Min: 10, Value: 8},
				{Min: 33, Value: 10},
				{Min: 57, Value: 12},
				{Min: 81, Value: 14},
				{Min: 193, Value: 16},
				{Min: 257, Value: 18},
			},
			TopCut: append([]Threshold(nil), swissTopCut...),
		}

	default:
		return Config{
			Points: stats.Points{Win: 3, Draw: 1, Loss: 0, Bye: 3},
		}
	}
}

func (config Config) validateTables() error {
	if len(config.Rounds) == 0 {
		return fmt.Errorf("%w: round count table", ErrNotConfigured)
	}

	if len(config.TopCut) == 0 {
		return fmt.Errorf("%w: top cut table", ErrNotConfigured)
	}

	if err := validateTable(config.Rounds); err != nil {
		return fmt.Errorf("round count table: %w", err)
	}

	if err := validateTable(config.TopCut); err != nil {
		return fmt.Errorf("top cut table: %w", err)
	}

	return nil
}

func validateTable(table []Threshold) error {
	if table[0].Min > 2 {
		return fmt.Errorf("%w: table must start at 2 players, starts at %d", ErrNotConfigured, table[0].Min)
	}

	for i, threshold := range table {
		if threshold.Value < 0 {
			return fmt.Errorf("%w: negative value for %d players", ErrNotConfigured, threshold.Min)
		}

		if i > 0 && threshold.Min <= table[i-1].Min {
			return fmt.Errorf("%w: thresholds must be increasing", ErrNotConfigured)
		}
	}

	return nil
}
