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
	"laptudirm.com/x/pairings/pkg/schedule"
	"laptudirm.com/x/pairings/pkg/stats"
)

type Config struct {
	// Name of the tournament, also used as its storage key.
	Name string `yaml:"name"`

	// The tournament format, see schedule.ParseFormat.
	Format schedule.Format `yaml:"format"`

	// Seed of the random source used for seeding and tie-breaks. Round n
	// is paired from Seed+n, so a restored tournament pairs the same way
	// an uninterrupted one does.
	Seed int64 `yaml:"seed"`

	// Point values and format tables.
	Schedule schedule.Config `yaml:",inline"`
}

// WithDefaults fills in the unset parts of the config from the format's
// preset configuration.
func (config Config) WithDefaults() Config {
	if config.Format == "" {
		config.Format = schedule.FormatSwiss
	}

	preset := schedule.DefaultConfig(config.Format)
	if config.Schedule.Points == (stats.Points{}) {
		config.Schedule.Points = preset.Points
	}

	if len(config.Schedule.Rounds) == 0 {
		config.Schedule.Rounds = preset.Rounds
	}

	if len(config.Schedule.TopCut) == 0 {
		config.Schedule.TopCut = preset.TopCut
	}

	return config
}
