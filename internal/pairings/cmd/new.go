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

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/pairings/pkg/player"
	"laptudirm.com/x/pairings/pkg/schedule"
	"laptudirm.com/x/pairings/pkg/store"
	"laptudirm.com/x/pairings/pkg/tournament"
)

// entryFile is the format of the file a tournament is created from.
type entryFile struct {
	tournament.Config `yaml:",inline"`

	Players []player.Player `yaml:"players"`
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new name entry-file",
		Short: "Create a new tournament",
		Args:  cobra.ExactArgs(2),
		Long: heredoc.Doc(`new creates a tournament with the given name from the
			players and settings in the given YAML entry file.

			The entry file lists the players under the players key, each
			with a first-name, last-name and an optional nickname. The
			format key selects between swiss (the default) and
			single-sided, and the points key sets the number of points
			for a win, draw, loss and bye. Unset values are taken from
			the format's presets.

			Example entry file:

			    format: swiss
			    points: { win: 3, draw: 1, loss: 0, bye: 3 }
			    players:
			      - { first-name: Ada, last-name: Lovelace }
			      - { first-name: Alan, last-name: Turing, nickname: alan }`),

		RunE: func(cmd *cobra.Command, args []string) error {
			name, file := args[0], args[1]

			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}

			var entry entryFile
			if err := yaml.Unmarshal(data, &entry); err != nil {
				return fmt.Errorf("parse %s: %w", file, err)
			}

			entry.Name = name
			if entry.Format, err = schedule.ParseFormat(string(entry.Format)); err != nil {
				return err
			}

			if cmd.Flag("seed").Changed {
				entry.Seed, _ = cmd.Flags().GetInt64("seed")
			} else if entry.Seed == 0 {
				entry.Seed = time.Now().UnixNano()
			}

			tour, err := tournament.New(entry.Config.WithDefaults())
			if err != nil {
				return err
			}

			for _, p := range entry.Players {
				if p.ID == "" {
					p = player.New(p.FirstName, p.LastName, p.Nickname)
				}
				tour.Register(p)
			}

			tournaments, err := store.Default()
			if err != nil {
				return err
			}

			if err := tournaments.Create(tour.Snapshot()); err != nil {
				return err
			}

			players := len(tour.Roster())
			logrus.WithFields(logrus.Fields{
				"format":  tour.Config().Format,
				"players": players,
			}).Infof("Created tournament %s", name)

			if players >= 2 {
				rounds, _ := tour.TotalRounds(players)
				fmt.Printf("\x1b[32m%s\x1b[0m: %d players, %d rounds\n", name, players, rounds)
			}

			return nil
		},
	}

	cmd.Flags().Int64P("seed", "s", 0, "Seed for the tournament's random tie-breaks")

	return cmd
}
