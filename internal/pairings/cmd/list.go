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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/pairings/pkg/store"
)

func List() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stored tournaments",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			tournaments, err := store.Default()
			if err != nil {
				return err
			}

			names, err := tournaments.List()
			if err != nil {
				return err
			}

			if len(names) == 0 {
				fmt.Println("\x1b[31mNo Tournaments Found.\x1b[0m")
				return nil
			}

			fmt.Println("\x1b[32mTournaments\x1b[0m:")
			fmt.Println()
			for _, name := range names {
				tour, err := tournaments.Open(name)
				if err != nil {
					logrus.WithError(err).Warnf("Skipping unreadable tournament %s", name)
					continue
				}

				label := fmt.Sprintf("\x1b[34m%s\x1b[0m:", name)
				fmt.Printf("- %-30s %-12s %3d players, round %d\n",
					label, tour.Config().Format, len(tour.Roster()), tour.CurrentRound())
			}

			return nil
		},
	}
}
