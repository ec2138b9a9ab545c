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
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"

	"laptudirm.com/x/pairings/pkg/schedule"
)

func Rounds() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rounds players",
		Short: "Show the number of rounds and the top cut for a player count",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid player count %q", args[0])
			}

			name, _ := cmd.Flags().GetString("format")
			format, err := schedule.ParseFormat(name)
			if err != nil {
				return err
			}

			// the random source is never used for lookups
			algorithm, err := schedule.New(format, schedule.DefaultConfig(format), rand.New(rand.NewSource(0)))
			if err != nil {
				return err
			}

			rounds, err := algorithm.TotalRounds(players)
			if err != nil {
				return err
			}

			cut, ok, err := algorithm.TopCut(players)
			if err != nil {
				return err
			}

			fmt.Printf("Rounds:  %d\n", rounds)
			if ok {
				fmt.Printf("Top Cut: %d\n", cut)
			} else {
				fmt.Println("Top Cut: none")
			}

			return nil
		},
	}

	cmd.Flags().StringP("format", "f", "swiss", "Tournament format (swiss, single-sided)")

	return cmd
}
