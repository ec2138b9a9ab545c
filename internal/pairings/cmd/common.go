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
	"github.com/spf13/cobra"

	"laptudirm.com/x/pairings/pkg/store"
	"laptudirm.com/x/pairings/pkg/tournament"
)

// open loads the named tournament from the default store.
func open(name string) (*store.Store, *tournament.Tournament, error) {
	tournaments, err := store.Default()
	if err != nil {
		return nil, nil, err
	}

	tour, err := tournaments.Open(name)
	if err != nil {
		return nil, nil, err
	}

	return tournaments, tour, nil
}

// completeTournaments completes the first argument with the names of the
// stored tournaments.
func completeTournaments(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	tournaments, err := store.Default()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	names, err := tournaments.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}
