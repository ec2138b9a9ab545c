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

// searchBudget bounds the number of nodes visited while looking for a
// grouping of players, so that pairing always completes in bounded time.
const searchBudget = 50_000

// pair groups the given players, ordered best first, into pairs. Every
// player is paired with the nearest player below them in the order for whom
// allowed holds, backtracking when that leaves the rest ungroupable. If no
// such grouping is found the one with the fewest disallowed pairs is used.
func pair(pool []string, allowed func(a, b string) bool) (pairs [][2]string, violations int) {
	search := matcher{allowed: allowed, steps: searchBudget}

	for violations = 0; violations < len(pool)/2; violations++ {
		if pairs, ok := search.run(pool, violations); ok {
			return pairs, search.count(pairs)
		}

		if search.steps <= 0 {
			break
		}
	}

	// with every pair allowed to be a violation the first branch succeeds
	search.steps = len(pool) + 1
	pairs, _ = search.run(pool, len(pool)/2)
	return pairs, search.count(pairs)
}

// pairWithin is like pair but fails instead of exceeding the given number
// of disallowed pairs.
func pairWithin(pool []string, allowed func(a, b string) bool, violations int) ([][2]string, bool) {
	search := matcher{allowed: allowed, steps: searchBudget}
	return search.run(pool, violations)
}

type matcher struct {
	allowed func(a, b string) bool
	steps   int
}

func (m *matcher) run(pool []string, violations int) ([][2]string, bool) {
	if len(pool) == 0 {
		return nil, true
	}

	if m.steps <= 0 {
		return nil, false
	}
	m.steps--

	top := pool[0]
	for cost := 0; cost <= 1 && cost <= violations; cost++ {
		for j := 1; j < len(pool); j++ {
			if m.allowed(top, pool[j]) != (cost == 0) {
				continue
			}

			if rest, ok := m.run(without(pool, j), violations-cost); ok {
				return append([][2]string{{top, pool[j]}}, rest...), true
			}

			if m.steps <= 0 {
				return nil, false
			}
		}
	}

	return nil, false
}

func (m *matcher) count(pairs [][2]string) int {
	violations := 0
	for _, p := range pairs {
		if !m.allowed(p[0], p[1]) {
			violations++
		}
	}

	return violations
}

// without returns pool[1:] with the element at index j removed.
func without(pool []string, j int) []string {
	rest := make([]string, 0, len(pool)-2)
	rest = append(rest, pool[1:j]...)
	return append(rest, pool[j+1:]...)
}
