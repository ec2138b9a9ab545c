// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package stats

import "math"

// Performance estimates the Elo difference between the player and the
// average opponent they faced, along with its p < 0.05 lower and upper
// bounds. Byes are not games and are ignored.
func Performance(stats PlayerStats) (lower float64, elo float64, upper float64) {
	return Elo(stats.Wins, stats.Draws, stats.Losses)
}

// Elo returns the likely elo of a player with the given record along with
// its p < 0.05 upper bound and lower bound, called mu, muMax, and muMin
// respectively. A Dirichlet([0.5, 0.5, 0.5]) prior keeps the estimate
// finite for perfect and empty records.
func Elo(ws, ds, ls int) (muMin float64, mu float64, muMax float64) {
	N := float64(ws+ds+ls) + 1.5 // total number of games

	w := (float64(ws) + 0.5) / N // measured win probability
	d := (float64(ds) + 0.5) / N // measured draw probability
	l := (float64(ls) + 0.5) / N // measured loss probability

	// empirical mean of random variable
	mu = w + d/2

	// standard deviation of the random variable
	sigma := math.Sqrt(
		w*math.Pow(1-mu, 2)+
			d*math.Pow(0.5-mu, 2)+
			l*math.Pow(0-mu, 2),
	) / math.Sqrt(N)

	muMax = mu + phiInv(0.975)*sigma // upper bound
	muMin = mu + phiInv(0.025)*sigma // lower bound

	return scoreToElo(muMin), scoreToElo(mu), scoreToElo(muMax)
}

// scoreEpsilon bounds expected scores away from 0 and 1, where the elo
// difference is infinite.
const scoreEpsilon = 1e-6

// scoreToElo converts an expected score into an elo difference.
func scoreToElo(x float64) float64 {
	x = math.Min(math.Max(x, scoreEpsilon), 1-scoreEpsilon)
	return -400 * math.Log10(1/x-1)
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
