// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

package search

import (
	"gambit/pkg/eval"
	"gambit/pkg/order"
)

// quiescence resolves tactical volatility at the search horizon by
// recursing through captures only, bounded by the material already on
// the board so it always terminates.
// https://www.chessprogramming.org/Quiescence_Search
func (c *Context) quiescence(alpha, beta eval.Score) eval.Score {
	c.nodes++

	standPat := c.evaluate(c.Position)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := c.Position.GenerateMoves()
	if len(moves) == 0 {
		if c.Position.IsInCheck(c.Position.SideToMove) {
			return -eval.Mate
		}
		return eval.Draw
	}

	for _, m := range order.SortedCaptures(c.Position, moves) {
		c.Position.MakeMove(m)
		score := -c.quiescence(-beta, -alpha)
		c.Position.UnmakeMove()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
