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

package search

import (
	"gambit/internal/chess"
	"gambit/pkg/eval"
	"gambit/pkg/order"
)

// Search runs iterative deepening from depth 1 to maxDepth, re-using c's
// transposition table across depths, and returns the root move read back
// from the table (see rootBestMove) along with the final depth's score.
// Table.BestMove reads the deep bucket first, and the deep bucket keeps
// the shallowest-depth entry stored for a key, so the move returned is
// the one recorded by the earliest iteration whose root entry still holds
// the deep bucket (normally depth 1), not necessarily the final depth's.
// https://www.chessprogramming.org/Iterative_Deepening
func (c *Context) Search(maxDepth int) (chess.Move, eval.Score) {
	if maxDepth <= 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	var score eval.Score
	for depth := 1; depth <= maxDepth; depth++ {
		c.nodes = 0
		score = c.search(0, depth, -eval.Mate-1, eval.Mate+1, true)

		if c.report != nil {
			c.report(Report{
				Depth: depth,
				Score: score,
				Nodes: c.nodes,
				PV:    c.rootBestMove(),
			})
		}
	}

	return c.rootBestMove(), score
}

// rootBestMove asks the transposition table for the root's best move and
// orders the root's legal moves around it, matching how every other node
// in the tree picks a move to search first; this is the only place a PV
// move is ever read back out, since the driver itself does not thread a
// variation through its recursion.
func (c *Context) rootBestMove() chess.Move {
	moves := c.Position.GenerateMoves()
	if len(moves) == 0 {
		return chess.NullMove
	}

	hint, _ := c.Table.BestMove(c.Position.Hash)
	list := order.New(c.Position, moves, hint)
	return list.Next()
}
