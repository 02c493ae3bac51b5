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
	"gambit/internal/chess"
	"gambit/pkg/eval"
	"gambit/pkg/order"
	"gambit/pkg/tt"
)

// nullMoveReduction is the fixed depth reduction null-move pruning
// searches the opponent's reply at.
const nullMoveReduction = 3

// search is the fail-soft negamax / PVS driver. https://www.chessprogramming.org/Negamax
//
// This function also implements alpha-beta pruning to reduce the number
// of nodes visited, since a single refutation is enough to mark a
// position as worse than an already-found alternative.
// https://www.chessprogramming.org/Alpha-Beta
func (c *Context) search(ply, depth int, alpha, beta eval.Score, mayExtend bool) eval.Score {
	c.nodes++
	pos := c.Position

	// 1. check extension, at most once per root-to-leaf path.
	inCheck := pos.IsInCheck(pos.SideToMove)
	if mayExtend && inCheck {
		depth++
		mayExtend = false
	}

	// 2. TT probe.
	ttHint := chess.NullMove
	if result, hit := c.Table.Probe(pos.Hash); hit {
		ttHint = result.Move
		if result.Depth >= depth {
			switch result.Bound {
			case tt.Exact:
				return result.Value
			case tt.LowerBound:
				if result.Value > alpha {
					alpha = result.Value
				}
			case tt.UpperBound:
				if result.Value < beta {
					beta = result.Value
				}
			}
			if alpha >= beta {
				return result.Value
			}
		}
	}
	// the flag is set to the post-probe alpha, not the value the caller
	// passed in, so TT tightening above is reflected in the classification
	// step at the end of this function.
	alphaOrig := alpha

	// 3. terminal.
	moves := pos.GenerateMoves()
	if status := pos.Status(moves); status != chess.Ongoing {
		return eval.EvaluateTerminal(status)
	}

	// 4. horizon.
	if depth <= 0 || ply >= MaxDepth {
		v := c.quiescence(alpha, beta)
		c.Table.Store(pos.Hash, 0, tt.Exact, v, chess.NullMove)
		return v
	}

	// 5. null-move pruning; illegal while in check.
	if depth >= nullMoveReduction && !inCheck {
		pos.MakeMove(chess.NullMove)
		s := -c.plainNegamax(ply+1, depth-nullMoveReduction, -beta, -beta+1)
		pos.UnmakeMove()
		if s >= beta {
			return beta
		}
	}

	// 6. principal-variation search.
	list := order.New(pos, moves, ttHint)

	best := list.Next()
	pos.MakeMove(best)
	v := -c.search(ply+1, depth-1, -beta, -alpha, mayExtend)
	pos.UnmakeMove()
	if v > alpha {
		alpha = v
	}

	if alpha < beta {
		for list.Len() > 0 {
			m := list.Next()

			pos.MakeMove(m)
			s := -c.search(ply+1, depth-1, -alpha-1, -alpha, mayExtend)
			if alpha < s && s < beta {
				s = -c.search(ply+1, depth-1, -beta, -alpha, mayExtend)
			}
			pos.UnmakeMove()

			if s > alpha {
				alpha = s
				best = m
			}
			if alpha >= beta {
				break
			}
		}
	}
	v = alpha

	// 7. TT store, classified relative to the post-probe alpha and the
	// (possibly TT-tightened) beta.
	bound := tt.Exact
	switch {
	case v <= alphaOrig:
		bound = tt.UpperBound
	case v >= beta:
		bound = tt.LowerBound
	}
	c.Table.Store(pos.Hash, depth, bound, v, best)

	return v
}

// plainNegamax is a textbook fail-soft negamax used only by null-move
// pruning: no transposition table, no PVS re-search, no check extension.
// It shares the evaluator, quiescence search, and move orderer (without
// a TT hint) with the main driver.
func (c *Context) plainNegamax(ply, depth int, alpha, beta eval.Score) eval.Score {
	c.nodes++
	pos := c.Position

	moves := pos.GenerateMoves()
	if status := pos.Status(moves); status != chess.Ongoing {
		return eval.EvaluateTerminal(status)
	}

	if depth <= 0 || ply >= MaxDepth {
		return c.quiescence(alpha, beta)
	}

	v := -eval.Mate - 1
	list := order.New(pos, moves, chess.NullMove)
	for list.Len() > 0 {
		m := list.Next()

		pos.MakeMove(m)
		s := -c.plainNegamax(ply+1, depth-1, -beta, -alpha)
		pos.UnmakeMove()

		if s > v {
			v = s
		}
		if v > alpha {
			alpha = v
		}
		if alpha >= beta {
			break
		}
	}
	return v
}
