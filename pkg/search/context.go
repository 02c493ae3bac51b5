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

// Package search implements iterative-deepening principal-variation
// search over a chess.Position: fail-soft alpha-beta with null-move
// pruning, a single check extension per path, quiescence search at the
// horizon, and a transposition table consulted for bounds and ordering.
package search

import (
	"gambit/internal/chess"
	"gambit/pkg/eval"
	"gambit/pkg/tt"
)

// MaxDepth bounds both the iterative-deepening loop and the recursion
// depth passed to the driver; it is far above any depth a caller should
// realistically request (CLI callers clamp to [1,10]).
const MaxDepth = 256

// Evaluator scores a non-terminal position. Evaluate is the only
// strategy the search depends on; swapping in a tuned evaluator does
// not otherwise change the search code (spec's evaluator-as-strategy
// note). eval.Evaluate satisfies this.
type Evaluator func(*chess.Position) eval.Score

// Report is emitted once per completed iterative-deepening depth. It
// replaces the teacher's raw "info depth ..." stdout line with a plain
// value a caller can log, render, or ignore.
type Report struct {
	Depth int
	Score eval.Score
	Nodes int
	PV    chess.Move
}

// Context bundles a single search's mutable state: the position being
// searched (advanced and retracted in place via Position.MakeMove /
// UnmakeMove) and the transposition table. A Context is reused across
// the depths of one iterative-deepening run, but is not safe to use
// from more than one goroutine at a time; the table it owns is.
type Context struct {
	Position *chess.Position
	Table    *tt.Table

	evaluate Evaluator
	report   func(Report)

	nodes int
}

// NewContext creates a Context ready to search pos. report, if non-nil,
// is called once per completed depth during iterative deepening; pass
// nil to run silently. ttSizeMB sizes a freshly allocated table; pass 0
// for the default.
func NewContext(pos *chess.Position, report func(Report), ttSizeMB int) *Context {
	return &Context{
		Position: pos,
		Table:    tt.New(ttSizeMB),
		evaluate: eval.Evaluate,
		report:   report,
	}
}

// Nodes reports how many search nodes the last iteration (the deepest
// depth) of the most recent call to Search visited; the counter is reset
// at the start of every iterative-deepening depth.
func (c *Context) Nodes() int {
	return c.nodes
}
