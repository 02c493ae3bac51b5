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

package agent

import (
	"gambit/internal/chess"
	"gambit/pkg/search"
)

// AlphaBetaAgent plays the move iterative-deepening search settles on
// within depth plies. It always returns MakeMove.
//
// The table is owned by the agent and scoped to its lifetime: it is
// built once in NewAlphaBetaAgent and carried across every GetAction
// call, so a long-running agent keeps accumulating information across
// moves instead of starting cold each ply. Call NewGame to discard it
// at an explicit new-game boundary.
type AlphaBetaAgent struct {
	Depth int
	ctx   *search.Context
}

// NewAlphaBetaAgent builds an agent that searches to depth, using a
// table sized ttSizeMB megabytes (0 for the default). report, if
// non-nil, is forwarded one call per completed iterative-deepening pass.
func NewAlphaBetaAgent(depth, ttSizeMB int, report func(search.Report)) *AlphaBetaAgent {
	return &AlphaBetaAgent{
		Depth: depth,
		ctx:   search.NewContext(nil, report, ttSizeMB),
	}
}

func (a *AlphaBetaAgent) GetAction(pos *chess.Position) Action {
	a.ctx.Position = pos
	move, _ := a.ctx.Search(a.Depth)
	return Action{Kind: MakeMove, Move: move}
}

// NewGame discards everything the agent's table has accumulated so
// far. Call it when starting a fresh game with the same agent.
func (a *AlphaBetaAgent) NewGame() {
	a.ctx.Table.Clear()
}
