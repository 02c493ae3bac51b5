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
	"math/rand"

	"gambit/internal/chess"
)

// RandomAgent uniformly samples a legal move. It resigns if none exist.
type RandomAgent struct {
	Rand *rand.Rand // nil uses the package-level default source
}

func (a *RandomAgent) GetAction(pos *chess.Position) Action {
	moves := pos.GenerateMoves()
	if len(moves) == 0 {
		return Action{Kind: Resign}
	}

	n := a.intn(len(moves))
	return Action{Kind: MakeMove, Move: moves[n]}
}

func (a *RandomAgent) intn(n int) int {
	if a.Rand != nil {
		return a.Rand.Intn(n)
	}
	return rand.Intn(n)
}
