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

// Package eval implements a minimal material-plus-piece-square static
// evaluator. It is deliberately not tapered and carries no mobility,
// king-safety, or threat terms; the search treats it as an exchangeable
// strategy bounded only by Score's ±Mate contract.
package eval

import "gambit/internal/chess"

// Score is a signed evaluation from the side-to-move's perspective.
type Score int16

const (
	Mate Score = 30000
	Draw Score = 0
)

// pieceValue gives the material worth of each role, indexed by
// chess.Role (NoRole and King both score 0).
var pieceValue = [chess.RoleN]Score{
	chess.NoRole:  0,
	chess.Pawn:    10,
	chess.Knight:  30,
	chess.Bishop:  30,
	chess.Rook:    50,
	chess.Queen:   90,
	chess.King:    0,
}

// pst is a single pyramidal piece-square table shared by every
// non-king role, favoring central squares symmetrically; the king is
// excluded (a king PST belongs to a king-safety term, out of scope
// here). Indexed by square in chess's A8=0 ordering.
var pst = [chess.N]Score{
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 2, 2, 2, 2, 2, 2, 1,
	1, 2, 3, 3, 3, 3, 2, 1,
	1, 2, 3, 4, 4, 3, 2, 1,
	1, 2, 3, 4, 4, 3, 2, 1,
	1, 2, 3, 3, 3, 3, 2, 1,
	1, 2, 2, 2, 2, 2, 2, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
}

func pstValue(role chess.Role, s chess.Square) Score {
	if role == chess.King || role == chess.NoRole {
		return 0
	}
	return pst[s]
}

// Evaluate scores a non-terminal position from the side to move's
// perspective. Terminal positions must be classified by the caller
// (Checkmate/Stalemate) before calling Evaluate; see EvaluateTerminal.
func Evaluate(pos *chess.Position) Score {
	us := pos.SideToMove

	var score Score
	for s := chess.Square(0); s < chess.N; s++ {
		p := pos.Mailbox[s]
		if p == chess.NoPiece {
			continue
		}
		role := p.Role()
		if p.Color() == us {
			score += pieceValue[role]
			score += pstValue(role, s)
		} else {
			score -= pieceValue[role]
			score -= pstValue(role, s.Mirror())
		}
	}
	return score
}

// EvaluateTerminal scores a position already known to be game-over,
// per spec.md's fixed terminal-scoring convention: Stalemate is a draw
// (0), Checkmate is the worst possible score for the side to move,
// since being checkmated means it is that side's turn with no moves.
func EvaluateTerminal(status chess.GameStatus) Score {
	switch status {
	case chess.Checkmate:
		return -Mate
	default:
		return Draw
	}
}
