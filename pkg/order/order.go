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

// Package order scores and sorts legal moves so the alpha-beta driver
// sees its best candidates first.
package order

import "gambit/internal/chess"

// score tiers, higher searches first. captureBase sits above every
// promotion/quiet score so MVV/LVA ordering among captures (which may
// itself be negative, e.g. QxP) never drops below promoScore.
const (
	ttHintScore = 1 << 20
	captureBase = 1 << 10
	promoScore  = 10
	quietScore  = 0
)

// captureValue gives the MVV/LVA material value for each role, indexed
// by chess.Role, used for both victim and attacker terms.
var captureValue = [chess.RoleN]int{
	chess.NoRole: 0,
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   0,
}

// scored pairs a move with its ordering score for a lazy selection sort:
// only as many moves as are actually searched get sorted, since
// alpha-beta typically prunes most of the list.
type scored struct {
	move  chess.Move
	score int
}

// List is a move list scored for ordering. Moves are picked out one at
// a time via Next, which performs one selection-sort step per call.
type List struct {
	moves []scored
	next  int
}

// New scores every move in moves against the position pos, putting
// ttHint (if legal and present) ahead of everything else.
func New(pos *chess.Position, moves []chess.Move, ttHint chess.Move) *List {
	l := &List{moves: make([]scored, len(moves))}
	for i, m := range moves {
		l.moves[i] = scored{move: m, score: scoreMove(pos, m, ttHint)}
	}
	return l
}

func scoreMove(pos *chess.Position, m, ttHint chess.Move) int {
	if m == ttHint {
		return ttHintScore
	}
	victim := pos.Mailbox[m.To]
	if victim != chess.NoPiece {
		attacker := pos.Mailbox[m.From].Role()
		return captureBase + captureValue[victim.Role()] - captureValue[attacker]
	}
	if m.Promo != chess.NoRole {
		return promoScore
	}
	return quietScore
}

// Len reports how many moves remain unpicked.
func (l *List) Len() int {
	return len(l.moves) - l.next
}

// Next performs one selection-sort step, moving the highest-scoring
// remaining move to the front of the unpicked region and returning it.
// Calling Next more times than Len reports is a programmer error.
func (l *List) Next() chess.Move {
	best := l.next
	for i := l.next + 1; i < len(l.moves); i++ {
		if l.moves[i].score > l.moves[best].score {
			best = i
		}
	}
	l.moves[l.next], l.moves[best] = l.moves[best], l.moves[l.next]
	m := l.moves[l.next].move
	l.next++
	return m
}

// SortedCaptures returns the quiescence move set: legal moves whose
// destination is occupied by the opponent, ordered by the same
// MVV/LVA capture score used by List.
func SortedCaptures(pos *chess.Position, moves []chess.Move) []chess.Move {
	captures := make([]scored, 0, len(moves))
	for _, m := range moves {
		if pos.Mailbox[m.To] == chess.NoPiece {
			continue
		}
		captures = append(captures, scored{move: m, score: scoreMove(pos, m, chess.NullMove)})
	}
	for i := 1; i < len(captures); i++ {
		j := i
		for j > 0 && captures[j-1].score < captures[j].score {
			captures[j-1], captures[j] = captures[j], captures[j-1]
			j--
		}
	}
	out := make([]chess.Move, len(captures))
	for i, c := range captures {
		out[i] = c.move
	}
	return out
}
