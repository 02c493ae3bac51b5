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

package chess

import "strings"

// Move represents a single chess move, enough to both play it on a
// Position and encode/decode it per the fixed move-hash scheme.
type Move struct {
	From, To Square
	Promo    Role // NoRole for a non-promoting move
}

// NullMove is the pass move used by null-move pruning; it is never a
// legal move and never appears in generated move lists.
var NullMove = Move{From: NoSquare, To: NoSquare}

func (m Move) IsNull() bool {
	return m.From == NoSquare && m.To == NoSquare
}

func (m Move) IsZero() bool {
	return m == Move{}
}

// String renders m in long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promo != NoRole {
		s += m.Promo.String()
	}
	return s
}

// ParseMove parses a long algebraic move such as "e2e4" or "a7a8q". The
// promotion letter is read case-insensitively; pos is not consulted. An
// input shorter than four characters yields NullMove. It does not check
// legality; callers should verify the result against the position's
// legal move list.
func ParseMove(s string, pos *Position) Move {
	if len(s) < 4 {
		return NullMove
	}
	from := ParseSquare(s[:2])
	to := ParseSquare(s[2:4])
	m := Move{From: from, To: to}
	if len(s) >= 5 {
		m.Promo = ParsePiece(strings.ToLower(s[4:5])[0]).Role()
	}
	_ = pos
	return m
}
