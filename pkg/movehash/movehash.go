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

// Package movehash implements the bijective 16-bit move encoding used to
// compress a move down to a size that fits inside a transposition table
// entry.
package movehash

import "gambit/internal/chess"

// Size is the number of distinct (src, dst, promo) combinations: 64
// source squares, 64 destination squares, 5 promotion choices
// (none, Queen, Rook, Bishop, Knight).
const Size = 64 * 64 * 5

// table is a precomputed inverse lookup, built once in init so Decode is
// a plain array index.
var table [Size]chess.Move

func init() {
	index := 0
	for src := chess.Square(0); src < chess.N; src++ {
		for dst := chess.Square(0); dst < chess.N; dst++ {
			table[index] = chess.Move{From: src, To: dst}
			index++
			for _, promo := range chess.Promotions {
				table[index] = chess.Move{From: src, To: dst, Promo: promo}
				index++
			}
		}
	}
}

// Encode packs m into its 16-bit hash. The result is only meaningful for
// moves with From, To in [0, 64) and Promo one of chess.Promotions or
// chess.NoRole. The zero Move (a8a8, no promotion) encodes to 0. NullMove
// has From and To outside that range and encodes to a value at or above
// Size that Decode cannot take; the TT never encodes null moves.
func Encode(m chess.Move) uint16 {
	promoIndex := uint16(chess.PromoIndex(m.Promo))
	return uint16(m.From)*64*5 + uint16(m.To)*5 + promoIndex
}

// Decode is the inverse of Encode.
func Decode(hash uint16) chess.Move {
	return table[hash]
}
