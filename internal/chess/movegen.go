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

// GenerateMoves returns every legal move in the position. Pseudo-legal
// moves are generated per piece type and then filtered by playing each
// one and checking whether it leaves the mover's own king attacked,
// rather than maintaining pin bitboards: simpler to get right, at the
// cost of a make/unmake per candidate.
func (pos *Position) GenerateMoves() []Move {
	pseudo := make([]Move, 0, 48)

	us := pos.SideToMove
	pos.appendKingMoves(&pseudo)
	if pos.CheckN < 2 {
		pos.appendKnightMoves(&pseudo, us)
		pos.appendSliderMoves(&pseudo, us, Bishop)
		pos.appendSliderMoves(&pseudo, us, Rook)
		pos.appendSliderMoves(&pseudo, us, Queen)
		pos.appendPawnMoves(&pseudo, us)
	}

	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		pos.MakeMove(m)
		if !pos.IsInCheck(us) {
			legal = append(legal, m)
		}
		pos.UnmakeMove()
	}
	return legal
}

func (pos *Position) friends() Bitboard {
	return pos.ColorBBs[pos.SideToMove]
}

func (pos *Position) appendKingMoves(moves *[]Move) {
	us := pos.SideToMove
	from := pos.Kings[us]
	targets := King(from, pos.friends())
	for targets != Empty {
		to := targets.Pop()
		*moves = append(*moves, Move{From: from, To: to})
	}
	if pos.CheckN == 0 {
		pos.appendCastlingMoves(moves)
	}
}

func (pos *Position) appendCastlingMoves(moves *[]Move) {
	occ := pos.occupied()
	us := pos.SideToMove
	them := us.Other()

	tryCastle := func(right Castling, kingFrom, kingTo, pathA, pathB Square, emptyMask Bitboard) {
		if pos.CastlingRights&right == 0 {
			return
		}
		if occ&emptyMask != 0 {
			return
		}
		if pos.IsAttacked(kingFrom, them) || pos.IsAttacked(pathA, them) || pos.IsAttacked(pathB, them) {
			return
		}
		*moves = append(*moves, Move{From: kingFrom, To: kingTo})
	}

	if us == White {
		tryCastle(WhiteKingside, E1, G1, E1, F1, BB(F1)|BB(G1))
		tryCastle(WhiteQueenside, E1, C1, E1, D1, BB(D1)|BB(C1)|BB(B1))
	} else {
		tryCastle(BlackKingside, E8, G8, E8, F8, BB(F8)|BB(G8))
		tryCastle(BlackQueenside, E8, C8, E8, D8, BB(D8)|BB(C8)|BB(B8))
	}
}

func (pos *Position) appendKnightMoves(moves *[]Move, us Color) {
	knights := pos.pieceBB(Knight, us)
	for knights != Empty {
		from := knights.Pop()
		targets := Knight(from, pos.friends())
		for targets != Empty {
			*moves = append(*moves, Move{From: from, To: targets.Pop()})
		}
	}
}

func (pos *Position) appendSliderMoves(moves *[]Move, us Color, role Role) {
	occ := pos.occupied()
	pieces := pos.pieceBB(role, us)
	for pieces != Empty {
		from := pieces.Pop()
		var targets Bitboard
		switch role {
		case Bishop:
			targets = Bishop(from, occ, pos.friends())
		case Rook:
			targets = Rook(from, occ, pos.friends())
		case Queen:
			targets = Queen(from, occ, pos.friends())
		}
		for targets != Empty {
			*moves = append(*moves, Move{From: from, To: targets.Pop()})
		}
	}
}

func (pos *Position) appendPawnMoves(moves *[]Move, us Color) {
	pawns := pos.pieceBB(Pawn, us)
	enemy := pos.ColorBBs[us.Other()]

	push, doublePushRank, promoRank := -8, Rank2, Rank1
	if us == Black {
		push, doublePushRank, promoRank = 8, Rank7, Rank8
	}

	for bb := pawns; bb != Empty; {
		from := bb.Pop()
		to := from + Square(push)

		if to >= 0 && to < N && pos.Mailbox[to] == NoPiece {
			pos.addPawnMove(moves, from, to, promoRank)

			if from.Rank() == doublePushRank {
				to2 := to + Square(push)
				if pos.Mailbox[to2] == NoPiece {
					*moves = append(*moves, Move{From: from, To: to2})
				}
			}
		}

		captures := pawnAttacks[us][from] & (enemy | BB(pos.EnPassantTarget))
		for captures != Empty {
			cto := captures.Pop()
			pos.addPawnMove(moves, from, cto, promoRank)
		}
	}
}

func (pos *Position) addPawnMove(moves *[]Move, from, to Square, promoRank Rank) {
	if to.Rank() == promoRank {
		for _, r := range Promotions {
			*moves = append(*moves, Move{From: from, To: to, Promo: r})
		}
		return
	}
	*moves = append(*moves, Move{From: from, To: to})
}
