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

// Package chess implements the rules of chess: board representation,
// legal move generation, and position hashing, used as the rules
// collaborator of the search core in the parent module.
package chess

import "fmt"

// undo records the state needed to unmake a single move.
type undo struct {
	Move            Move
	Captured        Piece
	CastlingRights  Castling
	EnPassantTarget Square
	DrawClock       int
	Hash            Hash
}

// Position represents the full state of a chess game at a point in time.
type Position struct {
	Mailbox  [N]Piece
	PieceBBs [RoleN]Bitboard
	ColorBBs [ColorN]Bitboard

	Kings [ColorN]Square

	SideToMove      Color
	EnPassantTarget Square
	CastlingRights  Castling

	CheckN    int
	CheckMask Bitboard

	Ply       int
	FullMoves int
	DrawClock int

	Hash Hash

	history []undo
}

// StartingPosition returns the Position at the start of a standard game.
func StartingPosition() *Position {
	pos, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic(err) // the starting FEN is a compile-time constant
	}
	return pos
}

func (pos *Position) occupied() Bitboard {
	return pos.ColorBBs[White] | pos.ColorBBs[Black]
}

func (pos *Position) pieceBB(r Role, c Color) Bitboard {
	return pos.PieceBBs[r] & pos.ColorBBs[c]
}

// ClearSquare removes whatever piece sits on s, updating every board
// representation along with the incremental Zobrist hash.
func (pos *Position) ClearSquare(s Square) {
	p := pos.Mailbox[s]
	if p == NoPiece {
		return
	}
	pos.ColorBBs[p.Color()].Clear(s)
	pos.PieceBBs[p.Role()].Clear(s)
	pos.Mailbox[s] = NoPiece
	pos.Hash ^= zobristPieceSquare[p][s]
}

// FillSquare places p on s, updating every board representation along
// with the incremental Zobrist hash.
func (pos *Position) FillSquare(s Square, p Piece) {
	pos.ColorBBs[p.Color()].Set(s)
	pos.PieceBBs[p.Role()].Set(s)
	pos.Mailbox[s] = p
	if p.Role() == King {
		pos.Kings[p.Color()] = s
	}
	pos.Hash ^= zobristPieceSquare[p][s]
}

// IsInCheck reports whether c's king is currently attacked.
func (pos *Position) IsInCheck(c Color) bool {
	return pos.IsAttacked(pos.Kings[c], c.Other())
}

// castlingRookMove describes the rook relocation associated with castling
// to a given king destination square.
type castlingRookMove struct {
	From, To Square
}

var castlingRooks = map[Square]castlingRookMove{
	G1: {From: H1, To: F1},
	C1: {From: A1, To: D1},
	G8: {From: H8, To: F8},
	C8: {From: A8, To: D8},
}

// castlingRightLoss maps each square to the castling rights forfeited
// when a piece leaves or arrives on it (king/rook starting squares).
var castlingRightLoss = func() [N]Castling {
	var m [N]Castling
	m[E1] = WhiteKingside | WhiteQueenside
	m[A1] = WhiteQueenside
	m[H1] = WhiteKingside
	m[E8] = BlackKingside | BlackQueenside
	m[A8] = BlackQueenside
	m[H8] = BlackKingside
	return m
}()

func abs(a Square) Square {
	if a < 0 {
		return -a
	}
	return a
}

// MakeMove plays a pseudo-legal move on the position. Callers are
// responsible for verifying legality (that it does not leave the mover's
// own king in check) before or after calling this, e.g. via IsInCheck.
func (pos *Position) MakeMove(m Move) {
	pos.history = append(pos.history, undo{
		Move:            m,
		CastlingRights:  pos.CastlingRights,
		EnPassantTarget: pos.EnPassantTarget,
		DrawClock:       pos.DrawClock,
		Hash:            pos.Hash,
	})

	pos.DrawClock++

	if m.IsNull() {
		pos.makeNullMove()
		return
	}

	from, to := m.From, m.To
	captureSq := to
	moving := pos.Mailbox[from]
	role := moving.Role()

	isDoublePush := role == Pawn && abs(to-from) == 16
	isCastle := role == King && abs(to-from) == 2
	isEnPassant := role == Pawn && to == pos.EnPassantTarget

	if role == Pawn {
		pos.DrawClock = 0
	}

	if pos.EnPassantTarget != NoSquare {
		pos.Hash ^= zobristEnPassant[pos.EnPassantTarget.File()]
	}
	pos.EnPassantTarget = NoSquare

	switch {
	case isDoublePush:
		target := from
		if pos.SideToMove == White {
			target -= 8
		} else {
			target += 8
		}
		if pos.pieceBB(Pawn, pos.SideToMove.Other())&pawnAttacks[pos.SideToMove][target] != 0 {
			pos.EnPassantTarget = target
			pos.Hash ^= zobristEnPassant[target.File()]
		}

	case isCastle:
		rook := castlingRooks[to]
		pos.ClearSquare(rook.From)
		pos.FillSquare(rook.To, NewPiece(Rook, pos.SideToMove))

	case isEnPassant:
		if pos.SideToMove == White {
			captureSq += 8
		} else {
			captureSq -= 8
		}
		fallthrough

	default:
		if pos.Mailbox[to] != NoPiece || isEnPassant {
			pos.history[len(pos.history)-1].Captured = pos.Mailbox[captureSq]
			pos.DrawClock = 0
			pos.ClearSquare(captureSq)
		}
	}

	pos.ClearSquare(from)
	dest := moving
	if m.Promo != NoRole {
		dest = NewPiece(m.Promo, pos.SideToMove)
	}
	pos.FillSquare(to, dest)

	pos.Hash ^= zobristCastling[pos.CastlingRights]
	pos.CastlingRights &^= castlingRightLoss[from]
	pos.CastlingRights &^= castlingRightLoss[to]
	pos.Hash ^= zobristCastling[pos.CastlingRights]

	pos.Ply++
	if pos.SideToMove = pos.SideToMove.Other(); pos.SideToMove == White {
		pos.FullMoves++
	}
	pos.Hash ^= zobristSideToMove

	pos.updateCheckMask()
}

func (pos *Position) makeNullMove() {
	if pos.EnPassantTarget != NoSquare {
		pos.Hash ^= zobristEnPassant[pos.EnPassantTarget.File()]
	}
	pos.EnPassantTarget = NoSquare

	pos.Ply++
	if pos.SideToMove = pos.SideToMove.Other(); pos.SideToMove == White {
		pos.FullMoves++
	}
	pos.Hash ^= zobristSideToMove

	pos.updateCheckMask()
}

// UnmakeMove reverts the last move played via MakeMove.
func (pos *Position) UnmakeMove() {
	last := len(pos.history) - 1
	u := pos.history[last]
	pos.history = pos.history[:last]

	if pos.SideToMove = pos.SideToMove.Other(); pos.SideToMove == Black {
		pos.FullMoves--
	}
	pos.Ply--
	pos.EnPassantTarget = u.EnPassantTarget
	pos.DrawClock = u.DrawClock
	pos.CastlingRights = u.CastlingRights

	m := u.Move
	if m.IsNull() {
		pos.Hash = u.Hash
		pos.updateCheckMask()
		return
	}

	from, to := m.From, m.To
	captureSq := to
	moving := pos.Mailbox[to]
	role := moving.Role()
	if m.Promo != NoRole {
		role = Pawn
	}

	isCastle := role == King && abs(to-from) == 2
	isEnPassant := role == Pawn && to == pos.EnPassantTarget

	pos.ClearSquare(to)
	if m.Promo != NoRole {
		pos.FillSquare(from, NewPiece(Pawn, pos.SideToMove))
	} else {
		pos.FillSquare(from, moving)
	}

	switch {
	case isCastle:
		rook := castlingRooks[to]
		pos.ClearSquare(rook.To)
		pos.FillSquare(rook.From, NewPiece(Rook, pos.SideToMove))

	case isEnPassant:
		if pos.SideToMove == White {
			captureSq += 8
		} else {
			captureSq -= 8
		}
		fallthrough

	default:
		if u.Captured != NoPiece {
			pos.FillSquare(captureSq, u.Captured)
		}
	}

	pos.Hash = u.Hash
	pos.updateCheckMask()
}

// updateCheckMask recomputes CheckN and CheckMask for the side to move,
// mirroring the pre-move-generation check calculation every search node
// needs. CheckMask is Universe when not in check (no restriction), and
// narrows to the checking piece plus any blocking squares otherwise.
func (pos *Position) updateCheckMask() {
	occ := pos.occupied()
	us := pos.SideToMove
	them := us.Other()
	kingSq := pos.Kings[us]

	pos.CheckN = 0
	pos.CheckMask = Empty

	if p := pos.pieceBB(Pawn, them) & pawnAttacks[us][kingSq]; p != 0 {
		pos.CheckMask |= p
		pos.CheckN++
	}
	if n := pos.pieceBB(Knight, them) & knightAttacks[kingSq]; n != 0 {
		pos.CheckMask |= n
		pos.CheckN++
	}
	if b := (pos.pieceBB(Bishop, them) | pos.pieceBB(Queen, them)) & Bishop(kingSq, occ, 0); b != 0 {
		sq := b.LSB()
		pos.CheckMask |= Between(kingSq, sq) | BB(sq)
		pos.CheckN++
	}
	if pos.CheckN < 2 {
		if r := (pos.pieceBB(Rook, them) | pos.pieceBB(Queen, them)) & Rook(kingSq, occ, 0); r != 0 {
			sq := r.LSB()
			pos.CheckMask |= Between(kingSq, sq) | BB(sq)
			pos.CheckN++
		}
	}

	if pos.CheckN == 0 {
		pos.CheckMask = Universe
	}
}

// GameStatus is the terminal classification of a position.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
	DrawByFiftyMoves
	DrawByRepetition
	DrawByInsufficientMaterial
)

func (s GameStatus) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawByFiftyMoves:
		return "draw by fifty-move rule"
	case DrawByRepetition:
		return "draw by repetition"
	case DrawByInsufficientMaterial:
		return "draw by insufficient material"
	default:
		return "unknown"
	}
}

// Status classifies the position given its legal moves (obtained from
// the move generator), matching the Status operation named in spec.md.
func (pos *Position) Status(legalMoves []Move) GameStatus {
	if len(legalMoves) == 0 {
		if pos.IsInCheck(pos.SideToMove) {
			return Checkmate
		}
		return Stalemate
	}
	if pos.DrawClock >= 100 {
		return DrawByFiftyMoves
	}
	if pos.isInsufficientMaterial() {
		return DrawByInsufficientMaterial
	}
	if pos.isRepeated() {
		return DrawByRepetition
	}
	return Ongoing
}

// isRepeated reports whether the current hash has occurred twice before
// in the reversible-move window tracked by history (threefold repetition).
func (pos *Position) isRepeated() bool {
	count := 1
	limit := len(pos.history) - pos.DrawClock
	if limit < 0 {
		limit = 0
	}
	for i := len(pos.history) - 1; i >= limit; i-- {
		if pos.history[i].Hash == pos.Hash {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// isInsufficientMaterial reports K-vs-K, K+N-vs-K, and K+B-vs-K endings.
func (pos *Position) isInsufficientMaterial() bool {
	if pos.PieceBBs[Pawn]|pos.PieceBBs[Rook]|pos.PieceBBs[Queen] != 0 {
		return false
	}
	minorCount := pos.PieceBBs[Knight].Count() + pos.PieceBBs[Bishop].Count()
	return minorCount <= 1
}

func (pos *Position) String() string {
	s := "+---+---+---+---+---+---+---+---+\n"
	for r := 0; r < 8; r++ {
		s += "| "
		for f := 0; f < 8; f++ {
			s += pos.Mailbox[r*8+f].String() + " | "
		}
		s += fmt.Sprintf("%d\n", 8-r)
		s += "+---+---+---+---+---+---+---+---+\n"
	}
	s += "  a   b   c   d   e   f   g   h\n"
	return s
}
