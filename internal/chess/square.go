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

// Square represents a square on a chessboard, numbered A8=0 through H1=63
// in rank-major order so that index order matches FEN's rank-8-first
// piece placement field.
type Square int8

// constants representing every square on the board.
const (
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 56, 57, 58, 59, 60, 61, 62, 63

	NoSquare Square = -1
)

// N is the number of squares on the board.
const N = 64

// File represents a file (column) on the chessboard, A through H.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank represents a rank (row) on the chessboard, indexed 8 down to 1.
type Rank int8

const (
	Rank8 Rank = iota
	Rank7
	Rank6
	Rank5
	Rank4
	Rank3
	Rank2
	Rank1
)

// NewSquare builds a Square from a file and a rank.
func NewSquare(f File, r Rank) Square {
	return Square(int8(r)<<3 | int8(f))
}

// ParseSquare parses a square in algebraic notation, e.g. "e4". "-" is
// parsed as NoSquare.
func ParseSquare(s string) Square {
	if s == "-" {
		return NoSquare
	}
	if len(s) != 2 {
		return NoSquare
	}
	f := File(s[0] - 'a')
	r := Rank1 - Rank(s[1]-'1')
	if f < FileA || f > FileH || r < Rank8 || r > Rank1 {
		return NoSquare
	}
	return NewSquare(f, r)
}

// File returns the file of the square.
func (s Square) File() File {
	return File(s) & 7
}

// Rank returns the rank of the square.
func (s Square) Rank() Rank {
	return Rank(s) >> 3
}

// Mirror returns the square reflected across the board's horizontal
// midline, i.e. rank 1 becomes rank 8 and vice versa. Used to share a
// single piece-square table between both colors (spec.md §4.2).
func (s Square) Mirror() Square {
	return NewSquare(s.File(), Rank1-s.Rank())
}

// String converts a Square into its algebraic notation string.
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return string(rune('a'+s.File())) + string(rune('8'-s.Rank()))
}
