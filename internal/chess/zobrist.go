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

// Hash is a Zobrist hash key identifying a position.
type Hash uint64

// zobristPRNG is the xorshift64star pseudo-random number generator,
// originally written and dedicated to the public domain by Sebastiano
// Vigna (2014). Used only to build the fixed Zobrist key tables below,
// seeded deterministically so hashes are stable across runs.
type zobristPRNG struct {
	seed uint64
}

func (p *zobristPRNG) Uint64() uint64 {
	p.seed ^= p.seed >> 12
	p.seed ^= p.seed << 25
	p.seed ^= p.seed >> 27
	return p.seed * 2685821657736338717
}

var (
	zobristPieceSquare [PieceN][N]Hash
	zobristEnPassant   [8]Hash
	zobristCastling    [CastlingN]Hash
	zobristSideToMove  Hash
)

func init() {
	rng := zobristPRNG{seed: 1070372} // seed used by Stockfish

	for p := Piece(0); p < PieceN; p++ {
		for s := Square(0); s < N; s++ {
			zobristPieceSquare[p][s] = Hash(rng.Uint64())
		}
	}

	for f := FileA; f <= FileH; f++ {
		zobristEnPassant[f] = Hash(rng.Uint64())
	}

	for c := 0; c < CastlingN; c++ {
		zobristCastling[c] = Hash(rng.Uint64())
	}

	zobristSideToMove = Hash(rng.Uint64())
}
