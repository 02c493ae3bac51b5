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

package order

import (
	"testing"

	"gambit/internal/chess"
)

func TestTTHintComesFirst(t *testing.T) {
	pos := chess.StartingPosition()
	moves := pos.GenerateMoves()
	hint := moves[len(moves)-1]

	l := New(pos, moves, hint)
	if got := l.Next(); got != hint {
		t.Errorf("first move = %s, want tt hint %s", got, hint)
	}
}

func TestCapturesOrderedByMvvLva(t *testing.T) {
	// white queen on e4 can capture either the knight on d5 or the rook
	// on e5; the rook (more valuable victim) should score higher.
	pos, err := chess.FromFEN("4k3/8/8/3nr3/4Q3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	moves := pos.GenerateMoves()
	l := New(pos, moves, chess.NullMove)

	var firstCapture chess.Move
	for l.Len() > 0 {
		m := l.Next()
		if pos.Mailbox[m.To] != chess.NoPiece {
			firstCapture = m
			break
		}
	}
	if firstCapture.To != chess.E5 {
		t.Fatalf("first capture = %s (to %s), want capture of the rook on e5", firstCapture, firstCapture.To)
	}
}

func TestSortedCapturesOnlyIncludesCaptures(t *testing.T) {
	pos := chess.StartingPosition()
	moves := pos.GenerateMoves()
	captures := SortedCaptures(pos, moves)
	if len(captures) != 0 {
		t.Errorf("len(captures) = %d, want 0 in the starting position", len(captures))
	}
}
