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
	"strings"
	"testing"

	"gambit/internal/chess"
)

func TestAlphaBetaAgentReturnsMakeMove(t *testing.T) {
	pos := chess.StartingPosition()
	a := NewAlphaBetaAgent(2, 1, nil)

	action := a.GetAction(pos)
	if action.Kind != MakeMove {
		t.Fatalf("Kind = %v, want MakeMove", action.Kind)
	}
	if action.Move.IsZero() {
		t.Error("expected a non-zero move")
	}
}

func TestAlphaBetaAgentRetainsTableAcrossMoves(t *testing.T) {
	pos := chess.StartingPosition()
	a := NewAlphaBetaAgent(2, 1, nil)

	a.GetAction(pos)
	if _, hit := a.ctx.Table.Probe(pos.Hash); !hit {
		t.Fatal("expected the starting position to be cached after the first GetAction call")
	}

	pos.MakeMove(chess.Move{From: chess.E2, To: chess.E4})
	a.GetAction(pos)
	if _, hit := a.ctx.Table.Probe(pos.Hash); !hit {
		t.Fatal("expected the post-e4 position to be cached after the second GetAction call")
	}

	a.NewGame()
	if _, hit := a.ctx.Table.Probe(pos.Hash); hit {
		t.Error("expected NewGame to clear previously cached entries")
	}
}

func TestRandomAgentReturnsLegalMove(t *testing.T) {
	pos := chess.StartingPosition()
	a := &RandomAgent{Rand: rand.New(rand.NewSource(1))}

	action := a.GetAction(pos)
	if action.Kind != MakeMove {
		t.Fatalf("Kind = %v, want MakeMove", action.Kind)
	}
	if !isLegal(action.Move, pos.GenerateMoves()) {
		t.Errorf("%s is not a legal move from the starting position", action.Move)
	}
}

func TestRandomAgentResignsWithNoMoves(t *testing.T) {
	pos, err := chess.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	a := &RandomAgent{}
	if action := a.GetAction(pos); action.Kind != Resign {
		t.Errorf("Kind = %v, want Resign on stalemate (no legal moves)", action.Kind)
	}
}

func TestInteractiveAgentReprompts(t *testing.T) {
	pos := chess.StartingPosition()
	in := strings.NewReader("not a move\ne9e9\ne2e4\n")
	var out strings.Builder

	a := NewInteractiveAgent(in, &out)
	action := a.GetAction(pos)

	want := chess.Move{From: chess.E2, To: chess.E4}
	if action.Kind != MakeMove || action.Move != want {
		t.Errorf("got %+v, want MakeMove %s", action, want)
	}
}

func TestInteractiveAgentResign(t *testing.T) {
	pos := chess.StartingPosition()
	in := strings.NewReader("resign\n")
	var out strings.Builder

	a := NewInteractiveAgent(in, &out)
	if action := a.GetAction(pos); action.Kind != Resign {
		t.Errorf("Kind = %v, want Resign", action.Kind)
	}
}
