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

package tt

import (
	"testing"

	"gambit/internal/chess"
	"gambit/pkg/eval"
)

func TestStoreProbeRoundTrip(t *testing.T) {
	table := New(1)
	key := chess.Hash(0xC0FFEE)
	move := chess.Move{From: chess.E2, To: chess.E4}

	table.Store(key, 5, Exact, 123, move)

	result, ok := table.Probe(key)
	if !ok {
		t.Fatal("probe missed a just-stored key")
	}
	if result.Value != 123 || result.Bound != Exact || result.Depth != 5 {
		t.Errorf("probe result = %+v, want value=123 bound=Exact depth=5", result)
	}
	if got, ok := table.BestMove(key); !ok || got != move {
		t.Errorf("BestMove(key) = %s, %v; want %s, true", got, ok, move)
	}
}

func TestDeepBucketKeepsShallowestDepth(t *testing.T) {
	table := New(1)
	key := chess.Hash(42)
	moveA := chess.Move{From: chess.A2, To: chess.A4}

	table.Store(key, 1, Exact, 10, moveA)
	table.Store(key, 8, Exact, 90, moveA)

	s := table.slotFor(key)
	if got := s.deep.Load().Depth; got != 1 {
		t.Errorf("deep bucket depth = %d, want 1 (depth-preferred toward shallower entries)", got)
	}
}

func TestShallowBucketOverwritesOnDeeperStore(t *testing.T) {
	table := New(1)
	key := chess.Hash(7)
	moveA := chess.Move{From: chess.A2, To: chess.A4}
	moveB := chess.Move{From: chess.B2, To: chess.B4}

	table.Store(key, 1, Exact, 10, moveA)
	table.Store(key, 8, Exact, 90, moveB)

	s := table.slotFor(key)
	shallow := s.shallow.Load()
	if shallow.Depth != 8 {
		t.Errorf("shallow bucket depth = %d, want 8", shallow.Depth)
	}
	if got, want := shallow.Move, uint16(0); got == want {
		t.Error("shallow bucket move hash should not be empty after storing moveB")
	}
}

func TestProbeMissOnDifferentKey(t *testing.T) {
	table := New(1)
	table.Store(1, 4, Exact, 1, chess.NullMove)
	if _, ok := table.Probe(2); ok {
		t.Error("probe should miss for an unstored key")
	}
}

func TestBestMoveFallsBackToZeroMove(t *testing.T) {
	table := New(1)
	key := chess.Hash(99)
	table.Store(key, 3, UpperBound, eval.Score(-5), chess.NullMove)
	if _, ok := table.BestMove(key); ok {
		t.Error("BestMove should report no move when none was ever stored")
	}
}
