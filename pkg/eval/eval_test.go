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

package eval

import (
	"testing"

	"gambit/internal/chess"
)

func TestStartingPositionIsBalanced(t *testing.T) {
	pos := chess.StartingPosition()
	if got := Evaluate(pos); got != 0 {
		t.Errorf("Evaluate(start) = %d, want 0", got)
	}
}

func TestAfterE4BlackEvalIsNonPositive(t *testing.T) {
	pos := chess.StartingPosition()
	pos.MakeMove(chess.Move{From: chess.E2, To: chess.E4})
	if got := Evaluate(pos); got > 0 {
		t.Errorf("Evaluate(after e4, black to move) = %d, want <= 0", got)
	}
}

func TestEvaluateTerminal(t *testing.T) {
	if got := EvaluateTerminal(chess.Stalemate); got != Draw {
		t.Errorf("EvaluateTerminal(Stalemate) = %d, want %d", got, Draw)
	}
	if got := EvaluateTerminal(chess.Checkmate); got != -Mate {
		t.Errorf("EvaluateTerminal(Checkmate) = %d, want %d", got, -Mate)
	}
}
