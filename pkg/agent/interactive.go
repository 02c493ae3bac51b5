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
	"bufio"
	"fmt"
	"io"
	"strings"

	"gambit/internal/chess"
)

// InteractiveAgent reads a UCI-style long algebraic move (e.g. "e2e4",
// "e7e8q") from in, re-prompting on a malformed or illegal string. The
// literal string "resign" returns Resign instead of a move.
type InteractiveAgent struct {
	in  *bufio.Reader
	out io.Writer
}

// NewInteractiveAgent wraps in for buffered line reading and writes
// prompts and error messages to out.
func NewInteractiveAgent(in io.Reader, out io.Writer) *InteractiveAgent {
	return &InteractiveAgent{in: bufio.NewReader(in), out: out}
}

func (a *InteractiveAgent) GetAction(pos *chess.Position) Action {
	legal := pos.GenerateMoves()

	for {
		fmt.Fprint(a.out, "move (long algebraic, or resign): ")

		line, err := a.in.ReadString('\n')
		if err != nil {
			return Action{Kind: Resign}
		}

		text := strings.ToLower(strings.TrimSpace(line))
		switch text {
		case "":
			continue
		case "resign":
			return Action{Kind: Resign}
		case "draw":
			return Action{Kind: OfferDraw}
		}

		move := chess.ParseMove(text, pos)
		if !isLegal(move, legal) {
			fmt.Fprintln(a.out, "illegal or unparseable move, try again")
			continue
		}
		return Action{Kind: MakeMove, Move: move}
	}
}

func isLegal(m chess.Move, legal []chess.Move) bool {
	for _, l := range legal {
		if l == m {
			return true
		}
	}
	return false
}
