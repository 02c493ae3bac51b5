// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Command play runs an interactive REPL against the search, with a
// plain-text board redrawn after every ply.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gambit/internal/chess"
	"gambit/pkg/agent"
	"gambit/pkg/search"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	fen := flag.String("from", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "starting position, in FEN")
	color := flag.String("color", "White", "the side you play: White or Black")
	depth := flag.Int("depth", 8, "engine search depth (1-10)")
	flag.Parse()

	d := *depth
	if d < 1 {
		d = 1
	}
	if d > 10 {
		d = 10
	}

	pos, err := chess.FromFEN(*fen)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}

	human := chess.White
	switch strings.ToLower(*color) {
	case "white":
		human = chess.White
	case "black":
		human = chess.Black
	default:
		return fmt.Errorf("play: -color must be White or Black")
	}

	white := newAgent(human == chess.White, d)
	black := newAgent(human == chess.Black, d)

	fmt.Println(pos)
	for {
		moves := pos.GenerateMoves()
		status := pos.Status(moves)
		if status != chess.Ongoing {
			fmt.Println("game over:", status)
			return nil
		}

		turn := white
		if pos.SideToMove == chess.Black {
			turn = black
		}

		action := turn.GetAction(pos)
		switch action.Kind {
		case agent.Resign:
			fmt.Println(pos.SideToMove, "resigns")
			return nil
		case agent.OfferDraw, agent.AcceptDraw, agent.DeclareDraw:
			fmt.Println("draw")
			return nil
		default:
			fmt.Println(pos.SideToMove, "plays", action.Move)
			pos.MakeMove(action.Move)
			fmt.Println(pos)
		}
	}
}

func newAgent(isHuman bool, depth int) agent.Agent {
	if isHuman {
		return agent.NewInteractiveAgent(os.Stdin, os.Stdout)
	}
	return agent.NewAlphaBetaAgent(depth, 0, func(r search.Report) {
		fmt.Printf("info depth %d score %d nodes %d pv %s\n", r.Depth, r.Score, r.Nodes, r.PV)
	})
}
