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

// Command analyze prints the move the search considers best in a given
// position.
package main

import (
	"flag"
	"fmt"
	"os"

	"gambit/internal/chess"
	"gambit/pkg/search"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	fen := flag.String("fen", "", "position to analyze, in FEN")
	depth := flag.Int("depth", 8, "search depth (1-10)")
	flag.Parse()

	if *fen == "" {
		return fmt.Errorf("analyze: -fen is required")
	}

	d := *depth
	if d < 1 {
		d = 1
	}
	if d > 10 {
		d = 10
	}

	pos, err := chess.FromFEN(*fen)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	ctx := search.NewContext(pos, func(r search.Report) {
		fmt.Printf("info depth %d score %d nodes %d pv %s\n", r.Depth, r.Score, r.Nodes, r.PV)
	}, 0)

	move, _ := ctx.Search(d)
	fmt.Println(move)
	return nil
}
