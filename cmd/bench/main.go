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

// Command bench runs a fixed suite of positions to a fixed depth and
// plots nodes-searched-per-position, a visual form of the node-count
// regression test spec.md §8 calls for.
package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"gambit/internal/chess"
	"gambit/pkg/search"
)

// suite is a small fixed set of positions exercising the opening,
// a tactical middlegame shot, and a simple endgame mate.
var suite = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	"7k/8/6K1/6Q1/8/8/8/8 w - - 0 1",
}

const benchDepth = 4

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	progress := progressbar.NewOptions(
		len(suite),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("position"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	labels := make([]string, 0, len(suite))
	nodes := make([]opts.BarData, 0, len(suite))

	for i, fen := range suite {
		pos, err := chess.FromFEN(fen)
		if err != nil {
			return fmt.Errorf("bench: position %d: %w", i, err)
		}

		ctx := search.NewContext(pos, nil, 0)
		ctx.Search(benchDepth)

		labels = append(labels, fmt.Sprintf("pos %d", i+1))
		nodes = append(nodes, opts.BarData{Value: ctx.Nodes()})

		_ = progress.Add(1)
	}
	_ = progress.Close()

	chart := charts.NewBar()
	chart.SetXAxis(labels).AddSeries("nodes searched", nodes)

	f, err := os.Create("bench-nodes.html")
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	defer f.Close()

	return chart.Render(f)
}
