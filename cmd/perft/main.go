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

// Command perft counts the leaf nodes of the legal move tree rooted at
// a position, to a given depth, splitting the root move list across a
// worker goroutine per move.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"

	"go.eightfold.dev/chess/pkg/fen"
	"go.eightfold.dev/chess/pkg/move"
	"go.eightfold.dev/chess/pkg/movegen"
	"go.eightfold.dev/chess/pkg/notation"
	"go.eightfold.dev/chess/pkg/position"
)

func main() {
	fenStr := flag.String("fen", fen.Start, "FEN of the position to search from")
	depth := flag.Int("depth", 5, "perft search depth")
	moves := flag.String("moves", "", "comma separated long-algebraic moves to play before searching")
	quiet := flag.Bool("quiet", false, "suppress the progress bar and per-move breakdown")
	flag.Parse()

	pos, err := fen.Parse(*fenStr)
	if err != nil {
		log.Fatalf("perft: %v", err)
	}

	if *moves != "" {
		for _, s := range strings.Split(*moves, ",") {
			m, err := notation.Parse(pos, s)
			if err != nil {
				log.Fatalf("perft: %v", err)
			}
			pos.MakeMove(m)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	nodes, err := run(ctx, pos, *depth, *quiet)
	if err != nil {
		log.Fatalf("perft: %v", err)
	}

	fmt.Printf("\nnodes: %d\n", nodes)
}

// rootResult pairs a root move with the leaf count below it.
type rootResult struct {
	move  move.Move
	nodes uint64
}

// run splits pos's root moves across one worker goroutine per move,
// each searching its own Clone of pos to depth-1, and accumulates the
// totals. It stops launching new work (but lets in-flight workers
// finish) if ctx is cancelled.
func run(ctx context.Context, pos *position.Position, depth int, quiet bool) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}

	roots := movegen.GenerateInto(pos)

	var bar *progressbar.ProgressBar
	if !quiet {
		bar = progressbar.NewOptions(len(roots),
			progressbar.OptionSetElapsedTime(true),
			progressbar.OptionSetItsString("move"),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
		)
	}

	results := make(chan rootResult, len(roots))
	var wg sync.WaitGroup

	for _, m := range roots {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(m move.Move) {
			defer wg.Done()
			clone := pos.Clone()
			clone.MakeMove(m)
			results <- rootResult{m, perft(clone, depth-1)}
		}(m)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var total uint64
	breakdown := make(map[move.Move]uint64, len(roots))
	for r := range results {
		breakdown[r.move] = r.nodes
		total += r.nodes
		if bar != nil {
			bar.Add(1)
		}
	}

	if !quiet {
		for _, m := range roots {
			fmt.Printf("%s: %d\n", m, breakdown[m])
		}
	}

	return total, ctx.Err()
}

// perft counts the leaf nodes of the legal move tree rooted at pos, to
// the given depth. There is no unmake: every recursive call works off
// its own Clone, matching how this module's make-move has no undo.
func perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := movegen.GenerateInto(pos)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		clone := pos.Clone()
		clone.MakeMove(m)
		nodes += perft(clone, depth-1)
	}
	return nodes
}
