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

package attacks

import (
	"go.eightfold.dev/chess/pkg/bitboard"
	"go.eightfold.dev/chess/pkg/square"
)

// Between[a][b] holds the squares strictly between a and b, exclusive
// of both ends, along the rank, file, or diagonal that connects them
// (empty if a and b don't share one, or are the same square). Used to
// build the block-or-capture mask against a single checking slider:
// Between[king][checker] | Squares[checker].
var Between [square.N][square.N]bitboard.Board

// Ray[a][b] holds the entire rank, file, or diagonal shared by a and b,
// from edge to edge (empty if they share none). A piece pinned between
// its king and an enemy slider may only move along Ray[king][piece],
// since leaving that line would expose the king.
var Ray [square.N][square.N]bitboard.Board

func init() {
	for from := square.A1; from <= square.H8; from++ {
		for _, d := range allDeltas {
			between := bitboard.Empty
			cur := from
			for {
				next, ok := step(cur, d)
				if !ok {
					break
				}
				Between[from][next] = between
				between.Set(next)
				cur = next
			}
		}

		for to := square.A1; to <= square.H8; to++ {
			switch {
			case from == to:
				continue
			case from.File() == to.File():
				Ray[from][to] = bitboard.Files[from.File()]
			case from.Rank() == to.Rank():
				Ray[from][to] = bitboard.Ranks[from.Rank()]
			case from.Diagonal() == to.Diagonal():
				Ray[from][to] = bitboard.Diagonals[from.Diagonal()]
			case from.AntiDiagonal() == to.AntiDiagonal():
				Ray[from][to] = bitboard.AntiDiagonals[from.AntiDiagonal()]
			}
		}
	}
}
