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

package attacks

import (
	"go.eightfold.dev/chess/pkg/attacks/magic"
	"go.eightfold.dev/chess/pkg/bitboard"
	"go.eightfold.dev/chess/pkg/square"
)

// table sizes: the sum, across all 64 squares, of 2^popcount(relevant
// mask) blocker permutations for that square.
const (
	bishopTableSize = 5248
	rookTableSize   = 102400
)

var bishopTable *magic.Table
var rookTable *magic.Table

func init() {
	bishopTable = magic.Build(bishopTableSize, func(sq int, blockers uint64, relevantOnly bool) uint64 {
		return uint64(rayAttacks(square.Square(sq), bitboard.Board(blockers), diagonal, relevantOnly))
	})
	rookTable = magic.Build(rookTableSize, func(sq int, blockers uint64, relevantOnly bool) uint64 {
		return uint64(rayAttacks(square.Square(sq), bitboard.Board(blockers), orthogonal, relevantOnly))
	})
}

// rayAttacks walks every direction in deltas from sq, one square at a
// time, stopping (inclusive) at the first occupied square. When
// relevantOnly is true, the final square of every direction is excluded
// regardless of occupancy — that square never changes the attack set,
// so magic masks leave it out to keep the blocker-subset count small.
func rayAttacks(sq square.Square, occupied bitboard.Board, deltas []delta, relevantOnly bool) bitboard.Board {
	var attacks bitboard.Board
	for _, d := range deltas {
		cur := sq
		for {
			next, ok := step(cur, d)
			if !ok {
				break
			}
			cur = next

			if relevantOnly {
				if _, onBoard := step(cur, d); !onBoard {
					break // cur is the last square of this ray; exclude it
				}
			}

			attacks.Set(cur)
			if occupied.IsSet(cur) {
				break
			}
		}
	}
	return attacks
}

// Bishop returns a bishop's attack set from sq given the board's full
// occupancy.
func Bishop(sq square.Square, occupied bitboard.Board) bitboard.Board {
	return bitboard.Board(bishopTable.Probe(int(sq), uint64(occupied)))
}

// Rook returns a rook's attack set from sq given the board's full
// occupancy.
func Rook(sq square.Square, occupied bitboard.Board) bitboard.Board {
	return bitboard.Board(rookTable.Probe(int(sq), uint64(occupied)))
}

// Queen returns a queen's attack set from sq, the union of a rook's and
// a bishop's attack sets from the same square and occupancy.
func Queen(sq square.Square, occupied bitboard.Board) bitboard.Board {
	return Rook(sq, occupied) | Bishop(sq, occupied)
}

// BishopRays returns the bishop's attack set on an empty board, used to
// find which diagonal sliders could possibly reach a given square
// before consulting the real occupancy.
func BishopRays(sq square.Square) bitboard.Board {
	return bitboard.Board(bishopTable.Entries[sq].MvMask)
}

// RookRays returns the rook's attack set on an empty board, used to
// find which orthogonal sliders could possibly reach a given square
// before consulting the real occupancy.
func RookRays(sq square.Square) bitboard.Board {
	return bitboard.Board(rookTable.Entries[sq].MvMask)
}
