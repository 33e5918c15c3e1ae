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
	"go.eightfold.dev/chess/pkg/piece"
	"go.eightfold.dev/chess/pkg/square"
)

// King holds the one-step king attack set from every square.
var King [square.N]bitboard.Board

// Knight holds the knight jump attack set from every square.
var Knight [square.N]bitboard.Board

// Pawn holds the two diagonal capture targets of a pawn of the given
// color from every square (empty on that color's promotion rank, since
// a pawn never stands there).
var Pawn [piece.ColorN][square.N]bitboard.Board

func init() {
	for s := square.A1; s <= square.H8; s++ {
		for _, d := range allDeltas {
			if to, ok := step(s, d); ok {
				King[s].Set(to)
			}
		}

		for _, d := range knightDeltas {
			if to, ok := step(s, d); ok {
				Knight[s].Set(to)
			}
		}

		if to, ok := step(s, delta{1, 1}); ok {
			Pawn[piece.White][s].Set(to)
		}
		if to, ok := step(s, delta{-1, 1}); ok {
			Pawn[piece.White][s].Set(to)
		}

		if to, ok := step(s, delta{1, -1}); ok {
			Pawn[piece.Black][s].Set(to)
		}
		if to, ok := step(s, delta{-1, -1}); ok {
			Pawn[piece.Black][s].Set(to)
		}
	}
}

// PawnPush returns the result of pushing every pawn in pawns one square
// forward from color's point of view.
func PawnPush(pawns bitboard.Board, color piece.Color) bitboard.Board {
	return pawns.Up(color)
}

// PawnsLeft returns the result of every pawn in pawns capturing towards
// the a-file, from color's point of view.
func PawnsLeft(pawns bitboard.Board, color piece.Color) bitboard.Board {
	return pawns.Up(color).West()
}

// PawnsRight returns the result of every pawn in pawns capturing towards
// the h-file, from color's point of view.
func PawnsRight(pawns bitboard.Board, color piece.Color) bitboard.Board {
	return pawns.Up(color).East()
}
