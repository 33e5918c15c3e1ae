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

// Package zobrist holds the random numbers used to maintain a
// position's incremental hash: one per (piece, square) pair, one per
// possible en passant file, one per castling rights combination, and
// one for the side to move. A position's key is the XOR of the numbers
// for every feature currently true of it; make-move updates the key by
// XORing out stale features and XORing in new ones, rather than
// recomputing it from scratch.
package zobrist

import (
	"go.eightfold.dev/chess/internal/util"
	"go.eightfold.dev/chess/pkg/castling"
	"go.eightfold.dev/chess/pkg/piece"
	"go.eightfold.dev/chess/pkg/square"
)

// Key is a Zobrist hash.
type Key uint64

// PieceSquare holds one random number per (piece, square) pair.
var PieceSquare [piece.N][square.N]Key

// EnPassant holds one random number per possible en passant file.
var EnPassant [square.FileN]Key

// Castling holds one random number per castling rights combination.
var Castling [castling.N]Key

// SideToMove is XORed into the key whenever it is black to move.
var SideToMove Key

func init() {
	var rng util.PRNG
	rng.Seed(1070372) // seed used by Stockfish

	for p := piece.Piece(0); p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f < square.FileN; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := castling.None; r <= castling.All; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}
