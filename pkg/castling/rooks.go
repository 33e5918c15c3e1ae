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

package castling

import "go.eightfold.dev/chess/pkg/square"

// RookMove describes where a rook travels to during a castling move.
type RookMove struct {
	From, To square.Square
}

// RookMoves is indexed by the king's destination square during castling
// (g1/c1/g8/c8) and gives the matching rook move.
var RookMoves = map[square.Square]RookMove{
	square.G1: {From: square.H1, To: square.F1},
	square.C1: {From: square.A1, To: square.D1},
	square.G8: {From: square.H8, To: square.F8},
	square.C8: {From: square.A8, To: square.D8},
}

// RightUpdates gives, for every square, the castling rights that are
// lost the moment a piece leaves from or arrives at that square — the
// king's home square clears both of its own rights, a rook's home
// square (or the square a rook is captured on) clears that one right.
var RightUpdates [square.N]Rights

func init() {
	RightUpdates[square.E1] = White
	RightUpdates[square.E8] = Black
	RightUpdates[square.A1] = WhiteQueenside
	RightUpdates[square.H1] = WhiteKingside
	RightUpdates[square.A8] = BlackQueenside
	RightUpdates[square.H8] = BlackKingside
}
