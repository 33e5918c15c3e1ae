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

// Package attacks builds and exposes every precomputed attack table the
// move generator needs: king, knight and pawn jump tables, the
// between/ray tables used for pin and check masks, and the magic
// bitboard lookup for sliding pieces. Every table is built once, at
// package init, from the eight unit deltas a piece can step in (plus
// the eight knight jumps for the knight table), and never mutated
// afterwards.
package attacks

import "go.eightfold.dev/chess/pkg/square"

// delta is a one-step (file, rank) offset.
type delta struct{ df, dr int }

// the eight unit deltas a king (or a slider, one ray-step at a time)
// can move in.
var (
	orthogonal = []delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal   = []delta{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allDeltas  = append(append([]delta{}, orthogonal...), diagonal...)

	knightDeltas = []delta{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
)

// step adds d to s, returning (square.None, false) if the result would
// leave the board.
func step(s square.Square, d delta) (square.Square, bool) {
	f := int(s.File()) + d.df
	r := int(s.Rank()) + d.dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return square.None, false
	}
	return square.New(square.File(f), square.Rank(r)), true
}
