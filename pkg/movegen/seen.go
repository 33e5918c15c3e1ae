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

// Package movegen enumerates legal moves for a position: it is the
// only package that decides what is or isn't legal, consuming the
// board state and derived check/pin information package position
// maintains and the precomputed attack tables in package attacks.
package movegen

import (
	"go.eightfold.dev/chess/pkg/attacks"
	"go.eightfold.dev/chess/pkg/bitboard"
	"go.eightfold.dev/chess/pkg/piece"
	"go.eightfold.dev/chess/pkg/position"
)

// seenByEnemy returns every square attacked by color by, with the
// defending (by.Other()) king excluded from the blocker set: a slider
// attacking through the king's current square must still be treated as covering the squares
// behind it, since the king cannot move into them either.
func seenByEnemy(p *position.Position, by piece.Color) bitboard.Board {
	blockers := p.Occupied() &^ p.King(by.Other())

	seen := attacks.PawnsLeft(p.Pawns(by), by) | attacks.PawnsRight(p.Pawns(by), by)

	for knights := p.Knights(by); knights != bitboard.Empty; {
		seen |= attacks.Knight[knights.Pop()]
	}
	for bishops := p.Bishops(by); bishops != bitboard.Empty; {
		seen |= attacks.Bishop(bishops.Pop(), blockers)
	}
	for rooks := p.Rooks(by); rooks != bitboard.Empty; {
		seen |= attacks.Rook(rooks.Pop(), blockers)
	}
	for queens := p.Queens(by); queens != bitboard.Empty; {
		seen |= attacks.Queen(queens.Pop(), blockers)
	}

	seen |= attacks.King[p.Kings[by]]
	return seen
}
