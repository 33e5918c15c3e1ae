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

package position

import (
	"go.eightfold.dev/chess/pkg/attacks"
	"go.eightfold.dev/chess/pkg/bitboard"
	"go.eightfold.dev/chess/pkg/piece"
	"go.eightfold.dev/chess/pkg/square"
)

// DeriveChecks recomputes Checkers, CheckN, CheckMask and Pinned for
// the side now to move. Called once at the end of MakeMove, and once
// after constructing a Position from FEN.
//
// A pawn and a knight can never both be checking the king at once,
// since neither is a slider and so neither move can reveal the other;
// at most one contact checker is therefore possible alongside at most
// one slider checker, which is why the loops below simply accumulate
// into CheckN and OR into CheckMask rather than needing a combined
// tie-break.
func (p *Position) DeriveChecks() {
	us := p.SideToMove
	them := us.Other()

	p.CheckN = 0
	p.Checkers = [2]Checker{}
	p.CheckMask = bitboard.Empty
	p.Pinned = bitboard.Empty

	king := p.Kings[us]
	occupied := p.Occupied()

	p.findContactChecker(king, us, them)

	friends := p.Colors[us]

	rookLike := (p.Rooks(them) | p.Queens(them)) & attacks.RookRays(king)
	for rookLike != bitboard.Empty {
		s := rookLike.Pop()
		p.considerSlider(king, s, friends, occupied)
	}

	bishopLike := (p.Bishops(them) | p.Queens(them)) & attacks.BishopRays(king)
	for bishopLike != bitboard.Empty {
		s := bishopLike.Pop()
		p.considerSlider(king, s, friends, occupied)
	}

	switch {
	case p.CheckN == 0:
		p.CheckMask = bitboard.Universe
	case p.CheckN >= 2:
		// double check: only king moves are legal, so the
		// block-or-capture mask is moot; leave it empty rather than
		// the union of both checks, which would be meaningless.
		p.CheckMask = bitboard.Empty
	}
}

// findContactChecker records a pawn or knight checker of the king on
// kingSq, if one exists. Pawn and knight attacks are symmetric (the
// squares a piece standing on kingSq of that type would attack are
// exactly the squares a checking piece of that type must stand on), so
// the king's own attack tables double as the search.
func (p *Position) findContactChecker(kingSq square.Square, us, them piece.Color) {
	if pawns := p.Pawns(them) & attacks.Pawn[us][kingSq]; pawns != bitboard.Empty {
		p.addChecker(kingSq, pawns.FirstOne(), bitboard.Empty)
		return
	}
	if knights := p.Knights(them) & attacks.Knight[kingSq]; knights != bitboard.Empty {
		p.addChecker(kingSq, knights.FirstOne(), bitboard.Empty)
	}
}

// considerSlider tests whether the slider on square s (already known
// to be an enemy rook/bishop/queen whose empty-board ray reaches king)
// actually checks or pins against the real, occupied board: zero
// blockers between them means check, exactly one friendly blocker
// means that piece is pinned, anything else has no effect.
func (p *Position) considerSlider(king, s square.Square, friends bitboard.Board, occupied bitboard.Board) {
	between := attacks.Between[king][s]
	blockers := between & occupied

	switch blockers.Count() {
	case 0:
		p.addChecker(king, s, between)
	case 1:
		if blockers&friends != bitboard.Empty {
			p.Pinned |= blockers
		}
	}
}

// addChecker records a checker giving check from square s, and folds
// it into CheckN/CheckMask. between is Empty for contact checkers,
// collapsing the block-or-capture mask to the checker's own square.
func (p *Position) addChecker(king, s square.Square, between bitboard.Board) {
	if p.CheckN < 2 {
		p.Checkers[p.CheckN] = Checker{
			Square:  s,
			Ray:     attacks.Ray[king][s],
			Between: between,
		}
	}
	p.CheckN++
	if p.CheckN <= 2 {
		p.CheckMask |= between | bitboard.Square(s)
	}
}
