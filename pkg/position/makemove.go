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

package position

import (
	"go.eightfold.dev/chess/pkg/attacks"
	"go.eightfold.dev/chess/pkg/bitboard"
	"go.eightfold.dev/chess/pkg/castling"
	"go.eightfold.dev/chess/pkg/move"
	"go.eightfold.dev/chess/pkg/piece"
	"go.eightfold.dev/chess/pkg/square"
	"go.eightfold.dev/chess/pkg/zobrist"
)

// MakeMove applies m, which must have been produced by movegen for
// this exact position, destructively. There is no undo stack: callers
// that need to roll back keep a Clone taken before calling MakeMove.
func (p *Position) MakeMove(m move.Move) {
	us := p.SideToMove
	them := us.Other()

	from := m.From()
	to := m.To()
	mover := m.Piece()
	flag := m.MoveFlag()

	if mover == piece.Pawn || m.IsCapture() {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	if p.EnPassant != square.None {
		p.Hash ^= zobrist.EnPassant[p.EnPassant.File()]
	}
	p.EnPassant = square.None

	p.Hash ^= zobrist.Castling[p.CastlingRights]

	switch flag {
	case move.EnPassant:
		captureSq := to.Down(us)
		p.clearSquare(captureSq)
		p.movePiece(from, to)

	case move.DoublePush:
		p.movePiece(from, to)

		target := from.Up(us)
		// a pawn of ours on target would attack exactly the squares an
		// enemy pawn could attack target from; only record the ep
		// square if such an enemy pawn actually exists, matching the
		// position invariant that ep_file implies a capturing pawn.
		if p.Pawns(them)&attacks.Pawn[us][target] != bitboard.Empty {
			p.EnPassant = target
			p.Hash ^= zobrist.EnPassant[target.File()]
		}

	case move.KingCastle, move.QueenCastle:
		p.movePiece(from, to)
		rookMove := castling.RookMoves[to]
		p.movePiece(rookMove.From, rookMove.To)

	default: // Quiet, Capture
		p.movePiece(from, to)
	}

	if promotion := m.Promotion(); promotion != piece.NoType {
		p.clearSquare(to)
		p.fillSquare(to, piece.New(promotion, us))
	}

	p.CastlingRights &^= castling.RightUpdates[from]
	p.CastlingRights &^= castling.RightUpdates[to]
	p.Hash ^= zobrist.Castling[p.CastlingRights]

	p.SideToMove = them
	p.Hash ^= zobrist.SideToMove
	if p.SideToMove == piece.White {
		p.FullMoves++
	}

	p.DeriveChecks()
}
