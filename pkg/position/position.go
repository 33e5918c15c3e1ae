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

// Package position holds the board state a game of chess is played on:
// piece placement, side to move, castling and en-passant rights, and
// the derived check/pin information the move generator consumes. It
// owns make-move; it never parses or prints itself (that is package
// fen's job) and never decides which moves are legal (that is package
// movegen's job).
package position

import (
	"fmt"

	"go.eightfold.dev/chess/pkg/bitboard"
	"go.eightfold.dev/chess/pkg/castling"
	"go.eightfold.dev/chess/pkg/piece"
	"go.eightfold.dev/chess/pkg/square"
	"go.eightfold.dev/chess/pkg/zobrist"
)

// Checker describes a single enemy piece giving check to the
// side-to-move's king.
type Checker struct {
	Square square.Square

	// Ray is the full line through Square and the king
	// (attacks.Ray[king][Square]): the rank, file or diagonal they
	// share, or Empty for a knight checker, which shares none.
	Ray bitboard.Board

	// Between holds the squares strictly between Square and the king,
	// empty for contact checkers (knight, pawn) and for a slider
	// standing next to the king.
	Between bitboard.Board
}

// Position is the mutable state of a game in progress.
type Position struct {
	// Pieces holds, per color and piece type, the bitboard of that
	// piece's squares. Pieces[c][piece.NoType] is unused.
	Pieces [piece.ColorN][piece.TypeN]bitboard.Board

	// Colors holds, per color, the union of every piece bitboard of
	// that color. Must always equal the XOR of Pieces[c][*].
	Colors [piece.ColorN]bitboard.Board

	// Kings caches each color's king square, since it is looked up on
	// almost every move generated.
	Kings [piece.ColorN]square.Square

	SideToMove     piece.Color
	CastlingRights castling.Rights

	// EnPassant is the square a pawn may capture to en passant, or
	// square.None if the previous move wasn't a double push.
	EnPassant square.Square

	HalfMoveClock int
	FullMoves     int

	// Hash is the position's Zobrist key, maintained incrementally by
	// every mutation below.
	Hash zobrist.Key

	// CheckN, Checkers and CheckMask are recomputed by DeriveChecks
	// after every make-move, for the side now to move. CheckMask is
	// the block-or-capture mask: Universe when not in check, Empty
	// under double check, and checker∪between otherwise.
	CheckN    int
	Checkers  [2]Checker
	CheckMask bitboard.Board

	// Pinned holds every square.Square of side_to_move's pieces that
	// are absolutely pinned against their own king.
	Pinned bitboard.Board
}

// New returns an empty Position (no pieces, White to move, no
// castling or en-passant rights). Callers typically populate it via
// package fen rather than by hand.
func New() *Position {
	p := &Position{
		EnPassant: square.None,
		FullMoves: 1,
	}
	p.Kings[piece.White] = square.None
	p.Kings[piece.Black] = square.None
	return p
}

// Clone returns an independent copy of p. Used by perft and search
// callers that explore alternatives without an undo stack.
func (p *Position) Clone() *Position {
	clone := *p
	return &clone
}

// String renders the position as an 8x8 board, rank 8 first.
func (p *Position) String() string {
	var s string
	for r := square.Rank(7); r >= 0; r-- {
		for f := square.File(0); f < square.FileN; f++ {
			s += p.PieceAt(square.New(f, r)).String()
			if f != square.FileH {
				s += " "
			}
		}
		s += "\n"
	}
	return s + fmt.Sprintf("side to move: %s, castling: %s, ep: %s, hash: %016x",
		p.SideToMove, p.CastlingRights, p.EnPassant, uint64(p.Hash))
}

// PieceAt returns the piece standing on s, or piece.NoPiece if it is
// empty.
func (p *Position) PieceAt(s square.Square) piece.Piece {
	for c := piece.White; c < piece.ColorN; c++ {
		if !p.Colors[c].IsSet(s) {
			continue
		}
		for t := piece.Pawn; t <= piece.King; t++ {
			if p.Pieces[c][t].IsSet(s) {
				return piece.New(t, c)
			}
		}
	}
	return piece.NoPiece
}

// Occupied returns every occupied square on the board.
func (p *Position) Occupied() bitboard.Board {
	return p.Colors[piece.White] | p.Colors[piece.Black]
}

// Pawns, Knights, Bishops, Rooks, Queens and King return the bitboard
// of that piece type belonging to c.
func (p *Position) Pawns(c piece.Color) bitboard.Board   { return p.Pieces[c][piece.Pawn] }
func (p *Position) Knights(c piece.Color) bitboard.Board { return p.Pieces[c][piece.Knight] }
func (p *Position) Bishops(c piece.Color) bitboard.Board { return p.Pieces[c][piece.Bishop] }
func (p *Position) Rooks(c piece.Color) bitboard.Board   { return p.Pieces[c][piece.Rook] }
func (p *Position) Queens(c piece.Color) bitboard.Board  { return p.Pieces[c][piece.Queen] }
func (p *Position) King(c piece.Color) bitboard.Board    { return p.Pieces[c][piece.King] }

// IsInCheck reports whether c's king is currently attacked. Valid only
// when c == SideToMove, since Checkers/CheckN are only maintained for
// the side to move.
func (p *Position) IsInCheck(c piece.Color) bool {
	if c != p.SideToMove {
		panic("position: IsInCheck queried for side not to move")
	}
	return p.CheckN > 0
}

// PlaceForSetup places pc on s, bypassing move-making. Intended for
// package fen and test code building a Position from scratch; s must
// be empty.
func (p *Position) PlaceForSetup(s square.Square, pc piece.Piece) {
	p.fillSquare(s, pc)
}

// clearSquare removes whatever piece stands on s from every record,
// XORing its Zobrist contribution out. It is a no-op if s is empty.
func (p *Position) clearSquare(s square.Square) {
	pc := p.PieceAt(s)
	if pc == piece.NoPiece {
		return
	}
	c, t := pc.Color(), pc.Type()
	p.Pieces[c][t].Unset(s)
	p.Colors[c].Unset(s)
	p.Hash ^= zobrist.PieceSquare[pc][s]
}

// fillSquare places pc on s, which must currently be empty, XORing in
// its Zobrist contribution.
func (p *Position) fillSquare(s square.Square, pc piece.Piece) {
	c, t := pc.Color(), pc.Type()
	p.Pieces[c][t].Set(s)
	p.Colors[c].Set(s)
	if t == piece.King {
		p.Kings[c] = s
	}
	p.Hash ^= zobrist.PieceSquare[pc][s]
}

// movePiece relocates whatever stands on from to to, clearing to
// first (a capture). Both squares' Zobrist contributions are updated.
func (p *Position) movePiece(from, to square.Square) {
	pc := p.PieceAt(from)
	p.clearSquare(from)
	p.clearSquare(to)
	p.fillSquare(to, pc)
}
