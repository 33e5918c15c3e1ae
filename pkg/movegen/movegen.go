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

package movegen

import (
	"go.eightfold.dev/chess/pkg/attacks"
	"go.eightfold.dev/chess/pkg/bitboard"
	"go.eightfold.dev/chess/pkg/castling"
	"go.eightfold.dev/chess/pkg/move"
	"go.eightfold.dev/chess/pkg/piece"
	"go.eightfold.dev/chess/pkg/position"
	"go.eightfold.dev/chess/pkg/square"
)

// Visitor is called once per legal move by Generate.
type Visitor func(move.Move)

// state bundles the per-call context every move-emitting helper below
// needs, so none of them have to recompute it or thread ten
// parameters through each other.
type state struct {
	pos *position.Position

	us, them piece.Color

	friends, enemies, occupied bitboard.Board

	king square.Square

	// target holds the destination squares any non-king piece may
	// move to: empty of friends, and narrowed to the block-or-capture
	// mask when in single check.
	target bitboard.Board

	seenByEnemy bitboard.Board
}

// Generate calls visit once for every legal move available to the
// side to move in pos, in unspecified but deterministic order.
func Generate(pos *position.Position, visit Visitor) {
	s := newState(pos)

	s.king = pos.Kings[s.us]
	s.appendKingMoves(visit)

	if pos.CheckN >= 2 {
		// double check: only the king may move
		return
	}

	s.appendPawnMoves(visit)
	s.appendKnightMoves(visit)
	s.appendSliderMoves(visit, piece.Bishop, pos.Bishops(s.us))
	s.appendSliderMoves(visit, piece.Rook, pos.Rooks(s.us))
	s.appendSliderMoves(visit, piece.Queen, pos.Queens(s.us))
}

// GenerateInto is a convenience wrapper around Generate that collects
// every legal move into a slice.
func GenerateInto(pos *position.Position) []move.Move {
	// 31 is the average number of legal moves in a chess position:
	// https://chess.stackexchange.com/a/24325/33336
	moves := make([]move.Move, 0, 31)
	Generate(pos, func(m move.Move) {
		moves = append(moves, m)
	})
	return moves
}

func newState(pos *position.Position) *state {
	us := pos.SideToMove
	them := us.Other()

	s := &state{
		pos:      pos,
		us:       us,
		them:     them,
		friends:  pos.Colors[us],
		enemies:  pos.Colors[them],
		occupied: pos.Occupied(),
	}
	s.target = ^s.friends & pos.CheckMask
	s.seenByEnemy = seenByEnemy(pos, them)
	return s
}

// capturedTypeAt returns the enemy piece type standing on to, or
// piece.NoType if to is empty — used to fill in a capture's Captured
// field.
func (s *state) capturedTypeAt(to square.Square) piece.Type {
	for t := piece.Pawn; t <= piece.King; t++ {
		if s.pos.Pieces[s.them][t].IsSet(to) {
			return t
		}
	}
	return piece.NoType
}

// emit serializes a destination bitboard into moves of the given
// piece type from from, determining Quiet vs Capture (and the
// captured kind) from board occupancy.
func (s *state) emit(visit Visitor, p piece.Type, from square.Square, to bitboard.Board) {
	for to != bitboard.Empty {
		dst := to.Pop()
		if s.enemies.IsSet(dst) {
			visit(move.New(from, dst, p, move.Capture, s.capturedTypeAt(dst), piece.NoType))
		} else {
			visit(move.New(from, dst, p, move.Quiet, piece.NoType, piece.NoType))
		}
	}
}

func (s *state) appendKingMoves(visit Visitor) {
	pos := s.pos
	king := s.king

	targets := attacks.King[king] &^ s.friends &^ s.seenByEnemy
	s.emit(visit, piece.King, king, targets)

	if pos.CheckN != 0 {
		return
	}

	s.appendCastling(visit)
}

func (s *state) appendCastling(visit Visitor) {
	pos := s.pos
	rights := pos.CastlingRights

	var kingside, queenside castling.Rights
	var kingTo, queenTo square.Square
	var kingsideEmpty, kingsideSafe, queensideEmpty, queensideSafe bitboard.Board

	if s.us == piece.White {
		kingside, queenside = castling.WhiteKingside, castling.WhiteQueenside
		kingTo, queenTo = square.G1, square.C1
		kingsideEmpty, kingsideSafe = bitboard.F1G1, bitboard.F1G1
		queensideEmpty, queensideSafe = bitboard.B1C1D1, bitboard.C1D1
	} else {
		kingside, queenside = castling.BlackKingside, castling.BlackQueenside
		kingTo, queenTo = square.G8, square.C8
		kingsideEmpty, kingsideSafe = bitboard.F8G8, bitboard.F8G8
		queensideEmpty, queensideSafe = bitboard.B8C8D8, bitboard.C8D8
	}

	if rights&kingside != 0 &&
		s.occupied&kingsideEmpty == bitboard.Empty &&
		s.seenByEnemy&kingsideSafe == bitboard.Empty {
		visit(move.New(s.king, kingTo, piece.King, move.KingCastle, piece.NoType, piece.NoType))
	}

	if rights&queenside != 0 &&
		s.occupied&queensideEmpty == bitboard.Empty &&
		s.seenByEnemy&queensideSafe == bitboard.Empty {
		visit(move.New(s.king, queenTo, piece.King, move.QueenCastle, piece.NoType, piece.NoType))
	}
}

func (s *state) appendKnightMoves(visit Visitor) {
	// a pinned knight can never legally move: every square it jumps to
	// leaves the king's ray, so the pin mask would be empty anyway.
	knights := s.pos.Knights(s.us) &^ s.pos.Pinned
	for knights != bitboard.Empty {
		from := knights.Pop()
		s.emit(visit, piece.Knight, from, attacks.Knight[from]&s.target)
	}
}

func (s *state) appendSliderMoves(visit Visitor, t piece.Type, pieces bitboard.Board) {
	rayAttacks := func(from square.Square) bitboard.Board {
		switch t {
		case piece.Bishop:
			return attacks.Bishop(from, s.occupied)
		case piece.Rook:
			return attacks.Rook(from, s.occupied)
		default:
			return attacks.Queen(from, s.occupied)
		}
	}

	unpinned := pieces &^ s.pos.Pinned
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		s.emit(visit, t, from, rayAttacks(from)&s.target)
	}

	pinned := pieces & s.pos.Pinned
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		s.emit(visit, t, from, rayAttacks(from)&s.target&attacks.Ray[from][s.king])
	}
}
