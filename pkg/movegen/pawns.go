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
	"go.eightfold.dev/chess/pkg/move"
	"go.eightfold.dev/chess/pkg/piece"
	"go.eightfold.dev/chess/pkg/square"
)

var promotionTypes = [4]piece.Type{piece.Queen, piece.Rook, piece.Bishop, piece.Knight}

// appendPawnMoves walks every pawn of the side to move one at a time.
// Pawns are the one piece whose pin mask, block mask, and en-passant
// rule interact enough (a pinned pawn's push direction may or may not
// survive the pin; en passant has its own discovered-check veto on top
// of the ordinary pin) that generating per-pawn, rather than with bulk
// shifted-bitboard tricks over the whole pawn set, is what keeps the
// logic easy to get right.
func (s *state) appendPawnMoves(visit Visitor) {
	pos := s.pos
	us := s.us

	var promotionRank, startRank bitboard.Board
	if us == piece.White {
		promotionRank = bitboard.Ranks[square.Rank8]
		startRank = bitboard.Ranks[square.Rank2]
	} else {
		promotionRank = bitboard.Ranks[square.Rank1]
		startRank = bitboard.Ranks[square.Rank7]
	}

	for pawns := pos.Pawns(us); pawns != bitboard.Empty; {
		from := pawns.Pop()

		pinMask := bitboard.Universe
		if pos.Pinned.IsSet(from) {
			pinMask = attacks.Ray[from][s.king]
		}

		s.genPawnPushes(visit, from, pinMask, promotionRank, startRank)
		s.genPawnCaptures(visit, from, pinMask, promotionRank)
	}

	s.appendEnPassant(visit)
}

func (s *state) genPawnPushes(visit Visitor, from square.Square, pinMask, promotionRank, startRank bitboard.Board) {
	pos := s.pos
	us := s.us

	one := from.Up(us)
	if s.occupied.IsSet(one) {
		return
	}

	if pinMask.IsSet(one) && pos.CheckMask.IsSet(one) {
		s.emitPawnMove(visit, from, one, move.Quiet, piece.NoType, promotionRank)
	}

	if !startRank.IsSet(from) {
		return
	}

	two := one.Up(us)
	if s.occupied.IsSet(two) {
		return
	}
	if pinMask.IsSet(two) && pos.CheckMask.IsSet(two) {
		visit(move.New(from, two, piece.Pawn, move.DoublePush, piece.NoType, piece.NoType))
	}
}

func (s *state) genPawnCaptures(visit Visitor, from square.Square, pinMask, promotionRank bitboard.Board) {
	pos := s.pos
	us := s.us

	targets := attacks.Pawn[us][from] & s.enemies & pos.CheckMask & pinMask
	for targets != bitboard.Empty {
		to := targets.Pop()
		captured := s.capturedTypeAt(to)
		s.emitPawnMove(visit, from, to, move.Capture, captured, promotionRank)
	}
}

// emitPawnMove emits a single push or capture, fanning out into the
// four promotion choices when to lands on the mover's last rank.
func (s *state) emitPawnMove(visit Visitor, from, to square.Square, flag move.Flag, captured piece.Type, promotionRank bitboard.Board) {
	if promotionRank.IsSet(to) {
		for _, promo := range promotionTypes {
			visit(move.New(from, to, piece.Pawn, flag, captured, promo))
		}
		return
	}
	visit(move.New(from, to, piece.Pawn, flag, captured, piece.NoType))
}

// appendEnPassant emits the en-passant capture, if legal. This is the
// only move whose legality cannot be decided from from/to plus the
// ordinary pin mask alone: capturing en passant removes two pawns from
// the same rank at once, which can expose the king to a horizontal
// rook or queen pin that no other move pattern can trigger.
func (s *state) appendEnPassant(visit Visitor) {
	pos := s.pos
	ep := pos.EnPassant
	if ep == square.None {
		return
	}

	us, them := s.us, s.them
	king := s.king

	capturedPawn := ep.Down(us)

	// the captured pawn must lie in the check mask, or we must not be
	// in check at all: en passant may resolve a check by removing the
	// checking pawn even though ep itself isn't on the check ray.
	if pos.CheckN != 0 && !pos.CheckMask.IsSet(capturedPawn) {
		return
	}

	for fromBB := attacks.Pawn[them][ep] & pos.Pawns(us); fromBB != bitboard.Empty; {
		from := fromBB.Pop()

		if pos.Pinned.IsSet(from) && !attacks.Ray[from][king].IsSet(ep) {
			continue
		}

		if s.enPassantDiscoversCheck(from, capturedPawn) {
			continue
		}

		visit(move.New(from, ep, piece.Pawn, move.EnPassant, piece.Pawn, piece.NoType))
	}
}

// enPassantDiscoversCheck reports whether removing both from and
// capturedPawn (which always share a rank) would expose the king to an
// enemy rook or queen sliding along that rank.
func (s *state) enPassantDiscoversCheck(from, capturedPawn square.Square) bool {
	king := s.king
	if king.Rank() != capturedPawn.Rank() {
		return false
	}

	rank := bitboard.Ranks[king.Rank()]
	sliders := (s.pos.Rooks(s.them) | s.pos.Queens(s.them)) & rank
	if sliders == bitboard.Empty {
		return false
	}

	blockers := s.occupied &^ (bitboard.Square(from) | bitboard.Square(capturedPawn))
	return attacks.Rook(king, blockers)&sliders != bitboard.Empty
}
