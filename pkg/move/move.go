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

// Package move declares the Move value type emitted by the generator
// and consumed by make-move.
package move

import (
	"go.eightfold.dev/chess/pkg/piece"
	"go.eightfold.dev/chess/pkg/square"
)

// Flag classifies the special handling a move needs during make-move.
// Ordinary captures and quiet moves of every piece type share the same
// two flags; only pawn double pushes, en passant, and castling get
// their own, since those are the moves that touch more than the
// from/to squares or otherwise don't follow from piece+target alone.
type Flag uint8

const (
	Quiet Flag = iota
	Capture
	DoublePush
	KingCastle
	QueenCastle
	EnPassant
)

// Move represents a single chess move.
//
// Format: MSB -> LSB
// [23 promotion piece.Type 21][20 captured piece.Type 18] \
// [17 flag Flag 15][14 piece piece.Type 12] \
// [11 to square.Square 6][05 from square.Square 00]
type Move uint32

// Null represents a "do nothing" move, encoded as all zero bits.
const Null Move = 0

const (
	fromWidth      = 6
	toWidth        = 6
	pieceWidth     = 3
	flagWidth      = 3
	capturedWidth  = 3
	promotionWidth = 3

	fromOffset      = 0
	toOffset        = fromOffset + fromWidth
	pieceOffset     = toOffset + toWidth
	flagOffset      = pieceOffset + pieceWidth
	capturedOffset  = flagOffset + flagWidth
	promotionOffset = capturedOffset + capturedWidth

	fromMask      = 1<<fromWidth - 1
	toMask        = 1<<toWidth - 1
	pieceMask     = 1<<pieceWidth - 1
	flagMask      = 1<<flagWidth - 1
	capturedMask  = 1<<capturedWidth - 1
	promotionMask = 1<<promotionWidth - 1
)

// New creates a Move. captured and promotion should be piece.NoType
// when not applicable; flag selects the special-case handling make-move
// needs (see Flag).
func New(from, to square.Square, p piece.Type, flag Flag, captured, promotion piece.Type) Move {
	m := Move(from) << fromOffset
	m |= Move(to) << toOffset
	m |= Move(p) << pieceOffset
	m |= Move(flag) << flagOffset
	m |= Move(captured) << capturedOffset
	m |= Move(promotion) << promotionOffset
	return m
}

// From returns the move's source square.
func (m Move) From() square.Square {
	return square.Square((m >> fromOffset) & fromMask)
}

// To returns the move's target square.
func (m Move) To() square.Square {
	return square.Square((m >> toOffset) & toMask)
}

// Piece returns the type of piece being moved.
func (m Move) Piece() piece.Type {
	return piece.Type((m >> pieceOffset) & pieceMask)
}

// MoveFlag returns the move's Flag.
func (m Move) MoveFlag() Flag {
	return Flag((m >> flagOffset) & flagMask)
}

// Captured returns the type of the captured piece, or piece.NoType if
// the move is not a capture.
func (m Move) Captured() piece.Type {
	return piece.Type((m >> capturedOffset) & capturedMask)
}

// Promotion returns the promoted-to piece type, or piece.NoType if the
// move is not a promotion.
func (m Move) Promotion() piece.Type {
	return piece.Type((m >> promotionOffset) & promotionMask)
}

// IsCapture reports whether the move captures a piece, including en
// passant captures.
func (m Move) IsCapture() bool {
	flag := m.MoveFlag()
	return flag == Capture || flag == EnPassant
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion() != piece.NoType
}

// String converts a Move into its long algebraic notation, e.g "e2e4",
// "e1g1" (castling is written as the king's move), "d7d8q" (promotion),
// "0000" (the null move).
func (m Move) String() string {
	if m == Null {
		return "0000"
	}

	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.Promotion().String()
	}
	return s
}
