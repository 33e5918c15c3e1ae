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

// Package piece implements representations of chess pieces, their types
// and colors, and related utility functions.
package piece

// New creates a Piece with the given type and color.
func New(t Type, c Color) Piece {
	return Piece(c)<<typeWidth | Piece(t)
}

// NewFromString creates a Piece from its FEN letter, e.g "K", "p".
func NewFromString(id string) Piece {
	switch id {
	case "K":
		return WhiteKing
	case "Q":
		return WhiteQueen
	case "R":
		return WhiteRook
	case "N":
		return WhiteKnight
	case "B":
		return WhiteBishop
	case "P":
		return WhitePawn
	case "k":
		return BlackKing
	case "q":
		return BlackQueen
	case "r":
		return BlackRook
	case "n":
		return BlackKnight
	case "b":
		return BlackBishop
	case "p":
		return BlackPawn
	default:
		panic("piece.NewFromString: invalid piece id " + id)
	}
}

// Piece represents a colored chess piece.
// Format: MSB [color 1 bit][type 3 bits] LSB
type Piece uint8

const typeWidth = 3
const typeMask = (1 << typeWidth) - 1

// constants representing colored chess pieces.
const (
	NoPiece Piece = 0

	WhitePawn   = Piece(White)<<typeWidth | Piece(Pawn)
	WhiteKnight = Piece(White)<<typeWidth | Piece(Knight)
	WhiteBishop = Piece(White)<<typeWidth | Piece(Bishop)
	WhiteRook   = Piece(White)<<typeWidth | Piece(Rook)
	WhiteQueen  = Piece(White)<<typeWidth | Piece(Queen)
	WhiteKing   = Piece(White)<<typeWidth | Piece(King)

	BlackPawn   = Piece(Black)<<typeWidth | Piece(Pawn)
	BlackKnight = Piece(Black)<<typeWidth | Piece(Knight)
	BlackBishop = Piece(Black)<<typeWidth | Piece(Bishop)
	BlackRook   = Piece(Black)<<typeWidth | Piece(Rook)
	BlackQueen  = Piece(Black)<<typeWidth | Piece(Queen)
	BlackKing   = Piece(Black)<<typeWidth | Piece(King)
)

// N is the number of distinct Piece values (including the unused slots
// that fall out of separating color and type into fixed bit fields).
const N = 16

// String converts a Piece into its FEN letter.
func (p Piece) String() string {
	const pieceToStr = " PNBRQK  pnbrqk"
	return string(pieceToStr[p])
}

// Type returns the piece type of p.
func (p Piece) Type() Type {
	return Type(p & typeMask)
}

// Color returns the piece color of p.
func (p Piece) Color() Color {
	return Color(p >> typeWidth)
}

// Is reports whether p has the given type.
func (p Piece) Is(t Type) bool {
	return p.Type() == t
}

// Type represents the type/kind of a chess piece.
type Type uint8

// constants representing chess piece types.
const (
	NoType Type = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// TypeN is the number of piece types, including NoType.
const TypeN = 7

// String converts a Type into its lowercase FEN letter.
func (t Type) String() string {
	const typeToStr = " pnbrqk"
	return string(typeToStr[t])
}
