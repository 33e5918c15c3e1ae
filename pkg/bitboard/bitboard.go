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

// Package bitboard implements a 64-bit bitboard, a set of squares packed
// into a single machine word, and the operations move generation needs
// on it.
package bitboard

import (
	"math/bits"

	"go.eightfold.dev/chess/pkg/piece"
	"go.eightfold.dev/chess/pkg/square"
)

// Board is a set of squares represented as a 64-bit bitmask, bit i set
// meaning square.Square(i) is a member of the set.
type Board uint64

// useful constant bitboards.
const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// Squares holds the singleton bitboard of every square, indexed by
// square.Square.
var Squares [square.N]Board

func init() {
	for s := square.A1; s <= square.H8; s++ {
		Squares[s] = 1 << uint(s)
	}
}

// Square returns the singleton bitboard containing only s.
func Square(s square.Square) Board {
	return Squares[s]
}

// String returns an 8x8 human readable rendering of the bitboard, rank
// 8 first, matching how a board is printed.
func (b Board) String() string {
	var str string
	for r := square.Rank(7); r >= 0; r-- {
		for f := square.File(0); f < square.FileN; f++ {
			if b.IsSet(square.New(f, r)) {
				str += "1"
			} else {
				str += "0"
			}
			if f != square.FileH {
				str += " "
			}
		}
		str += "\n"
	}
	return str
}

// Up shifts every square in b one rank towards the 8th rank from color
// c's point of view.
func (b Board) Up(c piece.Color) Board {
	if c == piece.White {
		return b.North()
	}
	return b.South()
}

// Down shifts every square in b one rank towards the 1st rank from
// color c's point of view.
func (b Board) Down(c piece.Color) Board {
	if c == piece.White {
		return b.South()
	}
	return b.North()
}

// North shifts b one rank towards rank 8.
func (b Board) North() Board {
	return b << 8
}

// South shifts b one rank towards rank 1.
func (b Board) South() Board {
	return b >> 8
}

// East shifts b one file towards the h-file.
func (b Board) East() Board {
	return (b &^ FileH) << 1
}

// West shifts b one file towards the a-file.
func (b Board) West() Board {
	return (b &^ FileA) >> 1
}

// IsSet reports whether s is a member of b.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != Empty
}

// Set adds s to b. Setting square.None is a no-op.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset removes s from b. Unsetting square.None is a no-op.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}

// Count returns the number of squares set in b (population count).
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the lowest-indexed square set in b, or square.None
// if b is Empty.
func (b Board) FirstOne() square.Square {
	if b == Empty {
		return square.None
	}
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// Pop returns the lowest-indexed square set in b and removes it from b,
// the standard way to iterate the members of a bitboard:
//
//	for bb := board; bb != bitboard.Empty; {
//	    sq := bb.Pop()
//	    ...
//	}
func (b *Board) Pop() square.Square {
	sq := b.FirstOne()
	*b &= *b - 1
	return sq
}

// NextSubset returns the next subset of mask after b in the
// Carry-Rippler enumeration order, wrapping back to Empty once every
// subset (including Empty itself) has been produced. Used to walk every
// blocker permutation of a slider's relevant-occupancy mask.
func NextSubset(b, mask Board) Board {
	return (b - mask) & mask
}
