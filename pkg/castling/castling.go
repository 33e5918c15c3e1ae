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

// Package castling represents the four castling rights as a small bit
// set, and the FEN castling-field encoding of them.
package castling

// Rights is a bit set of the four castling rights.
type Rights byte

// NewRights parses a FEN castling availability field, e.g "KQkq", "-".
func NewRights(s string) Rights {
	var r Rights
	if s == "-" {
		return None
	}
	for _, c := range s {
		switch c {
		case 'K':
			r |= WhiteKingside
		case 'Q':
			r |= WhiteQueenside
		case 'k':
			r |= BlackKingside
		case 'q':
			r |= BlackQueenside
		}
	}
	return r
}

const (
	WhiteKingside  Rights = 1 << 0
	WhiteQueenside Rights = 1 << 1
	BlackKingside  Rights = 1 << 2
	BlackQueenside Rights = 1 << 3

	None Rights = 0

	White Rights = WhiteKingside | WhiteQueenside
	Black Rights = BlackKingside | BlackQueenside

	All Rights = White | Black

	// N is the number of distinct Rights values.
	N = 16
)

// String converts Rights to its FEN castling-field representation.
func (r Rights) String() string {
	var str string
	if r&WhiteKingside != 0 {
		str += "K"
	}
	if r&WhiteQueenside != 0 {
		str += "Q"
	}
	if r&BlackKingside != 0 {
		str += "k"
	}
	if r&BlackQueenside != 0 {
		str += "q"
	}
	if str == "" {
		str = "-"
	}
	return str
}
