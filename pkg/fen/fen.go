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

// Package fen parses and prints Forsyth-Edwards Notation, the standard
// textual representation of a chess position.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"go.eightfold.dev/chess/pkg/castling"
	"go.eightfold.dev/chess/pkg/piece"
	"go.eightfold.dev/chess/pkg/position"
	"go.eightfold.dev/chess/pkg/square"
	"go.eightfold.dev/chess/pkg/zobrist"
)

// Start is the FEN of the standard chess starting position.
const Start = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse builds a Position from a FEN string.
func Parse(fen string) (*position.Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("fen.Parse: want 6 fields, got %d: %q", len(fields), fen)
	}

	pos := position.New()

	pos.SideToMove = piece.NewColor(fields[1])
	if pos.SideToMove == piece.Black {
		pos.Hash ^= zobrist.SideToMove
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen.Parse: want 8 ranks, got %d: %q", len(ranks), fields[0])
	}
	for i, data := range ranks {
		r := square.Rank(7 - i) // FEN lists rank 8 first
		f := square.FileA
		for _, id := range data {
			if id >= '1' && id <= '8' {
				f += square.File(id - '0')
				continue
			}
			if f >= square.FileN {
				return nil, fmt.Errorf("fen.Parse: rank %q overflows the board", data)
			}
			pos.PlaceForSetup(square.New(f, r), piece.NewFromString(string(id)))
			f++
		}
	}

	pos.CastlingRights = castling.NewRights(fields[2])
	pos.Hash ^= zobrist.Castling[pos.CastlingRights]

	pos.EnPassant = square.NewFromString(fields[3])
	if pos.EnPassant != square.None {
		pos.Hash ^= zobrist.EnPassant[pos.EnPassant.File()]
	}

	var err error
	if pos.HalfMoveClock, err = strconv.Atoi(fields[4]); err != nil {
		return nil, fmt.Errorf("fen.Parse: half-move clock: %w", err)
	}
	if pos.FullMoves, err = strconv.Atoi(fields[5]); err != nil {
		return nil, fmt.Errorf("fen.Parse: full-move counter: %w", err)
	}

	pos.DeriveChecks()
	return pos, nil
}

// String returns the FEN representation of pos.
func String(pos *position.Position) string {
	var b strings.Builder

	for r := square.Rank(7); r >= 0; r-- {
		empty := 0
		for f := square.FileA; f < square.FileN; f++ {
			p := pos.PieceAt(square.New(f, r))
			if p == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(p.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r != square.Rank1 {
			b.WriteByte('/')
		}
	}

	fmt.Fprintf(&b, " %s %s %s %d %d",
		pos.SideToMove, pos.CastlingRights, pos.EnPassant,
		pos.HalfMoveClock, pos.FullMoves)

	return b.String()
}
