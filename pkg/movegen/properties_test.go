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

package movegen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"go.eightfold.dev/chess/pkg/attacks"
	"go.eightfold.dev/chess/pkg/bitboard"
	"go.eightfold.dev/chess/pkg/fen"
	"go.eightfold.dev/chess/pkg/move"
	"go.eightfold.dev/chess/pkg/movegen"
	"go.eightfold.dev/chess/pkg/piece"
	"go.eightfold.dev/chess/pkg/position"
	"go.eightfold.dev/chess/pkg/square"
)

// checkInvariants asserts position invariants 1-5 in the following
// form: piece bitboards partition correctly per color, the two colors
// are disjoint, each color has exactly one king, there are at most two
// checkers and each one is an enemy piece, and every pinned piece
// belongs to the side to move and shares a rank, file or diagonal with
// its king. It does not check that a checker actually attacks the king,
// nor that a pinned piece has an enemy slider behind it.
func checkInvariants(t *testing.T, pos *position.Position) {
	t.Helper()

	for c := piece.White; c < piece.ColorN; c++ {
		var all bitboard.Board
		for pt := piece.Pawn; pt <= piece.King; pt++ {
			bb := pos.Pieces[c][pt]
			require.Zero(t, bb&all, "color %s: piece bitboards overlap", c)
			all |= bb
		}
		require.Equal(t, pos.Colors[c], all, "color %s: Colors out of sync with piece bitboards", c)
		require.Equal(t, 1, pos.Pieces[c][piece.King].Count(), "color %s: not exactly one king", c)
	}

	require.Zero(t, pos.Colors[piece.White]&pos.Colors[piece.Black], "white/black bitboards intersect")
	require.LessOrEqual(t, pos.CheckN, 2, "more than two checkers")

	them := pos.SideToMove.Other()
	for i := 0; i < pos.CheckN && i < 2; i++ {
		checker := pos.Checkers[i]
		require.Equal(t, them, pos.PieceAt(checker.Square).Color(), "checker %d is not enemy-colored", i)
	}

	king := pos.Kings[pos.SideToMove]
	for pinned := pos.Pinned; pinned != bitboard.Empty; {
		s := pinned.Pop()
		require.Equal(t, pos.SideToMove, pos.PieceAt(s).Color(), "pinned square %s is not side-to-move's piece", s)
		require.NotZero(t, attacks.Ray[s][king], "pinned square %s shares no ray with the king", s)
	}
}

// checkNoDuplicates asserts Generate never visits the same (from, to,
// flag, promotion) move twice.
func checkNoDuplicates(t *testing.T, moves []move.Move) {
	t.Helper()
	seen := make(map[move.Move]bool, len(moves))
	for _, m := range moves {
		require.False(t, seen[m], "duplicate move %s", m)
		seen[m] = true
	}
}

// checkKingSafety asserts that applying every generated move leaves
// the mover's own king un-attacked.
func checkKingSafety(t *testing.T, pos *position.Position, moves []move.Move) {
	t.Helper()
	for _, m := range moves {
		mover := pos.SideToMove
		clone := pos.Clone()
		clone.MakeMove(m)
		require.False(t, isAttacked(clone, clone.Kings[mover], mover.Other()),
			"move %s leaves %s's own king in check", m, mover)
	}
}

// isAttacked reports whether sq is attacked by any piece of by, built
// from the same per-piece attack primitives movegen itself uses.
func isAttacked(pos *position.Position, sq square.Square, by piece.Color) bool {
	occupied := pos.Occupied()
	if pos.Pawns(by)&attacks.Pawn[by.Other()][sq] != bitboard.Empty {
		return true
	}
	if pos.Knights(by)&attacks.Knight[sq] != bitboard.Empty {
		return true
	}
	if (pos.Bishops(by)|pos.Queens(by))&attacks.Bishop(sq, occupied) != bitboard.Empty {
		return true
	}
	if (pos.Rooks(by)|pos.Queens(by))&attacks.Rook(sq, occupied) != bitboard.Empty {
		return true
	}
	return pos.King(by)&attacks.King[sq] != bitboard.Empty
}

// TestRandomWalkInvariants drives pseudo-random legal-move sequences
// from a handful of starting positions and checks invariants 1-5, move
// uniqueness, and king safety after every step.
func TestRandomWalkInvariants(t *testing.T) {
	starts := []string{
		fen.Start,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}

	for _, start := range starts {
		t.Run(start, func(t *testing.T) {
			pos, err := fen.Parse(start)
			require.NoError(t, err)

			rng := rand.New(rand.NewSource(1))
			for ply := 0; ply < 60; ply++ {
				checkInvariants(t, pos)

				moves := movegen.GenerateInto(pos)
				checkNoDuplicates(t, moves)
				checkKingSafety(t, pos, moves)

				if len(moves) == 0 {
					break
				}
				pos.MakeMove(moves[rng.Intn(len(moves))])
			}
		})
	}
}
