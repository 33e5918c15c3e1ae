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
	"testing"

	"github.com/stretchr/testify/require"

	"go.eightfold.dev/chess/pkg/fen"
	"go.eightfold.dev/chess/pkg/movegen"
	"go.eightfold.dev/chess/pkg/position"
)

// perft counts the leaf nodes of the legal move tree rooted at pos, to
// the given depth, cloning rather than unmaking at every step.
func perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := movegen.GenerateInto(pos)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		clone := pos.Clone()
		clone.MakeMove(m)
		nodes += perft(clone, depth-1)
	}
	return nodes
}

func TestPerftStartPos(t *testing.T) {
	pos, err := fen.Parse(fen.Start)
	require.NoError(t, err)

	tests := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		{5, 4865609},
	}

	for _, test := range tests {
		require.Equal(t, test.nodes, perft(pos, test.depth), "depth %d", test.depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos, err := fen.Parse("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	require.Equal(t, uint64(48), perft(pos, 1))
	require.Equal(t, uint64(4085603), perft(pos, 4))
}

func TestPerftPosition3(t *testing.T) {
	pos, err := fen.Parse("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	require.NoError(t, err)

	require.Equal(t, uint64(674624), perft(pos, 5))
	require.Equal(t, uint64(11030083), perft(pos, 6))
}

func TestPerftPosition4(t *testing.T) {
	pos, err := fen.Parse("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	require.NoError(t, err)

	require.Equal(t, uint64(422333), perft(pos, 4))
}

func TestPerftPosition5(t *testing.T) {
	pos, err := fen.Parse("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	require.NoError(t, err)

	require.Equal(t, uint64(62379), perft(pos, 3))
}

// TestPerftEdgeCases exercises two of Martin Sedlák's "perfect-perft"
// suite entries, both targeting en passant: a capture that would expose
// the capturer's own king along the rank, and a capture that gives
// check to the opponent.
func TestPerftEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		nodes uint64
	}{
		{"en passant discovered check", "3k4/3p4/8/K1P4r/8/8/8/8 b - - 0 1", 6, 1134888},
		{"en passant capture gives check", "8/8/1k6/2b5/2pP4/8/5K2/8 b - d3 0 1", 6, 1440467},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			pos, err := fen.Parse(test.fen)
			require.NoError(t, err)
			require.Equal(t, test.nodes, perft(pos, test.depth))
		})
	}
}
