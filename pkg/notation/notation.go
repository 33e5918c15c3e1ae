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

// Package notation parses the long algebraic move strings used by UCI
// ("e2e4", "e7e8q") against a position's legal moves.
package notation

import (
	"fmt"
	"strings"

	"go.eightfold.dev/chess/pkg/move"
	"go.eightfold.dev/chess/pkg/movegen"
	"go.eightfold.dev/chess/pkg/piece"
	"go.eightfold.dev/chess/pkg/position"
	"go.eightfold.dev/chess/pkg/square"
)

// Parse resolves the long algebraic move string s against pos's legal
// moves. Resolving against the legal move list, rather than building a
// Move directly from its fields, is what lets a bare "e1g1" come back
// as a KingCastle and "e5d6" come back as an EnPassant capture without
// the caller having to know which special case applies.
func Parse(pos *position.Position, s string) (move.Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return move.Null, fmt.Errorf("notation.Parse: malformed move %q", s)
	}

	from := square.NewFromString(s[0:2])
	to := square.NewFromString(s[2:4])

	promotion := piece.NoType
	if len(s) == 5 {
		promotion = piece.NewFromString(strings.ToLower(s[4:5])).Type()
	}

	var found move.Move
	ok := false
	movegen.Generate(pos, func(m move.Move) {
		if ok || m.From() != from || m.To() != to || m.Promotion() != promotion {
			return
		}
		found, ok = m, true
	})

	if !ok {
		return move.Null, fmt.Errorf("notation.Parse: %q is not legal in this position", s)
	}
	return found, nil
}
