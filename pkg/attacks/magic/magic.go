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

// Package magic provides the magic-bitboard hash table used to look up
// slider attack sets in constant time.
//
// Blocker masks are 64-bit bitboards, so there are too many of them to
// store exhaustively per square. But the *relevant* blockers for a given
// square and slider (the mask, excluding the last square in each ray
// direction, since an edge piece's presence or absence never changes the
// attack set) are few, and every one of their subsets can be hashed,
// collision-free, into a shared table by multiplying by a well-chosen
// magic number and shifting down to an index. Magics are found by
// random search: generate a candidate, check every blocker subset hashes
// to a slot that's either empty or already holds the same attack set,
// and keep searching on any real collision.
package magic

import (
	"go.eightfold.dev/chess/internal/util"
)

// seeds are xorshift PRNG seeds, taken from Stockfish, chosen because
// they happen to produce valid magics quickly for each rank.
var seeds = [8]uint64{255, 16645, 15100, 12281, 32803, 55013, 10316, 728}

// Entry is a single square's magic record: mask selects the relevant
// blockers, magic*-- mapped through shift turns a masked blocker pattern
// into an index, and offset locates that square's slice of the shared
// attack table.
type Entry struct {
	Mask   uint64 // relevant blocker mask
	MvMask uint64 // attacks on an empty board (a ray pre-filter)
	Magic  uint64 // magic multiplier
	Shift  uint8  // 64 - popcount(Mask)
	Offset uint32 // base index into the shared attack table
}

// Index computes the index into the shared attack table that blockers
// (any occupancy bitboard, not yet masked) hashes to for this entry.
func (e *Entry) Index(blockers uint64) uint32 {
	masked := blockers & e.Mask
	return uint32((masked*e.Magic)>>e.Shift) + e.Offset
}

// RayFunc computes a slider's attack set from square sq given a blocker
// bitboard. When relevantOnly is true it must return the relevant
// blocker mask instead (i.e, exclude the final square of every ray
// direction), which is how Build derives Entry.Mask.
type RayFunc func(sq int, blockers uint64, relevantOnly bool) uint64

// Table is a magic hash table shared by all 64 squares of one slider
// piece type (bishop or rook). Attacks are looked up by probing Entries
// for the originating square, then indexing into Attacks.
type Table struct {
	Entries [64]Entry
	Attacks []uint64
}

// Probe returns the attack bitboard for a slider on square sq given
// the full board occupancy.
func (t *Table) Probe(sq int, occupied uint64) uint64 {
	e := &t.Entries[sq]
	return t.Attacks[e.Index(occupied)]
}

// Build constructs a Table for the given ray function by searching for
// magics, one square at a time. size is the total number of slots
// needed across all 64 squares (bishop: 5248, rook: 102400).
func Build(size int, ray RayFunc) *Table {
	t := &Table{Attacks: make([]uint64, size)}

	offset := uint32(0)
	for sq := 0; sq < 64; sq++ {
		e := &t.Entries[sq]

		e.Mask = ray(sq, 0, true)
		e.MvMask = ray(sq, 0, false)
		bitCount := popcount(e.Mask)
		e.Shift = uint8(64 - bitCount)
		e.Offset = offset

		permutationsN := 1 << bitCount
		permutations := make([]uint64, permutationsN)
		attacksFor := make([]uint64, permutationsN)

		blockers := uint64(0)
		for i := 0; i < permutationsN; i++ {
			permutations[i] = blockers
			attacksFor[i] = ray(sq, blockers, false)
			blockers = (blockers - e.Mask) & e.Mask
		}

		var rng util.PRNG
		rng.Seed(seeds[sq/8])

		slots := t.Attacks[offset : offset+uint32(permutationsN)]

	searchMagic:
		for {
			for i := range slots {
				slots[i] = 0
			}

			e.Magic = rng.SparseUint64()

			for i, blockers := range permutations {
				idx := (blockers * e.Magic) >> e.Shift
				want := attacksFor[i]

				if slots[idx] != 0 && slots[idx] != want {
					continue searchMagic
				}
				slots[idx] = want
			}
			break
		}

		offset += uint32(permutationsN)
	}

	return t
}

func popcount(x uint64) int {
	n := 0
	for x != 0 {
		x &= x - 1
		n++
	}
	return n
}
