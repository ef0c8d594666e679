/*
 * Corvid - a chess engine core in Go
 *
 * MIT License
 *
 * Copyright (c) 2024-2026 The Corvid Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package attacks precomputes per-square attack lookup tables: magic
// bitboards for sliding pieces (bishop/rook, queen derived as their
// union) and direct 64-entry tables for knight, king and pawn moves.
// Everything here is process-lifetime read-only data initialised once in
// package init() and never mutated afterwards.
package attacks

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// Magic holds the precomputed data needed to look up the sliding attacks
// from one square: the relevant occupancy mask, the multiplier and the
// attack table itself, indexed by (occupied&Mask)*Magic>>Shift. The
// approach and the magic-number search are adapted from Stockfish's
// "fancy" magic bitboard initialisation.
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

var (
	bishopMagics [64]Magic
	rookMagics   [64]Magic

	bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}
	rookDirections   = [4]Direction{North, East, South, West}

	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard
)

func init() {
	initNonSliders()
	bishopTable := make([]Bitboard, 0x1480) // sum of 2^relevant-bits over all squares
	rookTable := make([]Bitboard, 0x19000)
	initMagics(&bishopTable, &bishopMagics, &bishopDirections, bishopSeeds)
	initMagics(&rookTable, &rookMagics, &rookDirections, rookSeeds)
}

// BishopAttacks returns the bishop attack set from sq given the whole
// board occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return m.Attacks[m.index(occupied)]
}

// RookAttacks returns the rook attack set from sq given the whole board
// occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.Attacks[m.index(occupied)]
}

// QueenAttacks is the union of the rook and bishop attack sets.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// KnightAttacks returns the fixed knight attack set from sq.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the fixed king attack set from sq.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the squares a pawn of colour c on sq attacks
// diagonally (ignores whether those squares are occupied).
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// Attacks returns the pseudo-attack set of piece type pt from sq given
// the board occupancy. Knight/king/pawn ignore occupied.
func Attacks(pt PieceType, c Color, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return KnightAttacks(sq)
	case King:
		return KingAttacks(sq)
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	case Pawn:
		return PawnAttacks(c, sq)
	default:
		return BbZero
	}
}

func initNonSliders() {
	knightSteps := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps := [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	for sq := SqA1; sq <= SqH8; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())
		for _, s := range knightSteps {
			nf, nr := f+s[0], r+s[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				knightAttacks[sq] = knightAttacks[sq].Push(SquareOf(File(nf), Rank(nr)))
			}
		}
		for _, s := range kingSteps {
			nf, nr := f+s[0], r+s[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				kingAttacks[sq] = kingAttacks[sq].Push(SquareOf(File(nf), Rank(nr)))
			}
		}
		if to := sq.To(Northwest); to != SqNone {
			pawnAttacks[White][sq] = pawnAttacks[White][sq].Push(to)
		}
		if to := sq.To(Northeast); to != SqNone {
			pawnAttacks[White][sq] = pawnAttacks[White][sq].Push(to)
		}
		if to := sq.To(Southwest); to != SqNone {
			pawnAttacks[Black][sq] = pawnAttacks[Black][sq].Push(to)
		}
		if to := sq.To(Southeast); to != SqNone {
			pawnAttacks[Black][sq] = pawnAttacks[Black][sq].Push(to)
		}
	}
}

// optimal PRNG seeds per rank to find magics quickly, taken from Stockfish.
var bishopSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}
var rookSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

// initMagics computes magic numbers and attack tables for one slider
// piece type (bishop or rook), following the Stockfish fancy-magic
// initialisation algorithm. Regenerating at process start keeps the
// table construction itself testable and avoids shipping a large blob
// of embedded constants; it completes in a few milliseconds.
func initMagics(table *[]Bitboard, magics *[64]Magic, directions *[4]Direction, seeds [8]uint64) {
	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	var edges, b Bitboard
	cnt, size := 0, 0

	for sq := SqA1; sq <= SqH8; sq++ {
		edges = ((Rank1.Bb() | Rank8.Bb()) &^ sq.RankOf().Bb()) | ((FileA.Bb() | FileH.Bb()) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		b, size = BbZero, 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		rng := newPrng(seeds[sq.RankOf()])
		for i := 0; i < size; {
			// A usable magic must spread the top byte of mask*magic over
			// enough bits to make index() collisions rare; reject and
			// retry otherwise.
			for {
				m.Magic = Bitboard(rng.sparseRand())
				if Bitboard((m.Magic*m.Mask)>>56).PopCount() >= 6 {
					break
				}
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack computes the sliding attack set along directions from sq
// given occupied, by simple ray walking. Only used during table
// construction; move generation and search use the magic lookup instead.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if next == SqNone {
				break
			}
			s = next
			attack = attack.Push(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// prng is the xorshift64star generator used (seeded) to search for magic
// numbers, taken from Stockfish / Sebastiano Vigna's public-domain
// xorshift64star.
type prng struct {
	s uint64
}

func newPrng(seed uint64) *prng {
	return &prng{s: seed}
}

func (r *prng) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand returns a value with roughly 1/8th of its bits set, which
// converges to a valid magic much faster than a uniform random 64-bit
// value.
func (r *prng) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
