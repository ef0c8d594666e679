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

// Package movegen produces fully legal moves directly by intersecting
// per-piece pseudo-attack sets with precomputed check and pin masks,
// instead of generating pseudo-legal moves and rejecting the ones that
// leave the king in check.
package movegen

import (
	"github.com/corvidchess/corvid/internal/attacks"
	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movelist"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

var log = logging.GetLog("movegen")

var promotionPieces = [4]PieceType{Knight, Bishop, Rook, Queen}

// Generate appends every fully legal move for the side to move in p to ml.
// ml is not cleared first; callers that want a fresh list should call
// ml.Clear() themselves.
func Generate(p *position.Position, ml *movelist.MoveList) {
	generate(p, ml, false)
}

// GenerateCaptures appends only legal captures, capture-promotions and
// en-passant captures -- the restricted move set quiescence search walks.
func GenerateCaptures(p *position.Position, ml *movelist.MoveList) {
	generate(p, ml, true)
}

func generate(p *position.Position, ml *movelist.MoveList, capturesOnly bool) {
	log.Debugf("generating moves for %s to move, capturesOnly=%v", p.Stm(), capturesOnly)
	us := p.Stm()
	them := us.Opp()
	kingSq := p.KingSquare(us)
	occAll := p.OccupiedAll()
	enemyOrEmpty := ^p.Occupied(us)

	attacksOnKing := attacksOnSquare(p, them, occAll&^kingSq.Bb())
	checkMask, numCheckers := computeCheckMask(p, us, kingSq, attacksOnKing)

	allowDest := checkMask
	if capturesOnly {
		allowDest &= p.Occupied(them)
	}

	if numCheckers >= 2 {
		generateKingMoves(p, ml, us, kingSq, attacksOnKing, enemyOrEmpty, capturesOnly)
		return
	}

	pinMask := computePinMasks(p, us, kingSq, occAll)

	generatePawnMoves(p, ml, us, allowDest, pinMask, capturesOnly)
	generateKnightMoves(p, ml, us, allowDest, pinMask)
	generateSliderMoves(p, ml, us, Bishop, allowDest, pinMask, occAll)
	generateSliderMoves(p, ml, us, Rook, allowDest, pinMask, occAll)
	generateSliderMoves(p, ml, us, Queen, allowDest, pinMask, occAll)
	generateKingMoves(p, ml, us, kingSq, attacksOnKing, enemyOrEmpty, capturesOnly)
}

// IsCheck reports whether the side to move's king is currently attacked.
func IsCheck(p *position.Position) bool {
	us := p.Stm()
	kingSq := p.KingSquare(us)
	return attacksOnSquare(p, us.Opp(), p.OccupiedAll()).Has(kingSq)
}

// attacksOnSquare returns the set of squares attacked by by, given an
// occupancy map that may have had the defending king removed so that
// sliding attacks x-ray through it.
func attacksOnSquare(p *position.Position, by Color, occ Bitboard) Bitboard {
	var a Bitboard
	bb := p.Pieces(by, Pawn)
	for bb != BbZero {
		sq := PopLsb(&bb)
		a |= attacks.PawnAttacks(by, sq)
	}
	bb = p.Pieces(by, Knight)
	for bb != BbZero {
		sq := PopLsb(&bb)
		a |= attacks.KnightAttacks(sq)
	}
	bb = p.Pieces(by, Bishop) | p.Pieces(by, Queen)
	for bb != BbZero {
		sq := PopLsb(&bb)
		a |= attacks.BishopAttacks(sq, occ)
	}
	bb = p.Pieces(by, Rook) | p.Pieces(by, Queen)
	for bb != BbZero {
		sq := PopLsb(&bb)
		a |= attacks.RookAttacks(sq, occ)
	}
	a |= attacks.KingAttacks(p.KingSquare(by))
	return a
}

// computeCheckMask returns the set of squares a non-king move may land on
// to resolve check (BbAll if not in check, BbZero if doubly checked) and
// the number of checking pieces.
func computeCheckMask(p *position.Position, us Color, kingSq Square, attacksOnKing Bitboard) (Bitboard, int) {
	them := us.Opp()
	occAll := p.OccupiedAll()

	checkers := BbZero
	numCheckers := 0

	if attacks.PawnAttacks(us, kingSq)&p.Pieces(them, Pawn) != 0 {
		checkers |= attacks.PawnAttacks(us, kingSq) & p.Pieces(them, Pawn)
		numCheckers++
	}
	if kn := attacks.KnightAttacks(kingSq) & p.Pieces(them, Knight); kn != 0 {
		checkers |= kn
		numCheckers++
	}

	checkMask := BbZero
	if checkers != BbZero {
		checkMask |= checkers
	}

	diagCheckers := attacks.BishopAttacks(kingSq, occAll) & (p.Pieces(them, Bishop) | p.Pieces(them, Queen))
	for diagCheckers != BbZero {
		sq := PopLsb(&diagCheckers)
		numCheckers++
		checkMask |= sq.Bb()
		checkMask |= between(kingSq, sq)
	}
	orthoCheckers := attacks.RookAttacks(kingSq, occAll) & (p.Pieces(them, Rook) | p.Pieces(them, Queen))
	for orthoCheckers != BbZero {
		sq := PopLsb(&orthoCheckers)
		numCheckers++
		checkMask |= sq.Bb()
		checkMask |= between(kingSq, sq)
	}

	if numCheckers == 0 {
		return BbAll, 0
	}
	if numCheckers >= 2 {
		return BbZero, numCheckers
	}
	return checkMask, numCheckers
}

// computePinMasks scans from the king along the four rook and four bishop
// rays; when exactly one friendly piece lies between the king and a
// matching enemy slider, that piece is pinned to the ray it's found on
// (including the attacker's own square). Every other square gets the
// universal pin mask.
func computePinMasks(p *position.Position, us Color, kingSq Square, occAll Bitboard) map[Square]Bitboard {
	them := us.Opp()
	pins := make(map[Square]Bitboard, 8)
	rookSliders := p.Pieces(them, Rook) | p.Pieces(them, Queen)
	bishopSliders := p.Pieces(them, Bishop) | p.Pieces(them, Queen)

	for _, d := range allDirections {
		// Walk from the king until the first occupied square; if that's
		// one of ours, keep walking from there to see whether a matching
		// enemy slider sits on the same ray beyond it.
		ray := rayAttack(kingSq, d, occAll)
		blockers := ray & occAll
		if blockers == BbZero {
			continue
		}
		first := blockers.Lsb()
		if !p.Occupied(us).Has(first) {
			continue
		}

		beyond := rayAttack(first, d, occAll)
		nextBlockers := beyond & occAll
		if nextBlockers == BbZero {
			continue
		}
		attacker := nextBlockers.Lsb()

		isDiagonal := d == Northeast || d == Northwest || d == Southeast || d == Southwest
		sliders := rookSliders
		if isDiagonal {
			sliders = bishopSliders
		}
		if !sliders.Has(attacker) {
			continue
		}
		pins[first] = rayBetweenInclusive(kingSq, attacker)
	}
	return pins
}

func pinMaskFor(pins map[Square]Bitboard, sq Square) Bitboard {
	if m, ok := pins[sq]; ok {
		return m
	}
	return BbAll
}

func generatePawnMoves(p *position.Position, ml *movelist.MoveList, us Color, allowDest Bitboard, pins map[Square]Bitboard, capturesOnly bool) {
	them := us.Opp()
	occAll := p.OccupiedAll()
	pawns := p.Pieces(us, Pawn)

	pushDir, promoRank, startRank := North, Rank8, Rank2
	if us == Black {
		pushDir, promoRank, startRank = South, Rank1, Rank7
	}

	for bb := pawns; bb != BbZero; {
		from := PopLsb(&bb)
		pin := pinMaskFor(pins, from)

		if !capturesOnly {
			one := from.To(pushDir)
			if one != SqNone && !occAll.Has(one) {
				addPawnMove(ml, from, one, promoRank, allowDest, pin)
				if from.RankOf() == startRank {
					two := one.To(pushDir)
					if two != SqNone && !occAll.Has(two) {
						if allowDest.Has(two) && pin.Has(two) {
							ml.Add(NewMove(from, two, MoveNormal))
						}
					}
				}
			}
		}

		capTargets := attacks.PawnAttacks(us, from) & p.Occupied(them)
		for t := capTargets; t != BbZero; {
			to := PopLsb(&t)
			addPawnMove(ml, from, to, promoRank, allowDest, pin)
		}

		if ep := p.EpTarget(); ep != SqNone && attacks.PawnAttacks(us, from).Has(ep) {
			if epLegal(p, us, from, ep) {
				ml.Add(NewMove(from, ep, MoveEnPassant))
			}
		}
	}
}

func addPawnMove(ml *movelist.MoveList, from, to Square, promoRank Rank, allowDest Bitboard, pin Bitboard) {
	if !allowDest.Has(to) || !pin.Has(to) {
		return
	}
	if to.RankOf() == promoRank {
		for _, pt := range promotionPieces {
			ml.Add(NewPromotionMove(from, to, pt))
		}
		return
	}
	ml.Add(NewMove(from, to, MoveNormal))
}

// epLegal implements the special en-passant legality check: simulate
// removing both pawns (and placing ours on the target square), then
// verify our king isn't attacked by any rook/queen or bishop/queen on the
// resulting occupancy. This is the one case the pin mask
// above cannot express, because the capture removes a piece that isn't
// on the destination square.
func epLegal(p *position.Position, us Color, from, ep Square) bool {
	them := us.Opp()
	capSq := ep.To(South)
	if us == Black {
		capSq = ep.To(North)
	}
	occ := p.OccupiedAll()
	occ = occ.Pop(from).Pop(capSq).Push(ep)

	kingSq := p.KingSquare(us)
	if attacks.RookAttacks(kingSq, occ)&(p.Pieces(them, Rook)|p.Pieces(them, Queen)) != 0 {
		return false
	}
	if attacks.BishopAttacks(kingSq, occ)&(p.Pieces(them, Bishop)|p.Pieces(them, Queen)) != 0 {
		return false
	}
	return true
}

func generateKnightMoves(p *position.Position, ml *movelist.MoveList, us Color, allowDest Bitboard, pins map[Square]Bitboard) {
	for bb := p.Pieces(us, Knight); bb != BbZero; {
		from := PopLsb(&bb)
		pin := pinMaskFor(pins, from)
		// A pinned knight can never move without exposing the king, since
		// no knight move stays on a straight ray.
		if pin != BbAll {
			continue
		}
		targets := attacks.KnightAttacks(from) &^ p.Occupied(us) & allowDest
		for t := targets; t != BbZero; {
			to := PopLsb(&t)
			ml.Add(NewMove(from, to, MoveNormal))
		}
	}
}

func generateSliderMoves(p *position.Position, ml *movelist.MoveList, us Color, pt PieceType, allowDest Bitboard, pins map[Square]Bitboard, occAll Bitboard) {
	for bb := p.Pieces(us, pt); bb != BbZero; {
		from := PopLsb(&bb)
		pin := pinMaskFor(pins, from)
		targets := attacks.Attacks(pt, us, from, occAll) &^ p.Occupied(us) & allowDest & pin
		for t := targets; t != BbZero; {
			to := PopLsb(&t)
			ml.Add(NewMove(from, to, MoveNormal))
		}
	}
}

func generateKingMoves(p *position.Position, ml *movelist.MoveList, us Color, kingSq Square, attacksOnKing Bitboard, enemyOrEmpty Bitboard, capturesOnly bool) {
	targets := attacks.KingAttacks(kingSq) &^ attacksOnKing & enemyOrEmpty
	if capturesOnly {
		targets &= p.Occupied(us.Opp())
	}
	for t := targets; t != BbZero; {
		to := PopLsb(&t)
		ml.Add(NewMove(kingSq, to, MoveNormal))
	}

	if capturesOnly || attacksOnKing.Has(kingSq) {
		return
	}
	generateCastles(p, ml, us, kingSq, attacksOnKing)
}

func generateCastles(p *position.Position, ml *movelist.MoveList, us Color, kingSq Square, attacksOnKing Bitboard) {
	occAll := p.OccupiedAll()
	rank := Rank1
	if us == Black {
		rank = Rank8
	}

	if p.CanCastle(KingSide, us) {
		f, g := SquareOf(FileF, rank), SquareOf(FileG, rank)
		if !occAll.Has(f) && !occAll.Has(g) &&
			!attacksOnKing.Has(kingSq) && !attacksOnKing.Has(f) && !attacksOnKing.Has(g) {
			ml.Add(NewMove(kingSq, g, MoveCastle))
		}
	}
	if p.CanCastle(QueenSide, us) {
		d, c, b := SquareOf(FileD, rank), SquareOf(FileC, rank), SquareOf(FileB, rank)
		if !occAll.Has(d) && !occAll.Has(c) && !occAll.Has(b) &&
			!attacksOnKing.Has(kingSq) && !attacksOnKing.Has(d) && !attacksOnKing.Has(c) {
			ml.Add(NewMove(kingSq, c, MoveCastle))
		}
	}
}

// between returns the squares strictly between a and b along a shared
// rank, file or diagonal; BbZero if they aren't aligned.
func between(a, b Square) Bitboard {
	if a == b {
		return BbZero
	}
	for _, d := range allDirections {
		ray := BbZero
		sq := a.To(d)
		for sq != SqNone {
			if sq == b {
				return ray
			}
			ray = ray.Push(sq)
			sq = sq.To(d)
		}
	}
	return BbZero
}

var allDirections = [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

// rayAttack walks from sq in direction d until (and including) the first
// blocker, or the board edge.
func rayAttack(sq Square, d Direction, occ Bitboard) Bitboard {
	var ray Bitboard
	cur := sq.To(d)
	for cur != SqNone {
		ray = ray.Push(cur)
		if occ.Has(cur) {
			break
		}
		cur = cur.To(d)
	}
	return ray
}

// rayBetweenInclusive returns every square strictly between a and b, plus
// b itself -- the pin ray a pinned piece may legally move along.
func rayBetweenInclusive(a, b Square) Bitboard {
	return between(a, b).Push(b)
}
