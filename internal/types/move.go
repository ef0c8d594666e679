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

package types

// Move is a packed 16-bit move: bits 0-5 from, bits 6-11 to, bits 12-13
// flag, bits 14-15 promotion piece (only meaningful when flag is
// MovePromotion). The all-zero move is NullMove.
type Move uint16

// MoveFlag distinguishes the four move kinds that need special handling
// during make/unmake.
type MoveFlag uint16

const (
	MoveNormal MoveFlag = iota
	MovePromotion
	MoveEnPassant
	MoveCastle
)

const (
	fromMask  = 0x003F
	toShift   = 6
	toMask    = 0x0FC0
	flagShift = 12
	flagMask  = 0x3000
	promShift = 14
	promMask  = 0xC000
)

// NullMove is the reserved all-zero move used to mean "no move".
const NullMove Move = 0

// promoCode packs the four promotable piece types into 2 bits:
// Knight=0, Bishop=1, Rook=2, Queen=3.
func promoCode(pt PieceType) uint16 {
	switch pt {
	case Bishop:
		return 1
	case Rook:
		return 2
	case Queen:
		return 3
	default:
		return 0 // Knight
	}
}

func promoFromCode(code uint16) PieceType {
	switch code {
	case 1:
		return Bishop
	case 2:
		return Rook
	case 3:
		return Queen
	default:
		return Knight
	}
}

// NewMove packs a simple (non-promotion) move.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(uint16(from) | uint16(to)<<toShift | uint16(flag)<<flagShift)
}

// NewPromotionMove packs a promotion move to the given piece type.
func NewPromotionMove(from, to Square, promo PieceType) Move {
	return Move(uint16(from) | uint16(to)<<toShift | uint16(MovePromotion)<<flagShift | promoCode(promo)<<promShift)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & fromMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// Flag returns the move's special-case flag.
func (m Move) Flag() MoveFlag {
	return MoveFlag((m & flagMask) >> flagShift)
}

// Promotion returns the promotion piece type; only meaningful when
// Flag() == MovePromotion.
func (m Move) Promotion() PieceType {
	return promoFromCode(uint16((m & promMask) >> promShift))
}

// IsPromotion reports whether m is a promotion move.
func (m Move) IsPromotion() bool {
	return m.Flag() == MovePromotion
}

// IsEnPassant reports whether m is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == MoveEnPassant
}

// IsCastle reports whether m is a castling move.
func (m Move) IsCastle() bool {
	return m.Flag() == MoveCastle
}

// Notate renders m in long algebraic coordinate form, e.g. "e2e4",
// "e7e8q" -- the external notation interface the core exposes to UI and
// driver code.
func Notate(m Move) string {
	return m.String()
}

// String renders m in long algebraic coordinate form, e.g. "e2e4",
// "e7e8q". NullMove renders as "0000".
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.Promotion().String()
	}
	return s
}
