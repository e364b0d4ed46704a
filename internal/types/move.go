// chesskit - a UCI-compatible chess engine written in Go
//
// MIT License
//
// Copyright (c) 2020-2026 chesskit contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package types

// MoveType tags what kind of move a Move record describes.
type MoveType uint8

const (
	Quiet MoveType = iota
	Capture
	KingCastle
	QueenCastle
	Promotion
	EnPassant
	CaptureAndPromotion
)

// Move is an immutable record of a single ply. It packs from/to squares,
// the move type, the moving and captured pieces, the mover's color, the
// promotion piece type and a null-move flag into a single machine word so
// move lists stay cheap to allocate and compare, while still exposing
// every field the position and search need without a lookup.
//
// bit layout (lsb first): from:6 to:6 type:3 promo:3 moved:4 captured:4
// color:1 null:1
type Move uint32

const (
	moveFromShift     = 0
	moveToShift       = 6
	moveTypeShift     = 12
	movePromoShift    = 15
	moveMovedShift    = 18
	moveCapturedShift = 22
	moveColorShift    = 26
	moveNullShift     = 27

	moveSquareMask = 0x3F
	moveTypeMask   = 0x7
	movePromoMask  = 0x7
	movePieceMask  = 0xF
)

// NullMove is the sentinel "no move" / null-move value.
const NullMove Move = 1 << moveNullShift

// MoveNone is the zero value, used where a move slot may be empty - e.g. a
// transposition table entry that has never stored a best move.
const MoveNone Move = 0

// NewMove builds a Move record from its constituent fields.
func NewMove(from, to Square, mt MoveType, moved, captured Piece, mover Color, promo PieceType) Move {
	m := Move(from)<<moveFromShift |
		Move(to)<<moveToShift |
		Move(mt)<<moveTypeShift |
		Move(promo)<<movePromoShift |
		Move(moved)<<moveMovedShift |
		Move(captured)<<moveCapturedShift |
		Move(mover)<<moveColorShift
	return m
}

// From returns the origin square.
func (m Move) From() Square { return Square((m >> moveFromShift) & moveSquareMask) }

// To returns the destination square.
func (m Move) To() Square { return Square((m >> moveToShift) & moveSquareMask) }

// MoveType returns the move's type tag.
func (m Move) MoveType() MoveType { return MoveType((m >> moveTypeShift) & moveTypeMask) }

// PromotionPiece returns the promoted-to piece type, or PtNone if this is
// not a promotion.
func (m Move) PromotionPiece() PieceType { return PieceType((m >> movePromoShift) & movePromoMask) }

// MovedPiece returns the piece that moved.
func (m Move) MovedPiece() Piece { return Piece((m >> moveMovedShift) & movePieceMask) }

// CapturedPiece returns the captured piece, or PieceNone for non-captures.
func (m Move) CapturedPiece() Piece { return Piece((m >> moveCapturedShift) & movePieceMask) }

// Color returns the color of the side that made the move.
func (m Move) Color() Color { return Color((m >> moveColorShift) & 1) }

// IsNull reports whether this is the null-move sentinel.
func (m Move) IsNull() bool { return m&NullMove != 0 }

// IsCapture reports whether the move captures a piece (including en
// passant and capture-promotions).
func (m Move) IsCapture() bool {
	t := m.MoveType()
	return t == Capture || t == EnPassant || t == CaptureAndPromotion
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	t := m.MoveType()
	return t == Promotion || t == CaptureAndPromotion
}

// IsCastle reports whether the move is a king- or queen-side castle.
func (m Move) IsCastle() bool {
	t := m.MoveType()
	return t == KingCastle || t == QueenCastle
}

var promoLetters = [PtLength]byte{0, 0, 'n', 'b', 'r', 'q', 0}

// ToWireString renders the move in long algebraic form: "<from><to>" plus
// a lowercase promotion letter if applicable. Castling is rendered as the
// king's two-square move, en passant as the pawn's diagonal capture.
func (m Move) ToWireString() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(promoLetters[m.PromotionPiece()])
	}
	return s
}

func (m Move) String() string {
	if m.IsNull() {
		return "null"
	}
	return m.ToWireString()
}

// PromoPieceFromLetter maps a wire-string promotion letter to a piece type.
func PromoPieceFromLetter(c byte) PieceType {
	switch c {
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'r':
		return Rook
	case 'q':
		return Queen
	default:
		return PtNone
	}
}
