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

// Package types holds the closed, flat data model shared by every other
// package: squares, files, ranks, colors, pieces, directions, castling
// rights and centipawn values. Nothing here depends on position, movegen,
// evaluator or search, so it is safe for all of them to dot-import it.
package types

import "fmt"

// Color identifies the side owning a piece. White and Black index directly
// into per-color arrays; NoColor marks an empty square.
type Color int8

const (
	White Color = iota
	Black
	NoColor
	ColorLength = 2
)

// Flip returns the opposing color. It does not check its argument:
// NoColor flips to 3, which is not a valid color.
func (c Color) Flip() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}

// Direction returns +1 for White and -1 for Black, the sign a value must be
// multiplied by to turn a White-relative score into one relative to c.
func (c Color) Direction() int8 {
	if c == White {
		return 1
	}
	return -1
}

// MoveDirection returns the Direction a pawn of color c advances in: North
// for White, South for Black.
func (c Color) MoveDirection() Direction {
	if c == White {
		return North
	}
	return South
}

// PieceType is the rank-independent kind of a piece. Piece is derivable
// from PieceType and Color by modulo arithmetic (see Piece.TypeOf).
type PieceType int8

const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength = 7
)

var pieceTypeChars = [PtLength]string{"", "p", "n", "b", "r", "q", "k"}

func (pt PieceType) String() string {
	return pieceTypeChars[pt]
}

// Value returns the static material value of one instance of the piece
// type, in centipawns.
func (pt PieceType) Value() Value {
	return pieceTypeValues[pt]
}

var pieceTypeValues = [PtLength]Value{0, 100, 350, 350, 500, 1000, 100_000}

// GamePhaseMax is the game-phase value of the starting position: four
// knights, four bishops, four rooks and two queens.
const GamePhaseMax = 24

var gamePhaseValues = [PtLength]int{0, 0, 1, 1, 2, 4, 0}

// GamePhaseValue returns how much one instance of the piece type
// contributes to the game-phase counter, used to taper Score between its
// middlegame and endgame values.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValues[pt]
}

// Piece is one of the twelve occupied-square values or PieceNone for an
// empty square. Piece = PieceType + 6*Color for occupied squares (1..12),
// so PieceType is recovered as ((int(p)-1) % 6) + 1.
type Piece int8

const (
	PieceNone Piece = 0

	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceLength = 13
)

// MakePiece builds a Piece out of a color and a piece type. MakePiece(c,
// PtNone) returns PieceNone regardless of c.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	return Piece(int(pt) + int(c)*6)
}

// TypeOf returns the PieceType of a piece; PtNone for PieceNone.
func (p Piece) TypeOf() PieceType {
	if p == PieceNone {
		return PtNone
	}
	return PieceType(((int(p) - 1) % 6) + 1)
}

// ColorOf returns the Color of a piece; NoColor for PieceNone.
func (p Piece) ColorOf() Color {
	if p == PieceNone {
		return NoColor
	}
	if int(p) <= 6 {
		return White
	}
	return Black
}

var pieceChars = [PieceLength]string{".", "P", "N", "B", "R", "Q", "K", "p", "n", "b", "r", "q", "k"}

func (p Piece) String() string {
	return pieceChars[p]
}

// Value is a signed centipawn score, also used for search bounds.
type Value int32

const (
	ValueZero    Value = 0
	ValueDraw    Value = 0
	ValueMate    Value = 100_000
	ValueInf     Value = ValueMate + 1
	ValueNone    Value = 1 << 20
	MaxPly             = 128

	// ValueNA marks a transposition-table field as "not present", distinct
	// from any value a real search or eval could produce.
	ValueNA Value = -ValueInf - 1
)

// ValueType tags what a stored search value means relative to the window
// it was computed in.
type ValueType int8

const (
	BoundNone  ValueType = iota // slot generated but never searched to completion
	BoundExact                  // the true minimax value
	BoundUpper                  // failed low: value <= alpha
	BoundLower                  // failed high: value >= beta
	boundLength
)

func (vt ValueType) IsValid() bool { return vt >= BoundNone && vt < boundLength }

var valueTypeNames = [boundLength]string{"none", "exact", "upper", "lower"}

func (vt ValueType) String() string { return valueTypeNames[vt] }

// IsMateScore reports whether v encodes a forced mate (at any distance).
func (v Value) IsMateScore() bool {
	if v < 0 {
		v = -v
	}
	return v > ValueMate-MaxPly
}

func (v Value) String() string {
	return fmt.Sprintf("%d", int(v))
}

// Score carries a middlegame and an endgame value for tapered evaluation.
type Score struct {
	MidGameValue int16
	EndGameValue int16
}

// Add accumulates another score into the receiver.
func (s *Score) Add(o Score) {
	s.MidGameValue += o.MidGameValue
	s.EndGameValue += o.EndGameValue
}

// Sub removes another score from the receiver.
func (s *Score) Sub(o Score) {
	s.MidGameValue -= o.MidGameValue
	s.EndGameValue -= o.EndGameValue
}

// AddFlat adds v to both the midgame and endgame value, for terms that are
// not phase-dependent and so should evaluate to the same number regardless
// of ValueFromScore's interpolation factor.
func (s *Score) AddFlat(v int16) {
	s.MidGameValue += v
	s.EndGameValue += v
}

// ValueFromScore interpolates between the midgame and endgame values using
// a game phase factor in [0,1] where 1 is full material (opening).
func (s Score) ValueFromScore(gamePhaseFactor float64) Value {
	mg := float64(s.MidGameValue) * gamePhaseFactor
	eg := float64(s.EndGameValue) * (1 - gamePhaseFactor)
	return Value(mg + eg)
}

// CastlingRights is a 4-bit mask over the four castling availabilities.
type CastlingRights uint8

const (
	CastlingNone       CastlingRights = 0
	WhiteOO            CastlingRights = 1 << 0
	WhiteOOO           CastlingRights = 1 << 1
	BlackOO            CastlingRights = 1 << 2
	BlackOOO           CastlingRights = 1 << 3
	CastlingAny        CastlingRights = WhiteOO | WhiteOOO | BlackOO | BlackOOO
	CastlingRightsLength = 16
)

// Has reports whether all bits of mask are set.
func (cr CastlingRights) Has(mask CastlingRights) bool {
	return cr&mask == mask
}

func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(WhiteOO) {
		s += "K"
	}
	if cr.Has(WhiteOOO) {
		s += "Q"
	}
	if cr.Has(BlackOO) {
		s += "k"
	}
	if cr.Has(BlackOOO) {
		s += "q"
	}
	return s
}

// Direction is a signed square-index delta used to step rays and leaper
// offsets. Values match the rank-major square numbering (a1=0 .. h8=63).
type Direction int8

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = 9
	Northwest Direction = 7
	Southeast Direction = -7
	Southwest Direction = -9
)
