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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit word where bit i set means square i is occupied.
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
	BbOne  Bitboard = 1
)

var (
	fileBb = [FileLength]Bitboard{}
	rankBb = [RankLength]Bitboard{}
	sqBb   = [SqLength]Bitboard{}
)

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = BbOne << uint(sq)
	}
	for f := FileA; f < FileNone; f++ {
		var b Bitboard
		for r := Rank1; r < RankNone; r++ {
			b |= sqBb[MakeSquare(f, r)]
		}
		fileBb[f] = b
	}
	for r := Rank1; r < RankNone; r++ {
		var b Bitboard
		for f := FileA; f < FileNone; f++ {
			b |= sqBb[MakeSquare(f, r)]
		}
		rankBb[r] = b
	}
}

const (
	FileABb = Bitboard(0x0101010101010101)
	FileHBb = Bitboard(0x8080808080808080)
	Rank1Bb = Bitboard(0x00000000000000FF)
	Rank8Bb = Bitboard(0xFF00000000000000)

	// CenterSquares is d4/d5/e4/e5.
	CenterSquares = Bitboard(0x0000001818000000)
)

var (
	kingSideCastleMask  [ColorLength]Bitboard
	queenSideCastleMask [ColorLength]Bitboard
	squaresColorBb      [ColorLength]Bitboard
)

func init() {
	kingSideCastleMask[White] = SqF1.Bb() | SqG1.Bb() | SqH1.Bb()
	kingSideCastleMask[Black] = SqF8.Bb() | SqG8.Bb() | SqH8.Bb()
	queenSideCastleMask[White] = SqB1.Bb() | SqC1.Bb() | SqD1.Bb()
	queenSideCastleMask[Black] = SqB8.Bb() | SqC8.Bb() | SqD8.Bb()

	for sq := SqA1; sq < SqNone; sq++ {
		if (int(sq.FileOf())+int(sq.RankOf()))%2 == 0 {
			squaresColorBb[Black] |= sq.Bb()
		} else {
			squaresColorBb[White] |= sq.Bb()
		}
	}
}

// KingSideCastleMask returns the kingside rook/knight/bishop squares (not
// including the king's own square) used to judge a king-side pawn shield.
func KingSideCastleMask(c Color) Bitboard {
	return kingSideCastleMask[c]
}

// QueenSideCastMask returns the queenside squares symmetric to
// KingSideCastleMask.
func QueenSideCastMask(c Color) Bitboard {
	return queenSideCastleMask[c]
}

// SquaresBb returns every square of the given "color" (light/dark), e.g. to
// test whether a side's bishops sit on the same complex.
func SquaresBb(c Color) Bitboard {
	return squaresColorBb[c]
}

// Bb returns the singleton bitboard of the square.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// Bb returns the bitboard of all squares on the file.
func (f File) Bb() Bitboard {
	return fileBb[f]
}

// Bb returns the bitboard of all squares on the rank.
func (r Rank) Bb() Bitboard {
	return rankBb[r]
}

// Has reports whether the square's bit is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sqBb[sq] != 0
}

// Push returns b with sq's bit set.
func (b Bitboard) Push(sq Square) Bitboard {
	return b | sqBb[sq]
}

// Pop returns b with sq's bit cleared.
func (b Bitboard) Pop(sq Square) Bitboard {
	return b &^ sqBb[sq]
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the least significant set square, or SqNone if empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least significant set square and the bitboard with
// that bit cleared.
func (b Bitboard) PopLsb() (Square, Bitboard) {
	sq := b.Lsb()
	return sq, b & (b - 1)
}

// Shift moves every bit of b by one square in direction d, clearing bits
// that would wrap around a board edge.
func Shift(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) << 9
	case Northwest:
		return (b &^ FileABb) << 7
	case Southeast:
		return (b &^ FileHBb) >> 7
	case Southwest:
		return (b &^ FileABb) >> 9
	}
	return b
}

func (b Bitboard) String() string {
	sb := strings.Builder{}
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f < FileNone; f++ {
			if b.Has(MakeSquare(f, r)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		if r > Rank1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
