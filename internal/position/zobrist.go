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

package position

import (
	. "github.com/chesskit/engine/internal/types"
)

// Key is a Zobrist hash used to index the transposition table and to
// detect repetitions.
type Key uint64

// zobrist holds the random keys XORed into a Position's hash. It is
// filled once from a fixed seed so hashes are reproducible across runs.
type zobrist struct {
	pieces         [PieceLength][SqLength]Key
	castlingRights [CastlingRightsLength]Key
	enPassantFile  [FileLength]Key
	sideToMove     Key
}

var zobristKeys zobrist

// convention: the side-to-move key is XORed into the hash whenever it is
// Black's turn, and toggled on every non-null and null move alike when the
// side to move flips. This is the one convention used everywhere in this
// module, resolving the two inconsistent conventions spec.md flags.
func init() {
	r := NewPrnGForZobrist()
	for pc := Piece(0); pc < PieceLength; pc++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			zobristKeys.pieces[pc][sq] = Key(r.Rand64())
		}
	}
	for cr := 0; cr < CastlingRightsLength; cr++ {
		zobristKeys.castlingRights[cr] = Key(r.Rand64())
	}
	for f := FileA; f < FileNone; f++ {
		zobristKeys.enPassantFile[f] = Key(r.Rand64())
	}
	zobristKeys.sideToMove = Key(r.Rand64())
}

// NewPrnGForZobrist seeds the shared xorshift64* generator with the fixed
// constant used for Zobrist key generation. Kept as its own entry point so
// the seed is documented in one place.
func NewPrnGForZobrist() *PrnG {
	return NewPrnG(1070372)
}

func zobristPiece(pc Piece, sq Square) Key {
	return zobristKeys.pieces[pc][sq]
}

func zobristCastling(cr CastlingRights) Key {
	return zobristKeys.castlingRights[cr]
}

func zobristEnPassant(sq Square) Key {
	if sq == SqNone {
		return 0
	}
	return zobristKeys.enPassantFile[sq.FileOf()]
}

func zobristSide() Key {
	return zobristKeys.sideToMove
}

// computeZobrist recomputes the hash of p from scratch by XORing the keys
// of every (piece, square) present plus castling rights, en-passant file
// and the side-to-move key. Used by tests to verify incremental updates
// never drift from the from-scratch value.
func computeZobrist(p *Position) Key {
	var k Key
	for sq := SqA1; sq <= SqH8; sq++ {
		if pc := p.board[sq]; pc != PieceNone {
			k ^= zobristPiece(pc, sq)
		}
	}
	k ^= zobristCastling(p.castlingRights)
	k ^= zobristEnPassant(p.enPassantSquare)
	if p.sideToMove == Black {
		k ^= zobristSide()
	}
	return k
}
