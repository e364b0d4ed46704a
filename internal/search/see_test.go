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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chesskit/engine/internal/attacks"
	"github.com/chesskit/engine/internal/position"
	. "github.com/chesskit/engine/internal/types"
)

func TestLeastValuableAttacker(t *testing.T) {
	p, err := position.NewPositionFromFEN("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3")
	assert.NoError(t, err)

	attackers := attacks.AttacksTo(p, SqE5, Black)
	lva := leastValuableAttacker(p, attackers, Black)
	assert.Equal(t, SqG6, lva)

	attackers = attackers.Pop(lva)
	lva = leastValuableAttacker(p, attackers, Black)
	assert.Equal(t, SqD7, lva)

	attackers = attackers.Pop(lva)
	lva = leastValuableAttacker(p, attackers, Black)
	assert.Equal(t, SqB2, lva)

	attackers = attackers.Pop(lva)
	lva = leastValuableAttacker(p, attackers, Black)
	assert.Equal(t, SqE6, lva)

	attackers = attackers.Pop(lva)
	lva = leastValuableAttacker(p, attackers, Black)
	assert.Equal(t, SqNone, lva)
}

func TestSeeWinningRookCapture(t *testing.T) {
	// black rook on d8 hangs to the white queen on d1; Qxd8 wins a clean
	// rook for nothing, undefended.
	p, err := position.NewPositionFromFEN("3r2k1/8/8/8/8/8/8/3Q2K1 w - -")
	assert.NoError(t, err)

	move := NewMove(SqD1, SqD8, Capture, WhiteQueen, BlackRook, White, PtNone)
	assert.Equal(t, Rook.Value(), see(p, move))
}

func TestSeeKnightTakesDefendedBishop(t *testing.T) {
	// the bishop on d7 is defended only by the rook on d8; after Nxd7 Rxd7
	// white has traded its knight for the bishop, so SEE is at least the
	// bishop's value minus the knight's.
	p, err := position.NewPositionFromFEN("3r4/3b4/5p2/4N3/8/8/4Q3/6K1 w - -")
	assert.NoError(t, err)

	move := NewMove(SqE5, SqD7, Capture, WhiteKnight, BlackBishop, White, PtNone)
	assert.True(t, see(p, move) >= Bishop.Value()-Knight.Value())
}

func TestSeeEnPassantIsNeverLosing(t *testing.T) {
	p, err := position.NewPositionFromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6")
	assert.NoError(t, err)

	move := NewMove(SqE5, SqD6, EnPassant, WhitePawn, BlackPawn, White, PtNone)
	assert.Equal(t, Pawn.Value(), see(p, move))
}
