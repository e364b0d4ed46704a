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
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chesskit/engine/internal/movegen"
	"github.com/chesskit/engine/internal/position"
	. "github.com/chesskit/engine/internal/types"
)

func TestPvsReturnsExactValueAtShallowDepth(t *testing.T) {
	s := NewSearch()
	s.startTime = time.Now()
	s.budget = 5 * time.Second

	p := position.NewPosition()
	value, timedOut := s.pvs(p, 3, 0, -ValueInf, ValueInf, true)
	assert.False(t, timedOut)
	assert.True(t, value > -ValueMate && value < ValueMate)
	assert.Greater(t, s.pv[0].Len(), 0)
}

func TestPvsDetectsStalemate(t *testing.T) {
	s := NewSearch()
	s.startTime = time.Now()
	s.budget = 5 * time.Second

	// black to move, no legal move, not in check: stalemate.
	p, err := position.NewPositionFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - -")
	assert.NoError(t, err)

	value, timedOut := s.pvs(p, 2, 1, -ValueInf, ValueInf, true)
	assert.False(t, timedOut)
	assert.Equal(t, ValueDraw, value)
}

func TestPvsDetectsCheckmate(t *testing.T) {
	s := NewSearch()
	s.startTime = time.Now()
	s.budget = 5 * time.Second

	// black to move, checkmated by the rook on e8.
	p, err := position.NewPositionFromFEN("4R1k1/5ppp/8/8/8/8/8/6K1 b - -")
	assert.NoError(t, err)

	value, timedOut := s.pvs(p, 2, 1, -ValueInf, ValueInf, true)
	assert.False(t, timedOut)
	assert.True(t, value.IsMateScore())
	assert.True(t, value < 0)
}

func TestPvsReturnsImmediatelyOnTimeout(t *testing.T) {
	s := NewSearch()
	s.startTime = time.Now().Add(-time.Hour)
	s.budget = time.Millisecond

	p := position.NewPosition()
	_, timedOut := s.pvs(p, 6, 0, -ValueInf, ValueInf, true)
	assert.True(t, timedOut)
}

func TestQuiescenceStandPatCutsOffWithNoCaptures(t *testing.T) {
	s := NewSearch()
	s.startTime = time.Now()
	s.budget = 5 * time.Second

	p := position.NewPosition()
	value := s.quiescence(p, -ValueInf, ValueInf, 0, 0)
	assert.Equal(t, s.eval.Evaluate(p), value)
}

func TestOrderMovesPutsTtMoveFirst(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	moves := s.mg[0].GenerateLegalMoves(p, movegen.GenAll)

	target := moves.At(moves.Len() - 1)
	s.orderMoves(moves, target, 0, White)
	assert.Equal(t, target, moves.At(0))
}

func TestStoreKillerKeepsTwoMostRecentDistinctMoves(t *testing.T) {
	s := NewSearch()
	m1 := NewMove(SqE2, SqE4, Quiet, WhitePawn, PieceNone, White, PtNone)
	m2 := NewMove(SqD2, SqD4, Quiet, WhitePawn, PieceNone, White, PtNone)

	s.storeKiller(0, m1)
	s.storeKiller(0, m2)
	assert.Equal(t, m2, s.killers[0][0])
	assert.Equal(t, m1, s.killers[0][1])

	// storing the current first killer again is a no-op.
	s.storeKiller(0, m2)
	assert.Equal(t, m2, s.killers[0][0])
	assert.Equal(t, m1, s.killers[0][1])
}
