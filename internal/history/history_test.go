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

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/chesskit/engine/internal/types"
)

func TestAddAndPenalize(t *testing.T) {
	h := NewTable()
	h.Add(White, SqE2, SqE4, 4)
	assert.EqualValues(t, 1<<4, h.Count[White][SqE2][SqE4])

	h.Add(White, SqE2, SqE4, 4)
	assert.EqualValues(t, 2*(1<<4), h.Count[White][SqE2][SqE4])

	h.Penalize(White, SqE2, SqE4, 5)
	assert.EqualValues(t, 0, h.Count[White][SqE2][SqE4])
}

func TestCounterMove(t *testing.T) {
	h := NewTable()
	last := NewMove(SqD2, SqD4, Quiet, WhitePawn, PieceNone, White, PtNone)
	reply := NewMove(SqG8, SqF6, Quiet, BlackKnight, PieceNone, Black, PtNone)

	assert.Equal(t, MoveNone, h.CounterMove(last))

	h.SetCounterMove(last, reply)
	assert.Equal(t, reply, h.CounterMove(last))
}

func TestClear(t *testing.T) {
	h := NewTable()
	h.Add(White, SqE2, SqE4, 4)
	h.SetCounterMove(NewMove(SqD2, SqD4, Quiet, WhitePawn, PieceNone, White, PtNone),
		NewMove(SqG8, SqF6, Quiet, BlackKnight, PieceNone, Black, PtNone))

	h.Clear()

	assert.EqualValues(t, 0, h.Count[White][SqE2][SqE4])
	assert.Equal(t, MoveNone, h.CounterMove(NewMove(SqD2, SqD4, Quiet, WhitePawn, PieceNone, White, PtNone)))
}
