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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/chesskit/engine/internal/config"
	"github.com/chesskit/engine/internal/position"
	. "github.com/chesskit/engine/internal/types"
)

func TestEvalPiecePawnsCache(t *testing.T) {
	Settings.Eval.UsePawnEval = true
	Settings.Eval.UsePawnCache = true

	e := NewEvaluator()
	p := position.NewPosition()
	var score *Score
	e.InitEval(p)

	assert.EqualValues(t, 0, e.pawnCache.len())
	assert.EqualValues(t, 0, e.pawnCache.hits)
	assert.EqualValues(t, 0, e.pawnCache.misses)

	score = e.evaluatePawns()
	assert.EqualValues(t, 1, e.pawnCache.len())
	assert.EqualValues(t, 0, e.pawnCache.hits)
	assert.EqualValues(t, 1, e.pawnCache.misses)

	score2 := e.evaluatePawns()
	assert.EqualValues(t, 1, e.pawnCache.len())
	assert.EqualValues(t, 1, e.pawnCache.hits)
	assert.EqualValues(t, 1, e.pawnCache.misses)

	assert.EqualValues(t, score, score2)

	// the starting position has no doubled, isolated or passed pawns.
	assert.EqualValues(t, 0, score.MidGameValue)
	assert.EqualValues(t, 0, score.EndGameValue)
}

func TestEvalPiecePawns(t *testing.T) {
	Settings.Eval.UsePawnEval = true
	Settings.Eval.UsePawnCache = false

	e := NewEvaluator()
	p := position.NewPosition()
	e.InitEval(p)

	score := e.evaluatePawns()
	out.Printf("Pawns: %v\n", score)
}

func TestEvalPiecePawnsIsolatedAndDoubled(t *testing.T) {
	Settings.Eval.UsePawnEval = true
	Settings.Eval.UsePawnCache = false

	e := NewEvaluator()
	// white: isolated doubled pawns on the a-file, nothing on b; black has
	// no pawns, so only white's penalties show up.
	p, err := position.NewPositionFromFEN("4k3/8/8/8/P7/P7/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	e.InitEval(p)

	score := e.evaluatePawns()
	assert.True(t, score.MidGameValue < 0)
	assert.True(t, score.EndGameValue < 0)
}

func TestEvalPiecePawnsPassed(t *testing.T) {
	Settings.Eval.UsePawnEval = true
	Settings.Eval.UsePawnCache = false

	e := NewEvaluator()
	// a lone advanced white passed pawn against a bare black king.
	p, err := position.NewPositionFromFEN("4k3/8/7P/8/8/8/4K3/8 w - - 0 1")
	assert.NoError(t, err)
	e.InitEval(p)

	score := e.evaluatePawns()
	assert.True(t, score.MidGameValue > 0)
	assert.True(t, score.EndGameValue > 0)
}
