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
	"os"
	"path"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chesskit/engine/internal/config"
	"github.com/chesskit/engine/internal/movegen"
	"github.com/chesskit/engine/internal/position"
	. "github.com/chesskit/engine/internal/types"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	_ = os.Chdir(dir)
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func TestSearchWithTimeFindsMateInOne(t *testing.T) {
	s := NewSearch()
	// white to move, Re1-e8 mates the black king on g8 behind its own pawns.
	p, err := position.NewPositionFromFEN("6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - -")
	assert.NoError(t, err)

	best := s.SearchWithTime(p, 2000)
	assert.Equal(t, NewMove(SqE1, SqE8, Quiet, WhiteRook, PieceNone, White, PtNone), best)
}

func TestSearchWithTimeAlwaysReturnsALegalMove(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()

	best := s.SearchWithTime(p, 200)
	assert.NotEqual(t, MoveNone, best)

	legal := s.mg[0].GenerateLegalMoves(p, movegen.GenAll)
	found := false
	for i := 0; i < legal.Len(); i++ {
		if legal.At(i) == best {
			found = true
			break
		}
	}
	assert.True(t, found)
}

func TestSearchWithTimeHonoursVeryShortBudget(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()

	best := s.SearchWithTime(p, 1)
	assert.NotEqual(t, MoveNone, best)
}

func TestRequestStopInterruptsASearchInProgress(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()

	done := make(chan Move, 1)
	go func() {
		done <- s.SearchWithTime(p, 60_000)
	}()
	time.Sleep(20 * time.Millisecond)
	s.RequestStop()

	select {
	case best := <-done:
		assert.NotEqual(t, MoveNone, best)
	case <-time.After(5 * time.Second):
		t.Fatal("RequestStop did not unwind the search in time")
	}
}

func TestNewGameClearsHashAndHistory(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()

	_ = s.SearchWithTime(p, 50)
	assert.Greater(t, s.tt.Len(), uint64(0))

	s.NewGame()
	assert.EqualValues(t, 0, s.tt.Len())
	assert.EqualValues(t, 0, s.history.Count[White][SqE2][SqE4])
}
