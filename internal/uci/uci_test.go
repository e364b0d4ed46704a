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

package uci

import (
	"os"
	"path"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chesskit/engine/internal/config"
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

func TestUciCommandAdvertisesNameAndOptions(t *testing.T) {
	h := NewHandler()
	out := h.Command("uci")
	assert.Contains(t, out, "id name "+engineName)
	assert.Contains(t, out, "id author "+engineAuthor)
	assert.Contains(t, out, "option name Hash")
	assert.Contains(t, out, "uciok")
}

func TestIsReadyRespondsReadyOk(t *testing.T) {
	h := NewHandler()
	assert.Equal(t, "readyok\n", h.Command("isready"))
}

func TestPositionStartposThenMoves(t *testing.T) {
	h := NewHandler()
	out := h.Command("position startpos moves e2e4 e7e5")
	assert.Empty(t, out)
	assert.Equal(t, 2, h.pos.FullMoveNumber())
}

func TestPositionFenWithMoves(t *testing.T) {
	h := NewHandler()
	out := h.Command("position fen 6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - - moves e1e8")
	assert.Empty(t, out)
	assert.True(t, h.pos.InCheck())
}

func TestPositionRejectsIllegalMove(t *testing.T) {
	h := NewHandler()
	out := h.Command("position startpos moves e2e5")
	assert.Contains(t, out, "info string")
}

func TestGoMovetimeReturnsBestmove(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	out := h.Command("go movetime 100")
	assert.True(t, strings.HasPrefix(out, "bestmove "))
}

func TestGoDepthReturnsBestmove(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	out := h.Command("go depth 1")
	assert.True(t, strings.HasPrefix(out, "bestmove "))
}

func TestGoWtimeBtimeTranslatesToABudget(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	out := h.Command("go wtime 2000 btime 2000 winc 0 binc 0")
	assert.True(t, strings.HasPrefix(out, "bestmove "))
}

func TestGoMalformedReportsInfoString(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	out := h.Command("go depth notanumber")
	assert.Contains(t, out, "info string")
}

func TestGoInfiniteIsStoppedByStop(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	h.Command("go infinite")

	// give the background search a moment to actually start before
	// asking it to stop.
	time.Sleep(20 * time.Millisecond)
	h.srch.RequestStop()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		h.mu.Lock()
		searching := h.searching
		h.mu.Unlock()
		if !searching {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("go infinite did not stop after RequestStop")
}

func TestSetOptionHashResizesTable(t *testing.T) {
	h := NewHandler()
	h.Command("setoption name Hash value 16")
	assert.Equal(t, 16, config.Settings.Search.TTSize)
}

func TestSetOptionClearHash(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	h.Command("go depth 2")
	h.Command("setoption name Clear Hash")
}

func TestUciNewGameResetsPosition(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos moves e2e4")
	h.Command("ucinewgame")
	assert.Equal(t, 1, h.pos.FullMoveNumber())
}

func TestQuitEndsTheSession(t *testing.T) {
	h := NewHandler()
	assert.True(t, h.handleCommand("quit"))
}
