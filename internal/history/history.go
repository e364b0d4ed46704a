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

// Package history holds the move-ordering tables a search fills in as it
// runs: a from/to history score per color, rewarded when a quiet move
// causes a beta cutoff and penalized when a quiet move is searched but
// fails to, plus one counter-move per opponent from/to pair.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/chesskit/engine/internal/types"
)

var out = message.NewPrinter(language.German)

// Table is updated during search to give the move generator's ordering
// step a signal beyond static evaluation: quiet moves that have cut off
// a search before at this kind of from/to pair are tried earlier.
type Table struct {
	Count        [ColorLength][SqLength][SqLength]int64
	CounterMoves [SqLength][SqLength]Move
}

// NewTable creates an empty history table.
func NewTable() *Table {
	return &Table{}
}

// Add rewards a quiet move that caused a cutoff, weighted by depth so a
// cutoff found deep in the tree counts for more than a shallow one.
func (h *Table) Add(c Color, from, to Square, depth int8) {
	h.Count[c][from][to] += 1 << uint(depth)
}

// Penalize reduces the score of a quiet move that was searched but did not
// cause a cutoff, so a move that keeps failing gradually sinks in the
// ordering even if it once scored a lucky cutoff.
func (h *Table) Penalize(c Color, from, to Square, depth int8) {
	h.Count[c][from][to] -= 1 << uint(depth)
	if h.Count[c][from][to] < 0 {
		h.Count[c][from][to] = 0
	}
}

// SetCounterMove records move as the response to lastMove.
func (h *Table) SetCounterMove(lastMove, move Move) {
	h.CounterMoves[lastMove.From()][lastMove.To()] = move
}

// CounterMove returns the recorded response to lastMove, or MoveNone.
func (h *Table) CounterMove(lastMove Move) Move {
	return h.CounterMoves[lastMove.From()][lastMove.To()]
}

// Clear resets every count and counter move, run between searches of
// unrelated games so old history does not bias move ordering.
func (h *Table) Clear() {
	*h = Table{}
}

func (h *Table) String() string {
	sb := strings.Builder{}
	for from := SqA1; from < SqNone; from++ {
		for to := SqA1; to < SqNone; to++ {
			white := h.Count[White][from][to]
			black := h.Count[Black][from][to]
			if white == 0 && black == 0 {
				continue
			}
			sb.WriteString(out.Sprintf("%s%s: w=%-7d b=%-7d", from.String(), to.String(), white, black))
			if cm := h.CounterMoves[from][to]; cm != MoveNone {
				sb.WriteString(out.Sprintf(" cm=%s", cm.ToWireString()))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
