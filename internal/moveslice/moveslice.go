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

// Package moveslice is the single move-list container used throughout this
// module, by move generation, search and perft alike.
package moveslice

import (
	"fmt"
	"strings"

	. "github.com/chesskit/engine/internal/types"
)

// MoveSlice is a slice of Move with list-like helpers. Move lists in this
// engine are shallow and short-lived (one per ply), so a plain slice with
// insertion-sort ordering beats a heap-based priority queue.
type MoveSlice []Move

// NewMoveSlice creates an empty move slice with the given capacity.
func NewMoveSlice(capacity int) *MoveSlice {
	moves := make([]Move, 0, capacity)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored.
func (ms *MoveSlice) Len() int { return len(*ms) }

// Cap returns the capacity of the underlying array.
func (ms *MoveSlice) Cap() int { return cap(*ms) }

// PushBack appends a move at the end of the slice.
func (ms *MoveSlice) PushBack(m Move) { *ms = append(*ms, m) }

// PopBack removes and returns the move at the end of the slice. Panics if
// the slice is empty.
func (ms *MoveSlice) PopBack() Move {
	if len(*ms) == 0 {
		panic("moveslice: PopBack on empty slice")
	}
	m := (*ms)[len(*ms)-1]
	*ms = (*ms)[:len(*ms)-1]
	return m
}

// Front returns the first move. Panics if the slice is empty.
func (ms *MoveSlice) Front() Move {
	if len(*ms) == 0 {
		panic("moveslice: Front on empty slice")
	}
	return (*ms)[0]
}

// Back returns the last move. Panics if the slice is empty.
func (ms *MoveSlice) Back() Move {
	if len(*ms) == 0 {
		panic("moveslice: Back on empty slice")
	}
	return (*ms)[len(*ms)-1]
}

// At returns the move at index i. Panics if i is out of bounds.
func (ms *MoveSlice) At(i int) Move {
	if i < 0 || i >= len(*ms) {
		panic("moveslice: index out of bounds")
	}
	return (*ms)[i]
}

// Set overwrites the move at index i. Panics if i is out of bounds.
func (ms *MoveSlice) Set(i int, m Move) {
	if i < 0 || i >= len(*ms) {
		panic("moveslice: index out of bounds")
	}
	(*ms)[i] = m
}

// Filter keeps only the moves for which keep returns true, reusing the
// underlying array.
func (ms *MoveSlice) Filter(keep func(index int) bool) {
	b := (*ms)[:0]
	for i, m := range *ms {
		if keep(i) {
			b = append(b, m)
		}
	}
	*ms = b
}

// Clone returns a deep copy of the slice.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]Move, ms.Len())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// Equals reports whether ms and other hold the same moves in the same order.
func (ms *MoveSlice) Equals(other *MoveSlice) bool {
	if ms.Len() != other.Len() {
		return false
	}
	for i, m := range *ms {
		if m != (*other)[i] {
			return false
		}
	}
	return true
}

// Clear empties the slice while retaining its capacity, so it can be
// reused at every ply of search without triggering a GC.
func (ms *MoveSlice) Clear() { *ms = (*ms)[:0] }

// SortByScore orders moves from highest to lowest score using a stable
// insertion sort. Move lists here are short and close to already sorted
// (TT move and killers tend to already sit near the front), so insertion
// sort beats a general-purpose sort in practice.
func (ms *MoveSlice) SortByScore(score func(Move) int32) {
	l := len(*ms)
	scores := make([]int32, l)
	for i, m := range *ms {
		scores[i] = score(m)
	}
	for i := 1; i < l; i++ {
		m, s := (*ms)[i], scores[i]
		j := i
		for j > 0 && scores[j-1] < s {
			(*ms)[j] = (*ms)[j-1]
			scores[j] = scores[j-1]
			j--
		}
		(*ms)[j] = m
		scores[j] = s
	}
}

func (ms *MoveSlice) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MoveSlice[%d]{", len(*ms)))
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString("}")
	return sb.String()
}

// StringWire renders the moves as a space separated list of long-algebraic
// wire strings, as used in UCI "bestmove"/"pv" output.
func (ms *MoveSlice) StringWire() string {
	var sb strings.Builder
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.ToWireString())
	}
	return sb.String()
}
