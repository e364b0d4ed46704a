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

package transpositiontable

import (
	"github.com/chesskit/engine/internal/position"
	. "github.com/chesskit/engine/internal/types"
)

// Entry is one slot of the transposition table, bit-packed to 16 bytes so a
// cache line holds four of them.
type Entry struct {
	key   position.Key
	move  uint16
	eval  int16
	value int16
	vmeta uint16 // age:3 bound:2 depth:7, low to high
}

const (
	EntrySize = 16

	ageMask    = uint16(0b0000_0000_0000_0111)
	boundMask  = uint16(0b0000_0000_0001_1000)
	boundShift = uint16(3)
	depthMask  = uint16(0b0000_1111_1110_0000)
	depthShift = uint16(5)
)

func (e *Entry) decreaseAge() {
	if e.Age() > 0 {
		e.vmeta--
	}
}

func (e *Entry) increaseAge() {
	if e.Age() < 7 {
		e.vmeta++
	}
}

// Key returns the full Zobrist key stored in this slot.
func (e *Entry) Key() position.Key { return e.key }

// Move returns the best move found for this position, or MoveNone.
func (e *Entry) Move() Move { return Move(e.move) }

// Value returns the stored search value.
func (e *Entry) Value() Value { return Value(e.value) }

// Eval returns the stored static evaluation.
func (e *Entry) Eval() Value { return Value(e.eval) }

// Depth returns the depth the value was searched to.
func (e *Entry) Depth() int8 { return int8((e.vmeta & depthMask) >> depthShift) }

// Age returns how many generations old this slot is.
func (e *Entry) Age() int8 { return int8(e.vmeta & ageMask) }

// Bound returns what kind of bound Value() represents.
func (e *Entry) Bound() ValueType { return ValueType((e.vmeta & boundMask) >> boundShift) }
