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
	"os"
	"path"
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/chesskit/engine/internal/config"
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

func TestEntrySize(t *testing.T) {
	var e Entry
	assert.EqualValues(t, 16, unsafe.Sizeof(e))
}

func TestNewTable(t *testing.T) {
	tt := NewTable(2)
	assert.Equal(t, uint64(131_072), tt.maxNumberOfEntries)
	assert.Equal(t, 131_072, cap(tt.data))

	tt = NewTable(64)
	assert.Equal(t, uint64(4_194_304), tt.maxNumberOfEntries)

	tt = NewTable(100)
	assert.Equal(t, uint64(4_194_304), tt.maxNumberOfEntries)

	tt = NewTable(0)
	assert.Equal(t, uint64(0), tt.maxNumberOfEntries)
	assert.Nil(t, tt.GetEntry(123))
	assert.Nil(t, tt.Probe(123))
}

func TestGetAndProbe(t *testing.T) {
	tt := NewTable(16)
	pos := position.NewPosition()
	move := NewMove(SqE2, SqE4, Quiet, WhitePawn, PieceNone, White, PtNone)

	tt.Put(pos.ZobristKey(), move, 5, Value(10), BoundExact, Value(20))

	e := tt.GetEntry(pos.ZobristKey())
	assert.Equal(t, pos.ZobristKey(), e.Key())
	assert.Equal(t, move, e.Move())
	assert.EqualValues(t, 5, e.Depth())
	assert.Equal(t, BoundExact, e.Bound())
	assert.EqualValues(t, 1, e.Age())

	// age is reduced by one on a successful probe
	e = tt.Probe(pos.ZobristKey())
	assert.EqualValues(t, 0, e.Age())
	e = tt.Probe(pos.ZobristKey())
	assert.EqualValues(t, 0, e.Age())

	// a different key misses
	assert.Nil(t, tt.Probe(pos.ZobristKey()+1))
}

func TestClear(t *testing.T) {
	tt := NewTable(1)
	pos := position.NewPosition()
	move := NewMove(SqE2, SqE4, Quiet, WhitePawn, PieceNone, White, PtNone)

	tt.Put(pos.ZobristKey(), move, 5, Value(10), BoundExact, Value(20))
	assert.EqualValues(t, 1, tt.Len())

	tt.Clear()
	assert.EqualValues(t, 0, tt.Len())
	assert.Nil(t, tt.Probe(pos.ZobristKey()))
}

func TestPutUpdateAndCollision(t *testing.T) {
	tt := NewTable(4)
	move := NewMove(SqE2, SqE4, Quiet, WhitePawn, PieceNone, White, PtNone)

	tt.Put(position.Key(111), move, 4, Value(111), BoundUpper, Value(5))
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfPuts)

	e := tt.Probe(position.Key(111))
	assert.EqualValues(t, 111, e.Key())
	assert.Equal(t, move, e.Move())
	assert.EqualValues(t, 4, e.Depth())
	assert.Equal(t, BoundUpper, e.Bound())

	// same key: update in place
	tt.Put(position.Key(111), move, 5, Value(112), BoundLower, Value(6))
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfUpdates)
	assert.EqualValues(t, 0, tt.Stats.numberOfCollisions)

	e = tt.GetEntry(position.Key(111))
	assert.EqualValues(t, 5, e.Depth())
	assert.Equal(t, BoundLower, e.Bound())
	assert.EqualValues(t, 112, e.Value())

	// a different key mapping to the same slot is a collision
	collisionKey := position.Key(111 + tt.maxNumberOfEntries)
	tt.Put(collisionKey, move, 6, Value(113), BoundExact, Value(7))
	assert.EqualValues(t, 1, tt.Stats.numberOfCollisions)
}

func TestAgeEntries(t *testing.T) {
	tt := NewTable(4)
	move := NewMove(SqE2, SqE4, Quiet, WhitePawn, PieceNone, White, PtNone)
	tt.Put(position.Key(42), move, 3, Value(1), BoundExact, Value(1))

	e := tt.GetEntry(position.Key(42))
	assert.EqualValues(t, 1, e.Age())

	tt.AgeEntries()
	e = tt.GetEntry(position.Key(42))
	assert.EqualValues(t, 2, e.Age())
}

func TestHashfull(t *testing.T) {
	tt := NewTable(1)
	assert.Equal(t, 0, tt.Hashfull())
	move := NewMove(SqE2, SqE4, Quiet, WhitePawn, PieceNone, White, PtNone)
	for k := 1; k <= 1000; k++ {
		tt.Put(position.Key(k), move, 1, Value(1), BoundExact, Value(1))
	}
	assert.Greater(t, tt.Hashfull(), 0)
}
