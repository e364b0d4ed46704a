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
//

// Package transpositiontable implements a transposition table for a chess
// search: a single flat, open-addressed, always-consider-replacing array
// keyed by the low bits of the position's Zobrist hash. Table is not safe
// for concurrent use - Resize and Clear in particular must not race a
// search using the same table.
package transpositiontable

import (
	"math"
	"sync"
	"time"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/chesskit/engine/internal/logging"
	"github.com/chesskit/engine/internal/position"
	. "github.com/chesskit/engine/internal/types"
	"github.com/chesskit/engine/internal/util"
)

var out = message.NewPrinter(language.German)

// MB is one megabyte in bytes, used to size the table from config.
const MB = 1024 * 1024

// MaxSizeInMB caps how large a table a config file can request.
const MaxSizeInMB = 65_536

// Table is a transposition table.
type Table struct {
	log                *logging.Logger
	data               []Entry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              Stats
}

// Stats holds running counters on table usage, surfaced through String()
// and used to tune the replacement policy.
type Stats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTable creates a table sized to fit within sizeInMByte, rounding down
// to the nearest power of two number of entries.
func NewTable(sizeInMByte int) *Table {
	tt := &Table{
		log: myLogging.GetLog(),
	}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize changes the table's capacity, discarding all entries.
func (tt *Table) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Warningf("requested TT size of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB)
		sizeInMByte = MaxSizeInMB
	}

	tt.sizeInByte = uint64(sizeInMByte) * MB
	if tt.sizeInByte == 0 {
		tt.maxNumberOfEntries = 0
	} else {
		tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/EntrySize))))
	}
	tt.hashKeyMask = tt.maxNumberOfEntries - 1
	tt.sizeInByte = tt.maxNumberOfEntries * EntrySize
	tt.data = make([]Entry, tt.maxNumberOfEntries)

	tt.log.Infof("TT size %d MByte, capacity %d entries (entry size=%d byte)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(Entry{}))
	tt.log.Debug(util.MemStat())
}

// GetEntry returns a pointer to the slot matching key without touching
// statistics, or nil on a miss.
func (tt *Table) GetEntry(key position.Key) *Entry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	e := &tt.data[tt.hash(key)]
	if e.key == key {
		return e
	}
	return nil
}

// Probe looks up key, counts the probe, and makes the entry one
// generation younger on a hit. Put does not look at an entry's age.
func (tt *Table) Probe(key position.Key) *Entry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	tt.Stats.numberOfProbes++
	e := &tt.data[tt.hash(key)]
	if e.key == key {
		e.decreaseAge()
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores a search result. A slot holding a different position is
// always replaced (always-replace policy: no depth or age comparison),
// and an existing entry for the same position is updated in place
// (preserving its move/eval/value when the caller passes
// MoveNone/ValueNA for them).
func (tt *Table) Put(key position.Key, move Move, depth int8, value Value, bound ValueType, eval Value) {
	if tt.maxNumberOfEntries == 0 {
		return
	}

	e := &tt.data[tt.hash(key)]
	tt.Stats.numberOfPuts++

	if e.key == 0 {
		tt.numberOfEntries++
		e.key = key
		e.move = uint16(move)
		e.eval = int16(eval)
		e.value = int16(value)
		e.vmeta = uint16(depth)<<depthShift + uint16(bound)<<boundShift + 1
		return
	}

	if e.key != key {
		tt.Stats.numberOfCollisions++
		tt.Stats.numberOfOverwrites++
		e.key = key
		e.move = uint16(move)
		e.eval = int16(eval)
		e.value = int16(value)
		e.vmeta = uint16(depth)<<depthShift + uint16(bound)<<boundShift + 1
		return
	}

	tt.Stats.numberOfUpdates++
	if move != MoveNone {
		e.move = uint16(move)
	}
	if eval != ValueNA {
		e.eval = int16(eval)
	}
	if value != ValueNA {
		e.value = int16(value)
		e.vmeta = uint16(depth)<<depthShift + uint16(bound)<<boundShift + 1
	}
}

// Clear discards all entries.
func (tt *Table) Clear() {
	tt.data = make([]Entry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = Stats{}
}

// Hashfull reports how full the table is, in permille, as UCI's "hashfull".
func (tt *Table) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

func (tt *Table) String() string {
	return out.Sprintf("TT: size %d MB max entries %d of size %d bytes entries %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(Entry{}), tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites,
		tt.Stats.numberOfProbes, tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of occupied slots.
func (tt *Table) Len() uint64 { return tt.numberOfEntries }

// AgeEntries bumps every occupied entry's age by one generation, run once
// per iterative-deepening root. The age is reported by Entry.Age; Put's
// always-replace policy does not use it.
func (tt *Table) AgeEntries() {
	start := time.Now()
	if tt.numberOfEntries > 0 {
		const workers = 32
		var wg sync.WaitGroup
		wg.Add(workers)
		slice := tt.maxNumberOfEntries / workers
		for i := uint64(0); i < workers; i++ {
			go func(i uint64) {
				defer wg.Done()
				begin := i * slice
				end := begin + slice
				if i == workers-1 {
					end = tt.maxNumberOfEntries
				}
				for n := begin; n < end; n++ {
					if tt.data[n].key != 0 {
						tt.data[n].increaseAge()
					}
				}
			}(i)
		}
		wg.Wait()
	}
	tt.log.Debugf("aged %d entries of %d in %d ms", tt.numberOfEntries, len(tt.data), time.Since(start).Milliseconds())
}

func (tt *Table) hash(key position.Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}
