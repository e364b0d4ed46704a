/*
 * chesskit - a UCI-compatible chess engine written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 chesskit contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package evaluator

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"

	"github.com/chesskit/engine/internal/config"
	myLogging "github.com/chesskit/engine/internal/logging"
	"github.com/chesskit/engine/internal/position"
	. "github.com/chesskit/engine/internal/types"
)

const (
	// MB is one megabyte in bytes, used to size the pawn cache from config.
	MB = 1024 * 1024

	// MaxSizeInMB caps how large a pawn cache a config file can request.
	MaxSizeInMB = 1_024

	// pawnCacheEntrySize is the size in bytes of one cacheEntry.
	pawnCacheEntrySize = 16
)

// pawnCache maps a pawn-only Zobrist key to an already-evaluated pawn
// structure Score, so pawn structure - expensive relative to the rest of the
// evaluation and unchanged by the majority of moves in a game - is
// recomputed only when the pawn skeleton actually changes.
type pawnCache struct {
	log *logging.Logger

	data               []cacheEntry
	sizeInByte         uint64
	maxNumberOfEntries uint64
	hashKeyMask        uint64

	entries uint64
	hits    uint64
	misses  uint64
	replace uint64
}

type cacheEntry struct {
	pawnKey position.Key
	score   Score
}

func newPawnCache() *pawnCache {
	pc := &pawnCache{
		log: myLogging.GetLog(),
	}
	pc.resize(config.Settings.Eval.PawnCacheSize)
	return pc
}

func (pc *pawnCache) resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		pc.log.Warningf("Requested pawn cache size of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB)
		sizeInMByte = MaxSizeInMB
	}

	pc.sizeInByte = uint64(sizeInMByte) * MB
	if pc.sizeInByte == 0 {
		pc.maxNumberOfEntries = 0
	} else {
		pc.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(pc.sizeInByte/pawnCacheEntrySize))))
	}
	pc.hashKeyMask = pc.maxNumberOfEntries - 1
	pc.sizeInByte = pc.maxNumberOfEntries * pawnCacheEntrySize
	pc.data = make([]cacheEntry, pc.maxNumberOfEntries)

	pc.log.Infof("pawn cache size %d MByte, capacity %d entries (entry size=%d byte)",
		pc.sizeInByte/MB, pc.maxNumberOfEntries, unsafe.Sizeof(cacheEntry{}))
}

// getEntry returns a pointer to the entry matching key, or nil on a miss.
func (pc *pawnCache) getEntry(key position.Key) *cacheEntry {
	if pc.maxNumberOfEntries == 0 {
		return nil
	}
	e := &pc.data[pc.hash(key)]
	if e.pawnKey == key {
		pc.hits++
		return e
	}
	pc.misses++
	return nil
}

// put stores score for the pawn structure identified by key, always
// replacing whatever previously occupied the slot.
func (pc *pawnCache) put(key position.Key, score Score) {
	if pc.maxNumberOfEntries == 0 {
		return
	}
	e := &pc.data[pc.hash(key)]
	if e.pawnKey == 0 {
		pc.entries++
	} else if e.pawnKey != key {
		pc.replace++
	}
	e.pawnKey = key
	e.score = score
}

// clear discards all entries.
func (pc *pawnCache) clear() {
	pc.data = make([]cacheEntry, pc.maxNumberOfEntries)
	pc.entries = 0
	pc.hits = 0
	pc.misses = 0
	pc.replace = 0
}

func (pc *pawnCache) len() uint64 { return pc.entries }

func (pc *pawnCache) hash(key position.Key) uint64 {
	return uint64(key) & pc.hashKeyMask
}
