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

// Package search implements a synchronous, cooperatively time-bounded
// principal variation search over a Position: iterative deepening calls
// pvs at growing depths, reusing the transposition table to order the
// previous iteration's best move first, until the time budget passed to
// SearchWithTime runs out or a forced mate is proven.
//
// The search never runs on its own goroutine and never interrupts
// itself involuntarily - a caller gets control back only when
// SearchWithTime returns, after the current iteration has noticed the
// budget is spent and unwound.
package search

import (
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chesskit/engine/internal/config"
	"github.com/chesskit/engine/internal/evaluator"
	"github.com/chesskit/engine/internal/history"
	myLogging "github.com/chesskit/engine/internal/logging"
	"github.com/chesskit/engine/internal/movegen"
	"github.com/chesskit/engine/internal/moveslice"
	"github.com/chesskit/engine/internal/position"
	"github.com/chesskit/engine/internal/transpositiontable"
	. "github.com/chesskit/engine/internal/types"
	"github.com/chesskit/engine/internal/util"
)

var out = message.NewPrinter(language.German)

// qsMaxDepth bounds quiescence recursion below the main search, so a
// long forcing sequence of checks and recaptures can't grow unbounded.
const qsMaxDepth = 4

// nullMoveReduction (R) is how much less deep a null-move verification
// search looks, relative to the depth that triggered it.
const nullMoveReduction = 3

// lmrReduction is the fixed depth cut a late, quiet move gets searched
// at before a full-depth re-search is considered.
const lmrReduction = 2

// Search holds everything one line of iterative deepening needs: the
// transposition table, evaluator, move-ordering history, per-ply move
// generators and principal-variation buffers, and the bookkeeping a
// single SearchWithTime call uses to decide when to stop.
type Search struct {
	log *logging.Logger

	tt      *transpositiontable.Table
	eval    *evaluator.Evaluator
	history *history.Table

	mg      [MaxPly]*movegen.MoveGen
	pv      [MaxPly]*moveslice.MoveSlice
	killers [MaxPly][2]Move

	nodes         uint64
	startTime     time.Time
	budget        time.Duration
	rootDepth     int
	stopRequested *util.Bool

	statistics Statistics
	lastResult Result
}

// NewSearch creates a Search with its own transposition table, evaluator
// and history, sized from config.Settings.Search.
func NewSearch() *Search {
	s := &Search{
		log:           myLogging.GetSearchLog(),
		tt:            transpositiontable.NewTable(config.Settings.Search.TTSize),
		eval:          evaluator.NewEvaluator(),
		history:       history.NewTable(),
		stopRequested: util.NewBool(false),
	}
	for i := range s.mg {
		s.mg[i] = movegen.New()
	}
	for i := range s.pv {
		s.pv[i] = moveslice.NewMoveSlice(MaxPly)
	}
	return s
}

// NewGame resets everything that should not carry over between unrelated
// games: the transposition table and the move-ordering history.
func (s *Search) NewGame() {
	s.tt.Clear()
	s.history.Clear()
}

// ClearHash empties the transposition table without touching history.
func (s *Search) ClearHash() {
	s.tt.Clear()
}

// ResizeHash replaces the transposition table with one of the given size
// in megabytes, discarding its contents.
func (s *Search) ResizeHash(sizeInMByte int) {
	s.tt.Resize(sizeInMByte)
}

// LastResult returns the most recently completed iterative-deepening
// result, useful for a UCI driver reporting "info" lines mid-search.
func (s *Search) LastResult() Result {
	return s.lastResult
}

// Statistics returns a copy of the running search counters.
func (s *Search) Statistics() Statistics {
	return s.statistics
}

// RequestStop asks a running search to unwind at its next node-budget
// check and return the best move found so far, as if its time budget had
// just run out. Safe to call from another goroutine while Search or
// SearchWithTime is in progress; a no-op otherwise.
func (s *Search) RequestStop() {
	s.stopRequested.Store(true)
}

// SearchWithTime runs iterative deepening against pos until budgetMs
// milliseconds have elapsed or a forced mate has been found, and
// returns the best move of the last fully completed iteration. It is
// the package's only externally useful entry point: everything else
// (limits, statistics, hash control) exists to support or observe this
// call.
func (s *Search) SearchWithTime(pos *position.Position, budgetMs int) Move {
	return s.Search(pos, NewSearchLimits(), budgetMs)
}

// Search is the same as SearchWithTime but additionally accepts a depth
// or node cap through limits.
func (s *Search) Search(pos *position.Position, limits *Limits, budgetMs int) Move {
	s.startTime = time.Now()
	s.budget = time.Duration(budgetMs) * time.Millisecond
	s.nodes = 0
	s.statistics = Statistics{}
	s.stopRequested.Store(false)
	s.tt.AgeEntries()
	for i := range s.killers {
		s.killers[i] = [2]Move{MoveNone, MoveNone}
	}

	p := pos.Clone()
	return s.iterativeDeepening(p, limits.depthOrMax())
}

// timeUp reports whether the search has used up its time budget or been
// asked to stop early via RequestStop.
func (s *Search) timeUp() bool {
	return s.stopRequested.Load() || time.Since(s.startTime) >= s.budget
}

// iterativeDeepening runs pvs at depths 1, 2, 3, ... reusing the
// transposition table from one depth to the next to order the previous
// best move first, until the budget is spent or a mate is proven. A
// mid-iteration timeout is discarded - the caller always gets the best
// move of the last iteration that ran to completion.
func (s *Search) iterativeDeepening(p *position.Position, maxDepth int) Move {
	bestMove := MoveNone

	for depth := 1; depth <= maxDepth; depth++ {
		s.rootDepth = depth
		s.statistics.CurrentIterationDepth = depth

		value, timedOut := s.pvs(p, depth, 0, -ValueInf, ValueInf, true)
		if timedOut && depth > 1 {
			break
		}

		if s.pv[0].Len() > 0 {
			bestMove = s.pv[0].Front()
			s.lastResult = Result{
				BestMove:    bestMove,
				BestValue:   value,
				SearchDepth: depth,
				SearchTime:  time.Since(s.startTime),
				Nodes:       s.nodes,
				Pv:          *s.pv[0].Clone(),
			}
			s.log.Debug(s.lastResult.String())
		}

		if timedOut || s.timeUp() || value.IsMateScore() {
			break
		}
	}

	if bestMove == MoveNone {
		// the very first iteration timed out before completing a single
		// move - fall back to whatever the move generator hands back
		// first rather than returning no move at all.
		legal := s.mg[0].GenerateLegalMoves(p, movegen.GenAll)
		if legal.Len() > 0 {
			bestMove = legal.At(0)
		}
	}
	return bestMove
}
