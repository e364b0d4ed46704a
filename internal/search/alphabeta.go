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
	"github.com/chesskit/engine/internal/config"
	"github.com/chesskit/engine/internal/movegen"
	"github.com/chesskit/engine/internal/moveslice"
	"github.com/chesskit/engine/internal/position"
	. "github.com/chesskit/engine/internal/types"
)

// pvs searches p to depth plies (plus any extensions), returning a value
// from the perspective of the side to move at ply and whether the
// search ran out of time before it could finish. ply 0 is the root of
// the current iterative-deepening iteration: unlike every other node it
// never returns early off a transposition-table bound, so the iteration
// always produces a move.
func (s *Search) pvs(p *position.Position, depth, ply int, alpha, beta Value, allowNull bool) (Value, bool) {
	s.nodes++
	s.pv[ply].Clear()

	if ply >= MaxPly-1 {
		return s.staticEval(p), false
	}

	// a node budget check every node would dominate runtime on cheap
	// nodes near the leaves; 2047 is a cheap power-of-two mask.
	if s.nodes&2047 == 0 && s.timeUp() {
		return alpha, true
	}

	if ply > 0 {
		if p.IsThreefoldRepetition() || p.HasInsufficientMaterial() || p.HalfMoveClock() >= 100 {
			return ValueDraw, false
		}
	}

	inCheck := p.InCheck()
	if config.Settings.Search.UseCheckExt && inCheck {
		depth++
		s.statistics.CheckExtensions++
	}

	if depth <= 0 {
		return s.quiescence(p, alpha, beta, ply, 0), false
	}

	if config.Settings.Search.UseMDP {
		if m := -ValueMate + Value(ply); alpha < m {
			alpha = m
		}
		if m := ValueMate - Value(ply) - 1; beta > m {
			beta = m
		}
		if alpha >= beta {
			return alpha, false
		}
	}

	ttMove := MoveNone
	if config.Settings.Search.UseTT {
		if e := s.tt.Probe(p.ZobristKey()); e != nil {
			s.statistics.TTHits++
			ttMove = e.Move()
			if ply > 0 && int(e.Depth()) > depth {
				switch e.Bound() {
				case BoundExact:
					s.statistics.TTCuts++
					return e.Value(), false
				case BoundUpper:
					if config.Settings.Search.UseTTValue && e.Value() < beta {
						beta = e.Value()
					}
				case BoundLower:
					if config.Settings.Search.UseTTValue && e.Value() > alpha {
						alpha = e.Value()
					}
				}
				if alpha >= beta {
					s.statistics.TTCuts++
					return e.Value(), false
				}
			}
		} else {
			s.statistics.TTMisses++
		}
	}

	if config.Settings.Search.UseNullMove && allowNull && !inCheck && ply > 0 &&
		depth > nullMoveReduction && hasNonPawnMaterial(p, p.SideToMove()) {
		p.DoNullMove()
		nullValue, timedOut := s.pvs(p, depth-1-nullMoveReduction, ply+1, -beta, -beta+1, false)
		nullValue = -nullValue
		p.UndoNullMove()
		if timedOut {
			return alpha, true
		}
		if nullValue >= beta {
			s.statistics.NullMoveCutoffs++
			return beta, false
		}
	}

	moves := s.mg[ply].GenerateLegalMoves(p, movegen.GenAll)
	if moves.Len() == 0 {
		if inCheck {
			s.statistics.Checkmates++
			return -ValueMate + Value(ply), false
		}
		s.statistics.Stalemates++
		return ValueDraw, false
	}

	us := p.SideToMove()
	s.orderMoves(moves, ttMove, ply, us)

	originalAlpha := alpha
	bestValue := -ValueInf
	bestMove := MoveNone
	staticEval := s.staticEval(p)

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		isQuiet := !m.IsCapture() && !m.IsPromotion()

		p.DoMove(m)
		givesCheck := p.InCheck()

		var value Value
		var timedOut bool

		switch {
		case i == 0 || !config.Settings.Search.UsePVS:
			value, timedOut = s.pvs(p, depth-1, ply+1, -beta, -alpha, true)
			value = -value
		default:
			searchDepth := depth - 1
			if config.Settings.Search.UseLmr && i >= config.Settings.Search.LmrMovesSearched &&
				depth >= config.Settings.Search.LmrDepth && isQuiet && !givesCheck {
				value, timedOut = s.pvs(p, depth-1-lmrReduction, ply+1, -alpha-1, -alpha, true)
				value = -value
				if !timedOut && value > alpha {
					s.statistics.LmrResearches++
					value, timedOut = s.pvs(p, searchDepth, ply+1, -alpha-1, -alpha, true)
					value = -value
				}
			} else {
				value, timedOut = s.pvs(p, searchDepth, ply+1, -alpha-1, -alpha, true)
				value = -value
			}
			if !timedOut && value > alpha && value < beta {
				s.statistics.PvsResearches++
				value, timedOut = s.pvs(p, depth-1, ply+1, -beta, -alpha, true)
				value = -value
			}
		}

		p.UndoMove()

		if timedOut {
			return bestValue, true
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
			if value > alpha {
				alpha = value
				s.collectPv(ply, m)
			}
		}

		if alpha >= beta {
			s.statistics.BetaCutoffs++
			if i == 0 {
				s.statistics.BetaCutoffs1st++
			}
			if config.Settings.Search.UseKiller && isQuiet {
				s.storeKiller(ply, m)
				s.history.Add(us, m.From(), m.To(), int8(depth))
			}
			break
		}
		if isQuiet {
			s.history.Penalize(us, m.From(), m.To(), int8(depth))
		}
	}

	if config.Settings.Search.UseTT {
		bound := BoundExact
		switch {
		case bestValue <= originalAlpha:
			bound = BoundUpper
		case bestValue >= beta:
			bound = BoundLower
		}
		s.tt.Put(p.ZobristKey(), bestMove, int8(depth), bestValue, bound, staticEval)
	}

	return bestValue, false
}

// quiescence extends the search along captures, capture-promotions and
// en-passant captures only, so a side can't be credited with a
// static-eval gain that a trivial recapture would immediately erase.
func (s *Search) quiescence(p *position.Position, alpha, beta Value, ply, qDepth int) Value {
	s.nodes++
	s.pv[ply].Clear()

	if ply >= MaxPly-1 {
		return s.staticEval(p)
	}

	standPat := s.staticEval(p)
	if !config.Settings.Search.UseQuiescence || qDepth >= qsMaxDepth {
		return standPat
	}

	if config.Settings.Search.UseQSStandpat {
		if standPat >= beta {
			s.statistics.StandpatCutoffs++
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	captures := s.mg[ply].GenerateCaptures(p)
	s.orderCaptures(captures)

	for i := 0; i < captures.Len(); i++ {
		m := captures.At(i)

		if !m.IsPromotion() {
			gain := m.CapturedPiece().TypeOf().Value()
			if standPat+gain+Value(config.Settings.Search.QsDeltaMargin) < alpha {
				s.statistics.DeltaPrunings++
				continue
			}
		}

		if config.Settings.Search.UseSEE && m.MoveType() != EnPassant && see(p, m) < 0 {
			s.statistics.SEEPrunings++
			continue
		}

		p.DoMove(m)
		value := -s.quiescence(p, -beta, -alpha, ply+1, qDepth+1)
		p.UndoMove()

		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
			s.collectPv(ply, m)
		}
	}

	return alpha
}

// collectPv records m as the new best move at ply and appends the
// principal variation already found one ply deeper.
func (s *Search) collectPv(ply int, m Move) {
	s.pv[ply].Clear()
	s.pv[ply].PushBack(m)
	if ply+1 < MaxPly {
		child := s.pv[ply+1]
		for i := 0; i < child.Len(); i++ {
			s.pv[ply].PushBack(child.At(i))
		}
	}
}

// storeKiller remembers m as a quiet move that caused a cutoff at ply,
// keeping the two most recent distinct killers.
func (s *Search) storeKiller(ply int, m Move) {
	if s.killers[ply][0] == m {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = m
}

// staticEval reads a cached static evaluation out of the transposition
// table when available, falling back to a fresh call to the evaluator.
func (s *Search) staticEval(p *position.Position) Value {
	if config.Settings.Search.UseTT {
		if e := s.tt.GetEntry(p.ZobristKey()); e != nil {
			return e.Eval()
		}
	}
	return s.eval.Evaluate(p)
}

// hasNonPawnMaterial reports whether c has at least one piece that is
// not a king or pawn, the usual zugzwang guard for null-move pruning.
func hasNonPawnMaterial(p *position.Position, c Color) bool {
	return p.PiecesBb(c, Knight) != 0 || p.PiecesBb(c, Bishop) != 0 ||
		p.PiecesBb(c, Rook) != 0 || p.PiecesBb(c, Queen) != 0
}

const (
	ttMoveScore  int32 = 1_000_000
	captureBase  int32 = 800_000
	killerScore0 int32 = 700_001
	killerScore1 int32 = 700_000
)

// moveGainEstimate approximates the material swing of a capture or
// promotion without walking the full exchange, used only to order
// moves - a losing capture still gets tried before quiet moves since
// SEE itself is reserved for quiescence pruning.
func moveGainEstimate(m Move) int32 {
	gain := int32(m.CapturedPiece().TypeOf().Value()) - int32(m.MovedPiece().TypeOf().Value())
	if m.IsPromotion() {
		gain += int32(m.PromotionPiece().Value())
	}
	return gain
}

// orderMoves scores and sorts moves so the search tries the
// transposition-table move first, then captures and promotions by
// estimated gain, then killer moves for this ply, then quiet moves by
// history score.
func (s *Search) orderMoves(moves *moveslice.MoveSlice, ttMove Move, ply int, us Color) {
	killer0, killer1 := s.killers[ply][0], s.killers[ply][1]
	moves.SortByScore(func(m Move) int32 {
		switch {
		case ttMove != MoveNone && m == ttMove:
			return ttMoveScore
		case m.IsCapture() || m.IsPromotion():
			return captureBase + moveGainEstimate(m)
		case m == killer0:
			return killerScore0
		case m == killer1:
			return killerScore1
		default:
			return int32(s.history.Count[us][m.From()][m.To()])
		}
	})
}

// orderCaptures sorts quiescence's capture list by the same gain
// estimate orderMoves uses for captures, so the biggest wins are tried
// (and pruned against) first.
func (s *Search) orderCaptures(moves *moveslice.MoveSlice) {
	moves.SortByScore(moveGainEstimate)
}
