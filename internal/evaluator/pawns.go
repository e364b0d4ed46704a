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

package evaluator

import (
	. "github.com/chesskit/engine/internal/config"
	. "github.com/chesskit/engine/internal/types"
)

// evaluatePawns scores the pawn skeleton - isolated, doubled, tripled,
// passed, phalanx pawns - for both sides, looked up from e.pawnCache when
// enabled since the pawn structure rarely changes from one node to the
// next.
func (e *Evaluator) evaluatePawns() *Score {
	if Settings.Eval.UsePawnCache {
		key := e.position.PawnKey()
		if entry := e.pawnCache.getEntry(key); entry != nil {
			tmpScore = entry.score
			return &tmpScore
		}
		tmpScore = e.computePawns()
		e.pawnCache.put(key, tmpScore)
		return &tmpScore
	}
	tmpScore = e.computePawns()
	return &tmpScore
}

func (e *Evaluator) computePawns() Score {
	whitePawns := e.position.PiecesBb(White, Pawn)
	blackPawns := e.position.PiecesBb(Black, Pawn)
	score := evalPawnsOf(White, whitePawns, blackPawns)
	black := evalPawnsOf(Black, blackPawns, whitePawns)
	score.Sub(black)
	return score
}

// evalPawnsOf scores every pawn of us against ourPawns/theirPawns, from the
// perspective of us - computePawns negates the black side's contribution.
// Doubled and tripled pawns are only known once every pawn on a file has
// been counted, so the per-file tally is applied in a second pass over the
// eight files rather than while walking the pawns themselves.
func evalPawnsOf(us Color, ourPawns, theirPawns Bitboard) Score {
	var score Score
	var filesCount [FileLength]int
	phalanxFound := false

	remaining := ourPawns
	for remaining != BbZero {
		var sq Square
		sq, remaining = remaining.PopLsb()
		f := sq.FileOf()
		r := sq.RankOf()
		filesCount[f]++

		neighbourFiles := adjacentFilesBb(f)
		forward := sq.To(us.MoveDirection())
		forwardBlocked := forward.IsValid() && theirPawns.Has(forward)

		if ourPawns&neighbourFiles == BbZero {
			if filesCount[f] >= 2 {
				score.AddFlat(Settings.Eval.PawnDoubledAndIsolatedMalus)
			} else {
				score.AddFlat(Settings.Eval.PawnIsolatedMalus)
			}
			if forwardBlocked {
				score.AddFlat(Settings.Eval.PawnIsolatedBlockedMalus)
			}
		} else if !phalanxFound && f >= FileC && f <= FileF && rankQualifiesForPhalanx(us, r) {
			if phalanxMask := neighbourFiles & r.Bb(); ourPawns&phalanxMask != BbZero {
				phalanxFound = true
				score.AddFlat(Settings.Eval.PawnPhalanxBonus)
			}
		}

		if theirPawns&passedPawnMask(us, sq) == BbZero {
			score.AddFlat(Settings.Eval.PawnPassedBonus)
			score.AddFlat(passedPawnRankBonus(us, r))
			if forwardBlocked {
				score.AddFlat(Settings.Eval.PawnBlockedPasserMalus)
			}
		}
	}

	for f := FileA; f <= FileH; f++ {
		switch filesCount[f] {
		case 2:
			score.AddFlat(Settings.Eval.PawnDoubledByFile[f])
		case 3:
			score.AddFlat(Settings.Eval.PawnTripledMalus)
		}
	}

	return score
}

// rankQualifiesForPhalanx reports whether a pawn on r, advancing toward the
// enemy as color us does, has crossed the halfway line - phalanxes behind
// that line are not counted.
func rankQualifiesForPhalanx(us Color, r Rank) bool {
	if us == White {
		return r >= Rank4
	}
	return r <= Rank5
}

// passedPawnRankBonus returns the rank-scaled component of the passed-pawn
// bonus, indexed by how far advanced the pawn already is.
func passedPawnRankBonus(us Color, r Rank) int16 {
	if us == White {
		return Settings.Eval.PawnPassedRankWhite[r]
	}
	return Settings.Eval.PawnPassedRankBlack[r]
}

func adjacentFilesBb(f File) Bitboard {
	var b Bitboard
	if f > FileA {
		b |= (f - 1).Bb()
	}
	if f < FileH {
		b |= (f + 1).Bb()
	}
	return b
}

// passedPawnMask returns the pawn's own file and both neighbour files,
// restricted to the ranks strictly ahead of sq from c's perspective - the
// area that has to be clear of enemy pawns for sq to be a passed pawn.
func passedPawnMask(c Color, sq Square) Bitboard {
	fileMask := sq.FileOf().Bb() | adjacentFilesBb(sq.FileOf())
	var aheadMask Bitboard
	if c == White {
		for r := sq.RankOf() + 1; r < RankNone; r++ {
			aheadMask |= r.Bb()
		}
	} else {
		for r := sq.RankOf() - 1; r >= Rank1; r-- {
			aheadMask |= r.Bb()
		}
	}
	return fileMask & aheadMask
}
