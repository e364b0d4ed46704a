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

// Package evaluator turns a position into a centipawn Value from the
// perspective of the side to move, combining material, piece-square
// tables, pawn structure, mobility, king safety and a handful of
// piece-specific and development heuristics.
package evaluator

import (
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chesskit/engine/internal/attacks"
	"github.com/chesskit/engine/internal/config"
	myLogging "github.com/chesskit/engine/internal/logging"
	"github.com/chesskit/engine/internal/position"
	. "github.com/chesskit/engine/internal/types"
)

var out = message.NewPrinter(language.German)

// Evaluator holds the scratch state - attack tables, the pawn cache -
// reused across calls to Evaluate so a search does not allocate on every
// node.
type Evaluator struct {
	log *logging.Logger

	position        *position.Position
	gamePhaseFactor float64
	us              Color
	them            Color
	allPieces       Bitboard
	ourPieces       Bitboard

	score Score

	attack *attacks.Attacks

	pawnCache *pawnCache
}

// tmpScore is reused across evalPiece/evalKing/evaluatePawns calls to avoid
// allocating a Score per piece evaluated.
var tmpScore Score

// threshold is the lazy-eval bail-out value per game-phase step, doubled at
// the start of the game and tapering to the configured base as material
// comes off the board.
var threshold [GamePhaseMax + 1]int16

func init() {
	for i := 0; i <= GamePhaseMax; i++ {
		gamePhaseFactor := float64(i) / GamePhaseMax
		threshold[i] = config.Settings.Eval.LazyEvalThreshold + int16(float64(config.Settings.Eval.LazyEvalThreshold)*gamePhaseFactor)
	}
}

// NewEvaluator creates a ready-to-use Evaluator.
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		log:    myLogging.GetLog(),
		attack: attacks.NewAttacks(),
	}
	if config.Settings.Eval.UsePawnCache {
		e.pawnCache = newPawnCache()
	} else {
		e.log.Info("pawn cache disabled in configuration")
	}
	return e
}

// InitEval populates the per-position scratch fields InitEval/Evaluate share
// with the piece-specific helpers below. Exported separately from Evaluate
// so tests can run single evaluation steps against a fixed position.
func (e *Evaluator) InitEval(p *position.Position) {
	e.position = p
	e.gamePhaseFactor = p.GamePhaseFactor()
	e.us = p.SideToMove()
	e.them = e.us.Flip()
	e.allPieces = e.position.OccupiedAll()
	e.ourPieces = e.position.OccupiedBb(e.us)

	e.score.MidGameValue = 0
	e.score.EndGameValue = 0

	if config.Settings.Eval.UseMobility {
		e.attack.Clear()
	}
}

// Evaluate scores p from the perspective of the side to move.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	e.InitEval(p)
	return e.evaluate()
}

// value tapers the accumulated mid/end scores by the current game phase.
func (e *Evaluator) value() Value {
	return e.score.ValueFromScore(e.gamePhaseFactor)
}

// evaluate assumes InitEval has already been called and runs every
// configured heuristic in turn, always accumulating from White's point of
// view - finalEval flips the sign for Black at the very end.
func (e *Evaluator) evaluate() Value {
	if e.position.HasInsufficientMaterial() {
		return ValueDraw
	}

	if config.Settings.Eval.UseMaterialEval {
		e.score.MidGameValue = int16(e.position.Material(White) - e.position.Material(Black))
		e.score.EndGameValue = e.score.MidGameValue
	}

	if config.Settings.Eval.UsePositionalEval {
		e.score.MidGameValue += int16(e.position.PsqMidValue(White) - e.position.PsqMidValue(Black))
		e.score.EndGameValue += int16(e.position.PsqEndValue(White) - e.position.PsqEndValue(Black))
	}

	if config.Settings.Eval.UseLazyEval {
		if v := e.value(); v > Value(threshold[e.position.GamePhase()]) {
			return e.finalEval(v)
		}
	}

	if config.Settings.Eval.UsePawnEval {
		e.score.Add(*e.evaluatePawns())
	}

	if config.Settings.Eval.UseMobility {
		e.attack.Compute(e.position)
	}

	if config.Settings.Eval.UseAdvancedPieceEval {
		e.score.Add(*e.evalPiece(White, Knight))
		e.score.Sub(*e.evalPiece(Black, Knight))
		e.score.Add(*e.evalPiece(White, Bishop))
		e.score.Sub(*e.evalPiece(Black, Bishop))
		e.score.Add(*e.evalPiece(White, Rook))
		e.score.Sub(*e.evalPiece(Black, Rook))
		e.score.Add(*e.evalPiece(White, Queen))
		e.score.Sub(*e.evalPiece(Black, Queen))
	}

	if config.Settings.Eval.UseKingEval {
		e.score.Add(*e.evalKing(White))
		e.score.Sub(*e.evalKing(Black))
	}

	if config.Settings.Eval.UseDevelopmentEval {
		e.evalDevelopment()
	}

	return e.finalEval(e.value())
}

// finalEval flips value to the side-to-move's perspective.
func (e *Evaluator) finalEval(value Value) Value {
	return value * Value(e.position.SideToMove().Direction())
}

// evalPiece scores every piece of pieceType and color c, excluding pawns
// and the king which have their own dedicated evaluators.
func (e *Evaluator) evalPiece(c Color, pieceType PieceType) *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	pieceBb := e.position.PiecesBb(c, pieceType)
	if pieceBb == BbZero {
		return &tmpScore
	}

	switch pieceType {
	case Knight:
		for pieceBb != BbZero {
			var sq Square
			sq, pieceBb = pieceBb.PopLsb()
			e.knightEval(c, sq)
		}
	case Bishop:
		if pieceBb.PopCount() > 1 {
			tmpScore.AddFlat(config.Settings.Eval.BishopPairBonus)
		}
		for pieceBb != BbZero {
			var sq Square
			sq, pieceBb = pieceBb.PopLsb()
			e.bishopEval(c, sq)
		}
		if config.Settings.Eval.UseMobility {
			tmpScore.AddFlat(int16(e.attack.MobilityByPieceType[c][Bishop]) * config.Settings.Eval.BishopMobilityBonus)
		}
	case Rook:
		for pieceBb != BbZero {
			var sq Square
			sq, pieceBb = pieceBb.PopLsb()
			e.rookEval(c, sq)
		}
		if config.Settings.Eval.UseMobility {
			tmpScore.AddFlat(int16(e.attack.MobilityByPieceType[c][Rook]) * config.Settings.Eval.RookMobilityBonus)
		}
	case Queen:
		for pieceBb != BbZero {
			var sq Square
			sq, pieceBb = pieceBb.PopLsb()
			e.queenEval(c, sq)
		}
		if config.Settings.Eval.UseMobility {
			tmpScore.AddFlat(int16(e.attack.MobilityByPieceType[c][Queen]) * config.Settings.Eval.QueenMobilityBonus)
		}
	}

	return &tmpScore
}

// knightEval penalizes the classic opening cramp: a own-side pawn still on
// c2/c7 blocking the natural c3/c6 knight development square.
func (e *Evaluator) knightEval(us Color, sq Square) {
	if us == White {
		if sq == SqC3 && e.position.PieceAt(SqC2) == WhitePawn {
			tmpScore.AddFlat(config.Settings.Eval.MinorBlockedByPawnMalus)
		}
		return
	}
	if sq == SqC6 && e.position.PieceAt(SqC7) == BlackPawn {
		tmpScore.AddFlat(config.Settings.Eval.MinorBlockedByPawnMalus)
	}
}

// bishopEval applies the equivalent d3/d6 cramp idiom for a fianchetto-less
// bishop still blocked by its own d-pawn.
func (e *Evaluator) bishopEval(us Color, sq Square) {
	if us == White {
		if sq == SqD3 && e.position.PieceAt(SqD2) == WhitePawn {
			tmpScore.AddFlat(config.Settings.Eval.MinorBlockedByPawnMalus)
		}
		return
	}
	if sq == SqD6 && e.position.PieceAt(SqD7) == BlackPawn {
		tmpScore.AddFlat(config.Settings.Eval.MinorBlockedByPawnMalus)
	}
}

// rookEval rewards a rook on a file with no pawns of either color (open) or
// with enemy pawns only (semi-open).
func (e *Evaluator) rookEval(us Color, sq Square) {
	allPawns := e.position.PiecesBb(White, Pawn) | e.position.PiecesBb(Black, Pawn)
	fileBb := sq.FileOf().Bb()
	switch {
	case fileBb&allPawns == BbZero:
		tmpScore.AddFlat(config.Settings.Eval.RookOpenFileBonus)
	case fileBb&e.position.PiecesBb(us, Pawn) == BbZero:
		tmpScore.AddFlat(config.Settings.Eval.RookSemiOpenFileBonus)
	}
}

// queenEval penalizes a queen that has left its starting square too early,
// before the opponent has had a chance to develop around it.
func (e *Evaluator) queenEval(us Color, sq Square) {
	startSq := SqD1
	if us == Black {
		startSq = SqD8
	}
	if sq != startSq && e.position.Ply() <= config.Settings.Eval.QueenEarlyPlyLimit {
		tmpScore.AddFlat(config.Settings.Eval.QueenEarlyMalus)
	}
}

// castlingRightsMask returns the two castling-availability bits belonging
// to color c.
func castlingRightsMask(c Color) CastlingRights {
	if c == White {
		return WhiteOO | WhiteOOO
	}
	return BlackOO | BlackOOO
}

// evalKing scores king safety for color c. In the endgame - total pieces at
// or below KingEndgamePieceThreshold and no queens left on the board - the
// only term is the endgame king-square table, which pulls the king toward
// the centre. Otherwise: if the king has neither castled nor can still
// castle, a missing pawn-shield square to its left, front or right is
// penalized; if it has castled (or might still), the count of empty
// squares around it ("air") is penalized once it reaches
// KingAirMinSquares.
func (e *Evaluator) evalKing(c Color) *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0
	us := c
	kingSq := e.position.KingSquare(us)

	noQueens := e.position.PiecesBb(White, Queen) == BbZero && e.position.PiecesBb(Black, Queen) == BbZero
	if e.allPieces.PopCount() <= config.Settings.Eval.KingEndgamePieceThreshold && noQueens {
		tmpScore.AddFlat(PSQT(us, King, kingSq).EndGameValue)
		return &tmpScore
	}

	canStillCastle := e.position.CastlingRights()&castlingRightsMask(us) != CastlingNone
	if !e.position.HasCastled(us) && !canStillCastle {
		var left, front, right Direction
		if us == White {
			left, front, right = Northwest, North, Northeast
		} else {
			left, front, right = Southwest, South, Southeast
		}
		ownPawns := e.position.PiecesBb(us, Pawn)
		if Shift(kingSq.Bb(), left)&ownPawns == BbZero {
			tmpScore.MidGameValue += config.Settings.Eval.PawnShieldLeftMalus
		}
		if Shift(kingSq.Bb(), front)&ownPawns == BbZero {
			tmpScore.MidGameValue += config.Settings.Eval.PawnShieldUpDownMalus
		}
		if Shift(kingSq.Bb(), right)&ownPawns == BbZero {
			tmpScore.MidGameValue += config.Settings.Eval.PawnShieldRightMalus
		}
	} else {
		air := (GetAttacksBb(King, kingSq, BbZero) & e.position.EmptyBb()).PopCount()
		if air >= config.Settings.Eval.KingAirMinSquares {
			tmpScore.MidGameValue += int16(air) * config.Settings.Eval.KingAirMalus
		}
	}

	return &tmpScore
}

// evalDevelopment applies the ply-gated development heuristics: a penalty
// for shuffling the same piece twice in the opening, a penalty for pieces
// (other than rooks) still sitting on the back rank, a penalty for not
// having castled by a threshold ply, and a bonus for keeping queens on the
// board while the opponent has not castled. Unlike the piece- and
// king-safety terms above, these accumulate directly into e.score since
// both sides are considered together in a single pass.
func (e *Evaluator) evalDevelopment() {
	ply := e.position.Ply()

	if ply <= config.Settings.Eval.SamePieceTwicePlyLimit {
		last := e.position.MovePliesAgo(2)
		beforeLast := e.position.MovePliesAgo(4)
		if last != MoveNone && beforeLast != MoveNone && !last.IsNull() && !beforeLast.IsNull() &&
			last.From() == beforeLast.To() && last.MovedPiece().TypeOf() != Pawn {
			if last.Color() == White {
				e.score.MidGameValue += config.Settings.Eval.SamePieceTwiceMalus
			} else {
				e.score.MidGameValue -= config.Settings.Eval.SamePieceTwiceMalus
			}
		}
	}

	if ply <= config.Settings.Eval.BackRankPlyLimit {
		whiteBackRank := (e.position.OccupiedBb(White) &^ e.position.PiecesBb(White, Rook)) & Rank1.Bb()
		blackBackRank := (e.position.OccupiedBb(Black) &^ e.position.PiecesBb(Black, Rook)) & Rank8.Bb()
		e.score.MidGameValue += int16(whiteBackRank.PopCount()-blackBackRank.PopCount()) * config.Settings.Eval.PiecesOnBackRankMalus
	}

	if ply >= config.Settings.Eval.NotCastledPlyLimit {
		if !e.position.HasCastled(White) {
			e.score.MidGameValue += config.Settings.Eval.NotCastledMalus
		}
		if !e.position.HasCastled(Black) {
			e.score.MidGameValue -= config.Settings.Eval.NotCastledMalus
		}
	}

	if !e.position.HasCastled(White) && e.position.PiecesBb(Black, Queen) != BbZero {
		e.score.MidGameValue -= config.Settings.Eval.QueensNotTradedMalus
	}
	if !e.position.HasCastled(Black) && e.position.PiecesBb(White, Queen) != BbZero {
		e.score.MidGameValue += config.Settings.Eval.QueensNotTradedMalus
	}
}

// Report renders a human-readable breakdown of the last evaluation, used by
// the UCI "eval" debug command.
func (e *Evaluator) Report() string {
	var report strings.Builder

	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Position: %s\n", e.position.StringFEN()))
	report.WriteString(out.Sprintf("%s\n", e.position.StringBoard()))
	report.WriteString(out.Sprintf("Game phase factor: %f\n", e.position.GamePhaseFactor()))
	report.WriteString(out.Sprintf("Eval value: %d (view of %s to move)\n", e.Evaluate(e.position), e.position.SideToMove().String()))

	return report.String()
}
