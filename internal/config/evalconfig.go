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

package config

type evalConfiguration struct {
	UseMaterialEval   bool
	UsePositionalEval bool

	UseLazyEval       bool
	LazyEvalThreshold int16

	UseMobility         bool
	BishopMobilityBonus int16
	RookMobilityBonus   int16
	QueenMobilityBonus  int16

	// PAWNS
	UsePawnEval   bool
	UsePawnCache  bool
	PawnCacheSize int

	PawnDoubledByFile           [8]int16
	PawnTripledMalus            int16
	PawnIsolatedMalus           int16
	PawnDoubledAndIsolatedMalus int16
	PawnIsolatedBlockedMalus    int16
	PawnPassedBonus             int16
	PawnPassedRankWhite         [8]int16
	PawnPassedRankBlack         [8]int16
	PawnPhalanxBonus            int16
	PawnBlockedPasserMalus      int16

	UseAdvancedPieceEval      bool
	MinorBlockedByPawnMalus   int16
	BishopPairBonus           int16
	RookOpenFileBonus         int16
	RookSemiOpenFileBonus     int16
	QueenEarlyMalus           int16
	QueenEarlyPlyLimit        int

	UseKingEval               bool
	PawnShieldLeftMalus       int16
	PawnShieldUpDownMalus     int16
	PawnShieldRightMalus      int16
	KingAirMalus              int16
	KingAirMinSquares         int

	// At or below this many total pieces on the board, with queens off, the
	// king-safety term switches from pawn-shield/air scoring to the
	// endgame king-square table that pulls the king toward the centre -
	// see evalKing.
	KingEndgamePieceThreshold int

	UseDevelopmentEval     bool
	SamePieceTwiceMalus    int16
	SamePieceTwicePlyLimit int
	PiecesOnBackRankMalus  int16
	BackRankPlyLimit       int
	NotCastledMalus        int16
	NotCastledPlyLimit     int
	QueensNotTradedMalus   int16
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.UseMaterialEval = true
	Settings.Eval.UsePositionalEval = true

	Settings.Eval.UseLazyEval = true
	Settings.Eval.LazyEvalThreshold = 700

	Settings.Eval.UseMobility = true
	Settings.Eval.BishopMobilityBonus = 2
	Settings.Eval.RookMobilityBonus = 4
	Settings.Eval.QueenMobilityBonus = 1

	Settings.Eval.UsePawnEval = true
	Settings.Eval.UsePawnCache = true
	Settings.Eval.PawnCacheSize = 64

	Settings.Eval.PawnDoubledByFile = [8]int16{-25, -5, -30, -20, -20, -20, -5, -20}
	Settings.Eval.PawnTripledMalus = -50
	Settings.Eval.PawnIsolatedMalus = -15
	Settings.Eval.PawnDoubledAndIsolatedMalus = -35
	Settings.Eval.PawnIsolatedBlockedMalus = -15
	Settings.Eval.PawnPassedBonus = 15
	Settings.Eval.PawnPassedRankWhite = [8]int16{-5, -5, 5, 5, 25, 45, 150, 0}
	Settings.Eval.PawnPassedRankBlack = [8]int16{0, 150, 45, 25, 5, 5, -5, -5}
	Settings.Eval.PawnPhalanxBonus = 30
	Settings.Eval.PawnBlockedPasserMalus = -20

	Settings.Eval.UseAdvancedPieceEval = true
	Settings.Eval.MinorBlockedByPawnMalus = -50
	Settings.Eval.BishopPairBonus = 45
	Settings.Eval.RookOpenFileBonus = 15
	Settings.Eval.RookSemiOpenFileBonus = 7
	Settings.Eval.QueenEarlyMalus = -20
	Settings.Eval.QueenEarlyPlyLimit = 15

	Settings.Eval.UseKingEval = true
	Settings.Eval.PawnShieldLeftMalus = -15
	Settings.Eval.PawnShieldUpDownMalus = -50
	Settings.Eval.PawnShieldRightMalus = -15
	Settings.Eval.KingAirMalus = -10
	Settings.Eval.KingAirMinSquares = 2
	Settings.Eval.KingEndgamePieceThreshold = 25

	Settings.Eval.UseDevelopmentEval = true
	Settings.Eval.SamePieceTwiceMalus = -15
	Settings.Eval.SamePieceTwicePlyLimit = 20
	Settings.Eval.PiecesOnBackRankMalus = -15
	Settings.Eval.BackRankPlyLimit = 25
	Settings.Eval.NotCastledMalus = -30
	Settings.Eval.NotCastledPlyLimit = 25
	Settings.Eval.QueensNotTradedMalus = 15
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {
}
