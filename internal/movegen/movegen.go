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

// Package movegen generates chess moves for a position: pseudo-legal moves
// per piece type, and legal moves (pins, checks, en passant and castling
// all validated uniformly) by trial application.
package movegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chesskit/engine/internal/moveslice"
	"github.com/chesskit/engine/internal/position"
	. "github.com/chesskit/engine/internal/types"
)

// GenMode selects which subset of moves to generate.
type GenMode int

const (
	GenCaptures GenMode = 1 << iota
	GenQuiets
	GenAll = GenCaptures | GenQuiets
)

// MaxMoves is a generous upper bound on the number of moves any chess
// position can have, used to size move-slice capacity up front.
const MaxMoves = 256

// MoveGen generates moves against a Position. It owns no position state
// itself; a single instance may be reused across positions and plies, and
// its move-slice buffers are cleared (not reallocated) on each call.
type MoveGen struct {
	buf *moveslice.MoveSlice
}

// New creates a move generator with its scratch buffer preallocated.
func New() *MoveGen {
	return &MoveGen{buf: moveslice.NewMoveSlice(MaxMoves)}
}

func pawnPushDirection(c Color) Direction {
	if c == White {
		return North
	}
	return South
}

// passingThroughRank is the rank a pawn's single push lands on when it is
// still eligible for a further double-push step (rank 3 for White, rank 6
// for Black).
func passingThroughRank(c Color) Rank {
	if c == White {
		return Rank3
	}
	return Rank6
}

func promotionRank(c Color) Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

// GeneratePseudoLegalMoves fills a move slice with every pseudo-legal move
// for the side to move: moves that respect piece movement rules and
// occupancy but have not been checked for leaving the mover's own king in
// check. Reuses mg's internal buffer; the returned slice is invalidated by
// the next call.
func (mg *MoveGen) GeneratePseudoLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.buf.Clear()
	mg.generatePawnMoves(p, mode, mg.buf)
	mg.generateKnightBishopRookQueenMoves(p, mode, mg.buf)
	mg.generateKingMoves(p, mode, mg.buf)
	if mode&GenQuiets != 0 {
		mg.generateCastling(p, mg.buf)
	}
	return mg.buf
}

// GenerateLegalMoves returns every legal move for the side to move. Each
// pseudo-legal move is applied and tested with Position.WasLegalMove,
// which is how pins, checks and the en-passant discovered-check rule are
// all enforced without a separate special case for any of them.
func (mg *MoveGen) GenerateLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	pseudo := mg.GeneratePseudoLegalMoves(p, mode)
	legal := moveslice.NewMoveSlice(pseudo.Len())
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		p.DoMove(m)
		ok := p.WasLegalMove()
		p.UndoMove()
		if ok {
			legal.PushBack(m)
		}
	}
	return legal
}

// GenerateCaptures returns every legal capturing move (including en
// passant and capture-promotions), the move set quiescence search walks.
func (mg *MoveGen) GenerateCaptures(p *position.Position) *moveslice.MoveSlice {
	return mg.GenerateLegalMoves(p, GenCaptures)
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without generating and keeping the whole list; used to detect
// checkmate and stalemate.
func (mg *MoveGen) HasLegalMove(p *position.Position) bool {
	pseudo := mg.GeneratePseudoLegalMoves(p, GenAll)
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		p.DoMove(m)
		ok := p.WasLegalMove()
		p.UndoMove()
		if ok {
			return true
		}
	}
	return false
}

func (mg *MoveGen) generatePawnMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	us := p.SideToMove()
	them := us.Flip()
	myPawns := p.PiecesBb(us, Pawn)
	piece := MakePiece(us, Pawn)
	pushDir := pawnPushDirection(us)
	promRank := promotionRank(us)

	addPromotions := func(from, to Square, mt MoveType, captured Piece) {
		for _, pt := range [4]PieceType{Queen, Knight, Rook, Bishop} {
			ml.PushBack(NewMove(from, to, mt, piece, captured, us, pt))
		}
	}

	if mode&GenCaptures != 0 {
		oppPieces := p.OccupiedBb(them)
		for _, dir := range [2]Direction{West, East} {
			captureDir := pushDir + dir
			targets := Shift(myPawns, captureDir) & oppPieces
			for targets != 0 {
				var to Square
				to, targets = targets.PopLsb()
				from := to.To(-captureDir)
				captured := p.PieceAt(to)
				if to.RankOf() == promRank {
					addPromotions(from, to, CaptureAndPromotion, captured)
				} else {
					ml.PushBack(NewMove(from, to, Capture, piece, captured, us, PtNone))
				}
			}
		}
		if ep := p.EnPassantSquare(); ep != SqNone {
			for _, dir := range [2]Direction{West, East} {
				from := ep.To(-pushDir - dir)
				if from == SqNone || !myPawns.Has(from) {
					continue
				}
				captured := MakePiece(them, Pawn)
				ml.PushBack(NewMove(from, ep, EnPassant, piece, captured, us, PtNone))
			}
		}
	}

	if mode&GenQuiets != 0 {
		empty := p.EmptyBb()
		singlePush := Shift(myPawns, pushDir) & empty
		doublePush := Shift(singlePush&passingThroughRank(us).Bb(), pushDir) & empty

		quiet := singlePush &^ promRank.Bb()
		for quiet != 0 {
			var to Square
			to, quiet = quiet.PopLsb()
			from := to.To(-pushDir)
			ml.PushBack(NewMove(from, to, Quiet, piece, PieceNone, us, PtNone))
		}
		proms := singlePush & promRank.Bb()
		for proms != 0 {
			var to Square
			to, proms = proms.PopLsb()
			from := to.To(-pushDir)
			addPromotions(from, to, Promotion, PieceNone)
		}
		for doublePush != 0 {
			var to Square
			to, doublePush = doublePush.PopLsb()
			from := to.To(-pushDir).To(-pushDir)
			ml.PushBack(NewMove(from, to, Quiet, piece, PieceNone, us, PtNone))
		}
	}
}

func (mg *MoveGen) generateKnightBishopRookQueenMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	us := p.SideToMove()
	occ := p.OccupiedAll()
	ownPieces := p.OccupiedBb(us)
	oppPieces := p.OccupiedBb(us.Flip())

	for pt := Knight; pt <= Queen; pt++ {
		pieces := p.PiecesBb(us, pt)
		piece := MakePiece(us, pt)
		for pieces != 0 {
			var from Square
			from, pieces = pieces.PopLsb()
			attacks := GetAttacksBb(pt, from, occ) &^ ownPieces

			if mode&GenCaptures != 0 {
				captures := attacks & oppPieces
				for captures != 0 {
					var to Square
					to, captures = captures.PopLsb()
					ml.PushBack(NewMove(from, to, Capture, piece, p.PieceAt(to), us, PtNone))
				}
			}
			if mode&GenQuiets != 0 {
				quiets := attacks &^ occ
				for quiets != 0 {
					var to Square
					to, quiets = quiets.PopLsb()
					ml.PushBack(NewMove(from, to, Quiet, piece, PieceNone, us, PtNone))
				}
			}
		}
	}
}

func (mg *MoveGen) generateKingMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	us := p.SideToMove()
	piece := MakePiece(us, King)
	from := p.KingSquare(us)
	occ := p.OccupiedAll()
	attacks := GetAttacksBb(King, from, occ) &^ p.OccupiedBb(us)

	if mode&GenCaptures != 0 {
		captures := attacks & p.OccupiedBb(us.Flip())
		for captures != 0 {
			var to Square
			to, captures = captures.PopLsb()
			ml.PushBack(NewMove(from, to, Capture, piece, p.PieceAt(to), us, PtNone))
		}
	}
	if mode&GenQuiets != 0 {
		quiets := attacks &^ occ
		for quiets != 0 {
			var to Square
			to, quiets = quiets.PopLsb()
			ml.PushBack(NewMove(from, to, Quiet, piece, PieceNone, us, PtNone))
		}
	}
}

// generateCastling appends pseudo-legal castling moves. Unlike the other
// generators this one checks the squares the king starts on, passes
// through and lands on for attacks: the start and pass-over squares have
// no other hook in the trial-apply legality scheme, since a castling
// move's Move record carries no memory of the squares passed over.
func (mg *MoveGen) generateCastling(p *position.Position, ml *moveslice.MoveSlice) {
	us := p.SideToMove()
	cr := p.CastlingRights()
	occ := p.OccupiedAll()
	piece := MakePiece(us, King)

	if us == White {
		if cr.Has(WhiteOO) && occ&(SqF1.Bb()|SqG1.Bb()) == 0 &&
			!p.IsAttacked(SqE1, Black) && !p.IsAttacked(SqF1, Black) && !p.IsAttacked(SqG1, Black) {
			ml.PushBack(NewMove(SqE1, SqG1, KingCastle, piece, PieceNone, us, PtNone))
		}
		if cr.Has(WhiteOOO) && occ&(SqB1.Bb()|SqC1.Bb()|SqD1.Bb()) == 0 &&
			!p.IsAttacked(SqE1, Black) && !p.IsAttacked(SqD1, Black) && !p.IsAttacked(SqC1, Black) {
			ml.PushBack(NewMove(SqE1, SqC1, QueenCastle, piece, PieceNone, us, PtNone))
		}
		return
	}
	if cr.Has(BlackOO) && occ&(SqF8.Bb()|SqG8.Bb()) == 0 &&
		!p.IsAttacked(SqE8, White) && !p.IsAttacked(SqF8, White) && !p.IsAttacked(SqG8, White) {
		ml.PushBack(NewMove(SqE8, SqG8, KingCastle, piece, PieceNone, us, PtNone))
	}
	if cr.Has(BlackOOO) && occ&(SqB8.Bb()|SqC8.Bb()|SqD8.Bb()) == 0 &&
		!p.IsAttacked(SqE8, White) && !p.IsAttacked(SqD8, White) && !p.IsAttacked(SqC8, White) {
		ml.PushBack(NewMove(SqE8, SqC8, QueenCastle, piece, PieceNone, us, PtNone))
	}
}

var wireMoveRe = regexp.MustCompile(`^([a-h][1-8])([a-h][1-8])([nbrq])?$`)

// ApplyMoveFromWireString parses a long-algebraic move string (as sent by
// a UCI "position ... moves ..." command), matches it against the
// position's legal moves and applies it. Living here rather than on
// Position itself avoids position depending on movegen: resolving a wire
// string to a concrete Move needs the legal move list, which only this
// package can generate.
func (mg *MoveGen) ApplyMoveFromWireString(p *position.Position, s string) error {
	m := wireMoveRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return fmt.Errorf("movegen: malformed move string %q", s)
	}
	from, _ := SquareFromString(m[1])
	to, _ := SquareFromString(m[2])
	var promo PieceType
	if m[3] != "" {
		promo = PromoPieceFromLetter(m[3][0])
	}

	legal := mg.GenerateLegalMoves(p, GenAll)
	for i := 0; i < legal.Len(); i++ {
		cand := legal.At(i)
		if cand.From() == from && cand.To() == to && cand.PromotionPiece() == promo {
			p.DoMove(cand)
			return nil
		}
	}
	return fmt.Errorf("movegen: %q is not a legal move in position %s", s, p.StringFEN())
}
