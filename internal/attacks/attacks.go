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

// Package attacks computes and caches the full attack picture of a
// position: which squares every piece of every color attacks or defends.
// The evaluator uses it for mobility and king safety; search's SEE uses the
// AttacksTo/RevealedAttacks helpers to walk exchange sequences.
package attacks

import (
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/chesskit/engine/internal/logging"
	"github.com/chesskit/engine/internal/position"
	. "github.com/chesskit/engine/internal/types"
)

var out = message.NewPrinter(language.German)

// Attacks holds every attack/defend bitboard for one position, keyed by
// that position's Zobrist hash so a caller can skip recomputation when
// asking again about the same node.
type Attacks struct {
	log *logging.Logger

	Zobrist position.Key

	From [ColorLength][SqLength]Bitboard
	To   [ColorLength][SqLength]Bitboard

	All   [ColorLength]Bitboard
	Piece [ColorLength][PtLength]Bitboard

	Mobility            [ColorLength]int
	MobilityByPieceType [ColorLength][PtLength]int

	Pawns       [ColorLength]Bitboard
	PawnsDouble [ColorLength]Bitboard
}

// NewAttacks creates an empty, uncomputed Attacks instance.
func NewAttacks() *Attacks {
	return &Attacks{
		log: myLogging.GetLog(),
	}
}

// Clear resets every field in place, avoiding the allocation a fresh
// NewAttacks would cost on every node.
func (a *Attacks) Clear() {
	a.Zobrist = 0
	for sq := SqA1; sq < SqNone; sq++ {
		a.From[White][sq] = BbZero
		a.From[Black][sq] = BbZero
		a.To[White][sq] = BbZero
		a.To[Black][sq] = BbZero
	}
	for pt := PtNone; pt < PtLength; pt++ {
		a.Piece[White][pt] = BbZero
		a.Piece[Black][pt] = BbZero
	}
	a.All[White] = BbZero
	a.All[Black] = BbZero
	a.Mobility[White] = 0
	a.Mobility[Black] = 0
	for pt := PtNone; pt < PtLength; pt++ {
		a.MobilityByPieceType[White][pt] = 0
		a.MobilityByPieceType[Black][pt] = 0
	}
	a.Pawns[White] = 0
	a.Pawns[Black] = 0
	a.PawnsDouble[White] = 0
	a.PawnsDouble[Black] = 0
}

// Compute fills every field for p, unless it was already computed for this
// exact position (same Zobrist key), in which case it is a no-op.
func (a *Attacks) Compute(p *position.Position) {
	if p.ZobristKey() == a.Zobrist {
		a.log.Debugf("attacks compute: position was already computed")
		return
	}
	a.Zobrist = p.ZobristKey()
	a.nonPawnAttacks(p)
	a.pawnAttacks(p)
}

var nonPawnPieceTypes = [5]PieceType{King, Knight, Bishop, Rook, Queen}

func (a *Attacks) nonPawnAttacks(p *position.Position) {
	allPieces := p.OccupiedAll()

	for c := White; c <= Black; c++ {
		myPieces := p.OccupiedBb(c)
		for _, pt := range nonPawnPieceTypes {
			pieces := p.PiecesBb(c, pt)
			for pieces != BbZero {
				var psq Square
				psq, pieces = pieces.PopLsb()
				att := GetAttacksBb(pt, psq, allPieces)
				a.From[c][psq] = att
				a.Piece[c][pt] |= att
				a.All[c] |= att
				tmp := att
				for tmp != BbZero {
					var toSq Square
					toSq, tmp = tmp.PopLsb()
					a.To[c][toSq] = a.To[c][toSq].Push(psq)
				}
				count := (att &^ myPieces).PopCount()
				a.Mobility[c] += count
				a.MobilityByPieceType[c][pt] += count
			}
		}
	}
}

func (a *Attacks) pawnAttacks(p *position.Position) {
	wp, bp := p.PiecesBb(White, Pawn), p.PiecesBb(Black, Pawn)
	a.Pawns[White] = Shift(wp, Northwest) | Shift(wp, Northeast)
	a.Pawns[Black] = Shift(bp, Southwest) | Shift(bp, Southeast)
	a.PawnsDouble[White] = Shift(wp, Northwest) & Shift(wp, Northeast)
	a.PawnsDouble[Black] = Shift(bp, Southwest) & Shift(bp, Southeast)
}

// AttacksTo returns every square occupied by a piece of color, of any type,
// that attacks square - including a pawn that could capture there en
// passant.
func AttacksTo(p *position.Position, square Square, color Color) Bitboard {
	occupiedAll := p.OccupiedAll()

	epAttacks := BbZero
	if ep := p.EnPassantSquare(); ep != SqNone && ep == square {
		epAttacks = GetPawnAttacks(color.Flip(), ep) & p.PiecesBb(color, Pawn)
	}

	return (GetPawnAttacks(color.Flip(), square) & p.PiecesBb(color, Pawn)) |
		(GetAttacksBb(Knight, square, occupiedAll) & p.PiecesBb(color, Knight)) |
		(GetAttacksBb(King, square, occupiedAll) & p.PiecesBb(color, King)) |
		(GetAttacksBb(Rook, square, occupiedAll) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen))) |
		(GetAttacksBb(Bishop, square, occupiedAll) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen))) |
		epAttacks
}

// RevealedAttacks returns the sliding attacks on square once occupied has
// had some piece removed from it, used by SEE to walk an exchange sequence
// square by square as attackers are taken off the board.
func RevealedAttacks(p *position.Position, square Square, occupied Bitboard, color Color) Bitboard {
	return (GetAttacksBb(Rook, square, occupied) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen)) & occupied) |
		(GetAttacksBb(Bishop, square, occupied) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)) & occupied)
}
