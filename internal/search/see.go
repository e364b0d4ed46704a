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
	"github.com/chesskit/engine/internal/attacks"
	"github.com/chesskit/engine/internal/position"
	. "github.com/chesskit/engine/internal/types"
)

// see runs a static exchange evaluation of move on p: it replays the full
// capture sequence on the destination square, least-valuable-attacker
// first, and returns the net material gain for the side making move from
// that side's own perspective.
func see(p *position.Position, move Move) Value {
	// an en passant capture is never losing - the pawn giving it up was
	// already going to be recaptured at no extra material cost, so it is
	// not worth walking the exchange for it.
	if move.MoveType() == EnPassant {
		return Pawn.Value()
	}

	var gain [32]Value

	ply := 0
	toSquare := move.To()
	fromSquare := move.From()
	movedPiece := p.PieceAt(fromSquare)
	side := move.Color()

	occupied := p.OccupiedAll()
	remainingAttacks := attacks.AttacksTo(p, toSquare, White) | attacks.AttacksTo(p, toSquare, Black)

	gain[ply] = p.PieceAt(toSquare).TypeOf().Value()

	for {
		ply++
		side = side.Flip()

		if move.MoveType() == Promotion || move.MoveType() == CaptureAndPromotion {
			gain[ply] = move.PromotionPiece().Value() - Pawn.Value() - gain[ply-1]
		} else {
			gain[ply] = movedPiece.TypeOf().Value() - gain[ply-1]
		}

		// a defended capture cannot improve on the standing gain - stop
		// walking the exchange once that is established.
		if max(-gain[ply-1], gain[ply]) < 0 {
			break
		}

		remainingAttacks = remainingAttacks.Pop(fromSquare)
		occupied = occupied.Pop(fromSquare)

		remainingAttacks |= attacks.RevealedAttacks(p, toSquare, occupied, White) |
			attacks.RevealedAttacks(p, toSquare, occupied, Black)

		fromSquare = leastValuableAttacker(p, remainingAttacks, side)
		if fromSquare == SqNone {
			break
		}
		movedPiece = p.PieceAt(fromSquare)
	}

	ply--
	for ply > 0 {
		gain[ply-1] = -max(-gain[ply-1], gain[ply])
		ply--
	}

	return gain[0]
}

// leastValuableAttacker returns the square of the cheapest color piece in
// bitboard, or SqNone if none remain.
func leastValuableAttacker(p *position.Position, bitboard Bitboard, color Color) Square {
	for _, pt := range []PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
		if b := bitboard & p.PiecesBb(color, pt); b != 0 {
			return b.Lsb()
		}
	}
	return SqNone
}

func max(x, y Value) Value {
	if x > y {
		return x
	}
	return y
}
