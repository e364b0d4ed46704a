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

package types

import "fmt"

var (
	kingAttacksTbl   [SqLength]Bitboard
	knightAttacksTbl [SqLength]Bitboard
	pawnAttacksTbl   [ColorLength][SqLength]Bitboard
	betweenTbl       [SqLength][SqLength]Bitboard
	lineTbl          [SqLength][SqLength]Bitboard

	rookMagics   [SqLength]Magic
	bishopMagics [SqLength]Magic

	tablesInitialized = false
)

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDirections = [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

// Init populates every precomputed attack table. It is idempotent and must
// be called once before Position, MoveGen or Evaluator are used; every
// package in this module that needs the tables calls it from its own
// init(), so a driver never has to remember to do it.
func Init() {
	if tablesInitialized {
		return
	}

	initMagics(&rookMagicNumbers, &rookDirections, &rookMagics)
	initMagics(&bishopMagicNumbers, &bishopDirections, &bishopMagics)

	for sq := SqA1; sq <= SqH8; sq++ {
		var king, knight Bitboard
		for _, d := range kingDirections {
			if t := sq.To(d); t != SqNone {
				king = king.Push(t)
			}
		}
		kingAttacksTbl[sq] = king

		f, r := int(sq.FileOf()), int(sq.RankOf())
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				knight = knight.Push(MakeSquare(File(nf), Rank(nr)))
			}
		}
		knightAttacksTbl[sq] = knight

		if t := sq.To(Northeast); t != SqNone {
			pawnAttacksTbl[White][sq] = pawnAttacksTbl[White][sq].Push(t)
		}
		if t := sq.To(Northwest); t != SqNone {
			pawnAttacksTbl[White][sq] = pawnAttacksTbl[White][sq].Push(t)
		}
		if t := sq.To(Southeast); t != SqNone {
			pawnAttacksTbl[Black][sq] = pawnAttacksTbl[Black][sq].Push(t)
		}
		if t := sq.To(Southwest); t != SqNone {
			pawnAttacksTbl[Black][sq] = pawnAttacksTbl[Black][sq].Push(t)
		}
	}

	for a := SqA1; a <= SqH8; a++ {
		for b := SqA1; b <= SqH8; b++ {
			if a == b {
				continue
			}
			sameRank := a.RankOf() == b.RankOf()
			sameFile := a.FileOf() == b.FileOf()
			sameDiag := slidingAttack(&bishopDirections, a, BbZero).Has(b)

			switch {
			case sameRank || sameFile:
				ra := rookAttackOnTheFly(a, b.Bb())
				rb := rookAttackOnTheFly(b, a.Bb())
				betweenTbl[a][b] = ra & rb
				lineTbl[a][b] = (rookAttackOnTheFly(a, BbZero) & rookAttackOnTheFly(b, BbZero)) | a.Bb() | b.Bb()
			case sameDiag:
				ba := bishopAttackOnTheFly(a, b.Bb())
				bb := bishopAttackOnTheFly(b, a.Bb())
				betweenTbl[a][b] = ba & bb
				lineTbl[a][b] = (bishopAttackOnTheFly(a, BbZero) & bishopAttackOnTheFly(b, BbZero)) | a.Bb() | b.Bb()
			}
		}
	}

	tablesInitialized = true
}

func rookAttackOnTheFly(sq Square, occ Bitboard) Bitboard {
	return slidingAttack(&rookDirections, sq, occ)
}

func bishopAttackOnTheFly(sq Square, occ Bitboard) Bitboard {
	return slidingAttack(&bishopDirections, sq, occ)
}

// GetAttacksBb returns all squares attacked by a piece of type pt (not
// Pawn, use GetPawnAttacks) standing on sq given the board's occupancy.
// Leapers (King, Knight) ignore occupied; sliders use the magic tables.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case King:
		return kingAttacksTbl[sq]
	case Knight:
		return knightAttacksTbl[sq]
	case Bishop:
		m := &bishopMagics[sq]
		return m.Attacks[m.index(occupied)]
	case Rook:
		m := &rookMagics[sq]
		return m.Attacks[m.index(occupied)]
	case Queen:
		bm := &bishopMagics[sq]
		rm := &rookMagics[sq]
		return bm.Attacks[bm.index(occupied)] | rm.Attacks[rm.index(occupied)]
	default:
		panic(fmt.Sprintf("GetAttacksBb: unsupported piece type %v", pt))
	}
}

// GetPawnAttacks returns the diagonal capture squares of a pawn of color c
// standing on sq.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacksTbl[c][sq]
}

// Between returns the squares strictly between a and b when they share a
// rank, file or diagonal; BbZero otherwise (including when a == b).
func Between(a, b Square) Bitboard {
	return betweenTbl[a][b]
}

// Line returns every square on the infinite line through a and b
// (including both), or BbZero if a and b are not aligned.
func Line(a, b Square) Bitboard {
	if a == b {
		return a.Bb()
	}
	return lineTbl[a][b]
}
