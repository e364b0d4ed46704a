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

// Package position represents a chess position as bitboards plus a mailbox,
// with castling rights, en-passant square, an incremental Zobrist hash and
// a history stack for make/unmake and repetition detection.
//
// Create one with NewPosition() for the standard start position or
// NewPositionFromFEN(fen) for an arbitrary one.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chesskit/engine/assert"
	. "github.com/chesskit/engine/internal/types"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxHistory bounds the undo stack; iterative deepening never nests
// deeper than this many plies in practice (see spec.md §5).
const maxHistory = 256

// Init is called automatically from this package's own init(); every
// package that needs the attack tables calls the dot-imported types.Init
// from its own init() too, so nothing upstream has to remember a manual
// bootstrap step.
func init() {
	Init()
}

type undoRecord struct {
	move            Move
	castlingRights  CastlingRights
	enPassantSquare Square
	zobristKey      Key
	hasCastled      [ColorLength]bool
	halfMoveClock   int
}

// Position is the mutable board state shared by move generation, the
// evaluator and search. It must only be constructed via NewPosition or
// NewPositionFromFEN and mutated via DoMove/UndoMove (or DoNullMove/
// UndoNullMove); every other operation is read-only.
type Position struct {
	board [SqLength]Piece

	piecesBb [ColorLength][PtLength]Bitboard
	colorBb  [ColorLength]Bitboard

	sideToMove      Color
	enPassantSquare Square
	castlingRights  CastlingRights
	hasCastled      [ColorLength]bool

	halfMoveClock  int
	fullMoveNumber int

	kingSquare [ColorLength]Square

	zobristKey Key

	history []undoRecord
}

// NewPosition creates a Position in the standard starting array.
func NewPosition() *Position {
	p := &Position{}
	p.SetFromStartingArray()
	return p
}

// NewPositionFromFEN creates a Position from a FEN-style description
// string. Returns an error (Initialization-fatal per spec.md §7) if the
// string is malformed.
func NewPositionFromFEN(fen string) (*Position, error) {
	p := &Position{}
	if err := p.SetFromDescription(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// SetFromStartingArray resets the position to the standard chess start.
func (p *Position) SetFromStartingArray() {
	if err := p.SetFromDescription(StartFEN); err != nil {
		panic(fmt.Sprintf("start FEN must always parse: %v", err))
	}
}

// Clone returns a deep copy. Used by perft divide and by the UCI driver's
// "position" + "go" sequencing so the search owns a position the protocol
// loop never touches concurrently.
func (p *Position) Clone() *Position {
	c := *p
	c.history = append([]undoRecord(nil), p.history...)
	return &c
}

// ---------------------------------------------------------------------
// accessors
// ---------------------------------------------------------------------

// ZobristKey returns the position's incremental Zobrist hash.
func (p *Position) ZobristKey() Key { return p.zobristKey }

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// PieceAt returns the piece on sq, or PieceNone if empty.
func (p *Position) PieceAt(sq Square) Piece { return p.board[sq] }

// PiecesBb returns the bitboard of pieces of type pt and color c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.piecesBb[c][pt] }

// OccupiedBb returns the aggregate bitboard of color c's pieces.
func (p *Position) OccupiedBb(c Color) Bitboard { return p.colorBb[c] }

// OccupiedAll returns the bitboard of every occupied square.
func (p *Position) OccupiedAll() Bitboard { return p.colorBb[White] | p.colorBb[Black] }

// EmptyBb returns the complement of OccupiedAll.
func (p *Position) EmptyBb() Bitboard { return ^p.OccupiedAll() }

// EnPassantSquare returns the en-passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// CastlingRights returns the four castling-availability flags.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// HasCastled reports whether color c has castled at any point in the game.
func (p *Position) HasCastled(c Color) bool { return p.hasCastled[c] }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// HalfMoveClock returns the half-move clock (for the fifty-move rule).
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// FullMoveNumber returns the full-move counter.
func (p *Position) FullMoveNumber() int { return p.fullMoveNumber }

// Ply returns the number of moves applied since construction (history
// depth), used as the search's root-relative ply counter.
func (p *Position) Ply() int { return len(p.history) }

// PawnKey returns a Zobrist hash covering only the pawns on the board,
// recomputed from the pawn bitboards on every call. Unlike the full
// ZobristKey this is not tracked incrementally through DoMove/UndoMove: at
// most 16 pawns are ever on the board, so recomputation costs a handful of
// PopLsb iterations, and the evaluator's pawn-structure cache is the only
// caller, once per node.
func (p *Position) PawnKey() Key {
	var k Key
	wp := p.piecesBb[White][Pawn]
	for wp != BbZero {
		var sq Square
		sq, wp = wp.PopLsb()
		k ^= zobristPiece(WhitePawn, sq)
	}
	bp := p.piecesBb[Black][Pawn]
	for bp != BbZero {
		var sq Square
		sq, bp = bp.PopLsb()
		k ^= zobristPiece(BlackPawn, sq)
	}
	return k
}

// GamePhase returns the game-phase counter for the current material: 0 with
// bare kings, GamePhaseMax at the start. Like PawnKey this is recomputed on
// every call rather than tracked incrementally through DoMove/UndoMove - the
// evaluator is its only caller, once per node.
func (p *Position) GamePhase() int {
	phase := 0
	for _, c := range [ColorLength]Color{White, Black} {
		for pt := Knight; pt <= Queen; pt++ {
			phase += p.piecesBb[c][pt].PopCount() * pt.GamePhaseValue()
		}
	}
	if phase > GamePhaseMax {
		phase = GamePhaseMax
	}
	return phase
}

// GamePhaseFactor returns GamePhase scaled to [0,1], the weight
// Score.ValueFromScore gives to the midgame side of a tapered value.
func (p *Position) GamePhaseFactor() float64 {
	return float64(p.GamePhase()) / GamePhaseMax
}

// Material returns the sum of piece values of color c, kings excluded.
func (p *Position) Material(c Color) int {
	m := 0
	for pt := Pawn; pt <= Queen; pt++ {
		m += p.piecesBb[c][pt].PopCount() * int(pt.Value())
	}
	return m
}

// PsqMidValue returns the sum of midgame piece-square-table values for
// every piece of color c, kings excluded - king placement is scored
// separately by the evaluator's king-safety term, not a PST.
func (p *Position) PsqMidValue(c Color) int {
	v := 0
	for pt := Pawn; pt <= Queen; pt++ {
		bb := p.piecesBb[c][pt]
		for bb != BbZero {
			var sq Square
			sq, bb = bb.PopLsb()
			v += int(PSQT(c, pt, sq).MidGameValue)
		}
	}
	return v
}

// PsqEndValue returns the sum of endgame piece-square-table values for
// every piece of color c, kings excluded - see PsqMidValue.
func (p *Position) PsqEndValue(c Color) int {
	v := 0
	for pt := Pawn; pt <= Queen; pt++ {
		bb := p.piecesBb[c][pt]
		for bb != BbZero {
			var sq Square
			sq, bb = bb.PopLsb()
			v += int(PSQT(c, pt, sq).EndGameValue)
		}
	}
	return v
}

// LastMove returns the most recently applied move, or the zero Move if
// none has been made yet.
func (p *Position) LastMove() Move {
	if len(p.history) == 0 {
		return Move(0)
	}
	return p.history[len(p.history)-1].move
}

// MovePliesAgo returns the move applied n plies before the current
// position (n=1 is LastMove), or the zero Move if the game history does
// not go back that far.
func (p *Position) MovePliesAgo(n int) Move {
	i := len(p.history) - n
	if i < 0 || i >= len(p.history) {
		return MoveNone
	}
	return p.history[i].move
}

func (p *Position) String() string {
	return p.StringBoard() + "\n" + p.StringFEN()
}

// StringBoard renders an 8x8 ASCII board, rank 8 at the top.
func (p *Position) StringBoard() string {
	s := ""
	for r := Rank8; r >= Rank1; r-- {
		s += r.String() + " "
		for f := FileA; f < FileNone; f++ {
			s += p.board[MakeSquare(f, r)].String() + " "
		}
		s += "\n"
	}
	s += "  a b c d e f g h"
	return s
}

// StringFEN renders the position as a FEN description string.
func (p *Position) StringFEN() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f < FileNone; f++ {
			pc := p.board[MakeSquare(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > Rank1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.enPassantSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullMoveNumber))
	return sb.String()
}

func pieceFromFENChar(ch byte) (Piece, bool) {
	switch ch {
	case 'P':
		return WhitePawn, true
	case 'N':
		return WhiteKnight, true
	case 'B':
		return WhiteBishop, true
	case 'R':
		return WhiteRook, true
	case 'Q':
		return WhiteQueen, true
	case 'K':
		return WhiteKing, true
	case 'p':
		return BlackPawn, true
	case 'n':
		return BlackKnight, true
	case 'b':
		return BlackBishop, true
	case 'r':
		return BlackRook, true
	case 'q':
		return BlackQueen, true
	case 'k':
		return BlackKing, true
	default:
		return PieceNone, false
	}
}

// SetFromDescription parses a FEN-style string and resets the position to
// describe it. The move-counter fields are optional, as UCI "position fen"
// commands sometimes omit them.
func (p *Position) SetFromDescription(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("position: malformed FEN %q: need at least 4 fields", fen)
	}

	np := Position{history: make([]undoRecord, 0, maxHistory)}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("position: malformed FEN %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			pc, ok := pieceFromFENChar(byte(ch))
			if !ok {
				return fmt.Errorf("position: malformed FEN %q: bad piece char %q", fen, ch)
			}
			if f >= FileNone {
				return fmt.Errorf("position: malformed FEN %q: rank %d overflows", fen, 8-i)
			}
			np.lowSetPiece(pc, MakeSquare(f, r))
			f++
		}
		if f != FileNone {
			return fmt.Errorf("position: malformed FEN %q: rank %d has wrong length", fen, 8-i)
		}
	}

	switch fields[1] {
	case "w":
		np.sideToMove = White
	case "b":
		np.sideToMove = Black
	default:
		return fmt.Errorf("position: malformed FEN %q: bad side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				np.castlingRights |= WhiteOO
			case 'Q':
				np.castlingRights |= WhiteOOO
			case 'k':
				np.castlingRights |= BlackOO
			case 'q':
				np.castlingRights |= BlackOOO
			default:
				return fmt.Errorf("position: malformed FEN %q: bad castling char %q", fen, ch)
			}
		}
	}

	np.enPassantSquare = SqNone
	if fields[3] != "-" {
		sq, ok := SquareFromString(fields[3])
		if !ok {
			return fmt.Errorf("position: malformed FEN %q: bad en passant square %q", fen, fields[3])
		}
		np.enPassantSquare = sq
	}

	np.halfMoveClock = 0
	np.fullMoveNumber = 1
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return fmt.Errorf("position: malformed FEN %q: bad half-move clock: %w", fen, err)
		}
		np.halfMoveClock = n
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return fmt.Errorf("position: malformed FEN %q: bad full-move number: %w", fen, err)
		}
		np.fullMoveNumber = n
	}

	np.zobristKey = computeZobrist(&np)
	*p = np
	return nil
}

// ---------------------------------------------------------------------
// piece placement helpers
// ---------------------------------------------------------------------

// lowSetPiece and lowClearPiece mutate the board/bitboards only, without
// touching the Zobrist hash; used when the hash is about to be recomputed
// from scratch (FEN loading) or restored from a saved value (UndoMove).
func (p *Position) lowSetPiece(pc Piece, sq Square) {
	p.board[sq] = pc
	c, pt := pc.ColorOf(), pc.TypeOf()
	p.piecesBb[c][pt] = p.piecesBb[c][pt].Push(sq)
	p.colorBb[c] = p.colorBb[c].Push(sq)
	if pt == King {
		p.kingSquare[c] = sq
	}
}

func (p *Position) lowClearPiece(pc Piece, sq Square) {
	p.board[sq] = PieceNone
	c, pt := pc.ColorOf(), pc.TypeOf()
	p.piecesBb[c][pt] = p.piecesBb[c][pt].Pop(sq)
	p.colorBb[c] = p.colorBb[c].Pop(sq)
}

// putPiece and removePiece additionally fold the change into the
// incremental Zobrist hash; used by DoMove.
func (p *Position) putPiece(pc Piece, sq Square) {
	p.lowSetPiece(pc, sq)
	p.zobristKey ^= zobristPiece(pc, sq)
}

func (p *Position) removePiece(pc Piece, sq Square) {
	p.lowClearPiece(pc, sq)
	p.zobristKey ^= zobristPiece(pc, sq)
}

func (p *Position) movePieceOnBoard(pc Piece, from, to Square) {
	p.removePiece(pc, from)
	p.putPiece(pc, to)
}

// castleRookSquares returns the rook's home square and the square it lands
// on for a castling move of color c and type mt (KingCastle/QueenCastle).
func castleRookSquares(c Color, mt MoveType) (from, to Square) {
	switch {
	case c == White && mt == KingCastle:
		return SqH1, SqF1
	case c == White && mt == QueenCastle:
		return SqA1, SqD1
	case c == Black && mt == KingCastle:
		return SqH8, SqF8
	default:
		return SqA8, SqD8
	}
}

// ---------------------------------------------------------------------
// make / unmake
// ---------------------------------------------------------------------

// DoMove applies a pseudo-legal move generated against this position,
// updating board, bitboards, castling rights, en-passant square, the
// Zobrist hash and the half/full-move counters, and pushes an undo record.
// Callers are responsible for only ever applying legal moves; DoMove does
// no legality checking itself (see the movegen package).
func (p *Position) DoMove(m Move) {
	if assert.DEBUG {
		assert.Assert(m.MovedPiece() != PieceNone, "DoMove: no piece on from-square for %s", m.String())
		assert.Assert(m.MovedPiece().ColorOf() == p.sideToMove, "DoMove: moved piece does not belong to side to move: %s", m.String())
		assert.Assert(len(p.history) < maxHistory, "DoMove: history stack full at maxHistory=%d", maxHistory)
	}

	p.history = append(p.history, undoRecord{
		move:            m,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		zobristKey:      p.zobristKey,
		hasCastled:      p.hasCastled,
		halfMoveClock:   p.halfMoveClock,
	})

	us := p.sideToMove
	from, to := m.From(), m.To()
	moved := m.MovedPiece()
	captured := m.CapturedPiece()
	mt := m.MoveType()

	p.zobristKey ^= zobristEnPassant(p.enPassantSquare)
	p.enPassantSquare = SqNone

	if moved.TypeOf() == Pawn || m.IsCapture() {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	switch mt {
	case EnPassant:
		capSq := MakeSquare(to.FileOf(), from.RankOf())
		p.removePiece(captured, capSq)
		p.movePieceOnBoard(moved, from, to)
	case KingCastle, QueenCastle:
		p.movePieceOnBoard(moved, from, to)
		rf, rt := castleRookSquares(us, mt)
		p.movePieceOnBoard(MakePiece(us, Rook), rf, rt)
		p.hasCastled[us] = true
	default:
		if m.IsCapture() {
			p.removePiece(captured, to)
		}
		if m.IsPromotion() {
			p.removePiece(moved, from)
			p.putPiece(MakePiece(us, m.PromotionPiece()), to)
		} else {
			p.movePieceOnBoard(moved, from, to)
		}
	}

	if moved.TypeOf() == Pawn {
		if diff := int(to) - int(from); diff == 16 || diff == -16 {
			p.enPassantSquare = Square(int(from) + diff/2)
		}
	}

	p.zobristKey ^= zobristCastling(p.castlingRights)
	clearCastlingCorner(&p.castlingRights, from)
	clearCastlingCorner(&p.castlingRights, to)
	if moved.TypeOf() == King {
		if us == White {
			p.castlingRights &^= WhiteOO | WhiteOOO
		} else {
			p.castlingRights &^= BlackOO | BlackOOO
		}
	}
	p.zobristKey ^= zobristCastling(p.castlingRights)

	p.zobristKey ^= zobristEnPassant(p.enPassantSquare)

	p.sideToMove = us.Flip()
	p.zobristKey ^= zobristSide()
	if us == Black {
		p.fullMoveNumber++
	}
}

func clearCastlingCorner(cr *CastlingRights, sq Square) {
	switch sq {
	case SqA1:
		*cr &^= WhiteOOO
	case SqH1:
		*cr &^= WhiteOO
	case SqA8:
		*cr &^= BlackOOO
	case SqH8:
		*cr &^= BlackOO
	}
}

// UndoMove reverses the most recently applied move. Panics if there is no
// move to undo, a programming error in every caller.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(len(p.history) > 0, "UndoMove: history empty, nothing to undo")
	}

	n := len(p.history) - 1
	rec := p.history[n]
	p.history = p.history[:n]

	m := rec.move
	mover := m.Color()
	from, to := m.From(), m.To()
	moved := m.MovedPiece()
	captured := m.CapturedPiece()

	switch m.MoveType() {
	case EnPassant:
		p.lowClearPiece(moved, to)
		p.lowSetPiece(moved, from)
		capSq := MakeSquare(to.FileOf(), from.RankOf())
		p.lowSetPiece(captured, capSq)
	case KingCastle, QueenCastle:
		p.lowClearPiece(moved, to)
		p.lowSetPiece(moved, from)
		rf, rt := castleRookSquares(mover, m.MoveType())
		p.lowClearPiece(MakePiece(mover, Rook), rt)
		p.lowSetPiece(MakePiece(mover, Rook), rf)
	default:
		if m.IsPromotion() {
			p.lowClearPiece(MakePiece(mover, m.PromotionPiece()), to)
			p.lowSetPiece(moved, from)
		} else {
			p.lowClearPiece(moved, to)
			p.lowSetPiece(moved, from)
		}
		if m.IsCapture() {
			p.lowSetPiece(captured, to)
		}
	}

	if moved.TypeOf() == King {
		p.kingSquare[mover] = from
	}

	p.sideToMove = mover
	p.castlingRights = rec.castlingRights
	p.enPassantSquare = rec.enPassantSquare
	p.zobristKey = rec.zobristKey
	p.hasCastled = rec.hasCastled
	p.halfMoveClock = rec.halfMoveClock
	if mover == Black {
		p.fullMoveNumber--
	}
}

// DoNullMove passes the turn without moving a piece, used by the search's
// null-move pruning. The en-passant square is cleared, matching the rule
// that it is never available after a null move.
func (p *Position) DoNullMove() {
	p.history = append(p.history, undoRecord{
		move:            NullMove,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		zobristKey:      p.zobristKey,
		hasCastled:      p.hasCastled,
		halfMoveClock:   p.halfMoveClock,
	})
	p.zobristKey ^= zobristEnPassant(p.enPassantSquare)
	p.enPassantSquare = SqNone
	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey ^= zobristSide()
}

// UndoNullMove reverses DoNullMove.
func (p *Position) UndoNullMove() {
	n := len(p.history) - 1
	rec := p.history[n]
	p.history = p.history[:n]
	p.sideToMove = p.sideToMove.Flip()
	p.enPassantSquare = rec.enPassantSquare
	p.zobristKey = rec.zobristKey
	p.castlingRights = rec.castlingRights
	p.hasCastled = rec.hasCastled
	p.halfMoveClock = rec.halfMoveClock
}

// ---------------------------------------------------------------------
// queries
// ---------------------------------------------------------------------

// IsAttacked reports whether sq is attacked by any piece of color by,
// using the classic symmetric trick: a piece of each type is imagined to
// stand on sq and its attack set is intersected with the real pieces of
// that type and color.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	occ := p.OccupiedAll()
	if GetPawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0 {
		return true
	}
	if GetAttacksBb(Knight, sq, occ)&p.piecesBb[by][Knight] != 0 {
		return true
	}
	if GetAttacksBb(King, sq, occ)&p.piecesBb[by][King] != 0 {
		return true
	}
	bishopsQueens := p.piecesBb[by][Bishop] | p.piecesBb[by][Queen]
	if GetAttacksBb(Bishop, sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.piecesBb[by][Rook] | p.piecesBb[by][Queen]
	if GetAttacksBb(Rook, sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move's king is attacked.
func (p *Position) InCheck() bool {
	return p.IsAttacked(p.kingSquare[p.sideToMove], p.sideToMove.Flip())
}

// HasCheck is an alias for InCheck kept for readability at call sites that
// read as "the position has a check" rather than "we are in check".
func (p *Position) HasCheck() bool { return p.InCheck() }

// WasLegalMove reports whether the most recently applied move left the
// mover's own king safe. Move generation applies every pseudo-legal move
// and asks this afterwards rather than precomputing pin/check masks: it
// is the one place pins, checks and the en-passant discovered-check rule
// all get validated, uniformly, with no separate special case for any of
// them.
func (p *Position) WasLegalMove() bool {
	rec := p.history[len(p.history)-1]
	mover := rec.move.Color()
	return !p.IsAttacked(p.kingSquare[mover], mover.Flip())
}

// HasInsufficientMaterial reports whether neither side has enough material
// to deliver checkmate by any sequence of legal moves. Three cases, no
// pawns/rooks/queens on the board in any of them: just the two kings; a
// bare king against a king and a single minor (bishop or knight); and a
// bare king against a king and two knights. Any other minor-piece mix
// (two bishops, bishop+knight, two knights split across both sides, ...)
// retains mating potential and is not covered by this rule.
func (p *Position) HasInsufficientMaterial() bool {
	if p.piecesBb[White][Pawn] != 0 || p.piecesBb[Black][Pawn] != 0 {
		return false
	}
	if p.piecesBb[White][Rook] != 0 || p.piecesBb[Black][Rook] != 0 {
		return false
	}
	if p.piecesBb[White][Queen] != 0 || p.piecesBb[Black][Queen] != 0 {
		return false
	}
	wn, wb := p.piecesBb[White][Knight].PopCount(), p.piecesBb[White][Bishop].PopCount()
	bn, bb := p.piecesBb[Black][Knight].PopCount(), p.piecesBb[Black][Bishop].PopCount()
	wMinor, bMinor := wn+wb, bn+bb
	switch {
	case wMinor == 0 && bMinor == 0:
		return true
	case wMinor+bMinor == 1:
		return true
	case wn == 2 && wb == 0 && bMinor == 0:
		return true
	case bn == 2 && bb == 0 && wMinor == 0:
		return true
	default:
		return false
	}
}

// IsRepetition reports whether the current position has occurred at least
// count times in the game so far (including now), searching back only as
// far as the last pawn move or capture since no earlier position can
// recur past that point. Null moves played during search (DoNullMove) are
// not real moves a player could have passed on, so the walk stops at the
// nearest one instead of treating the position beyond it as a repeat.
func (p *Position) IsRepetition(count int) bool {
	n := len(p.history)
	limit := n - p.halfMoveClock
	if limit < 0 {
		limit = 0
	}
	reps := 1
	for i := n - 2; i >= limit; i -= 2 {
		if p.history[i].move == NullMove || p.history[i+1].move == NullMove {
			break
		}
		if p.history[i].zobristKey == p.zobristKey {
			reps++
			if reps >= count {
				return true
			}
		}
	}
	return false
}

// IsThreefoldRepetition reports whether the current position is at least
// the third occurrence of the same position in the game.
func (p *Position) IsThreefoldRepetition() bool {
	return p.IsRepetition(3)
}
