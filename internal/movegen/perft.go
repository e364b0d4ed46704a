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

package movegen

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chesskit/engine/internal/position"
	. "github.com/chesskit/engine/internal/types"
)

var out = message.NewPrinter(language.German)

// PerftResult summarizes a Perft run: node count plus per-category tallies
// used to cross-check move generation against published reference values.
type PerftResult struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	Checkmates uint64
	Elapsed    time.Duration
}

// Perft counts the leaf nodes of the full legal-move tree below p to the
// given depth, classifying moves into PerftResult's categories along the
// way. depth <= 0 is treated as 1.
func Perft(p *position.Position, depth int) PerftResult {
	if depth <= 0 {
		depth = 1
	}
	start := time.Now()
	var res PerftResult
	mg := New()
	perftRec(mg, p, depth, &res)
	res.Elapsed = time.Since(start)
	return res
}

func perftRec(mg *MoveGen, p *position.Position, depth int, res *PerftResult) {
	moves := mg.GeneratePseudoLegalMoves(p, GenAll).Clone()
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.DoMove(m)
		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}
		if depth == 1 {
			res.Nodes++
			if m.IsCapture() {
				res.Captures++
			}
			if m.MoveType() == EnPassant {
				res.EnPassant++
			}
			if m.IsCastle() {
				res.Castles++
			}
			if m.IsPromotion() {
				res.Promotions++
			}
			if p.HasCheck() {
				res.Checks++
				if !mg.HasLegalMove(p) {
					res.Checkmates++
				}
			}
		} else {
			perftRec(mg, p, depth-1, res)
		}
		p.UndoMove()
	}
}

// DivideEntry is one root move's subtree node count, as reported by the
// UCI "go perft" divide command.
type DivideEntry struct {
	Move  string
	Nodes uint64
}

// DividePerft runs Perft independently for each legal root move, one move
// generator per goroutine so the (reused, stateful) buffers never alias
// across moves, and returns the per-move breakdown sorted by move string.
// This is the one place in the engine genuine parallelism pays off: perft
// subtrees are fully independent and the search proper stays single
// threaded (see internal/search).
func DividePerft(p *position.Position, depth int) ([]DivideEntry, uint64, error) {
	if depth <= 0 {
		depth = 1
	}
	root := New()
	rootMoves := root.GenerateLegalMoves(p, GenAll)

	entries := make([]DivideEntry, rootMoves.Len())
	g := new(errgroup.Group)
	for i := 0; i < rootMoves.Len(); i++ {
		i := i
		m := rootMoves.At(i)
		g.Go(func() error {
			child := p.Clone()
			child.DoMove(m)
			var res PerftResult
			if depth > 1 {
				perftRec(New(), child, depth-1, &res)
			} else {
				res.Nodes = 1
			}
			entries[i] = DivideEntry{Move: m.ToWireString(), Nodes: res.Nodes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Move < entries[j].Move })
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return entries, total, nil
}

// PrintDivide renders a divide-perft result the way "go perft divide"
// prints it over UCI: one line per root move, formatted with thousands
// separators, followed by the total.
func PrintDivide(entries []DivideEntry, total uint64) {
	for _, e := range entries {
		out.Printf("%-6s %d\n", e.Move, e.Nodes)
	}
	out.Printf("\nMoves: %d  Nodes: %d\n", len(entries), total)
}

// PrintResult renders a Perft result in the informational block format
// used by the "go perft" UCI extension.
func PrintResult(depth int, res PerftResult) {
	out.Printf("Perft depth %d\n", depth)
	out.Printf("Nodes      : %d\n", res.Nodes)
	out.Printf("Captures   : %d\n", res.Captures)
	out.Printf("EnPassant  : %d\n", res.EnPassant)
	out.Printf("Castles    : %d\n", res.Castles)
	out.Printf("Promotions : %d\n", res.Promotions)
	out.Printf("Checks     : %d\n", res.Checks)
	out.Printf("Checkmates : %d\n", res.Checkmates)
	out.Printf("Time       : %s\n", res.Elapsed)
	out.Printf("NPS        : %s\n", fmt.Sprintf("%d", int64(float64(res.Nodes)/res.Elapsed.Seconds()+0.5)))
}
