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

// Statistics are extra counters not essential for a functioning search,
// surfaced through String() for diagnostics and UCI "info" lines.
type Statistics struct {
	Nodes                 uint64
	TTHits                uint64
	TTMisses              uint64
	TTCuts                uint64
	BetaCutoffs           uint64
	BetaCutoffs1st        uint64
	NullMoveCutoffs       uint64
	StandpatCutoffs       uint64
	DeltaPrunings         uint64
	SEEPrunings           uint64
	LmrResearches         uint64
	PvsResearches         uint64
	CheckExtensions       uint64
	Checkmates            uint64
	Stalemates            uint64
	CurrentIterationDepth int
}

func (st *Statistics) String() string {
	return out.Sprintf("nodes=%d ttHits=%d ttMisses=%d ttCuts=%d betaCuts=%d betaCuts1st=%d "+
		"nullMoveCuts=%d standpatCuts=%d deltaPrunings=%d seePrunings=%d lmrResearches=%d "+
		"pvsResearches=%d checkExtensions=%d checkmates=%d stalemates=%d depth=%d",
		st.Nodes, st.TTHits, st.TTMisses, st.TTCuts, st.BetaCutoffs, st.BetaCutoffs1st,
		st.NullMoveCutoffs, st.StandpatCutoffs, st.DeltaPrunings, st.SEEPrunings, st.LmrResearches,
		st.PvsResearches, st.CheckExtensions, st.Checkmates, st.Stalemates, st.CurrentIterationDepth)
}
