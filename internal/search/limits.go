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

import . "github.com/chesskit/engine/internal/types"

// Limits caps an iterative-deepening search beyond whatever time budget
// the caller passes to SearchWithTime. Turning a UCI "go" command's
// wtime/btime/winc/binc/movestogo into a millisecond budget is the wire
// driver's job, not this package's - Limits only carries the two bounds
// SearchWithTime itself enforces once running.
type Limits struct {
	// Depth caps iterative deepening at a fixed depth regardless of time
	// remaining. Zero means no depth cap (MaxPly-1 is used instead).
	Depth int

	// Nodes caps the number of nodes visited. Zero means no node cap.
	Nodes uint64
}

// NewSearchLimits returns Limits with no depth or node cap.
func NewSearchLimits() *Limits {
	return &Limits{}
}

func (l *Limits) depthOrMax() int {
	if l == nil || l.Depth <= 0 || l.Depth >= MaxPly {
		return MaxPly - 1
	}
	return l.Depth
}
