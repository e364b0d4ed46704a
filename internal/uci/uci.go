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

// Package uci parses the UCI wire protocol and drives a position and a
// search from it. It holds no search, evaluation or move-generation
// logic of its own - every command either mutates the Handler's
// position directly or delegates to internal/search and
// internal/movegen.
package uci

import (
	"bufio"
	"bytes"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/op/go-logging"

	myLogging "github.com/chesskit/engine/internal/logging"
	"github.com/chesskit/engine/internal/movegen"
	"github.com/chesskit/engine/internal/position"
	"github.com/chesskit/engine/internal/search"
	. "github.com/chesskit/engine/internal/types"
)

const engineName = "chesskit"
const engineAuthor = "chesskit contributors"

// defaultMovesToGo is assumed when a "go wtime/btime" command arrives
// without "movestogo", matching the usual convention of budgeting as if
// the game had this many moves left.
const defaultMovesToGo = 30

// minBudgetMs is the smallest time budget ever handed to the search,
// regardless of how little time a "go" command implies is left.
const minBudgetMs = 50

// infiniteBudgetMs stands in for "no time limit" on a "go infinite"
// search, or a "go depth" search with no accompanying time control:
// large enough that only RequestStop or the depth/mate bound ends it.
const infiniteBudgetMs = 24 * 60 * 60 * 1000

// Handler holds one UCI session: the position currently being searched,
// the search and move generator operating on it, and the I/O streams
// the session reads commands from and writes responses to.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	mg   *movegen.MoveGen
	srch *search.Search
	pos  *position.Position

	uciLog *logging.Logger

	mu        sync.Mutex
	searching bool
}

// NewHandler creates a Handler reading from stdin and writing to stdout,
// with a fresh starting position.
func NewHandler() *Handler {
	return &Handler{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		mg:     movegen.New(),
		srch:   search.NewSearch(),
		pos:    position.NewPosition(),
		uciLog: myLogging.GetUciLog(),
	}
}

// Loop reads commands from InIo until "quit" is received or the input
// stream ends.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handleCommand(h.InIo.Text()) {
			return
		}
	}
}

// Command runs a single line through the handler and returns whatever it
// wrote to the UCI user interface, for debugging and unit testing.
// A "go" command that triggers a bounded search (anything but
// "infinite") blocks until the search's own time or depth budget is
// spent, same as Loop would observe.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handleCommand(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

// SendInfoString sends an arbitrary diagnostic string as a UCI "info
// string" line.
func (h *Handler) SendInfoString(s string) {
	h.send("info string " + s)
}

var regexWhitespace = regexp.MustCompile(`\s+`)

// handleCommand dispatches a single line of input. Returns true if the
// session should end ("quit" was received).
func (h *Handler) handleCommand(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	h.uciLog.Infof("<< %s", cmd)

	tokens := regexWhitespace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.pos = position.NewPosition()
		h.srch.NewGame()
	case "setoption":
		h.setOptionCommand(tokens)
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.srch.RequestStop()
	case "ponderhit":
		// pondering is a non-goal; nothing to do.
	default:
		h.SendInfoString("unknown command: " + cmd)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send("id name " + engineName)
	h.send("id author " + engineAuthor)
	for _, o := range uciOptions.GetOptions() {
		h.send(o)
	}
	h.send("uciok")
}

func (h *Handler) setOptionCommand(tokens []string) {
	if len(tokens) < 3 || tokens[1] != "name" {
		h.SendInfoString("malformed setoption command")
		return
	}
	i := 2
	var name strings.Builder
	for i < len(tokens) && tokens[i] != "value" {
		if name.Len() > 0 {
			name.WriteByte(' ')
		}
		name.WriteString(tokens[i])
		i++
	}
	value := ""
	if i < len(tokens)-1 && tokens[i] == "value" {
		value = strings.Join(tokens[i+1:], " ")
	}
	o, found := uciOptions[name.String()]
	if !found {
		h.SendInfoString("no such option: " + name.String())
		return
	}
	o.CurrentValue = value
	o.HandlerFunc(h, o)
}

// positionCommand sets up h.pos from a "position [startpos|fen ...]
// [moves ...]" command.
func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.SendInfoString("malformed position command")
		return
	}
	var i int
	switch tokens[1] {
	case "startpos":
		h.pos = position.NewPosition()
		i = 2
	case "fen":
		var fenb strings.Builder
		i = 2
		for i < len(tokens) && tokens[i] != "moves" {
			if fenb.Len() > 0 {
				fenb.WriteByte(' ')
			}
			fenb.WriteString(tokens[i])
			i++
		}
		p, err := position.NewPositionFromFEN(fenb.String())
		if err != nil {
			h.SendInfoString("malformed fen: " + err.Error())
			return
		}
		h.pos = p
	default:
		h.SendInfoString("malformed position command: " + strings.Join(tokens, " "))
		return
	}
	if i < len(tokens) && tokens[i] == "moves" {
		for _, wire := range tokens[i+1:] {
			if err := h.mg.ApplyMoveFromWireString(h.pos, wire); err != nil {
				h.SendInfoString(err.Error())
				return
			}
		}
	}
}

// goCommand reads search limits from a "go ..." command and starts a
// search. Every variant but "infinite" runs synchronously, returning to
// the caller once the resulting budget has been spent. "go infinite"
// runs on its own goroutine so a later "stop" command can reach
// Search.RequestStop while this handler keeps reading input.
func (h *Handler) goCommand(tokens []string) {
	h.mu.Lock()
	if h.searching {
		h.mu.Unlock()
		h.SendInfoString("a search is already running")
		return
	}
	h.mu.Unlock()

	infinite, budgetMs, depth, err := h.parseGoLimits(tokens)
	if err != nil {
		h.SendInfoString(err.Error())
		return
	}
	limits := search.NewSearchLimits()
	limits.Depth = depth

	run := func() {
		h.mu.Lock()
		h.searching = true
		h.mu.Unlock()

		best := h.srch.Search(h.pos, limits, budgetMs)

		h.mu.Lock()
		h.searching = false
		h.mu.Unlock()

		h.send("bestmove " + best.ToWireString())
	}

	if infinite {
		go run()
		return
	}
	run()
}

// parseGoLimits translates a "go" command's tokens into whether the
// search is unbounded, a millisecond budget, and a depth cap (0 meaning
// none). wtime/btime/winc/binc/movestogo are combined into a budget
// using the side to move's remaining clock, divided across the assumed
// or stated number of moves left plus its increment - the conventional
// chess-clock time-management formula.
func (h *Handler) parseGoLimits(tokens []string) (infinite bool, budgetMs, depth int, err error) {
	var movetime, wtime, btime, winc, binc, movesToGo int
	haveClock := false

	i := 1
	for i < len(tokens) {
		tok := tokens[i]
		i++
		readInt := func() (int, error) {
			if i >= len(tokens) {
				return 0, errMalformedGo(tok)
			}
			v, convErr := strconv.Atoi(tokens[i])
			i++
			if convErr != nil {
				return 0, errMalformedGo(tok)
			}
			return v, nil
		}
		switch tok {
		case "infinite":
			infinite = true
		case "depth":
			if depth, err = readInt(); err != nil {
				return
			}
		case "movetime":
			if movetime, err = readInt(); err != nil {
				return
			}
		case "wtime":
			haveClock = true
			if wtime, err = readInt(); err != nil {
				return
			}
		case "btime":
			haveClock = true
			if btime, err = readInt(); err != nil {
				return
			}
		case "winc":
			if winc, err = readInt(); err != nil {
				return
			}
		case "binc":
			if binc, err = readInt(); err != nil {
				return
			}
		case "movestogo":
			if movesToGo, err = readInt(); err != nil {
				return
			}
		case "nodes", "mate":
			// accepted but not translated into a limit: node-count and
			// mate-search limits are non-goals of this driver.
			if _, err = readInt(); err != nil {
				return
			}
		case "ponder":
			// pondering is a non-goal; treat like a plain "go".
		default:
			err = errMalformedGo(tok)
			return
		}
	}

	switch {
	case infinite:
		budgetMs = infiniteBudgetMs
	case movetime > 0:
		budgetMs = movetime
	case haveClock:
		remaining := wtime
		inc := winc
		if h.pos.SideToMove() == Black {
			remaining = btime
			inc = binc
		}
		mtg := movesToGo
		if mtg <= 0 {
			mtg = defaultMovesToGo
		}
		budgetMs = remaining/mtg + inc
		if budgetMs > remaining-minBudgetMs {
			budgetMs = remaining - minBudgetMs
		}
		if budgetMs < minBudgetMs {
			budgetMs = minBudgetMs
		}
	case depth > 0:
		budgetMs = infiniteBudgetMs
	default:
		// no effective limit given: search a single, short, fixed slice
		// of time rather than rejecting the command outright.
		budgetMs = 1000
	}
	return
}

func errMalformedGo(tok string) error {
	return &malformedGoError{tok}
}

type malformedGoError struct{ token string }

func (e *malformedGoError) Error() string {
	return "malformed go command near '" + e.token + "'"
}

func (h *Handler) send(s string) {
	h.uciLog.Infof(">> %s", s)
	_, _ = h.OutIo.WriteString(s)
	_, _ = h.OutIo.WriteString("\n")
	_ = h.OutIo.Flush()
}
