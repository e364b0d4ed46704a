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

package uci

import (
	"strconv"
	"strings"

	"github.com/chesskit/engine/internal/config"
)

func init() {
	uciOptions = optionMap{
		"Hash":       {NameID: "Hash", HandlerFunc: setHash, OptionType: optSpin, DefaultValue: strconv.Itoa(config.Settings.Search.TTSize), CurrentValue: strconv.Itoa(config.Settings.Search.TTSize), MinValue: "0", MaxValue: "65000"},
		"Clear Hash": {NameID: "Clear Hash", HandlerFunc: clearHash, OptionType: optButton},

		"Use_Quiescence": {NameID: "Use_Quiescence", HandlerFunc: toggle(&config.Settings.Search.UseQuiescence), OptionType: optCheck, DefaultValue: strconv.FormatBool(config.Settings.Search.UseQuiescence), CurrentValue: strconv.FormatBool(config.Settings.Search.UseQuiescence)},
		"Use_SEE":        {NameID: "Use_SEE", HandlerFunc: toggle(&config.Settings.Search.UseSEE), OptionType: optCheck, DefaultValue: strconv.FormatBool(config.Settings.Search.UseSEE), CurrentValue: strconv.FormatBool(config.Settings.Search.UseSEE)},
		"Use_PVS":        {NameID: "Use_PVS", HandlerFunc: toggle(&config.Settings.Search.UsePVS), OptionType: optCheck, DefaultValue: strconv.FormatBool(config.Settings.Search.UsePVS), CurrentValue: strconv.FormatBool(config.Settings.Search.UsePVS)},
		"Use_Killer":     {NameID: "Use_Killer", HandlerFunc: toggle(&config.Settings.Search.UseKiller), OptionType: optCheck, DefaultValue: strconv.FormatBool(config.Settings.Search.UseKiller), CurrentValue: strconv.FormatBool(config.Settings.Search.UseKiller)},
		"Use_NullMove":   {NameID: "Use_NullMove", HandlerFunc: toggle(&config.Settings.Search.UseNullMove), OptionType: optCheck, DefaultValue: strconv.FormatBool(config.Settings.Search.UseNullMove), CurrentValue: strconv.FormatBool(config.Settings.Search.UseNullMove)},
		"Use_Mdp":        {NameID: "Use_Mdp", HandlerFunc: toggle(&config.Settings.Search.UseMDP), OptionType: optCheck, DefaultValue: strconv.FormatBool(config.Settings.Search.UseMDP), CurrentValue: strconv.FormatBool(config.Settings.Search.UseMDP)},
		"Use_CheckExt":   {NameID: "Use_CheckExt", HandlerFunc: toggle(&config.Settings.Search.UseCheckExt), OptionType: optCheck, DefaultValue: strconv.FormatBool(config.Settings.Search.UseCheckExt), CurrentValue: strconv.FormatBool(config.Settings.Search.UseCheckExt)},
		"Use_Lmr":        {NameID: "Use_Lmr", HandlerFunc: toggle(&config.Settings.Search.UseLmr), OptionType: optCheck, DefaultValue: strconv.FormatBool(config.Settings.Search.UseLmr), CurrentValue: strconv.FormatBool(config.Settings.Search.UseLmr)},
	}
	sortOrderUciOptions = []string{
		"Hash",
		"Clear Hash",
		"Use_Quiescence",
		"Use_SEE",
		"Use_PVS",
		"Use_Killer",
		"Use_NullMove",
		"Use_Mdp",
		"Use_CheckExt",
		"Use_Lmr",
	}
}

// GetOptions returns every registered uci option rendered as a UCI
// protocol "option name ..." line, in registration order.
func (o optionMap) GetOptions() []string {
	options := make([]string, 0, len(sortOrderUciOptions))
	for _, name := range sortOrderUciOptions {
		options = append(options, uciOptions[name].String())
	}
	return options
}

// String renders a uciOption the way the "uci" command reports it
// during UCI protocol initialization.
func (o *uciOption) String() string {
	var sb strings.Builder
	sb.WriteString("option name ")
	sb.WriteString(o.NameID)
	sb.WriteString(" type ")
	switch o.OptionType {
	case optCheck:
		sb.WriteString("check default ")
		sb.WriteString(o.DefaultValue)
	case optSpin:
		sb.WriteString("spin default ")
		sb.WriteString(o.DefaultValue)
		sb.WriteString(" min ")
		sb.WriteString(o.MinValue)
		sb.WriteString(" max ")
		sb.WriteString(o.MaxValue)
	case optButton:
		sb.WriteString("button")
	}
	return sb.String()
}

// uciOptionType enumerates the UCI option kinds this driver exposes.
// Combo and string options from the teacher's version are not carried
// here: the options that used them (opening book format, Ponder) name
// non-goal features.
type uciOptionType int

const (
	optCheck uciOptionType = iota
	optSpin
	optButton
)

// optionHandler is invoked by "setoption" once CurrentValue has been
// updated with the value sent by the UCI user interface.
type optionHandler func(h *Handler, o *uciOption)

// uciOption is one entry in the table "uci" advertises and "setoption"
// mutates.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	CurrentValue string
}

type optionMap map[string]*uciOption

var uciOptions optionMap
var sortOrderUciOptions []string

// toggle builds a handler that parses CurrentValue as a bool into flag.
// Most of this driver's check options are plain config.Settings.Search
// feature switches, so one generic handler covers all of them instead
// of one hand-written function per option.
func toggle(flag *bool) optionHandler {
	return func(h *Handler, o *uciOption) {
		v, err := strconv.ParseBool(o.CurrentValue)
		if err != nil {
			h.SendInfoString("setoption " + o.NameID + ": not a boolean: " + o.CurrentValue)
			return
		}
		*flag = v
	}
}

func setHash(h *Handler, o *uciOption) {
	size, err := strconv.Atoi(o.CurrentValue)
	if err != nil {
		h.SendInfoString("setoption Hash: not a number: " + o.CurrentValue)
		return
	}
	config.Settings.Search.TTSize = size
	h.srch.ResizeHash(size)
}

func clearHash(h *Handler, _ *uciOption) {
	h.srch.ClearHash()
}
