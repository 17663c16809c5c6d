// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - renders usage text for an option table.
package help

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DavidGamba/go-getopt"
	"github.com/DavidGamba/go-getopt/text"
)

// Padding -
var Padding = 4

// Width - synopsis lines are wrapped before reaching it.
var Width = 80

// Entry - One row of the option list.
type Entry struct {
	Short       rune // 0 when the option has no short form
	Long        string
	HasArg      getopt.HasArg
	ArgName     string // defaults to "arg"
	Description string
}

// HelpName -
func HelpName(scriptName, description string) string {
	out := scriptName
	if description != "" {
		out += fmt.Sprintf(" - %s", description)
	}
	return fmt.Sprintf("%s:\n%s%s\n", text.HelpNameHeader, strings.Repeat(" ", Padding), out)
}

// HelpSynopsis - Return a synopsis for the optstring and long option table.
// Short options without arguments are grouped in a single bracket, the rest
// follow in declaration order.
func HelpSynopsis(scriptName string, o *getopt.Optstring, longopts []getopt.LongOption) string {
	scriptName = strings.Repeat(" ", Padding) + scriptName
	syns := []string{}
	flags := ""
	if o != nil {
		for _, opt := range o.Short {
			if opt.HasArg == getopt.NoArgument {
				flags += string(opt.Char)
			}
		}
		if flags != "" {
			syns = append(syns, "[-"+flags+"]")
		}
		for _, opt := range o.Short {
			switch opt.HasArg {
			case getopt.RequiredArgument:
				syns = append(syns, fmt.Sprintf("[-%c <arg>]", opt.Char))
			case getopt.OptionalArgument:
				syns = append(syns, fmt.Sprintf("[-%c[<arg>]]", opt.Char))
			}
		}
	}
	for _, lo := range longopts {
		if lo.Name == "" {
			continue
		}
		switch lo.HasArg {
		case getopt.NoArgument:
			syns = append(syns, fmt.Sprintf("[--%s]", lo.Name))
		case getopt.RequiredArgument:
			syns = append(syns, fmt.Sprintf("[--%s <arg>]", lo.Name))
		case getopt.OptionalArgument:
			syns = append(syns, fmt.Sprintf("[--%s[=<arg>]]", lo.Name))
		}
	}
	syns = append(syns, "[<args>]")

	var out string
	line := scriptName
	for _, syn := range syns {
		if len(line)+len(syn)+1 > Width {
			out += line + "\n"
			line = fmt.Sprintf("%s %s", strings.Repeat(" ", len(scriptName)), syn)
		} else {
			line += fmt.Sprintf(" %s", syn)
		}
	}
	out += line
	return fmt.Sprintf("%s:\n%s\n", text.HelpSynopsisHeader, out)
}

// pad - Given a string and a padding factor it will return the string padded with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}

// names - "-o, --options <optstring>"
func (e Entry) names() string {
	argName := e.ArgName
	if argName == "" {
		argName = "arg"
	}
	aliases := []string{}
	if e.Short != 0 {
		aliases = append(aliases, fmt.Sprintf("-%c", e.Short))
	}
	if e.Long != "" {
		aliases = append(aliases, "--"+e.Long)
	}
	out := strings.Join(aliases, ", ")
	switch e.HasArg {
	case getopt.RequiredArgument:
		out += " <" + argName + ">"
	case getopt.OptionalArgument:
		if e.Long != "" {
			out += "[=<" + argName + ">]"
		} else {
			out += "[<" + argName + ">]"
		}
	}
	return out
}

// HelpOptionList - Return a formatted list of options and their descriptions.
func HelpOptionList(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}
	factor := 0
	for _, e := range entries {
		if l := len(e.names()); l > factor {
			factor = l
		}
	}
	factor += Padding
	padding := strings.Repeat(" ", Padding+factor)
	out := ""
	for _, e := range entries {
		txt := strings.Repeat(" ", Padding) + pad(e.names(), factor)
		if e.Description != "" {
			txt += strings.ReplaceAll(e.Description, "\n", "\n"+padding)
		}
		out += strings.TrimRight(txt, " ") + "\n"
	}
	return fmt.Sprintf("%s:\n%s", text.HelpOptionsHeader, out)
}
