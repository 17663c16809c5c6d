// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// option table types and the optstring grammar.

package getopt

import (
	"fmt"
	"unicode/utf8"
)

// HasArg - Argument policy of an option.
type HasArg int

// Argument policies
const (
	NoArgument       HasArg = iota // The option takes no argument.
	RequiredArgument               // The option requires an argument, inline or in the next element.
	OptionalArgument               // The option takes an argument only when given inline.
)

func (h HasArg) String() string {
	switch h {
	case NoArgument:
		return "none"
	case RequiredArgument:
		return "required"
	case OptionalArgument:
		return "optional"
	default:
		return "unknown"
	}
}

// LongOption - One entry in the long option table.
//
// When Flag is not nil, a match stores Val in *Flag and the parse result
// carries code 0. Otherwise the result code is Val.
// Entries with an empty Name are ignored.
type LongOption struct {
	Name   string
	HasArg HasArg
	Flag   *int
	Val    int
}

// Ordering - How operands found between options are handled.
type Ordering int

// Orderings
const (
	// Permute options ahead of operands so operands end up at the tail (default).
	Permute Ordering = iota
	// RequireOrder stops at the first operand (optstring starts with '+').
	RequireOrder
	// ReturnInOrder reports every operand as an option with code 1 (optstring starts with '-').
	ReturnInOrder
)

func (o Ordering) String() string {
	switch o {
	case Permute:
		return "permute"
	case RequireOrder:
		return "require-order"
	case ReturnInOrder:
		return "return-in-order"
	default:
		return "unknown"
	}
}

// ShortOption - One option character declared in an optstring.
type ShortOption struct {
	Char   rune
	HasArg HasArg
}

// Optstring - Parsed representation of a short option specification.
type Optstring struct {
	Ordering Ordering
	// Colon is set by a ':' following the ordering prefix.
	// Missing argument errors then report code ':' instead of '?'.
	Colon bool
	// WLong is set by "W;", making '-W foo' equivalent to '--foo'.
	WLong bool
	Short []ShortOption
}

// ParseOptstring - Parses the compact short option grammar:
// each option character may be followed by ':' (required argument) or '::'
// (optional argument). A leading '+' selects RequireOrder, a leading '-'
// selects ReturnInOrder, then a ':' selects Colon.
//
// A string starting with both '+' and '-' is rejected, as are the option
// characters ':', ';' and '-', invalid UTF-8 and repeated characters.
func ParseOptstring(s string) (*Optstring, error) {
	o := &Optstring{}
	i := 0
	if i < len(s) {
		switch s[i] {
		case '+':
			o.Ordering = RequireOrder
			i++
		case '-':
			o.Ordering = ReturnInOrder
			i++
		}
	}
	if i == 1 && i < len(s) && (s[i] == '+' || s[i] == '-') {
		return nil, fmt.Errorf("optstring %q requests both require-order and return-in-order: %w", s, ErrorInvalidArguments)
	}
	if i < len(s) && s[i] == ':' {
		o.Colon = true
		i++
	}
	seen := map[rune]bool{}
	for i < len(s) {
		c, size := utf8.DecodeRuneInString(s[i:])
		if c == utf8.RuneError && size <= 1 {
			return nil, fmt.Errorf("optstring %q: invalid UTF-8 at byte %d: %w", s, i, ErrorInvalidArguments)
		}
		i += size
		switch c {
		case ':', ';', '-':
			return nil, fmt.Errorf("optstring %q: '%c' can't be an option character: %w", s, c, ErrorInvalidArguments)
		}
		if seen[c] {
			return nil, fmt.Errorf("optstring %q: option '%c' is defined twice: %w", s, c, ErrorInvalidArguments)
		}
		seen[c] = true

		if c == 'W' && i < len(s) && s[i] == ';' {
			i++
			o.WLong = true
			o.Short = append(o.Short, ShortOption{Char: c, HasArg: RequiredArgument})
			continue
		}
		hasArg := NoArgument
		if i < len(s) && s[i] == ':' {
			hasArg = RequiredArgument
			i++
			if i < len(s) && s[i] == ':' {
				hasArg = OptionalArgument
				i++
			}
		}
		o.Short = append(o.Short, ShortOption{Char: c, HasArg: hasArg})
	}
	return o, nil
}

// Lookup - Returns the declaration of option character c.
func (o *Optstring) Lookup(c rune) (ShortOption, bool) {
	for _, opt := range o.Short {
		if opt.Char == c {
			return opt, true
		}
	}
	return ShortOption{}, false
}

// String - Renders the optstring back to its compact form.
func (o *Optstring) String() string {
	out := ""
	switch o.Ordering {
	case RequireOrder:
		out += "+"
	case ReturnInOrder:
		out += "-"
	}
	if o.Colon {
		out += ":"
	}
	for _, opt := range o.Short {
		out += string(opt.Char)
		if opt.Char == 'W' && o.WLong {
			out += ";"
			continue
		}
		switch opt.HasArg {
		case RequiredArgument:
			out += ":"
		case OptionalArgument:
			out += "::"
		}
	}
	return out
}

// hasLongEntries - Tells if the table has at least one usable entry.
func hasLongEntries(longopts []LongOption) bool {
	for _, lo := range longopts {
		if lo.Name != "" {
			return true
		}
	}
	return false
}
