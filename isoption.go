// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"unicode/utf8"
)

type tokenKind int

const (
	tokenOperand    tokenKind = iota // anything not starting with '-', and the lone dash "-"
	tokenTerminator                  // --
	tokenLong                        // --name[=arg], or -name[=arg] in long only mode
	tokenCluster                     // -abc
)

func (k tokenKind) String() string {
	switch k {
	case tokenOperand:
		return "operand"
	case tokenTerminator:
		return "terminator"
	case tokenLong:
		return "long"
	case tokenCluster:
		return "cluster"
	default:
		return "unknown"
	}
}

// isOperand - The lone dash '-' is an operand, conventionally standing for stdin.
func isOperand(s string) bool {
	return len(s) < 2 || s[0] != '-'
}

/*
classify - Classifies an argument vector element at the start of a scan step.
It returns the kind and, for long tokens, the number of leading dashes.

In long only mode a single dash token is a long option unless it is exactly
two characters long and its character is a declared short option, '-x'
stays a short option when x is in the optstring.
When the parser has no long option table at all (plain getopt) '--name' is a
cluster starting with the '-' character, which is never a valid option.
*/
func classify(s string, m mode, o *Optstring) (tokenKind, int) {
	if isOperand(s) {
		return tokenOperand, 0
	}
	if s == "--" {
		return tokenTerminator, 0
	}
	if m == modeShort {
		return tokenCluster, 0
	}
	if s[1] == '-' {
		return tokenLong, 2
	}
	if m == modeLongOnly {
		c, size := utf8.DecodeRuneInString(s[1:])
		if 1+size < len(s) {
			return tokenLong, 1
		}
		if _, ok := o.Lookup(c); !ok {
			return tokenLong, 1
		}
	}
	return tokenCluster, 0
}
