// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DavidGamba/go-getopt/text"
)

// ErrorDone - Indicates that there are no more options to scan.
// The Result's Optind marks the start of the operand run.
var ErrorDone = errors.New(text.ErrorDone)

// ErrorInvalidArguments - Indicates structurally invalid input: nil session,
// nil argument vector, nil long option table or a malformed optstring.
// No session state is modified when it is returned.
var ErrorInvalidArguments = errors.New(text.ErrorInvalidArguments)

// ErrorUnrecognizedOption - No table entry matches the option.
var ErrorUnrecognizedOption = errors.New("unrecognized option")

// ErrorAmbiguousOption - A long option abbreviation matches more than one entry.
var ErrorAmbiguousOption = errors.New("ambiguous option")

// ErrorMissingArgument - An option requiring an argument didn't get one.
var ErrorMissingArgument = errors.New("missing argument")

// ErrorUnexpectedArgument - An option that takes no argument was given one inline.
var ErrorUnexpectedArgument = errors.New("unexpected argument")

// ParseError - Scanning phase error.
//
// It wraps one of ErrorUnrecognizedOption, ErrorAmbiguousOption,
// ErrorMissingArgument or ErrorUnexpectedArgument so it can be checked with
// errors.Is.
type ParseError struct {
	Err        error
	Char       rune     // short option character, 0 for long options
	Option     string   // long option as typed, dashes included
	Token      string   // offending argument vector element
	Candidates []string // long option names matching an ambiguous abbreviation
}

func (e *ParseError) Error() string {
	switch {
	case errors.Is(e.Err, ErrorAmbiguousOption):
		list := ""
		for _, c := range e.Candidates {
			list += fmt.Sprintf(" '%s'", longPrefix(e.Option)+c)
		}
		return fmt.Sprintf(text.ErrorAmbiguousOption, e.Option, list)
	case errors.Is(e.Err, ErrorUnrecognizedOption):
		if e.Option == "" {
			return fmt.Sprintf(text.ErrorInvalidOption, e.Char)
		}
		return fmt.Sprintf(text.ErrorUnrecognizedOption, e.Option)
	case errors.Is(e.Err, ErrorMissingArgument):
		if e.Option == "" {
			return fmt.Sprintf(text.ErrorMissingArgumentShort, e.Char)
		}
		return fmt.Sprintf(text.ErrorMissingArgument, e.Option)
	case errors.Is(e.Err, ErrorUnexpectedArgument):
		return fmt.Sprintf(text.ErrorUnexpectedArgument, e.Option)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// longPrefix - Returns the dashes, or the "-W " prefix, the option was typed with.
func longPrefix(option string) string {
	if strings.HasPrefix(option, "-W ") {
		return "-W "
	}
	if strings.HasPrefix(option, "--") {
		return "--"
	}
	if strings.HasPrefix(option, "-") {
		return "-"
	}
	return ""
}
