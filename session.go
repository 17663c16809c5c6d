// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

// Session - Scan state persisted across calls.
//
// The zero value is ready to use and starts scanning at index 0 of the
// argument vector; there is no program name element to skip.
// A Session is not safe for concurrent use. Independent sessions may parse
// different vectors at the same time.
type Session struct {
	// RequireOrder stops the scan at the first operand, the equivalent of
	// POSIXLY_CORRECT. A '-' prefix in the optstring takes precedence.
	RequireOrder bool

	optind  int // next_index: next unconsumed element
	cluster int // byte offset of the next character inside a short option cluster, 0 when not in one

	firstNonopt int
	lastNonopt  int

	optionsEnded bool // set once ErrorDone has been returned
	operandStart int

	optarg    string // last_value
	hasOptarg bool
	optopt    rune

	cache struct {
		spec string
		o    *Optstring
	}
}

// NewSession - Returns a session ready to scan from the first element.
func NewSession() *Session {
	return &Session{}
}

// Reset - Restarts the session. Configuration fields are kept.
func (s *Session) Reset() {
	requireOrder := s.RequireOrder
	*s = Session{RequireOrder: requireOrder}
}

// Optind - Index of the next element to scan.
// After ErrorDone it is the index of the first operand.
func (s *Session) Optind() int {
	return s.optind
}

// Optarg - Argument of the last matched option and whether there was one.
func (s *Session) Optarg() (string, bool) {
	return s.optarg, s.hasOptarg
}

// Optopt - The last short option character matched or rejected.
// For long option errors it is the Val of the offending entry, when known.
func (s *Session) Optopt() rune {
	return s.optopt
}

// Done - Tells if the scan has reached the operand run.
func (s *Session) Done() bool {
	return s.optionsEnded
}

// Operands - Returns the operand run of args once the scan is done.
// The returned slice shares storage with args.
func (s *Session) Operands(args []string) []string {
	if !s.optionsEnded || s.operandStart > len(args) {
		return []string{}
	}
	return args[s.operandStart:]
}

// Result - The outcome of one scan step.
type Result struct {
	// Code is the option character for short options, Val for long options
	// (0 when the entry has a Flag), 1 for an operand in ReturnInOrder ordering,
	// '?' (or ':' for a missing argument with a Colon optstring) on errors and -1
	// when there are no more options.
	Code int
	// Value is the option argument, or the operand with code 1.
	Value    string
	HasValue bool
	// Index into the long option table, -1 unless a long option matched.
	Index int
	// Name of the matched long option.
	Name string
	// Opt is the option character, see Session.Optopt.
	Opt rune
	// Optind is the session's Optind after the step.
	Optind int
}
