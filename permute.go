// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"github.com/DavidGamba/go-getopt/internal/argv"
)

// The permuter keeps two marks besides optind:
//
//	[firstNonopt, lastNonopt) operands skipped so far, in their original order.
//	[lastNonopt, optind)      options and values consumed after them.
//
// exchange rotates the second block in front of the first one, so options
// move towards the front and the operand block keeps sliding right with its
// order intact.

// exchange - Moves the consumed options ahead of the skipped operands.
func (s *Session) exchange(v *argv.Vector) {
	Logger.Printf("exchange operands [%d, %d) with options [%d, %d)", s.firstNonopt, s.lastNonopt, s.lastNonopt, s.optind)
	if !v.Rotate(s.firstNonopt, s.lastNonopt, s.optind) {
		// Marks out of range can only come from the vector shrinking between
		// calls, restart the bookkeeping from optind.
		Logger.Printf("exchange out of range, len %d", v.Len())
		s.firstNonopt, s.lastNonopt = s.optind, s.optind
		return
	}
	s.firstNonopt += s.optind - s.lastNonopt
	s.lastNonopt = s.optind
}

// skipOperands - Called when moving to a new element in Permute ordering.
// Commits the options consumed since the last call and moves optind past the
// next run of operands.
func (s *Session) skipOperands(v *argv.Vector) {
	if s.firstNonopt != s.lastNonopt && s.lastNonopt != s.optind {
		s.exchange(v)
	} else if s.lastNonopt != s.optind {
		s.firstNonopt = s.optind
	}
	for s.optind < v.Len() && isOperand(v.At(s.optind)) {
		s.optind++
	}
	s.lastNonopt = s.optind
}

// skipTerminator - Called after consuming "--". Everything after it is an
// operand, joins it to the operand block and moves optind to the end.
func (s *Session) skipTerminator(v *argv.Vector) {
	if s.firstNonopt != s.lastNonopt && s.lastNonopt != s.optind {
		s.exchange(v)
	} else if s.firstNonopt == s.lastNonopt {
		s.firstNonopt = s.optind
	}
	s.lastNonopt = v.Len()
	s.optind = v.Len()
}
