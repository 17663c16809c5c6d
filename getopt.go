// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package getopt - GNU getopt compatible option scanner.

It scans an argument vector against an optstring of short options and a table
of long options, reporting one option per call, and reorders the vector in
place so the operands end up contiguous at its tail.

Usage

		longopts := []getopt.LongOption{
			{Name: "add", HasArg: getopt.RequiredArgument, Val: 'a'},
			{Name: "verbose", HasArg: getopt.NoArgument, Val: 'v'},
		}
		args := os.Args[1:]
		s := getopt.NewSession()
		for {
			res, err := s.GetoptLong(args, "a:v", longopts)
			if errors.Is(err, getopt.ErrorDone) {
				break
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s\n", os.Args[0], err)
				continue
			}
			switch res.Code {
			case 'a':
				// res.Value
			case 'v':
			}
		}
		operands := s.Operands(args)

Features

* Short option clusters `-abc` and packed values `-ofile`.

* Long options `--name`, `--name=value` and `--name value`, abbreviated to
any unambiguous prefix.

* Long only mode, `-name` works as `--name`.

* `--` ends option scanning.

* Optstring prefixes '+' (stop at the first operand), '-' (return operands in
order) and ':' (report missing arguments with code ':'), and the `W;` extension.

The scan state lives in a Session, so multiple vectors can be scanned at the
same time and a scan can be restarted with Session.Reset.
*/
package getopt

import (
	"fmt"
	"io"
	"log"
	"unicode/utf8"

	"github.com/DavidGamba/go-getopt/internal/argv"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

type mode int

const (
	modeShort    mode = iota // getopt
	modeLong                 // getopt_long
	modeLongOnly             // getopt_long_only
)

// Getopt - Scans the next short option of args.
//
// On ErrorDone the Result's Optind marks the start of the operand run.
func (s *Session) Getopt(args []string, optstring string) (Result, error) {
	if s == nil || args == nil {
		return invalid(), fmt.Errorf("getopt: nil session or argument vector: %w", ErrorInvalidArguments)
	}
	return s.start(args, optstring, nil, modeShort)
}

// GetoptLong - Scans the next short or long option of args.
// Long options are introduced by two dashes.
func (s *Session) GetoptLong(args []string, optstring string, longopts []LongOption) (Result, error) {
	if s == nil || args == nil || longopts == nil {
		return invalid(), fmt.Errorf("getopt_long: nil session, argument vector or long option table: %w", ErrorInvalidArguments)
	}
	return s.start(args, optstring, longopts, modeLong)
}

// GetoptLongOnly - Same as GetoptLong but a single dash also introduces a
// long option. When a single dash token doesn't match a long option and its
// first character is a short option, it is scanned as a short option cluster.
func (s *Session) GetoptLongOnly(args []string, optstring string, longopts []LongOption) (Result, error) {
	if s == nil || args == nil || longopts == nil {
		return invalid(), fmt.Errorf("getopt_long_only: nil session, argument vector or long option table: %w", ErrorInvalidArguments)
	}
	return s.start(args, optstring, longopts, modeLongOnly)
}

func invalid() Result {
	return Result{Code: -1, Index: -1}
}

// start - Validates the optstring before touching any state.
func (s *Session) start(args []string, optstring string, longopts []LongOption, m mode) (Result, error) {
	o := s.cache.o
	if o == nil || s.cache.spec != optstring {
		var err error
		o, err = ParseOptstring(optstring)
		if err != nil {
			return invalid(), err
		}
		s.cache.spec, s.cache.o = optstring, o
	}
	if len(o.Short) == 0 && !hasLongEntries(longopts) {
		Logger.Printf("empty option table, nothing to scan")
		return Result{Code: -1, Index: -1, Optind: s.optind}, ErrorDone
	}
	return s.next(argv.New(args), o, longopts, m)
}

func (s *Session) ordering(o *Optstring) Ordering {
	if o.Ordering == Permute && s.RequireOrder {
		return RequireOrder
	}
	return o.Ordering
}

// done - Ends the scan. Later calls return the same operand start.
func (s *Session) done(v *argv.Vector) (Result, error) {
	if s.firstNonopt != s.lastNonopt {
		s.optind = s.firstNonopt
	}
	s.optionsEnded = true
	s.operandStart = s.optind
	s.cluster = 0
	Logger.Printf("done, operands start at %d: %v", s.optind, v.Remaining(s.optind))
	return Result{Code: -1, Index: -1, Optind: s.optind}, ErrorDone
}

// next - The scan step.
func (s *Session) next(v *argv.Vector, o *Optstring, longopts []LongOption, m mode) (Result, error) {
	s.optarg, s.hasOptarg = "", false

	if s.optionsEnded {
		return Result{Code: -1, Index: -1, Optind: s.operandStart}, ErrorDone
	}

	// The vector may have shrunk since the last call.
	if s.optind > v.Len() {
		s.optind = v.Len()
		s.cluster = 0
	}
	if s.cluster > 0 && s.cluster >= len(v.At(s.optind)) {
		s.cluster = 0
		s.optind++
	}

	if s.cluster > 0 {
		return s.shortOption(v, o, longopts, m)
	}

	// Advance to the next element.
	if s.lastNonopt > s.optind {
		s.lastNonopt = s.optind
	}
	if s.firstNonopt > s.optind {
		s.firstNonopt = s.optind
	}
	ordering := s.ordering(o)
	if ordering == Permute {
		s.skipOperands(v)
	}

	if s.optind < v.Len() && v.At(s.optind) == "--" {
		Logger.Printf("terminator at %d", s.optind)
		s.optind++
		s.skipTerminator(v)
	}

	if s.optind >= v.Len() {
		return s.done(v)
	}

	token := v.At(s.optind)
	kind, dashes := classify(token, m, o)
	Logger.Printf("token %d %q: %s", s.optind, token, kind)
	switch kind {
	case tokenOperand:
		if ordering == RequireOrder {
			return s.done(v)
		}
		s.optind++
		s.optarg, s.hasOptarg = token, true
		return Result{Code: 1, Value: token, HasValue: true, Index: -1, Optind: s.optind}, nil
	case tokenLong:
		match := MatchLong(longopts, token[dashes:])
		if match.Kind == NotFound && m == modeLongOnly && dashes == 1 {
			c, _ := utf8.DecodeRuneInString(token[1:])
			if _, ok := o.Lookup(c); ok {
				Logger.Printf("no long option %q, scanning as short options", match.Name)
				s.cluster = 1
				return s.shortOption(v, o, longopts, m)
			}
		}
		s.optind++
		return s.longOption(match, token[:dashes]+match.Name, token, v, o, longopts)
	}
	s.cluster = 1
	return s.shortOption(v, o, longopts, m)
}

// longOption - Finishes a long option step. optind already points past the
// element holding the option name.
func (s *Session) longOption(match Match, option, token string, v *argv.Vector, o *Optstring, longopts []LongOption) (Result, error) {
	s.cluster = 0
	s.optopt = 0
	res := Result{Code: '?', Index: -1}

	switch match.Kind {
	case NotFound:
		res.Optind = s.optind
		return res, &ParseError{Err: ErrorUnrecognizedOption, Option: option, Token: token}
	case Ambiguous:
		res.Optind = s.optind
		return res, &ParseError{Err: ErrorAmbiguousOption, Option: option, Token: token, Candidates: match.candidateNames(longopts)}
	}

	lo := longopts[match.Index]
	res.Name = lo.Name
	if match.HasValue {
		if lo.HasArg == NoArgument {
			s.optopt = rune(lo.Val)
			res.Opt = s.optopt
			res.Optind = s.optind
			return res, &ParseError{Err: ErrorUnexpectedArgument, Option: longPrefix(option) + lo.Name, Token: token}
		}
		s.optarg, s.hasOptarg = match.Value, true
	} else if lo.HasArg == RequiredArgument {
		if s.optind >= v.Len() {
			s.optopt = rune(lo.Val)
			res.Opt = s.optopt
			res.Optind = s.optind
			if o.Colon {
				res.Code = ':'
			}
			return res, &ParseError{Err: ErrorMissingArgument, Option: longPrefix(option) + lo.Name, Token: token}
		}
		s.optarg, s.hasOptarg = v.At(s.optind), true
		s.optind++
	}

	res.Code = lo.Val
	if lo.Flag != nil {
		*lo.Flag = lo.Val
		res.Code = 0
	}
	res.Index = match.Index
	res.Value, res.HasValue = s.optarg, s.hasOptarg
	res.Optind = s.optind
	Logger.Printf("long option %q (%d), value %q", lo.Name, match.Index, res.Value)
	return res, nil
}

// shortOption - Scans the character at the cluster offset.
func (s *Session) shortOption(v *argv.Vector, o *Optstring, longopts []LongOption, m mode) (Result, error) {
	token := v.At(s.optind)
	c, size := utf8.DecodeRuneInString(token[s.cluster:])
	s.cluster += size
	rest := token[s.cluster:]
	if rest == "" {
		s.optind++
		s.cluster = 0
	}
	s.optopt = c
	res := Result{Code: '?', Index: -1, Opt: c}

	opt, ok := o.Lookup(c)
	if !ok {
		res.Optind = s.optind
		Logger.Printf("unknown short option '%c' in %q", c, token)
		return res, &ParseError{Err: ErrorUnrecognizedOption, Char: c, Token: token}
	}

	if c == 'W' && o.WLong && m != modeShort {
		return s.wOption(rest, token, v, o, longopts)
	}

	switch opt.HasArg {
	case OptionalArgument, RequiredArgument:
		if rest != "" {
			s.optarg, s.hasOptarg = rest, true
			s.optind++
			s.cluster = 0
		} else if opt.HasArg == RequiredArgument {
			if s.optind >= v.Len() {
				res.Optind = s.optind
				if o.Colon {
					res.Code = ':'
				}
				return res, &ParseError{Err: ErrorMissingArgument, Char: c, Token: token}
			}
			s.optarg, s.hasOptarg = v.At(s.optind), true
			s.optind++
		}
	}
	res.Code = int(c)
	res.Value, res.HasValue = s.optarg, s.hasOptarg
	res.Optind = s.optind
	Logger.Printf("short option '%c', value %q", c, res.Value)
	return res, nil
}

// wOption - '-W foo' and '-Wfoo' are processed as '--foo'.
func (s *Session) wOption(rest, token string, v *argv.Vector, o *Optstring, longopts []LongOption) (Result, error) {
	name := rest
	if rest != "" {
		s.optind++
		s.cluster = 0
	} else {
		if s.optind >= v.Len() {
			res := Result{Code: '?', Index: -1, Opt: 'W', Optind: s.optind}
			if o.Colon {
				res.Code = ':'
			}
			return res, &ParseError{Err: ErrorMissingArgument, Char: 'W', Token: token}
		}
		name = v.At(s.optind)
		s.optind++
	}
	match := MatchLong(longopts, name)
	return s.longOption(match, "-W "+match.Name, token, v, o, longopts)
}
