// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the test failed.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	return func() {
		if t.Failed() && len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// step - The comparable part of one scan step.
type step struct {
	Code     int
	Value    string
	HasValue bool
	Index    int
	Err      error
}

func (s step) String() string {
	return fmt.Sprintf("{code: %q(%d), value: %q(%v), index: %d, err: %v}", rune(s.Code), s.Code, s.Value, s.HasValue, s.Index, s.Err)
}

type scanFn func(s *Session, args []string) (Result, error)

func longScan(optstring string, longopts []LongOption) scanFn {
	return func(s *Session, args []string) (Result, error) {
		return s.GetoptLong(args, optstring, longopts)
	}
}

func longOnlyScan(optstring string, longopts []LongOption) scanFn {
	return func(s *Session, args []string) (Result, error) {
		return s.GetoptLongOnly(args, optstring, longopts)
	}
}

func shortScan(optstring string) scanFn {
	return func(s *Session, args []string) (Result, error) {
		return s.Getopt(args, optstring)
	}
}

// drain - Runs the scan until ErrorDone and returns the steps before it and the
// operand start index.
func drain(t *testing.T, s *Session, args []string, fn scanFn) ([]step, int) {
	t.Helper()
	steps := []step{}
	for i := 0; i <= 2*len(args)+2; i++ {
		res, err := fn(s, args)
		if errors.Is(err, ErrorDone) {
			if res.Optind != s.Optind() {
				t.Errorf("done Optind %d != session Optind %d", res.Optind, s.Optind())
			}
			return steps, res.Optind
		}
		st := step{Code: res.Code, Value: res.Value, HasValue: res.HasValue, Index: res.Index}
		if err != nil {
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("unexpected error type: %#v", err)
			}
			st.Err = perr.Err
		}
		steps = append(steps, st)
	}
	t.Fatalf("scan didn't finish: %v", steps)
	return steps, -1
}
