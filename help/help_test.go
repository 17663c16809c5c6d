// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package help

import (
	"fmt"
	"testing"

	"github.com/DavidGamba/go-getopt"
)

func firstDiff(got, expected string) string {
	same := ""
	for i, gc := range got {
		if len([]rune(expected)) <= i {
			return fmt.Sprintf("Index: %d | diff: got '%s' - exp '%s'\n", len(expected), got, expected)
		}
		if gc != []rune(expected)[i] {
			return fmt.Sprintf("Index: %d | diff: got '%c' - exp '%c'\n%s\n", i, gc, []rune(expected)[i], same)
		}
		same += string(gc)
	}
	if len(expected) > len(got) {
		return fmt.Sprintf("Index: %d | diff: got '%s' - exp '%s'\n", len(got), got, expected)
	}
	return ""
}

func TestHelpName(t *testing.T) {
	got := HelpName("getopt", "parse command options")
	expected := `NAME:
    getopt - parse command options
`
	if got != expected {
		t.Fatalf("Unexpected name:\n%s", firstDiff(got, expected))
	}
	got = HelpName("getopt", "")
	expected = "NAME:\n    getopt\n"
	if got != expected {
		t.Fatalf("Unexpected name:\n%s", firstDiff(got, expected))
	}
}

func TestHelpSynopsis(t *testing.T) {
	o, err := getopt.ParseOptstring("abc:d::0123456789")
	if err != nil {
		t.Fatal(err)
	}
	longopts := []getopt.LongOption{
		{Name: "add", HasArg: getopt.RequiredArgument},
		{Name: "append", HasArg: getopt.NoArgument},
		{Name: "delete", HasArg: getopt.RequiredArgument},
		{Name: "verbose", HasArg: getopt.NoArgument},
		{Name: "create", HasArg: getopt.NoArgument},
		{Name: "file", HasArg: getopt.OptionalArgument},
	}
	got := HelpSynopsis("longopts", o, longopts)
	expected := `SYNOPSIS:
    longopts [-ab0123456789] [-c <arg>] [-d[<arg>]] [--add <arg>] [--append]
             [--delete <arg>] [--verbose] [--create] [--file[=<arg>]] [<args>]
`
	if got != expected {
		t.Fatalf("Unexpected synopsis:\n%s", firstDiff(got, expected))
	}

	got = HelpSynopsis("prog", nil, nil)
	expected = "SYNOPSIS:\n    prog [<args>]\n"
	if got != expected {
		t.Fatalf("Unexpected synopsis:\n%s", firstDiff(got, expected))
	}
}

func TestHelpOptionList(t *testing.T) {
	got := HelpOptionList([]Entry{
		{Short: 'o', Long: "options", HasArg: getopt.RequiredArgument, ArgName: "optstring", Description: "short options to recognize"},
		{Short: 'q', Long: "quiet", Description: "disable error reporting"},
		{Long: "file", HasArg: getopt.OptionalArgument, Description: "two\nlines"},
		{Short: 'd', HasArg: getopt.OptionalArgument},
	})
	expected := `OPTIONS:
    -o, --options <optstring>    short options to recognize
    -q, --quiet                  disable error reporting
    --file[=<arg>]               two
                                 lines
    -d[<arg>]
`
	if got != expected {
		t.Fatalf("Unexpected option list:\n%s", firstDiff(got, expected))
	}
	if HelpOptionList(nil) != "" {
		t.Errorf("empty list should render nothing")
	}
}
