// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package optfile - loads getopt option tables from INI files.

The default section holds the program name, the optstring and optional
default arguments split with shell rules. Every other section declares a long
option, in file order:

	name    = backup
	options = +vo:
	args    = -v "my file"

	[verbose]
	argument = none
	char     = v

	[output]
	argument = required
	val      = 256

	[level]
	argument = optional

`argument` is one of none, required or optional and defaults to none.
The code reported for the option is `char` as a character or `val` as a
number, 0 when neither is given.
*/
package optfile

import (
	"errors"
	"fmt"
	"io"
	"log"
	"unicode/utf8"

	"github.com/DavidGamba/go-getopt"
	"github.com/go-ini/ini"
	"github.com/google/shlex"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// ErrorInvalidTable - Indicates the file doesn't describe a valid option table.
var ErrorInvalidTable = errors.New("invalid option table")

// Table - Option table loaded from a file.
type Table struct {
	Name    string
	Options string
	Long    []getopt.LongOption
	Args    []string
	optstr  *getopt.Optstring
}

// Optstring - The parsed optstring.
func (t *Table) Optstring() *getopt.Optstring {
	return t.optstr
}

// Load - Loads a table from a file name, []byte or io.ReadCloser,
// anything ini.Load accepts.
func Load(source interface{}) (*Table, error) {
	f, err := ini.Load(source)
	if err != nil {
		return nil, fmt.Errorf("failed to load option table: %w", err)
	}
	return parse(f)
}

func parse(f *ini.File) (*Table, error) {
	t := &Table{}

	def := f.Section(ini.DefaultSection)
	t.Name = def.Key("name").String()
	t.Options = def.Key("options").String()
	optstr, err := getopt.ParseOptstring(t.Options)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrorInvalidTable, err)
	}
	t.optstr = optstr
	if def.HasKey("args") {
		t.Args, err = shlex.Split(def.Key("args").String())
		if err != nil {
			return nil, fmt.Errorf("%w: args: %s", ErrorInvalidTable, err)
		}
	}

	t.Long = []getopt.LongOption{}
	for _, section := range f.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			continue
		}
		lo := getopt.LongOption{Name: name}
		switch policy := section.Key("argument").MustString("none"); policy {
		case "none", "no":
			lo.HasArg = getopt.NoArgument
		case "required":
			lo.HasArg = getopt.RequiredArgument
		case "optional":
			lo.HasArg = getopt.OptionalArgument
		default:
			return nil, fmt.Errorf("%w: [%s]: unknown argument policy '%s'", ErrorInvalidTable, name, policy)
		}
		if section.HasKey("char") {
			c := section.Key("char").String()
			r, size := utf8.DecodeRuneInString(c)
			if r == utf8.RuneError || size != len(c) {
				return nil, fmt.Errorf("%w: [%s]: char must be a single character, got '%s'", ErrorInvalidTable, name, c)
			}
			lo.Val = int(r)
		}
		if section.HasKey("val") {
			if section.HasKey("char") {
				return nil, fmt.Errorf("%w: [%s]: char and val are mutually exclusive", ErrorInvalidTable, name)
			}
			v, err := section.Key("val").Int()
			if err != nil {
				return nil, fmt.Errorf("%w: [%s]: val: %s", ErrorInvalidTable, name, err)
			}
			lo.Val = v
		}
		Logger.Printf("long option %s: %s, val %d", lo.Name, lo.HasArg, lo.Val)
		t.Long = append(t.Long, lo)
	}
	return t, nil
}
