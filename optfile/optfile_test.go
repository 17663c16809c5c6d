// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DavidGamba/go-getopt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const backupTable = `
name    = backup
options = +vo:
args    = -v "my file" --level

[verbose]
argument = none
char     = v

[output]
argument = required
val      = 256

[level]
argument = optional
`

func TestLoad(t *testing.T) {
	table, err := Load([]byte(backupTable))
	require.NoError(t, err)

	assert.Equal(t, "backup", table.Name)
	assert.Equal(t, "+vo:", table.Options)
	assert.Equal(t, []string{"-v", "my file", "--level"}, table.Args)
	assert.Equal(t, []getopt.LongOption{
		{Name: "verbose", HasArg: getopt.NoArgument, Val: 'v'},
		{Name: "output", HasArg: getopt.RequiredArgument, Val: 256},
		{Name: "level", HasArg: getopt.OptionalArgument},
	}, table.Long)
	require.NotNil(t, table.Optstring())
	assert.Equal(t, getopt.RequireOrder, table.Optstring().Ordering)
}

func TestLoadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "table.ini")
	require.NoError(t, os.WriteFile(name, []byte(backupTable), 0o600))

	table, err := Load(name)
	require.NoError(t, err)
	assert.Len(t, table.Long, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}

func TestLoadedTableDrivesTheScanner(t *testing.T) {
	table, err := Load([]byte(backupTable))
	require.NoError(t, err)

	args := append([]string{}, table.Args...)
	s := getopt.NewSession()
	res, err := s.GetoptLong(args, table.Options, table.Long)
	require.NoError(t, err)
	assert.Equal(t, 'v', rune(res.Code))

	res, err = s.GetoptLong(args, table.Options, table.Long)
	assert.ErrorIs(t, err, getopt.ErrorDone)
	assert.Equal(t, 1, res.Optind)
	assert.Equal(t, []string{"my file", "--level"}, s.Operands(args))
}

func TestLoadEmpty(t *testing.T) {
	table, err := Load([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, "", table.Options)
	assert.Empty(t, table.Long)
	assert.Nil(t, table.Args)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad optstring", "options = +-ab\n"},
		{"bad policy", "[add]\nargument = sometimes\n"},
		{"bad char", "[add]\nchar = ab\n"},
		{"empty char", "[add]\nchar =\n"},
		{"bad val", "[add]\nval = x\n"},
		{"char and val", "[add]\nchar = a\nval = 1\n"},
		{"unbalanced quotes", "args = -a \"open\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			assert.ErrorIs(t, err, ErrorInvalidTable)
		})
	}
}
