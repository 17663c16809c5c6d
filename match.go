// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"strings"
)

// MatchKind - Outcome of a long option lookup.
type MatchKind int

// Match kinds
const (
	NotFound MatchKind = iota
	Exact
	UniquePrefix
	Ambiguous
)

func (k MatchKind) String() string {
	switch k {
	case NotFound:
		return "not-found"
	case Exact:
		return "exact"
	case UniquePrefix:
		return "unique-prefix"
	case Ambiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Match - Result of MatchLong.
type Match struct {
	Kind MatchKind
	// Index into the long option table, -1 unless Kind is Exact or UniquePrefix.
	Index int
	// Name is the name part of the token, before the first '='.
	Name string
	// Value is the inline argument after the first '='.
	Value    string
	HasValue bool
	// Candidates holds the table indexes sharing the prefix when Kind is Ambiguous.
	Candidates []int
}

/*
MatchLong - Given a long option token, without its leading dashes, finds the
matching entry in the table.

The token is split on its first '=' into a name and an inline value.
An entry whose name equals the name wins outright, even when longer names
share it as a prefix. Otherwise every entry starting with the name is a
candidate: a single candidate is a unique abbreviation, more than one is
ambiguous. Entries repeating an already seen name don't count as a new
candidate.
*/
func MatchLong(longopts []LongOption, token string) Match {
	name, value, hasValue := strings.Cut(token, "=")
	m := Match{Kind: NotFound, Index: -1, Name: name, Value: value, HasValue: hasValue}

	for i, lo := range longopts {
		if lo.Name == "" {
			continue
		}
		if lo.Name == name {
			Logger.Printf("MatchLong exact: %q -> %d", name, i)
			m.Kind = Exact
			m.Index = i
			return m
		}
	}

	seen := map[string]bool{}
	for i, lo := range longopts {
		if lo.Name == "" || seen[lo.Name] {
			continue
		}
		if strings.HasPrefix(lo.Name, name) {
			seen[lo.Name] = true
			m.Candidates = append(m.Candidates, i)
		}
	}
	Logger.Printf("MatchLong prefix: %q -> %v", name, m.Candidates)
	switch len(m.Candidates) {
	case 0:
	case 1:
		m.Kind = UniquePrefix
		m.Index = m.Candidates[0]
		m.Candidates = nil
	default:
		m.Kind = Ambiguous
	}
	return m
}

// candidateNames - Returns the names of the ambiguous candidates in table order.
func (m Match) candidateNames(longopts []LongOption) []string {
	names := []string{}
	for _, i := range m.Candidates {
		names = append(names, longopts[i].Name)
	}
	return names
}
