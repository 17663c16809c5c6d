// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package argv - wraps an argument slice to allow bounds checked, in place reordering.
//
// The Vector never allocates new elements nor changes the length of the
// underlying slice, changes are visible to the owner of the slice.
package argv

// Vector - argument vector data
type Vector struct {
	data []string
}

// New - builds a Vector over the given slice.
func New(s []string) *Vector {
	return &Vector{data: s}
}

// Len - returns Vector size
func (v *Vector) Len() int {
	return len(v.data)
}

// At - returns the value at index i or an empty string if i is out of range.
func (v *Vector) At(i int) string {
	if i < 0 || i >= len(v.data) {
		return ""
	}
	return v.data[i]
}

// Valid - Tells if i indexes an element.
func (v *Vector) Valid(i int) bool {
	return i >= 0 && i < len(v.data)
}

// Remaining - Get all values from index i inclusive.
func (v *Vector) Remaining(i int) []string {
	if i < 0 {
		i = 0
	}
	if i >= len(v.data) {
		return []string{}
	}
	return v.data[i:]
}

// Rotate - Rotates the range [first, last) so the element at middle becomes
// the element at first. The relative order inside [first, middle) and inside
// [middle, last) is preserved.
//
// It returns false and leaves the Vector untouched when the indexes are not
// ordered as 0 <= first <= middle <= last <= Len().
func (v *Vector) Rotate(first, middle, last int) bool {
	if first < 0 || first > middle || middle > last || last > len(v.data) {
		return false
	}
	if first == middle || middle == last {
		return true
	}
	v.reverse(first, middle)
	v.reverse(middle, last)
	v.reverse(first, last)
	return true
}

func (v *Vector) reverse(i, j int) {
	for j--; i < j; i, j = i+1, j-1 {
		v.data[i], v.data[j] = v.data[j], v.data[i]
	}
}
