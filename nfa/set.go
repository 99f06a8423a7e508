// Copyright 2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package nfa

import (
	"sort"
	"strconv"
	"strings"
)

// A StateSet is a sorted set of states without duplicates. Sets returned by
// this package are always normalized; use NewStateSet to build one from
// arbitrary states.
//
type StateSet []State

// NewStateSet returns the normalized set of the given states.
//
func NewStateSet(states ...State) StateSet {
	if len(states) == 0 {
		return nil
	}
	s := make(StateSet, len(states))
	copy(s, states)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	n := 1
	for i := 1; i < len(s); i++ {
		if s[i] != s[n-1] {
			s[n] = s[i]
			n++
		}
	}
	return s[:n]
}

// Contains returns true if st is a member of s.
//
func (s StateSet) Contains(st State) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= st })
	return i < len(s) && s[i] == st
}

// Key returns a string uniquely identifying the contents of s. Two normalized
// sets have the same key iff they hold the same states.
//
func (s StateSet) Key() string {
	var b strings.Builder
	for i, st := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(st)))
	}
	return b.String()
}

// sorted normalizes a slice of distinct states in place.
func sorted(states []State) StateSet {
	if len(states) == 0 {
		return nil
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return StateSet(states)
}
