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

package dfa

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// An Alphabet is an ordered sequence of distinct input symbols. The order
// drives state numbering in FromNFA and Minimize.
//
type Alphabet []rune

// NewAlphabet returns an alphabet made of the given symbols in order of first
// appearance. Duplicates are dropped.
//
func NewAlphabet(symbols ...rune) Alphabet {
	seen := make(map[rune]bool, len(symbols))
	a := make(Alphabet, 0, len(symbols))
	for _, r := range symbols {
		if !seen[r] {
			seen[r] = true
			a = append(a, r)
		}
	}
	return a
}

// AlphabetFromTable returns the alphabet of all runes in rt, in ascending
// order.
//
func AlphabetFromTable(rt *unicode.RangeTable) Alphabet {
	var a Alphabet
	rangetable.Visit(rt, func(r rune) {
		a = append(a, r)
	})
	return a
}

var printable = rangetable.Merge(
	rangetable.New('\t', '\n'),
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x20, Hi: 0x7e, Stride: 1}}},
)

// PrintableASCII returns the alphabet of tab, newline and all printable ASCII
// characters (U+0020 to U+007E).
//
func PrintableASCII() Alphabet {
	return AlphabetFromTable(printable)
}

// Index returns the position of r in a, or -1.
//
func (a Alphabet) Index(r rune) int {
	for i, s := range a {
		if s == r {
			return i
		}
	}
	return -1
}

// Contains returns true if r is a symbol of a.
//
func (a Alphabet) Contains(r rune) bool {
	return a.Index(r) >= 0
}

func (a Alphabet) String() string {
	var b strings.Builder
	for _, r := range a {
		b.WriteRune(r)
	}
	return b.String()
}

// index maps symbols to their position.
func (a Alphabet) index() map[rune]int {
	m := make(map[rune]int, len(a))
	for i, r := range a {
		m[r] = i
	}
	return m
}
