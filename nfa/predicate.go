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
	"strings"
)

type predKind uint8

const (
	predInvalid predKind = iota
	predEpsilon
	predExact
	predOneOf
	predDigit
	predUpper
	predIdentTail
	predNotNewline
	predFunc
)

// A Predicate is the symbol test carried by a transition. The zero value is
// malformed and rejected by AddTransition.
//
// Predicates are built from a small closed set of symbol classes. Func covers
// anything else.
//
type Predicate struct {
	kind predKind
	r    rune
	set  string
	fn   func(rune) bool
}

// epsilon is the predicate of unconditional transitions. It never consumes a
// symbol.
var epsilon = Predicate{kind: predEpsilon}

// Exact matches the single rune r.
//
func Exact(r rune) Predicate {
	return Predicate{kind: predExact, r: r}
}

// OneOf matches any rune in chars. An empty set is malformed.
//
func OneOf(chars string) Predicate {
	if chars == "" {
		return Predicate{}
	}
	return Predicate{kind: predOneOf, set: chars}
}

// Digit matches [0-9].
//
func Digit() Predicate { return Predicate{kind: predDigit} }

// Upper matches [A-Z].
//
func Upper() Predicate { return Predicate{kind: predUpper} }

// IdentTail matches [a-z0-9_].
//
func IdentTail() Predicate { return Predicate{kind: predIdentTail} }

// NotNewline matches any rune but '\n'.
//
func NotNewline() Predicate { return Predicate{kind: predNotNewline} }

// Func wraps an arbitrary test. A nil f yields a malformed predicate.
//
func Func(f func(rune) bool) Predicate {
	if f == nil {
		return Predicate{}
	}
	return Predicate{kind: predFunc, fn: f}
}

// IsEpsilon returns true for the predicate of epsilon transitions.
//
func (p Predicate) IsEpsilon() bool {
	return p.kind == predEpsilon
}

// valid reports whether p can be used on a symbol-consuming transition.
func (p Predicate) valid() bool {
	switch p.kind {
	case predInvalid, predEpsilon:
		return false
	case predOneOf:
		return p.set != ""
	case predFunc:
		return p.fn != nil
	}
	return true
}

// Match returns true if p accepts r. Epsilon and malformed predicates never
// match.
//
func (p Predicate) Match(r rune) bool {
	switch p.kind {
	case predExact:
		return r == p.r
	case predOneOf:
		return strings.ContainsRune(p.set, r)
	case predDigit:
		return r >= '0' && r <= '9'
	case predUpper:
		return r >= 'A' && r <= 'Z'
	case predIdentTail:
		return r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_'
	case predNotNewline:
		return r != '\n'
	case predFunc:
		return p.fn(r)
	}
	return false
}
