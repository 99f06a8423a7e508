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

// Package token provides NFA recipes for the lexical token classes of the
// language: comments, boolean, integer and floating-point literals,
// identifiers, single character operators and punctuators.
//
// Every recipe only uses the nfa builder calls and returns a fresh automaton
// named after its class. Recipes are independent and may run concurrently.
//
package token

import (
	"sort"

	"github.com/db47h/tokenfa/nfa"
)

// Token class names. These are the labels carried by accept states.
//
const (
	SingleLineComment    = "single_line_comment"
	BooleanLiteral       = "boolean_literal"
	Identifier           = "identifier"
	FloatingPointLiteral = "floating_point_literal"
	IntegerLiteral       = "integer_literal"
	SingleCharOperator   = "single_char_operator"
	Punctuator           = "punctuator"
)

// A Class describes a token class.
//
type Class struct {
	Name    string
	Pattern string           // informal regular expression, for documentation only
	Build   func() *nfa.NFA // returns a new automaton on each call
}

var classes = []Class{
	{SingleLineComment, `##[^\n]*`, SingleLineCommentNFA},
	{BooleanLiteral, `(true|false)`, BooleanNFA},
	{Identifier, `[A-Z][a-z0-9_]{0,30}`, IdentifierNFA},
	{FloatingPointLiteral, `[+-]?[0-9]+\.[0-9]{1,6}([eE][+-]?[0-9]+)?`, FloatingPointNFA},
	{IntegerLiteral, `[+-]?[0-9]+`, IntegerNFA},
	{SingleCharOperator, `[+\-*/%<>=!]`, SingleCharOperatorNFA},
	{Punctuator, `[(){}[\],;:]`, PunctuatorNFA},
}

// Classes returns all token classes in default priority order.
//
func Classes() []Class {
	c := make([]Class, len(classes))
	copy(c, classes)
	return c
}

// Lookup returns the class with the given name.
//
func Lookup(name string) (Class, bool) {
	for _, c := range classes {
		if c.Name == name {
			return c, true
		}
	}
	return Class{}, false
}

// Priority returns the default merge order of token classes.
//
func Priority() []string {
	p := make([]string, len(classes))
	for i, c := range classes {
		p[i] = c.Name
	}
	return p
}

// Names returns all class names in lexical order.
//
func Names() []string {
	p := Priority()
	sort.Strings(p)
	return p
}

// BuildAll builds the automata of all classes, keyed by class name.
//
func BuildAll() map[string]*nfa.NFA {
	m := make(map[string]*nfa.NFA, len(classes))
	for _, c := range classes {
		m[c.Name] = c.Build()
	}
	return m
}
