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

package token

import (
	"github.com/db47h/tokenfa/nfa"
)

const (
	punctuators = "(){}[],;:"
	operators   = "+-*/%<>=!"
	signs       = "+-"
	// maximum number of fraction digits in a floating-point literal
	maxFraction = 6
	// maximum identifier length
	maxIdentifier = 31
)

// addLiteralPath adds a chain of exact-rune transitions spelling literal from
// src and returns the last state.
//
func addLiteralPath(n *nfa.NFA, src nfa.State, literal string) nfa.State {
	cur := src
	for _, r := range literal {
		nxt := n.NewState()
		n.AddTransition(cur, nxt, string(r), nfa.Exact(r))
		cur = nxt
	}
	return cur
}

// SingleLineCommentNFA recognizes ##[^\n]*
//
func SingleLineCommentNFA() *nfa.NFA {
	n := nfa.New(SingleLineComment)
	s0 := n.Start()
	s1 := n.NewState()
	s2 := n.NewState()
	n.AddTransition(s0, s1, "#", nfa.Exact('#'))
	n.AddTransition(s1, s2, "#", nfa.Exact('#'))
	n.AddTransition(s2, s2, `[^\n]`, nfa.NotNewline())
	n.SetAccept(s2)
	return n
}

// BooleanNFA recognizes (true|false)
//
func BooleanNFA() *nfa.NFA {
	n := nfa.New(BooleanLiteral)
	s0 := n.Start()
	t := n.NewState()
	f := n.NewState()
	n.AddEpsilon(s0, t)
	n.AddEpsilon(s0, f)
	n.SetAccept(addLiteralPath(n, t, "true"), addLiteralPath(n, f, "false"))
	return n
}

// IdentifierNFA recognizes [A-Z][a-z0-9_]{0,30}
//
func IdentifierNFA() *nfa.NFA {
	n := nfa.New(Identifier)
	prev := n.NewState()
	n.AddTransition(n.Start(), prev, "[A-Z]", nfa.Upper())
	n.SetAccept(prev)
	for i := 1; i < maxIdentifier; i++ {
		nxt := n.NewState()
		n.AddTransition(prev, nxt, "[a-z0-9_]", nfa.IdentTail())
		n.SetAccept(nxt)
		prev = nxt
	}
	return n
}

// FloatingPointNFA recognizes [+-]?[0-9]+\.[0-9]{1,6}([eE][+-]?[0-9]+)?
//
func FloatingPointNFA() *nfa.NFA {
	n := nfa.New(FloatingPointLiteral)
	s0 := n.Start()
	sign := n.NewState()
	digits := n.NewState()
	dot := n.NewState()
	n.AddTransition(s0, sign, "[+-]", nfa.OneOf(signs))
	n.AddTransition(s0, digits, "[0-9]", nfa.Digit())
	n.AddTransition(sign, digits, "[0-9]", nfa.Digit())
	n.AddTransition(digits, digits, "[0-9]", nfa.Digit())
	n.AddTransition(digits, dot, ".", nfa.Exact('.'))

	frac := make([]nfa.State, 0, maxFraction)
	prev := dot
	for i := 0; i < maxFraction; i++ {
		st := n.NewState()
		n.AddTransition(prev, st, "[0-9]", nfa.Digit())
		frac = append(frac, st)
		prev = st
	}
	n.SetAccept(frac...)

	// optional exponent after any fraction length
	mark := n.NewState()
	expSign := n.NewState()
	expDigits := n.NewState()
	for _, st := range frac {
		n.AddTransition(st, mark, "[eE]", nfa.OneOf("eE"))
	}
	n.AddTransition(mark, expSign, "[+-]", nfa.OneOf(signs))
	n.AddTransition(mark, expDigits, "[0-9]", nfa.Digit())
	n.AddTransition(expSign, expDigits, "[0-9]", nfa.Digit())
	n.AddTransition(expDigits, expDigits, "[0-9]", nfa.Digit())
	n.SetAccept(expDigits)
	return n
}

// IntegerNFA recognizes [+-]?[0-9]+
//
func IntegerNFA() *nfa.NFA {
	n := nfa.New(IntegerLiteral)
	s0 := n.Start()
	sign := n.NewState()
	digits := n.NewState()
	n.AddTransition(s0, sign, "[+-]", nfa.OneOf(signs))
	n.AddTransition(s0, digits, "[0-9]", nfa.Digit())
	n.AddTransition(sign, digits, "[0-9]", nfa.Digit())
	n.AddTransition(digits, digits, "[0-9]", nfa.Digit())
	n.SetAccept(digits)
	return n
}

// SingleCharOperatorNFA recognizes [+\-*/%<>=!]
//
func SingleCharOperatorNFA() *nfa.NFA {
	n := nfa.New(SingleCharOperator)
	s1 := n.NewState()
	n.AddTransition(n.Start(), s1, `[+\-*/%<>=!]`, nfa.OneOf(operators))
	n.SetAccept(s1)
	return n
}

// PunctuatorNFA recognizes [(){}[\],;:]
//
func PunctuatorNFA() *nfa.NFA {
	n := nfa.New(Punctuator)
	s1 := n.NewState()
	n.AddTransition(n.Start(), s1, "[(){}[],;:]", nfa.OneOf(punctuators))
	n.SetAccept(s1)
	return n
}
