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

/*
Package tokenfa builds finite automata recognizing the lexical token classes of
a small language and turns them into minimal deterministic automata.

Each token class (comments, boolean, integer and floating-point literals,
identifiers, single character operators and punctuators) is described by a
hand-built nondeterministic automaton with ε-transitions (see package token).
The pipeline then runs:

	NFA -> subset construction -> DFA -> minimization -> minimal DFA

for every class, and once more for the combined automaton: a fresh start state
with ε-transitions to copies of every class automaton, whose accept states carry
the name of the class they belong to.

	res, err := tokenfa.Build()
	if err != nil {
		// configuration error
	}
	res.Combined.AcceptedTokens("Count_2") // ["identifier"]

Alphabet

Transitions of NFAs are predicates over runes. Since the DFA needs an explicit
symbol set, subset construction runs over a finite alphabet given with
WithAlphabet, by default the printable ASCII characters plus tab and newline.
Symbols outside the alphabet are rejected by every DFA built from it, even if
the NFA would accept them.

Labels

A DFA state accepts if any NFA state of its subset accepts. Its labels are the
sorted set union of the labels of those NFA states. Labels are kept distinct
through minimization: two states carrying different label sets are never
merged. Priority only orders the class automata in the combined NFA; it never
drops a label from a state, so ambiguous inputs yield every matching class.

Errors

Malformed automata (dangling states, invalid predicates) are programming errors
and cause the nfa and dfa packages to panic. Build validates its configuration
and returns ErrEmptyAlphabet, ErrNoClass, ErrUnknownClass or ErrDuplicateClass
before building anything.

Sub-packages

Package nfa implements the automaton model, ε-closure, move and the combinator.
Package dfa implements subset construction and minimization. Package render
writes automata as Graphviz DOT graphs and text transition tables. The
cmd/tokenfa command wraps all of it.

*/
package tokenfa
