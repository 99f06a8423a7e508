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

// Package dfa implements deterministic finite automata with labeled accept
// states, their construction from an nfa.NFA by subset construction, and
// their minimization by partition refinement.
//
// A DFA works over an explicit Alphabet. Symbols outside the alphabet, as well
// as missing transitions, make the automaton reject. A state accepts iff it
// carries at least one token label.
//
package dfa

import (
	"errors"
	"sort"
	"strings"
)

// ErrEmptyAlphabet is the panic value of Minimize when called on a DFA with
// an empty alphabet.
var ErrEmptyAlphabet = errors.New("empty alphabet")

// A State identifies a state within one DFA.
//
type State int

// None is the target of missing transitions.
//
const None State = -1

// A Row is a transition table entry. Label is the symbol, or a compact
// character class for grouped rows.
//
type Row struct {
	Src   State
	Label string
	Dst   State
}

// DFA is a deterministic finite automaton. It is never modified once returned
// by this package.
//
type DFA struct {
	name     string
	alphabet Alphabet
	index    map[rune]int
	start    State
	trans    [][]State  // trans[state][symbol index]
	labels   [][]string // sorted, empty for non-accepting states
}

func newDFA(name string, alphabet Alphabet) *DFA {
	a := make(Alphabet, len(alphabet))
	copy(a, alphabet)
	return &DFA{
		name:     name,
		alphabet: a,
		index:    a.index(),
	}
}

// addState appends a state with no transitions and returns its id.
func (d *DFA) addState(labels []string) State {
	row := make([]State, len(d.alphabet))
	for i := range row {
		row[i] = None
	}
	d.trans = append(d.trans, row)
	d.labels = append(d.labels, labels)
	return State(len(d.trans) - 1)
}

// Name returns the automaton name.
//
func (d *DFA) Name() string {
	return d.name
}

// Start returns the start state.
//
func (d *DFA) Start() State {
	return d.start
}

// Alphabet returns a copy of the input alphabet.
//
func (d *DFA) Alphabet() Alphabet {
	a := make(Alphabet, len(d.alphabet))
	copy(a, d.alphabet)
	return a
}

// NumStates returns the number of states.
//
func (d *DFA) NumStates() int {
	return len(d.trans)
}

// AllStates returns every state in ascending order.
//
func (d *DFA) AllStates() []State {
	s := make([]State, len(d.trans))
	for i := range s {
		s[i] = State(i)
	}
	return s
}

// Next returns the target of the transition from s on r. The boolean result
// is false if r is not in the alphabet or if there is no such transition.
//
func (d *DFA) Next(s State, r rune) (State, bool) {
	i, ok := d.index[r]
	if !ok || s < 0 || int(s) >= len(d.trans) {
		return None, false
	}
	t := d.trans[s][i]
	return t, t != None
}

// IsAccept returns true if s is an accept state.
//
func (d *DFA) IsAccept(s State) bool {
	return s >= 0 && int(s) < len(d.labels) && len(d.labels[s]) > 0
}

// Labels returns a copy of the sorted token labels of s. The result is empty
// for non-accepting states.
//
func (d *DFA) Labels(s State) []string {
	if !d.IsAccept(s) {
		return []string{}
	}
	l := make([]string, len(d.labels[s]))
	copy(l, d.labels[s])
	return l
}

// AcceptStates returns the accept states in ascending order.
//
func (d *DFA) AcceptStates() []State {
	var a []State
	for i := range d.labels {
		if len(d.labels[i]) > 0 {
			a = append(a, State(i))
		}
	}
	return a
}

// IsComplete returns true if every state has a transition on every symbol.
//
func (d *DFA) IsComplete() bool {
	for _, row := range d.trans {
		for _, t := range row {
			if t == None {
				return false
			}
		}
	}
	return true
}

// walk runs d on text and returns the final state or None.
func (d *DFA) walk(text string) State {
	s := d.start
	for _, r := range text {
		i, ok := d.index[r]
		if !ok {
			return None
		}
		if s = d.trans[s][i]; s == None {
			return None
		}
	}
	return s
}

// Accepts returns true if d accepts the whole of text.
//
func (d *DFA) Accepts(text string) bool {
	return d.IsAccept(d.walk(text))
}

// AcceptedTokens returns the token labels d accepts text as, or an empty set
// if text is rejected.
//
func (d *DFA) AcceptedTokens(text string) []string {
	return d.Labels(d.walk(text))
}

// TransitionRows returns the transition table. If grouped is false, there is
// one row per defined (state, symbol) pair, in state then alphabet order.
// Otherwise, transitions sharing source and target are folded into a single
// row labeled with a character class, in order of first appearance.
//
func (d *DFA) TransitionRows(grouped bool) []Row {
	var rows []Row
	for s, row := range d.trans {
		if !grouped {
			for i, t := range row {
				if t != None {
					rows = append(rows, Row{State(s), symbolLabel(d.alphabet[i]), t})
				}
			}
			continue
		}
		var targets []State
		syms := make(map[State][]rune)
		for i, t := range row {
			if t == None {
				continue
			}
			if _, ok := syms[t]; !ok {
				targets = append(targets, t)
			}
			syms[t] = append(syms[t], d.alphabet[i])
		}
		for _, t := range targets {
			rows = append(rows, Row{State(s), charClass(syms[t]), t})
		}
	}
	return rows
}

// charClass renders symbols as a single symbol or a bracketed class with
// ranges folded, e.g. "[0-9a-f]".
func charClass(syms []rune) string {
	if len(syms) == 1 {
		return symbolLabel(syms[0])
	}
	rs := make([]rune, len(syms))
	copy(rs, syms)
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < len(rs); {
		j := i
		for j+1 < len(rs) && rs[j+1] == rs[j]+1 {
			j++
		}
		writeClassRune(&b, rs[i])
		if j-i >= 2 {
			b.WriteByte('-')
		}
		if j > i {
			writeClassRune(&b, rs[j])
		}
		i = j + 1
	}
	b.WriteByte(']')
	return b.String()
}

func writeClassRune(b *strings.Builder, r rune) {
	switch r {
	case '\\', ']', '[', '-', '^':
		b.WriteByte('\\')
		b.WriteRune(r)
	default:
		b.WriteString(symbolLabel(r))
	}
}

// symbolLabel spells out control characters.
func symbolLabel(r rune) string {
	switch r {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	}
	return string(r)
}
