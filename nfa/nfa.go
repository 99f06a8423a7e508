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

// Package nfa implements nondeterministic finite automata over runes.
//
// An NFA is built once through New, NewState, AddTransition, AddEpsilon and
// SetAccept, then only queried. States are small integers allocated in
// sequence from 0, state 0 being the start state. Transitions are stored per
// source state in insertion order.
//
// Combine merges several labeled automata into one via epsilon fan-out and
// returns, for every accept state of the result, the token labels it stands
// for.
//
package nfa

import (
	"errors"
	"fmt"
)

// Common errors. These are used as panic values for precondition violations.
var (
	ErrState     = errors.New("state not allocated")
	ErrPredicate = errors.New("malformed predicate")
)

// EpsilonLabel is the diagnostic label of epsilon transitions.
//
const EpsilonLabel = "λ"

// A State identifies a state within one automaton.
//
type State int

// A Transition is an edge between two states. Match is the epsilon predicate
// for unconditional transitions.
//
type Transition struct {
	Src   State
	Dst   State
	Label string
	Match Predicate
}

// IsEpsilon returns true if t consumes no input.
//
func (t Transition) IsEpsilon() bool {
	return t.Match.IsEpsilon()
}

// A Row is a flattened transition, as used by transition tables.
//
type Row struct {
	Src   State
	Label string
	Dst   State
}

// NFA is a nondeterministic finite automaton.
//
type NFA struct {
	name   string
	start  State
	accept []bool
	trans  [][]Transition
}

// New returns a new NFA with the given name. The start state is allocated.
//
func New(name string) *NFA {
	n := &NFA{name: name}
	n.start = n.NewState()
	return n
}

// Name returns the automaton name.
//
func (n *NFA) Name() string {
	return n.name
}

// Start returns the start state.
//
func (n *NFA) Start() State {
	return n.start
}

// NewState allocates a new state.
//
func (n *NFA) NewState() State {
	s := State(len(n.trans))
	n.trans = append(n.trans, nil)
	n.accept = append(n.accept, false)
	return s
}

// NumStates returns the number of allocated states.
//
func (n *NFA) NumStates() int {
	return len(n.trans)
}

// AllStates returns every allocated state in ascending order, including
// states without transitions.
//
func (n *NFA) AllStates() []State {
	s := make([]State, len(n.trans))
	for i := range s {
		s[i] = State(i)
	}
	return s
}

func (n *NFA) check(states ...State) {
	for _, s := range states {
		if s < 0 || int(s) >= len(n.trans) {
			panic(fmt.Errorf("nfa %s: %w: %d", n.name, ErrState, s))
		}
	}
}

// AddTransition adds a transition from src to dst that consumes one symbol
// accepted by p. It panics if either state was not allocated or if p is
// malformed.
//
func (n *NFA) AddTransition(src, dst State, label string, p Predicate) {
	n.check(src, dst)
	if !p.valid() {
		panic(fmt.Errorf("nfa %s: %w on %d -> %d (%q)", n.name, ErrPredicate, src, dst, label))
	}
	n.trans[src] = append(n.trans[src], Transition{src, dst, label, p})
}

// AddEpsilon adds an unconditional transition from src to dst.
//
func (n *NFA) AddEpsilon(src, dst State) {
	n.check(src, dst)
	n.trans[src] = append(n.trans[src], Transition{src, dst, EpsilonLabel, epsilon})
}

// SetAccept marks the given states as accepting.
//
func (n *NFA) SetAccept(states ...State) {
	n.check(states...)
	for _, s := range states {
		n.accept[s] = true
	}
}

// IsAccept returns true if s is an accept state.
//
func (n *NFA) IsAccept(s State) bool {
	return s >= 0 && int(s) < len(n.accept) && n.accept[s]
}

// AcceptStates returns the accept states in ascending order.
//
func (n *NFA) AcceptStates() StateSet {
	var s StateSet
	for i, a := range n.accept {
		if a {
			s = append(s, State(i))
		}
	}
	return s
}

// Transitions returns a copy of the transitions leaving s, in insertion order.
//
func (n *NFA) Transitions(s State) []Transition {
	n.check(s)
	t := make([]Transition, len(n.trans[s]))
	copy(t, n.trans[s])
	return t
}

// TransitionRows returns all transitions ordered by source state then
// insertion order.
//
func (n *NFA) TransitionRows() []Row {
	var rows []Row
	for _, ts := range n.trans {
		for _, t := range ts {
			rows = append(rows, Row{t.Src, t.Label, t.Dst})
		}
	}
	return rows
}

// EpsilonClosure returns the set of states reachable from states through
// epsilon transitions only, states included.
//
func (n *NFA) EpsilonClosure(states StateSet) StateSet {
	n.check(states...)
	marks := make([]bool, len(n.trans))
	closure := make([]State, 0, len(states))
	stack := make([]State, 0, len(states))
	for _, s := range states {
		if !marks[s] {
			marks[s] = true
			closure = append(closure, s)
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.trans[s] {
			if t.IsEpsilon() && !marks[t.Dst] {
				marks[t.Dst] = true
				closure = append(closure, t.Dst)
				stack = append(stack, t.Dst)
			}
		}
	}
	return sorted(closure)
}

// Move returns the states reachable from states by a single transition
// accepting r. Epsilon transitions are not followed.
//
func (n *NFA) Move(states StateSet, r rune) StateSet {
	n.check(states...)
	marks := make([]bool, len(n.trans))
	var out []State
	for _, s := range states {
		for _, t := range n.trans[s] {
			if !t.IsEpsilon() && !marks[t.Dst] && t.Match.Match(r) {
				marks[t.Dst] = true
				out = append(out, t.Dst)
			}
		}
	}
	return sorted(out)
}

// run simulates n on text and returns the final configuration, or nil as soon
// as the configuration becomes empty.
func (n *NFA) run(text string) StateSet {
	cur := n.EpsilonClosure(StateSet{n.start})
	for _, r := range text {
		cur = n.EpsilonClosure(n.Move(cur, r))
		if len(cur) == 0 {
			return nil
		}
	}
	return cur
}

// Accepts returns true if n accepts the whole of text.
//
func (n *NFA) Accepts(text string) bool {
	for _, s := range n.run(text) {
		if n.accept[s] {
			return true
		}
	}
	return false
}
