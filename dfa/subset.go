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
	"github.com/db47h/tokenfa/nfa"
)

// FromNFA builds the DFA equivalent to n over alphabet by subset
// construction.
//
// DFA states are the epsilon-closed subsets of n's states reachable from
// the closure of its start state, which becomes state 0. Subsets are explored
// in FIFO order and, for each subset, symbols in alphabet order; new subsets
// are numbered in order of discovery. An empty target subset records no
// transition, so the result may be partial.
//
// The labels of a DFA state are the union of labels[s] for every accept state
// s of its subset. If labels is nil, the name of n is used as the only label.
// Passing the Labels returned by nfa.Combine therefore preserves ambiguity:
// a string matched by several token classes ends in a state carrying all of
// them.
//
func FromNFA(n *nfa.NFA, alphabet Alphabet, labels nfa.Labels) *DFA {
	d := newDFA(n.Name(), NewAlphabet(alphabet...))

	ids := make(map[string]State)
	var queue []nfa.StateSet

	add := func(set nfa.StateSet) State {
		key := set.Key()
		if id, ok := ids[key]; ok {
			return id
		}
		id := d.addState(n.LabelsOf(labels, set))
		ids[key] = id
		queue = append(queue, set)
		return id
	}

	d.start = add(n.EpsilonClosure(nfa.StateSet{n.Start()}))
	for head := 0; head < len(queue); head++ {
		// states are numbered in queue order
		set, src := queue[head], State(head)
		for i, r := range d.alphabet {
			next := n.EpsilonClosure(n.Move(set, r))
			if len(next) == 0 {
				continue
			}
			d.trans[src][i] = add(next)
		}
	}
	return d
}
