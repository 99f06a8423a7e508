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
	"fmt"
	"sort"
)

// Labels maps accept states of a combined automaton to the token labels they
// represent, in merge order.
//
type Labels map[State][]string

// Combine merges subs into a single NFA named name. A fresh start state fans
// out through epsilon transitions to a renumbered copy of every sub-automaton,
// taken in priority order. Only labels listed in priority are merged; if
// priority is empty, all of subs are merged in sorted label order.
//
// The returned Labels holds, for every accept state of the result, the
// labels of the sub-automata whose accept state it is a copy of.
//
// Combine panics if priority names a label absent from subs.
//
func Combine(name string, subs map[string]*NFA, priority []string) (*NFA, Labels) {
	order := priority
	if len(order) == 0 {
		order = make([]string, 0, len(subs))
		for k := range subs {
			order = append(order, k)
		}
		sort.Strings(order)
	}

	c := New(name)
	labels := make(Labels)
	for _, label := range order {
		sub, ok := subs[label]
		if !ok || sub == nil {
			panic(fmt.Errorf("nfa %s: no automaton for label %q", name, label))
		}
		remap := make([]State, sub.NumStates())
		for i := range remap {
			remap[i] = c.NewState()
		}
		c.AddEpsilon(c.start, remap[sub.start])
		for _, ts := range sub.trans {
			for _, t := range ts {
				src, dst := remap[t.Src], remap[t.Dst]
				if t.IsEpsilon() {
					c.AddEpsilon(src, dst)
				} else {
					c.AddTransition(src, dst, t.Label, t.Match)
				}
			}
		}
		for _, acc := range sub.AcceptStates() {
			s := remap[acc]
			c.SetAccept(s)
			labels[s] = append(labels[s], label)
		}
	}
	return c, labels
}

// LabelsOf returns the sorted union of token labels represented by the
// accept states in states. If labels is nil, any accept state yields the
// automaton name.
//
func (n *NFA) LabelsOf(labels Labels, states StateSet) []string {
	var out []string
	for _, s := range states {
		if !n.IsAccept(s) {
			continue
		}
		if labels == nil {
			out = append(out, n.name)
			continue
		}
		out = append(out, labels[s]...)
	}
	return normLabels(out)
}

// AcceptedTokens returns the token labels n accepts text as. The result is
// empty if text is rejected. See LabelsOf for the meaning of labels.
//
func (n *NFA) AcceptedTokens(labels Labels, text string) []string {
	return n.LabelsOf(labels, n.run(text))
}

func normLabels(l []string) []string {
	if len(l) == 0 {
		return []string{}
	}
	sort.Strings(l)
	j := 1
	for i := 1; i < len(l); i++ {
		if l[i] != l[j-1] {
			l[j] = l[i]
			j++
		}
	}
	return l[:j]
}
