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

package render

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/db47h/tokenfa/dfa"
	"github.com/db47h/tokenfa/nfa"
)

// NFATable writes the transition table of n. If labels is not nil, the
// priority order and the token labels of every accept state are listed
// before the transitions, as for a combined automaton.
//
// Rows are written in source state then insertion order:
//
//	q0 --[+-]--> q1
//
func NFATable(w io.Writer, n *nfa.NFA, labels nfa.Labels, priority []string) error {
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "NFA: %s\n", n.Name())
	fmt.Fprintf(b, "Start state: %d\n", n.Start())
	acc := n.AcceptStates()
	as := make([]int, len(acc))
	for i, s := range acc {
		as[i] = int(s)
	}
	fmt.Fprintf(b, "Accept states: %s\n", intList(as))
	if labels != nil {
		fmt.Fprintf(b, "Priority order: %s\n", strList(priority))
		b.WriteString("Accept-state token labels:\n")
		states := make([]int, 0, len(labels))
		for s := range labels {
			states = append(states, int(s))
		}
		sort.Ints(states)
		for _, s := range states {
			fmt.Fprintf(b, "  q%d: %s\n", s, strList(labels[nfa.State(s)]))
		}
	}
	b.WriteString("Transitions:\n")
	for _, r := range n.TransitionRows() {
		fmt.Fprintf(b, "  q%d --%s--> q%d\n", r.Src, r.Label, r.Dst)
	}
	return errors.Wrapf(b.Flush(), "write %s table", n.Name())
}

// DFATable writes the transition table of d. If grouped is true, transitions
// sharing source and target states are folded into one row labeled with a
// character class. Columns are aligned on display width.
//
func DFATable(w io.Writer, d *dfa.DFA, grouped bool) error {
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "DFA: %s\n", d.Name())
	fmt.Fprintf(b, "Start state: %d\n", d.Start())
	fmt.Fprintf(b, "States: %d\n", d.NumStates())
	fmt.Fprintf(b, "Alphabet: %d symbols\n", len(d.Alphabet()))
	acc := d.AcceptStates()
	as := make([]int, len(acc))
	for i, s := range acc {
		as[i] = int(s)
	}
	fmt.Fprintf(b, "Accept states: %s\n", intList(as))
	b.WriteString("Accept-state token labels:\n")
	for _, s := range acc {
		fmt.Fprintf(b, "  q%d: %s\n", s, strList(d.Labels(s)))
	}

	b.WriteString("Transitions:\n")
	rows := d.TransitionRows(grouped)
	srcW, lblW := 0, 0
	for _, r := range rows {
		if l := len(strconv.Itoa(int(r.Src))) + 1; l > srcW {
			srcW = l
		}
		if l := displayWidth(r.Label); l > lblW {
			lblW = l
		}
	}
	for _, r := range rows {
		fmt.Fprintf(b, "  %s --%s--> q%d\n", pad("q"+strconv.Itoa(int(r.Src)), srcW), pad(r.Label, lblW), r.Dst)
	}
	return errors.Wrapf(b.Flush(), "write %s table", d.Name())
}

// intList formats l as "[1, 2, 3]".
func intList(l []int) string {
	s := make([]string, len(l))
	for i, v := range l {
		s[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(s, ", ") + "]"
}

// strList formats l as "['a', 'b']".
func strList(l []string) string {
	s := make([]string, len(l))
	for i, v := range l {
		s[i] = "'" + v + "'"
	}
	return "[" + strings.Join(s, ", ") + "]"
}
