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

package dfa_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"unicode"

	"github.com/d4l3k/messagediff"

	"github.com/db47h/tokenfa/dfa"
	"github.com/db47h/tokenfa/nfa"
	"github.com/db47h/tokenfa/token"
)

// abStar builds a(b)* with epsilon loops.
func abStar() *nfa.NFA {
	n := nfa.New("ab")
	s1 := n.NewState()
	s2 := n.NewState()
	s3 := n.NewState()
	n.AddTransition(n.Start(), s1, "a", nfa.Exact('a'))
	n.AddEpsilon(s1, s2)
	n.AddTransition(s2, s3, "b", nfa.Exact('b'))
	n.AddEpsilon(s3, s2)
	n.SetAccept(s1, s3)
	return n
}

func single(name string, r rune) *nfa.NFA {
	n := nfa.New(name)
	s := n.NewState()
	n.AddTransition(n.Start(), s, string(r), nfa.Exact(r))
	n.SetAccept(s)
	return n
}

func diffRows(t *testing.T, got, want []dfa.Row) {
	t.Helper()
	if diff, equal := messagediff.PrettyDiff(want, got); !equal {
		t.Errorf("transition rows differ:\n%s", diff)
	}
}

func Test_FromNFA(t *testing.T) {
	d := dfa.FromNFA(abStar(), dfa.NewAlphabet('a', 'b'), nil)
	if d.Name() != "ab" || d.Start() != 0 || d.NumStates() != 3 {
		t.Fatalf("got %s: start %d, %d states", d.Name(), d.Start(), d.NumStates())
	}
	diffRows(t, d.TransitionRows(false), []dfa.Row{
		{Src: 0, Label: "a", Dst: 1},
		{Src: 1, Label: "b", Dst: 2},
		{Src: 2, Label: "b", Dst: 2},
	})
	if d.IsComplete() {
		t.Error("partial DFA reported complete")
	}
	if got := d.AcceptStates(); !reflect.DeepEqual(got, []dfa.State{1, 2}) {
		t.Errorf("\nGot     : %v\nExpected: [1 2]", got)
	}
	if got := d.Labels(2); !reflect.DeepEqual(got, []string{"ab"}) {
		t.Errorf("\nGot     : %v\nExpected: [ab]", got)
	}
	if s, ok := d.Next(0, 'b'); ok || s != dfa.None {
		t.Errorf("Next(0, 'b') = %d, %v", s, ok)
	}
	if s, ok := d.Next(1, 'b'); !ok || s != 2 {
		t.Errorf("Next(1, 'b') = %d, %v", s, ok)
	}

	td := []struct {
		in  string
		res bool
	}{
		{"", false},
		{"a", true},
		{"abbb", true},
		{"ba", false},
		{"abc", false},
	}
	for _, s := range td {
		if got := d.Accepts(s.in); got != s.res {
			t.Errorf("%q: \nGot     : %v\nExpected: %v", s.in, got, s.res)
		}
	}
}

func Test_AlphabetGap(t *testing.T) {
	n := abStar()
	d := dfa.FromNFA(n, dfa.NewAlphabet('a'), nil)
	if !n.Accepts("ab") {
		t.Fatal("NFA rejects ab")
	}
	if d.Accepts("ab") {
		t.Error("symbol outside of the alphabet accepted")
	}
	if !d.Accepts("a") {
		t.Error("a rejected")
	}
	m := dfa.Minimize(d)
	if m.Accepts("ab") || !m.Accepts("a") {
		t.Error("minimized DFA differs")
	}
}

func Test_Reachable(t *testing.T) {
	for _, c := range token.Classes() {
		d := dfa.FromNFA(c.Build(), dfa.PrintableASCII(), nil)
		seen := make([]bool, d.NumStates())
		queue := []dfa.State{d.Start()}
		seen[d.Start()] = true
		for len(queue) > 0 {
			s := queue[0]
			queue = queue[1:]
			for _, r := range d.Alphabet() {
				if nx, ok := d.Next(s, r); ok && !seen[nx] {
					seen[nx] = true
					queue = append(queue, nx)
				}
			}
		}
		for s, ok := range seen {
			if !ok {
				t.Errorf("%s: state %d unreachable", c.Name, s)
			}
		}
	}
}

func Test_Minimize(t *testing.T) {
	d := dfa.FromNFA(abStar(), dfa.NewAlphabet('a', 'b'), nil)
	m := dfa.Minimize(d)
	if !m.IsComplete() || m.Start() != 0 || m.NumStates() != 3 {
		t.Fatalf("complete: %v, start %d, %d states", m.IsComplete(), m.Start(), m.NumStates())
	}
	diffRows(t, m.TransitionRows(false), []dfa.Row{
		{Src: 0, Label: "a", Dst: 1},
		{Src: 0, Label: "b", Dst: 2},
		{Src: 1, Label: "a", Dst: 2},
		{Src: 1, Label: "b", Dst: 1},
		{Src: 2, Label: "a", Dst: 2},
		{Src: 2, Label: "b", Dst: 2},
	})
	diffRows(t, m.TransitionRows(true), []dfa.Row{
		{Src: 0, Label: "a", Dst: 1},
		{Src: 0, Label: "b", Dst: 2},
		{Src: 1, Label: "a", Dst: 2},
		{Src: 1, Label: "b", Dst: 1},
		{Src: 2, Label: "[ab]", Dst: 2},
	})
	// d is left untouched
	if d.NumStates() != 3 || d.IsComplete() {
		t.Error("Minimize modified its input")
	}
}

func Test_MinimizeClasses(t *testing.T) {
	alpha := dfa.PrintableASCII()
	for _, c := range token.Classes() {
		t.Run(c.Name, func(t *testing.T) {
			n := c.Build()
			d := dfa.FromNFA(n, alpha, nil)
			m := dfa.Minimize(d)

			limit := d.NumStates()
			if !d.IsComplete() {
				limit++
			}
			if m.NumStates() > limit {
				t.Errorf("%d states after minimization, DFA had %d", m.NumStates(), d.NumStates())
			}
			if !m.IsComplete() {
				t.Error("minimal DFA not complete")
			}

			// idempotent
			m2 := dfa.Minimize(m)
			if m2.NumStates() != m.NumStates() {
				t.Errorf("\nGot     : %d states\nExpected: %d", m2.NumStates(), m.NumStates())
			}
			diffRows(t, m2.TransitionRows(true), m.TransitionRows(true))

			for _, fs := range [][]token.Failure{
				token.Check(c.Name, d.Accepts),
				token.Check(c.Name, m.Accepts),
			} {
				for _, f := range fs {
					t.Error(f)
				}
			}
		})
	}
}

func Test_MinimizeLabels(t *testing.T) {
	subs := map[string]*nfa.NFA{
		"x": single("x", 'a'),
		"y": single("y", 'b'),
	}
	c, labels := nfa.Combine("c", subs, nil)
	alpha := dfa.NewAlphabet('a', 'b')

	// accept states with different labels are kept apart
	m := dfa.Minimize(dfa.FromNFA(c, alpha, labels))
	if m.NumStates() != 4 {
		t.Errorf("\nGot     : %d states\nExpected: 4", m.NumStates())
	}
	if got := m.AcceptedTokens("a"); !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("\nGot     : %v\nExpected: [x]", got)
	}
	if got := m.AcceptedTokens("b"); !reflect.DeepEqual(got, []string{"y"}) {
		t.Errorf("\nGot     : %v\nExpected: [y]", got)
	}
	if got := m.AcceptedTokens("ab"); got == nil || len(got) != 0 {
		t.Errorf("\nGot     : %#v\nExpected: []string{}", got)
	}

	// without labels they merge
	m = dfa.Minimize(dfa.FromNFA(c, alpha, nil))
	if m.NumStates() != 3 {
		t.Errorf("\nGot     : %d states\nExpected: 3", m.NumStates())
	}
}

func Test_TrapState(t *testing.T) {
	n := token.BuildAll()
	c, labels := nfa.Combine("combined", n, token.Priority())
	m := dfa.Minimize(dfa.FromNFA(c, dfa.PrintableASCII(), labels))

	// '@' starts no token
	trap, ok := m.Next(m.Start(), '@')
	if !ok {
		t.Fatal("minimal DFA is not complete")
	}
	if m.IsAccept(trap) {
		t.Fatal("trap state accepts")
	}
	for _, r := range m.Alphabet() {
		if s, _ := m.Next(trap, r); s != trap {
			t.Errorf("trap state leaves on %q", r)
		}
	}
	if m.Accepts("@true") {
		t.Error("suffix accepted after trap")
	}
}

func Test_EmptyAlphabet(t *testing.T) {
	d := dfa.FromNFA(abStar(), nil, nil)
	if d.NumStates() != 1 || d.Accepts("a") {
		t.Errorf("unexpected DFA over empty alphabet: %d states", d.NumStates())
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, dfa.ErrEmptyAlphabet) {
			t.Errorf("\nGot     : %v\nExpected: %v", r, dfa.ErrEmptyAlphabet)
		}
	}()
	dfa.Minimize(d)
}

func Test_Alphabet(t *testing.T) {
	a := dfa.NewAlphabet('c', 'a', 'c', 'b', 'a')
	if a.String() != "cab" {
		t.Errorf("\nGot     : %q\nExpected: %q", a.String(), "cab")
	}
	if a.Index('b') != 2 || a.Index('z') != -1 || !a.Contains('a') || a.Contains('d') {
		t.Error("Index/Contains")
	}

	p := dfa.PrintableASCII()
	if len(p) != 97 || p[0] != '\t' || p[1] != '\n' || p[2] != ' ' || p[96] != '~' {
		t.Errorf("unexpected printable alphabet %q", p.String())
	}

	g := dfa.AlphabetFromTable(unicode.Greek)
	if !g.Contains('λ') || g.Contains('a') {
		t.Error("greek alphabet")
	}

	// returned alphabets are copies
	d := dfa.FromNFA(abStar(), a, nil)
	d.Alphabet()[0] = 'z'
	if d.Alphabet()[0] != 'c' {
		t.Error("Alphabet aliases internal storage")
	}
}

func ExampleMinimize() {
	d := dfa.FromNFA(token.BooleanNFA(), dfa.NewAlphabet([]rune("truefals")...), nil)
	m := dfa.Minimize(d)
	fmt.Println(d.NumStates(), m.NumStates())
	fmt.Println(m.Accepts("true"), m.Accepts("false"), m.Accepts("falsey"))
	fmt.Println(m.AcceptedTokens("true"), m.AcceptedTokens("tru"))

	// Output:
	// 10 9
	// true true false
	// [boolean_literal] []
}
