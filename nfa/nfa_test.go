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

package nfa_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/db47h/tokenfa/nfa"
)

func expectPanic(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("\nGot     : %v\nExpected: %v", r, target)
		}
	}()
	f()
}

// ab builds a(b|ε)* with an epsilon loop.
func ab() *nfa.NFA {
	n := nfa.New("ab")
	s1 := n.NewState()
	s2 := n.NewState()
	s3 := n.NewState()
	n.AddTransition(n.Start(), s1, "a", nfa.Exact('a'))
	n.AddEpsilon(s1, s2)
	n.AddTransition(s2, s3, "b", nfa.Exact('b'))
	n.AddEpsilon(s3, s2)
	n.AddEpsilon(s2, s1)
	n.SetAccept(s1, s3)
	return n
}

func Test_Build(t *testing.T) {
	n := nfa.New("x")
	if n.Start() != 0 || n.NumStates() != 1 || n.Name() != "x" {
		t.Fatalf("bad initial state: start %d, %d states", n.Start(), n.NumStates())
	}
	for i := 1; i < 4; i++ {
		if s := n.NewState(); s != nfa.State(i) {
			t.Errorf("\nGot     : %d\nExpected: %d", s, i)
		}
	}
	// states without transitions are listed
	if got := n.AllStates(); !reflect.DeepEqual(got, []nfa.State{0, 1, 2, 3}) {
		t.Errorf("\nGot     : %v\nExpected: [0 1 2 3]", got)
	}
	n.SetAccept(2)
	n.SetAccept(2, 3)
	if got := n.AcceptStates(); !reflect.DeepEqual(got, nfa.StateSet{2, 3}) {
		t.Errorf("\nGot     : %v\nExpected: [2 3]", got)
	}
	if n.IsAccept(1) || !n.IsAccept(3) || n.IsAccept(42) || n.IsAccept(-1) {
		t.Error("IsAccept")
	}
}

func Test_Transitions(t *testing.T) {
	n := ab()
	ts := n.Transitions(2)
	if len(ts) != 2 || ts[0].Label != "b" || !ts[1].IsEpsilon() || ts[1].Label != nfa.EpsilonLabel {
		t.Fatalf("unexpected transitions %v", ts)
	}
	// returned slice is a copy
	ts[0].Label = "x"
	if n.Transitions(2)[0].Label != "b" {
		t.Error("Transitions aliases internal storage")
	}
	want := []nfa.Row{
		{Src: 0, Label: "a", Dst: 1},
		{Src: 1, Label: "λ", Dst: 2},
		{Src: 2, Label: "b", Dst: 3},
		{Src: 2, Label: "λ", Dst: 1},
		{Src: 3, Label: "λ", Dst: 2},
	}
	if got := n.TransitionRows(); !reflect.DeepEqual(got, want) {
		t.Errorf("\nGot     : %v\nExpected: %v", got, want)
	}
}

func Test_Panics(t *testing.T) {
	n := nfa.New("p")
	s := n.NewState()
	td := []struct {
		name string
		err  error
		f    func()
	}{
		{"dst", nfa.ErrState, func() { n.AddTransition(0, 7, "x", nfa.Exact('x')) }},
		{"src", nfa.ErrState, func() { n.AddEpsilon(-1, s) }},
		{"accept", nfa.ErrState, func() { n.SetAccept(s, 2) }},
		{"closure", nfa.ErrState, func() { n.EpsilonClosure(nfa.StateSet{3}) }},
		{"transitions", nfa.ErrState, func() { n.Transitions(9) }},
		{"zero", nfa.ErrPredicate, func() { n.AddTransition(0, s, "x", nfa.Predicate{}) }},
		{"emptyset", nfa.ErrPredicate, func() { n.AddTransition(0, s, "[]", nfa.OneOf("")) }},
		{"nilfunc", nfa.ErrPredicate, func() { n.AddTransition(0, s, "f", nfa.Func(nil)) }},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			expectPanic(t, d.err, d.f)
		})
	}
	if len(n.TransitionRows()) != 0 {
		t.Error("failed calls added transitions")
	}
}

func Test_EpsilonClosure(t *testing.T) {
	n := ab()
	td := []struct {
		in  nfa.StateSet
		res nfa.StateSet
	}{
		{nfa.StateSet{0}, nfa.StateSet{0}},
		{nfa.StateSet{1}, nfa.StateSet{1, 2}},
		{nfa.StateSet{3}, nfa.StateSet{1, 2, 3}},
		{nfa.StateSet{0, 3}, nfa.StateSet{0, 1, 2, 3}},
		{nil, nil},
	}
	for _, d := range td {
		t.Run(fmt.Sprint(d.in), func(t *testing.T) {
			got := n.EpsilonClosure(d.in)
			if len(got) != len(d.res) || (len(got) > 0 && !reflect.DeepEqual(got, d.res)) {
				t.Errorf("\nGot     : %v\nExpected: %v", got, d.res)
			}
		})
	}
}

func Test_Move(t *testing.T) {
	n := ab()
	if got := n.Move(nfa.StateSet{1}, 'b'); len(got) != 0 {
		t.Errorf("move followed epsilon transitions: %v", got)
	}
	if got := n.Move(nfa.StateSet{1, 2}, 'b'); !reflect.DeepEqual(got, nfa.StateSet{3}) {
		t.Errorf("\nGot     : %v\nExpected: [3]", got)
	}
	if got := n.Move(nfa.StateSet{0, 2}, 'c'); len(got) != 0 {
		t.Errorf("\nGot     : %v\nExpected: []", got)
	}
}

func Test_Accepts(t *testing.T) {
	n := ab()
	td := []struct {
		in  string
		res bool
	}{
		{"", false},
		{"a", true},
		{"ab", true},
		{"abbb", true},
		{"b", false},
		{"aa", false},
		{"abc", false},
	}
	for _, d := range td {
		if got := n.Accepts(d.in); got != d.res {
			t.Errorf("%q: \nGot     : %v\nExpected: %v", d.in, got, d.res)
		}
	}

	e := nfa.New("empty")
	e.SetAccept(e.Start())
	if !e.Accepts("") || e.Accepts("x") {
		t.Error("empty string automaton")
	}
}

func Test_Predicates(t *testing.T) {
	td := []struct {
		name string
		p    nfa.Predicate
		in   string
		out  string
	}{
		{"exact", nfa.Exact('é'), "é", "eE"},
		{"oneof", nfa.OneOf("+-"), "+-", "*0"},
		{"digit", nfa.Digit(), "0123456789", "a٣"},
		{"upper", nfa.Upper(), "AZ", "aÉ0"},
		{"identtail", nfa.IdentTail(), "az09_", "A-"},
		{"notnewline", nfa.NotNewline(), "a #\t", "\n"},
		{"func", nfa.Func(func(r rune) bool { return r == 'x' }), "x", "y"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			if d.p.IsEpsilon() {
				t.Fatal("IsEpsilon")
			}
			for _, r := range d.in {
				if !d.p.Match(r) {
					t.Errorf("%q rejected", r)
				}
			}
			for _, r := range d.out {
				if d.p.Match(r) {
					t.Errorf("%q accepted", r)
				}
			}
		})
	}
}

func Test_StateSet(t *testing.T) {
	s := nfa.NewStateSet(3, 1, 3, 2, 1)
	if !reflect.DeepEqual(s, nfa.StateSet{1, 2, 3}) {
		t.Fatalf("\nGot     : %v\nExpected: [1 2 3]", s)
	}
	if !s.Contains(2) || s.Contains(0) || s.Contains(4) {
		t.Error("Contains")
	}
	if k := s.Key(); k != "1,2,3" {
		t.Errorf("\nGot     : %q\nExpected: %q", k, "1,2,3")
	}
	if nfa.NewStateSet(2, 1).Key() != nfa.NewStateSet(1, 2, 2).Key() {
		t.Error("keys of equal sets differ")
	}
}
