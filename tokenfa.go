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

package tokenfa

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/db47h/tokenfa/dfa"
	"github.com/db47h/tokenfa/nfa"
)

// CombinedName is the name of the combined automaton.
//
const CombinedName = "combined"

// Build configuration errors.
//
var (
	ErrUnknownClass   = errors.New("unknown token class")
	ErrDuplicateClass = errors.New("duplicate token class")
	ErrNoClass        = errors.New("no token class selected")
	ErrEmptyAlphabet  = dfa.ErrEmptyAlphabet
	ErrNilAutomaton   = errors.New("class recipe returned no automaton")
)

// Automata holds every stage of the construction of one automaton.
//
type Automata struct {
	Name    string
	NFA     *nfa.NFA
	Labels  nfa.Labels // accept state labels of NFA, nil for a single class
	DFA     *dfa.DFA
	Minimal *dfa.DFA
}

// Accepts reports whether the minimal DFA accepts text.
//
func (a *Automata) Accepts(text string) bool {
	return a.Minimal.Accepts(text)
}

// AcceptedTokens returns the labels of the state reached by the minimal DFA
// on text. The result is empty if text is rejected.
//
func (a *Automata) AcceptedTokens(text string) []string {
	return a.Minimal.AcceptedTokens(text)
}

// Result is the output of Build. It is read-only and safe for concurrent use.
//
type Result struct {
	Alphabet dfa.Alphabet
	Priority []string
	Classes  []*Automata // in priority order
	Combined *Automata
}

// Class returns the automata of the named class, or nil.
//
func (r *Result) Class(name string) *Automata {
	for _, a := range r.Classes {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Build runs the construction pipeline: every selected token class is built
// as an NFA then converted to a DFA and minimized; the NFAs are merged in
// priority order into a combined automaton that goes through the same
// stages.
//
// Classes are built concurrently. Configuration errors are reported before
// any automaton is built.
//
func Build(opts ...Option) (*Result, error) {
	o := newOptions(opts)
	return build(o, newMetrics(o.registerer))
}

func build(o *options, m *metrics) (*Result, error) {
	if err := o.validate(); err != nil {
		m.builds.WithLabelValues("error").Inc()
		return nil, err
	}
	log := o.logger
	start := time.Now()

	res := &Result{
		Alphabet: dfa.NewAlphabet(o.alphabet...),
		Priority: append([]string(nil), o.priority...),
		Classes:  make([]*Automata, len(o.priority)),
	}

	var g errgroup.Group
	g.SetLimit(o.parallelism)
	for i, name := range o.priority {
		i, name := i, name
		g.Go(func() error {
			a, err := buildClass(name, o.builders[name], res.Alphabet, m)
			if err != nil {
				return err
			}
			log.Debug("built token class", "class", name,
				slog.Group("states",
					"nfa", a.NFA.NumStates(),
					"dfa", a.DFA.NumStates(),
					"minimal", a.Minimal.NumStates()))
			res.Classes[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		m.builds.WithLabelValues("error").Inc()
		return nil, err
	}

	subs := make(map[string]*nfa.NFA, len(res.Classes))
	for _, a := range res.Classes {
		subs[a.Name] = a.NFA
	}
	t := time.Now()
	cn, labels := nfa.Combine(CombinedName, subs, res.Priority)
	m.stage.WithLabelValues(StageCombine).Observe(time.Since(t).Seconds())
	res.Combined = convert(&Automata{Name: CombinedName, NFA: cn, Labels: labels}, res.Alphabet, m)

	m.builds.WithLabelValues("ok").Inc()
	log.Info("built token automata",
		"classes", len(res.Classes),
		"alphabet", len(res.Alphabet),
		slog.Group("combined",
			"nfa", cn.NumStates(),
			"dfa", res.Combined.DFA.NumStates(),
			"minimal", res.Combined.Minimal.NumStates()),
		"elapsed", time.Since(start))
	return res, nil
}

func (o *options) validate() error {
	if len(o.alphabet) == 0 {
		return ErrEmptyAlphabet
	}
	if len(o.priority) == 0 {
		return ErrNoClass
	}
	seen := make(map[string]bool, len(o.priority))
	for _, name := range o.priority {
		if o.builders[name] == nil {
			return fmt.Errorf("%w: %q", ErrUnknownClass, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: %q", ErrDuplicateClass, name)
		}
		seen[name] = true
	}
	return nil
}

func buildClass(name string, recipe func() *nfa.NFA, alphabet dfa.Alphabet, m *metrics) (*Automata, error) {
	t := time.Now()
	n := recipe()
	if n == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrNilAutomaton)
	}
	m.stage.WithLabelValues(StageNFA).Observe(time.Since(t).Seconds())
	return convert(&Automata{Name: name, NFA: n}, alphabet, m), nil
}

// convert fills in the DFA and Minimal fields of a.
//
func convert(a *Automata, alphabet dfa.Alphabet, m *metrics) *Automata {
	t := time.Now()
	a.DFA = dfa.FromNFA(a.NFA, alphabet, a.Labels)
	m.stage.WithLabelValues(StageDFA).Observe(time.Since(t).Seconds())

	t = time.Now()
	a.Minimal = dfa.Minimize(a.DFA)
	m.stage.WithLabelValues(StageMinimize).Observe(time.Since(t).Seconds())

	m.states.WithLabelValues(a.Name, StageNFA).Set(float64(a.NFA.NumStates()))
	m.states.WithLabelValues(a.Name, StageDFA).Set(float64(a.DFA.NumStates()))
	m.states.WithLabelValues(a.Name, StageMinimize).Set(float64(a.Minimal.NumStates()))
	return a
}
