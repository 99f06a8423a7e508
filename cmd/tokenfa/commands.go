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

package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/db47h/tokenfa"
	"github.com/db47h/tokenfa/render"
	"github.com/db47h/tokenfa/token"
)

var errFailed = errors.New("some tests failed")

type buildCmd struct {
	Output    string `short:"o" help:"Output directory." default:"output" type:"path" placeholder:"DIR"`
	RenderPNG bool   `name:"render-png" help:"Also render PNG images with Graphviz dot."`
}

func (b *buildCmd) Run(e *env) error {
	res, err := e.result()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(b.Output, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	var dots []string
	write := func(name string, fn func(io.Writer) error) error {
		path := filepath.Join(b.Output, name)
		if err := writeFile(path, fn); err != nil {
			return err
		}
		if filepath.Ext(name) == ".dot" {
			dots = append(dots, path)
		}
		return nil
	}

	for _, a := range res.Classes {
		if err := writeAutomata(write, a.Name, a, res.Priority); err != nil {
			return err
		}
	}
	if err := writeAutomata(write, res.Combined.Name+"_nfa", res.Combined, res.Priority); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Wrote automata files to: %s\n", b.Output)

	if b.RenderPNG {
		return renderPNGs(e, dots)
	}
	return nil
}

// writeAutomata writes the graph and table of every stage of a. Files are
// named base.dot, base_table.txt, then base_dfa and base_min_dfa with the same
// suffixes. The "_nfa" suffix of base, if any, is dropped for DFA files.
//
func writeAutomata(write func(string, func(io.Writer) error) error, base string, a *tokenfa.Automata, priority []string) error {
	stem := strings.TrimSuffix(base, "_nfa")
	files := []struct {
		name string
		fn   func(io.Writer) error
	}{
		{base + ".dot", func(w io.Writer) error { return render.NFADot(w, a.NFA) }},
		{base + "_table.txt", func(w io.Writer) error { return render.NFATable(w, a.NFA, a.Labels, priority) }},
		{stem + "_dfa.dot", func(w io.Writer) error { return render.DFADot(w, a.DFA) }},
		{stem + "_dfa_table.txt", func(w io.Writer) error { return render.DFATable(w, a.DFA, true) }},
		{stem + "_min_dfa.dot", func(w io.Writer) error { return render.DFADot(w, a.Minimal) }},
		{stem + "_min_dfa_table.txt", func(w io.Writer) error { return render.DFATable(w, a.Minimal, true) }},
	}
	for _, f := range files {
		if err := write(f.name, f.fn); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	return fn(f)
}

func renderPNGs(e *env, dots []string) error {
	bin, err := exec.LookPath("dot")
	if err != nil {
		e.log.Warn("Graphviz dot not found, skipping PNG rendering")
		return nil
	}
	sort.Strings(dots)
	for _, d := range dots {
		png := strings.TrimSuffix(d, ".dot") + ".png"
		if out, err := exec.Command(bin, "-Tpng", d, "-o", png).CombinedOutput(); err != nil {
			return errors.Wrapf(err, "render %s: %s", d, out)
		}
		e.log.Debug("rendered", "file", png)
	}
	return nil
}

type testCmd struct{}

func (testCmd) Run(e *env) error {
	res, err := e.result()
	if err != nil {
		return err
	}
	ok := runSamples(e.out, res)

	// combined cases expect every class
	full, err := e.compiler.Compile(e.alphabet, token.Priority()...)
	if err != nil {
		return err
	}
	ok = runCombined(e.out, full.Combined) && ok
	if !ok {
		return errFailed
	}
	return nil
}

func runSamples(w io.Writer, res *tokenfa.Result) bool {
	allOK := true
	fmt.Fprintln(w, "Running sample acceptance tests:")
	samples := token.Samples()
	for _, a := range res.Classes {
		s, found := samples[a.Name]
		if !found {
			continue
		}
		stages := []struct {
			name    string
			accepts func(string) bool
		}{
			{"nfa", a.NFA.Accepts},
			{"dfa", a.DFA.Accepts},
			{"min", a.Minimal.Accepts},
		}
		for _, st := range stages {
			for _, txt := range s.Valid {
				ok := st.accepts(txt)
				fmt.Fprintf(w, "  [%s/%s] valid   %-36q -> %t\n", a.Name, st.name, txt, ok)
				allOK = allOK && ok
			}
			for _, txt := range s.Invalid {
				ok := !st.accepts(txt)
				fmt.Fprintf(w, "  [%s/%s] invalid %-36q -> %t\n", a.Name, st.name, txt, ok)
				allOK = allOK && ok
			}
		}
	}
	if allOK {
		fmt.Fprintln(w, "All per-token tests passed.")
	} else {
		fmt.Fprintln(w, "Some per-token tests failed.")
	}
	return allOK
}

func runCombined(w io.Writer, c *tokenfa.Automata) bool {
	allOK := true
	fmt.Fprintln(w, "Running combined automaton tests:")
	for _, tc := range token.CombinedCases() {
		want := labelList(tc.Want)
		ok := true
		for _, got := range [][]string{
			c.NFA.AcceptedTokens(c.Labels, tc.Text),
			c.DFA.AcceptedTokens(tc.Text),
			c.Minimal.AcceptedTokens(tc.Text),
		} {
			ok = ok && labelList(got) == want
		}
		fmt.Fprintf(w, "  [combined] %-20q -> %s expected %s : %t\n",
			tc.Text, labelList(c.Minimal.AcceptedTokens(tc.Text)), want, ok)
		allOK = allOK && ok
	}
	if allOK {
		fmt.Fprintln(w, "All combined tests passed.")
	} else {
		fmt.Fprintln(w, "Some combined tests failed.")
	}
	return allOK
}

type matchCmd struct {
	Texts []string `arg:"" help:"Texts to classify."`
}

func (m *matchCmd) Run(e *env) error {
	res, err := e.result()
	if err != nil {
		return err
	}
	for _, t := range m.Texts {
		fmt.Fprintf(e.out, "%q: %s\n", t, labelList(res.Combined.AcceptedTokens(t)))
	}
	return nil
}

// labelList formats labels as "[a b]".
//
func labelList(labels []string) string {
	return "[" + strings.Join(labels, " ") + "]"
}
