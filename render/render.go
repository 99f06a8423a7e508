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

// Package render writes automata as Graphviz DOT graphs and as plain text
// transition tables.
//
// Only the read-only traversal API of nfa.NFA and dfa.DFA is used.
//
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/width"

	"github.com/db47h/tokenfa/dfa"
	"github.com/db47h/tokenfa/nfa"
)

// NFADot writes n as a DOT digraph.
//
func NFADot(w io.Writer, n *nfa.NFA) error {
	b := bufio.NewWriter(w)
	writeHeader(b, "NFA", int(n.Start()))
	for _, s := range n.AllStates() {
		shape := "circle"
		if n.IsAccept(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(b, "  q%d [shape=%s, label=\"%d\"];\n", s, shape, s)
	}
	for _, r := range n.TransitionRows() {
		fmt.Fprintf(b, "  q%d -> q%d [label=\"%s\"];\n", r.Src, r.Dst, escapeLabel(r.Label))
	}
	b.WriteString("}\n")
	return errors.Wrapf(b.Flush(), "write %s DOT", n.Name())
}

// DFADot writes d as a DOT digraph. Transitions between the same pair of
// states are drawn as a single edge labeled with a character class. Accept
// states carry their token labels as an external label.
//
func DFADot(w io.Writer, d *dfa.DFA) error {
	b := bufio.NewWriter(w)
	writeHeader(b, "DFA", int(d.Start()))
	for _, s := range d.AllStates() {
		if d.IsAccept(s) {
			var xl []string
			for _, l := range d.Labels(s) {
				xl = append(xl, escapeLabel(l))
			}
			fmt.Fprintf(b, "  q%d [shape=doublecircle, label=\"%d\", xlabel=\"%s\"];\n",
				s, s, strings.Join(xl, `\n`))
			continue
		}
		fmt.Fprintf(b, "  q%d [shape=circle, label=\"%d\"];\n", s, s)
	}
	for _, r := range d.TransitionRows(true) {
		fmt.Fprintf(b, "  q%d -> q%d [label=\"%s\"];\n", r.Src, r.Dst, escapeLabel(r.Label))
	}
	b.WriteString("}\n")
	return errors.Wrapf(b.Flush(), "write %s DOT", d.Name())
}

func writeHeader(b *bufio.Writer, kind string, start int) {
	fmt.Fprintf(b, "digraph %s {\n", kind)
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=circle];\n")
	b.WriteString("  qi [shape=point];\n")
	fmt.Fprintf(b, "  qi -> q%d;\n", start)
}

func escapeLabel(l string) string {
	l = strings.ReplaceAll(l, `\`, `\\`)
	return strings.ReplaceAll(l, `"`, `\"`)
}

// displayWidth computes the width in text cells of s.
// (supposing rendering with a UTF-8 locale and monospaced font)
//
func displayWidth(s string) int {
	w := 0
	for i := 0; i < len(s); {
		r, sz := utf8.DecodeRuneInString(s[i:])
		i += sz
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			w++
		}
	}
	return w
}

func pad(s string, w int) string {
	if n := w - displayWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
