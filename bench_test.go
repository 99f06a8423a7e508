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
	"math/rand"
	"testing"

	"github.com/db47h/tokenfa/dfa"
	"github.com/db47h/tokenfa/nfa"
	"github.com/db47h/tokenfa/token"
)

func benchTexts(n int) []string {
	const pool = "+-0123456789.eE#truefalsCAZcz_(){};:*/<>= "
	r := rand.New(rand.NewSource(123456))
	texts := make([]string, n)
	for i := range texts {
		b := make([]byte, 1+r.Intn(16))
		for j := range b {
			b[j] = pool[r.Intn(len(pool))]
		}
		texts[i] = string(b)
	}
	return texts
}

func BenchmarkBuild(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Build(WithLogger(nil), WithRegisterer(nil)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSubset(b *testing.B) {
	c, labels := nfa.Combine(CombinedName, token.BuildAll(), token.Priority())
	alpha := dfa.PrintableASCII()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dfa.FromNFA(c, alpha, labels)
	}
}

func BenchmarkMinimize(b *testing.B) {
	c, labels := nfa.Combine(CombinedName, token.BuildAll(), token.Priority())
	d := dfa.FromNFA(c, dfa.PrintableASCII(), labels)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dfa.Minimize(d)
	}
}

func BenchmarkAcceptedTokens(b *testing.B) {
	res, err := Build(WithLogger(nil), WithRegisterer(nil))
	if err != nil {
		b.Fatal(err)
	}
	texts := benchTexts(1024)
	c := res.Combined
	b.Run("nfa", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			c.NFA.AcceptedTokens(c.Labels, texts[i%len(texts)])
		}
	})
	b.Run("dfa", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			c.DFA.AcceptedTokens(texts[i%len(texts)])
		}
	})
	b.Run("min", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			c.Minimal.AcceptedTokens(texts[i%len(texts)])
		}
	})
}
